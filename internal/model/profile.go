package model

import "github.com/shopspring/decimal"

// Rank is a military pay-grade code such as "E-7" or "O-4".
type Rank string

var payGrades = []Rank{
	"E-1", "E-2", "E-3", "E-4", "E-5", "E-6", "E-7", "E-8", "E-9",
	"W-1", "W-2", "W-3", "W-4", "W-5",
	"O-1", "O-2", "O-3", "O-4", "O-5", "O-6",
}

// PayGrades lists every pay grade the estimator knows, lowest first within each corps.
// The slice is a copy.
func PayGrades() []Rank {
	out := make([]Rank, len(payGrades))
	copy(out, payGrades)
	return out
}

func (r Rank) Valid() bool {
	for _, g := range payGrades {
		if g == r {
			return true
		}
	}
	return false
}

// Monthly cost categories, in display order.
const (
	CostHousing        = "housing"
	CostFood           = "food"
	CostTransportation = "transportation"
	CostHealthcare     = "healthcare"
	CostEducation      = "education"
	CostSavings        = "savings"
	CostOther          = "other"
)

var CostCategories = []string{
	CostHousing, CostFood, CostTransportation, CostHealthcare, CostEducation, CostSavings, CostOther,
}

func IsCostCategory(name string) bool {
	for _, c := range CostCategories {
		if c == name {
			return true
		}
	}
	return false
}

// FinancialProfile is everything the estimator needs from the user. All amounts are monthly
// except Savings, which is the current emergency-fund balance.
type FinancialProfile struct {
	DisabilityRating int                        `json:"disability_rating"`
	Dependents       Dependents                 `json:"dependents"`
	MilitaryRank     Rank                       `json:"military_rank,omitempty"`
	YearsOfService   int                        `json:"years_of_service"`
	IncomeStreams    IncomeStreams              `json:"income_streams"`
	MonthlyCosts     map[string]decimal.Decimal `json:"monthly_costs"`
	Savings          decimal.Decimal            `json:"savings"`
	HasVAHomeLoan    bool                       `json:"has_va_home_loan"`
	HasGIBill        bool                       `json:"has_gi_bill"`
}

type Dependents struct {
	Spouse   bool `json:"spouse"`
	Children int  `json:"children"`
}

type IncomeStreams struct {
	Employment decimal.Decimal `json:"employment"`
	Spouse     decimal.Decimal `json:"spouse"`
	SSDI       decimal.Decimal `json:"ssdi"`
	Other      decimal.Decimal `json:"other"`
}

// Total sums the four declared streams. Zero-valued fields contribute nothing.
func (s IncomeStreams) Total() decimal.Decimal {
	return decimal.Sum(s.Employment, s.Spouse, s.SSDI, s.Other)
}

// Cost returns the monthly amount for a category, or zero when it was not declared.
func (p *FinancialProfile) Cost(category string) decimal.Decimal {
	if p.MonthlyCosts == nil {
		return decimal.Zero
	}
	return p.MonthlyCosts[category]
}
