package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"benefits-engine/internal/model"
	"benefits-engine/internal/ratetable"
	"benefits-engine/internal/resolver"
)

// normalize returns a copy of p with out-of-range values clamped, and one WARNING per
// adjustment. The caller's profile is never modified.
func normalize(t *ratetable.Table, p model.FinancialProfile) (model.FinancialProfile, []model.CalculationMessage) {
	var msgs []model.CalculationMessage
	warn := func(code, format string, args ...any) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	switch {
	case p.DisabilityRating < 0 || p.DisabilityRating > 100:
		warn(model.CodeRatingOutOfRange, "Disability rating %d is outside 0-100 and was treated as 0", p.DisabilityRating)
		p.DisabilityRating = 0
	case p.DisabilityRating%10 != 0:
		rounded := resolver.RoundRating(p.DisabilityRating)
		warn(model.CodeRatingNotMultipleOf10, "Disability rating %d was rounded down to %d", p.DisabilityRating, rounded)
		p.DisabilityRating = rounded
	}

	if p.Dependents.Children < 0 {
		warn(model.CodeNegativeChildren, "Children count %d was treated as 0", p.Dependents.Children)
		p.Dependents.Children = 0
	}

	if p.YearsOfService < 0 {
		warn(model.CodeNegativeYearsOfService, "Years of service %d was treated as 0", p.YearsOfService)
		p.YearsOfService = 0
	}

	if p.MilitaryRank != "" && !t.HasRank(p.MilitaryRank) {
		warn(model.CodeUnknownRank, "Military rank %q is not in the pay table and was ignored", p.MilitaryRank)
		p.MilitaryRank = ""
	}

	clamp := func(field string, v decimal.Decimal) decimal.Decimal {
		if v.IsNegative() {
			warn(model.CodeNegativeAmountClamped, "%s of %s was treated as 0", field, v.StringFixed(2))
			return decimal.Zero
		}
		return v
	}

	p.IncomeStreams.Employment = clamp("Employment income", p.IncomeStreams.Employment)
	p.IncomeStreams.Spouse = clamp("Spouse income", p.IncomeStreams.Spouse)
	p.IncomeStreams.SSDI = clamp("SSDI income", p.IncomeStreams.SSDI)
	p.IncomeStreams.Other = clamp("Other income", p.IncomeStreams.Other)
	p.Savings = clamp("Savings balance", p.Savings)

	if p.MonthlyCosts != nil {
		names := make([]string, 0, len(p.MonthlyCosts))
		for name := range p.MonthlyCosts {
			names = append(names, name)
		}
		sort.Strings(names)

		costs := make(map[string]decimal.Decimal, len(p.MonthlyCosts))
		for _, name := range names {
			if !model.IsCostCategory(name) {
				warn(model.CodeUnknownCostCategory, "Cost category %q is not a standard category", name)
			}
			costs[name] = clamp(fmt.Sprintf("Cost %q", name), p.MonthlyCosts[name])
		}
		p.MonthlyCosts = costs
	}

	return p, msgs
}
