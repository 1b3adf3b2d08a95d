package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"benefits-engine/internal/model"
)

var (
	emergencyFundMonths = decimal.NewFromInt(6)
	housingShareLimit   = decimal.RequireFromString("0.30")
	savingsRateTarget   = decimal.RequireFromString("0.10")
)

var emergencyFund = Rule{
	Name: "emergency_fund",
	When: func(in *Input) bool {
		target := in.Snapshot.TotalExpenses.Mul(emergencyFundMonths)
		return in.Profile.Savings.LessThan(target)
	},
	Build: func(in *Input) model.Recommendation {
		target := in.Snapshot.TotalExpenses.Mul(emergencyFundMonths)
		return model.Recommendation{
			Category: "savings",
			Title:    "Build Emergency Fund",
			Description: fmt.Sprintf("Your savings of %s cover less than six months of expenses. Aim for %s.",
				usd(in.Profile.Savings), usd(target)),
			Priority:         model.PriorityHigh,
			PotentialSavings: decimal.Zero,
			Action:           "Set up an automatic monthly transfer into a high-yield savings account",
		}
	},
}

var expenseReduction = Rule{
	Name: "expense_reduction",
	When: func(in *Input) bool {
		return in.Snapshot.NetIncome.IsNegative()
	},
	Build: func(in *Input) model.Recommendation {
		shortfall := in.Snapshot.NetIncome.Abs()
		return model.Recommendation{
			Category:         "budget",
			Title:            "Expense Reduction Strategy",
			Description:      fmt.Sprintf("Monthly expenses exceed income by %s.", usd(shortfall)),
			Priority:         model.PriorityHigh,
			PotentialSavings: shortfall,
			Action:           "Review discretionary spending and renegotiate recurring bills",
		}
	},
}

var housingCost = Rule{
	Name: "housing_cost",
	When: func(in *Input) bool {
		income := in.Snapshot.TotalIncome
		if !income.IsPositive() {
			return false
		}
		return in.Profile.Cost(model.CostHousing).GreaterThan(income.Mul(housingShareLimit))
	},
	Build: func(in *Input) model.Recommendation {
		limit := in.Snapshot.TotalIncome.Mul(housingShareLimit)
		housing := in.Profile.Cost(model.CostHousing)
		return model.Recommendation{
			Category: "housing",
			Title:    "Housing Cost Review",
			Description: fmt.Sprintf("Housing costs of %s are above 30%% of income (%s).",
				usd(housing), usd(limit)),
			Priority:         model.PriorityMedium,
			PotentialSavings: housing.Sub(limit).Round(2),
			Action:           "Compare refinancing options or a lower-cost rental",
		}
	},
}

var automateSavings = Rule{
	Name: "automate_savings",
	When: func(in *Input) bool {
		return in.Snapshot.TotalIncome.IsPositive() && in.Snapshot.SavingsRate.LessThan(savingsRateTarget)
	},
	Build: func(in *Input) model.Recommendation {
		return model.Recommendation{
			Category:         "savings",
			Title:            "Automate Savings",
			Description:      "Less than 10% of monthly income goes to savings.",
			Priority:         model.PriorityLow,
			PotentialSavings: decimal.Zero,
			Action:           "Route a fixed share of each VA or retirement deposit into savings",
		}
	},
}
