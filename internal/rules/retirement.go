package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"benefits-engine/internal/model"
)

var (
	retirementTaxShare = decimal.RequireFromString("0.05")
	crdpMinRating      = 50
)

func hasPension(in *Input) bool {
	return in.Snapshot.MilitaryRetirementPension.IsPositive()
}

var survivorBenefitPlan = Rule{
	Name: "survivor_benefit_plan",
	When: hasPension,
	Build: func(in *Input) model.Recommendation {
		desc := "SBP replaces up to 55% of retired pay for a survivor. Premiums are 6.5% of the covered base amount."
		if in.Profile.Dependents.Spouse {
			desc += " Spouse coverage is automatic unless declined in writing."
		}
		return model.Recommendation{
			Category:         "retirement",
			Title:            "Survivor Benefit Plan Review",
			Description:      desc,
			Priority:         model.PriorityMedium,
			PotentialSavings: decimal.Zero,
			Action:           "Review your SBP election with a retirement services officer",
		}
	},
}

var retirementTaxStrategy = Rule{
	Name: "retirement_tax_strategy",
	When: hasPension,
	Build: func(in *Input) model.Recommendation {
		pension := in.Snapshot.MilitaryRetirementPension
		return model.Recommendation{
			Category: "tax",
			Title:    "Retirement Tax Strategy",
			Description: fmt.Sprintf("Retired pay of %s is federally taxable; several states exempt it.",
				usd(pension)),
			Priority:         model.PriorityMedium,
			PotentialSavings: pension.Mul(retirementTaxShare).Round(0),
			Action:           "Adjust withholding and compare state tax treatment of military retired pay",
		}
	},
}

var concurrentReceipt = Rule{
	Name: "concurrent_receipt",
	When: func(in *Input) bool {
		return hasPension(in) && in.Profile.DisabilityRating >= crdpMinRating
	},
	Build: func(in *Input) model.Recommendation {
		return model.Recommendation{
			Category:         "retirement",
			Title:            "Concurrent Retirement and Disability Pay",
			Description:      "Retirees rated 50% or higher receive retired pay and VA compensation without offset.",
			Priority:         model.PriorityHigh,
			PotentialSavings: decimal.Zero,
			Action:           "Confirm CRDP is applied on your retiree account statement",
		}
	},
}
