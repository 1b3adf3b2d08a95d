package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"benefits-engine/internal/model"
)

var (
	homeLoanMonthlySavings    = decimal.NewFromInt(250)
	propertyTaxMonthlySavings = decimal.NewFromInt(250)
	ssdiEstimatedBenefit      = decimal.NewFromInt(1000)
)

var vaHomeLoan = Rule{
	Name: "va_home_loan",
	When: func(in *Input) bool {
		return !in.Profile.HasVAHomeLoan && in.Profile.DisabilityRating >= 10
	},
	Build: func(in *Input) model.Recommendation {
		return model.Recommendation{
			Category:         "housing",
			Title:            "VA Home Loan Benefit",
			Description:      "Veterans with a service-connected rating can buy with no down payment, no PMI and no funding fee.",
			Priority:         model.PriorityHigh,
			PotentialSavings: homeLoanMonthlySavings,
			Action:           "Request a Certificate of Eligibility on VA.gov",
		}
	},
}

var giBill = Rule{
	Name: "gi_bill",
	When: func(in *Input) bool {
		return !in.Profile.HasGIBill && in.Profile.Cost(model.CostEducation).IsPositive()
	},
	Build: func(in *Input) model.Recommendation {
		education := in.Profile.Cost(model.CostEducation)
		return model.Recommendation{
			Category:         "education",
			Title:            "GI Bill Education Benefits",
			Description:      fmt.Sprintf("Education costs of %s a month may be covered by the GI Bill.", usd(education)),
			Priority:         model.PriorityHigh,
			PotentialSavings: education,
			Action:           "Apply for Post-9/11 GI Bill or Veteran Readiness and Employment benefits",
		}
	},
}

var propertyTaxExemption = Rule{
	Name: "property_tax_exemption",
	When: func(in *Input) bool {
		return in.Profile.DisabilityRating == 100
	},
	Build: func(in *Input) model.Recommendation {
		return model.Recommendation{
			Category:         "tax",
			Title:            "Property Tax Exemption",
			Description:      "Most states fully or partially exempt 100% disabled veterans from property tax.",
			Priority:         model.PriorityHigh,
			PotentialSavings: propertyTaxMonthlySavings,
			Action:           "Contact your county assessor about the disabled veteran exemption",
		}
	},
}

var ssdiCoordination = Rule{
	Name: "ssdi_coordination",
	When: func(in *Input) bool {
		return in.Profile.DisabilityRating == 100 && in.Profile.IncomeStreams.SSDI.IsZero()
	},
	Build: func(in *Input) model.Recommendation {
		return model.Recommendation{
			Category:         "income",
			Title:            "SSDI Coordination",
			Description:      "SSDI is paid in addition to VA compensation, and 100% P&T veterans get expedited claims.",
			Priority:         model.PriorityHigh,
			PotentialSavings: ssdiEstimatedBenefit,
			Action:           "File an SSDI claim with the Social Security Administration",
		}
	},
}
