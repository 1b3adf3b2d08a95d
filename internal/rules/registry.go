package rules

// registry is evaluated top to bottom.
var registry = []Rule{
	emergencyFund,
	vaHomeLoan,
	giBill,
	propertyTaxExemption,
	ssdiCoordination,
	survivorBenefitPlan,
	retirementTaxStrategy,
	expenseReduction,
	concurrentReceipt,
	housingCost,
	automateSavings,
}

// All returns the registered rules in evaluation order.
func All() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)
	return out
}

func Get(name string) (Rule, bool) {
	for _, r := range registry {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}
