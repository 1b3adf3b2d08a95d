// Package aggregate combines resolved rates and declared streams into a BenefitSnapshot.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"benefits-engine/internal/model"
)

const sharePlaces = 4

// Aggregate never fails: absent streams and categories count as zero, and a negative
// NetIncome is a normal result.
func Aggregate(p *model.FinancialProfile, vaRate, pension decimal.Decimal) model.BenefitSnapshot {
	totalIncome := decimal.Sum(vaRate, pension, p.IncomeStreams.Total())

	totalExpenses := decimal.Zero
	for _, amount := range p.MonthlyCosts {
		totalExpenses = totalExpenses.Add(amount)
	}

	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = p.Cost(model.CostSavings).Div(totalIncome).Round(sharePlaces)
	}

	return model.BenefitSnapshot{
		VAMonthlyBenefit:          vaRate,
		MilitaryRetirementPension: pension,
		TotalIncome:               totalIncome,
		TotalExpenses:             totalExpenses,
		NetIncome:                 totalIncome.Sub(totalExpenses),
		SavingsRate:               savingsRate,
		ExpenseBreakdown:          breakdown(p.MonthlyCosts, totalExpenses),
	}
}

// breakdown lists declared categories in display order, then any others alphabetically.
func breakdown(costs map[string]decimal.Decimal, total decimal.Decimal) []model.CategoryShare {
	shares := make([]model.CategoryShare, 0, len(costs))

	add := func(name string) {
		amount := costs[name]
		share := decimal.Zero
		if total.IsPositive() {
			share = amount.Div(total).Round(sharePlaces)
		}
		shares = append(shares, model.CategoryShare{Category: name, Amount: amount, Share: share})
	}

	for _, c := range model.CostCategories {
		if _, ok := costs[c]; ok {
			add(c)
		}
	}

	var extra []string
	for name := range costs {
		if !model.IsCostCategory(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		add(name)
	}

	return shares
}
