// Package rules evaluates the fixed recommendation table against a profile and its snapshot.
//
// Rules are independent: each one looks only at the input, never at what other rules produced,
// and every rule whose predicate holds emits exactly one recommendation. Output order is the
// declared rule order.
package rules

import (
	"sort"

	"github.com/shopspring/decimal"

	"benefits-engine/internal/model"
)

// Input is what every predicate and builder sees.
type Input struct {
	Profile  *model.FinancialProfile
	Snapshot *model.BenefitSnapshot
}

// Rule pairs a predicate with the recommendation it produces.
type Rule struct {
	Name  string
	When  func(in *Input) bool
	Build func(in *Input) model.Recommendation
}

// Evaluate runs the registered rules in order.
func Evaluate(in *Input) []model.Recommendation {
	return EvaluateRules(registry, in)
}

// EvaluateRules runs an arbitrary rule list in order. The result is never nil.
func EvaluateRules(rules []Rule, in *Input) []model.Recommendation {
	recs := []model.Recommendation{}
	for _, r := range rules {
		if !r.When(in) {
			continue
		}
		rec := r.Build(in)
		if rec.PotentialSavings.IsNegative() {
			rec.PotentialSavings = decimal.Zero
		}
		recs = append(recs, rec)
	}
	return recs
}

// SortByPriority returns a copy ordered high, medium, low. Ties keep rule order.
func SortByPriority(recs []model.Recommendation) []model.Recommendation {
	sorted := make([]model.Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Order() < sorted[j].Priority.Order()
	})
	return sorted
}

func usd(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
