// Package resolver turns categorical profile inputs into monetary base rates.
package resolver

import (
	"github.com/shopspring/decimal"

	"benefits-engine/internal/model"
	"benefits-engine/internal/ratetable"
)

const (
	// MinPensionYears is the service length at which retired pay vests.
	MinPensionYears = 20
)

var (
	accrualPerYear = decimal.RequireFromString("0.025")
	maxMultiplier  = decimal.RequireFromString("0.75")
)

// RoundRating rounds a rating down to its table key. Anything below 10 or above 100 resolves to 0.
func RoundRating(rating int) int {
	if rating < 10 || rating > 100 {
		return 0
	}
	return rating / 10 * 10
}

// VARate returns the monthly VA compensation for a rating and dependents. Ratings without a
// table row, including anything above 100, resolve to zero.
func VARate(t *ratetable.Table, rating int, hasSpouse bool, children int) decimal.Decimal {
	row, ok := t.VARate(RoundRating(rating))
	if !ok {
		return decimal.Zero
	}

	base := row.Single
	if hasSpouse {
		base = row.WithSpouse
	}
	if children <= 0 {
		return base
	}
	return base.Add(row.PerChild.Mul(decimal.NewFromInt(int64(children))))
}

// Bracket picks the highest service-year bracket at or below years that the grade has.
func Bracket(t *ratetable.Table, rank model.Rank, years int) (int, bool) {
	for _, b := range ratetable.Brackets() {
		if b > years {
			continue
		}
		if _, ok := t.BasePay(rank, b); ok {
			return b, true
		}
	}
	return 0, false
}

// Multiplier is the 2.5%-per-year accrual capped at 75%.
func Multiplier(years int) decimal.Decimal {
	if years <= 0 {
		return decimal.Zero
	}
	m := accrualPerYear.Mul(decimal.NewFromInt(int64(years)))
	return decimal.Min(m, maxMultiplier)
}

// MilitaryPension returns monthly retired pay in cents. It is zero below 20 years of service
// and for grades missing from the table.
func MilitaryPension(t *ratetable.Table, rank model.Rank, years int) decimal.Decimal {
	if years < MinPensionYears {
		return decimal.Zero
	}
	bracket, ok := Bracket(t, rank, years)
	if !ok {
		return decimal.Zero
	}
	basePay, _ := t.BasePay(rank, bracket)
	return basePay.Mul(Multiplier(years)).Round(2)
}
