// Package ratetable holds the static VA compensation and military base-pay tables the estimator
// resolves against. Tables are parsed once and never mutated afterwards.
package ratetable

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"benefits-engine/internal/model"
)

//go:embed data/va_compensation.yaml
var vaCompensationYAML []byte

//go:embed data/base_pay.yaml
var basePayYAML []byte

var brackets = []int{30, 25, 20}

// Brackets returns the service-year brackets of the base-pay table, highest first.
func Brackets() []int {
	out := make([]int, len(brackets))
	copy(out, brackets)
	return out
}

// VARate is one row of the compensation table.
type VARate struct {
	Single     decimal.Decimal `json:"single"`
	WithSpouse decimal.Decimal `json:"with_spouse"`
	PerChild   decimal.Decimal `json:"per_child"`
}

type Table struct {
	vaEffective  string
	payEffective string
	va           map[int]VARate
	basePay      map[model.Rank]map[int]decimal.Decimal
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := parseDefaults(vaCompensationYAML, basePayYAML)
	if err != nil {
		panic(fmt.Sprintf("ratetable: embedded tables are invalid: %v", err))
	}
	return t
})

// Default returns the tables compiled into the binary.
func Default() *Table {
	return defaultTable()
}

// VARate returns the row for an exact rating key.
func (t *Table) VARate(rating int) (VARate, bool) {
	r, ok := t.va[rating]
	return r, ok
}

// BasePay returns the monthly base pay for a grade at an exact bracket.
func (t *Table) BasePay(rank model.Rank, bracket int) (decimal.Decimal, bool) {
	brackets, ok := t.basePay[rank]
	if !ok {
		return decimal.Zero, false
	}
	pay, ok := brackets[bracket]
	return pay, ok
}

func (t *Table) HasRank(rank model.Rank) bool {
	_, ok := t.basePay[rank]
	return ok
}

// Ratings returns the compensation table keys in ascending order.
func (t *Table) Ratings() []int {
	keys := make([]int, 0, len(t.va))
	for k := range t.va {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Ranks returns the grades present in the base-pay table, in pay-grade order.
func (t *Table) Ranks() []model.Rank {
	ranks := make([]model.Rank, 0, len(t.basePay))
	for _, g := range model.PayGrades() {
		if t.HasRank(g) {
			ranks = append(ranks, g)
		}
	}
	return ranks
}

type tableView struct {
	VAEffective  string                                 `json:"va_effective"`
	PayEffective string                                 `json:"base_pay_effective"`
	VA           map[int]VARate                         `json:"va_compensation"`
	BasePay      map[model.Rank]map[int]decimal.Decimal `json:"base_pay"`
}

func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableView{
		VAEffective:  t.vaEffective,
		PayEffective: t.payEffective,
		VA:           t.va,
		BasePay:      t.basePay,
	})
}
