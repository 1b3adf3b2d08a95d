package ratetable

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"benefits-engine/internal/apperr"
	"benefits-engine/internal/model"
)

type rawVA struct {
	Effective string               `yaml:"effective"`
	Ratings   map[int]rawVARateRow `yaml:"ratings"`
}

type rawVARateRow struct {
	Single     string `yaml:"single"`
	WithSpouse string `yaml:"with_spouse"`
	PerChild   string `yaml:"per_child"`
}

type rawBasePay struct {
	Effective string                    `yaml:"effective"`
	Grades    map[string]map[int]string `yaml:"grades"`
}

// rawBundle is the single-document layout accepted from override files and URLs.
type rawBundle struct {
	VACompensation rawVA      `yaml:"va_compensation"`
	BasePay        rawBasePay `yaml:"base_pay"`
}

// Parse reads a bundle document holding both tables.
func Parse(data []byte) (*Table, error) {
	var b rawBundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: decode bundle: %v", apperr.ErrRateTableLoad, err)
	}
	return build(b.VACompensation, b.BasePay)
}

func parseDefaults(vaData, payData []byte) (*Table, error) {
	var va rawVA
	if err := yaml.Unmarshal(vaData, &va); err != nil {
		return nil, fmt.Errorf("%w: decode va compensation: %v", apperr.ErrRateTableLoad, err)
	}
	var pay rawBasePay
	if err := yaml.Unmarshal(payData, &pay); err != nil {
		return nil, fmt.Errorf("%w: decode base pay: %v", apperr.ErrRateTableLoad, err)
	}
	return build(va, pay)
}

func build(va rawVA, pay rawBasePay) (*Table, error) {
	t := &Table{
		vaEffective:  va.Effective,
		payEffective: pay.Effective,
		va:           make(map[int]VARate, len(va.Ratings)),
		basePay:      make(map[model.Rank]map[int]decimal.Decimal, len(pay.Grades)),
	}

	if len(va.Ratings) == 0 {
		return nil, fmt.Errorf("%w: va compensation table is empty", apperr.ErrRateTableLoad)
	}
	for rating, row := range va.Ratings {
		if rating < 10 || rating > 100 || rating%10 != 0 {
			return nil, fmt.Errorf("%w: rating key %d is not one of 10..100", apperr.ErrRateTableLoad, rating)
		}
		r, err := parseRow(rating, row)
		if err != nil {
			return nil, err
		}
		t.va[rating] = r
	}

	if len(pay.Grades) == 0 {
		return nil, fmt.Errorf("%w: base pay table is empty", apperr.ErrRateTableLoad)
	}
	for grade, brackets := range pay.Grades {
		rank := model.Rank(grade)
		if !rank.Valid() {
			return nil, fmt.Errorf("%w: unknown pay grade %q", apperr.ErrRateTableLoad, grade)
		}
		if _, ok := brackets[20]; !ok {
			return nil, fmt.Errorf("%w: pay grade %s has no 20-year bracket", apperr.ErrRateTableLoad, grade)
		}
		row := make(map[int]decimal.Decimal, len(brackets))
		for years, amount := range brackets {
			if !isBracket(years) {
				return nil, fmt.Errorf("%w: pay grade %s has unsupported bracket %d", apperr.ErrRateTableLoad, grade, years)
			}
			d, err := parseAmount(amount)
			if err != nil {
				return nil, fmt.Errorf("%w: pay grade %s bracket %d: %v", apperr.ErrRateTableLoad, grade, years, err)
			}
			row[years] = d
		}
		t.basePay[rank] = row
	}

	return t, nil
}

func parseRow(rating int, row rawVARateRow) (VARate, error) {
	single, err := parseAmount(row.Single)
	if err != nil {
		return VARate{}, fmt.Errorf("%w: rating %d single: %v", apperr.ErrRateTableLoad, rating, err)
	}
	spouse, err := parseAmount(row.WithSpouse)
	if err != nil {
		return VARate{}, fmt.Errorf("%w: rating %d with_spouse: %v", apperr.ErrRateTableLoad, rating, err)
	}
	child, err := parseAmount(row.PerChild)
	if err != nil {
		return VARate{}, fmt.Errorf("%w: rating %d per_child: %v", apperr.ErrRateTableLoad, rating, err)
	}
	if spouse.LessThan(single) {
		return VARate{}, fmt.Errorf("%w: rating %d spouse rate below single rate", apperr.ErrRateTableLoad, rating)
	}
	return VARate{Single: single, WithSpouse: spouse, PerChild: child}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %s", s)
	}
	return d, nil
}

func isBracket(years int) bool {
	for _, b := range brackets {
		if b == years {
			return true
		}
	}
	return false
}
