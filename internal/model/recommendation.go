package model

import "github.com/shopspring/decimal"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Order ranks priorities for sorting; lower is more urgent.
func (p Priority) Order() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

type Recommendation struct {
	Category         string          `json:"category"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Priority         Priority        `json:"priority"`
	PotentialSavings decimal.Decimal `json:"potential_savings"`
	Action           string          `json:"action"`
}
