package model

import "github.com/shopspring/decimal"

type BenefitSnapshot struct {
	VAMonthlyBenefit          decimal.Decimal `json:"va_monthly_benefit"`
	MilitaryRetirementPension decimal.Decimal `json:"military_retirement_pension"`
	TotalIncome               decimal.Decimal `json:"total_income"`
	TotalExpenses             decimal.Decimal `json:"total_expenses"`
	NetIncome                 decimal.Decimal `json:"net_income"`
	SavingsRate               decimal.Decimal `json:"savings_rate"`
	ExpenseBreakdown          []CategoryShare `json:"expense_breakdown"`
}

// CategoryShare is one monthly cost category and its fraction of total expenses.
type CategoryShare struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Share    decimal.Decimal `json:"share"`
}
