package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Input normalization codes. None of them stop a calculation.
const (
	CodeRatingOutOfRange       = "RATING_OUT_OF_RANGE"
	CodeRatingNotMultipleOf10  = "RATING_NOT_MULTIPLE_OF_10"
	CodeNegativeChildren       = "NEGATIVE_CHILDREN"
	CodeNegativeYearsOfService = "NEGATIVE_YEARS_OF_SERVICE"
	CodeUnknownRank            = "UNKNOWN_RANK"
	CodeNegativeAmountClamped  = "NEGATIVE_AMOUNT_CLAMPED"
	CodeUnknownCostCategory    = "UNKNOWN_COST_CATEGORY"
)
