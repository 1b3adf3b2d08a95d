package model

type EstimateRequest struct {
	TenantID string           `json:"tenant_id"`
	Profile  FinancialProfile `json:"profile"`
}

type CompareRequest struct {
	TenantID string           `json:"tenant_id"`
	Baseline FinancialProfile `json:"baseline"`
	Scenario FinancialProfile `json:"scenario"`
}
