package model

import json "github.com/goccy/go-json"

// Estimate is the engine's pure output for one profile.
type Estimate struct {
	Messages        []CalculationMessage `json:"messages"`
	Snapshot        BenefitSnapshot      `json:"snapshot"`
	Recommendations []Recommendation     `json:"recommendations"`
}

type EstimateResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   Estimate            `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type Comparison struct {
	Baseline               Estimate        `json:"baseline"`
	Scenario               Estimate        `json:"scenario"`
	SnapshotPatch          json.RawMessage `json:"snapshot_patch"`
	AddedRecommendations   []string        `json:"added_recommendations"`
	RemovedRecommendations []string        `json:"removed_recommendations"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	// OutcomeDegraded means the estimate completed but inputs were clamped or ignored.
	OutcomeDegraded = "SUCCESS_WITH_WARNINGS"
)
