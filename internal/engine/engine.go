// Package engine runs the estimator pipeline: normalize, resolve, aggregate, recommend.
package engine

import (
	"time"

	"github.com/google/uuid"

	"benefits-engine/internal/aggregate"
	"benefits-engine/internal/model"
	"benefits-engine/internal/ratetable"
	"benefits-engine/internal/resolver"
	"benefits-engine/internal/rules"
)

// Estimate is a pure function of the table and the profile.
func Estimate(t *ratetable.Table, profile model.FinancialProfile) *model.Estimate {
	p, msgs := normalize(t, profile)
	for i := range msgs {
		msgs[i].ID = i
	}
	if msgs == nil {
		msgs = []model.CalculationMessage{}
	}

	vaRate := resolver.VARate(t, p.DisabilityRating, p.Dependents.Spouse, p.Dependents.Children)
	pension := resolver.MilitaryPension(t, p.MilitaryRank, p.YearsOfService)

	snapshot := aggregate.Aggregate(&p, vaRate, pension)
	recs := rules.Evaluate(&rules.Input{Profile: &p, Snapshot: &snapshot})

	return &model.Estimate{
		Messages:        msgs,
		Snapshot:        snapshot,
		Recommendations: recs,
	}
}

// Process wraps Estimate with calculation metadata for API responses.
func Process(t *ratetable.Table, req *model.EstimateRequest) *model.EstimateResponse {
	start := time.Now()

	result := Estimate(t, req.Profile)

	outcome := model.OutcomeSuccess
	if len(result.Messages) > 0 {
		outcome = model.OutcomeDegraded
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.EstimateResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: *result,
	}
}
