package engine

import (
	json "github.com/goccy/go-json"

	"benefits-engine/internal/jsonpatch"
	"benefits-engine/internal/model"
	"benefits-engine/internal/ratetable"
)

// Compare estimates a baseline and a what-if scenario and describes how the scenario differs.
func Compare(t *ratetable.Table, baseline, scenario model.FinancialProfile) (*model.Comparison, error) {
	base := Estimate(t, baseline)
	next := Estimate(t, scenario)

	a, err := toGeneric(base.Snapshot)
	if err != nil {
		return nil, err
	}
	b, err := toGeneric(next.Snapshot)
	if err != nil {
		return nil, err
	}

	patch, err := json.Marshal(jsonpatch.Diff(a, b, ""))
	if err != nil {
		return nil, err
	}

	return &model.Comparison{
		Baseline:               *base,
		Scenario:               *next,
		SnapshotPatch:          patch,
		AddedRecommendations:   titlesMissing(next.Recommendations, base.Recommendations),
		RemovedRecommendations: titlesMissing(base.Recommendations, next.Recommendations),
	}, nil
}

func toGeneric(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// titlesMissing returns titles present in from but absent in other, in from's order.
func titlesMissing(from, other []model.Recommendation) []string {
	seen := make(map[string]bool, len(other))
	for _, r := range other {
		seen[r.Title] = true
	}
	out := []string{}
	for _, r := range from {
		if !seen[r.Title] {
			out = append(out, r.Title)
		}
	}
	return out
}
