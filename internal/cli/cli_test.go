package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefits-engine/internal/apperr"
	"benefits-engine/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

const fullyDisabled = `{"disability_rating": 100, "dependents": {"spouse": false, "children": 0}}`

func TestEstimateJSON(t *testing.T) {
	path := writeFile(t, "profile.json", fullyDisabled)

	out, err := run(t, "", "estimate", "--profile", path, "--json")
	require.NoError(t, err)

	var est model.Estimate
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.Equal(t, "3737.85", est.Snapshot.VAMonthlyBenefit.StringFixed(2))
	assert.NotEmpty(t, est.Recommendations)
}

func TestEstimateFromStdin(t *testing.T) {
	out, err := run(t, fullyDisabled, "estimate", "--profile", "-", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"va_monthly_benefit": "3737.85"`)
}

func TestEstimateReport(t *testing.T) {
	path := writeFile(t, "profile.json", `{
		"income_streams": {"employment": 2000},
		"monthly_costs": {"housing": 1500, "food": 1000}
	}`)

	out, err := run(t, "", "estimate", "-p", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Monthly Benefits Estimate")
	assert.Contains(t, out, "$2,500.00")
	assert.Contains(t, out, "-$500.00")
	assert.Contains(t, out, "Expense Reduction Strategy")
	assert.Contains(t, out, "housing")
}

func TestEstimateSortPriority(t *testing.T) {
	path := writeFile(t, "profile.json", `{
		"military_rank": "E-7",
		"years_of_service": 25,
		"monthly_costs": {"housing": 5000}
	}`)

	out, err := run(t, "", "estimate", "-p", path, "--json", "--sort-priority")
	require.NoError(t, err)

	var est model.Estimate
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	require.NotEmpty(t, est.Recommendations)

	last := -1
	for _, r := range est.Recommendations {
		assert.GreaterOrEqual(t, r.Priority.Order(), last, r.Title)
		last = r.Priority.Order()
	}
}

func TestEstimateBadProfile(t *testing.T) {
	path := writeFile(t, "profile.json", `{"disability_rating": "lots"`)

	_, err := run(t, "", "estimate", "-p", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidProfile)

	var ue *apperr.UserError
	assert.ErrorAs(t, err, &ue)
}

func TestEstimateMissingProfile(t *testing.T) {
	_, err := run(t, "", "estimate", "-p", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read profile")
}

func TestEstimateRequiresProfileFlag(t *testing.T) {
	_, err := run(t, "", "estimate")
	require.Error(t, err)
}

func TestCompareReport(t *testing.T) {
	baseline := writeFile(t, "baseline.json", `{"disability_rating": 90, "has_va_home_loan": true}`)
	scenario := writeFile(t, "scenario.json", `{"disability_rating": 100, "has_va_home_loan": true}`)

	out, err := run(t, "", "compare", "--baseline", baseline, "--scenario", scenario)
	require.NoError(t, err)

	assert.Contains(t, out, "What-if Comparison")
	assert.Contains(t, out, "$2,241.91 -> $3,737.85")
	assert.Contains(t, out, "+ Property Tax Exemption")
	assert.Contains(t, out, "+ SSDI Coordination")
}

func TestCompareJSON(t *testing.T) {
	baseline := writeFile(t, "baseline.json", `{"disability_rating": 30}`)
	scenario := writeFile(t, "scenario.json", `{"disability_rating": 30, "dependents": {"spouse": true}}`)

	out, err := run(t, "", "compare", "--baseline", baseline, "--scenario", scenario, "--json")
	require.NoError(t, err)

	var cmp model.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &cmp))
	assert.Equal(t, "586.31", cmp.Scenario.Snapshot.VAMonthlyBenefit.StringFixed(2))
}

func TestTables(t *testing.T) {
	out, err := run(t, "", "tables")
	require.NoError(t, err)

	assert.Contains(t, out, "VA Disability Compensation")
	assert.Contains(t, out, "$3,737.85")
	assert.Contains(t, out, "E-7")
	assert.Contains(t, out, "$5,921.40")
}

func TestTablesFromOverrideFile(t *testing.T) {
	path := writeFile(t, "tables.yaml", `
va_compensation:
  ratings:
    100: { single: "4000.00", with_spouse: "4200.00", per_child: "110.00" }
base_pay:
  grades:
    O-6: { 20: "13000.00" }
`)

	out, err := run(t, "", "--rate-table-path", path, "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "$4,000.00")
	assert.NotContains(t, out, "E-7")
}

func TestConfigFileOverridesEnv(t *testing.T) {
	cfg := writeFile(t, "benefits.yaml", "logging:\n  format: xml\n")

	_, err := run(t, "", "--config", cfg, "tables")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidConfig)
}

func TestFlagOverridesInvalidEnv(t *testing.T) {
	t.Setenv("BENEFITS_LOG_FORMAT", "text")

	out, err := run(t, "", "--log-format", "console", "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "VA Disability Compensation")
}

func TestInvalidEnvWithoutOverrideFails(t *testing.T) {
	t.Setenv("BENEFITS_LOG_FORMAT", "text")

	_, err := run(t, "", "tables")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidConfig)
}
