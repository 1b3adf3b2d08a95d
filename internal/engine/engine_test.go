package engine

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/goleak"

	"benefits-engine/internal/model"
	"benefits-engine/internal/ratetable"
	"benefits-engine/internal/resolver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func findRec(recs []model.Recommendation, title string) (model.Recommendation, bool) {
	for _, r := range recs {
		if r.Title == title {
			return r, true
		}
	}
	return model.Recommendation{}, false
}

func TestFullyDisabledWithoutSSDI(t *testing.T) {
	profile := model.FinancialProfile{
		DisabilityRating: 100,
		Dependents:       model.Dependents{Spouse: false, Children: 0},
	}

	est := Estimate(ratetable.Default(), profile)

	if got := est.Snapshot.VAMonthlyBenefit.StringFixed(2); got != "3737.85" {
		t.Fatalf("expected va_monthly_benefit 3737.85, got %s", got)
	}
	if !est.Snapshot.MilitaryRetirementPension.IsZero() {
		t.Fatalf("expected no pension, got %s", est.Snapshot.MilitaryRetirementPension)
	}
	if len(est.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(est.Messages))
	}

	ptax, ok := findRec(est.Recommendations, "Property Tax Exemption")
	if !ok {
		t.Fatal("expected Property Tax Exemption recommendation")
	}
	if ptax.Priority != model.PriorityHigh {
		t.Fatalf("expected high priority, got %s", ptax.Priority)
	}

	ssdi, ok := findRec(est.Recommendations, "SSDI Coordination")
	if !ok {
		t.Fatal("expected SSDI Coordination recommendation")
	}
	if ssdi.Priority != model.PriorityHigh {
		t.Fatalf("expected high priority, got %s", ssdi.Priority)
	}
	if got := ssdi.PotentialSavings.StringFixed(2); got != "1000.00" {
		t.Fatalf("expected potential savings 1000.00, got %s", got)
	}
}

func TestRetiredE7TwentyFiveYears(t *testing.T) {
	profile := model.FinancialProfile{
		MilitaryRank:   "E-7",
		YearsOfService: 25,
	}

	est := Estimate(ratetable.Default(), profile)

	if got := est.Snapshot.MilitaryRetirementPension.StringFixed(2); got != "3700.88" {
		t.Fatalf("expected pension 3700.88, got %s", got)
	}
	if got := est.Snapshot.TotalIncome.StringFixed(2); got != "3700.88" {
		t.Fatalf("expected total income 3700.88, got %s", got)
	}

	tax, ok := findRec(est.Recommendations, "Retirement Tax Strategy")
	if !ok {
		t.Fatal("expected Retirement Tax Strategy recommendation")
	}
	if got := tax.PotentialSavings.StringFixed(2); got != "185.00" {
		t.Fatalf("expected potential savings 185.00, got %s", got)
	}
	if _, ok := findRec(est.Recommendations, "Survivor Benefit Plan Review"); !ok {
		t.Fatal("expected Survivor Benefit Plan Review recommendation")
	}
}

func TestUnderwaterBudget(t *testing.T) {
	profile := model.FinancialProfile{
		IncomeStreams: model.IncomeStreams{Employment: d("2000")},
		MonthlyCosts: map[string]decimal.Decimal{
			model.CostHousing: d("1500"),
			model.CostFood:    d("1000"),
		},
	}

	est := Estimate(ratetable.Default(), profile)

	if got := est.Snapshot.NetIncome.StringFixed(2); got != "-500.00" {
		t.Fatalf("expected net income -500.00, got %s", got)
	}

	rec, ok := findRec(est.Recommendations, "Expense Reduction Strategy")
	if !ok {
		t.Fatal("expected Expense Reduction Strategy recommendation")
	}
	if got := rec.PotentialSavings.StringFixed(2); got != "500.00" {
		t.Fatalf("expected potential savings 500.00, got %s", got)
	}

	// Independent rules still fire alongside it.
	if _, ok := findRec(est.Recommendations, "Build Emergency Fund"); !ok {
		t.Fatal("expected Build Emergency Fund recommendation")
	}
}

func TestEstimateIsIdempotent(t *testing.T) {
	profile := model.FinancialProfile{
		DisabilityRating: 70,
		Dependents:       model.Dependents{Spouse: true, Children: 2},
		MilitaryRank:     "O-5",
		YearsOfService:   27,
		IncomeStreams:    model.IncomeStreams{Employment: d("5200"), Spouse: d("2100.10")},
		MonthlyCosts: map[string]decimal.Decimal{
			model.CostHousing:   d("2600"),
			model.CostFood:      d("900"),
			model.CostEducation: d("300"),
			model.CostSavings:   d("250"),
			"pets":              d("80"),
		},
		Savings: d("12000"),
	}

	first, err := json.Marshal(Estimate(ratetable.Default(), profile))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Estimate(ratetable.Default(), profile))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("estimates differ:\n%s\n%s", first, second)
	}
}

func TestEstimateDoesNotModifyProfile(t *testing.T) {
	costs := map[string]decimal.Decimal{model.CostFood: d("-50")}
	profile := model.FinancialProfile{DisabilityRating: 15, MonthlyCosts: costs}

	Estimate(ratetable.Default(), profile)

	if profile.DisabilityRating != 15 {
		t.Fatalf("rating changed to %d", profile.DisabilityRating)
	}
	if got := costs[model.CostFood].StringFixed(2); got != "-50.00" {
		t.Fatalf("caller's cost map changed: %s", got)
	}
}

func TestEstimateNormalizationWarnings(t *testing.T) {
	profile := model.FinancialProfile{
		DisabilityRating: 110,
		Dependents:       model.Dependents{Children: -1},
		MilitaryRank:     "Admiral",
		YearsOfService:   -3,
		IncomeStreams:    model.IncomeStreams{Other: d("-10")},
		MonthlyCosts:     map[string]decimal.Decimal{"boat": d("100")},
	}

	est := Estimate(ratetable.Default(), profile)

	wantCodes := []string{
		model.CodeRatingOutOfRange,
		model.CodeNegativeChildren,
		model.CodeNegativeYearsOfService,
		model.CodeUnknownRank,
		model.CodeNegativeAmountClamped,
		model.CodeUnknownCostCategory,
	}
	if len(est.Messages) != len(wantCodes) {
		t.Fatalf("expected %d messages, got %d: %+v", len(wantCodes), len(est.Messages), est.Messages)
	}
	for i, code := range wantCodes {
		if est.Messages[i].Code != code {
			t.Fatalf("message %d: expected %s, got %s", i, code, est.Messages[i].Code)
		}
		if est.Messages[i].ID != i {
			t.Fatalf("message %d has id %d", i, est.Messages[i].ID)
		}
		if est.Messages[i].Level != model.LevelWarning {
			t.Fatalf("message %d: expected WARNING, got %s", i, est.Messages[i].Level)
		}
	}

	if !est.Snapshot.VAMonthlyBenefit.IsZero() {
		t.Fatalf("out-of-range rating should resolve to 0, got %s", est.Snapshot.VAMonthlyBenefit)
	}
	if got := est.Snapshot.TotalIncome.StringFixed(2); got != "0.00" {
		t.Fatalf("expected total income 0.00, got %s", got)
	}
	if got := est.Snapshot.TotalExpenses.StringFixed(2); got != "100.00" {
		t.Fatalf("unknown categories still count toward expenses, got %s", got)
	}
	if _, ok := findRec(est.Recommendations, "VA Home Loan Benefit"); ok {
		t.Fatal("home loan should not fire for an out-of-range rating")
	}
}

func TestEstimateRoundsRatingDown(t *testing.T) {
	a := Estimate(ratetable.Default(), model.FinancialProfile{DisabilityRating: 15})
	b := Estimate(ratetable.Default(), model.FinancialProfile{DisabilityRating: 10})

	if !a.Snapshot.VAMonthlyBenefit.Equal(b.Snapshot.VAMonthlyBenefit) {
		t.Fatalf("15%% gave %s, 10%% gave %s", a.Snapshot.VAMonthlyBenefit, b.Snapshot.VAMonthlyBenefit)
	}
	if len(a.Messages) != 1 || a.Messages[0].Code != model.CodeRatingNotMultipleOf10 {
		t.Fatalf("expected a rounding warning, got %+v", a.Messages)
	}
}

func TestEstimateAgreesWithResolverAboveHundred(t *testing.T) {
	tbl := ratetable.Default()
	for rating := 100; rating <= 110; rating++ {
		est := Estimate(tbl, model.FinancialProfile{DisabilityRating: rating})
		want := resolver.VARate(tbl, rating, false, 0)
		if !est.Snapshot.VAMonthlyBenefit.Equal(want) {
			t.Fatalf("rating %d: estimate %s, resolver %s", rating, est.Snapshot.VAMonthlyBenefit, want)
		}
		if rating > 100 && !want.IsZero() {
			t.Fatalf("rating %d: expected zero, got %s", rating, want)
		}
	}
}

func TestEstimateEmptyProfile(t *testing.T) {
	est := Estimate(ratetable.Default(), model.FinancialProfile{})

	if est.Messages == nil || len(est.Messages) != 0 {
		t.Fatalf("expected empty non-nil messages, got %v", est.Messages)
	}
	if est.Recommendations == nil || len(est.Recommendations) != 0 {
		t.Fatalf("expected empty non-nil recommendations, got %v", est.Recommendations)
	}
}

func TestProcess(t *testing.T) {
	req := &model.EstimateRequest{
		TenantID: "test-tenant",
		Profile:  model.FinancialProfile{DisabilityRating: 100},
	}

	resp := Process(ratetable.Default(), req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.CalculationMetadata.TenantID)
	}
	if len(resp.CalculationMetadata.CalculationID) != 36 {
		t.Fatalf("expected a uuid calculation_id, got %q", resp.CalculationMetadata.CalculationID)
	}
	if got := resp.CalculationResult.Snapshot.VAMonthlyBenefit.StringFixed(2); got != "3737.85" {
		t.Fatalf("expected 3737.85, got %s", got)
	}
}

func TestProcessWithWarnings(t *testing.T) {
	resp := Process(ratetable.Default(), &model.EstimateRequest{
		Profile: model.FinancialProfile{DisabilityRating: 250},
	})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeDegraded {
		t.Fatalf("expected %s, got %s", model.OutcomeDegraded, resp.CalculationMetadata.CalculationOutcome)
	}
}
