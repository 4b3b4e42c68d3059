package pipeline

import (
	"math"
	"strings"
	"testing"

	"ricemill_planner/pkg/core/config"
)

func TestComputeStandardScenario(t *testing.T) {
	// The worked scenario: defaults with a 7M loan at 12% over 10 years.
	in := config.DefaultInputs()
	in.LoanAmount = 7000000
	report, err := Compute(in, config.Mill5TPH())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if report.RunID == "" {
		t.Error("Expected a run ID")
	}
	if report.GeneratedAt.IsZero() {
		t.Error("Expected a generation timestamp")
	}

	// Headline figures of the standard scenario.
	if math.Abs(report.Revenue.Total-321360000) > 0.01 {
		t.Errorf("Expected revenue 321,360,000, got %f", report.Revenue.Total)
	}
	if math.Abs(report.Cascade.PAT-36965600) > 0.01 {
		t.Errorf("Expected PAT 36,965,600, got %f", report.Cascade.PAT)
	}
	if len(report.Projection) != 5 {
		t.Fatalf("Expected 5 projected years, got %d", len(report.Projection))
	}
	if len(report.Insights) == 0 {
		t.Error("Expected diagnostic insights")
	}

	// Monthly snapshot is the representative year divided by 12.
	if math.Abs(report.Monthly.Revenue-report.Revenue.Total/12) > 0.01 {
		t.Errorf("Expected monthly revenue %f, got %f", report.Revenue.Total/12, report.Monthly.Revenue)
	}
	if math.Abs(report.Monthly.Profit-report.Cascade.PAT/12) > 0.01 {
		t.Errorf("Expected monthly profit %f, got %f", report.Cascade.PAT/12, report.Monthly.Profit)
	}
}

func TestComputeDeterministic(t *testing.T) {
	in := config.DefaultInputs()
	a, err := Compute(in, config.Mill5TPH())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(in, config.Mill5TPH())
	if err != nil {
		t.Fatal(err)
	}

	// Identical inputs give identical figures; only identity fields differ.
	if a.RunID == b.RunID {
		t.Error("Expected distinct run IDs")
	}
	if a.Revenue != b.Revenue || a.Cascade != b.Cascade {
		t.Error("Expected identical results for identical inputs")
	}
	for i := range a.Projection {
		if a.Projection[i] != b.Projection[i] {
			t.Errorf("Year %d diverged between runs", i+1)
		}
	}
}

func TestComputeRejectsInvalidInputs(t *testing.T) {
	in := config.DefaultInputs()
	in.LoanAmount = in.TotalFixedCapital() + in.WorkingCapital + 1

	_, err := Compute(in, config.Mill5TPH())
	if err == nil {
		t.Fatal("Expected rejection of a loan exceeding the project cost")
	}
	if !strings.Contains(err.Error(), "loan_amount") {
		t.Errorf("Expected the error to name the offending field, got %q", err.Error())
	}

	if _, err := Compute(config.DefaultInputs(), config.MillConfig{}); err == nil {
		t.Fatal("Expected rejection of a zero-throughput mill")
	}
}
