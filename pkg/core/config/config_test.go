package config

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultInputs(t *testing.T) {
	in := DefaultInputs()

	// Fixed capital = 800k + 2.5M + 5M + 800k + 500k + 400k = 10,000,000
	if in.TotalFixedCapital() != 10000000 {
		t.Errorf("Expected fixed capital 10,000,000, got %f", in.TotalFixedCapital())
	}
	// Default loan funds 70% of the 11.5M project cost = 8,050,000
	if math.Abs(in.LoanAmount-8050000) > 0.01 {
		t.Errorf("Expected default loan 8,050,000, got %f", in.LoanAmount)
	}
	if in.LoanAmount > in.TotalFixedCapital()+in.WorkingCapital {
		t.Errorf("Default loan %f exceeds the project cost", in.LoanAmount)
	}
	// Manager, supervisor, watchman + 6 skilled + 8 unskilled = 17
	if in.TotalHeadcount() != 17 {
		t.Errorf("Expected 17 employees, got %d", in.TotalHeadcount())
	}

	// The defaults must pass their own validation.
	if err := Validate(in, Mill5TPH()); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestValidateBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ProjectInputs)
		want   string
	}{
		{"negative cost", func(in *ProjectInputs) { in.MachineryCost = -1 }, "machinery_cost"},
		{"loan exceeds project", func(in *ProjectInputs) { in.LoanAmount = 99999999 }, "loan_amount"},
		{"zero tenure with loan", func(in *ProjectInputs) { in.LoanTenureYears = 0 }, "loan_tenure"},
		{"hours out of range", func(in *ProjectInputs) { in.HoursPerDay = 25 }, "hours_per_day"},
		{"days out of range", func(in *ProjectInputs) { in.DaysPerMonth = 0 }, "days_per_month"},
		{"zero recovery", func(in *ProjectInputs) { in.RecoveryRate = 0 }, "recovery_rate"},
		{"recovery above 100", func(in *ProjectInputs) { in.RecoveryRate = 101 }, "recovery_rate"},
		{"negative headcount", func(in *ProjectInputs) { in.NumSkilledWorkers = -1 }, "headcounts"},
		{"growth below -100", func(in *ProjectInputs) { in.AnnualGrowthRate = -150 }, "annual_growth_rate"},
	}

	for _, tc := range cases {
		in := DefaultInputs()
		tc.mutate(&in)
		err := Validate(in, Mill5TPH())
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: expected error to mention %q, got %q", tc.name, tc.want, err.Error())
		}
	}

	if err := Validate(DefaultInputs(), MillConfig{}); err == nil {
		t.Error("Expected rejection of a zero-throughput mill")
	}
}

func TestValidateAllowsInterestFreeProject(t *testing.T) {
	// No loan at all: tenure and interest are irrelevant.
	in := DefaultInputs()
	in.LoanAmount = 0
	in.LoanTenureYears = 0
	if err := Validate(in, Mill5TPH()); err != nil {
		t.Errorf("Expected an all-equity project to validate, got %v", err)
	}
}

func TestLoadScenarioYAML(t *testing.T) {
	in, err := LoadScenario(filepath.Join("testdata", "scenario_3tph.yaml"))
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}

	// Overridden fields take the file's values...
	if in.MachineryCost != 3500000 {
		t.Errorf("Expected machinery 3,500,000, got %f", in.MachineryCost)
	}
	if in.HoursPerDay != 10 || in.RecoveryRate != 66 || in.RicePricePerKg != 38 {
		t.Errorf("Unexpected overrides: hours=%d recovery=%v price=%v", in.HoursPerDay, in.RecoveryRate, in.RicePricePerKg)
	}
	// ...while untouched fields keep their defaults.
	if in.PaddyPricePerQuintal != 2000 || in.TaxRate != 30 {
		t.Errorf("Expected untouched defaults, got paddy=%v tax=%v", in.PaddyPricePerQuintal, in.TaxRate)
	}
}

func TestLoadScenarioHjson(t *testing.T) {
	in, err := LoadScenario(filepath.Join("testdata", "scenario_premium.hjson"))
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}
	if in.RicePricePerKg != 48 || in.PackingCostPerKg != 1.5 {
		t.Errorf("Unexpected hjson overrides: price=%v packing=%v", in.RicePricePerKg, in.PackingCostPerKg)
	}
	if in.NumSkilledWorkers != 8 || in.AnnualGrowthRate != 8 {
		t.Errorf("Unexpected hjson overrides: skilled=%d growth=%v", in.NumSkilledWorkers, in.AnnualGrowthRate)
	}
}

func TestLoadScenarioRepairsJSON(t *testing.T) {
	// The file carries a trailing comma; the repair pass should recover it.
	in, err := LoadScenario(filepath.Join("testdata", "scenario_broken.json"))
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}
	if in.RicePricePerKg != 33 || in.DaysPerMonth != 24 {
		t.Errorf("Unexpected repaired values: price=%v days=%d", in.RicePricePerKg, in.DaysPerMonth)
	}
}

func TestLoadScenarioUnsupportedFormat(t *testing.T) {
	if _, err := LoadScenario("scenario.toml"); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	if _, err := LoadScenario(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
