package production

import (
	"math"
	"testing"

	"ricemill_planner/pkg/core/config"
)

func TestModelDefault5TPH(t *testing.T) {
	in := config.DefaultInputs()
	v := Model(config.Mill5TPH(), in)

	// 5 tph * 8 h = 40 t/day; * 26 days = 1040 t/month; * 12 = 12,480 t/year
	if v.PaddyTonnesDay != 40 {
		t.Errorf("Expected 40 t/day paddy, got %f", v.PaddyTonnesDay)
	}
	if v.PaddyTonnesMonth != 1040 {
		t.Errorf("Expected 1040 t/month paddy, got %f", v.PaddyTonnesMonth)
	}
	if v.PaddyTonnesYear != 12480 {
		t.Errorf("Expected 12,480 t/year paddy, got %f", v.PaddyTonnesYear)
	}

	// Rice at 65% recovery = 8112 t = 8,112,000 kg
	if math.Abs(v.RiceTonnesYear-8112) > 0.001 {
		t.Errorf("Expected 8112 t/year rice, got %f", v.RiceTonnesYear)
	}
	if math.Abs(v.RiceKgYear-8112000) > 0.001 {
		t.Errorf("Expected 8,112,000 kg/year rice, got %f", v.RiceKgYear)
	}

	// By-products are fractions of paddy intake, not of rice output:
	// bran 8% = 998.4 t, husk 20% = 2496 t, broken 7% = 873.6 t
	if math.Abs(v.BranTonnesYear-998.4) > 0.001 {
		t.Errorf("Expected 998.4 t bran, got %f", v.BranTonnesYear)
	}
	if math.Abs(v.HuskTonnesYear-2496) > 0.001 {
		t.Errorf("Expected 2496 t husk, got %f", v.HuskTonnesYear)
	}
	if math.Abs(v.BrokenRiceTonnesYear-873.6) > 0.001 {
		t.Errorf("Expected 873.6 t broken rice, got %f", v.BrokenRiceTonnesYear)
	}
}

func TestByProductsIndependentOfRecovery(t *testing.T) {
	in := config.DefaultInputs()
	mill := config.Mill5TPH()

	low := Model(mill, in)
	in.RecoveryRate = 70
	high := Model(mill, in)

	// Changing recovery moves rice output but must not move by-products.
	if high.RiceTonnesYear <= low.RiceTonnesYear {
		t.Errorf("Expected rice output to rise with recovery, got %f vs %f", high.RiceTonnesYear, low.RiceTonnesYear)
	}
	if high.BranTonnesYear != low.BranTonnesYear || high.HuskTonnesYear != low.HuskTonnesYear ||
		high.BrokenRiceTonnesYear != low.BrokenRiceTonnesYear {
		t.Error("Expected by-product tonnages to be independent of recovery rate")
	}
}

func TestModel3TPHScalesLinearly(t *testing.T) {
	in := config.DefaultInputs()
	v3 := Model(config.Mill3TPH(), in)
	v5 := Model(config.Mill5TPH(), in)

	// 3/5 of the 5 tph intake: 12480 * 0.6 = 7488 t/year
	if math.Abs(v3.PaddyTonnesYear-7488) > 0.001 {
		t.Errorf("Expected 7488 t/year paddy at 3 tph, got %f", v3.PaddyTonnesYear)
	}
	if math.Abs(v3.RiceKgYear-0.6*v5.RiceKgYear) > 0.001 {
		t.Errorf("Expected rice output to scale with throughput, got %f vs %f", v3.RiceKgYear, v5.RiceKgYear)
	}
}
