package costing

import (
	"math"
	"testing"

	"ricemill_planner/pkg/core/config"
	"ricemill_planner/pkg/core/production"
)

func defaultVolumes() (production.Volumes, config.ProjectInputs) {
	in := config.DefaultInputs()
	return production.Model(config.Mill5TPH(), in), in
}

func TestAggregateRevenueDefault(t *testing.T) {
	v, in := defaultVolumes()
	rev := AggregateRevenue(v, in)

	// Rice: 8,112,000 kg * 35 = 283,920,000
	if math.Abs(rev.Rice-283920000) > 0.01 {
		t.Errorf("Expected rice revenue 283,920,000, got %f", rev.Rice)
	}
	// Bran: 998.4 t * 1000 * 15 = 14,976,000
	if math.Abs(rev.Bran-14976000) > 0.01 {
		t.Errorf("Expected bran revenue 14,976,000, got %f", rev.Bran)
	}
	// Husk: 2496 t * 1000 * 2 = 4,992,000
	if math.Abs(rev.Husk-4992000) > 0.01 {
		t.Errorf("Expected husk revenue 4,992,000, got %f", rev.Husk)
	}
	// Broken: 873.6 t * 1000 * 20 = 17,472,000
	if math.Abs(rev.BrokenRice-17472000) > 0.01 {
		t.Errorf("Expected broken rice revenue 17,472,000, got %f", rev.BrokenRice)
	}
	// Total = 321,360,000
	if math.Abs(rev.Total-321360000) > 0.01 {
		t.Errorf("Expected total revenue 321,360,000, got %f", rev.Total)
	}
}

func TestAggregateCostsDefault(t *testing.T) {
	v, in := defaultVolumes()
	c := AggregateCosts(v, in.TotalFixedCapital(), in)

	// Paddy: 12,480 t * 10 quintals * 2000 = 249,600,000
	if math.Abs(c.Paddy-249600000) > 0.01 {
		t.Errorf("Expected paddy cost 249,600,000, got %f", c.Paddy)
	}
	// Manpower: (35000 + 25000 + 18000*6 + 12000*8 + 10000) * 12
	//         = 274,000 * 12 = 3,288,000
	if math.Abs(c.TotalManpower-3288000) > 0.01 {
		t.Errorf("Expected manpower 3,288,000, got %f", c.TotalManpower)
	}
	// Utilities: (80000 + 8000 + 15000) * 12 = 1,236,000
	if math.Abs(c.Utilities-1236000) > 0.01 {
		t.Errorf("Expected utilities 1,236,000, got %f", c.Utilities)
	}
	// Maintenance 3% of 10M fixed capital = 300,000; insurance 1% = 100,000
	if math.Abs(c.Maintenance-300000) > 0.01 {
		t.Errorf("Expected maintenance 300,000, got %f", c.Maintenance)
	}
	if math.Abs(c.Insurance-100000) > 0.01 {
		t.Errorf("Expected insurance 100,000, got %f", c.Insurance)
	}
	// Admin: 15000 * 12 = 180,000
	if math.Abs(c.Admin-180000) > 0.01 {
		t.Errorf("Expected admin 180,000, got %f", c.Admin)
	}
	// Packing 0.5/kg and transport 1.0/kg on 8,112,000 kg rice
	if math.Abs(c.Packing-4056000) > 0.01 {
		t.Errorf("Expected packing 4,056,000, got %f", c.Packing)
	}
	if math.Abs(c.Transport-8112000) > 0.01 {
		t.Errorf("Expected transport 8,112,000, got %f", c.Transport)
	}
	// Total = 266,872,000
	if math.Abs(c.Total-266872000) > 0.01 {
		t.Errorf("Expected total operating cost 266,872,000, got %f", c.Total)
	}
}

func TestFixedVariableSplit(t *testing.T) {
	v, in := defaultVolumes()
	c := AggregateCosts(v, in.TotalFixedCapital(), in)

	// Fixed: manpower + utilities + maintenance + insurance + admin
	//      = 3,288,000 + 1,236,000 + 300,000 + 100,000 + 180,000 = 5,104,000
	if math.Abs(c.FixedAnnual()-5104000) > 0.01 {
		t.Errorf("Expected fixed costs 5,104,000, got %f", c.FixedAnnual())
	}
	// Variable: paddy + packing + transport = 261,768,000
	if math.Abs(c.VariableAnnual()-261768000) > 0.01 {
		t.Errorf("Expected variable costs 261,768,000, got %f", c.VariableAnnual())
	}
	// The split must partition the total exactly.
	if math.Abs(c.FixedAnnual()+c.VariableAnnual()-c.Total) > 0.01 {
		t.Errorf("Expected fixed + variable = total, got %f + %f vs %f", c.FixedAnnual(), c.VariableAnnual(), c.Total)
	}
}
