// Package pipeline wires the component engines into the single pure entry
// point: validated inputs in, a complete Report out. Every invocation builds
// fresh results; nothing is cached or persisted, so concurrent callers need
// no locking.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ricemill_planner/pkg/core/analysis"
	"ricemill_planner/pkg/core/breakeven"
	"ricemill_planner/pkg/core/capital"
	"ricemill_planner/pkg/core/config"
	"ricemill_planner/pkg/core/costing"
	"ricemill_planner/pkg/core/production"
	"ricemill_planner/pkg/core/profit"
	"ricemill_planner/pkg/core/projection"
)

// MonthlySnapshot is the representative year divided into months, for
// display alongside the annual figures.
type MonthlySnapshot struct {
	Revenue        float64 `json:"revenue"`
	OperatingCosts float64 `json:"operating_costs"`
	Depreciation   float64 `json:"depreciation"`
	Interest       float64 `json:"interest"`
	Profit         float64 `json:"profit"`
}

// Report is the full result bundle of one engine run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Inputs config.ProjectInputs `json:"inputs"`
	Mill   config.MillConfig    `json:"mill"`

	Capital    capital.Structure             `json:"capital"`
	Production production.Volumes            `json:"production"`
	Revenue    costing.Revenue               `json:"revenue"`
	Costs      costing.OperatingCosts        `json:"operating_costs"`
	Cascade    profit.Cascade                `json:"cascade"`
	Ratios     profit.Ratios                 `json:"ratios"`
	BreakEven  breakeven.Result              `json:"break_even"`
	Projection []projection.YearlyFinancials `json:"projection"`
	Insights   []analysis.Insight            `json:"insights"`
	Monthly    MonthlySnapshot               `json:"monthly"`
}

// Compute runs the full pipeline: capital structure and production volumes,
// revenue/cost aggregation, profit cascade, break-even, the five-year
// projection and the diagnostic rules. It validates at the boundary and
// returns a descriptive error for invalid configurations.
func Compute(in config.ProjectInputs, mill config.MillConfig) (*Report, error) {
	if err := config.Validate(in, mill); err != nil {
		return nil, fmt.Errorf("invalid project configuration: %w", err)
	}

	cs := capital.Build(in)
	vol := production.Model(mill, in)
	rev := costing.AggregateRevenue(vol, in)
	costs := costing.AggregateCosts(vol, cs.TotalFixedCapital, in)
	casc := profit.BuildCascade(rev, costs, cs, in)
	ratios := profit.ComputeRatios(rev, casc, cs.TotalProjectCost)
	be := breakeven.Analyze(rev, costs, casc, vol)

	engine := projection.NewEngine(projection.Baseline{
		Revenue:           rev.Total,
		OperatingCosts:    costs.Total,
		Depreciation:      casc.Depreciation,
		LoanAmount:        cs.LoanAmount,
		AnnualLoanPayment: cs.AnnualLoanPayment,
		InterestRate:      in.LoanInterestRate / 100,
		TaxRate:           in.TaxRate / 100,
		GrowthRate:        in.AnnualGrowthRate / 100,
		TotalProjectCost:  cs.TotalProjectCost,
	})
	years := engine.Run()

	insights := analysis.Diagnose(analysis.Facts{
		Inputs:     in,
		Capital:    cs,
		Production: vol,
		Revenue:    rev,
		Costs:      costs,
		Cascade:    casc,
		BreakEven:  be,
		Years:      years,
	})

	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Inputs:      in,
		Mill:        mill,
		Capital:     cs,
		Production:  vol,
		Revenue:     rev,
		Costs:       costs,
		Cascade:     casc,
		Ratios:      ratios,
		BreakEven:   be,
		Projection:  years,
		Insights:    insights,
		Monthly: MonthlySnapshot{
			Revenue:        rev.Total / 12,
			OperatingCosts: costs.Total / 12,
			Depreciation:   casc.Depreciation / 12,
			Interest:       casc.Interest / 12,
			Profit:         casc.PAT / 12,
		},
	}, nil
}
