// Package breakeven solves the zero-profit production quantity.
package breakeven

import (
	"ricemill_planner/pkg/core/costing"
	"ricemill_planner/pkg/core/metric"
	"ricemill_planner/pkg/core/production"
	"ricemill_planner/pkg/core/profit"
)

// Result is the break-even analysis for one representative year.
//
// Defined is false when the contribution per kg is not positive (or there is
// no rice output at all); BreakevenKg and BreakevenRevenue then carry the
// conventional 0 sentinel inherited from the business model. Consumers must
// check Defined before reading the sentinels; 0 does not mean "instantly
// profitable".
type Result struct {
	AnnualFixedCosts float64 `json:"annual_fixed_costs"`

	VariableCostPerKg metric.Metric `json:"variable_cost_per_kg"`
	RevenuePerKg      metric.Metric `json:"revenue_per_kg_rice"`
	ContributionPerKg metric.Metric `json:"contribution_per_kg"`

	Defined          bool    `json:"defined"`
	BreakevenKg      float64 `json:"breakeven_kg"`
	BreakevenRevenue float64 `json:"breakeven_revenue"`
}

// Analyze splits costs into fixed and variable and solves the break-even
// volume in kg of rice. Revenue per kg blends all product lines (by-products
// included) into a single rice-kg-equivalent price; a deliberate
// simplification for a one-dimensional break-even metric.
func Analyze(rev costing.Revenue, costs costing.OperatingCosts, casc profit.Cascade, v production.Volumes) Result {
	r := Result{
		// Fixed costs carry the full debt and depreciation burden.
		AnnualFixedCosts: costs.FixedAnnual() + casc.Depreciation + casc.Interest,
	}

	r.VariableCostPerKg = metric.Div(costs.VariableAnnual(), v.RiceKgYear)
	r.RevenuePerKg = metric.Div(rev.Total, v.RiceKgYear)

	rpk, okRev := r.RevenuePerKg.Value()
	vcu, okVar := r.VariableCostPerKg.Value()
	if !okRev || !okVar {
		return r
	}

	contribution := rpk - vcu
	r.ContributionPerKg = metric.Defined(contribution)
	if contribution <= 0 {
		return r
	}

	r.Defined = true
	r.BreakevenKg = r.AnnualFixedCosts / contribution
	r.BreakevenRevenue = r.BreakevenKg * rpk
	return r
}
