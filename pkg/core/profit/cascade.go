// Package profit derives the single-year profit cascade (EBITDA through PAT
// and cash flow) and the headline profitability ratios.
package profit

import (
	"ricemill_planner/pkg/core/capital"
	"ricemill_planner/pkg/core/config"
	"ricemill_planner/pkg/core/costing"
	"ricemill_planner/pkg/core/metric"
)

// Straight-line depreciation rates by asset class.
const (
	buildingDepRate  = 0.05
	machineryDepRate = 0.10
	otherDepRate     = 0.15
)

// Cascade holds one year's profit waterfall and cash snapshot.
type Cascade struct {
	Depreciation float64 `json:"depreciation"`
	Interest     float64 `json:"interest"`

	GrossProfit float64 `json:"gross_profit"`
	EBITDA      float64 `json:"ebitda"`
	EBIT        float64 `json:"ebit"`
	PBT         float64 `json:"pbt"`
	Tax         float64 `json:"tax"`
	PAT         float64 `json:"pat"`

	PrincipalRepayment float64 `json:"principal_repayment"`
	CashFlow           float64 `json:"cash_flow"`
}

// Depreciation computes the straight-line annual charge: buildings at 5%,
// machinery and electricals at 10%, pre-operative and miscellaneous assets at
// 15%. Land does not depreciate. The charge is recomputed identically for
// every projected year; book value is deliberately not decremented (inherited
// modeling simplification, not a defect).
func Depreciation(in config.ProjectInputs) float64 {
	return in.BuildingCost*buildingDepRate +
		(in.MachineryCost+in.ElectricalCost)*machineryDepRate +
		(in.PreoperativeCost+in.MiscFixedAssets)*otherDepRate
}

// BuildCascade derives the baseline-year cascade. Interest is the first-year
// flat charge on the full loan; the projection engine recomputes it per year
// on the declining balance.
func BuildCascade(rev costing.Revenue, costs costing.OperatingCosts, cs capital.Structure, in config.ProjectInputs) Cascade {
	dep := Depreciation(in)
	interest := cs.LoanAmount * in.LoanInterestRate / 100

	ebitda := rev.Total - costs.Total
	ebit := ebitda - dep
	pbt := ebit - interest

	tax := pbt * in.TaxRate / 100
	if tax < 0 {
		tax = 0
	}
	pat := pbt - tax

	principal := 0.0
	if cs.AnnualLoanPayment > 0 {
		principal = cs.AnnualLoanPayment - interest
	}

	return Cascade{
		Depreciation:       dep,
		Interest:           interest,
		GrossProfit:        rev.Total - costs.Paddy,
		EBITDA:             ebitda,
		EBIT:               ebit,
		PBT:                pbt,
		Tax:                tax,
		PAT:                pat,
		PrincipalRepayment: principal,
		CashFlow:           pat + dep - principal,
	}
}

// Ratios are the headline profitability metrics. Each is undefined when its
// denominator is zero (no revenue, no project cost, non-positive cash flow).
type Ratios struct {
	GrossMargin  metric.Metric `json:"gross_margin"`  // %
	EBITDAMargin metric.Metric `json:"ebitda_margin"` // %
	NetMargin    metric.Metric `json:"net_margin"`    // %
	ROI          metric.Metric `json:"roi_percent"`   // % of total project cost, single year
	PaybackYears metric.Metric `json:"payback_years"`
}

// ComputeRatios derives margins, single-year ROI and the simple payback
// period. Payback is undefined when annual cash flow is not positive.
func ComputeRatios(rev costing.Revenue, casc Cascade, totalProjectCost float64) Ratios {
	r := Ratios{
		GrossMargin:  metric.Percent(casc.GrossProfit, rev.Total),
		EBITDAMargin: metric.Percent(casc.EBITDA, rev.Total),
		NetMargin:    metric.Percent(casc.PAT, rev.Total),
		ROI:          metric.Percent(casc.PAT, totalProjectCost),
	}
	if casc.CashFlow > 0 {
		r.PaybackYears = metric.Defined(totalProjectCost / casc.CashFlow)
	}
	return r
}
