// Package projection iterates the profit cascade over a fixed five-year
// horizon with revenue/cost growth and a declining-balance loan amortization.
package projection

import "math"

// HorizonYears is the fixed projection horizon. Loan tenure only sizes the
// EMI; it never changes the number of projected periods.
const HorizonYears = 5

// Baseline carries the representative-year figures and the rates the
// projection scales them with. Rates are decimals (0.12 for 12%).
type Baseline struct {
	Revenue        float64
	OperatingCosts float64
	Depreciation   float64 // static across all years; see profit.Depreciation

	LoanAmount        float64
	AnnualLoanPayment float64
	InterestRate      float64

	TaxRate    float64
	GrowthRate float64 // shared by revenue and costs

	TotalProjectCost float64
}

// State is the fold state between years.
type State struct {
	Year           int
	LoanBalance    float64
	CumulativeCash float64
}

// YearlyFinancials is one projected year's P&L and cash snapshot.
type YearlyFinancials struct {
	Year           int     `json:"year"`
	Revenue        float64 `json:"revenue"`
	OperatingCosts float64 `json:"operating_costs"`
	EBITDA         float64 `json:"ebitda"`
	Depreciation   float64 `json:"depreciation"`
	EBIT           float64 `json:"ebit"`
	Interest       float64 `json:"interest"`
	PBT            float64 `json:"pbt"`
	Tax            float64 `json:"tax"`
	PAT            float64 `json:"pat"`
	CashFlow       float64 `json:"cash_flow"`
	CumulativeCash float64 `json:"cumulative_cash"`
	LoanBalance    float64 `json:"loan_balance"`
}

// Engine projects the baseline forward. It has no mutable state of its own;
// each Run folds fresh State snapshots, so one engine is safe for concurrent
// callers.
type Engine struct {
	base Baseline
}

// NewEngine creates a projection engine over a baseline.
func NewEngine(base Baseline) *Engine {
	return &Engine{base: base}
}

// InitialState is year 0: the loan undrawn-down and the project cost sunk.
func (e *Engine) InitialState() State {
	return State{
		Year:           0,
		LoanBalance:    e.base.LoanAmount,
		CumulativeCash: -e.base.TotalProjectCost,
	}
}

// Next advances the fold by one year, returning the successor state and the
// emitted record. The transition:
//
//  1. scale revenue and operating costs by (1+g)^(year-1)
//  2. charge interest on the outstanding balance and repay principal capped
//     at the balance
//  3. recompute the cascade with the static depreciation charge
//  4. accumulate cash flow
func (e *Engine) Next(s State) (State, YearlyFinancials) {
	year := s.Year + 1
	growthFactor := math.Pow(1+e.base.GrowthRate, float64(year-1))

	revenue := e.base.Revenue * growthFactor
	opCosts := e.base.OperatingCosts * growthFactor

	var interest, principal float64
	balance := s.LoanBalance
	if balance > 0 {
		interest = balance * e.base.InterestRate
		principal = math.Min(e.base.AnnualLoanPayment-interest, balance)
		balance -= principal
	}

	ebitda := revenue - opCosts
	ebit := ebitda - e.base.Depreciation
	pbt := ebit - interest
	tax := pbt * e.base.TaxRate
	if tax < 0 {
		tax = 0
	}
	pat := pbt - tax
	cashFlow := pat + e.base.Depreciation - principal

	next := State{
		Year:           year,
		LoanBalance:    balance,
		CumulativeCash: s.CumulativeCash + cashFlow,
	}

	return next, YearlyFinancials{
		Year:           year,
		Revenue:        revenue,
		OperatingCosts: opCosts,
		EBITDA:         ebitda,
		Depreciation:   e.base.Depreciation,
		EBIT:           ebit,
		Interest:       interest,
		PBT:            pbt,
		Tax:            tax,
		PAT:            pat,
		CashFlow:       cashFlow,
		CumulativeCash: next.CumulativeCash,
		LoanBalance:    balance,
	}
}

// Run folds Next over the full horizon and returns the five yearly records.
func (e *Engine) Run() []YearlyFinancials {
	years := make([]YearlyFinancials, 0, HorizonYears)
	state := e.InitialState()
	for i := 0; i < HorizonYears; i++ {
		var rec YearlyFinancials
		state, rec = e.Next(state)
		years = append(years, rec)
	}
	return years
}
