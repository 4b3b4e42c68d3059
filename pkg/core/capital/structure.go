// Package capital derives the financing shape of a project: fixed capital,
// total project cost, the loan/equity split, and the EMI on the term loan.
package capital

import (
	"math"

	"ricemill_planner/pkg/core/config"
)

// Structure is the derived capital structure of a project.
type Structure struct {
	CapitalCosts      map[string]float64 `json:"capital_costs"`
	TotalFixedCapital float64            `json:"total_fixed_capital"`
	WorkingCapital    float64            `json:"working_capital"`
	TotalProjectCost  float64            `json:"total_project_cost"`

	LoanAmount        float64 `json:"loan_amount"`
	EquityAmount      float64 `json:"equity_amount"`
	InterestRate      float64 `json:"loan_interest_rate"` // % p.a., echoed for display
	EMI               float64 `json:"emi"`
	AnnualLoanPayment float64 `json:"annual_loan_payment"`
}

// Build aggregates the capital-cost line items and loan terms into a
// Structure. Inputs are assumed validated, so equity is never negative.
func Build(in config.ProjectInputs) Structure {
	costs := in.CapitalCosts()
	totalFixed := 0.0
	for _, v := range costs {
		totalFixed += v
	}
	totalProject := totalFixed + in.WorkingCapital

	emi := EMI(in.LoanAmount, in.LoanInterestRate, in.LoanTenureYears)

	return Structure{
		CapitalCosts:      costs,
		TotalFixedCapital: totalFixed,
		WorkingCapital:    in.WorkingCapital,
		TotalProjectCost:  totalProject,
		LoanAmount:        in.LoanAmount,
		EquityAmount:      totalProject - in.LoanAmount,
		InterestRate:      in.LoanInterestRate,
		EMI:               emi,
		AnnualLoanPayment: emi * 12,
	}
}

// EMI computes the equated monthly installment for an amortizing loan:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n the number of monthly payments. Returns 0
// when the principal or the rate is 0 (an interest-free or absent loan has no
// annuity to solve).
func EMI(principal, annualRatePct float64, tenureYears int) float64 {
	if principal <= 0 || annualRatePct <= 0 || tenureYears <= 0 {
		return 0
	}
	r := annualRatePct / 100 / 12
	n := float64(tenureYears * 12)
	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1)
}
