package analysis

import (
	"fmt"

	"ricemill_planner/pkg/core/projection"
)

// rule is one independent threshold group. Eval returns nil when the group
// has nothing to say, so each group emits at most one insight per run.
type rule struct {
	name string
	eval func(f Facts) *Insight
}

// rules are evaluated in order. Except for the payback scan (which walks the
// yearly sequence), every rule is a stateless comparison of one ratio against
// fixed thresholds, so adding a group is appending an entry here.
var rules = []rule{
	{name: "net_profit_margin", eval: evalNetMargin},
	{name: "breakeven_capacity", eval: evalBreakevenCapacity},
	{name: "debt_equity", eval: evalDebtEquity},
	{name: "cash_flow", eval: evalCashFlow},
	{name: "working_capital_months", eval: evalWorkingCapital},
	{name: "recovery_rate", eval: evalRecoveryRate},
	{name: "operating_hours", eval: evalOperatingHours},
	{name: "five_year_roi", eval: evalFiveYearROI},
	{name: "equity_payback", eval: evalEquityPayback},
	{name: "sale_price", eval: evalSalePrice},
	{name: "raw_material_ratio", eval: evalRawMaterialRatio},
	{name: "revenue_per_employee", eval: evalRevenuePerEmployee},
	{name: "operating_days", eval: evalOperatingDays},
}

func evalNetMargin(f Facts) *Insight {
	if f.Revenue.Total <= 0 {
		return nil
	}
	margin := f.Cascade.PAT / f.Revenue.Total * 100

	switch {
	case margin < 5:
		return &Insight{
			Category: CategoryCritical,
			Title:    "Critical: Very Low Profit Margin",
			Message:  fmt.Sprintf("Your net profit margin is only %.1f%%. This is concerning for long-term sustainability.", margin),
			Detail: fmt.Sprintf("A margin below 5%% means the mill is barely covering costs; any paddy price increase or rice price drop could push it into losses. Rice mills typically need 10%%+ to absorb seasonal variation. Reaching a 10%% margin needs roughly ₹%.0f of additional annual profit.",
				0.10*f.Revenue.Total-f.Cascade.PAT),
			Action: "Increase the rice sale price through branding or retail sales, negotiate paddy procurement, and maximize by-product revenue.",
		}
	case margin < 10:
		return &Insight{
			Category: CategoryWarning,
			Title:    "Low Profit Margin",
			Message:  fmt.Sprintf("Net profit margin of %.1f%% is below industry average (12-15%%).", margin),
			Detail: fmt.Sprintf("The margin leaves little buffer for market volatility. Reaching a 12%% margin needs about ₹%.0f more annual profit, roughly ₹%.2f per kg of rice.",
				0.12*f.Revenue.Total-f.Cascade.PAT, (0.12*f.Revenue.Total-f.Cascade.PAT)/f.Production.RiceKgYear),
			Action: "Introduce premium product lines, benchmark operating costs, and improve by-product monetization.",
		}
	case margin > 15:
		return &Insight{
			Category: CategoryPositive,
			Title:    "Excellent Profit Margin",
			Message:  fmt.Sprintf("Your %.1f%% profit margin exceeds industry standards!", margin),
			Detail:   "A margin above 15% puts the mill in the top tier nationally, with a strong buffer against volatility and capacity to fund growth.",
			Action:   "Reinvest in capacity, build brand presence, and keep contingency reserves while margins are strong.",
		}
	}
	return nil
}

func evalBreakevenCapacity(f Facts) *Insight {
	if !f.BreakEven.Defined || f.Production.RiceKgYear <= 0 {
		return nil
	}
	capacityPct := f.BreakEven.BreakevenKg / f.Production.RiceKgYear * 100

	switch {
	case capacityPct > 80:
		return &Insight{
			Category: CategoryCritical,
			Title:    "Critical: High Break-even Point",
			Message:  fmt.Sprintf("You need to operate at %.1f%% capacity to break even. Very risky!", capacityPct),
			Detail: fmt.Sprintf("Safety margin is only %.1f%%. Any demand reduction or stoppage pushes the mill into losses, and there is little room to absorb paddy price increases or service EMIs. Healthy mills break even at 50-60%% of capacity.",
				100-capacityPct),
			Action: "Reduce fixed costs (longer tenure, more equity, leasing), raise the sale price, and secure demand before starting. Consider delaying until break-even drops below 70%.",
		}
	case capacityPct > 60:
		return &Insight{
			Category: CategoryWarning,
			Title:    "High Break-even Capacity",
			Message:  fmt.Sprintf("Break-even at %.1f%% capacity leaves little room for market fluctuations.", capacityPct),
			Detail: fmt.Sprintf("Break-even volume is %.0f kg/year against planned output of %.0f kg/year. The recommended band is 50-60%%.",
				f.BreakEven.BreakevenKg, f.Production.RiceKgYear),
			Action: "Build a 3-4 month working capital buffer, lock in demand contracts before launch, and work paddy procurement costs down.",
		}
	default:
		return &Insight{
			Category: CategoryPositive,
			Title:    "Strong Break-even Position",
			Message:  fmt.Sprintf("Break-even at only %.1f%% capacity provides good safety margin.", capacityPct),
			Action:   "Use the pricing flexibility to capture market share, and keep monitoring costs monthly.",
		}
	}
}

func evalDebtEquity(f Facts) *Insight {
	// Zero equity with an outstanding loan is unbounded leverage; treat it
	// like the high-ratio band rather than dividing.
	if f.Capital.EquityAmount <= 0 {
		if f.Capital.LoanAmount > 0 {
			return &Insight{
				Category: CategoryWarning,
				Title:    "High Debt Burden",
				Message:  "The project is fully debt-funded with no owner equity.",
				Action:   "Bring in promoter equity; lenders expect meaningful skin in the game.",
			}
		}
		return nil
	}
	ratio := f.Capital.LoanAmount / f.Capital.EquityAmount

	switch {
	case ratio > 3:
		return &Insight{
			Category: CategoryWarning,
			Title:    "High Debt Burden",
			Message:  fmt.Sprintf("Debt-Equity ratio of %.2f:1 is quite high.", ratio),
			Detail: fmt.Sprintf("For every ₹1 of equity there is ₹%.2f of debt. Lenders flag ratios above 3:1; the ideal band is 1.5:1 to 2.5:1. Annual interest burden: ₹%.0f.",
				ratio, f.Cascade.Interest),
			Action: "Increase equity, phase the project to cut cost, or pursue subsidy schemes to bring the ratio toward 2:1.",
		}
	case ratio < 1:
		return &Insight{
			Category: CategoryRecommendation,
			Title:    "Conservative Financing",
			Message:  fmt.Sprintf("Debt-Equity ratio of %.2f:1 is very conservative.", ratio),
			Action:   "Low risk, but ROE is diluted. Consider moderate leverage to free equity for working capital or expansion.",
		}
	default:
		return &Insight{
			Category: CategoryPositive,
			Title:    "Balanced Financing",
			Message:  fmt.Sprintf("Debt-Equity ratio of %.2f:1 is well-balanced.", ratio),
			Action:   "Maintain this structure for future expansions; timely EMI payments will keep improving it.",
		}
	}
}

func evalCashFlow(f Facts) *Insight {
	annual := f.Cascade.CashFlow
	monthly := annual / 12

	switch {
	case annual < 0:
		return &Insight{
			Category: CategoryCritical,
			Title:    "Negative Cash Flow",
			Message:  fmt.Sprintf("Annual cash flow is negative at ₹%.0f.", annual),
			Detail: fmt.Sprintf("The business spends more cash than it generates: working capital of ₹%.0f depletes in about %.1f months at this burn rate, risking EMI default.",
				f.Capital.WorkingCapital, safeMonthsOfRunway(f.Capital.WorkingCapital, monthly)),
			Action: "Restructure the loan over a longer tenure, increase working capital, or rework the plan until cash flow turns positive before committing.",
		}
	case monthly < f.Capital.EMI:
		return &Insight{
			Category: CategoryWarning,
			Title:    "Tight Cash Flow",
			Message:  "Monthly cash flow is less than EMI payment. Working capital may be strained.",
			Detail: fmt.Sprintf("Monthly cash flow ₹%.0f vs EMI ₹%.0f. Annual cash flow is positive, but lean months will dip into working capital.",
				monthly, f.Capital.EMI),
			Action: "Hold a larger working capital buffer, negotiate advance payment terms, and consider a step-up EMI structure.",
		}
	default:
		return &Insight{
			Category: CategoryPositive,
			Title:    "Healthy Cash Flow",
			Message:  fmt.Sprintf("Positive annual cash flow of ₹%.0f.", annual),
			Detail:   fmt.Sprintf("Monthly surplus after EMI is ₹%.0f, enough to build reserves and fund growth.", monthly-f.Capital.EMI),
			Action:   "Build an emergency fund covering six months of operations, then direct surplus to growth or debt prepayment.",
		}
	}
}

func evalWorkingCapital(f Facts) *Insight {
	if f.Costs.Total <= 0 {
		return nil
	}
	months := f.Capital.WorkingCapital / (f.Costs.Total / 12)

	switch {
	case months < 1:
		return &Insight{
			Category: CategoryWarning,
			Title:    "Insufficient Working Capital",
			Message:  fmt.Sprintf("Working capital covers only %.1f months of operations.", months),
			Action:   "Increase working capital to at least 2-3 months of operating expenses for safety.",
		}
	case months > 4:
		return &Insight{
			Category: CategoryRecommendation,
			Title:    "Excess Working Capital",
			Message:  fmt.Sprintf("Working capital covers %.1f months - may be excessive.", months),
			Action:   "Consider investing excess funds in short-term instruments or reducing initial capital.",
		}
	}
	return nil
}

func evalRecoveryRate(f Facts) *Insight {
	rate := f.Inputs.RecoveryRate

	switch {
	case rate < 62:
		return &Insight{
			Category: CategoryWarning,
			Title:    "Below Average Recovery Rate",
			Message:  fmt.Sprintf("Recovery rate of %g%% is below industry standard (65-68%%).", rate),
			Action:   "Invest in better machinery, training, or quality paddy procurement to improve recovery.",
		}
	case rate > 68:
		return &Insight{
			Category: CategoryPositive,
			Title:    "Excellent Recovery Rate",
			Message:  fmt.Sprintf("Recovery rate of %g%% is excellent!", rate),
			Action:   "This competitive advantage should be maintained through regular maintenance and quality control.",
		}
	}
	return nil
}

func evalOperatingHours(f Facts) *Insight {
	hours := f.Inputs.HoursPerDay

	switch {
	case hours < 8:
		return &Insight{
			Category: CategoryRecommendation,
			Title:    "Underutilized Capacity",
			Message:  fmt.Sprintf("Operating only %d hours/day means unused capacity.", hours),
			Action:   "Consider increasing operating hours to spread fixed costs and improve profitability.",
		}
	case hours > 16:
		return &Insight{
			Category: CategoryWarning,
			Title:    "Intensive Operations",
			Message:  fmt.Sprintf("Operating %d hours/day may lead to higher maintenance costs.", hours),
			Action:   "Ensure adequate maintenance budget and schedule regular equipment inspections.",
		}
	}
	return nil
}

func evalFiveYearROI(f Facts) *Insight {
	if f.Capital.TotalProjectCost <= 0 || len(f.Years) == 0 {
		return nil
	}
	totalPAT := 0.0
	for _, y := range f.Years {
		totalPAT += y.PAT
	}
	roi := totalPAT / f.Capital.TotalProjectCost * 100

	switch {
	case roi < 50:
		return &Insight{
			Category: CategoryWarning,
			Title:    "Low 5-Year ROI",
			Message:  fmt.Sprintf("5-year ROI of %.1f%% is below expectations (typically 80-120%%).", roi),
			Detail: fmt.Sprintf("Projected 5-year PAT of ₹%.0f against an investment of ₹%.0f. If ROI stays below 60%%, compare against alternative uses of capital.",
				totalPAT, f.Capital.TotalProjectCost),
			Action: "Raise the sale price, trim operating costs, or improve financing terms; reassess viability if the gap persists.",
		}
	case roi > 100:
		return &Insight{
			Category: CategoryPositive,
			Title:    "Strong 5-Year ROI",
			Message:  fmt.Sprintf("5-year ROI of %.1f%% indicates excellent returns!", roi),
			Detail: fmt.Sprintf("The project more than recovers its ₹%.0f investment within the horizon, averaging %.1f%% per year.",
				f.Capital.TotalProjectCost, roi/5),
			Action: "Proceed with confidence, reinvest the bulk of profits, and consider phased capacity expansion from year 3.",
		}
	}
	return nil
}

// evalEquityPayback scans the projected years in order and reports the first
// year whose cumulative cash covers the equity investment. Not finding one
// within the horizon is itself a reportable state.
func evalEquityPayback(f Facts) *Insight {
	if len(f.Years) == 0 {
		return nil
	}
	if year, ok := equityPaybackYear(f.Years, f.Capital.EquityAmount); ok {
		return &Insight{
			Category: CategoryPositive,
			Title:    fmt.Sprintf("Equity Payback in Year %d", year),
			Message:  fmt.Sprintf("Your equity investment will be recovered in approximately %d years.", year),
			Action:   "Quick payback period indicates a financially sound project.",
		}
	}
	return &Insight{
		Category: CategoryWarning,
		Title:    "Long Payback Period",
		Message:  "Equity may take more than 5 years to recover fully.",
		Action:   "Consider this long-term commitment and ensure adequate financial cushion.",
	}
}

func evalSalePrice(f Facts) *Insight {
	if f.Inputs.RicePricePerKg < 30 {
		return &Insight{
			Category: CategoryWarning,
			Title:    "Low Sale Price",
			Message:  fmt.Sprintf("Rice sale price of ₹%g/kg is on the lower end.", f.Inputs.RicePricePerKg),
			Action:   "Explore value addition (branding, packaging) or premium varieties for better margins.",
		}
	}
	return nil
}

func evalRawMaterialRatio(f Facts) *Insight {
	if f.Revenue.Total <= 0 {
		return nil
	}
	pct := f.Costs.Paddy / f.Revenue.Total * 100

	switch {
	case pct > 70:
		return &Insight{
			Category: CategoryWarning,
			Title:    "High Raw Material Cost",
			Message:  fmt.Sprintf("Raw material is %.1f%% of revenue - very high!", pct),
			Action:   "Negotiate better paddy prices, consider contract farming, or increase sale prices.",
		}
	case pct < 50:
		return &Insight{
			Category: CategoryPositive,
			Title:    "Efficient Raw Material Management",
			Message:  fmt.Sprintf("Raw material at %.1f%% of revenue shows good cost control.", pct),
			Action:   "Maintain this efficiency through strategic procurement and inventory management.",
		}
	}
	return nil
}

func evalRevenuePerEmployee(f Facts) *Insight {
	headcount := f.Inputs.TotalHeadcount()
	if headcount <= 0 {
		return nil
	}
	perEmployee := f.Revenue.Total / float64(headcount)

	if perEmployee < 1000000 {
		return &Insight{
			Category: CategoryRecommendation,
			Title:    "Review Manpower Productivity",
			Message:  fmt.Sprintf("Revenue per employee is ₹%.0f/year.", perEmployee),
			Action:   "Consider automation, training programs, or workflow optimization to improve productivity.",
		}
	}
	return nil
}

func evalOperatingDays(f Facts) *Insight {
	if f.Inputs.DaysPerMonth < 24 {
		return &Insight{
			Category: CategoryRecommendation,
			Title:    "Seasonal Operations",
			Message:  fmt.Sprintf("Operating %d days/month suggests seasonal business.", f.Inputs.DaysPerMonth),
			Action:   "Plan for adequate working capital during off-season and diversify product range if possible.",
		}
	}
	return nil
}

// equityPaybackYear returns the first year (1-based) whose cumulative cash
// reaches the equity amount; earliest crossing wins.
func equityPaybackYear(years []projection.YearlyFinancials, equity float64) (int, bool) {
	for _, y := range years {
		if y.CumulativeCash >= equity {
			return y.Year, true
		}
	}
	return 0, false
}

func safeMonthsOfRunway(workingCapital, monthlyBurn float64) float64 {
	if monthlyBurn >= 0 {
		return 0
	}
	return workingCapital / -monthlyBurn
}
