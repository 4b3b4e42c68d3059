package config

import "fmt"

// Validate rejects invalid configurations at the boundary so the engines never
// see NaN-producing inputs. Errors name the offending field and value.
func Validate(in ProjectInputs, mill MillConfig) error {
	if mill.TPH <= 0 {
		return fmt.Errorf("mill throughput must be positive, got %.2f tph", mill.TPH)
	}
	if mill.BranFraction < 0 || mill.HuskFraction < 0 || mill.BrokenRiceFraction < 0 {
		return fmt.Errorf("by-product fractions must be non-negative")
	}

	nonNegative := map[string]float64{
		"land_cost":                in.LandCost,
		"building_cost":            in.BuildingCost,
		"machinery_cost":           in.MachineryCost,
		"electrical_cost":          in.ElectricalCost,
		"preoperative_cost":        in.PreoperativeCost,
		"misc_fixed_assets":        in.MiscFixedAssets,
		"working_capital":          in.WorkingCapital,
		"loan_amount":              in.LoanAmount,
		"loan_interest_rate":       in.LoanInterestRate,
		"sale_price_per_kg":        in.RicePricePerKg,
		"paddy_price_per_quintal":  in.PaddyPricePerQuintal,
		"bran_price_per_kg":        in.BranPricePerKg,
		"husk_price_per_kg":        in.HuskPricePerKg,
		"broken_rice_price_per_kg": in.BrokenRicePricePerKg,
		"manager_salary":           in.ManagerSalary,
		"supervisor_salary":        in.SupervisorSalary,
		"skilled_workers_salary":   in.SkilledSalary,
		"unskilled_workers_salary": in.UnskilledSalary,
		"watchman_salary":          in.WatchmanSalary,
		"power_cost_monthly":       in.PowerCostMonthly,
		"water_cost_monthly":       in.WaterCostMonthly,
		"fuel_cost_monthly":        in.FuelCostMonthly,
		"maintenance_percentage":   in.MaintenancePercent,
		"insurance_percentage":     in.InsurancePercent,
		"admin_expenses_monthly":   in.AdminExpensesMonthly,
		"packing_cost_per_kg":      in.PackingCostPerKg,
		"transport_cost_per_kg":    in.TransportCostPerKg,
		"tax_rate":                 in.TaxRate,
	}
	for field, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", field, v)
		}
	}

	if in.NumSkilledWorkers < 0 || in.NumUnskilledWorker < 0 {
		return fmt.Errorf("worker headcounts must be non-negative")
	}
	if in.LoanTenureYears < 0 {
		return fmt.Errorf("loan_tenure must be non-negative, got %d years", in.LoanTenureYears)
	}
	if in.LoanAmount > 0 && in.LoanTenureYears == 0 {
		return fmt.Errorf("loan_tenure must be positive when a loan is taken")
	}
	if in.HoursPerDay < 1 || in.HoursPerDay > 24 {
		return fmt.Errorf("hours_per_day must be in [1,24], got %d", in.HoursPerDay)
	}
	if in.DaysPerMonth < 1 || in.DaysPerMonth > 31 {
		return fmt.Errorf("days_per_month must be in [1,31], got %d", in.DaysPerMonth)
	}
	if in.RecoveryRate <= 0 || in.RecoveryRate > 100 {
		return fmt.Errorf("recovery_rate must be in (0,100], got %v", in.RecoveryRate)
	}

	// A loan larger than the project leaves negative equity; reject rather
	// than clamp so the caller sees the misconfiguration.
	totalProjectCost := in.TotalFixedCapital() + in.WorkingCapital
	if in.LoanAmount > totalProjectCost {
		return fmt.Errorf("loan_amount %.2f exceeds total project cost %.2f", in.LoanAmount, totalProjectCost)
	}

	if in.AnnualGrowthRate < -100 {
		return fmt.Errorf("annual_growth_rate below -100%% is meaningless, got %v", in.AnnualGrowthRate)
	}
	return nil
}
