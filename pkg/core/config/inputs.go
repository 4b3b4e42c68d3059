// Package config defines the user-configurable parameters of a rice mill
// project, their documented defaults, boundary validation, and scenario file
// loading. Everything downstream of this package assumes validated inputs.
package config

// ProjectInputs holds every user-configurable parameter of a project run.
// All monetary amounts are in rupees; rates marked (%) are whole percentages
// (12 means 12%), converted to decimals inside the engines.
type ProjectInputs struct {
	// Capital costs
	LandCost         float64 `json:"land_cost" yaml:"land_cost"`
	BuildingCost     float64 `json:"building_cost" yaml:"building_cost"`
	MachineryCost    float64 `json:"machinery_cost" yaml:"machinery_cost"`
	ElectricalCost   float64 `json:"electrical_cost" yaml:"electrical_cost"`
	PreoperativeCost float64 `json:"preoperative_cost" yaml:"preoperative_cost"`
	MiscFixedAssets  float64 `json:"misc_fixed_assets" yaml:"misc_fixed_assets"`
	WorkingCapital   float64 `json:"working_capital" yaml:"working_capital"`

	// Financing
	LoanAmount       float64 `json:"loan_amount" yaml:"loan_amount"`
	LoanInterestRate float64 `json:"loan_interest_rate" yaml:"loan_interest_rate"` // % p.a.
	LoanTenureYears  int     `json:"loan_tenure" yaml:"loan_tenure"`

	// Production
	HoursPerDay  int     `json:"hours_per_day" yaml:"hours_per_day"`
	DaysPerMonth int     `json:"days_per_month" yaml:"days_per_month"`
	RecoveryRate float64 `json:"recovery_rate" yaml:"recovery_rate"` // % of paddy milled to rice

	// Product prices
	RicePricePerKg       float64 `json:"sale_price_per_kg" yaml:"sale_price_per_kg"`
	PaddyPricePerQuintal float64 `json:"paddy_price_per_quintal" yaml:"paddy_price_per_quintal"`
	BranPricePerKg       float64 `json:"bran_price_per_kg" yaml:"bran_price_per_kg"`
	HuskPricePerKg       float64 `json:"husk_price_per_kg" yaml:"husk_price_per_kg"`
	BrokenRicePricePerKg float64 `json:"broken_rice_price_per_kg" yaml:"broken_rice_price_per_kg"`

	// Manpower (monthly salaries and headcounts)
	ManagerSalary      float64 `json:"manager_salary" yaml:"manager_salary"`
	SupervisorSalary   float64 `json:"supervisor_salary" yaml:"supervisor_salary"`
	SkilledSalary      float64 `json:"skilled_workers_salary" yaml:"skilled_workers_salary"`
	NumSkilledWorkers  int     `json:"num_skilled_workers" yaml:"num_skilled_workers"`
	UnskilledSalary    float64 `json:"unskilled_workers_salary" yaml:"unskilled_workers_salary"`
	NumUnskilledWorker int     `json:"num_unskilled_workers" yaml:"num_unskilled_workers"`
	WatchmanSalary     float64 `json:"watchman_salary" yaml:"watchman_salary"`

	// Utilities and overheads
	PowerCostMonthly     float64 `json:"power_cost_monthly" yaml:"power_cost_monthly"`
	WaterCostMonthly     float64 `json:"water_cost_monthly" yaml:"water_cost_monthly"`
	FuelCostMonthly      float64 `json:"fuel_cost_monthly" yaml:"fuel_cost_monthly"`
	MaintenancePercent   float64 `json:"maintenance_percentage" yaml:"maintenance_percentage"` // % of fixed capital
	InsurancePercent     float64 `json:"insurance_percentage" yaml:"insurance_percentage"`     // % of fixed capital
	AdminExpensesMonthly float64 `json:"admin_expenses_monthly" yaml:"admin_expenses_monthly"`
	PackingCostPerKg     float64 `json:"packing_cost_per_kg" yaml:"packing_cost_per_kg"`
	TransportCostPerKg   float64 `json:"transport_cost_per_kg" yaml:"transport_cost_per_kg"`

	// Tax and growth
	TaxRate          float64 `json:"tax_rate" yaml:"tax_rate"`                     // % of PBT
	AnnualGrowthRate float64 `json:"annual_growth_rate" yaml:"annual_growth_rate"` // % applied to revenue and costs
}

// DefaultInputs returns the documented defaults for every parameter. The
// default loan is 70% of the default project cost, the usual bank funding
// share for this class of project.
func DefaultInputs() ProjectInputs {
	in := ProjectInputs{
		LandCost:         800000,
		BuildingCost:     2500000,
		MachineryCost:    5000000,
		ElectricalCost:   800000,
		PreoperativeCost: 500000,
		MiscFixedAssets:  400000,
		WorkingCapital:   1500000,

		LoanInterestRate: 12.0,
		LoanTenureYears:  10,

		HoursPerDay:  8,
		DaysPerMonth: 26,
		RecoveryRate: 65,

		RicePricePerKg:       35.0,
		PaddyPricePerQuintal: 2000.0,
		BranPricePerKg:       15.0,
		HuskPricePerKg:       2.0,
		BrokenRicePricePerKg: 20.0,

		ManagerSalary:      35000,
		SupervisorSalary:   25000,
		SkilledSalary:      18000,
		NumSkilledWorkers:  6,
		UnskilledSalary:    12000,
		NumUnskilledWorker: 8,
		WatchmanSalary:     10000,

		PowerCostMonthly:     80000,
		WaterCostMonthly:     8000,
		FuelCostMonthly:      15000,
		MaintenancePercent:   3.0,
		InsurancePercent:     1.0,
		AdminExpensesMonthly: 15000,
		PackingCostPerKg:     0.5,
		TransportCostPerKg:   1.0,

		TaxRate:          30.0,
		AnnualGrowthRate: 5.0,
	}
	in.LoanAmount = 0.7 * (in.TotalFixedCapital() + in.WorkingCapital)
	return in
}

// CapitalCosts returns the named capital-cost line items.
func (in ProjectInputs) CapitalCosts() map[string]float64 {
	return map[string]float64{
		"Land":                       in.LandCost,
		"Building & Civil Works":     in.BuildingCost,
		"Plant & Machinery":          in.MachineryCost,
		"Electrical Installation":    in.ElectricalCost,
		"Pre-operative Expenses":     in.PreoperativeCost,
		"Miscellaneous Fixed Assets": in.MiscFixedAssets,
	}
}

// TotalFixedCapital sums the capital-cost line items.
func (in ProjectInputs) TotalFixedCapital() float64 {
	return in.LandCost + in.BuildingCost + in.MachineryCost + in.ElectricalCost +
		in.PreoperativeCost + in.MiscFixedAssets
}

// TotalHeadcount counts all employees: manager, supervisor and watchman are
// single fixed roles, skilled and unskilled are variable.
func (in ProjectInputs) TotalHeadcount() int {
	return 3 + in.NumSkilledWorkers + in.NumUnskilledWorker
}
