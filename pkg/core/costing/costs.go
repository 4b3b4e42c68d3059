package costing

import (
	"ricemill_planner/pkg/core/config"
	"ricemill_planner/pkg/core/production"
)

// quintalsPerTonne converts paddy tonnage to the quintal units paddy is
// procured in (1 tonne = 10 quintals of 100 kg).
const quintalsPerTonne = 10

// OperatingCosts is the annual operating cost breakdown.
type OperatingCosts struct {
	Paddy float64 `json:"paddy"`

	Manpower      map[string]float64 `json:"manpower"`
	TotalManpower float64            `json:"total_manpower"`

	Utilities   float64 `json:"utilities"`
	Maintenance float64 `json:"maintenance"`
	Insurance   float64 `json:"insurance"`
	Admin       float64 `json:"admin"`
	Packing     float64 `json:"packing"`
	Transport   float64 `json:"transport"`

	Total float64 `json:"total"`
}

// AggregateCosts builds the operating cost lines for one representative year.
// Maintenance and insurance are percentages of total fixed capital; packing
// and transport scale with milled rice output.
func AggregateCosts(v production.Volumes, totalFixedCapital float64, in config.ProjectInputs) OperatingCosts {
	manpower := map[string]float64{
		"Manager":           in.ManagerSalary * 12,
		"Supervisor":        in.SupervisorSalary * 12,
		"Skilled Workers":   in.SkilledSalary * float64(in.NumSkilledWorkers) * 12,
		"Unskilled Workers": in.UnskilledSalary * float64(in.NumUnskilledWorker) * 12,
		"Watchman":          in.WatchmanSalary * 12,
	}
	totalManpower := 0.0
	for _, c := range manpower {
		totalManpower += c
	}

	c := OperatingCosts{
		Paddy:         v.PaddyTonnesYear * quintalsPerTonne * in.PaddyPricePerQuintal,
		Manpower:      manpower,
		TotalManpower: totalManpower,
		Utilities:     (in.PowerCostMonthly + in.WaterCostMonthly + in.FuelCostMonthly) * 12,
		Maintenance:   in.MaintenancePercent / 100 * totalFixedCapital,
		Insurance:     in.InsurancePercent / 100 * totalFixedCapital,
		Admin:         in.AdminExpensesMonthly * 12,
		Packing:       in.PackingCostPerKg * v.RiceKgYear,
		Transport:     in.TransportCostPerKg * v.RiceKgYear,
	}
	c.Total = c.Paddy + c.TotalManpower + c.Utilities + c.Maintenance +
		c.Insurance + c.Admin + c.Packing + c.Transport
	return c
}

// FixedAnnual returns the cost lines treated as fixed for break-even
// purposes (everything except paddy, packing and transport).
func (c OperatingCosts) FixedAnnual() float64 {
	return c.TotalManpower + c.Utilities + c.Maintenance + c.Insurance + c.Admin
}

// VariableAnnual returns the production-linked cost lines.
func (c OperatingCosts) VariableAnnual() float64 {
	return c.Paddy + c.Packing + c.Transport
}
