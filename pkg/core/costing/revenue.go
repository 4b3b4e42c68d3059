// Package costing prices production volumes into annual revenue and
// aggregates the operating cost lines.
package costing

import (
	"ricemill_planner/pkg/core/config"
	"ricemill_planner/pkg/core/production"
)

// Revenue is the annual revenue split by product line.
type Revenue struct {
	Rice       float64 `json:"rice"`
	Bran       float64 `json:"bran"`
	Husk       float64 `json:"husk"`
	BrokenRice float64 `json:"broken_rice"`
	Total      float64 `json:"total"`
}

// AggregateRevenue prices each product stream. Rice is priced per kg of
// milled output; by-products are priced per kg of their own tonnage.
func AggregateRevenue(v production.Volumes, in config.ProjectInputs) Revenue {
	rev := Revenue{
		Rice:       v.RiceKgYear * in.RicePricePerKg,
		Bran:       v.BranTonnesYear * 1000 * in.BranPricePerKg,
		Husk:       v.HuskTonnesYear * 1000 * in.HuskPricePerKg,
		BrokenRice: v.BrokenRiceTonnesYear * 1000 * in.BrokenRicePricePerKg,
	}
	rev.Total = rev.Rice + rev.Bran + rev.Husk + rev.BrokenRice
	return rev
}
