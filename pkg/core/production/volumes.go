// Package production converts mill capacity and operating parameters into
// annual paddy intake and product output volumes.
package production

import "ricemill_planner/pkg/core/config"

// Volumes holds the production quantities for one representative year.
type Volumes struct {
	PaddyTonnesDay   float64 `json:"paddy_tonnes_day"`
	PaddyTonnesMonth float64 `json:"paddy_tonnes_month"`
	PaddyTonnesYear  float64 `json:"paddy_tonnes_year"`

	RiceTonnesYear float64 `json:"rice_tonnes_year"`
	RiceKgYear     float64 `json:"rice_kg_year"`

	BranTonnesYear       float64 `json:"bran_tonnes_year"`
	HuskTonnesYear       float64 `json:"husk_tonnes_year"`
	BrokenRiceTonnesYear float64 `json:"broken_rice_tonnes_year"`
}

// Model derives the year's volumes. Rice output is paddy intake scaled by the
// recovery rate; by-products are fixed fractions of the raw paddy intake and
// intentionally independent of the recovery rate (separate material streams,
// see config.MillConfig).
func Model(mill config.MillConfig, in config.ProjectInputs) Volumes {
	paddyDay := mill.TPH * float64(in.HoursPerDay)
	paddyMonth := paddyDay * float64(in.DaysPerMonth)
	paddyYear := paddyMonth * 12

	riceTonnes := paddyYear * in.RecoveryRate / 100

	return Volumes{
		PaddyTonnesDay:   paddyDay,
		PaddyTonnesMonth: paddyMonth,
		PaddyTonnesYear:  paddyYear,

		RiceTonnesYear: riceTonnes,
		RiceKgYear:     riceTonnes * 1000,

		BranTonnesYear:       paddyYear * mill.BranFraction,
		HuskTonnesYear:       paddyYear * mill.HuskFraction,
		BrokenRiceTonnesYear: paddyYear * mill.BrokenRiceFraction,
	}
}
