// Package analysis is the diagnostic rule engine: it classifies the computed
// ratios of a project run into categorized, human-readable insights.
package analysis

import (
	"ricemill_planner/pkg/core/breakeven"
	"ricemill_planner/pkg/core/capital"
	"ricemill_planner/pkg/core/config"
	"ricemill_planner/pkg/core/costing"
	"ricemill_planner/pkg/core/production"
	"ricemill_planner/pkg/core/profit"
	"ricemill_planner/pkg/core/projection"
)

// Category grades an insight.
type Category string

const (
	CategoryCritical       Category = "critical"
	CategoryWarning        Category = "warning"
	CategoryRecommendation Category = "recommendation"
	CategoryPositive       Category = "positive"
)

// Insight is one diagnostic finding. Immutable once produced.
type Insight struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
	Action   string   `json:"action"`
}

// Facts bundles everything the rules inspect: raw inputs plus every derived
// result of the pipeline.
type Facts struct {
	Inputs config.ProjectInputs

	Capital    capital.Structure
	Production production.Volumes
	Revenue    costing.Revenue
	Costs      costing.OperatingCosts
	Cascade    profit.Cascade
	BreakEven  breakeven.Result
	Years      []projection.YearlyFinancials
}
