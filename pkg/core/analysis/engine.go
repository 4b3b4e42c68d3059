package analysis

// Diagnose evaluates every rule group against the facts and collects the
// insights that fire. Groups are independent: one run can yield findings in
// all four categories at once. The function is pure; identical facts always
// produce identical insights.
func Diagnose(f Facts) []Insight {
	var insights []Insight
	for _, r := range rules {
		if ins := r.eval(f); ins != nil {
			insights = append(insights, *ins)
		}
	}
	return insights
}

// ByCategory groups insights for presentation, preserving rule order within
// each category.
func ByCategory(insights []Insight) map[Category][]Insight {
	grouped := make(map[Category][]Insight)
	for _, ins := range insights {
		grouped[ins.Category] = append(grouped[ins.Category], ins)
	}
	return grouped
}
