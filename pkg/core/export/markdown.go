package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"ricemill_planner/pkg/core/analysis"
	"ricemill_planner/pkg/core/pipeline"
)

// categoryOrder fixes the section order of the insight report so critical
// findings always appear before cosmetic ones.
var categoryOrder = []analysis.Category{
	analysis.CategoryCritical,
	analysis.CategoryWarning,
	analysis.CategoryRecommendation,
	analysis.CategoryPositive,
}

var categoryHeadings = map[analysis.Category]string{
	analysis.CategoryCritical:       "Critical Issues",
	analysis.CategoryWarning:        "Warnings",
	analysis.CategoryRecommendation: "Recommendations",
	analysis.CategoryPositive:       "Strengths",
}

// BuildReportMarkdown renders a plan report as a Markdown document with a
// summary table, the yearly projection, and the diagnostic insights grouped
// by severity.
func BuildReportMarkdown(r *pipeline.Report) string {
	var b strings.Builder

	b.WriteString("# Rice Mill Project Report\n\n")
	fmt.Fprintf(&b, "Run %s, generated %s\n\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04 MST"))

	b.WriteString("## Project Summary\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Mill Capacity | %.1f TPH |\n", r.Mill.TPH)
	fmt.Fprintf(&b, "| Total Project Cost | %s |\n", inr(r.Capital.TotalProjectCost))
	fmt.Fprintf(&b, "| Loan Amount | %s |\n", inr(r.Capital.LoanAmount))
	fmt.Fprintf(&b, "| Equity Amount | %s |\n", inr(r.Capital.EquityAmount))
	fmt.Fprintf(&b, "| Monthly EMI | %s |\n", inr(r.Capital.EMI))
	fmt.Fprintf(&b, "| Annual Rice Output | %.0f tonnes |\n", r.Production.RiceTonnesYear)
	fmt.Fprintf(&b, "| Annual Revenue | %s |\n", inr(r.Revenue.Total))
	fmt.Fprintf(&b, "| Annual Operating Costs | %s |\n", inr(r.Costs.Total))
	fmt.Fprintf(&b, "| PAT (Year 1 Base) | %s |\n", inr(r.Cascade.PAT))
	if margin, ok := r.Ratios.NetMargin.Value(); ok {
		fmt.Fprintf(&b, "| Net Profit Margin | %.2f%% |\n", margin)
	}
	if r.BreakEven.Defined {
		fmt.Fprintf(&b, "| Break-even Volume | %.0f kg/year |\n", r.BreakEven.BreakevenKg)
	}
	b.WriteString("\n")

	b.WriteString("## Five-Year Projection\n\n")
	b.WriteString("| Year | Revenue | PAT | Cash Flow | Cumulative Cash | Loan Balance |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, y := range r.Projection {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			y.Year, inr(y.Revenue), inr(y.PAT), inr(y.CashFlow), inr(y.CumulativeCash), inr(y.LoanBalance))
	}
	b.WriteString("\n")

	b.WriteString("## Diagnostics\n\n")
	grouped := analysis.ByCategory(r.Insights)
	for _, cat := range categoryOrder {
		insights := grouped[cat]
		if len(insights) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", categoryHeadings[cat])
		for _, ins := range insights {
			fmt.Fprintf(&b, "- **%s**: %s", ins.Title, ins.Message)
			if ins.Detail != "" {
				fmt.Fprintf(&b, " (%s)", ins.Detail)
			}
			b.WriteString("\n")
			if ins.Action != "" {
				fmt.Fprintf(&b, "  - Action: %s\n", ins.Action)
			}
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String()) + "\n"
}

// RenderHTML converts a Markdown report to HTML.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// ValidateMarkdown checks that the string parses as Markdown. Goldmark is
// very permissive, so this is a sanity check rather than strict validation.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil
}

// inr formats a rupee amount with Indian lakh/crore grouping for readability.
func inr(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	// Indian grouping: last three digits, then pairs.
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		s = strings.Join(parts, ",") + "," + tail
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}
