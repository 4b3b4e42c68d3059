// Package export serializes a computed report into tabular and document
// artifacts. Pure data transformation; no engine logic lives here.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"ricemill_planner/pkg/core/projection"
)

// projectionHeader is the column order of the yearly projection table.
var projectionHeader = []string{
	"Year", "Revenue", "Operating Costs", "EBITDA", "Depreciation", "EBIT",
	"Interest", "PBT", "Tax", "PAT", "Cash Flow", "Cumulative Cash", "Loan Balance",
}

// WriteProjectionCSV writes the yearly projection as CSV rows. Amounts are
// written as plain rupee values rounded to two decimals; display formatting
// (lakh/crore grouping) belongs to the presentation layer.
func WriteProjectionCSV(w io.Writer, years []projection.YearlyFinancials) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(projectionHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, y := range years {
		row := []string{
			fmt.Sprintf("%d", y.Year),
			money(y.Revenue),
			money(y.OperatingCosts),
			money(y.EBITDA),
			money(y.Depreciation),
			money(y.EBIT),
			money(y.Interest),
			money(y.PBT),
			money(y.Tax),
			money(y.PAT),
			money(y.CashFlow),
			money(y.CumulativeCash),
			money(y.LoanBalance),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for year %d: %w", y.Year, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
