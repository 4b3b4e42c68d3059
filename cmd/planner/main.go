package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"ricemill_planner/pkg/core/config"
	"ricemill_planner/pkg/core/export"
	"ricemill_planner/pkg/core/pipeline"
)

func main() {
	// Load environment variables
	godotenv.Load()

	scenarioPath := flag.String("scenario", "", "scenario file overriding the defaults (.yaml, .json or .hjson)")
	millTPH := flag.Float64("mill", 5, "mill capacity in tonnes per hour")
	csvPath := flag.String("csv", "", "write the five-year projection table to this CSV file")
	reportPath := flag.String("report", "", "write the full report to this Markdown file")
	flag.Parse()

	in := config.DefaultInputs()
	if *scenarioPath != "" {
		loaded, err := config.LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("Error: load scenario %s: %v", *scenarioPath, err)
		}
		in = loaded
		fmt.Printf("[PLANNER] Loaded scenario from %s\n", *scenarioPath)
	}

	mill := config.StandardMill(*millTPH)
	report, err := pipeline.Compute(in, mill)
	if err != nil {
		log.Fatalf("Error: compute plan: %v", err)
	}

	fmt.Printf("[PLANNER] Run %s\n", report.RunID)
	fmt.Printf("[PLANNER] Total project cost: %.0f (loan %.0f, equity %.0f)\n",
		report.Capital.TotalProjectCost, report.Capital.LoanAmount, report.Capital.EquityAmount)
	fmt.Printf("[PLANNER] Annual revenue: %.0f, operating costs: %.0f, PAT: %.0f\n",
		report.Revenue.Total, report.Costs.Total, report.Cascade.PAT)
	if report.BreakEven.Defined {
		fmt.Printf("[PLANNER] Break-even: %.0f kg/year (%.1f%% of capacity)\n",
			report.BreakEven.BreakevenKg, 100*report.BreakEven.BreakevenKg/report.Production.RiceKgYear)
	} else {
		fmt.Println("[PLANNER] Break-even undefined: contribution per kg is not positive")
	}
	for _, ins := range report.Insights {
		fmt.Printf("[%s] %s: %s\n", ins.Category, ins.Title, ins.Message)
	}

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatalf("Error: create %s: %v", *csvPath, err)
		}
		defer f.Close()
		if err := export.WriteProjectionCSV(f, report.Projection); err != nil {
			log.Fatalf("Error: write projection CSV: %v", err)
		}
		fmt.Printf("[PLANNER] Projection written to %s\n", *csvPath)
	}

	if *reportPath != "" {
		md := export.BuildReportMarkdown(report)
		if !export.ValidateMarkdown(md) {
			log.Fatal("Error: generated report failed markdown validation")
		}
		if err := os.WriteFile(*reportPath, []byte(md), 0644); err != nil {
			log.Fatalf("Error: write report: %v", err)
		}
		fmt.Printf("[PLANNER] Report written to %s\n", *reportPath)
	}

	if *csvPath == "" && *reportPath == "" {
		// No output file requested, dump the full report as JSON to stdout.
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("Error: encode report: %v", err)
		}
	}
}
