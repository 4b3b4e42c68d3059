package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"ricemill_planner/pkg/api/plan"
	"ricemill_planner/pkg/core/config"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Optional server-level defaults file overriding the built-in inputs.
	defaultsPath := os.Getenv("PLAN_DEFAULTS")
	if defaultsPath == "" {
		defaultsPath = "config/defaults.yaml"
	}
	if _, err := os.Stat(defaultsPath); err == nil {
		base, err := config.LoadScenario(defaultsPath)
		if err != nil {
			fmt.Printf("[FATAL] Failed to load defaults from %s: %v\n", defaultsPath, err)
			os.Exit(1)
		}
		plan.InitHandler(base)
		fmt.Printf("[CONFIG] Loaded base inputs from %s\n", defaultsPath)
	}

	http.HandleFunc("/api/plan/compute", plan.HandleCompute)
	http.HandleFunc("/api/plan/export/csv", plan.HandleExportCSV)
	http.HandleFunc("/api/plan/report", plan.HandleReport)
	http.HandleFunc("/api/plan/defaults", plan.HandleDefaults)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/plan/compute     (full plan report as JSON)")
	fmt.Println("  - POST /api/plan/export/csv  (five-year projection CSV)")
	fmt.Println("  - POST /api/plan/report      (rendered HTML report)")
	fmt.Println("  - GET  /api/plan/defaults    (standard input set)")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
