package plan

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ricemill_planner/pkg/core/config"
	"ricemill_planner/pkg/core/export"
	"ricemill_planner/pkg/core/pipeline"
)

var baseInputs = config.DefaultInputs()

// InitHandler installs the server-level base inputs that client payloads are
// overlaid on. Call once at startup, before serving.
func InitHandler(base config.ProjectInputs) {
	baseInputs = base
}

// ComputeRequest overlays user inputs on the server's base inputs. Fields the
// client omits keep their base values, so a partial payload is enough to
// explore one lever at a time.
type ComputeRequest struct {
	MillTPH float64              `json:"mill_tph"`
	Inputs  config.ProjectInputs `json:"inputs"`
}

func cors(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// decodeRequest reads the request body over the base inputs so omitted
// fields keep their server-level values.
func decodeRequest(r *http.Request) (config.ProjectInputs, config.MillConfig, error) {
	req := ComputeRequest{Inputs: baseInputs}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return config.ProjectInputs{}, config.MillConfig{}, fmt.Errorf("decode request: %w", err)
	}
	mill := config.Mill5TPH()
	if req.MillTPH > 0 {
		mill = config.StandardMill(req.MillTPH)
	}
	return req.Inputs, mill, nil
}

// HandleCompute runs the full planning pipeline for the posted scenario and
// returns the report as JSON.
func HandleCompute(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST, OPTIONS") {
		return
	}
	in, mill, err := decodeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := pipeline.Compute(in, mill)
	if err != nil {
		fmt.Printf("[PLAN] Compute rejected: %v\n", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	fmt.Printf("[PLAN] Computed run %s (%.1f TPH, revenue %.0f)\n", report.RunID, mill.TPH, report.Revenue.Total)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// HandleExportCSV runs the pipeline and streams the five-year projection as
// a CSV download.
func HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST, OPTIONS") {
		return
	}
	in, mill, err := decodeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := pipeline.Compute(in, mill)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=projection.csv")
	if err := export.WriteProjectionCSV(w, report.Projection); err != nil {
		fmt.Printf("[PLAN] CSV export failed: %v\n", err)
	}
}

// HandleReport runs the pipeline and returns the rendered HTML report.
func HandleReport(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST, OPTIONS") {
		return
	}
	in, mill, err := decodeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := pipeline.Compute(in, mill)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	md := export.BuildReportMarkdown(report)
	html, err := export.RenderHTML(md)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

// HandleDefaults returns the server's base input set so clients can prefill
// forms.
func HandleDefaults(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET, OPTIONS") {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(baseInputs)
}
