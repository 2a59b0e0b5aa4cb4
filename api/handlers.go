/*
handlers.go - HTTP API handlers for the salary enhancement engine

PURPOSE:
  Exposes the calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  Calculation:
    POST   /api/calculate           Run one enhancement calculation

  Reference data:
    GET    /api/grades              Grade enumeration for input UI
    GET    /api/scales/{period}     Full pay table dump (historical|current)

  Scenarios:
    GET    /api/scenarios           List demo scenarios
    GET    /api/scenarios/{id}      Run a demo scenario

REQUEST FLOW:
  1. Parse HTTP request
  2. Call the engine (synchronous, no hidden state)
  3. Serialize response
  4. Map engine errors to status codes

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: User-correctable input errors (all engine client error kinds)
  - 404: Unknown scale period or scenario
  - 500: Reference-data integrity failures (stage unresolvable)
  Each error carries a stable machine-readable code alongside the message.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario catalog
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shinystars75/salary-engine/engine"
	"github.com/shinystars75/salary-engine/payscale"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *engine.SalaryEngine
}

// NewHandler creates a new handler over the given engine.
func NewHandler(eng *engine.SalaryEngine) *Handler {
	return &Handler{Engine: eng}
}

// =============================================================================
// CALCULATION HANDLER
// =============================================================================

// Calculate runs one enhancement calculation.
// POST /api/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.Engine.Calculate(toSalaryInputs(req))
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCalculationDTO(result))
}

// =============================================================================
// REFERENCE DATA HANDLERS
// =============================================================================

// ListGrades returns the grade enumeration of the current pay table.
// GET /api/grades
func (h *Handler) ListGrades(w http.ResponseWriter, r *http.Request) {
	current := h.Engine.Current()

	grades := current.Grades()
	dtos := make([]GradeDTO, len(grades))
	for i, g := range grades {
		min, _ := current.Minimum(g)
		max, _ := current.Maximum(g)
		dtos[i] = GradeDTO{
			Grade:   g,
			Minimum: min,
			Maximum: max,
			Stages:  current.StageCount(g),
		}
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetScale returns a full pay table dump.
// GET /api/scales/{period}  where period is "historical" or "current"
func (h *Handler) GetScale(w http.ResponseWriter, r *http.Request) {
	var table *payscale.Table
	switch chi.URLParam(r, "period") {
	case "historical":
		table = h.Engine.Historical()
	case "current":
		table = h.Engine.Current()
	default:
		writeError(w, http.StatusNotFound, "Unknown scale period (use historical or current)", nil)
		return
	}

	dto := TableDTO{Name: table.Name()}
	for _, g := range table.Grades() {
		stages, _ := table.Lookup(g)
		dto.Grades = append(dto.Grades, TableGradeDTO{Grade: g, Stages: stages})
	}

	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns the demo scenario catalog.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Scenarios())
}

// GetScenario runs a demo scenario and returns its outcome.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	scenario, ok := FindScenario(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Scenario not found: "+strconv.Quote(id), nil)
		return
	}

	out := ScenarioResultDTO{Scenario: scenario}
	result, err := h.Engine.Calculate(toSalaryInputs(scenario.Inputs))
	if err != nil {
		out.Error = &ErrorResponse{Error: err.Error(), Code: errorCode(err)}
	} else {
		dto := toCalculationDTO(result)
		out.Result = &dto
	}

	writeJSON(w, http.StatusOK, out)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeEngineError maps an engine failure to a status code and stable code
// string. Input errors are the user's to fix; integrity errors are ours.
func writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if engine.IsClientError(err) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: errorCode(err)})
}

// errorCode returns the stable machine-readable code for an engine error.
func errorCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrPayBelowMinimum):
		return "pay_below_minimum"
	case errors.Is(err, engine.ErrInvalidPrePromotionGrade):
		return "invalid_pre_promotion_grade"
	case errors.Is(err, engine.ErrInvalidGrade):
		return "invalid_grade"
	case errors.Is(err, engine.ErrNonPositivePay):
		return "non_positive_pay"
	case errors.Is(err, engine.ErrHistoricalLookupOutOfRange):
		return "historical_lookup_out_of_range"
	case errors.Is(err, engine.ErrStageUnresolvable):
		return "stage_unresolvable"
	default:
		return "internal"
	}
}
