/*
handlers_test.go - HTTP-level tests for the API layer

Tests for:
- Calculation endpoint (success, error mapping, status codes)
- Reference data endpoints (grades, scale dumps)
- Scenario endpoints
*/
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shinystars75/salary-engine/engine"
	"github.com/shinystars75/salary-engine/payscale"
)

func newTestRouter() http.Handler {
	eng := engine.New(payscale.BPS2017(), payscale.BPS2022())
	return NewRouter(NewHandler(eng))
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// =============================================================================
// CALCULATION ENDPOINT
// =============================================================================

func TestCalculate_Success(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/calculate", `{"grade": 16, "current_pay": 47700}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var dto CalculationDTO
	decode(t, rec, &dto)

	if dto.BaselinePay != 34270 {
		t.Errorf("baseline_pay = %d, want 34270", dto.BaselinePay)
	}
	if dto.Allowance != 10281 {
		t.Errorf("allowance = %v, want 10281", dto.Allowance)
	}
	if dto.Increase != 4770 {
		t.Errorf("increase = %v, want 4770", dto.Increase)
	}
	if dto.Total != 15051 {
		t.Errorf("total = %v, want 15051", dto.Total)
	}
	if dto.Formatted.Total != "Rs. 15,051.00" {
		t.Errorf("formatted total = %q, want \"Rs. 15,051.00\"", dto.Formatted.Total)
	}
	if dto.Formatted.CurrentPay != "Rs. 47,700" {
		t.Errorf("formatted current pay = %q, want \"Rs. 47,700\"", dto.Formatted.CurrentPay)
	}
}

func TestCalculate_PromotedSuccess(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/calculate",
		`{"grade": 16, "current_pay": 51740, "promoted": true, "pre_promotion_grade": 15, "pre_promotion_pay": 24100}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var dto CalculationDTO
	decode(t, rec, &dto)

	if dto.BaselinePay != 24100 {
		t.Errorf("baseline_pay = %d, want 24100", dto.BaselinePay)
	}
	if dto.Total != 12404 {
		t.Errorf("total = %v, want 12404", dto.Total)
	}
}

func TestCalculate_ClientErrors(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"pay below minimum", `{"grade": 16, "current_pay": 1000}`, "pay_below_minimum"},
		{"unknown grade", `{"grade": 40, "current_pay": 50000}`, "invalid_grade"},
		{"zero pay", `{"grade": 16, "current_pay": 0}`, "non_positive_pay"},
		{"bad pre-promotion grade", `{"current_pay": 51740, "promoted": true, "pre_promotion_grade": 30, "pre_promotion_pay": 24100}`, "invalid_pre_promotion_grade"},
		{"missing pre-promotion pay", `{"current_pay": 51740, "promoted": true, "pre_promotion_grade": 15}`, "non_positive_pay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/calculate", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}

			var resp ErrorResponse
			decode(t, rec, &resp)
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
			if resp.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestCalculate_MalformedBody(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/calculate", `{"grade": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// =============================================================================
// REFERENCE DATA ENDPOINTS
// =============================================================================

func TestListGrades(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/grades", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var grades []GradeDTO
	decode(t, rec, &grades)

	if len(grades) != 22 {
		t.Fatalf("got %d grades, want 22", len(grades))
	}
	if grades[0].Grade != 1 || grades[21].Grade != 22 {
		t.Errorf("grades not sorted 1..22: first=%d last=%d", grades[0].Grade, grades[21].Grade)
	}
	for _, g := range grades {
		if g.Minimum <= 0 || g.Maximum < g.Minimum || g.Stages <= 0 {
			t.Errorf("grade %d has implausible bounds: %+v", g.Grade, g)
		}
	}
}

func TestGetScale(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/scales/historical", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var dto TableDTO
	decode(t, rec, &dto)
	if dto.Name != "bps-2017" {
		t.Errorf("name = %q, want bps-2017", dto.Name)
	}
	if len(dto.Grades) != 22 {
		t.Errorf("got %d grades, want 22", len(dto.Grades))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/scales/fiscal-2031", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown period: status = %d, want 404", rec.Code)
	}
}

// =============================================================================
// SCENARIO ENDPOINTS
// =============================================================================

func TestListScenarios(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/scenarios", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var scenarios []ScenarioDTO
	decode(t, rec, &scenarios)
	if len(scenarios) == 0 {
		t.Fatal("scenario catalog is empty")
	}
}

func TestGetScenario_SuccessAndErrorOutcomes(t *testing.T) {
	router := newTestRouter()

	// A scenario that calculates cleanly
	rec := doJSON(t, router, http.MethodGet, "/api/scenarios/retained-grade-16", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out ScenarioResultDTO
	decode(t, rec, &out)
	if out.Result == nil || out.Result.Total != 15051 {
		t.Errorf("expected computed total 15051, got %+v", out.Result)
	}

	// A scenario designed to demonstrate an error
	rec = doJSON(t, router, http.MethodGet, "/api/scenarios/below-minimum", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	decode(t, rec, &out)
	if out.Error == nil || out.Error.Code != "pay_below_minimum" {
		t.Errorf("expected pay_below_minimum outcome, got %+v", out.Error)
	}

	// Unknown scenario
	rec = doJSON(t, router, http.MethodGet, "/api/scenarios/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown scenario: status = %d, want 404", rec.Code)
	}
}
