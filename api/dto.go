/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific additions (formatted currency strings)
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

CURRENCY FORMATTING:
  The engine hands back plain numbers; formatting is this layer's job.
  Formatted strings use golang.org/x/text message printing for grouping
  separators ("Rs. 15,051.00"). Clients that want raw numbers read the
  numeric fields and ignore the formatted block.

SEE ALSO:
  - handlers.go: Uses these types
  - engine/types.go: The domain records these mirror
*/
package api

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shinystars75/salary-engine/engine"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculateRequest is the request body for a salary calculation.
type CalculateRequest struct {
	Grade             int   `json:"grade"`
	CurrentPay        int64 `json:"current_pay"`
	Promoted          bool  `json:"promoted,omitempty"`
	PrePromotionGrade int   `json:"pre_promotion_grade,omitempty"`
	PrePromotionPay   int64 `json:"pre_promotion_pay,omitempty"`
}

// CalculationDTO is a successful calculation in API responses.
type CalculationDTO struct {
	BaselinePay int64            `json:"baseline_pay"`
	Allowance   float64          `json:"allowance"`
	Increase    float64          `json:"increase"`
	Total       float64          `json:"total"`
	CurrentPay  int64            `json:"current_pay"`
	Formatted   FormattedAmounts `json:"formatted"`
}

// FormattedAmounts carries display-ready currency strings.
type FormattedAmounts struct {
	BaselinePay string `json:"baseline_pay"`
	Allowance   string `json:"allowance"`
	Increase    string `json:"increase"`
	Total       string `json:"total"`
	CurrentPay  string `json:"current_pay"`
}

// GradeDTO describes one grade of the current pay table, for the
// input-collection UI.
type GradeDTO struct {
	Grade   int   `json:"grade"`
	Minimum int64 `json:"minimum"`
	Maximum int64 `json:"maximum"`
	Stages  int   `json:"stages"`
}

// TableDTO is a full pay scale dump.
type TableDTO struct {
	Name   string          `json:"name"`
	Grades []TableGradeDTO `json:"grades"`
}

// TableGradeDTO is one grade's stage sequence within a table dump.
type TableGradeDTO struct {
	Grade  int     `json:"grade"`
	Stages []int64 `json:"stages"`
}

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Inputs      CalculateRequest `json:"inputs"`
}

// ScenarioResultDTO is a scenario together with its computed outcome.
type ScenarioResultDTO struct {
	Scenario ScenarioDTO     `json:"scenario"`
	Result   *CalculationDTO `json:"result,omitempty"`
	Error    *ErrorResponse  `json:"error,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

// printer renders grouped currency strings ("15,051.00").
var printer = message.NewPrinter(language.English)

func formatRupees(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("Rs. %.2f", f)
}

func formatRupeesInt(n int64) string {
	return printer.Sprintf("Rs. %d", n)
}

func toCalculationDTO(res *engine.CalculatedResult) CalculationDTO {
	allowance, _ := res.Allowance.Float64()
	increase, _ := res.Increase.Float64()
	total, _ := res.Total.Float64()
	return CalculationDTO{
		BaselinePay: res.BaselinePay,
		Allowance:   allowance,
		Increase:    increase,
		Total:       total,
		CurrentPay:  res.CurrentPay,
		Formatted: FormattedAmounts{
			BaselinePay: formatRupeesInt(res.BaselinePay),
			Allowance:   formatRupees(res.Allowance),
			Increase:    formatRupees(res.Increase),
			Total:       formatRupees(res.Total),
			CurrentPay:  formatRupeesInt(res.CurrentPay),
		},
	}
}

func toSalaryInputs(req CalculateRequest) engine.SalaryInputs {
	return engine.SalaryInputs{
		Grade:             req.Grade,
		CurrentPay:        req.CurrentPay,
		Promoted:          req.Promoted,
		PrePromotionGrade: req.PrePromotionGrade,
		PrePromotionPay:   req.PrePromotionPay,
	}
}
