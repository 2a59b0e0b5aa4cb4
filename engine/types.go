/*
Package engine implements the salary enhancement calculation core.

PURPOSE:
  Given an employee's declared grade and current basic pay (plus, for
  employees promoted after the reference date, their pre-promotion grade
  and baseline pay), deterministically resolve the employee's seniority
  stage on the historical pay table and compute the two-tier enhancement:
  a 30% allowance on the historical baseline and a 10% increase on the
  current running basic pay.

KEY CONCEPTS IN THIS FILE (types.go):
  - SalaryInputs: One calculation request (immutable during the pass)
  - StageResolution: A successfully resolved seniority stage
  - CalculatedResult: The derived monetary amounts

DESIGN PRINCIPLES:
  1. Purity: Calculate is synchronous and side-effect free; identical
     inputs always yield identical results
  2. Precision: Derived amounts use decimal.Decimal, never float math
  3. Totality: Every operation returns a value or a typed error from
     errors.go - never a panic, never a partial result

USAGE:
  eng := engine.New(payscale.BPS2017(), payscale.BPS2022())
  result, err := eng.Calculate(engine.SalaryInputs{
      Grade:      16,
      CurrentPay: 47700,
  })

SEE ALSO:
  - resolver.go: Stage resolution against the current table
  - calculator.go: The enhancement formula
  - engine.go: Orchestration over the promoted/non-promoted branch
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// RATES - The 2025-26 enhancement scheme
// =============================================================================

var (
	// AllowanceRate is applied to the historical (2017) baseline basic pay.
	AllowanceRate = decimal.NewFromFloat(0.30)

	// IncreaseRate is applied to the current running basic pay.
	IncreaseRate = decimal.NewFromFloat(0.10)
)

// =============================================================================
// SALARY INPUTS - One calculation request
// =============================================================================

// SalaryInputs carries everything a single calculation needs. All pay
// amounts are whole rupees; zero means "unset" at the form layer and is
// rejected as non-positive here. PrePromotionGrade and PrePromotionPay are
// only meaningful when Promoted is true.
type SalaryInputs struct {
	Grade      int
	CurrentPay int64

	Promoted          bool
	PrePromotionGrade int
	PrePromotionPay   int64
}

// =============================================================================
// STAGE RESOLUTION - Position on the current pay table
// =============================================================================

// StageResolution is a successfully resolved seniority stage: the highest
// stage of the grade whose tabulated pay does not exceed the declared pay.
// Absence (no valid stage) is expressed as a typed error, not a zero value.
type StageResolution struct {
	Grade int
	Stage int   // 0-based index into the grade's stage sequence
	Pay   int64 // tabulated pay at the resolved stage (<= declared pay)
}

// =============================================================================
// CALCULATED RESULT - The derived amounts
// =============================================================================

// CalculatedResult is the outcome of one successful calculation. BaselinePay
// and CurrentPay echo the inputs the amounts were derived from; Allowance,
// Increase and Total are exact decimals (currency formatting is the
// caller's concern).
type CalculatedResult struct {
	BaselinePay int64
	CurrentPay  int64
	Allowance   decimal.Decimal
	Increase    decimal.Decimal
	Total       decimal.Decimal
}
