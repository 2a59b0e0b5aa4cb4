/*
errors.go - Centralized error types for the salary engine

PURPOSE:
  All engine error kinds in one place for consistency and discoverability.
  Every engine operation is total: it returns either a value or exactly one
  of these kinds - never a panic, never a partially populated result.

ERROR CATEGORIES:
  1. Input errors - user-correctable (wrong grade, pay out of range)
  2. Integrity errors - reference-data violations (should be unreachable
     with validated tables)

USAGE:
  Callers branch on kind with errors.Is and recover detail with errors.As:

    if errors.Is(err, engine.ErrPayBelowMinimum) {
        var below *engine.PayBelowMinimumError
        errors.As(err, &below)
        // surface below.Minimum to the user
    }

SEE ALSO:
  - engine.go: Where these errors are produced
  - api/handlers.go: HTTP status mapping via IsClientError
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidGrade is returned when a grade is not a positive identifier
	// or is not present in the relevant pay scale table.
	ErrInvalidGrade = errors.New("invalid grade")

	// ErrPayBelowMinimum is returned when a declared current pay is strictly
	// below the stage-0 value of its grade's current scale.
	ErrPayBelowMinimum = errors.New("pay below minimum for grade")

	// ErrStageUnresolvable is returned when no stage floor-matches a pay that
	// already passed the minimum check. Unreachable for monotone tables; if
	// observed it indicates corrupted reference data, not bad user input.
	ErrStageUnresolvable = errors.New("stage unresolvable")

	// ErrInvalidPrePromotionGrade is returned when a promoted employee's
	// pre-promotion grade is absent from the historical table.
	ErrInvalidPrePromotionGrade = errors.New("invalid pre-promotion grade")

	// ErrNonPositivePay is returned when any required pay amount is zero or
	// negative. Zero means "unset" at the form layer and is never calculable.
	ErrNonPositivePay = errors.New("missing or non-positive pay")

	// ErrHistoricalLookupOutOfRange is returned when a stage resolved against
	// the current table has no counterpart in the historical table (absent
	// grade, or fewer historical stages for that grade).
	ErrHistoricalLookupOutOfRange = errors.New("invalid grade or stage for historical lookup")
)

// =============================================================================
// STRUCTURED ERRORS - Carry enough detail for caller-side messages
// =============================================================================

// InvalidGradeError identifies the offending grade and the table consulted.
type InvalidGradeError struct {
	Grade int
	Table string
}

func (e *InvalidGradeError) Error() string {
	return fmt.Sprintf("invalid grade %d: not present in pay scale %s", e.Grade, e.Table)
}

func (e *InvalidGradeError) Unwrap() error { return ErrInvalidGrade }

// PayBelowMinimumError carries the grade's floor so the caller can surface
// the exact minimum the declared pay fell short of.
type PayBelowMinimumError struct {
	Grade      int
	CurrentPay int64
	Minimum    int64
}

func (e *PayBelowMinimumError) Error() string {
	return fmt.Sprintf("pay %d is below the minimum %d for grade %d", e.CurrentPay, e.Minimum, e.Grade)
}

func (e *PayBelowMinimumError) Unwrap() error { return ErrPayBelowMinimum }

// StageUnresolvableError records the inputs that exposed the inconsistency.
type StageUnresolvableError struct {
	Grade      int
	CurrentPay int64
}

func (e *StageUnresolvableError) Error() string {
	return fmt.Sprintf("no stage of grade %d floor-matches pay %d: reference data integrity violation", e.Grade, e.CurrentPay)
}

func (e *StageUnresolvableError) Unwrap() error { return ErrStageUnresolvable }

// InvalidPrePromotionGradeError identifies the pre-promotion grade that the
// historical table does not know.
type InvalidPrePromotionGradeError struct {
	Grade int
	Table string
}

func (e *InvalidPrePromotionGradeError) Error() string {
	return fmt.Sprintf("invalid pre-promotion grade %d: not present in pay scale %s", e.Grade, e.Table)
}

func (e *InvalidPrePromotionGradeError) Unwrap() error { return ErrInvalidPrePromotionGrade }

// NonPositivePayError names which pay field was missing or non-positive.
type NonPositivePayError struct {
	Field string // "current_pay" or "pre_promotion_pay" or "baseline_pay"
	Value int64
}

func (e *NonPositivePayError) Error() string {
	return fmt.Sprintf("%s must be positive, got %d", e.Field, e.Value)
}

func (e *NonPositivePayError) Unwrap() error { return ErrNonPositivePay }

// HistoricalLookupError describes why the resolved stage could not be
// carried over to the historical table.
type HistoricalLookupError struct {
	Grade  int
	Stage  int
	Stages int // historical stage count for the grade; 0 when grade absent
	Table  string
}

func (e *HistoricalLookupError) Error() string {
	if e.Stages == 0 {
		return fmt.Sprintf("grade %d is not present in pay scale %s", e.Grade, e.Table)
	}
	return fmt.Sprintf("stage %d is out of range for grade %d in pay scale %s (%d stages)",
		e.Stage, e.Grade, e.Table, e.Stages)
}

func (e *HistoricalLookupError) Unwrap() error { return ErrHistoricalLookupOutOfRange }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to user-correctable input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidGrade) ||
		errors.Is(err, ErrPayBelowMinimum) ||
		errors.Is(err, ErrInvalidPrePromotionGrade) ||
		errors.Is(err, ErrNonPositivePay) ||
		errors.Is(err, ErrHistoricalLookupOutOfRange)
}

// IsDataIntegrityError returns true if the error indicates corrupted
// reference data rather than bad input.
func IsDataIntegrityError(err error) bool {
	return errors.Is(err, ErrStageUnresolvable)
}
