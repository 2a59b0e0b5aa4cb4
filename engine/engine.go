/*
engine.go - Salary engine orchestration

PURPOSE:
  Composes the stage resolver and the enhancement calculator over the
  promoted/non-promoted decision tree. This is the single operation the
  core exposes to its callers.

DECISION TREE:
  Promoted:
    1. Cross-check the pre-promotion grade against the historical table
       (the supplied baseline is used verbatim; the grade check is a
       sanity reference only)
    2. Validate both pays are positive
    3. Compute with the supplied pre-promotion baseline

  Not promoted:
    1. Resolve the seniority stage on the CURRENT table from the declared
       grade and pay
    2. Index the HISTORICAL table at that stage; grades may have fewer
       stages (or be absent) on the historical schedule, so this lookup
       can legitimately fail
    3. Compute with the historical value as baseline

  Any failure short-circuits: a typed error, never a partial result.

CONCURRENCY:
  Calculate is synchronous and reads only the two immutable tables, so an
  engine value is safe for concurrent use without locking. Each invocation
  is independent.

SEE ALSO:
  - resolver.go, calculator.go: The composed parts
  - errors.go: The full failure taxonomy
*/
package engine

import (
	"github.com/shinystars75/salary-engine/payscale"
)

// SalaryEngine orchestrates stage resolution and enhancement calculation
// over the two period tables.
type SalaryEngine struct {
	historical *payscale.Table
	resolver   *StageResolver
	calc       *EnhancementCalculator
}

// New creates a salary engine over a historical and a current pay table.
// Both tables must outlive the engine and are never mutated by it.
func New(historical, current *payscale.Table) *SalaryEngine {
	return &SalaryEngine{
		historical: historical,
		resolver:   &StageResolver{Current: current},
		calc:       &EnhancementCalculator{},
	}
}

// Historical returns the historical-period table the engine was built with.
func (e *SalaryEngine) Historical() *payscale.Table { return e.historical }

// Current returns the current-period table the engine was built with.
func (e *SalaryEngine) Current() *payscale.Table { return e.resolver.Current }

// Calculate runs one enhancement calculation. It is a total function: the
// result is either a fully populated CalculatedResult or exactly one error
// kind from errors.go.
func (e *SalaryEngine) Calculate(in SalaryInputs) (*CalculatedResult, error) {
	if in.Promoted {
		return e.calculatePromoted(in)
	}
	return e.calculateRetained(in)
}

// calculatePromoted handles employees promoted after the reference date.
// Their pre-promotion baseline is supplied by the caller, not derived from
// any table; the pre-promotion grade is only cross-checked for existence.
func (e *SalaryEngine) calculatePromoted(in SalaryInputs) (*CalculatedResult, error) {
	if !e.historical.Has(in.PrePromotionGrade) {
		return nil, &InvalidPrePromotionGradeError{Grade: in.PrePromotionGrade, Table: e.historical.Name()}
	}
	if in.PrePromotionPay <= 0 {
		return nil, &NonPositivePayError{Field: "pre_promotion_pay", Value: in.PrePromotionPay}
	}
	if in.CurrentPay <= 0 {
		return nil, &NonPositivePayError{Field: "current_pay", Value: in.CurrentPay}
	}
	return e.calc.Compute(in.PrePromotionPay, in.CurrentPay)
}

// calculateRetained handles employees who kept their grade since the
// reference date: their baseline is the historical chart value at the
// stage their current pay resolves to.
func (e *SalaryEngine) calculateRetained(in SalaryInputs) (*CalculatedResult, error) {
	res, err := e.resolver.Resolve(in.Grade, in.CurrentPay)
	if err != nil {
		return nil, err
	}

	baseline, ok := e.historical.PayAt(in.Grade, res.Stage)
	if !ok {
		return nil, &HistoricalLookupError{
			Grade:  in.Grade,
			Stage:  res.Stage,
			Stages: e.historical.StageCount(in.Grade),
			Table:  e.historical.Name(),
		}
	}

	return e.calc.Compute(baseline, in.CurrentPay)
}
