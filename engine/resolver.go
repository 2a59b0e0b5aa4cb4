/*
resolver.go - Seniority stage resolution

PURPOSE:
  Maps a declared current basic pay to the seniority stage it most
  plausibly represents within a grade, using the current-period table.
  Only non-promoted employees go through stage resolution; promoted
  employees supply their pre-promotion baseline directly.

MATCHING POLICY (floor match, inclusive minimum):
  The resolver scans stages from the highest index down and returns the
  first stage whose tabulated value is <= the declared pay. A pay that
  falls between two tabulated values (extra increments the chart does not
  model) is assigned the highest stage the employee has at least reached -
  never a stage above the declared pay, and never rejected merely for not
  matching a chart value exactly. A pay exactly equal to a chart value
  resolves to that stage, not the one below.

SEE ALSO:
  - payscale/table.go: The table invariants the scan relies on
  - engine.go: The non-promoted branch that invokes this
*/
package engine

import (
	"github.com/shinystars75/salary-engine/payscale"
)

// StageResolver resolves declared pay to a seniority stage against the
// current-period pay table.
type StageResolver struct {
	Current *payscale.Table
}

// Resolve finds the highest stage of grade whose tabulated pay is <=
// currentPay.
//
// Failure kinds:
//   - ErrNonPositivePay: currentPay <= 0
//   - ErrInvalidGrade: grade not positive or unknown to the current table
//   - ErrPayBelowMinimum: currentPay strictly below the grade's stage-0 pay
//   - ErrStageUnresolvable: no floor match past the minimum check; this is
//     unreachable for a monotone table and signals corrupted reference data
func (r *StageResolver) Resolve(grade int, currentPay int64) (*StageResolution, error) {
	if currentPay <= 0 {
		return nil, &NonPositivePayError{Field: "current_pay", Value: currentPay}
	}
	if grade <= 0 {
		return nil, &InvalidGradeError{Grade: grade, Table: r.Current.Name()}
	}

	stages, ok := r.Current.Lookup(grade)
	if !ok {
		return nil, &InvalidGradeError{Grade: grade, Table: r.Current.Name()}
	}

	if currentPay < stages[0] {
		return nil, &PayBelowMinimumError{Grade: grade, CurrentPay: currentPay, Minimum: stages[0]}
	}

	for s := len(stages) - 1; s >= 0; s-- {
		if stages[s] <= currentPay {
			return &StageResolution{Grade: grade, Stage: s, Pay: stages[s]}, nil
		}
	}

	// Unreachable once the minimum check passed, given non-decreasing stages.
	return nil, &StageUnresolvableError{Grade: grade, CurrentPay: currentPay}
}
