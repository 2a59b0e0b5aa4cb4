/*
Package payscale provides immutable pay-scale lookup tables.

PURPOSE:
  This package contains the reference-data leaves of the system: mappings
  from a pay grade to the ordered sequence of basic-pay amounts at each
  seniority stage within that grade. Two independent instances exist at
  runtime - one for the historical pay schedule and one for the current
  schedule - and everything else (stage resolution, enhancement math)
  depends on them.

KEY CONCEPTS IN THIS FILE (table.go):
  - Table: An immutable grade -> stage-pay-sequence mapping
  - Grade: A positive integer pay-band identifier (BPS 1..22)
  - Stage: A 0-based seniority step within a grade

DESIGN PRINCIPLES:
  1. Immutability: Tables are constructed once and never mutated
  2. Totality: Lookup never fails beyond returning "absent"
  3. Monotonicity: Within a grade, stage pay never decreases with seniority
  4. Independence: The two period tables are never merged; a grade may
     exist in one and not the other, and stage counts may differ

USAGE:
  historical := payscale.BPS2017()
  current := payscale.BPS2022()

  stages, ok := current.Lookup(16)
  if !ok {
      // unknown grade
  }

SEE ALSO:
  - data.go: Built-in BPS 2017 / BPS 2022 reference data
  - engine/resolver.go: Stage resolution over a current-period table
*/
package payscale

import (
	"fmt"
	"sort"
)

// =============================================================================
// TABLE - Immutable grade -> stage-pay mapping
// =============================================================================

// Table maps a grade to its ordered sequence of stage pay amounts.
// Construct with New (validating) or the built-in constructors in data.go.
type Table struct {
	name   string
	scales map[int][]int64
}

// New builds a Table from a grade -> stage sequence mapping, validating the
// reference-data invariants:
//   - every grade is a positive identifier
//   - every sequence is non-empty
//   - every pay amount is non-negative
//   - within a grade, pay is non-decreasing by stage
//
// Malformed reference data is a deployment-time concern; once a Table is
// constructed it never fails at runtime beyond "grade absent".
func New(name string, scales map[int][]int64) (*Table, error) {
	if len(scales) == 0 {
		return nil, fmt.Errorf("pay scale %q: no grades defined", name)
	}

	copied := make(map[int][]int64, len(scales))
	for grade, stages := range scales {
		if grade <= 0 {
			return nil, fmt.Errorf("pay scale %q: grade %d is not a positive identifier", name, grade)
		}
		if len(stages) == 0 {
			return nil, fmt.Errorf("pay scale %q: grade %d has no stages", name, grade)
		}
		seq := make([]int64, len(stages))
		copy(seq, stages)
		for i, pay := range seq {
			if pay < 0 {
				return nil, fmt.Errorf("pay scale %q: grade %d stage %d has negative pay %d", name, grade, i, pay)
			}
			if i > 0 && pay < seq[i-1] {
				return nil, fmt.Errorf("pay scale %q: grade %d stage %d pay %d decreases from stage %d pay %d",
					name, grade, i, pay, i-1, seq[i-1])
			}
		}
		copied[grade] = seq
	}

	return &Table{name: name, scales: copied}, nil
}

// Name returns the table's identifier (e.g. "bps-2017").
func (t *Table) Name() string { return t.name }

// Lookup returns the stage pay sequence for a grade, or false if the grade
// is not present in this table. The returned slice is a copy; callers may
// keep or modify it freely.
func (t *Table) Lookup(grade int) ([]int64, bool) {
	stages, ok := t.scales[grade]
	if !ok {
		return nil, false
	}
	seq := make([]int64, len(stages))
	copy(seq, stages)
	return seq, true
}

// Has reports whether a grade exists in this table.
func (t *Table) Has(grade int) bool {
	_, ok := t.scales[grade]
	return ok
}

// Minimum returns the stage-0 pay for a grade (the floor below which a
// declared pay cannot belong to the grade at all).
func (t *Table) Minimum(grade int) (int64, bool) {
	stages, ok := t.scales[grade]
	if !ok {
		return 0, false
	}
	return stages[0], true
}

// Maximum returns the highest-stage pay for a grade.
func (t *Table) Maximum(grade int) (int64, bool) {
	stages, ok := t.scales[grade]
	if !ok {
		return 0, false
	}
	return stages[len(stages)-1], true
}

// StageCount returns the number of stages for a grade, or 0 if absent.
// Stage counts are per-table: the same grade may have a different count
// in the historical and current tables.
func (t *Table) StageCount(grade int) int {
	return len(t.scales[grade])
}

// PayAt returns the tabulated pay at a specific stage of a grade. It returns
// false when the grade is absent or the stage index is out of range for this
// table's sequence.
func (t *Table) PayAt(grade, stage int) (int64, bool) {
	stages, ok := t.scales[grade]
	if !ok || stage < 0 || stage >= len(stages) {
		return 0, false
	}
	return stages[stage], true
}

// Grades returns the sorted list of grades present in this table.
func (t *Table) Grades() []int {
	grades := make([]int, 0, len(t.scales))
	for g := range t.scales {
		grades = append(grades, g)
	}
	sort.Ints(grades)
	return grades
}
