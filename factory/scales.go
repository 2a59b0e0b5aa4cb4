/*
Package factory provides JSON to Go pay-scale conversion.

PURPOSE:
  Converts JSON pay-scale documents into validated payscale.Table values.
  This enables scale revisions without code changes - when a new pay chart
  is notified, deployments load the revised JSON at startup instead of
  waiting for a rebuild.

JSON SCHEMA:
  {
    "name": "bps-2022",
    "grades": {
      "16": [29115, 31180, 33245],
      "17": [42215, 45410, 48605]
    }
  }

  Grade keys are decimal strings (JSON object keys are always strings);
  each value is the full stage sequence, lowest stage first.

KEY FEATURES:
  - Validates grade keys are positive integers
  - Delegates the data invariants (non-empty, non-negative, non-decreasing
    sequences) to payscale.New, so a factory-loaded table is exactly as
    trustworthy as a built-in one
  - Load failures happen at startup, never during a calculation

USAGE:
  factory := NewScaleFactory()

  // From a JSON string
  table, err := factory.ParseTable(jsonStr)

  // From a file at startup
  table, err := factory.LoadTable("./scales/bps-2022.json")

SEE ALSO:
  - payscale/table.go: Table invariants
  - cmd/server/main.go: Startup overrides via -historical / -current
*/
package factory

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/shinystars75/salary-engine/payscale"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// TableJSON is the JSON representation of a pay scale table.
type TableJSON struct {
	Name   string             `json:"name"`
	Grades map[string][]int64 `json:"grades"`
}

// =============================================================================
// SCALE FACTORY
// =============================================================================

// ScaleFactory converts JSON pay scales to payscale.Table values.
type ScaleFactory struct{}

// NewScaleFactory creates a new scale factory.
func NewScaleFactory() *ScaleFactory {
	return &ScaleFactory{}
}

// ParseTable parses a JSON string into a validated table.
func (f *ScaleFactory) ParseTable(jsonStr string) (*payscale.Table, error) {
	var tj TableJSON
	if err := json.Unmarshal([]byte(jsonStr), &tj); err != nil {
		return nil, fmt.Errorf("failed to parse pay scale JSON: %w", err)
	}
	return f.FromJSON(tj)
}

// FromJSON converts an already-decoded TableJSON into a validated table.
func (f *ScaleFactory) FromJSON(tj TableJSON) (*payscale.Table, error) {
	if tj.Name == "" {
		return nil, fmt.Errorf("pay scale JSON: missing name")
	}
	if len(tj.Grades) == 0 {
		return nil, fmt.Errorf("pay scale %q: no grades defined", tj.Name)
	}

	scales := make(map[int][]int64, len(tj.Grades))
	for key, stages := range tj.Grades {
		grade, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("pay scale %q: grade key %q is not an integer", tj.Name, key)
		}
		scales[grade] = stages
	}

	return payscale.New(tj.Name, scales)
}

// LoadTable reads and parses a pay scale JSON file.
func (f *ScaleFactory) LoadTable(path string) (*payscale.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pay scale file: %w", err)
	}
	return f.ParseTable(string(data))
}

// ToJSON renders a table back into its JSON document form, e.g. to dump the
// built-in charts as a starting point for a revision.
func (f *ScaleFactory) ToJSON(t *payscale.Table) TableJSON {
	grades := make(map[string][]int64)
	for _, g := range t.Grades() {
		stages, _ := t.Lookup(g)
		grades[strconv.Itoa(g)] = stages
	}
	return TableJSON{Name: t.Name(), Grades: grades}
}
