/*
scenarios.go - Demo scenario catalog

PURPOSE:
  Canned inputs that exercise each branch of the engine, used by the
  frontend to prefill the form and by anyone exploring the API. Each
  scenario is just a SalaryInputs payload; the outcome is computed on
  demand by the handler, never stored.

SEE ALSO:
  - handlers.go: ListScenarios / GetScenario
*/
package api

// Scenarios returns the demo scenario catalog.
func Scenarios() []ScenarioDTO {
	return []ScenarioDTO{
		{
			ID:          "retained-grade-16",
			Name:        "Grade 16, same grade since 2017",
			Description: "Current pay sits exactly on a chart stage; baseline comes from the 2017 table at the resolved stage.",
			Inputs:      CalculateRequest{Grade: 16, CurrentPay: 47700},
		},
		{
			ID:          "retained-between-stages",
			Name:        "Grade 11 with extra increments",
			Description: "Current pay falls between two chart stages; the floor match assigns the highest stage reached.",
			Inputs:      CalculateRequest{Grade: 11, CurrentPay: 25000},
		},
		{
			ID:          "promoted-from-15",
			Name:        "Promoted from grade 15",
			Description: "Promoted after the reference date; the pre-promotion baseline is supplied directly.",
			Inputs: CalculateRequest{
				Grade:             16,
				CurrentPay:        51740,
				Promoted:          true,
				PrePromotionGrade: 15,
				PrePromotionPay:   24100,
			},
		},
		{
			ID:          "below-minimum",
			Name:        "Pay below grade minimum",
			Description: "Declared pay is below the grade's stage-0 value; the engine rejects it citing the minimum.",
			Inputs:      CalculateRequest{Grade: 16, CurrentPay: 1000},
		},
	}
}

// FindScenario looks up a scenario by ID.
func FindScenario(id string) (ScenarioDTO, bool) {
	for _, s := range Scenarios() {
		if s.ID == id {
			return s, true
		}
	}
	return ScenarioDTO{}, false
}
