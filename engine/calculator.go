/*
calculator.go - The two-tier enhancement formula

PURPOSE:
  Computes the derived monetary amounts from a baseline pay and a current
  pay. Pure, deterministic, no table access:

    allowance = baselinePay * 0.30   (on the historical baseline)
    increase  = currentPay  * 0.10   (on the running basic pay)
    total     = allowance + increase

  Amounts are exact decimals; any rounding belongs to the presentation
  layer, not here.

SEE ALSO:
  - types.go: Rates and the CalculatedResult record
  - engine.go: Both branches delegate here after establishing the baseline
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// EnhancementCalculator applies the enhancement formula.
type EnhancementCalculator struct{}

// Compute derives the allowance, increase and total from the given pays.
// Both pays must be strictly positive; otherwise ErrNonPositivePay.
func (c *EnhancementCalculator) Compute(baselinePay, currentPay int64) (*CalculatedResult, error) {
	if baselinePay <= 0 {
		return nil, &NonPositivePayError{Field: "baseline_pay", Value: baselinePay}
	}
	if currentPay <= 0 {
		return nil, &NonPositivePayError{Field: "current_pay", Value: currentPay}
	}

	allowance := decimal.NewFromInt(baselinePay).Mul(AllowanceRate)
	increase := decimal.NewFromInt(currentPay).Mul(IncreaseRate)

	return &CalculatedResult{
		BaselinePay: baselinePay,
		CurrentPay:  currentPay,
		Allowance:   allowance,
		Increase:    increase,
		Total:       allowance.Add(increase),
	}, nil
}
