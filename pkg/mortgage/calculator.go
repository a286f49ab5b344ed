package mortgage

import (
	"math"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// Compute validates input and derives the monthly and total repayment.
//
// Checks run in order and the first failure is returned: a missing field,
// then a field that is not a finite number, then a non-positive amount or
// term or a negative rate, then a repayment mortgage whose monthly rate is
// zero.
func Compute(input RepaymentInput) (RepaymentResult, error) {
	fields := [...]struct {
		name  string
		value Value
	}{
		{FieldAmount, input.Amount},
		{FieldTerm, input.TermYears},
		{FieldRate, input.AnnualRatePercent},
	}

	var missing []string
	for _, f := range fields {
		if !f.value.IsSet() {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return RepaymentResult{}, newValidationError(KindRequiredField, missing...)
	}

	var numbers [len(fields)]float64
	var invalid []string
	for i, f := range fields {
		n, err := f.value.Float()
		if err != nil {
			invalid = append(invalid, f.name)
			continue
		}
		numbers[i] = n
	}
	if len(invalid) > 0 {
		return RepaymentResult{}, newValidationError(KindInvalidNumber, invalid...)
	}

	principal, termYears, annualRate := numbers[0], numbers[1], numbers[2]

	var outOfRange []string
	if principal <= 0 {
		outOfRange = append(outOfRange, FieldAmount)
	}
	if termYears <= 0 {
		outOfRange = append(outOfRange, FieldTerm)
	}
	if annualRate < 0 {
		outOfRange = append(outOfRange, FieldRate)
	}
	if len(outOfRange) > 0 {
		return RepaymentResult{}, newValidationError(KindOutOfRange, outOfRange...)
	}

	monthlyRate := mathutil.MonthlyRate(annualRate)
	payments := mathutil.PaymentCount(termYears)

	var monthly float64
	switch input.Type {
	case InterestOnly:
		monthly = InterestOnlyPayment(principal, monthlyRate)
	default:
		if monthlyRate == 0 {
			return RepaymentResult{}, newValidationError(KindZeroRateRepayment, FieldRate)
		}
		var ok bool
		monthly, ok = AmortizedPayment(principal, monthlyRate, payments)
		if !ok {
			return RepaymentResult{}, newValidationError(KindZeroRateRepayment, FieldRate)
		}
	}

	monthly = mathutil.Round(monthly)
	total := mathutil.Round(monthly * constants.MonthsPerYear * termYears)
	if !mathutil.IsFinite(monthly) || !mathutil.IsFinite(total) {
		return RepaymentResult{}, newValidationError(KindInvalidNumber, FieldAmount, FieldTerm, FieldRate)
	}

	return RepaymentResult{MonthlyPayment: monthly, TotalRepayment: total}, nil
}

// AmortizedPayment is the level monthly payment that repays principal over
// payments months at monthlyRate. It reports false when the rate is too small
// for the growth factor to differ from one, which would divide by zero.
func AmortizedPayment(principal, monthlyRate, payments float64) (float64, bool) {
	growth := math.Pow(1+monthlyRate, payments)
	denominator := growth - 1
	if denominator == 0 {
		return 0, false
	}
	return principal * monthlyRate * growth / denominator, true
}

// InterestOnlyPayment is the monthly interest charged on principal.
func InterestOnlyPayment(principal, monthlyRate float64) float64 {
	return principal * monthlyRate
}
