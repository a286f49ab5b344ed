// Package quote runs the repayment calculator for form submissions and
// configured scenarios.
package quote

import (
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"go.uber.org/zap"
)

// Quote holds the outcome of one scenario. Exactly one of Result and Err is set.
type Quote struct {
	Name   string
	Input  mortgage.RepaymentInput
	Result *mortgage.RepaymentResult
	Err    error
}

// OK reports whether the scenario produced a result.
func (q Quote) OK() bool {
	return q.Err == nil && q.Result != nil
}

// Calculate computes one repayment and logs the outcome.
func Calculate(logger *zap.Logger, input mortgage.RepaymentInput) (mortgage.RepaymentResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result, err := mortgage.Compute(input)
	if err != nil {
		var validationErr *mortgage.ValidationError
		if errors.As(err, &validationErr) {
			logger.Info("repayment input rejected",
				zap.String("op", "quote.Calculate"),
				zap.String("reason", validationErr.Describe()),
			)
		}
		return result, err
	}

	logger.Debug(fmt.Sprintf("computed %s repayment of %s per month", input.Type, format.Currency(result.MonthlyPayment)),
		zap.String("op", "quote.Calculate"),
		zap.String("amount", input.Amount.Raw()),
		zap.String("termYears", input.TermYears.Raw()),
		zap.String("annualRatePercent", input.AnnualRatePercent.Raw()),
		zap.Float64("monthlyPayment", result.MonthlyPayment),
		zap.Float64("totalRepayment", result.TotalRepayment),
	)
	return result, nil
}

// GetQuotes computes a Quote for every active scenario. Invalid calculator
// input is recorded on the Quote; an unusable mortgage type is returned as an
// error since it is a configuration mistake.
func GetQuotes(logger *zap.Logger, conf config.Configuration) ([]Quote, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	defaultType, err := conf.DefaultMortgageType()
	if err != nil {
		return nil, err
	}

	var quotes []Quote
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "quote.GetQuotes"),
			)
			continue
		}

		input, err := scenario.ToRepaymentInput(defaultType)
		if err != nil {
			return quotes, err
		}

		q := Quote{Name: scenario.Name, Input: input}
		result, err := Calculate(logger.With(zap.String("scenario", scenario.Name)), input)
		if err != nil {
			q.Err = err
		} else {
			q.Result = &result
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

// Failed counts the quotes that did not produce a result.
func Failed(quotes []Quote) int {
	n := 0
	for _, q := range quotes {
		if !q.OK() {
			n++
		}
	}
	return n
}
