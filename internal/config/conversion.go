// Package config defines conversion utilities for configuration objects.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
)

// DefaultMortgageType parses the configured default mortgage type.
func (conf *Configuration) DefaultMortgageType() (mortgage.MortgageType, error) {
	t, err := mortgage.ParseMortgageType(conf.Defaults.MortgageType)
	if err != nil {
		return mortgage.Repayment, fmt.Errorf("defaults: %w", err)
	}
	return t, nil
}

// ToRepaymentInput converts a Scenario into calculator input. Scenarios that
// omit a type use defaultType.
func (scenario Scenario) ToRepaymentInput(defaultType mortgage.MortgageType) (mortgage.RepaymentInput, error) {
	mortgageType := defaultType
	if strings.TrimSpace(scenario.Type) != "" {
		var err error
		mortgageType, err = mortgage.ParseMortgageType(scenario.Type)
		if err != nil {
			return mortgage.RepaymentInput{}, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
	}

	return mortgage.RepaymentInput{
		Amount:            mortgage.Text(scenario.Amount),
		TermYears:         mortgage.Text(scenario.Term),
		AnnualRatePercent: mortgage.Text(scenario.Rate),
		Type:              mortgageType,
	}, nil
}

// FromRepaymentInput builds a Scenario from calculator input, e.g. for
// values given on the command line.
func FromRepaymentInput(name string, input mortgage.RepaymentInput) Scenario {
	return Scenario{
		Name:   name,
		Active: true,
		Amount: input.Amount.Raw(),
		Term:   input.TermYears.Raw(),
		Rate:   input.AnnualRatePercent.Raw(),
		Type:   input.Type.String(),
	}
}
