// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// ValidateCurrency returns a warning if code is not a recognised ISO 4217 code.
func ValidateCurrency(code string) string {
	if _, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code))); err != nil {
		return fmt.Sprintf("Display currency '%s' is not a recognised ISO 4217 code", code)
	}
	return ""
}

// ValidateLocale returns a warning if tag is not a well-formed BCP 47 tag.
func ValidateLocale(tag string) string {
	if _, err := language.Parse(strings.TrimSpace(tag)); err != nil {
		return fmt.Sprintf("Display locale '%s' is not a valid language tag", tag)
	}
	return ""
}

// ValidateMortgageType returns a warning if value does not name a mortgage
// type. An empty value is allowed and means the configured default.
func ValidateMortgageType(owner, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if _, err := mortgage.ParseMortgageType(value); err != nil {
		return fmt.Sprintf("%s has unknown mortgage type '%s'", owner, value)
	}
	return ""
}

// ConfigValidator checks a configuration for likely mistakes.
type ConfigValidator struct {
	Currency    string
	Locale      string
	DefaultType string
	Scenarios   []ScenarioConfig
}

// ScenarioConfig is the part of a scenario the validator looks at.
type ScenarioConfig struct {
	Name   string
	Active bool
	Type   string
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if warning := ValidateCurrency(cv.Currency); warning != "" {
		warnings = append(warnings, warning)
	}
	if warning := ValidateLocale(cv.Locale); warning != "" {
		warnings = append(warnings, warning)
	}
	if warning := ValidateMortgageType("Default mortgage type", cv.DefaultType); warning != "" {
		warnings = append(warnings, warning)
	}

	seen := make(map[string]bool)
	for i, scenario := range cv.Scenarios {
		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("Scenario #%d has no name", i+1))
		} else if seen[name] {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' is defined more than once", name))
		}
		seen[name] = true

		if warning := ValidateMortgageType(fmt.Sprintf("Scenario '%s'", name), scenario.Type); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return warnings
}
