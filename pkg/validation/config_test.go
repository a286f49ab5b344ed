package validation

import (
	"strings"
	"testing"
)

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		code       string
		expectWarn bool
	}{
		{"GBP", false},
		{"usd", false},
		{" EUR ", false},
		{"ZZZ", true},
		{"pounds", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			warning := ValidateCurrency(tt.code)
			if tt.expectWarn && warning == "" {
				t.Errorf("ValidateCurrency(%q) expected warning", tt.code)
			}
			if !tt.expectWarn && warning != "" {
				t.Errorf("ValidateCurrency(%q) unexpected warning: %s", tt.code, warning)
			}
		})
	}
}

func TestValidateLocale(t *testing.T) {
	if warning := ValidateLocale("en-GB"); warning != "" {
		t.Errorf("unexpected warning for en-GB: %s", warning)
	}
	if warning := ValidateLocale("de"); warning != "" {
		t.Errorf("unexpected warning for de: %s", warning)
	}
	if warning := ValidateLocale("not a locale!"); warning == "" {
		t.Error("expected warning for malformed locale")
	}
}

func TestValidateMortgageType(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		expectWarn bool
	}{
		{"Empty uses default", "", false},
		{"Repayment", "repayment", false},
		{"Interest", "interest", false},
		{"Interest only", "interest-only", false},
		{"Unknown", "tracker", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidateMortgageType("Scenario 'x'", tt.value)
			if tt.expectWarn && warning == "" {
				t.Errorf("ValidateMortgageType(%q) expected warning", tt.value)
			}
			if !tt.expectWarn && warning != "" {
				t.Errorf("ValidateMortgageType(%q) unexpected warning: %s", tt.value, warning)
			}
		})
	}
}

func TestConfigValidatorValidateAll(t *testing.T) {
	tests := []struct {
		name     string
		cv       ConfigValidator
		expected []string
	}{
		{
			name: "Clean configuration",
			cv: ConfigValidator{
				Currency:    "GBP",
				Locale:      "en-GB",
				DefaultType: "repayment",
				Scenarios: []ScenarioConfig{
					{Name: "first home", Active: true, Type: "repayment"},
					{Name: "buy to let", Active: true, Type: "interest"},
				},
			},
			expected: nil,
		},
		{
			name: "Bad display settings",
			cv: ConfigValidator{
				Currency:    "ZZZ",
				Locale:      "not a locale!",
				DefaultType: "tracker",
			},
			expected: []string{"Display currency 'ZZZ'", "Display locale", "Default mortgage type"},
		},
		{
			name: "Scenario problems",
			cv: ConfigValidator{
				Currency: "GBP",
				Locale:   "en-GB",
				Scenarios: []ScenarioConfig{
					{Name: "", Active: true},
					{Name: "dup", Active: true},
					{Name: "dup", Active: false, Type: "offset"},
				},
			},
			expected: []string{"Scenario #1 has no name", "Scenario 'dup' is defined more than once", "Scenario 'dup' has unknown mortgage type 'offset'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.cv.ValidateAll()
			if len(warnings) != len(tt.expected) {
				t.Fatalf("ValidateAll() returned %d warnings %v, expected %d", len(warnings), warnings, len(tt.expected))
			}
			for i, want := range tt.expected {
				if !strings.Contains(warnings[i], want) {
					t.Errorf("warning %d = %q, expected to contain %q", i, warnings[i], want)
				}
			}
		})
	}
}
