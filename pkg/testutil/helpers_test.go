package testutil

import (
	"testing"

	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
)

func resultOf(monthly float64) *mortgage.RepaymentResult {
	return &mortgage.RepaymentResult{MonthlyPayment: monthly}
}

func TestFindQuote(t *testing.T) {
	quotes := []quote.Quote{
		{Name: "Scenario A", Result: resultOf(1000.00)},
		{Name: "Scenario B", Result: resultOf(2000.00)},
		{Name: "Another Scenario", Result: resultOf(3000.00)},
	}

	tests := []struct {
		name            string
		searchName      string
		expectFound     bool
		expectedMonthly float64
	}{
		{
			name:            "Find existing scenario A",
			searchName:      "Scenario A",
			expectFound:     true,
			expectedMonthly: 1000.00,
		},
		{
			name:            "Find scenario with longer name",
			searchName:      "Another Scenario",
			expectFound:     true,
			expectedMonthly: 3000.00,
		},
		{
			name:        "Search for non-existent scenario",
			searchName:  "Non-existent",
			expectFound: false,
		},
		{
			name:        "Empty search name",
			searchName:  "",
			expectFound: false,
		},
		{
			name:        "Case sensitive search",
			searchName:  "scenario a",
			expectFound: false,
		},
		{
			name:        "Partial name match",
			searchName:  "Scenario",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindQuote(quotes, tt.searchName)

			if !tt.expectFound {
				if result != nil {
					t.Errorf("FindQuote() expected nil for '%s' but got '%s'", tt.searchName, result.Name)
				}
				return
			}
			if result == nil {
				t.Fatalf("FindQuote() expected to find '%s' but got nil", tt.searchName)
			}
			if result.Result.MonthlyPayment != tt.expectedMonthly {
				t.Errorf("FindQuote() returned monthly %v, expected %v", result.Result.MonthlyPayment, tt.expectedMonthly)
			}
		})
	}
}

func TestFindQuoteEmpty(t *testing.T) {
	if FindQuote(nil, "Any Scenario") != nil {
		t.Error("FindQuote() with nil quotes should return nil")
	}
	if FindQuote([]quote.Quote{}, "Any Scenario") != nil {
		t.Error("FindQuote() with empty quotes should return nil")
	}
}

func TestFindQuoteReturnsFirstMatchPointer(t *testing.T) {
	quotes := []quote.Quote{
		{Name: "Duplicate", Result: resultOf(1000.00)},
		{Name: "Duplicate", Result: resultOf(2000.00)},
	}

	found := FindQuote(quotes, "Duplicate")
	if found == nil {
		t.Fatal("FindQuote() returned nil")
	}
	if &quotes[0] != found {
		t.Error("FindQuote() should return pointer to the first matching element")
	}
}
