// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mortgage-calculator/internal/quote"
)

// FindQuote finds a quote by scenario name in the results slice.
// Returns a pointer to the quote if found, nil otherwise.
func FindQuote(quotes []quote.Quote, name string) *quote.Quote {
	for i := range quotes {
		if quotes[i].Name == name {
			return &quotes[i]
		}
	}
	return nil
}
