// Package format renders monetary amounts for display.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter formats amounts in one currency for one locale.
type CurrencyFormatter struct {
	unit    currency.Unit
	tag     language.Tag
	printer *message.Printer
	symbol  string
	scale   int
}

// NewCurrencyFormatter builds a formatter from an ISO 4217 currency code (e.g.
// "GBP") and a BCP 47 locale tag (e.g. "en-GB").
func NewCurrencyFormatter(currencyCode, locale string) (*CurrencyFormatter, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(currencyCode)))
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", currencyCode, err)
	}

	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	printer := message.NewPrinter(tag)

	symbol := printer.Sprint(currency.Symbol(unit))
	if symbol == "" {
		symbol = unit.String()
	}

	scale, _ := currency.Standard.Rounding(unit)
	if scale < constants.MinimumFractionDigits {
		scale = constants.MinimumFractionDigits
	}

	return &CurrencyFormatter{
		unit:    unit,
		tag:     tag,
		printer: printer,
		symbol:  symbol,
		scale:   scale,
	}, nil
}

// MustCurrencyFormatter is like NewCurrencyFormatter but panics on error.
func MustCurrencyFormatter(currencyCode, locale string) *CurrencyFormatter {
	f, err := NewCurrencyFormatter(currencyCode, locale)
	if err != nil {
		panic(err)
	}
	return f
}

// defaultFormatter backs Currency.
var defaultFormatter = MustCurrencyFormatter(constants.DefaultCurrency, constants.DefaultLocale)

// Currency returns a currency string in the default display currency and
// locale, for log messages (e.g., "£1,234.56").
func Currency(amount float64) string {
	return defaultFormatter.Format(amount)
}

// Format returns the amount with the currency symbol and locale grouping
// (e.g. "£1,198.50", "-£12.00"). Amounts that round to zero print unsigned.
func (f *CurrencyFormatter) Format(amount float64) string {
	pow := math.Pow10(f.scale)
	rounded := math.Round(amount*pow) / pow

	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	return sign + f.symbol + f.Numeric(math.Abs(rounded))
}

// Numeric returns the amount grouped for the locale without a symbol.
func (f *CurrencyFormatter) Numeric(amount float64) string {
	return f.printer.Sprint(number.Decimal(amount, number.Scale(f.scale)))
}

// Symbol is the locale's symbol for the currency.
func (f *CurrencyFormatter) Symbol() string {
	return f.symbol
}

// Code is the ISO 4217 code.
func (f *CurrencyFormatter) Code() string {
	return f.unit.String()
}

// Locale is the BCP 47 tag the formatter was built for.
func (f *CurrencyFormatter) Locale() string {
	return f.tag.String()
}
