// Package constants provides shared constants for the mortgage-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// EnvPrefix prefixes environment overrides, e.g. MORTGAGE_DISPLAY_CURRENCY.
	EnvPrefix = "MORTGAGE"
)

// Display defaults
const (
	// DefaultCurrency is the ISO 4217 code used when none is configured
	DefaultCurrency = "GBP"

	// DefaultLocale is the BCP 47 tag used when none is configured
	DefaultLocale = "en-GB"

	// DefaultMortgageType is the selector value the form starts with
	DefaultMortgageType = "repayment"

	// MinimumFractionDigits is the least number of decimals shown for money
	MinimumFractionDigits = 2
)
