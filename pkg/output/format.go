// Package output provides utilities for formatting and displaying quote results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"gopkg.in/yaml.v3"
)

// Write renders quotes in the named output format.
func Write(w io.Writer, outputFormat string, quotes []quote.Quote, f *format.CurrencyFormatter) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, quotes, f)
	case constants.OutputFormatCSV:
		return CsvFormat(w, quotes)
	case constants.OutputFormatJSON:
		return JSONFormat(w, quotes, f)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, quotes, f)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, quotes []quote.Quote, f *format.CurrencyFormatter) error {
	pw := &prettyWriter{w: w}
	for i, q := range quotes {
		pw.printf("--- Results for scenario %s ---\n", q.Name)
		pw.row("Field", "Value")
		pw.row("_____", "_____")
		pw.row("Mortgage amount", money(q.Input.Amount, f))
		pw.row("Mortgage term", suffixed(q.Input.TermYears, " years"))
		pw.row("Interest rate", suffixed(q.Input.AnnualRatePercent, "%"))
		pw.row("Mortgage type", q.Input.Type.Label())
		if q.OK() {
			pw.row("Your monthly repayments", f.Format(q.Result.MonthlyPayment))
			pw.row("Total you'll repay over the term", f.Format(q.Result.TotalRepayment))
		} else {
			pw.row("Error", errorText(q))
		}
		if len(quotes) > 1 && i < len(quotes)-1 {
			pw.printf("\n")
		}
	}
	return pw.err
}

type prettyWriter struct {
	w   io.Writer
	err error
}

func (p *prettyWriter) printf(layout string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, layout, args...)
}

func (p *prettyWriter) row(label, value string) {
	p.printf("%-32s | %s\n", label, value)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, quotes []quote.Quote) error {
	cw := csv.NewWriter(w)
	header := []string{"name", "type", "amount", "term_years", "rate_percent", "monthly_payment", "total_repayment", "error"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, q := range quotes {
		record := []string{
			q.Name,
			q.Input.Type.String(),
			q.Input.Amount.Raw(),
			q.Input.TermYears.Raw(),
			q.Input.AnnualRatePercent.Raw(),
			"",
			"",
			"",
		}
		if q.OK() {
			record[5] = strconv.FormatFloat(q.Result.MonthlyPayment, 'f', 2, 64)
			record[6] = strconv.FormatFloat(q.Result.TotalRepayment, 'f', 2, 64)
		} else {
			record[7] = errorText(q)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Report is the document written by the JSON and YAML formats.
type Report struct {
	Currency string   `json:"currency" yaml:"currency"`
	Locale   string   `json:"locale" yaml:"locale"`
	Quotes   []Record `json:"quotes" yaml:"quotes"`
}

// Record is one scenario in a Report.
type Record struct {
	Name                  string   `json:"name" yaml:"name"`
	Type                  string   `json:"type" yaml:"type"`
	Amount                string   `json:"amount" yaml:"amount"`
	TermYears             string   `json:"termYears" yaml:"termYears"`
	AnnualRatePercent     string   `json:"annualRatePercent" yaml:"annualRatePercent"`
	MonthlyPayment        *float64 `json:"monthlyPayment,omitempty" yaml:"monthlyPayment,omitempty"`
	TotalRepayment        *float64 `json:"totalRepayment,omitempty" yaml:"totalRepayment,omitempty"`
	MonthlyPaymentDisplay string   `json:"monthlyPaymentDisplay,omitempty" yaml:"monthlyPaymentDisplay,omitempty"`
	TotalRepaymentDisplay string   `json:"totalRepaymentDisplay,omitempty" yaml:"totalRepaymentDisplay,omitempty"`
	Error                 string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// BuildReport converts quotes into a Report.
func BuildReport(quotes []quote.Quote, f *format.CurrencyFormatter) Report {
	report := Report{
		Currency: f.Code(),
		Locale:   f.Locale(),
		Quotes:   make([]Record, 0, len(quotes)),
	}
	for _, q := range quotes {
		record := Record{
			Name:              q.Name,
			Type:              q.Input.Type.String(),
			Amount:            q.Input.Amount.Raw(),
			TermYears:         q.Input.TermYears.Raw(),
			AnnualRatePercent: q.Input.AnnualRatePercent.Raw(),
		}
		if q.OK() {
			monthly := q.Result.MonthlyPayment
			total := q.Result.TotalRepayment
			record.MonthlyPayment = &monthly
			record.TotalRepayment = &total
			record.MonthlyPaymentDisplay = f.Format(monthly)
			record.TotalRepaymentDisplay = f.Format(total)
		} else {
			record.Error = errorText(q)
		}
		report.Quotes = append(report.Quotes, record)
	}
	return report
}

// JSONFormat outputs an indented JSON report.
func JSONFormat(w io.Writer, quotes []quote.Quote, f *format.CurrencyFormatter) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildReport(quotes, f))
}

// YAMLFormat outputs a YAML report.
func YAMLFormat(w io.Writer, quotes []quote.Quote, f *format.CurrencyFormatter) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildReport(quotes, f)); err != nil {
		return err
	}
	return enc.Close()
}

func errorText(q quote.Quote) string {
	if q.Err == nil {
		return "no result"
	}
	return q.Err.Error()
}

func money(v mortgage.Value, f *format.CurrencyFormatter) string {
	if !v.IsSet() {
		return "-"
	}
	n, err := v.Float()
	if err != nil {
		return v.Raw()
	}
	return f.Format(n)
}

func suffixed(v mortgage.Value, suffix string) string {
	if !v.IsSet() {
		return "-"
	}
	return v.Raw() + suffix
}
