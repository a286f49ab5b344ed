// Package mortgage computes monthly and total repayments for repayment and
// interest-only mortgages.
package mortgage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// MortgageType selects how the monthly payment is derived.
type MortgageType int

const (
	// Repayment pays down principal and interest over the term.
	Repayment MortgageType = iota
	// InterestOnly pays only the accrued interest; principal is due at term end.
	InterestOnly
)

func (t MortgageType) String() string {
	switch t {
	case Repayment:
		return "repayment"
	case InterestOnly:
		return "interest-only"
	default:
		return fmt.Sprintf("MortgageType(%d)", int(t))
	}
}

// Label is the name shown next to the selector in a form.
func (t MortgageType) Label() string {
	if t == InterestOnly {
		return "Interest Only"
	}
	return "Repayment"
}

// ParseMortgageType maps a textual selection onto a MortgageType.
func ParseMortgageType(s string) (MortgageType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "repayment":
		return Repayment, nil
	case "interest", "interest-only", "interest_only", "interestonly", "interest only":
		return InterestOnly, nil
	default:
		return Repayment, fmt.Errorf("unknown mortgage type %q: expected repayment or interest-only", s)
	}
}

// Value is a numeric form field which may not have been entered yet.
// The zero Value is unset.
type Value struct {
	set    bool
	raw    string
	number float64
	parsed bool
}

// Unset returns a field that has not been entered.
func Unset() Value {
	return Value{}
}

// Text returns a field holding raw user input. Empty or whitespace-only text
// is treated as not entered.
func Text(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Value{}
	}
	return Value{set: true, raw: trimmed}
}

// Number returns a field holding an already-typed number.
func Number(n float64) Value {
	return Value{set: true, number: n, parsed: true, raw: strconv.FormatFloat(n, 'f', -1, 64)}
}

// IsSet reports whether anything was entered.
func (v Value) IsSet() bool {
	return v.set
}

// Raw returns the entered text, or "" when unset.
func (v Value) Raw() string {
	return v.raw
}

// Float parses the field. It fails for unset fields and for text that is not a
// finite decimal number.
func (v Value) Float() (float64, error) {
	if !v.set {
		return 0, ErrRequiredField
	}
	n := v.number
	if !v.parsed {
		if isHexLiteral(v.raw) {
			return 0, ErrInvalidNumber
		}
		var err error
		n, err = strconv.ParseFloat(v.raw, 64)
		if err != nil {
			return 0, ErrInvalidNumber
		}
	}
	if !mathutil.IsFinite(n) {
		return 0, ErrInvalidNumber
	}
	return n, nil
}

// isHexLiteral reports whether s uses the 0x prefix that ParseFloat accepts.
func isHexLiteral(s string) bool {
	unsigned := strings.TrimLeft(s, "+-")
	return strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X")
}

func (v Value) String() string {
	if !v.set {
		return "<unset>"
	}
	return v.raw
}

// RepaymentInput holds one submission of the calculator form.
type RepaymentInput struct {
	Amount            Value
	TermYears         Value
	AnnualRatePercent Value
	Type              MortgageType
}

// RepaymentResult is the outcome of a successful calculation. Both figures are
// rounded to two decimal places.
type RepaymentResult struct {
	MonthlyPayment float64 `json:"monthlyPayment" yaml:"monthlyPayment"`
	TotalRepayment float64 `json:"totalRepayment" yaml:"totalRepayment"`
}
