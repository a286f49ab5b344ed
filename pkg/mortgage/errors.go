package mortgage

import (
	"errors"
	"strings"
)

// ErrorKind classifies why an input was rejected.
type ErrorKind string

const (
	// KindRequiredField means one or more fields were not entered.
	KindRequiredField ErrorKind = "REQUIRED_FIELD"
	// KindInvalidNumber means entered text is not a finite number.
	KindInvalidNumber ErrorKind = "INVALID_NUMBER"
	// KindOutOfRange means a non-positive amount or term, or a negative rate.
	KindOutOfRange ErrorKind = "OUT_OF_RANGE"
	// KindZeroRateRepayment means a repayment mortgage was given a zero rate.
	KindZeroRateRepayment ErrorKind = "ZERO_RATE_REPAYMENT"
)

// Sentinels for errors.Is; every *ValidationError matches the one for its kind.
var (
	ErrRequiredField     = errors.New("This field is required.")
	ErrInvalidNumber     = errors.New("Please enter valid numbers.")
	ErrOutOfRange        = errors.New("Please enter a number greater than zero.")
	ErrZeroRateRepayment = errors.New("Interest rate must be greater than 0 for repayment mortgages.")
)

// Field names used in ValidationError.Fields.
const (
	// FieldAmount is the principal.
	FieldAmount = "amount"
	// FieldTerm is the term in years.
	FieldTerm = "termYears"
	// FieldRate is the annual interest rate in percent.
	FieldRate = "annualRatePercent"
)

// ValidationError reports a caller-correctable problem with a RepaymentInput.
// Error returns the user-facing message.
type ValidationError struct {
	Kind   ErrorKind
	Fields []string
}

func (e *ValidationError) Error() string {
	if e.Kind == KindOutOfRange && len(e.Fields) == 1 && e.Fields[0] == FieldRate {
		return "Interest rate cannot be negative."
	}
	return e.sentinel().Error()
}

// Is matches the sentinel of the same kind.
func (e *ValidationError) Is(target error) bool {
	return target == e.sentinel()
}

// Describe names the offending fields, for logs.
func (e *ValidationError) Describe() string {
	if len(e.Fields) == 0 {
		return string(e.Kind)
	}
	return string(e.Kind) + " (" + strings.Join(e.Fields, ", ") + ")"
}

func (e *ValidationError) sentinel() error {
	switch e.Kind {
	case KindRequiredField:
		return ErrRequiredField
	case KindInvalidNumber:
		return ErrInvalidNumber
	case KindOutOfRange:
		return ErrOutOfRange
	default:
		return ErrZeroRateRepayment
	}
}

func newValidationError(kind ErrorKind, fields ...string) *ValidationError {
	return &ValidationError{Kind: kind, Fields: fields}
}
