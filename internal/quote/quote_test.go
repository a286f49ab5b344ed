package quote

import (
	"errors"
	"testing"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestCalculate(t *testing.T) {
	logger := zaptest.NewLogger(t)

	result, err := Calculate(logger, mortgage.RepaymentInput{
		Amount:            mortgage.Text("200000"),
		TermYears:         mortgage.Text("25"),
		AnnualRatePercent: mortgage.Text("5.25"),
		Type:              mortgage.InterestOnly,
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if result.MonthlyPayment != 875.00 || result.TotalRepayment != 262500.00 {
		t.Errorf("Calculate() = %+v, expected 875.00 / 262500.00", result)
	}
}

func TestCalculateNilLogger(t *testing.T) {
	if _, err := Calculate(nil, mortgage.RepaymentInput{}); !errors.Is(err, mortgage.ErrRequiredField) {
		t.Errorf("Calculate() error = %v, expected required field error", err)
	}
}

func TestCalculateLogsRejection(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	_, err := Calculate(logger, mortgage.RepaymentInput{
		Amount:            mortgage.Number(200000),
		TermYears:         mortgage.Number(25),
		AnnualRatePercent: mortgage.Number(0),
		Type:              mortgage.Repayment,
	})
	if !errors.Is(err, mortgage.ErrZeroRateRepayment) {
		t.Fatalf("Calculate() error = %v, expected zero rate error", err)
	}

	entries := logs.FilterMessage("repayment input rejected").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 rejection log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["op"] != "quote.Calculate" {
		t.Errorf("op = %v, expected quote.Calculate", fields["op"])
	}
	if fields["reason"] != "ZERO_RATE_REPAYMENT (annualRatePercent)" {
		t.Errorf("reason = %v", fields["reason"])
	}
}

func TestCalculateLogsResult(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	_, err := Calculate(logger, mortgage.RepaymentInput{
		Amount:            mortgage.Text("200000"),
		TermYears:         mortgage.Text("25"),
		AnnualRatePercent: mortgage.Text("5.25"),
		Type:              mortgage.InterestOnly,
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	entries := logs.FilterMessage("computed interest-only repayment of £875.00 per month").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 result log entry, got %v", logs.All())
	}
	fields := entries[0].ContextMap()
	if fields["op"] != "quote.Calculate" {
		t.Errorf("op = %v, expected quote.Calculate", fields["op"])
	}
	if fields["monthlyPayment"] != 875.00 {
		t.Errorf("monthlyPayment = %v", fields["monthlyPayment"])
	}
}

func TestGetQuotes(t *testing.T) {
	conf := config.Configuration{
		Defaults: config.DefaultsConfig{MortgageType: "repayment"},
		Scenarios: []config.Scenario{
			{Name: "first home", Active: true, Amount: "200000", Term: "25", Rate: "5.25"},
			{Name: "inactive", Active: false, Amount: "1", Term: "1", Rate: "1"},
			{Name: "interest only", Active: true, Amount: "200000", Term: "25", Rate: "5.25", Type: "interest"},
			{Name: "missing rate", Active: true, Amount: "200000", Term: "25"},
			{Name: "zero rate", Active: true, Amount: "200000", Term: "25", Rate: "0"},
		},
	}

	quotes, err := GetQuotes(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetQuotes() error = %v", err)
	}

	tests := []struct {
		name     string
		monthly  float64
		total    float64
		sentinel error
	}{
		{name: "first home", monthly: 1198.50, total: 359550.00},
		{name: "interest only", monthly: 875.00, total: 262500.00},
		{name: "missing rate", sentinel: mortgage.ErrRequiredField},
		{name: "zero rate", sentinel: mortgage.ErrZeroRateRepayment},
	}

	if len(quotes) != len(tests) {
		t.Fatalf("GetQuotes() returned %d quotes, expected %d", len(quotes), len(tests))
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := quotes[i]
			if q.Name != tt.name {
				t.Fatalf("quote %d name = %q, expected %q", i, q.Name, tt.name)
			}
			if tt.sentinel != nil {
				if q.OK() {
					t.Fatalf("expected %q to fail", tt.name)
				}
				if !errors.Is(q.Err, tt.sentinel) {
					t.Errorf("Err = %v, expected %v", q.Err, tt.sentinel)
				}
				return
			}
			if !q.OK() {
				t.Fatalf("unexpected error: %v", q.Err)
			}
			if q.Result.MonthlyPayment != tt.monthly || q.Result.TotalRepayment != tt.total {
				t.Errorf("Result = %+v, expected %.2f / %.2f", *q.Result, tt.monthly, tt.total)
			}
		})
	}

	if Failed(quotes) != 2 {
		t.Errorf("Failed() = %d, expected 2", Failed(quotes))
	}
}

func TestGetQuotesConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		conf config.Configuration
	}{
		{
			name: "Unknown default type",
			conf: config.Configuration{Defaults: config.DefaultsConfig{MortgageType: "tracker"}},
		},
		{
			name: "Unknown scenario type",
			conf: config.Configuration{
				Defaults:  config.DefaultsConfig{MortgageType: "repayment"},
				Scenarios: []config.Scenario{{Name: "bad", Active: true, Type: "offset"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GetQuotes(nil, tt.conf); err == nil {
				t.Error("GetQuotes() expected error but got none")
			}
		})
	}
}
