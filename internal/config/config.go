// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-calculator.
type Configuration struct {
	Display   DisplayConfig  `yaml:"display,omitempty"`
	Defaults  DefaultsConfig `yaml:"defaults,omitempty"`
	Scenarios []Scenario     `yaml:"scenarios,omitempty"`
	Logging   LoggingConfig  `yaml:"logging,omitempty"`
	Output    OutputConfig   `yaml:"output,omitempty"`
}

// DisplayConfig selects how money is shown.
type DisplayConfig struct {
	Currency string `yaml:"currency,omitempty"` // ISO 4217, e.g. GBP
	Locale   string `yaml:"locale,omitempty"`   // BCP 47, e.g. en-GB
}

// DefaultsConfig holds the values the form starts from.
type DefaultsConfig struct {
	MortgageType string `yaml:"mortgageType,omitempty"` // repayment, interest-only
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// Scenario is a named set of calculator inputs evaluated in batch mode.
// Numeric fields are kept as text so that unparseable values reach the
// calculator's own validation.
type Scenario struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
	Amount string `yaml:"amount,omitempty"`
	Term   string `yaml:"term,omitempty"` // years
	Rate   string `yaml:"rate,omitempty"` // annual percent
	Type   string `yaml:"type,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A .env file next to the configuration, or in the
// working directory, is loaded first so its variables can override settings.
// An empty path yields the defaults plus any environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	loadEnvFiles(configPath)

	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	v.SetConfigType("yml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

// Exists reports whether a configuration file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("display.currency", constants.DefaultCurrency)
	v.SetDefault("display.locale", constants.DefaultLocale)
	v.SetDefault("defaults.mortgageType", constants.DefaultMortgageType)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if strings.TrimSpace(conf.Display.Currency) == "" {
		conf.Display.Currency = constants.DefaultCurrency
	}
	if strings.TrimSpace(conf.Display.Locale) == "" {
		conf.Display.Locale = constants.DefaultLocale
	}
	if strings.TrimSpace(conf.Defaults.MortgageType) == "" {
		conf.Defaults.MortgageType = constants.DefaultMortgageType
	}
}

func loadEnvFiles(configPath string) {
	candidates := []string{".env"}
	if configPath != "" {
		if dir := filepath.Dir(configPath); dir != "." {
			candidates = append(candidates, filepath.Join(dir, ".env"))
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			// Existing environment variables take precedence.
			_ = godotenv.Load(path)
		}
	}
}

// CurrencyFormatter builds the formatter for the configured display settings.
func (conf *Configuration) CurrencyFormatter() (*format.CurrencyFormatter, error) {
	return format.NewCurrencyFormatter(conf.Display.Currency, conf.Display.Locale)
}

// ActiveScenarios returns the scenarios marked active, in file order.
func (conf *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range conf.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	validator := validation.ConfigValidator{
		Currency:    conf.Display.Currency,
		Locale:      conf.Display.Locale,
		DefaultType: conf.Defaults.MortgageType,
	}
	for _, scenario := range conf.Scenarios {
		validator.Scenarios = append(validator.Scenarios, validation.ScenarioConfig{
			Name:   scenario.Name,
			Active: scenario.Active,
			Type:   scenario.Type,
		})
	}

	warnings := validator.ValidateAll()
	if len(conf.Scenarios) > 0 && len(conf.ActiveScenarios()) == 0 {
		warnings = append(warnings, "No active scenarios; set active: true on at least one scenario")
	}
	return warnings
}
