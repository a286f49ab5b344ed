package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/internal/tui"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// commandLineScenario is the name given to a scenario built from flags.
const commandLineScenario = "command line"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// resolveConfigPath falls back to built-in defaults when the default config
// file is absent. An explicitly named file must exist.
func resolveConfigPath(path string) string {
	if path == constants.DefaultConfigFile && !config.Exists(path) {
		return ""
	}
	return path
}

// resolveOutputFormat picks the CLI override, then the config, then pretty.
func resolveOutputFormat(override, configured string) (string, error) {
	outputFormat := configured
	if override != "" {
		outputFormat = override
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	return outputFormat, validation.ValidateOutputFormat(outputFormat)
}

// applyOverrides copies display and type flags onto the configuration and,
// when any numeric value is given on the command line, replaces the
// configured scenarios with a single one built from the flags.
func applyOverrides(conf *config.Configuration, currency, locale, mortgageType, amount, term, rate string) error {
	if currency != "" {
		conf.Display.Currency = currency
	}
	if locale != "" {
		conf.Display.Locale = locale
	}
	if mortgageType != "" {
		conf.Defaults.MortgageType = mortgageType
	}

	if amount == "" && term == "" && rate == "" {
		return nil
	}

	defaultType, err := conf.DefaultMortgageType()
	if err != nil {
		return err
	}
	input := mortgage.RepaymentInput{
		Amount:            mortgage.Text(amount),
		TermYears:         mortgage.Text(term),
		AnnualRatePercent: mortgage.Text(rate),
		Type:              defaultType,
	}
	conf.Scenarios = []config.Scenario{config.FromRepaymentInput(commandLineScenario, input)}
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json, yaml")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	interactive := flag.Bool("interactive", false, "open the interactive repayment form")
	amount := flag.String("amount", "", "mortgage amount")
	term := flag.String("term", "", "mortgage term in years")
	rate := flag.String("rate", "", "annual interest rate in percent")
	mortgageType := flag.String("type", "", "mortgage type override: repayment, interest-only")
	currency := flag.String("currency", "", "ISO 4217 display currency override, e.g. GBP")
	locale := flag.String("locale", "", "BCP 47 display locale override, e.g. en-GB")
	flag.Parse()

	configPath := resolveConfigPath(*configLocation)
	conf, err := config.LoadConfiguration(configPath)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return 1
	}

	// Log lines on the terminal would tear the full screen form.
	var logger *zap.Logger
	if *interactive && conf.Logging.OutputFile == "" {
		logger = zap.NewNop()
	} else {
		logger, err = initializeLogger(conf.Logging, *logLevel)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
			return 1
		}
	}
	defer func() {
		_ = logger.Sync()
	}()

	if configPath == "" {
		logger.Debug("no configuration file found, using defaults",
			zap.String("op", "main"),
			zap.String("path", *configLocation),
		)
	}

	if err := applyOverrides(conf, *currency, *locale, *mortgageType, *amount, *term, *rate); err != nil {
		logger.Error("invalid command line values",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return 1
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	formatter, err := conf.CurrencyFormatter()
	if err != nil {
		logger.Error("failed to set up currency display",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return 1
	}

	if *interactive {
		defaultType, err := conf.DefaultMortgageType()
		if err != nil {
			logger.Error("invalid default mortgage type",
				zap.String("op", "main"),
				zap.Error(err),
			)
			return 1
		}
		if err := tui.Run(logger, formatter, defaultType); err != nil {
			logger.Error("interactive form failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
			return 1
		}
		return 0
	}

	outputFormat, err := resolveOutputFormat(*outputFormatFlag, conf.Output.Format)
	if err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main"),
		)
		return 1
	}

	quotes, err := quote.GetQuotes(logger, *conf)
	if err != nil {
		logger.Error("failed to compute quotes",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return 1
	}
	if len(quotes) == 0 {
		logger.Warn("nothing to calculate; pass -amount, -term and -rate, activate a scenario, or use -interactive",
			zap.String("op", "main"),
		)
	}

	if err := output.Write(os.Stdout, outputFormat, quotes, formatter); err != nil {
		logger.Error("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return 1
	}

	if failed := quote.Failed(quotes); failed > 0 {
		logger.Info(fmt.Sprintf("%d of %d scenarios were rejected", failed, len(quotes)),
			zap.String("op", "main"),
		)
		return 1
	}
	return 0
}
