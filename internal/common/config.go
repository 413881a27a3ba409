package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Storage     StorageConfig    `toml:"storage"`
	Logging     LoggingConfig    `toml:"logging"`
	Analysis    AnalysisConfig   `toml:"analysis"`
	Valuation   ValuationConfig  `toml:"valuation"`
	Benchmarks  BenchmarksConfig `toml:"benchmarks"`
	Tracing     TracingConfig    `toml:"tracing"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	Dir        string   `toml:"dir"`         // Log directory (default: ./logs beside the executable)
	TimeFormat string   `toml:"time_format"` // Time format for log lines (default: "15:04:05")
}

// AnalysisConfig controls the report pipeline
type AnalysisConfig struct {
	MaxYears       int  `toml:"max_years"`       // Most recent years kept in a report (default: 5)
	ParallelRatios bool `toml:"parallel_ratios"` // Compute per-year ratio sets concurrently
}

// ValuationConfig holds the fixed policy assumptions of the valuation analysis
type ValuationConfig struct {
	TaxShield             float64 `toml:"tax_shield"`              // NOPAT = operating profit * tax_shield (default: 0.8)
	CostOfCapital         float64 `toml:"cost_of_capital"`         // WACC assumption (default: 0.10)
	PayoutRatio           float64 `toml:"payout_ratio"`            // Dividend payout assumption (default: 0.30)
	RetainedEarningsProxy float64 `toml:"retained_earnings_proxy"` // Retained earnings = equity * proxy when unreported (default: 0.6)
}

// BenchmarksConfig controls sector benchmark derivation
type BenchmarksConfig struct {
	Enabled  bool   `toml:"enabled"`  // Run the scheduled refresh
	Schedule string `toml:"schedule"` // Cron schedule with seconds field
	Derive   bool   `toml:"derive"`   // Derive averages from stored company ratios on refresh
}

// TracingConfig controls OpenTelemetry tracing of report generation
type TracingConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	PrettyPrint bool   `toml:"pretty_print"`
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8085,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/finsight",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05.000",
		},
		Analysis: AnalysisConfig{
			MaxYears:       5,
			ParallelRatios: false,
		},
		Valuation: ValuationConfig{
			TaxShield:             0.8,
			CostOfCapital:         0.10,
			PayoutRatio:           0.30,
			RetainedEarningsProxy: 0.6,
		},
		Benchmarks: BenchmarksConfig{
			Enabled:  true,
			Schedule: "0 0 2 * * *", // Daily at 02:00
			Derive:   true,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "finsight",
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority: default -> file1 -> file2 -> ... -> env
// Later files override earlier files. CLI flags are applied afterwards by the caller.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Unmarshal merges with existing values, later values override
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINSIGHT_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("FINSIGHT_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("FINSIGHT_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Storage configuration
	if badgerPath := os.Getenv("FINSIGHT_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	// Logging configuration
	if level := os.Getenv("FINSIGHT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("FINSIGHT_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
	if dir := os.Getenv("FINSIGHT_LOG_DIR"); dir != "" {
		config.Logging.Dir = dir
	}

	// Analysis configuration
	if maxYears := os.Getenv("FINSIGHT_ANALYSIS_MAX_YEARS"); maxYears != "" {
		if n, err := strconv.Atoi(maxYears); err == nil {
			config.Analysis.MaxYears = n
		}
	}
	if parallel := os.Getenv("FINSIGHT_ANALYSIS_PARALLEL_RATIOS"); parallel != "" {
		if b, err := strconv.ParseBool(parallel); err == nil {
			config.Analysis.ParallelRatios = b
		}
	}

	// Valuation policy
	setFloat := func(name string, target *float64) {
		if v := os.Getenv(name); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*target = f
			}
		}
	}
	setFloat("FINSIGHT_VALUATION_TAX_SHIELD", &config.Valuation.TaxShield)
	setFloat("FINSIGHT_VALUATION_COST_OF_CAPITAL", &config.Valuation.CostOfCapital)
	setFloat("FINSIGHT_VALUATION_PAYOUT_RATIO", &config.Valuation.PayoutRatio)
	setFloat("FINSIGHT_VALUATION_RETAINED_EARNINGS_PROXY", &config.Valuation.RetainedEarningsProxy)

	// Benchmarks configuration
	if enabled := os.Getenv("FINSIGHT_BENCHMARKS_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.Benchmarks.Enabled = b
		}
	}
	if schedule := os.Getenv("FINSIGHT_BENCHMARKS_SCHEDULE"); schedule != "" {
		config.Benchmarks.Schedule = schedule
	}

	// Tracing configuration
	if enabled := os.Getenv("FINSIGHT_TRACING_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.Tracing.Enabled = b
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if c.Analysis.MaxYears < 2 {
		return fmt.Errorf("analysis.max_years must be at least 2, got %d", c.Analysis.MaxYears)
	}
	if c.Valuation.PayoutRatio < 0 || c.Valuation.PayoutRatio > 1 {
		return fmt.Errorf("valuation.payout_ratio must be within [0, 1], got %v", c.Valuation.PayoutRatio)
	}
	if c.Benchmarks.Enabled {
		if err := ValidateSchedule(c.Benchmarks.Schedule); err != nil {
			return fmt.Errorf("benchmarks.schedule: %w", err)
		}
	}
	return nil
}

// ValidateSchedule validates a six-field cron expression (with seconds) and ensures a minimum 5-minute interval
func ValidateSchedule(schedule string) error {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	parts := strings.Fields(schedule)
	if len(parts) < 6 {
		return fmt.Errorf("invalid cron format: expected 6 fields")
	}

	if parts[0] == "*" || strings.HasPrefix(parts[0], "*/") {
		return fmt.Errorf("schedule must run at a fixed second, got %q", parts[0])
	}

	minuteField := parts[1]
	if minuteField == "*" {
		return fmt.Errorf("schedule must have minimum 5-minute interval (every minute is not allowed)")
	}
	if strings.HasPrefix(minuteField, "*/") {
		interval, err := strconv.Atoi(strings.TrimPrefix(minuteField, "*/"))
		if err == nil && interval < 5 {
			return fmt.Errorf("schedule interval must be at least 5 minutes, got %d", interval)
		}
	}

	return nil
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
