package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel   = "warn"
	defaultRetryRPS   = 0.0
	defaultRetryBurst = 1
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	LogLevel string `yaml:"log_level"`
	// RetryRPS limits how quickly the prompt repeats after rejected input.
	// Zero disables throttling.
	RetryRPS   float64 `yaml:"-"`
	RetryBurst int     `yaml:"-"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	LogLevel string     `yaml:"log_level"`
	Retry    *yamlRetry `yaml:"retry"`
}

// yamlRetry represents the retry section in YAML.
type yamlRetry struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	LogLevel   *string
	RetryRPS   *float64
	RetryBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		LogLevel:   defaultLogLevel,
		RetryRPS:   defaultRetryRPS,
		RetryBurst: defaultRetryBurst,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if level := strings.TrimSpace(yamlCfg.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	if yamlCfg.Retry == nil {
		return
	}
	if yamlCfg.Retry.RPS >= 0 {
		cfg.RetryRPS = yamlCfg.Retry.RPS
	}
	if yamlCfg.Retry.Burst > 0 {
		cfg.RetryBurst = yamlCfg.Retry.Burst
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if rps := strings.TrimSpace(os.Getenv("RETRY_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.RetryRPS = value
		}
	}

	if burst := strings.TrimSpace(os.Getenv("RETRY_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value > 0 {
			cfg.RetryBurst = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.RetryRPS != nil && *overrides.RetryRPS >= 0 {
		cfg.RetryRPS = *overrides.RetryRPS
	}

	if overrides.RetryBurst != nil && *overrides.RetryBurst > 0 {
		cfg.RetryBurst = *overrides.RetryBurst
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if cfg.RetryRPS < 0 {
		return fmt.Errorf("RETRY_RPS must be >= 0")
	}
	if cfg.RetryBurst <= 0 {
		return fmt.Errorf("RETRY_BURST must be > 0")
	}
	return nil
}
