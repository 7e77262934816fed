// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fjacquet/tdstatement/internal/logging"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "TDSTATEMENT"

// Extraction engines accepted by extraction.engine.
var validEngines = []string{"auto", "pdftotext", "native", "text"}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ExtractionConfig selects the text extraction engine.
type ExtractionConfig struct {
	Engine        string `mapstructure:"engine" yaml:"engine"`
	PdftotextPath string `mapstructure:"pdftotext_path" yaml:"pdftotext_path"`
}

// ProcessingConfig sizes the per-document worker pool.
type ProcessingConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// ExportConfig controls tabular output.
type ExportConfig struct {
	CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	DateFormat   string `mapstructure:"date_format" yaml:"date_format"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Extraction ExtractionConfig `mapstructure:"extraction" yaml:"extraction"`
	Processing ProcessingConfig `mapstructure:"processing" yaml:"processing"`
	Export     ExportConfig     `mapstructure:"export" yaml:"export"`
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Export.CSVDelimiter)
	return r
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return Load(viper.New(), "")
}

// Load configures v and reads the configuration. Values already bound to v,
// such as CLI flags, take precedence over the environment. An explicit
// configFile replaces the search path.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.tdstatement")
		v.AddConfigPath(".tdstatement")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("extraction.engine", "auto")
	v.SetDefault("extraction.pdftotext_path", "pdftotext")

	v.SetDefault("processing.workers", 1)

	v.SetDefault("export.csv_delimiter", ",")
	v.SetDefault("export.date_format", "2006-01-02")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	known := false
	for _, e := range validEngines {
		if config.Extraction.Engine == e {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("invalid extraction engine: %s (must be one of %s)",
			config.Extraction.Engine, strings.Join(validEngines, ", "))
	}

	if config.Processing.Workers < 1 {
		return fmt.Errorf("processing.workers must be at least 1, got: %d", config.Processing.Workers)
	}

	if utf8.RuneCountInString(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Export.CSVDelimiter)
	}

	if strings.TrimSpace(config.Export.DateFormat) == "" {
		return fmt.Errorf("export.date_format must not be empty")
	}

	return nil
}

// NewLogger builds the diagnostic logger described by the configuration.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
