package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "auto", config.Extraction.Engine)
	assert.Equal(t, "pdftotext", config.Extraction.PdftotextPath)
	assert.Equal(t, 1, config.Processing.Workers)
	assert.Equal(t, ",", config.Export.CSVDelimiter)
	assert.Equal(t, ',', config.Delimiter())
	assert.Equal(t, "2006-01-02", config.Export.DateFormat)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"TDSTATEMENT_LOG_LEVEL":                 "debug",
		"TDSTATEMENT_LOG_FORMAT":                "text",
		"TDSTATEMENT_EXTRACTION_ENGINE":         "native",
		"TDSTATEMENT_EXTRACTION_PDFTOTEXT_PATH": "/opt/poppler/bin/pdftotext",
		"TDSTATEMENT_PROCESSING_WORKERS":        "4",
		"TDSTATEMENT_EXPORT_CSV_DELIMITER":      ";",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "native", config.Extraction.Engine)
	assert.Equal(t, "/opt/poppler/bin/pdftotext", config.Extraction.PdftotextPath)
	assert.Equal(t, 4, config.Processing.Workers)
	assert.Equal(t, ';', config.Delimiter())
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "text"
extraction:
  engine: "pdftotext"
processing:
  workers: 3
export:
  csv_delimiter: "|"
  date_format: "01/02/2006"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "pdftotext", config.Extraction.Engine)
	assert.Equal(t, 3, config.Processing.Workers)
	assert.Equal(t, "|", config.Export.CSVDelimiter)
	assert.Equal(t, "01/02/2006", config.Export.DateFormat)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
processing:
  workers: 3
export:
  csv_delimiter: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	chdir(t, tempDir)

	t.Setenv("TDSTATEMENT_LOG_LEVEL", "error")
	t.Setenv("TDSTATEMENT_PROCESSING_WORKERS", "5")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)        // env var wins
	assert.Equal(t, "|", config.Export.CSVDelimiter)  // config file value
	assert.Equal(t, 5, config.Processing.Workers)     // env var wins
	assert.Equal(t, "auto", config.Extraction.Engine) // default
}

func TestLoad_ExplicitFileAndOverrides(t *testing.T) {
	clearTestEnvVars(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("processing:\n  workers: 2\n"), 0600))

	v := viper.New()
	v.Set("log.level", "debug")
	config, err := Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, 2, config.Processing.Workers)
	assert.Equal(t, "debug", config.Log.Level)

	_, err = Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeConfig_InvalidEnvironment(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())
	t.Setenv("TDSTATEMENT_EXTRACTION_ENGINE", "ocr")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid extraction engine")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log format",
		},
		{
			name:         "invalid engine",
			modifyConfig: func(c *Config) { c.Extraction.Engine = "ocr" },
			expectError:  "invalid extraction engine",
		},
		{
			name:         "no workers",
			modifyConfig: func(c *Config) { c.Processing.Workers = 0 },
			expectError:  "processing.workers must be at least 1",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.Export.CSVDelimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "empty date format",
			modifyConfig: func(c *Config) { c.Export.DateFormat = " " },
			expectError:  "export.date_format must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}

	assert.NoError(t, validateConfig(validConfig()))
}

func TestNewLogger(t *testing.T) {
	config := validConfig()
	assert.NotNil(t, NewLogger(config))

	config.Log.Format = "text"
	config.Log.Level = "DEBUG"
	assert.NotNil(t, NewLogger(config))
}

func TestLoadEnv(t *testing.T) {
	clearTestEnvVars(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TDSTATEMENT_PROCESSING_WORKERS=7\n"), 0600))

	loaded, err := LoadEnv(filepath.Join(dir, "missing.env"), envFile)
	require.NoError(t, err)
	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "7", GetEnv("TDSTATEMENT_PROCESSING_WORKERS", "1"))
	assert.Equal(t, "fallback", GetEnv("TDSTATEMENT_UNSET_FOR_TEST", "fallback"))

	loaded, err = LoadEnv(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func validConfig() *Config {
	return &Config{
		Log:        LogConfig{Level: "info", Format: "json"},
		Extraction: ExtractionConfig{Engine: "auto", PdftotextPath: "pdftotext"},
		Processing: ProcessingConfig{Workers: 1},
		Export:     ExportConfig{CSVDelimiter: ",", DateFormat: "2006-01-02"},
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

// Helper function to clear test environment variables
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"TDSTATEMENT_LOG_LEVEL",
		"TDSTATEMENT_LOG_FORMAT",
		"TDSTATEMENT_EXTRACTION_ENGINE",
		"TDSTATEMENT_EXTRACTION_PDFTOTEXT_PATH",
		"TDSTATEMENT_PROCESSING_WORKERS",
		"TDSTATEMENT_EXPORT_CSV_DELIMITER",
		"TDSTATEMENT_EXPORT_DATE_FORMAT",
	}

	for _, envVar := range envVars {
		// t.Setenv restores the original value when the test ends.
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
