package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are tried in order by LoadEnv.
var DefaultEnvFiles = []string{".env"}

// LoadEnv loads variables from the first .env file that exists. Variables
// already set in the environment are left untouched. It returns the file
// that was loaded, or "" when none was found.
func LoadEnv(files ...string) (string, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return "", err
		}
		return f, nil
	}
	return "", nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
