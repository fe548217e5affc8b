package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredPostgresEnvVars lists the variables that must be set explicitly
// when the postgres driver is selected
var RequiredPostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks that the variables needed by the selected driver are set
func ValidateEnv() error {
	if !strings.EqualFold(os.Getenv("DB_DRIVER"), DriverPostgres) {
		return nil
	}

	var missing []string
	for _, envVar := range RequiredPostgresEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if strings.EqualFold(os.Getenv("DB_DRIVER"), DriverPostgres) {
		if pw := os.Getenv("DB_PASSWORD"); pw == "postgres" || pw == "change_this_secure_password" {
			warnings = append(warnings, "DB_PASSWORD appears to be using a default value - please use a secure password")
		}
	}

	if os.Getenv("CURRENCY") == "" {
		warnings = append(warnings, "CURRENCY not set - display strings default to USD")
	}

	return warnings, nil
}
