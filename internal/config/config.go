package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/FoodCost_Go/internal/costing"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string // empty logs to stdout only
	Environment string
	ServiceName string
	Version     string

	// Storage
	DBDriver      string // "sqlite" or "postgres"
	SQLitePath    string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxConnIdle time.Duration
	DBMaxConnLife time.Duration

	// Currency used for display strings
	Currency string

	// HTTP
	TrustedProxies []string
	RateLimit      int // requests per client per rate window

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:       getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:          getEnv("LOG_DIR", ""),
		Environment:     getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:     getEnv("SERVICE_NAME", DefaultServiceName),
		Version:         getEnv("VERSION", DefaultVersion),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		SQLitePath:      getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "foodcost"),
		DBMaxConns:      getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdle:   getEnvAsDuration("DB_MAX_CONN_IDLE", DefaultDBMaxConnIdle),
		DBMaxConnLife:   getEnvAsDuration("DB_MAX_CONN_LIFE", DefaultDBMaxConnLife),
		Currency:        strings.ToUpper(getEnv("CURRENCY", costing.DefaultCurrency)),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		RateLimit:       getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be caught while parsing
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d is out of range", c.Port)
	}

	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set when DB_DRIVER=%s", DriverSQLite)
		}
	case DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME must be set when DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected %s or %s)", c.DBDriver, DriverSQLite, DriverPostgres)
	}

	if c.RateLimit < 1 {
		return fmt.Errorf("invalid RATE_LIMIT value: %d", c.RateLimit)
	}

	if !costing.IsKnownCurrency(c.Currency) {
		return fmt.Errorf("unknown CURRENCY code %q", c.Currency)
	}

	return nil
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns the default
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves a duration environment variable or returns the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated environment variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
