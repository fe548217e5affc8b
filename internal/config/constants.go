package config

import "time"

// Storage drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "foodcost"
	DefaultVersion         = "dev"
	DefaultSQLitePath      = "food_cost.db"
	DefaultDBMaxConns      = 10
	DefaultDBMaxConnIdle   = 30 * time.Minute
	DefaultDBMaxConnLife   = time.Hour
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRateLimit       = 1000
)
