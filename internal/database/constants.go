package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Migration dialects
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToMigrate          = "failed to apply migrations"
	ErrMsgUnknownDialect           = "unknown migration dialect"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgSchemaUpToDate                  = "Database schema is up to date"
)
