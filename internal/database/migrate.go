package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate applies every pending migration for the given dialect
// (DialectPostgres or DialectSQLite) and returns the number applied.
func Migrate(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return 0, fmt.Errorf("%s: %q", ErrMsgUnknownDialect, dialect)
	}

	fsys, err := fs.Sub(migrationsFS, "migrations/"+dialect)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration)
	}
	if len(results) == 0 {
		slog.Default().Debug(LogMsgSchemaUpToDate, "dialect", dialect)
	}

	return len(results), nil
}
