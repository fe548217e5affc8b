package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/logger"
)

// ErrTxDone is returned by drivers that report a finished transaction with
// their own sentinel (database/sql uses sql.ErrTxDone).
var ErrTxDone = errors.New(domain.ErrMsgTxClosed)

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Check for common "closed" errors to avoid noise
		if err.Error() != domain.ErrMsgTxClosed && !errors.Is(err, ErrTxDone) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so query matches literally.
// Backends pair it with ESCAPE '\'.
func EscapeLike(query string) string {
	return likeEscaper.Replace(query)
}
