package postgres

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/FoodCost_Go/internal/database/generated"
	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// timeFromTimestamptz returns the zero time for NULL timestamps
func timeFromTimestamptz(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// ptrToInt8 converts an optional id to pgtype.Int8
func ptrToInt8(id *int64) pgtype.Int8 {
	if id == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: *id, Valid: true}
}

// int8ToPtr converts a pgtype.Int8 to *int64.
// Returns nil if the value is NULL.
func int8ToPtr(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

// clampLimit converts a search limit to the int32 the query expects
func clampLimit(limit int) int32 {
	if limit > math.MaxInt32 {
		return math.MaxInt32
	}
	if limit < 0 {
		return 0
	}
	return int32(limit)
}

func mapIngredient(row generated.Ingredient) *domain.Ingredient {
	return &domain.Ingredient{
		ID:         row.ID,
		Name:       row.Name,
		APQuantity: row.ApQuantity,
		APUnit:     row.ApUnit,
		APPrice:    row.ApPrice,
		CreatedAt:  timeFromTimestamptz(row.CreatedAt),
	}
}

func mapRecipe(row generated.Recipe) *domain.Recipe {
	return &domain.Recipe{
		ID:                 row.ID,
		Name:               row.RecipeName,
		Portions:           row.Portions,
		SpiceFactorPercent: row.SpiceFactorPercent,
		TotalCost:          row.TotalCost,
		CostPerPortion:     row.CostPerPortion,
		TotalWithSpice:     row.TotalWithSpice,
		CreatedAt:          timeFromTimestamptz(row.CreatedAt),
	}
}

func mapRecipeItem(row generated.RecipeItem) domain.RecipeItem {
	return domain.RecipeItem{
		ID:             row.ID,
		RecipeID:       row.RecipeID,
		IngredientID:   int8ToPtr(row.IngredientID),
		IngredientName: row.IngredientName,
		EPQuantity:     row.EpQuantity,
		EPUnit:         row.EpUnit,
		YieldPercent:   row.YieldPercent,
		APQuantity:     row.ApQuantity,
		APUnit:         row.ApUnit,
		APPrice:        row.ApPrice,
		APCostPerUnit:  row.ApCostPerUnit,
		EPCostPerUnit:  row.EpCostPerUnit,
		ExtendedCost:   row.ExtendedCost,
	}
}

// findIngredientByName is shared by the repository and its transactions
func findIngredientByName(ctx context.Context, q *generated.Queries, name string) (*domain.Ingredient, error) {
	row, err := q.FindIngredientByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return mapIngredient(row), nil
}
