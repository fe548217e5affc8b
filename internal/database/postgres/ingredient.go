package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FoodCost_Go/internal/database/generated"
	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/repository"
)

// IngredientRepository implements repository.Ingredient for PostgreSQL using sqlc
type IngredientRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// FindIngredientByName looks an ingredient up by case-insensitive name
func (r *IngredientRepository) FindIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	ing, err := findIngredientByName(ctx, r.q, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFindIngredient, err)
	}
	return ing, nil
}

// UpsertIngredient inserts an ingredient or updates the purchase fields of
// the existing row with the same name
func (r *IngredientRepository) UpsertIngredient(ctx context.Context, name string, apQuantity float64, apUnit string, apPrice float64) (*domain.Ingredient, error) {
	row, err := r.q.UpsertIngredient(ctx, generated.UpsertIngredientParams{
		Name:       name,
		ApQuantity: apQuantity,
		ApUnit:     apUnit,
		ApPrice:    apPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertIngredient, err)
	}
	return mapIngredient(row), nil
}

// SearchIngredients returns up to limit ingredients whose name contains query
func (r *IngredientRepository) SearchIngredients(ctx context.Context, query string, limit int) ([]domain.Ingredient, error) {
	rows, err := r.q.SearchIngredients(ctx, generated.SearchIngredientsParams{
		Query:    repository.EscapeLike(query),
		RowLimit: clampLimit(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchIngredients, err)
	}

	ingredients := make([]domain.Ingredient, len(rows))
	for i, row := range rows {
		ingredients[i] = *mapIngredient(row)
	}
	return ingredients, nil
}
