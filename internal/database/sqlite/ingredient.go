package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/repository"
)

// IngredientRepository implements repository.Ingredient for SQLite
type IngredientRepository struct {
	db *sql.DB
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(db *sql.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) FindIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	ing, err := findIngredient(ctx, r.db, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFindIngredient, err)
	}
	return ing, nil
}

func (r *IngredientRepository) UpsertIngredient(ctx context.Context, name string, apQuantity float64, apUnit string, apPrice float64) (*domain.Ingredient, error) {
	ing, err := scanIngredient(r.db.QueryRowContext(ctx, upsertIngredient, name, nameKey(name), apQuantity, apUnit, apPrice))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertIngredient, err)
	}
	return ing, nil
}

func (r *IngredientRepository) SearchIngredients(ctx context.Context, query string, limit int) ([]domain.Ingredient, error) {
	rows, err := r.db.QueryContext(ctx, searchIngredients, repository.EscapeLike(nameKey(query)), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchIngredients, err)
	}
	defer rows.Close()

	ingredients := []domain.Ingredient{}
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchIngredients, err)
		}
		ingredients = append(ingredients, *ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchIngredients, err)
	}
	return ingredients, nil
}
