package repository

import (
	"context"

	"github.com/osse101/FoodCost_Go/internal/domain"
)

// DefaultSearchLimit caps ingredient search results
const DefaultSearchLimit = 10

// Ingredient defines the interface for ingredient persistence
type Ingredient interface {
	// FindIngredientByName matches the name exactly, ignoring case.
	// It returns nil, nil when no ingredient matches.
	FindIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error)
	// UpsertIngredient inserts the ingredient or, on a name conflict, replaces
	// its quantity, unit and price.
	UpsertIngredient(ctx context.Context, name string, apQuantity float64, apUnit string, apPrice float64) (*domain.Ingredient, error)
	// SearchIngredients returns ingredients whose name contains query,
	// ordered by name ascending.
	SearchIngredients(ctx context.Context, query string, limit int) ([]domain.Ingredient, error)
}
