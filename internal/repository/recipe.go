package repository

import (
	"context"

	"github.com/osse101/FoodCost_Go/internal/domain"
)

// Recipe defines the interface for recipe persistence
type Recipe interface {
	// BeginTx starts the transaction a recipe save runs in
	BeginTx(ctx context.Context) (RecipeTx, error)
	// GetRecipe loads a recipe with its items; domain.ErrRecipeNotFound if absent
	GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error)
}

// RecipeTx defines the interface for recipe transactions
type RecipeTx interface {
	Tx
	FindIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error)
	InsertIngredient(ctx context.Context, name string, apQuantity float64, apUnit string, apPrice float64) (int64, error)
	InsertRecipe(ctx context.Context, recipe *domain.Recipe) (int64, error)
	InsertRecipeItems(ctx context.Context, recipeID int64, items []domain.RecipeItem) error
}
