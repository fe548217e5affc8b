package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/repository"
)

// RecipeRepository implements repository.Recipe for SQLite
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// BeginTx starts a recipe transaction
func (r *RecipeRepository) BeginTx(ctx context.Context) (repository.RecipeTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &recipeTx{tx: tx}, nil
}

// GetRecipe loads a recipe header and its items
func (r *RecipeRepository) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.QueryRowContext(ctx, getRecipeByID, id).Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Portions,
		&recipe.SpiceFactorPercent,
		&recipe.TotalCost,
		&recipe.CostPerPortion,
		&recipe.TotalWithSpice,
		&recipe.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}

	rows, err := r.db.QueryContext(ctx, getRecipeItems, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipeItems, err)
	}
	defer rows.Close()

	recipe.Items = []domain.RecipeItem{}
	for rows.Next() {
		var item domain.RecipeItem
		var ingredientID sql.NullInt64
		if err := rows.Scan(
			&item.ID,
			&item.RecipeID,
			&ingredientID,
			&item.IngredientName,
			&item.EPQuantity,
			&item.EPUnit,
			&item.YieldPercent,
			&item.APQuantity,
			&item.APUnit,
			&item.APPrice,
			&item.APCostPerUnit,
			&item.EPCostPerUnit,
			&item.ExtendedCost,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipeItems, err)
		}
		item.IngredientID = idPtr(ingredientID)
		recipe.Items = append(recipe.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipeItems, err)
	}

	return &recipe, nil
}

// recipeTx implements repository.RecipeTx on a database/sql transaction
type recipeTx struct {
	tx *sql.Tx
}

func (t *recipeTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *recipeTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return repository.ErrTxDone
	}
	return err
}

func (t *recipeTx) FindIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	ing, err := findIngredient(ctx, t.tx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFindIngredient, err)
	}
	return ing, nil
}

func (t *recipeTx) InsertIngredient(ctx context.Context, name string, apQuantity float64, apUnit string, apPrice float64) (int64, error) {
	res, err := t.tx.ExecContext(ctx, insertIngredient, name, nameKey(name), apQuantity, apUnit, apPrice)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertIngredient, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertIngredient, err)
	}
	return id, nil
}

func (t *recipeTx) InsertRecipe(ctx context.Context, recipe *domain.Recipe) (int64, error) {
	res, err := t.tx.ExecContext(ctx, insertRecipe,
		recipe.Name,
		recipe.Portions,
		recipe.SpiceFactorPercent,
		recipe.TotalCost,
		recipe.CostPerPortion,
		recipe.TotalWithSpice,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
	}
	return id, nil
}

func (t *recipeTx) InsertRecipeItems(ctx context.Context, recipeID int64, items []domain.RecipeItem) error {
	stmt, err := t.tx.PrepareContext(ctx, insertRecipeItem)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipeItem, err)
	}
	defer stmt.Close()

	for i := range items {
		item := &items[i]
		_, err := stmt.ExecContext(ctx,
			recipeID,
			nullID(item.IngredientID),
			item.IngredientName,
			item.EPQuantity,
			item.EPUnit,
			item.YieldPercent,
			item.APQuantity,
			item.APUnit,
			item.APPrice,
			item.APCostPerUnit,
			item.EPCostPerUnit,
			item.ExtendedCost,
		)
		if err != nil {
			return fmt.Errorf("%s %d: %w", ErrMsgFailedToInsertRecipeItem, i, err)
		}
	}
	return nil
}
