package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FoodCost_Go/internal/database/generated"
	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/repository"
)

// RecipeRepository implements repository.Recipe for PostgreSQL using sqlc
type RecipeRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// BeginTx starts a recipe transaction
func (r *RecipeRepository) BeginTx(ctx context.Context) (repository.RecipeTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &recipeTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

// GetRecipe loads a recipe header and its items
func (r *RecipeRepository) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	row, err := r.q.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}

	rows, err := r.q.GetRecipeItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipeItems, err)
	}

	recipe := mapRecipe(row)
	recipe.Items = make([]domain.RecipeItem, len(rows))
	for i, item := range rows {
		recipe.Items[i] = mapRecipeItem(item)
	}
	return recipe, nil
}

// recipeTx implements repository.RecipeTx on a pgx transaction
type recipeTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func (t *recipeTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *recipeTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return repository.ErrTxDone
	}
	return err
}

func (t *recipeTx) FindIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	ing, err := findIngredientByName(ctx, t.q, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFindIngredient, err)
	}
	return ing, nil
}

func (t *recipeTx) InsertIngredient(ctx context.Context, name string, apQuantity float64, apUnit string, apPrice float64) (int64, error) {
	id, err := t.q.InsertIngredient(ctx, generated.InsertIngredientParams{
		Name:       name,
		ApQuantity: apQuantity,
		ApUnit:     apUnit,
		ApPrice:    apPrice,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %q already exists: %w", ErrMsgFailedToInsertIngredient, name, err)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertIngredient, err)
	}
	return id, nil
}

func (t *recipeTx) InsertRecipe(ctx context.Context, recipe *domain.Recipe) (int64, error) {
	id, err := t.q.InsertRecipe(ctx, generated.InsertRecipeParams{
		RecipeName:         recipe.Name,
		Portions:           recipe.Portions,
		SpiceFactorPercent: recipe.SpiceFactorPercent,
		TotalCost:          recipe.TotalCost,
		CostPerPortion:     recipe.CostPerPortion,
		TotalWithSpice:     recipe.TotalWithSpice,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
	}
	return id, nil
}

func (t *recipeTx) InsertRecipeItems(ctx context.Context, recipeID int64, items []domain.RecipeItem) error {
	for i := range items {
		item := &items[i]
		err := t.q.InsertRecipeItem(ctx, generated.InsertRecipeItemParams{
			RecipeID:       recipeID,
			IngredientID:   ptrToInt8(item.IngredientID),
			IngredientName: item.IngredientName,
			EpQuantity:     item.EPQuantity,
			EpUnit:         item.EPUnit,
			YieldPercent:   item.YieldPercent,
			ApQuantity:     item.APQuantity,
			ApUnit:         item.APUnit,
			ApPrice:        item.APPrice,
			ApCostPerUnit:  item.APCostPerUnit,
			EpCostPerUnit:  item.EPCostPerUnit,
			ExtendedCost:   item.ExtendedCost,
		})
		if err != nil {
			return fmt.Errorf("%s %d: %w", ErrMsgFailedToInsertRecipeItem, i, err)
		}
	}
	return nil
}
