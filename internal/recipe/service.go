package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/FoodCost_Go/internal/costing"
	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/logger"
	"github.com/osse101/FoodCost_Go/internal/metrics"
	"github.com/osse101/FoodCost_Go/internal/repository"
	"github.com/osse101/FoodCost_Go/internal/units"
)

// SaveRecipeInput is a recipe as submitted by a caller
type SaveRecipeInput struct {
	Name               string
	Portions           float64
	SpiceFactorPercent float64
	Items              []ItemInput
}

// ItemInput is one submitted line. The AP fields are only used when the
// ingredient does not exist yet; empty units mean each.
type ItemInput struct {
	Ingredient   string
	EPQuantity   float64
	EPUnit       string
	YieldPercent float64
	APQuantity   float64
	APUnit       string
	APPrice      string
}

// Service defines the interface for recipe operations
type Service interface {
	SaveRecipe(ctx context.Context, in SaveRecipeInput) (*domain.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error)
}

type service struct {
	repo repository.Recipe
}

// NewService creates a new recipe service
func NewService(repo repository.Recipe) Service {
	return &service{repo: repo}
}

// SaveRecipe costs every line, creating unknown ingredients on the way, and
// persists the recipe with its item snapshots. Nothing is written unless the
// whole recipe succeeds.
func (s *service) SaveRecipe(ctx context.Context, in SaveRecipeInput) (*domain.Recipe, error) {
	recipe, err := s.saveRecipe(ctx, in)
	if err != nil {
		metrics.RecordCostingError(err)
		return nil, err
	}

	metrics.RecipesSaved.Inc()
	metrics.RecipeItems.Add(float64(len(recipe.Items)))
	logger.FromContext(ctx).Info("Recipe saved",
		"recipe_id", recipe.ID,
		"recipe_name", recipe.Name,
		"items", len(recipe.Items),
		"total_cost", recipe.TotalCost)
	return recipe, nil
}

func (s *service) saveRecipe(ctx context.Context, in SaveRecipeInput) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: recipe name is required", domain.ErrMalformedPayload)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: a recipe needs at least one item", domain.ErrMalformedPayload)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin recipe transaction", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}
	defer repository.SafeRollback(ctx, tx)

	items := make([]domain.RecipeItem, 0, len(in.Items))
	costs := make([]costing.LineItemCost, 0, len(in.Items))
	for i, itemIn := range in.Items {
		item, cost, err := s.costItem(ctx, tx, itemIn)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
		costs = append(costs, cost)
	}

	totals, err := costing.ComputeRecipe(costs, in.Portions, in.SpiceFactorPercent)
	if err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		Name:               name,
		Portions:           in.Portions,
		SpiceFactorPercent: in.SpiceFactorPercent,
		TotalCost:          totals.TotalCost,
		CostPerPortion:     totals.CostPerPortion,
		TotalWithSpice:     totals.TotalWithSpice,
	}

	recipeID, err := tx.InsertRecipe(ctx, recipe)
	if err != nil {
		log.Error("Failed to insert recipe", "recipe_name", name, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}
	for i := range items {
		items[i].RecipeID = recipeID
	}
	if err := tx.InsertRecipeItems(ctx, recipeID, items); err != nil {
		log.Error("Failed to insert recipe items", "recipe_id", recipeID, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit recipe", "recipe_id", recipeID, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}

	recipe.ID = recipeID
	recipe.Items = items
	return recipe, nil
}

// costItem resolves the ingredient of one line and computes its costs.
// An existing ingredient's stored AP values replace the submitted ones.
func (s *service) costItem(ctx context.Context, tx repository.RecipeTx, in ItemInput) (domain.RecipeItem, costing.LineItemCost, error) {
	var none domain.RecipeItem

	name := strings.TrimSpace(in.Ingredient)
	if name == "" {
		return none, costing.LineItemCost{}, fmt.Errorf("%w: ingredient name is required", domain.ErrMalformedPayload)
	}
	epUnit, err := units.ParseOrDefault(in.EPUnit)
	if err != nil {
		return none, costing.LineItemCost{}, err
	}

	existing, err := tx.FindIngredientByName(ctx, name)
	if err != nil {
		return none, costing.LineItemCost{}, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}

	var (
		apUnit     units.Unit
		apQuantity float64
		apPrice    float64
	)
	if existing != nil {
		// submitted AP fields are ignored, even when malformed
		apUnit, err = units.Parse(existing.APUnit)
		if err != nil {
			return none, costing.LineItemCost{}, fmt.Errorf("stored ingredient %q: %w", existing.Name, err)
		}
		apQuantity = existing.APQuantity
		apPrice = existing.APPrice
	} else {
		apUnit, err = units.ParseOrDefault(in.APUnit)
		if err != nil {
			return none, costing.LineItemCost{}, err
		}
		apPrice, err = costing.PriceFromString(in.APPrice)
		if err != nil {
			return none, costing.LineItemCost{}, err
		}
		apQuantity = in.APQuantity
	}

	cost, err := costing.ComputeLineItem(costing.LineItemInput{
		EPQuantity:   in.EPQuantity,
		EPUnit:       epUnit,
		YieldPercent: in.YieldPercent,
		APQuantity:   apQuantity,
		APUnit:       apUnit,
		APPrice:      apPrice,
	})
	if err != nil {
		return none, costing.LineItemCost{}, fmt.Errorf("%s: %w", name, err)
	}

	var ingredientID int64
	if existing != nil {
		ingredientID = existing.ID
	} else {
		ingredientID, err = tx.InsertIngredient(ctx, name, apQuantity, string(apUnit), apPrice)
		if err != nil {
			return none, costing.LineItemCost{}, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
		}
		logger.FromContext(ctx).Debug("Created ingredient from recipe item", "name", name, "ingredient_id", ingredientID)
	}

	return domain.RecipeItem{
		IngredientID:   &ingredientID,
		IngredientName: name,
		EPQuantity:     in.EPQuantity,
		EPUnit:         string(epUnit),
		YieldPercent:   in.YieldPercent,
		APQuantity:     apQuantity,
		APUnit:         string(apUnit),
		APPrice:        apPrice,
		APCostPerUnit:  cost.APCostPerUnit,
		EPCostPerUnit:  cost.EPCostPerUnit,
		ExtendedCost:   cost.ExtendedCost,
	}, cost, nil
}

// GetRecipe loads a saved recipe with its items
func (s *service) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, id)
		}
		logger.FromContext(ctx).Error("Failed to get recipe", "recipe_id", id, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}
	return recipe, nil
}
