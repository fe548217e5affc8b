package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FoodCost_Go/internal/domain"
)

const epsilon = 1e-9

func onionRecipe(items ...ItemInput) SaveRecipeInput {
	return SaveRecipeInput{
		Name:               "French Onion Soup",
		Portions:           5,
		SpiceFactorPercent: 10,
		Items:              items,
	}
}

func TestSaveRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("Best Case: new ingredient is created and costed", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)

		recipe, err := svc.SaveRecipe(ctx, onionRecipe(ItemInput{
			Ingredient: "Onion", EPQuantity: 10, EPUnit: "ounces", YieldPercent: 80,
			APQuantity: 1, APUnit: "pounds", APPrice: "$2.00",
		}))

		require.NoError(t, err)
		assert.NotZero(t, recipe.ID)
		assert.InDelta(t, 1.5625, recipe.TotalCost, epsilon)
		assert.InDelta(t, 0.3125, recipe.CostPerPortion, epsilon)
		assert.InDelta(t, 0.34375, recipe.TotalWithSpice, epsilon)

		require.Len(t, recipe.Items, 1)
		item := recipe.Items[0]
		assert.Equal(t, recipe.ID, item.RecipeID)
		assert.InDelta(t, 0.125, item.APCostPerUnit, epsilon)
		assert.InDelta(t, 0.15625, item.EPCostPerUnit, epsilon)
		assert.InDelta(t, 1.5625, item.ExtendedCost, epsilon)
		require.NotNil(t, item.IngredientID)

		assert.Equal(t, 1, repo.ingredientCount())
		assert.Equal(t, 1, repo.recipeCount())
		assert.Equal(t, 1, repo.commits)
	})

	t.Run("Existing ingredient overrides submitted AP fields", func(t *testing.T) {
		repo := NewMockRepository()
		stored := repo.addIngredient("Onion", 1, "pounds", 2)
		svc := NewService(repo)

		recipe, err := svc.SaveRecipe(ctx, onionRecipe(ItemInput{
			Ingredient: "ONION ", EPQuantity: 10, EPUnit: "ounces", YieldPercent: 80,
			APQuantity: 50, APUnit: "ounces", APPrice: "99",
		}))

		require.NoError(t, err)
		item := recipe.Items[0]
		assert.Equal(t, stored.ID, *item.IngredientID)
		assert.Equal(t, 1.0, item.APQuantity)
		assert.Equal(t, "pounds", item.APUnit)
		assert.Equal(t, 2.0, item.APPrice)
		assert.InDelta(t, 1.5625, recipe.TotalCost, epsilon)
		assert.Equal(t, 1, repo.ingredientCount(), "no duplicate ingredient")
	})

	t.Run("Existing ingredient ignores malformed submitted AP fields", func(t *testing.T) {
		cases := []struct {
			name string
			item ItemInput
		}{
			{"unknown unit", ItemInput{APQuantity: 1, APUnit: "cups", APPrice: "2"}},
			{"unparseable price", ItemInput{APQuantity: 1, APUnit: "pounds", APPrice: "abc"}},
			{"empty price", ItemInput{APUnit: "pounds"}},
			{"zero quantity", ItemInput{APQuantity: 0, APPrice: "-5"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := NewMockRepository()
				stored := repo.addIngredient("Onion", 1, "pounds", 2)
				svc := NewService(repo)

				in := tc.item
				in.Ingredient, in.EPQuantity, in.EPUnit, in.YieldPercent = "onion", 10, "ounces", 80
				recipe, err := svc.SaveRecipe(ctx, onionRecipe(in))

				require.NoError(t, err)
				item := recipe.Items[0]
				assert.Equal(t, stored.ID, *item.IngredientID)
				assert.Equal(t, "pounds", item.APUnit)
				assert.Equal(t, 1.0, item.APQuantity)
				assert.Equal(t, 2.0, item.APPrice)
				assert.InDelta(t, 1.5625, item.ExtendedCost, epsilon)
			})
		}
	})

	t.Run("Units default to each", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)

		recipe, err := svc.SaveRecipe(ctx, onionRecipe(ItemInput{
			Ingredient: "Egg", EPQuantity: 3, YieldPercent: 100, APQuantity: 12, APPrice: "3.00",
		}))

		require.NoError(t, err)
		assert.Equal(t, "each", recipe.Items[0].EPUnit)
		assert.Equal(t, "each", recipe.Items[0].APUnit)
		assert.InDelta(t, 0.75, recipe.TotalCost, epsilon)
	})

	t.Run("Same new ingredient twice is created once", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)

		item := ItemInput{Ingredient: "Salt", EPQuantity: 1, EPUnit: "ounces", YieldPercent: 100,
			APQuantity: 1, APUnit: "pounds", APPrice: "1.60"}
		recipe, err := svc.SaveRecipe(ctx, onionRecipe(item, item))

		require.NoError(t, err)
		assert.Equal(t, 1, repo.ingredientCount())
		assert.Equal(t, *recipe.Items[0].IngredientID, *recipe.Items[1].IngredientID)
		assert.InDelta(t, 0.2, recipe.TotalCost, epsilon)
	})

	failures := []struct {
		name    string
		in      SaveRecipeInput
		wantErr error
	}{
		{"empty name", SaveRecipeInput{Name: " ", Portions: 1, Items: []ItemInput{{Ingredient: "x"}}}, domain.ErrMalformedPayload},
		{"no items", onionRecipe(), domain.ErrMalformedPayload},
		{"zero portions", SaveRecipeInput{Name: "Soup", Portions: 0, Items: []ItemInput{
			{Ingredient: "Onion", EPQuantity: 1, YieldPercent: 100, APQuantity: 1, APPrice: "1"}}}, domain.ErrInvalidPortions},
		{"zero yield", onionRecipe(ItemInput{Ingredient: "Onion", EPQuantity: 1, YieldPercent: 0, APQuantity: 1, APPrice: "1"}), domain.ErrInvalidYield},
		{"weight to volume", onionRecipe(ItemInput{Ingredient: "Onion", EPQuantity: 1, EPUnit: "liters", YieldPercent: 100,
			APQuantity: 1, APUnit: "pounds", APPrice: "1"}), domain.ErrIncompatibleUnitGroup},
		{"unknown unit", onionRecipe(ItemInput{Ingredient: "Onion", EPQuantity: 1, EPUnit: "cups", YieldPercent: 100,
			APQuantity: 1, APPrice: "1"}), domain.ErrUnsupportedUnit},
		{"bad price", onionRecipe(ItemInput{Ingredient: "Onion", EPQuantity: 1, YieldPercent: 100, APQuantity: 1, APPrice: "abc"}), domain.ErrInvalidPrice},
		{"blank ingredient", onionRecipe(ItemInput{Ingredient: "", EPQuantity: 1, YieldPercent: 100, APQuantity: 1, APPrice: "1"}), domain.ErrMalformedPayload},
	}
	for _, tc := range failures {
		t.Run("Rejects "+tc.name, func(t *testing.T) {
			repo := NewMockRepository()
			svc := NewService(repo)

			_, err := svc.SaveRecipe(ctx, tc.in)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, repo.recipeCount())
			assert.Zero(t, repo.ingredientCount())
		})
	}

	t.Run("Failure on a later item persists nothing", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)

		_, err := svc.SaveRecipe(ctx, onionRecipe(
			ItemInput{Ingredient: "Onion", EPQuantity: 1, EPUnit: "ounces", YieldPercent: 100, APQuantity: 1, APUnit: "pounds", APPrice: "1"},
			ItemInput{Ingredient: "Stock", EPQuantity: 1, EPUnit: "liters", YieldPercent: 100, APQuantity: 1, APUnit: "pounds", APPrice: "1"},
		))

		assert.ErrorIs(t, err, domain.ErrIncompatibleUnitGroup)
		assert.Contains(t, err.Error(), "item 2")
		assert.Zero(t, repo.ingredientCount(), "ingredient created for item 1 is rolled back")
		assert.Zero(t, repo.recipeCount())
		assert.Equal(t, 1, repo.rollbacks)
	})

	storeFailures := []struct {
		name   string
		inject func(*MockRepository)
	}{
		{"begin", func(m *MockRepository) { m.shouldFailBeginTx = true }},
		{"find", func(m *MockRepository) { m.shouldFailFind = true }},
		{"insert ingredient", func(m *MockRepository) { m.shouldFailInsertIngredient = true }},
		{"insert recipe", func(m *MockRepository) { m.shouldFailInsertRecipe = true }},
		{"insert items", func(m *MockRepository) { m.shouldFailInsertItems = true }},
		{"commit", func(m *MockRepository) { m.shouldFailCommit = true }},
	}
	for _, tc := range storeFailures {
		t.Run("Store failure on "+tc.name, func(t *testing.T) {
			repo := NewMockRepository()
			tc.inject(repo)
			svc := NewService(repo)

			_, err := svc.SaveRecipe(ctx, onionRecipe(ItemInput{
				Ingredient: "Onion", EPQuantity: 1, YieldPercent: 100, APQuantity: 1, APPrice: "1",
			}))

			assert.ErrorIs(t, err, domain.ErrDatabaseError)
			assert.ErrorIs(t, err, errInjected)
			assert.Zero(t, repo.recipeCount())
		})
	}
}

func TestGetRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)

		saved, err := svc.SaveRecipe(ctx, onionRecipe(ItemInput{
			Ingredient: "Onion", EPQuantity: 10, EPUnit: "ounces", YieldPercent: 80,
			APQuantity: 1, APUnit: "pounds", APPrice: "2",
		}))
		require.NoError(t, err)

		got, err := svc.GetRecipe(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved.Name, got.Name)
		assert.Len(t, got.Items, 1)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := NewService(NewMockRepository())

		_, err := svc.GetRecipe(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := NewMockRepository()
		repo.shouldFailGetRecipe = true
		svc := NewService(repo)

		_, err := svc.GetRecipe(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrDatabaseError)
	})
}
