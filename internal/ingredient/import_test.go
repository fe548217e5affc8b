package ingredient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/validation"
)

func TestParsePriceList(t *testing.T) {
	v := validation.NewSchemaValidator()

	t.Run("Decodes number and string prices", func(t *testing.T) {
		list, err := ParsePriceList([]byte(`{"ingredients":[
			{"name":"Onion","ap_quantity":50,"ap_unit":"pounds","ap_price":25},
			{"name":"Eggs","ap_quantity":12,"ap_price":"$3.50"}]}`), v)

		require.NoError(t, err)
		require.Len(t, list.Ingredients, 2)
		assert.Equal(t, "Onion", list.Ingredients[0].Name)
		assert.Equal(t, 25.0, list.Ingredients[0].APPrice)
		assert.Equal(t, "", list.Ingredients[1].APUnit)
		assert.Equal(t, "$3.50", list.Ingredients[1].APPrice)
	})

	t.Run("Schema failure is a malformed payload", func(t *testing.T) {
		_, err := ParsePriceList([]byte(`{"ingredients":[{"name":"Onion"}]}`), v)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedPayload)
	})
}

func TestImportPriceList(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves every entry", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpsertIngredient", ctx, "Onion", 50.0, "pounds", 25.0).
			Return(&domain.Ingredient{ID: 1, Name: "Onion"}, nil)
		repo.On("UpsertIngredient", ctx, "Eggs", 12.0, "each", 3.5).
			Return(&domain.Ingredient{ID: 2, Name: "Eggs"}, nil)

		n, err := ImportPriceList(ctx, NewService(repo), &PriceList{Ingredients: []PriceListEntry{
			{Name: "Onion", APQuantity: 50, APUnit: "pounds", APPrice: 25.0},
			{Name: "Eggs", APQuantity: 12, APPrice: "$3.50"},
		}})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		repo.AssertExpectations(t)
	})

	t.Run("Stops at the first failure", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpsertIngredient", ctx, "Onion", 50.0, "pounds", 25.0).
			Return(&domain.Ingredient{ID: 1, Name: "Onion"}, nil)

		n, err := ImportPriceList(ctx, NewService(repo), &PriceList{Ingredients: []PriceListEntry{
			{Name: "Onion", APQuantity: 50, APUnit: "pounds", APPrice: 25.0},
			{Name: "Saffron", APQuantity: 1, APUnit: "furlongs", APPrice: "9"},
			{Name: "Eggs", APQuantity: 12, APPrice: "$3.50"},
		}})

		require.Error(t, err)
		assert.Equal(t, 1, n)
		assert.ErrorIs(t, err, domain.ErrUnsupportedUnit)
		assert.Contains(t, err.Error(), "ingredient 1 (Saffron)")
		repo.AssertNumberOfCalls(t, "UpsertIngredient", 1)
	})

	t.Run("Store error is wrapped", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpsertIngredient", ctx, "Onion", 1.0, "each", 2.0).Return(nil, errors.New("boom"))

		n, err := ImportPriceList(ctx, NewService(repo), &PriceList{Ingredients: []PriceListEntry{
			{Name: "Onion", APQuantity: 1, APPrice: 2.0},
		}})

		assert.Equal(t, 0, n)
		assert.ErrorIs(t, err, domain.ErrDatabaseError)
		repo.AssertNotCalled(t, "SearchIngredients", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unsupported price type", func(t *testing.T) {
		_, err := ImportPriceList(ctx, NewService(new(MockRepository)), &PriceList{Ingredients: []PriceListEntry{
			{Name: "Onion", APQuantity: 1, APPrice: true},
		}})

		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})
}
