package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/recipe"
	"github.com/osse101/FoodCost_Go/mocks"
)

const soupBody = `{
	"recipe_name": "French Onion Soup",
	"portions": 5,
	"spice_factor_percent": 10,
	"items": [
		{"ingredient": "Onion", "ep_quantity": 10, "ep_unit": "ounces", "yield_percent": 80,
		 "ap_quantity": 1, "ap_unit": "pounds", "ap_price": "$2.00"}
	]
}`

func TestHandleSaveRecipe(t *testing.T) {
	t.Run("Success returns currency strings", func(t *testing.T) {
		svc := mocks.NewMockRecipeService(t)
		svc.EXPECT().SaveRecipe(mock.Anything, mock.MatchedBy(func(in recipe.SaveRecipeInput) bool {
			return in.Name == "French Onion Soup" &&
				in.Portions == 5 &&
				len(in.Items) == 1 &&
				in.Items[0].APPrice == "$2.00" &&
				in.Items[0].YieldPercent == 80
		})).Return(&domain.Recipe{
			ID: 12, Name: "French Onion Soup", TotalCost: 1.5625, CostPerPortion: 0.3125, TotalWithSpice: 0.34375,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(soupBody))
		w := httptest.NewRecorder()

		HandleSaveRecipe(svc, "USD").ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"recipe_id":12,"total_cost":"$1.56","cost_per_portion":"$0.31","total_with_spice":"$0.34"}`, w.Body.String())
	})

	t.Run("Units are optional", func(t *testing.T) {
		svc := mocks.NewMockRecipeService(t)
		svc.EXPECT().SaveRecipe(mock.Anything, mock.MatchedBy(func(in recipe.SaveRecipeInput) bool {
			return in.Items[0].EPUnit == "" && in.Items[0].APUnit == "" && in.Items[0].APPrice == "3"
		})).Return(&domain.Recipe{ID: 1}, nil)

		body := `{"recipe_name":"Eggs","portions":1,"spice_factor_percent":0,
			"items":[{"ingredient":"Egg","ep_quantity":2,"yield_percent":100,"ap_quantity":12,"ap_price":3}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleSaveRecipe(svc, "USD").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing item field names the path", func(t *testing.T) {
		svc := mocks.NewMockRecipeService(t)

		body := `{"recipe_name":"Soup","portions":1,"spice_factor_percent":0,
			"items":[{"ingredient":"Onion","ep_quantity":1,"ap_quantity":1,"ap_price":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleSaveRecipe(svc, "USD").ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ErrCodeMalformedPayload, resp.Code)
		assert.Contains(t, resp.Fields, "items[0].yield_percent")
	})

	t.Run("No items", func(t *testing.T) {
		svc := mocks.NewMockRecipeService(t)

		body := `{"recipe_name":"Soup","portions":1,"spice_factor_percent":0,"items":[]}`
		req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleSaveRecipe(svc, "USD").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"items"`)
	})

	domainErrors := []struct {
		err  error
		code string
	}{
		{fmt.Errorf("item 1: Onion: %w", domain.ErrIncompatibleUnitGroup), ErrCodeIncompatibleUnitGroup},
		{fmt.Errorf("%w: 0", domain.ErrInvalidPortions), ErrCodeInvalidPortions},
		{fmt.Errorf("item 1: Onion: %w: 0", domain.ErrInvalidYield), ErrCodeInvalidYield},
	}
	for _, tc := range domainErrors {
		t.Run("Rejects "+tc.code, func(t *testing.T) {
			svc := mocks.NewMockRecipeService(t)
			svc.EXPECT().SaveRecipe(mock.Anything, mock.Anything).Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(soupBody))
			w := httptest.NewRecorder()

			HandleSaveRecipe(svc, "USD").ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Code)
			assert.Equal(t, tc.err.Error(), resp.Error)
		})
	}
}

func TestHandleGetRecipe(t *testing.T) {
	newRouter := func(svc recipe.Service) http.Handler {
		r := chi.NewRouter()
		r.Get("/api/recipes/{id}", HandleGetRecipe(svc, "USD"))
		return r
	}

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockRecipeService(t)
		ingredientID := int64(3)
		svc.EXPECT().GetRecipe(mock.Anything, int64(12)).Return(&domain.Recipe{
			ID: 12, Name: "Soup", Portions: 5, SpiceFactorPercent: 10,
			TotalCost: 1.5625, CostPerPortion: 0.3125, TotalWithSpice: 0.34375,
			Items: []domain.RecipeItem{{
				IngredientID: &ingredientID, IngredientName: "Onion", EPQuantity: 10, EPUnit: "ounces",
				YieldPercent: 80, APQuantity: 1, APUnit: "pounds", APPrice: 2, ExtendedCost: 1.5625,
			}},
		}, nil)

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/12", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp RecipeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Soup", resp.RecipeName)
		assert.Equal(t, "$0.34", resp.TotalWithSpiceDisplay)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "$2.00", resp.Items[0].APPriceDisplay)
		assert.Equal(t, "$1.56", resp.Items[0].ExtendedDisplay)
	})

	t.Run("Bad id", func(t *testing.T) {
		svc := mocks.NewMockRecipeService(t)

		for _, id := range []string{"abc", "0", "-4"} {
			w := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/"+id, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code, "id %s", id)
		}
	})

	t.Run("Not found", func(t *testing.T) {
		svc := mocks.NewMockRecipeService(t)
		svc.EXPECT().GetRecipe(mock.Anything, int64(99)).Return(nil, fmt.Errorf("%w: 99", domain.ErrRecipeNotFound))

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgRecipeNotFound)
	})
}
