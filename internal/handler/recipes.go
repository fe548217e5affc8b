package handler

import (
	"net/http"
	"time"

	"github.com/osse101/FoodCost_Go/internal/costing"
	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/recipe"
)

// SaveRecipeRequest is the body of POST /api/recipes
type SaveRecipeRequest struct {
	RecipeName         string              `json:"recipe_name" validate:"required,notblank,max=200"`
	Portions           *float64            `json:"portions" validate:"required"`
	SpiceFactorPercent *float64            `json:"spice_factor_percent" validate:"required"`
	Items              []RecipeItemRequest `json:"items" validate:"required,min=1,dive"`
}

// RecipeItemRequest is one line of SaveRecipeRequest
type RecipeItemRequest struct {
	Ingredient   string     `json:"ingredient" validate:"required,notblank,max=200"`
	EPQuantity   *float64   `json:"ep_quantity" validate:"required"`
	EPUnit       string     `json:"ep_unit"`
	YieldPercent *float64   `json:"yield_percent" validate:"required"`
	APQuantity   *float64   `json:"ap_quantity" validate:"required"`
	APUnit       string     `json:"ap_unit"`
	APPrice      PriceValue `json:"ap_price" validate:"required,notblank"`
}

// SaveRecipeResponse carries the saved totals as display strings
type SaveRecipeResponse struct {
	RecipeID       int64  `json:"recipe_id"`
	TotalCost      string `json:"total_cost"`
	CostPerPortion string `json:"cost_per_portion"`
	TotalWithSpice string `json:"total_with_spice"`
}

// RecipeItemResponse is one saved line with display strings
type RecipeItemResponse struct {
	IngredientID    *int64  `json:"ingredient_id"`
	IngredientName  string  `json:"ingredient_name"`
	EPQuantity      float64 `json:"ep_quantity"`
	EPUnit          string  `json:"ep_unit"`
	YieldPercent    float64 `json:"yield_percent"`
	APQuantity      float64 `json:"ap_quantity"`
	APUnit          string  `json:"ap_unit"`
	APPrice         float64 `json:"ap_price"`
	APCostPerUnit   float64 `json:"ap_cost_per_unit"`
	EPCostPerUnit   float64 `json:"ep_cost_per_unit"`
	ExtendedCost    float64 `json:"extended_cost"`
	APPriceDisplay  string  `json:"ap_price_display"`
	ExtendedDisplay string  `json:"extended_cost_display"`
}

// RecipeResponse is a saved recipe with raw and display totals
type RecipeResponse struct {
	RecipeID              int64                `json:"recipe_id"`
	RecipeName            string               `json:"recipe_name"`
	Portions              float64              `json:"portions"`
	SpiceFactorPercent    float64              `json:"spice_factor_percent"`
	TotalCost             float64              `json:"total_cost"`
	CostPerPortion        float64              `json:"cost_per_portion"`
	TotalWithSpice        float64              `json:"total_with_spice"`
	TotalCostDisplay      string               `json:"total_cost_display"`
	CostPerPortionDisplay string               `json:"cost_per_portion_display"`
	TotalWithSpiceDisplay string               `json:"total_with_spice_display"`
	CreatedAt             time.Time            `json:"created_at"`
	Items                 []RecipeItemResponse `json:"items"`
}

func newRecipeResponse(rec *domain.Recipe, currency string) RecipeResponse {
	items := make([]RecipeItemResponse, len(rec.Items))
	for i, it := range rec.Items {
		items[i] = RecipeItemResponse{
			IngredientID:    it.IngredientID,
			IngredientName:  it.IngredientName,
			EPQuantity:      it.EPQuantity,
			EPUnit:          it.EPUnit,
			YieldPercent:    it.YieldPercent,
			APQuantity:      it.APQuantity,
			APUnit:          it.APUnit,
			APPrice:         it.APPrice,
			APCostPerUnit:   it.APCostPerUnit,
			EPCostPerUnit:   it.EPCostPerUnit,
			ExtendedCost:    it.ExtendedCost,
			APPriceDisplay:  costing.FormatCurrency(it.APPrice, currency),
			ExtendedDisplay: costing.FormatCurrency(it.ExtendedCost, currency),
		}
	}
	return RecipeResponse{
		RecipeID:              rec.ID,
		RecipeName:            rec.Name,
		Portions:              rec.Portions,
		SpiceFactorPercent:    rec.SpiceFactorPercent,
		TotalCost:             rec.TotalCost,
		CostPerPortion:        rec.CostPerPortion,
		TotalWithSpice:        rec.TotalWithSpice,
		TotalCostDisplay:      costing.FormatCurrency(rec.TotalCost, currency),
		CostPerPortionDisplay: costing.FormatCurrency(rec.CostPerPortion, currency),
		TotalWithSpiceDisplay: costing.FormatCurrency(rec.TotalWithSpice, currency),
		CreatedAt:             rec.CreatedAt,
		Items:                 items,
	}
}

// HandleSaveRecipe costs and saves a recipe
// @Summary Save recipe
// @Description Costs every item, creating unknown ingredients from the submitted AP fields. Existing ingredients use their stored AP values. Nothing is saved if any item fails.
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body SaveRecipeRequest true "Recipe"
// @Success 200 {object} SaveRecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/recipes [post]
func HandleSaveRecipe(svc recipe.Service, currency string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save recipe"); err != nil {
			return
		}

		in := recipe.SaveRecipeInput{
			Name:               req.RecipeName,
			Portions:           *req.Portions,
			SpiceFactorPercent: *req.SpiceFactorPercent,
			Items:              make([]recipe.ItemInput, len(req.Items)),
		}
		for i, item := range req.Items {
			in.Items[i] = recipe.ItemInput{
				Ingredient:   item.Ingredient,
				EPQuantity:   *item.EPQuantity,
				EPUnit:       item.EPUnit,
				YieldPercent: *item.YieldPercent,
				APQuantity:   *item.APQuantity,
				APUnit:       item.APUnit,
				APPrice:      string(item.APPrice),
			}
		}

		saved, err := svc.SaveRecipe(r.Context(), in)
		if err != nil {
			respondServiceError(w, r, "Save recipe", err)
			return
		}

		respondJSON(w, http.StatusOK, SaveRecipeResponse{
			RecipeID:       saved.ID,
			TotalCost:      costing.FormatCurrency(saved.TotalCost, currency),
			CostPerPortion: costing.FormatCurrency(saved.CostPerPortion, currency),
			TotalWithSpice: costing.FormatCurrency(saved.TotalWithSpice, currency),
		})
	}
}

// HandleGetRecipe returns a saved recipe with its items
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/recipes/{id} [get]
func HandleGetRecipe(svc recipe.Service, currency string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w, URLParamID)
		if !ok {
			return
		}

		rec, err := svc.GetRecipe(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get recipe", err)
			return
		}

		respondJSON(w, http.StatusOK, newRecipeResponse(rec, currency))
	}
}
