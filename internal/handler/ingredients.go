package handler

import (
	"net/http"

	"github.com/osse101/FoodCost_Go/internal/costing"
	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/ingredient"
)

// SaveIngredientRequest is the body of POST /api/ingredients
type SaveIngredientRequest struct {
	Name       string     `json:"name" validate:"required,notblank,max=200"`
	APQuantity *float64   `json:"ap_quantity" validate:"required"`
	APUnit     string     `json:"ap_unit"`
	APPrice    PriceValue `json:"ap_price" validate:"required,notblank"`
}

// IngredientResponse is one search result
type IngredientResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	APQuantity     float64 `json:"ap_quantity"`
	APUnit         string  `json:"ap_unit"`
	APPrice        float64 `json:"ap_price"`
	APPriceDisplay string  `json:"ap_price_display"`
}

func newIngredientResponse(ing domain.Ingredient, currency string) IngredientResponse {
	return IngredientResponse{
		ID:             ing.ID,
		Name:           ing.Name,
		APQuantity:     ing.APQuantity,
		APUnit:         ing.APUnit,
		APPrice:        ing.APPrice,
		APPriceDisplay: costing.FormatCurrency(ing.APPrice, currency),
	}
}

// HandleSaveIngredient creates an ingredient or updates the one with the same name
// @Summary Save ingredient
// @Description Upserts an ingredient by case-insensitive name. ap_price accepts a number or a string such as "$12.50"; ap_unit defaults to each.
// @Tags ingredients
// @Accept json
// @Produce json
// @Param request body SaveIngredientRequest true "Ingredient"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ingredients [post]
func HandleSaveIngredient(svc ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveIngredientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save ingredient"); err != nil {
			return
		}

		_, err := svc.SaveIngredient(r.Context(), ingredient.SaveIngredientInput{
			Name:       req.Name,
			APQuantity: *req.APQuantity,
			APUnit:     req.APUnit,
			APPrice:    string(req.APPrice),
		})
		if err != nil {
			respondServiceError(w, r, "Save ingredient", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgIngredientSaved})
	}
}

// HandleSearchIngredients lists ingredients whose name contains the query
// @Summary Search ingredients
// @Description Case-insensitive substring search ordered by name, at most 10 results. Queries shorter than 3 characters return an empty list.
// @Tags ingredients
// @Produce json
// @Param query query string false "Search text"
// @Success 200 {array} IngredientResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ingredients [get]
func HandleSearchIngredients(svc ingredient.Service, currency string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := GetOptionalQueryParam(r, QueryParamQuery, "")

		results, err := svc.SearchIngredients(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, "Search ingredients", err)
			return
		}

		resp := make([]IngredientResponse, len(results))
		for i, ing := range results {
			resp[i] = newIngredientResponse(ing, currency)
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
