package domain

import "time"

// Recipe is a saved costing. Recipes are never updated once stored.
type Recipe struct {
	ID                 int64        `json:"recipe_id"`
	Name               string       `json:"recipe_name"`
	Portions           float64      `json:"portions"`
	SpiceFactorPercent float64      `json:"spice_factor_percent"`
	TotalCost          float64      `json:"total_cost"`
	CostPerPortion     float64      `json:"cost_per_portion"`
	TotalWithSpice     float64      `json:"total_with_spice"`
	CreatedAt          time.Time    `json:"created_at,omitempty"`
	Items              []RecipeItem `json:"items,omitempty"`
}

// RecipeItem is one line of a recipe. The AP fields are a snapshot of the
// ingredient at save time; later ingredient edits do not touch them.
type RecipeItem struct {
	ID             int64   `json:"id"`
	RecipeID       int64   `json:"recipe_id"`
	IngredientID   *int64  `json:"ingredient_id"` // nil when the ingredient row is gone
	IngredientName string  `json:"ingredient_name"`
	EPQuantity     float64 `json:"ep_quantity"`
	EPUnit         string  `json:"ep_unit"`
	YieldPercent   float64 `json:"yield_percent"`
	APQuantity     float64 `json:"ap_quantity"`
	APUnit         string  `json:"ap_unit"`
	APPrice        float64 `json:"ap_price"`
	APCostPerUnit  float64 `json:"ap_cost_per_unit"`
	EPCostPerUnit  float64 `json:"ep_cost_per_unit"`
	ExtendedCost   float64 `json:"extended_cost"`
}
