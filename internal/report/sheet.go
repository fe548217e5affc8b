// Package report turns saved recipes into printable cost sheets.
package report

import (
	"time"

	"github.com/osse101/FoodCost_Go/internal/costing"
	"github.com/osse101/FoodCost_Go/internal/domain"
)

// CostSheet is a saved recipe laid out for printing or export.
// Money fields are already formatted in the sheet's currency.
type CostSheet struct {
	RecipeID           int64   `msgpack:"recipe_id,omitempty"`
	RecipeName         string  `msgpack:"recipe_name,omitempty"`
	Currency           string  `msgpack:"currency,omitempty"`
	Portions           float64 `msgpack:"portions,omitempty"`
	SpiceFactorPercent float64 `msgpack:"spice_factor_percent,omitempty"`
	TotalCost          string  `msgpack:"total_cost,omitempty"`
	CostPerPortion     string  `msgpack:"cost_per_portion,omitempty"`
	TotalWithSpice     string  `msgpack:"total_with_spice,omitempty"`
	CreatedAtMs        int64   `msgpack:"created_at,omitempty"`
	Lines              []Line  `msgpack:"lines,omitempty"`
}

// Line is one recipe item on a cost sheet.
type Line struct {
	Ingredient    string  `msgpack:"ingredient,omitempty"`
	EPQuantity    float64 `msgpack:"ep_quantity,omitempty"`
	EPUnit        string  `msgpack:"ep_unit,omitempty"`
	YieldPercent  float64 `msgpack:"yield_percent,omitempty"`
	APQuantity    float64 `msgpack:"ap_quantity,omitempty"`
	APUnit        string  `msgpack:"ap_unit,omitempty"`
	APPrice       string  `msgpack:"ap_price,omitempty"`
	EPCostPerUnit string  `msgpack:"ep_cost_per_unit,omitempty"`
	ExtendedCost  string  `msgpack:"extended_cost,omitempty"`
}

// NewCostSheet builds a sheet from rec, formatting money in currency.
func NewCostSheet(rec *domain.Recipe, currency string) *CostSheet {
	sheet := &CostSheet{
		RecipeID:           rec.ID,
		RecipeName:         rec.Name,
		Currency:           currency,
		Portions:           rec.Portions,
		SpiceFactorPercent: rec.SpiceFactorPercent,
		TotalCost:          costing.FormatCurrency(rec.TotalCost, currency),
		CostPerPortion:     costing.FormatCurrency(rec.CostPerPortion, currency),
		TotalWithSpice:     costing.FormatCurrency(rec.TotalWithSpice, currency),
		Lines:              make([]Line, len(rec.Items)),
	}
	if !rec.CreatedAt.IsZero() {
		sheet.CreatedAtMs = rec.CreatedAt.UnixMilli()
	}

	for i, it := range rec.Items {
		sheet.Lines[i] = Line{
			Ingredient:    it.IngredientName,
			EPQuantity:    it.EPQuantity,
			EPUnit:        it.EPUnit,
			YieldPercent:  it.YieldPercent,
			APQuantity:    it.APQuantity,
			APUnit:        it.APUnit,
			APPrice:       costing.FormatCurrency(it.APPrice, currency),
			EPCostPerUnit: costing.FormatCurrency(it.EPCostPerUnit, currency),
			ExtendedCost:  costing.FormatCurrency(it.ExtendedCost, currency),
		}
	}
	return sheet
}

// CreatedAt returns the save time, or the zero time when unknown.
func (s *CostSheet) CreatedAt() time.Time {
	if s.CreatedAtMs == 0 {
		return time.Time{}
	}
	return time.UnixMilli(s.CreatedAtMs).UTC()
}
