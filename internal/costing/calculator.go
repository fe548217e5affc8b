// Package costing turns as-purchased ingredient data into edible-portion
// costs and aggregates them into recipe totals.
package costing

import (
	"fmt"
	"math"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/units"
)

// LineItemInput is one recipe line: how much is used (EP) and how the
// ingredient is bought (AP).
type LineItemInput struct {
	EPQuantity   float64
	EPUnit       units.Unit
	YieldPercent float64
	APQuantity   float64
	APUnit       units.Unit
	APPrice      float64
}

// LineItemCost holds the derived costs of one line.
type LineItemCost struct {
	ConvertedAPQuantity float64 `json:"converted_ap_quantity"`
	APCostPerUnit       float64 `json:"ap_cost_per_unit"`
	EPCostPerUnit       float64 `json:"ep_cost_per_unit"`
	ExtendedCost        float64 `json:"extended_cost"`
}

// RecipeCost holds the aggregated totals of a recipe.
type RecipeCost struct {
	TotalCost      float64 `json:"total_cost"`
	CostPerPortion float64 `json:"cost_per_portion"`
	TotalWithSpice float64 `json:"total_with_spice"`
}

// ComputeLineItem costs one line. The AP quantity is expressed in EP units,
// the price spread over it, then inflated by the yield loss.
func ComputeLineItem(in LineItemInput) (LineItemCost, error) {
	if !isFinite(in.APPrice) || in.APPrice < 0 {
		return LineItemCost{}, fmt.Errorf("%w: %v", domain.ErrInvalidPrice, in.APPrice)
	}
	if !isFinite(in.EPQuantity) || in.EPQuantity < 0 {
		return LineItemCost{}, fmt.Errorf("%w: ep quantity %v", domain.ErrInvalidQuantity, in.EPQuantity)
	}
	if !isFinite(in.YieldPercent) || in.YieldPercent <= 0 {
		return LineItemCost{}, fmt.Errorf("%w: %v", domain.ErrInvalidYield, in.YieldPercent)
	}

	converted, err := units.Convert(in.APQuantity, in.APUnit, in.EPUnit)
	if err != nil {
		return LineItemCost{}, err
	}
	if !isFinite(converted) || converted <= 0 {
		return LineItemCost{}, fmt.Errorf("%w: ap quantity %v", domain.ErrInvalidQuantity, in.APQuantity)
	}

	apCostPerUnit := in.APPrice / converted
	epCostPerUnit := apCostPerUnit / (in.YieldPercent / 100)
	if !isFinite(epCostPerUnit) {
		return LineItemCost{}, fmt.Errorf("%w: %v", domain.ErrInvalidYield, in.YieldPercent)
	}

	return LineItemCost{
		ConvertedAPQuantity: converted,
		APCostPerUnit:       apCostPerUnit,
		EPCostPerUnit:       epCostPerUnit,
		ExtendedCost:        epCostPerUnit * in.EPQuantity,
	}, nil
}

// ComputeRecipe sums the extended costs and spreads them over the portions,
// then applies the spice factor markup.
func ComputeRecipe(items []LineItemCost, portions, spiceFactorPercent float64) (RecipeCost, error) {
	if !isFinite(portions) || portions <= 0 {
		return RecipeCost{}, fmt.Errorf("%w: %v", domain.ErrInvalidPortions, portions)
	}
	if !isFinite(spiceFactorPercent) {
		return RecipeCost{}, fmt.Errorf("%w: spice factor %v", domain.ErrMalformedPayload, spiceFactorPercent)
	}

	var total float64
	for _, item := range items {
		total += item.ExtendedCost
	}

	perPortion := total / portions
	return RecipeCost{
		TotalCost:      total,
		CostPerPortion: perPortion,
		TotalWithSpice: perPortion * (1 + spiceFactorPercent/100),
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
