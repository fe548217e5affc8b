package ingredient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/logger"
	"github.com/osse101/FoodCost_Go/internal/validation"
)

// PriceListEntry is one ingredient in a price list file. APPrice holds
// either a JSON number or price text such as "$3.50".
type PriceListEntry struct {
	Name       string  `json:"name"`
	APQuantity float64 `json:"ap_quantity"`
	APUnit     string  `json:"ap_unit"`
	APPrice    any     `json:"ap_price"`
}

// PriceList is a batch of supplier prices
type PriceList struct {
	Ingredients []PriceListEntry `json:"ingredients"`
}

// ParsePriceList checks data against the price list schema and decodes it
func ParsePriceList(data []byte, v validation.SchemaValidator) (*PriceList, error) {
	if err := v.ValidateBytes(data, validation.SchemaPriceList); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedPayload, err)
	}

	var list PriceList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedPayload, err)
	}
	return &list, nil
}

// ImportPriceList saves every entry in order and returns how many were
// saved. It stops at the first entry that fails.
func ImportPriceList(ctx context.Context, svc Service, list *PriceList) (int, error) {
	log := logger.FromContext(ctx)

	saved := 0
	for i, entry := range list.Ingredients {
		price, err := priceText(entry.APPrice)
		if err != nil {
			return saved, fmt.Errorf("ingredient %d (%s): %w", i, entry.Name, err)
		}

		if _, err := svc.SaveIngredient(ctx, SaveIngredientInput{
			Name:       entry.Name,
			APQuantity: entry.APQuantity,
			APUnit:     entry.APUnit,
			APPrice:    price,
		}); err != nil {
			return saved, fmt.Errorf("ingredient %d (%s): %w", i, entry.Name, err)
		}
		saved++
	}

	log.Info("Price list imported", "count", saved)
	return saved, nil
}

func priceText(v any) (string, error) {
	switch p := v.(type) {
	case string:
		return p, nil
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: ap_price must be a number or a string", domain.ErrInvalidPrice)
	}
}
