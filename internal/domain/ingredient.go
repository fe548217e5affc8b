package domain

import "time"

// Ingredient is a purchasable item with its most recent "as purchased" data.
// Names are unique regardless of case.
type Ingredient struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	APQuantity float64   `json:"ap_quantity"`
	APUnit     string    `json:"ap_unit"`
	APPrice    float64   `json:"ap_price"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}
