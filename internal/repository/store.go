package repository

import "context"

// Store is a complete persistence backend
type Store interface {
	Ingredient
	Recipe
	Ping(ctx context.Context) error
	Close()
}
