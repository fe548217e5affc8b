package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FoodCost_Go/internal/repository"
)

// Store bundles the PostgreSQL repositories behind repository.Store
type Store struct {
	*IngredientRepository
	*RecipeRepository
	pool *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a Store on an open pool. Close closes the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		IngredientRepository: NewIngredientRepository(pool),
		RecipeRepository:     NewRecipeRepository(pool),
		pool:                 pool,
	}
}

// Ping checks the pool can reach the database
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases every pooled connection
func (s *Store) Close() {
	s.pool.Close()
}
