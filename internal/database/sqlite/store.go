package sqlite

import (
	"context"
	"database/sql"

	"github.com/osse101/FoodCost_Go/internal/repository"
)

// Store bundles the SQLite repositories behind repository.Store
type Store struct {
	*IngredientRepository
	*RecipeRepository
	db *sql.DB
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a Store on an open, migrated database. Close closes db.
func NewStore(db *sql.DB) *Store {
	return &Store{
		IngredientRepository: NewIngredientRepository(db),
		RecipeRepository:     NewRecipeRepository(db),
		db:                   db,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() {
	_ = s.db.Close()
}
