package ingredient

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/osse101/FoodCost_Go/internal/costing"
	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/logger"
	"github.com/osse101/FoodCost_Go/internal/metrics"
	"github.com/osse101/FoodCost_Go/internal/repository"
	"github.com/osse101/FoodCost_Go/internal/units"
)

// MinSearchQueryLength is the shortest trimmed query that reaches the store
const MinSearchQueryLength = 3

// SaveIngredientInput carries an ingredient as submitted by a caller.
// APPrice is raw text such as "12.50" or "$12.50"; an empty APUnit means each.
type SaveIngredientInput struct {
	Name       string
	APQuantity float64
	APUnit     string
	APPrice    string
}

// Service defines the interface for ingredient operations
type Service interface {
	SaveIngredient(ctx context.Context, in SaveIngredientInput) (*domain.Ingredient, error)
	SearchIngredients(ctx context.Context, query string) ([]domain.Ingredient, error)
}

type service struct {
	repo repository.Ingredient
}

// NewService creates a new ingredient service
func NewService(repo repository.Ingredient) Service {
	return &service{repo: repo}
}

// SaveIngredient validates the input and upserts it by case-insensitive name
func (s *service) SaveIngredient(ctx context.Context, in SaveIngredientInput) (*domain.Ingredient, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: ingredient name is required", domain.ErrMalformedPayload)
	}

	unit, err := units.ParseOrDefault(in.APUnit)
	if err != nil {
		return nil, err
	}

	if in.APQuantity <= 0 || math.IsNaN(in.APQuantity) || math.IsInf(in.APQuantity, 0) {
		return nil, fmt.Errorf("%w: ap_quantity must be greater than zero, got %v", domain.ErrInvalidQuantity, in.APQuantity)
	}

	price, err := costing.PriceFromString(in.APPrice)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.UpsertIngredient(ctx, name, in.APQuantity, string(unit), price)
	if err != nil {
		log.Error("Failed to upsert ingredient", "name", name, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}

	metrics.IngredientsSaved.Inc()
	log.Info("Ingredient saved", "ingredient_id", saved.ID, "name", saved.Name, "ap_unit", saved.APUnit)
	return saved, nil
}

// SearchIngredients returns up to repository.DefaultSearchLimit ingredients
// containing query. Queries shorter than MinSearchQueryLength return an empty
// list without touching the store.
func (s *service) SearchIngredients(ctx context.Context, query string) ([]domain.Ingredient, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchQueryLength {
		return []domain.Ingredient{}, nil
	}

	results, err := s.repo.SearchIngredients(ctx, query, repository.DefaultSearchLimit)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to search ingredients", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}

	metrics.IngredientSearches.Inc()
	if results == nil {
		results = []domain.Ingredient{}
	}
	return results, nil
}
