package ingredient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/repository"
)

// MockRepository implements repository.Ingredient for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockRepository) UpsertIngredient(ctx context.Context, name string, apQuantity float64, apUnit string, apPrice float64) (*domain.Ingredient, error) {
	args := m.Called(ctx, name, apQuantity, apUnit, apPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockRepository) SearchIngredients(ctx context.Context, query string, limit int) ([]domain.Ingredient, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func TestSaveIngredient(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with currency symbol and default unit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		stored := &domain.Ingredient{ID: 7, Name: "Eggs", APQuantity: 12, APUnit: "each", APPrice: 3.5}
		repo.On("UpsertIngredient", ctx, "Eggs", 12.0, "each", 3.5).Return(stored, nil)

		got, err := svc.SaveIngredient(ctx, SaveIngredientInput{Name: "  Eggs ", APQuantity: 12, APPrice: "$3.50"})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
		repo.AssertExpectations(t)
	})

	t.Run("Unit is normalized", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpsertIngredient", ctx, "Milk", 1.0, "gallons", 4.25).
			Return(&domain.Ingredient{ID: 1, Name: "Milk"}, nil)

		_, err := svc.SaveIngredient(ctx, SaveIngredientInput{Name: "Milk", APQuantity: 1, APUnit: " Gallons ", APPrice: "4.25"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	validationCases := []struct {
		name    string
		in      SaveIngredientInput
		wantErr error
	}{
		{"empty name", SaveIngredientInput{Name: "   ", APQuantity: 1, APPrice: "1"}, domain.ErrMalformedPayload},
		{"unknown unit", SaveIngredientInput{Name: "Rice", APQuantity: 1, APUnit: "cups", APPrice: "1"}, domain.ErrUnsupportedUnit},
		{"zero quantity", SaveIngredientInput{Name: "Rice", APQuantity: 0, APPrice: "1"}, domain.ErrInvalidQuantity},
		{"negative quantity", SaveIngredientInput{Name: "Rice", APQuantity: -2, APPrice: "1"}, domain.ErrInvalidQuantity},
		{"bad price", SaveIngredientInput{Name: "Rice", APQuantity: 1, APPrice: "abc"}, domain.ErrInvalidPrice},
		{"empty price", SaveIngredientInput{Name: "Rice", APQuantity: 1, APPrice: ""}, domain.ErrInvalidPrice},
	}
	for _, tc := range validationCases {
		t.Run("Rejects "+tc.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo)

			_, err := svc.SaveIngredient(ctx, tc.in)

			assert.ErrorIs(t, err, tc.wantErr)
			repo.AssertNotCalled(t, "UpsertIngredient", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Store failure is a database error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		storeErr := errors.New("disk full")
		repo.On("UpsertIngredient", ctx, "Rice", 1.0, "pounds", 2.0).Return(nil, storeErr)

		_, err := svc.SaveIngredient(ctx, SaveIngredientInput{Name: "Rice", APQuantity: 1, APUnit: "pounds", APPrice: "2"})

		assert.ErrorIs(t, err, domain.ErrDatabaseError)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestSearchIngredients(t *testing.T) {
	ctx := context.Background()

	t.Run("Short query skips the store", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		for _, q := range []string{"", "on", "  on  ", "éé"} {
			got, err := svc.SearchIngredients(ctx, q)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		}
		repo.AssertNotCalled(t, "SearchIngredients", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Query is trimmed and limited", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		want := []domain.Ingredient{{ID: 1, Name: "Onion"}}
		repo.On("SearchIngredients", ctx, "oni", repository.DefaultSearchLimit).Return(want, nil)

		got, err := svc.SearchIngredients(ctx, " oni ")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		repo.AssertExpectations(t)
	})

	t.Run("No matches is an empty list", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("SearchIngredients", ctx, "zzz", repository.DefaultSearchLimit).Return(nil, nil)

		got, err := svc.SearchIngredients(ctx, "zzz")

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("SearchIngredients", ctx, "oni", repository.DefaultSearchLimit).Return(nil, errors.New("timeout"))

		_, err := svc.SearchIngredients(ctx, "oni")

		assert.ErrorIs(t, err, domain.ErrDatabaseError)
	})
}
