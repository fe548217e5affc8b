package recipe

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/osse101/FoodCost_Go/internal/domain"
	"github.com/osse101/FoodCost_Go/internal/repository"
)

var errInjected = errors.New("injected failure")

// MockRepository is an in-memory repository.Recipe. Writes made through a
// transaction only become visible on Commit.
type MockRepository struct {
	sync.Mutex
	ingredients map[string]*domain.Ingredient // keyed by lower-case name
	recipes     map[int64]*domain.Recipe
	nextID      int64

	// Error injection for testing
	shouldFailBeginTx          bool
	shouldFailFind             bool
	shouldFailInsertIngredient bool
	shouldFailInsertRecipe     bool
	shouldFailInsertItems      bool
	shouldFailCommit           bool
	shouldFailGetRecipe        bool

	rollbacks int
	commits   int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		ingredients: make(map[string]*domain.Ingredient),
		recipes:     make(map[int64]*domain.Recipe),
		nextID:      1,
	}
}

func (m *MockRepository) addIngredient(name string, apQuantity float64, apUnit string, apPrice float64) *domain.Ingredient {
	m.Lock()
	defer m.Unlock()
	ing := &domain.Ingredient{ID: m.nextID, Name: name, APQuantity: apQuantity, APUnit: apUnit, APPrice: apPrice}
	m.nextID++
	m.ingredients[strings.ToLower(name)] = ing
	return ing
}

func (m *MockRepository) ingredientCount() int {
	m.Lock()
	defer m.Unlock()
	return len(m.ingredients)
}

func (m *MockRepository) recipeCount() int {
	m.Lock()
	defer m.Unlock()
	return len(m.recipes)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.RecipeTx, error) {
	if m.shouldFailBeginTx {
		return nil, errInjected
	}
	return &mockTx{repo: m, ingredients: make(map[string]*domain.Ingredient)}, nil
}

func (m *MockRepository) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	m.Lock()
	defer m.Unlock()
	if m.shouldFailGetRecipe {
		return nil, errInjected
	}
	r, ok := m.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return r, nil
}

// mockTx stages writes until Commit
type mockTx struct {
	repo        *MockRepository
	ingredients map[string]*domain.Ingredient
	recipe      *domain.Recipe
	done        bool
}

func (t *mockTx) Commit(ctx context.Context) error {
	if t.done {
		return repository.ErrTxDone
	}
	if t.repo.shouldFailCommit {
		return errInjected
	}
	t.done = true

	t.repo.Lock()
	defer t.repo.Unlock()
	for k, v := range t.ingredients {
		t.repo.ingredients[k] = v
	}
	if t.recipe != nil {
		t.repo.recipes[t.recipe.ID] = t.recipe
	}
	t.repo.commits++
	return nil
}

func (t *mockTx) Rollback(ctx context.Context) error {
	if t.done {
		return repository.ErrTxDone
	}
	t.done = true
	t.repo.Lock()
	t.repo.rollbacks++
	t.repo.Unlock()
	return nil
}

func (t *mockTx) FindIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	if t.repo.shouldFailFind {
		return nil, errInjected
	}
	key := strings.ToLower(name)
	if ing, ok := t.ingredients[key]; ok {
		return ing, nil
	}
	t.repo.Lock()
	defer t.repo.Unlock()
	return t.repo.ingredients[key], nil
}

func (t *mockTx) InsertIngredient(ctx context.Context, name string, apQuantity float64, apUnit string, apPrice float64) (int64, error) {
	if t.repo.shouldFailInsertIngredient {
		return 0, errInjected
	}
	t.repo.Lock()
	id := t.repo.nextID
	t.repo.nextID++
	t.repo.Unlock()

	t.ingredients[strings.ToLower(name)] = &domain.Ingredient{
		ID: id, Name: name, APQuantity: apQuantity, APUnit: apUnit, APPrice: apPrice,
	}
	return id, nil
}

func (t *mockTx) InsertRecipe(ctx context.Context, recipe *domain.Recipe) (int64, error) {
	if t.repo.shouldFailInsertRecipe {
		return 0, errInjected
	}
	t.repo.Lock()
	id := t.repo.nextID
	t.repo.nextID++
	t.repo.Unlock()

	staged := *recipe
	staged.ID = id
	t.recipe = &staged
	return id, nil
}

func (t *mockTx) InsertRecipeItems(ctx context.Context, recipeID int64, items []domain.RecipeItem) error {
	if t.repo.shouldFailInsertItems {
		return errInjected
	}
	if t.recipe == nil || t.recipe.ID != recipeID {
		return errors.New("recipe not inserted in this transaction")
	}
	t.recipe.Items = append([]domain.RecipeItem(nil), items...)
	return nil
}
