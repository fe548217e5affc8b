package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/text/cases"

	"github.com/osse101/FoodCost_Go/internal/domain"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const ingredientColumns = `id, name, ap_quantity, ap_unit, ap_price, created_at`

const findIngredientByName = `SELECT ` + ingredientColumns + `
FROM ingredients
WHERE name_key = ?`

const upsertIngredient = `INSERT INTO ingredients (name, name_key, ap_quantity, ap_unit, ap_price)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (name_key) DO UPDATE
SET ap_quantity = excluded.ap_quantity,
    ap_unit = excluded.ap_unit,
    ap_price = excluded.ap_price
RETURNING ` + ingredientColumns

const insertIngredient = `INSERT INTO ingredients (name, name_key, ap_quantity, ap_unit, ap_price)
VALUES (?, ?, ?, ?, ?)`

const searchIngredients = `SELECT ` + ingredientColumns + `
FROM ingredients
WHERE name_key LIKE '%' || ? || '%' ESCAPE '\'
ORDER BY name
LIMIT ?`

const insertRecipe = `INSERT INTO recipes (recipe_name, portions, spice_factor_percent, total_cost, cost_per_portion, total_with_spice)
VALUES (?, ?, ?, ?, ?, ?)`

const insertRecipeItem = `INSERT INTO recipe_items (
    recipe_id, ingredient_id, ingredient_name, ep_quantity, ep_unit, yield_percent,
    ap_quantity, ap_unit, ap_price, ap_cost_per_unit, ep_cost_per_unit, extended_cost
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const getRecipeByID = `SELECT id, recipe_name, portions, spice_factor_percent, total_cost, cost_per_portion, total_with_spice, created_at
FROM recipes
WHERE id = ?`

const getRecipeItems = `SELECT id, recipe_id, ingredient_id, ingredient_name, ep_quantity, ep_unit, yield_percent,
       ap_quantity, ap_unit, ap_price, ap_cost_per_unit, ep_cost_per_unit, extended_cost
FROM recipe_items
WHERE recipe_id = ?
ORDER BY id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIngredient(row rowScanner) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	if err := row.Scan(&ing.ID, &ing.Name, &ing.APQuantity, &ing.APUnit, &ing.APPrice, &ing.CreatedAt); err != nil {
		return nil, err
	}
	return &ing, nil
}

// nameKey case-folds an ingredient name for uniqueness and lookups.
// SQLite's NOCASE and lower() only fold ASCII.
func nameKey(name string) string {
	return cases.Fold().String(name)
}

func findIngredient(ctx context.Context, db dbtx, name string) (*domain.Ingredient, error) {
	ing, err := scanIngredient(db.QueryRowContext(ctx, findIngredientByName, nameKey(name)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ing, nil
}

func nullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func idPtr(id sql.NullInt64) *int64 {
	if !id.Valid {
		return nil
	}
	v := id.Int64
	return &v
}
