package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

// ingredientColumns must match the scan order in scanIngredient.
const ingredientColumns = `i.id, i.name, i.measurement_unit, i.created_at`

// searchLimit caps prefix search results.
const searchLimit = 50

func scanIngredient(scanner interface{ Scan(dest ...any) error }) (*domain.Ingredient, error) {
	var (
		ing       domain.Ingredient
		unit      string
		createdAt string
	)

	if err := scanner.Scan(&ing.ID, &ing.Name, &unit, &createdAt); err != nil {
		return nil, err
	}

	ing.MeasurementUnit = domain.MeasurementUnit(unit)

	var err error
	ing.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func scanIngredients(rows *sql.Rows) ([]*domain.Ingredient, error) {
	defer rows.Close()

	out := []*domain.Ingredient{}
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

// CreateIngredient inserts a catalog entry.
// Returns store.ErrAlreadyExists when the (name, unit) pair is taken.
func (s *Store) CreateIngredient(ctx context.Context, ing *domain.Ingredient) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ingredients (id, name, measurement_unit, created_at)
		VALUES (?, ?, ?, ?)`,
		ing.ID,
		ing.Name,
		string(ing.MeasurementUnit),
		formatTime(ing.CreatedAt),
	)
	return mapConstraintError(err)
}

// GetIngredient retrieves an ingredient by ID.
func (s *Store) GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+ingredientColumns+` FROM ingredients i WHERE i.id = ?`, id)

	ing, err := scanIngredient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound.WithMessage("ingredient not found")
	}
	if err != nil {
		return nil, err
	}
	return ing, nil
}

// GetIngredientsByIDs returns the ingredients that exist among ids.
func (s *Store) GetIngredientsByIDs(ctx context.Context, ids []string) ([]*domain.Ingredient, error) {
	if len(ids) == 0 {
		return []*domain.Ingredient{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+ingredientColumns+` FROM ingredients i WHERE i.id IN (`+placeholders(len(ids))+`)`,
		stringArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("query ingredients: %w", err)
	}
	return scanIngredients(rows)
}

// SearchIngredients returns ingredients whose name starts with namePrefix.
// Names are stored lower case, so the prefix is matched the same way.
// An empty prefix lists the catalog.
func (s *Store) SearchIngredients(ctx context.Context, namePrefix string) ([]*domain.Ingredient, error) {
	pattern := escapeLike(namePrefix) + "%"

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+ingredientColumns+`
		FROM ingredients i
		WHERE i.name LIKE ? ESCAPE '\'
		ORDER BY i.name ASC, i.measurement_unit ASC
		LIMIT ?`, pattern, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	return scanIngredients(rows)
}

// DeleteIngredient removes a catalog entry.
// Returns store.ErrInvalidInput while recipes still reference it.
func (s *Store) DeleteIngredient(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = ?`, id)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return store.ErrInvalidInput.WithMessage("ingredient is used by recipes").WithCause(err)
		}
		return err
	}
	return requireAffected(result, store.ErrNotFound.WithMessage("ingredient not found"))
}

// GetRecipeIngredients returns a recipe's lines joined with the catalog,
// in the order they were added.
func (s *Store) GetRecipeIngredients(ctx context.Context, recipeID string) ([]domain.RecipeIngredient, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ?
		ORDER BY ri.rowid ASC`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("query recipe ingredients: %w", err)
	}
	defer rows.Close()

	out := []domain.RecipeIngredient{}
	for rows.Next() {
		var (
			ri   domain.RecipeIngredient
			unit string
		)
		if err := rows.Scan(&ri.ID, &ri.Name, &unit, &ri.Amount); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		ri.MeasurementUnit = domain.MeasurementUnit(unit)
		out = append(out, ri)
	}
	return out, rows.Err()
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
