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

// recipeColumns must match the scan order in scanRecipe.
const recipeColumns = `r.id, r.author_id, r.name, r.image, r.text, r.cooking_time, r.created_at, r.updated_at`

// recipeOrder lists newest recipes first; rowid breaks ties within one timestamp.
const recipeOrder = ` ORDER BY r.created_at DESC, r.rowid DESC`

func scanRecipe(scanner interface{ Scan(dest ...any) error }) (*domain.Recipe, error) {
	var (
		r         domain.Recipe
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&r.ID,
		&r.AuthorID,
		&r.Name,
		&r.Image,
		&r.Text,
		&r.CookingTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	r.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanRecipes(rows *sql.Rows) ([]*domain.Recipe, error) {
	defer rows.Close()

	out := []*domain.Recipe{}
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRecipe retrieves a recipe row by ID.
func (s *Store) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes r WHERE r.id = ?`, id)

	r, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound.WithMessage("recipe not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// recipeWhere builds the WHERE clause for a filter.
func recipeWhere(f store.RecipeFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if f.AuthorID != "" {
		clauses = append(clauses, "r.author_id = ?")
		args = append(args, f.AuthorID)
	}

	if len(f.TagSlugs) > 0 {
		clauses = append(clauses, `EXISTS (
			SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
			WHERE rt.recipe_id = r.id AND t.slug IN (`+placeholders(len(f.TagSlugs))+`))`)
		args = append(args, stringArgs(f.TagSlugs)...)
	}

	if f.ViewerID != "" && f.OnlyFavorited {
		clauses = append(clauses, `EXISTS (
			SELECT 1 FROM favorites fav WHERE fav.recipe_id = r.id AND fav.user_id = ?)`)
		args = append(args, f.ViewerID)
	}

	if f.ViewerID != "" && f.OnlyInCart {
		clauses = append(clauses, `EXISTS (
			SELECT 1 FROM shopping_cart sc WHERE sc.recipe_id = r.id AND sc.user_id = ?)`)
		args = append(args, f.ViewerID)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// ListRecipes returns one page of recipes matching filter, newest first.
func (s *Store) ListRecipes(ctx context.Context, filter store.RecipeFilter, params store.PageParams) (*store.Page[*domain.Recipe], error) {
	params.Validate()
	where, args := recipeWhere(filter)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes r`+where, args...).Scan(&count); err != nil {
		return nil, fmt.Errorf("count recipes: %w", err)
	}

	pageArgs := append(append([]any{}, args...), params.Limit, params.Offset())
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes r`+where+recipeOrder+` LIMIT ? OFFSET ?`,
		pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}

	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, fmt.Errorf("scan recipes: %w", err)
	}
	return store.NewPage(recipes, count, params), nil
}

// ListRecipesByAuthor returns an author's newest recipes.
// A non-positive limit returns all of them.
func (s *Store) ListRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]*domain.Recipe, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded.
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes r WHERE r.author_id = ?`+recipeOrder+` LIMIT ?`,
		authorID, limit)
	if err != nil {
		return nil, fmt.Errorf("query author recipes: %w", err)
	}
	return scanRecipes(rows)
}

// CountRecipesByAuthor returns how many recipes an author has published.
func (s *Store) CountRecipesByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recipes WHERE author_id = ?`, authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count author recipes: %w", err)
	}
	return count, nil
}

// DeleteRecipe removes a recipe. Associations cascade.
func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(result, store.ErrNotFound.WithMessage("recipe not found"))
}
