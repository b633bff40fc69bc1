package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

// ErrNoMutableColumns is returned by BulkUpdate on tag links, whose rows
// carry nothing but their key.
var ErrNoMutableColumns = errors.New("tag links have no mutable columns")

// txStore implements store.Tx over a *sql.Tx.
type txStore struct {
	q querier
}

var _ store.Tx = (*txStore)(nil)

// CreateRecipe inserts a recipe row.
func (t *txStore) CreateRecipe(ctx context.Context, r *domain.Recipe) error {
	_, err := t.q.ExecContext(ctx, `
		INSERT INTO recipes (id, author_id, name, image, text, cooking_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.AuthorID,
		r.Name,
		r.Image,
		r.Text,
		r.CookingTime,
		formatTime(r.CreatedAt),
		formatTime(r.UpdatedAt),
	)
	return mapConstraintError(err)
}

// UpdateRecipe overwrites the recipe's own columns. Author and creation
// time are immutable.
func (t *txStore) UpdateRecipe(ctx context.Context, r *domain.Recipe) error {
	result, err := t.q.ExecContext(ctx, `
		UPDATE recipes SET name = ?, image = ?, text = ?, cooking_time = ?, updated_at = ?
		WHERE id = ?`,
		r.Name,
		r.Image,
		r.Text,
		r.CookingTime,
		formatTime(r.UpdatedAt),
		r.ID,
	)
	if err != nil {
		return mapConstraintError(err)
	}
	return requireAffected(result, store.ErrNotFound.WithMessage("recipe not found"))
}

// TagLinks returns the recipe_tags repository bound to this transaction.
func (t *txStore) TagLinks() store.Collection[domain.TagLink] {
	return &tagLinks{q: t.q}
}

// IngredientLines returns the recipe_ingredients repository bound to this transaction.
func (t *txStore) IngredientLines() store.Collection[domain.IngredientLine] {
	return &ingredientLines{q: t.q}
}

// rowValues returns "(?, ?), (?, ?)" for n rows of width columns.
func rowValues(n, width int) string {
	row := "(" + placeholders(width) + ")"
	return strings.TrimSuffix(strings.Repeat(row+", ", n), ", ")
}

// === recipe_tags ===

type tagLinks struct {
	q querier
}

func (c *tagLinks) Find(ctx context.Context, recipeID string) ([]domain.TagLink, error) {
	rows, err := c.q.QueryContext(ctx, `
		SELECT recipe_id, tag_id, created_at FROM recipe_tags
		WHERE recipe_id = ?
		ORDER BY rowid ASC`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("query recipe_tags: %w", err)
	}
	defer rows.Close()

	out := []domain.TagLink{}
	for rows.Next() {
		var (
			link      domain.TagLink
			createdAt string
		)
		if err := rows.Scan(&link.RecipeID, &link.TagID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan recipe_tag: %w", err)
		}
		if link.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

func (c *tagLinks) BulkInsert(ctx context.Context, rows []domain.TagLink) error {
	if len(rows) == 0 {
		return nil
	}

	args := make([]any, 0, len(rows)*3)
	for _, l := range rows {
		args = append(args, l.RecipeID, l.TagID, formatTime(l.CreatedAt))
	}

	_, err := c.q.ExecContext(ctx,
		`INSERT INTO recipe_tags (recipe_id, tag_id, created_at) VALUES `+rowValues(len(rows), 3),
		args...)
	if err != nil {
		return fmt.Errorf("insert recipe_tags: %w", mapConstraintError(err))
	}
	return nil
}

func (c *tagLinks) BulkUpdate(_ context.Context, rows []domain.TagLink) error {
	if len(rows) == 0 {
		return nil
	}
	return ErrNoMutableColumns
}

func (c *tagLinks) Delete(ctx context.Context, rows []domain.TagLink) error {
	if len(rows) == 0 {
		return nil
	}

	args := make([]any, 0, len(rows)*2)
	for _, l := range rows {
		args = append(args, l.RecipeID, l.TagID)
	}

	_, err := c.q.ExecContext(ctx,
		`DELETE FROM recipe_tags WHERE (recipe_id, tag_id) IN (VALUES `+rowValues(len(rows), 2)+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("delete recipe_tags: %w", err)
	}
	return nil
}

// === recipe_ingredients ===

type ingredientLines struct {
	q querier
}

func (c *ingredientLines) Find(ctx context.Context, recipeID string) ([]domain.IngredientLine, error) {
	rows, err := c.q.QueryContext(ctx, `
		SELECT recipe_id, ingredient_id, amount, created_at FROM recipe_ingredients
		WHERE recipe_id = ?
		ORDER BY rowid ASC`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("query recipe_ingredients: %w", err)
	}
	defer rows.Close()

	out := []domain.IngredientLine{}
	for rows.Next() {
		var (
			line      domain.IngredientLine
			createdAt string
		)
		if err := rows.Scan(&line.RecipeID, &line.IngredientID, &line.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan recipe_ingredient: %w", err)
		}
		if line.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, rows.Err()
}

func (c *ingredientLines) BulkInsert(ctx context.Context, rows []domain.IngredientLine) error {
	if len(rows) == 0 {
		return nil
	}

	args := make([]any, 0, len(rows)*4)
	for _, l := range rows {
		args = append(args, l.RecipeID, l.IngredientID, l.Amount, formatTime(l.CreatedAt))
	}

	_, err := c.q.ExecContext(ctx,
		`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount, created_at) VALUES `+rowValues(len(rows), 4),
		args...)
	if err != nil {
		return fmt.Errorf("insert recipe_ingredients: %w", mapConstraintError(err))
	}
	return nil
}

// BulkUpdate rewrites the amount of every given line in one statement.
func (c *ingredientLines) BulkUpdate(ctx context.Context, rows []domain.IngredientLine) error {
	if len(rows) == 0 {
		return nil
	}

	var (
		cases strings.Builder
		args  = make([]any, 0, len(rows)*5)
	)
	for _, l := range rows {
		cases.WriteString(" WHEN recipe_id = ? AND ingredient_id = ? THEN ?")
		args = append(args, l.RecipeID, l.IngredientID, l.Amount)
	}
	for _, l := range rows {
		args = append(args, l.RecipeID, l.IngredientID)
	}

	_, err := c.q.ExecContext(ctx,
		`UPDATE recipe_ingredients SET amount = CASE`+cases.String()+` ELSE amount END
		WHERE (recipe_id, ingredient_id) IN (VALUES `+rowValues(len(rows), 2)+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("update recipe_ingredients: %w", mapConstraintError(err))
	}
	return nil
}

func (c *ingredientLines) Delete(ctx context.Context, rows []domain.IngredientLine) error {
	if len(rows) == 0 {
		return nil
	}

	args := make([]any, 0, len(rows)*2)
	for _, l := range rows {
		args = append(args, l.RecipeID, l.IngredientID)
	}

	_, err := c.q.ExecContext(ctx,
		`DELETE FROM recipe_ingredients WHERE (recipe_id, ingredient_id) IN (VALUES `+rowValues(len(rows), 2)+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("delete recipe_ingredients: %w", err)
	}
	return nil
}
