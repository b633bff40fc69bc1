package sqlite

import (
	"context"
	"fmt"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

// membershipTable maps a kind to its table. The names are constants, never
// user input, so they are safe to splice into SQL.
func membershipTable(kind domain.MembershipKind) (string, error) {
	switch kind {
	case domain.MembershipFavorite:
		return "favorites", nil
	case domain.MembershipShoppingCart:
		return "shopping_cart", nil
	default:
		return "", fmt.Errorf("unknown membership kind %q", kind)
	}
}

// AddMembership inserts a favorites or cart row.
// Returns store.ErrAlreadyExists when the row is already present.
func (s *Store) AddMembership(ctx context.Context, m *domain.Membership) error {
	table, err := membershipTable(m.Kind)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO `+table+` (user_id, recipe_id, created_at) VALUES (?, ?, ?)`,
		m.UserID, m.RecipeID, formatTime(m.CreatedAt))
	return mapConstraintError(err)
}

// RemoveMembership deletes a favorites or cart row.
// Returns store.ErrNotFound when there was nothing to delete.
func (s *Store) RemoveMembership(ctx context.Context, kind domain.MembershipKind, userID, recipeID string) error {
	table, err := membershipTable(kind)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM `+table+` WHERE user_id = ? AND recipe_id = ?`, userID, recipeID)
	if err != nil {
		return err
	}
	return requireAffected(result, store.ErrNotFound.WithMessage("recipe is not in the list"))
}

// HasMembership reports whether the row exists.
func (s *Store) HasMembership(ctx context.Context, kind domain.MembershipKind, userID, recipeID string) (bool, error) {
	table, err := membershipTable(kind)
	if err != nil {
		return false, err
	}

	var exists bool
	err = s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+table+` WHERE user_id = ? AND recipe_id = ?)`,
		userID, recipeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", table, err)
	}
	return exists, nil
}

// GetCartLines returns every ingredient line of every recipe in the user's
// cart, ordered by cart insertion and then by line insertion.
func (s *Store) GetCartLines(ctx context.Context, userID string) ([]domain.CartLine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit, ri.amount
		FROM shopping_cart sc
		JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE sc.user_id = ?
		ORDER BY sc.rowid ASC, ri.rowid ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query cart lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.CartLine{}
	for rows.Next() {
		var (
			line domain.CartLine
			unit string
		)
		if err := rows.Scan(&line.RecipeID, &line.IngredientID, &line.Name, &unit, &line.Amount); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		line.Unit = domain.MeasurementUnit(unit)
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
