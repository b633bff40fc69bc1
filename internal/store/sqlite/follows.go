package sqlite

import (
	"context"
	"fmt"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

// CreateFollow subscribes f.UserID to f.AuthorID.
// Returns store.ErrAlreadyExists when already subscribed and
// store.ErrInvalidInput for self-follows or unknown users.
func (s *Store) CreateFollow(ctx context.Context, f *domain.Follow) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO follows (user_id, author_id, created_at) VALUES (?, ?, ?)`,
		f.UserID, f.AuthorID, formatTime(f.CreatedAt))
	return mapConstraintError(err)
}

// DeleteFollow removes a subscription.
// Returns store.ErrNotFound when the user was not subscribed.
func (s *Store) DeleteFollow(ctx context.Context, userID, authorID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM follows WHERE user_id = ? AND author_id = ?`, userID, authorID)
	if err != nil {
		return err
	}
	return requireAffected(result, store.ErrNotFound.WithMessage("not subscribed to this author"))
}

// IsFollowing reports whether userID is subscribed to authorID.
func (s *Store) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE user_id = ? AND author_id = ?)`,
		userID, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return exists, nil
}

// ListFollowedAuthors returns the authors userID follows, most recent subscription first.
func (s *Store) ListFollowedAuthors(ctx context.Context, userID string, params store.PageParams) (*store.Page[*domain.User], error) {
	params.Validate()

	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE user_id = ?`, userID).Scan(&count); err != nil {
		return nil, fmt.Errorf("count follows: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM follows f
		JOIN users u ON u.id = f.author_id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC, f.rowid DESC
		LIMIT ? OFFSET ?`,
		userID, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("query follows: %w", err)
	}

	users, err := scanUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("scan follows: %w", err)
	}
	return store.NewPage(users, count, params), nil
}
