package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

// userColumns is the ordered list of columns selected in user queries.
// Must match the scan order in scanUser.
const userColumns = `u.id, u.email, u.username, u.first_name, u.last_name,
	u.password_hash, u.role, u.token_version, u.created_at, u.updated_at`

// scanUser scans a sql.Row (or sql.Rows via its Scan method) into a domain.User.
func scanUser(scanner interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var u domain.User

	var (
		role      string
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&role,
		&u.TokenVersion,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role = domain.Role(role)

	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	u.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// scanUsers drains rows into a non-nil slice.
func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user into the database.
// Returns store.ErrAlreadyExists if the email or username is taken.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	emailLower := strings.ToLower(strings.TrimSpace(user.Email))

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, email_lower, username, first_name, last_name,
			password_hash, role, token_version, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		emailLower,
		user.Username,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		string(user.Role),
		user.TokenVersion,
		formatTime(user.CreatedAt),
		formatTime(user.UpdatedAt),
	)
	return mapConstraintError(err)
}

// RegisterUser inserts user and decides the role in the same statement:
// the first row on an empty table becomes admin, every later one a member.
// user.Role is overwritten with the stored role. One statement is atomic,
// so concurrent first registrations cannot both be promoted.
func (s *Store) RegisterUser(ctx context.Context, user *domain.User) error {
	emailLower := strings.ToLower(strings.TrimSpace(user.Email))

	var role string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (
			id, email, email_lower, username, first_name, last_name,
			password_hash, role, token_version, created_at, updated_at
		)
		SELECT ?, ?, ?, ?, ?, ?, ?,
			CASE WHEN EXISTS (SELECT 1 FROM users) THEN ? ELSE ? END,
			?, ?, ?
		RETURNING role`,
		user.ID,
		user.Email,
		emailLower,
		user.Username,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		string(domain.RoleMember),
		string(domain.RoleAdmin),
		user.TokenVersion,
		formatTime(user.CreatedAt),
		formatTime(user.UpdatedAt),
	).Scan(&role)
	if err != nil {
		return mapConstraintError(err)
	}
	user.Role = domain.Role(role)
	return nil
}

// GetUser retrieves a user by ID.
// Returns store.ErrNotFound if the user does not exist.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users u WHERE u.id = ?`, id)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound.WithMessage("user not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email (case-insensitive).
// Returns store.ErrNotFound if no user has that email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	emailLower := strings.ToLower(strings.TrimSpace(email))

	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users u WHERE u.email_lower = ?`, emailLower)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound.WithMessage("user not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns a page of users in registration order.
func (s *Store) ListUsers(ctx context.Context, params store.PageParams) (*store.Page[*domain.User], error) {
	params.Validate()

	count, err := s.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users u ORDER BY u.created_at ASC, u.rowid ASC LIMIT ? OFFSET ?`,
		params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	users, err := scanUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}

	return store.NewPage(users, count, params), nil
}

// CountUsers returns the number of registered users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// UpdateUserPassword replaces the password hash and invalidates issued tokens.
func (s *Store) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = ?, token_version = token_version + 1, updated_at = ?
		WHERE id = ?`,
		passwordHash, formatTime(time.Now()), userID)
	if err != nil {
		return err
	}
	return requireAffected(result, store.ErrNotFound.WithMessage("user not found"))
}

// BumpTokenVersion increments the user's token version and returns the new value.
func (s *Store) BumpTokenVersion(ctx context.Context, userID string) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx, `
		UPDATE users SET token_version = token_version + 1, updated_at = ?
		WHERE id = ?
		RETURNING token_version`,
		formatTime(time.Now()), userID).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, store.ErrNotFound.WithMessage("user not found")
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}

// requireAffected returns notFound when an UPDATE or DELETE touched no rows.
func requireAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
