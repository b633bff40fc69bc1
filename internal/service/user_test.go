package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodgramapp/foodgram-server/internal/auth"
	"github.com/foodgramapp/foodgram-server/internal/domain"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

func TestUserService_Register_FirstUserIsAdmin(t *testing.T) {
	env := setupTestEnv(t)

	first := registerUser(t, env, "alice")
	second := registerUser(t, env, "bob")

	assert.Equal(t, domain.RoleAdmin, first.Role)
	assert.Equal(t, domain.RoleMember, second.Role)
	assert.NotEqual(t, "correct-horse-battery", first.PasswordHash)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	registerUser(t, env, "alice")

	_, err := env.users.Register(ctx, RegisterRequest{
		Email:     "Alice@Example.com",
		Username:  "alice2",
		FirstName: "A",
		LastName:  "B",
		Password:  "another-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestUserService_Register_Validation(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.users.Register(context.Background(), RegisterRequest{
		Email:     "alice@example.com",
		Username:  "bad name!",
		FirstName: "A",
		LastName:  "B",
		Password:  "short",
	})
	require.Error(t, err)

	var de *domainerrors.Error
	require.ErrorAs(t, err, &de)
	details, ok := de.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "username")
	assert.Contains(t, details, "password")
}

func TestUserService_ListAndGet(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	registerUser(t, env, "carol")

	require.NoError(t, env.store.CreateFollow(ctx, &domain.Follow{UserID: alice.ID, AuthorID: bob.ID}))

	page, err := env.users.List(ctx, alice.ID, store.PageParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Count)
	assert.Len(t, page.Items, 2)

	got, err := env.users.Get(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSubscribed)

	anon, err := env.users.Get(ctx, "", bob.ID)
	require.NoError(t, err)
	assert.False(t, anon.IsSubscribed)

	_, err = env.users.Get(ctx, alice.ID, "user-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserService_SetPassword(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")

	err := env.users.SetPassword(ctx, alice.ID, SetPasswordRequest{CurrentPassword: "wrong", NewPassword: "new-password-123"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	require.NoError(t, env.users.SetPassword(ctx, alice.ID, SetPasswordRequest{
		CurrentPassword: "correct-horse-battery",
		NewPassword:     "new-password-123",
	}))

	updated, err := env.store.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	ok, err := auth.VerifyPassword(updated.PasswordHash, "new-password-123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Greater(t, updated.TokenVersion, alice.TokenVersion)

	_, err = env.auth.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "correct-horse-battery"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
