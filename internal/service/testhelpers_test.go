package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/foodgramapp/foodgram-server/internal/auth"
	"github.com/foodgramapp/foodgram-server/internal/authz"
	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/dto"
	"github.com/foodgramapp/foodgram-server/internal/store"
	"github.com/foodgramapp/foodgram-server/internal/store/sqlite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestUser(t *testing.T, s *sqlite.Store, id string, role domain.Role) *domain.User {
	t.Helper()
	now := time.Now()
	u := &domain.User{
		ID:           id,
		Email:        id + "@example.com",
		Username:     id,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$argon2id$fake",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func createTestTag(t *testing.T, s *sqlite.Store, id, slug string, color domain.TagColor) *domain.Tag {
	t.Helper()
	now := time.Now()
	tag := &domain.Tag{ID: id, Name: slug, Color: color, Slug: slug, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.CreateTag(context.Background(), tag))
	return tag
}

func createTestIngredient(t *testing.T, s *sqlite.Store, id, name string, unit domain.MeasurementUnit) *domain.Ingredient {
	t.Helper()
	ing := &domain.Ingredient{ID: id, Name: name, MeasurementUnit: unit, CreatedAt: time.Now()}
	require.NoError(t, s.CreateIngredient(context.Background(), ing))
	return ing
}

// createTestRecipe inserts a bare recipe row with no associations.
func createTestRecipe(t *testing.T, s *sqlite.Store, id, authorID string) *domain.Recipe {
	t.Helper()
	now := time.Now()
	r := &domain.Recipe{
		ID:          id,
		AuthorID:    authorID,
		Name:        "Recipe " + id,
		Image:       "data:image/png;base64,AAAA",
		Text:        "Mix and bake.",
		CookingTime: 30,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.WithTx(context.Background(), func(tx store.Tx) error {
		return tx.CreateRecipe(context.Background(), r)
	}))
	return r
}

// testEnv wires every service over one SQLite store.
type testEnv struct {
	store       *sqlite.Store
	tokens      *auth.TokenService
	auth        *AuthService
	users       *UserService
	tags        *TagService
	ingredients *IngredientService
	recipes     *RecipeService
	memberships *MembershipService
	follows     *FollowService
	shopping    *ShoppingListService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s := setupTestStore(t)
	logger := discardLogger()

	tokens, err := auth.NewTokenService(strings.Repeat("ab", 32), time.Hour)
	require.NoError(t, err)
	enforcer, err := authz.NewEnforcer("")
	require.NoError(t, err)
	enricher := dto.NewEnricher(s)

	return &testEnv{
		store:       s,
		tokens:      tokens,
		auth:        NewAuthService(s, tokens, logger),
		users:       NewUserService(s, enricher, logger),
		tags:        NewTagService(s, enforcer, logger),
		ingredients: NewIngredientService(s, enforcer, logger),
		recipes:     NewRecipeService(s, NewReconciler(s, logger), enricher, enforcer, logger),
		memberships: NewMembershipService(s, logger),
		follows:     NewFollowService(s, enricher, logger),
		shopping:    NewShoppingListService(s, logger),
	}
}

// registerUser creates an account through the service and returns the stored user.
func registerUser(t *testing.T, env *testEnv, username string) *domain.User {
	t.Helper()
	created, err := env.users.Register(context.Background(), RegisterRequest{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "correct-horse-battery",
	})
	require.NoError(t, err)

	u, err := env.store.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	return u
}
