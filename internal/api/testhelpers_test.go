package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/foodgramapp/foodgram-server/internal/auth"
	"github.com/foodgramapp/foodgram-server/internal/authz"
	"github.com/foodgramapp/foodgram-server/internal/config"
	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/dto"
	"github.com/foodgramapp/foodgram-server/internal/service"
	"github.com/foodgramapp/foodgram-server/internal/store/sqlite"
)

// testEnvelope mirrors the response envelope with a typed payload.
type testEnvelope[T any] struct {
	Version int               `json:"v"`
	Success bool              `json:"success"`
	Data    T                 `json:"data"`
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func decode[T any](t *testing.T, body []byte) testEnvelope[T] {
	t.Helper()
	var env testEnvelope[T]
	require.NoError(t, json.Unmarshal(body, &env), "body: %s", body)
	return env
}

// testServer wraps the API server over a real SQLite store.
type testServer struct {
	*Server
	api   humatest.TestAPI
	store *sqlite.Store
}

type serverOption func(*config.ServerConfig, *int)

func withLoginRate(n int) serverOption {
	return func(_ *config.ServerConfig, loginRate *int) { *loginRate = n }
}

func setupTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	tokens, err := auth.NewTokenService(strings.Repeat("cd", 32), time.Hour)
	require.NoError(t, err)
	enforcer, err := authz.NewEnforcer("")
	require.NoError(t, err)
	enricher := dto.NewEnricher(st)

	services := &Services{
		Auth:        service.NewAuthService(st, tokens, logger),
		Users:       service.NewUserService(st, enricher, logger),
		Follows:     service.NewFollowService(st, enricher, logger),
		Tags:        service.NewTagService(st, enforcer, logger),
		Ingredients: service.NewIngredientService(st, enforcer, logger),
		Recipes:     service.NewRecipeService(st, service.NewReconciler(st, logger), enricher, enforcer, logger),
		Memberships: service.NewMembershipService(st, logger),
		Shopping:    service.NewShoppingListService(st, logger),
	}

	cfg := config.ServerConfig{AllowedOrigins: []string{"*"}}
	loginRate := 100
	for _, opt := range opts {
		opt(&cfg, &loginRate)
	}

	s := NewServer(st, services, cfg, loginRate, logger)
	t.Cleanup(s.Close)

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
		store:  st,
	}
}

// register creates an account through the API and returns its token and ID.
func (ts *testServer) register(t *testing.T, username string) (token, userID string) {
	t.Helper()

	resp := ts.api.Post("/api/users", map[string]any{
		"email":      username + "@example.com",
		"username":   username,
		"first_name": "Test",
		"last_name":  "User",
		"password":   "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	user := decode[dto.User](t, resp.Body.Bytes())

	return ts.login(t, username+"@example.com", "correct-horse-battery"), user.Data.ID
}

func (ts *testServer) login(t *testing.T, email, password string) string {
	t.Helper()

	resp := ts.api.Post("/api/auth/token/login", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	return decode[TokenResponse](t, resp.Body.Bytes()).Data.AuthToken
}

func bearer(token string) string {
	return "Authorization: Bearer " + token
}

// seedCatalog creates a tag and two ingredients directly in the store.
func (ts *testServer) seedCatalog(t *testing.T) (tag *domain.Tag, flour, egg *domain.Ingredient) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	tag = &domain.Tag{ID: "tag-breakfast", Name: "Breakfast", Color: domain.TagColorOrange, Slug: "breakfast", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, ts.store.CreateTag(ctx, tag))

	flour = &domain.Ingredient{ID: "ing-flour", Name: "flour", MeasurementUnit: domain.UnitGram, CreatedAt: now}
	require.NoError(t, ts.store.CreateIngredient(ctx, flour))
	egg = &domain.Ingredient{ID: "ing-egg", Name: "egg", MeasurementUnit: domain.UnitCount, CreatedAt: now}
	require.NoError(t, ts.store.CreateIngredient(ctx, egg))

	return tag, flour, egg
}
