package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodgramapp/foodgram-server/internal/dto"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

func TestHealth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")

	require.Equal(t, http.StatusOK, resp.Code)
	env := decode[HealthResponse](t, resp.Body.Bytes())
	assert.Equal(t, 1, env.Version)
	assert.True(t, env.Success)
	assert.Equal(t, "healthy", env.Data.Status)
	assert.Equal(t, "ok", env.Data.Database)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/nothing-here")

	require.Equal(t, http.StatusNotFound, resp.Code)
	env := decode[any](t, resp.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestUsers_RegisterLoginMe(t *testing.T) {
	ts := setupTestServer(t)
	token, userID := ts.register(t, "alice")

	resp := ts.api.Get("/api/users/me", bearer(token))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	me := decode[dto.User](t, resp.Body.Bytes())
	assert.Equal(t, userID, me.Data.ID)
	assert.Equal(t, "alice", me.Data.Username)
	assert.False(t, me.Data.IsSubscribed)

	// The legacy "Token" scheme is accepted too.
	resp = ts.api.Get("/api/users/me", "Authorization: Token "+token)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestUsers_MeRequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/users/me")

	require.Equal(t, http.StatusUnauthorized, resp.Code)
	env := decode[any](t, resp.Body.Bytes())
	assert.Equal(t, 1, env.Version)
	assert.False(t, env.Success)
	assert.Equal(t, "UNAUTHORIZED", env.Code)
	assert.NotEmpty(t, env.Error)
}

func TestUsers_InvalidTokenIsAnonymous(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/recipes", bearer("v4.local.garbage"))
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/users/me", bearer("v4.local.garbage"))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUsers_RegisterValidation(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("field rules", func(t *testing.T) {
		resp := ts.api.Post("/api/users", map[string]any{
			"email":      "not-an-email",
			"username":   "bob",
			"first_name": "Bob",
			"last_name":  "Builder",
			"password":   "short",
		})

		require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
		env := decode[any](t, resp.Body.Bytes())
		assert.Equal(t, "VALIDATION", env.Code)
		assert.Contains(t, env.Details, "email")
		assert.Contains(t, env.Details, "password")
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := ts.api.Post("/api/users", map[string]any{"email": "bob@example.com"})

		require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
		env := decode[any](t, resp.Body.Bytes())
		assert.Equal(t, "VALIDATION", env.Code)
		assert.NotEmpty(t, env.Details)
	})
}

func TestUsers_DuplicateRegistration(t *testing.T) {
	ts := setupTestServer(t)
	ts.register(t, "alice")

	resp := ts.api.Post("/api/users", map[string]any{
		"email":      "alice@example.com",
		"username":   "alice2",
		"first_name": "Alice",
		"last_name":  "Again",
		"password":   "correct-horse-battery",
	})

	assert.Equal(t, http.StatusConflict, resp.Code, resp.Body.String())
}

func TestUsers_ListAndGet(t *testing.T) {
	ts := setupTestServer(t)
	aliceToken, _ := ts.register(t, "alice")
	_, bobID := ts.register(t, "bob")

	resp := ts.api.Post("/api/users/"+bobID+"/subscribe", bearer(aliceToken))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = ts.api.Get("/api/users?limit=1&page=2", bearer(aliceToken))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	page := decode[store.Page[dto.User]](t, resp.Body.Bytes())
	assert.Equal(t, 2, page.Data.Count)
	assert.Equal(t, 2, page.Data.Page)
	assert.Len(t, page.Data.Items, 1)

	resp = ts.api.Get("/api/users/"+bobID, bearer(aliceToken))
	require.Equal(t, http.StatusOK, resp.Code)
	bob := decode[dto.User](t, resp.Body.Bytes())
	assert.True(t, bob.Data.IsSubscribed)

	resp = ts.api.Get("/api/users/" + bobID)
	require.Equal(t, http.StatusOK, resp.Code)
	bob = decode[dto.User](t, resp.Body.Bytes())
	assert.False(t, bob.Data.IsSubscribed, "anonymous viewers never see subscriptions")

	resp = ts.api.Get("/api/users/usr-missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAuth_LoginFailures(t *testing.T) {
	ts := setupTestServer(t)
	ts.register(t, "alice")

	resp := ts.api.Post("/api/auth/token/login", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[any](t, resp.Body.Bytes()).Code)

	resp = ts.api.Post("/api/auth/token/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuth_LoginRateLimited(t *testing.T) {
	ts := setupTestServer(t, withLoginRate(2))
	body := map[string]any{"email": "nobody@example.com", "password": "wrong-password"}

	for range 2 {
		resp := ts.api.Post("/api/auth/token/login", body)
		require.Equal(t, http.StatusUnauthorized, resp.Code)
	}

	resp := ts.api.Post("/api/auth/token/login", body)
	require.Equal(t, http.StatusTooManyRequests, resp.Code)
	env := decode[any](t, resp.Body.Bytes())
	assert.Equal(t, "RATE_LIMITED", env.Code)
	assert.False(t, env.Success)
}

func TestAuth_LogoutRevokesToken(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.register(t, "alice")

	resp := ts.api.Post("/api/auth/token/logout", bearer(token))
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())
	assert.Empty(t, resp.Body.String())

	resp = ts.api.Get("/api/users/me", bearer(token))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// A fresh login works again.
	token = ts.login(t, "alice@example.com", "correct-horse-battery")
	resp = ts.api.Get("/api/users/me", bearer(token))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestUsers_SetPassword(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.register(t, "alice")

	resp := ts.api.Post("/api/users/set_password", bearer(token), map[string]any{
		"current_password": "wrong-password",
		"new_password":     "another-long-password",
	})
	require.NotEqual(t, http.StatusNoContent, resp.Code)

	resp = ts.api.Post("/api/users/set_password", bearer(token), map[string]any{
		"current_password": "correct-horse-battery",
		"new_password":     "another-long-password",
	})
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

	ts.login(t, "alice@example.com", "another-long-password")
}

func TestSubscriptions(t *testing.T) {
	ts := setupTestServer(t)
	aliceToken, aliceID := ts.register(t, "alice")
	bobToken, bobID := ts.register(t, "bob")
	tag, flour, _ := ts.seedCatalog(t)

	for _, name := range []string{"Pancakes", "Waffles"} {
		resp := ts.api.Post("/api/recipes", bearer(bobToken), map[string]any{
			"tags":         []string{tag.ID},
			"ingredients":  []map[string]any{{"id": flour.ID, "amount": 100}},
			"name":         name,
			"text":         "Mix and fry.",
			"cooking_time": 10,
		})
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	}

	t.Run("self follow rejected", func(t *testing.T) {
		resp := ts.api.Post("/api/users/"+aliceID+"/subscribe", bearer(aliceToken))
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("subscribe is idempotent", func(t *testing.T) {
		for range 2 {
			resp := ts.api.Post("/api/users/"+bobID+"/subscribe?recipes_limit=1", bearer(aliceToken))
			require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
			sub := decode[dto.Subscription](t, resp.Body.Bytes())
			assert.Equal(t, bobID, sub.Data.ID)
			assert.True(t, sub.Data.IsSubscribed)
			assert.Len(t, sub.Data.Recipes, 1)
			assert.Equal(t, 2, sub.Data.RecipesCount)
		}
	})

	t.Run("list", func(t *testing.T) {
		resp := ts.api.Get("/api/users/subscriptions", bearer(aliceToken))
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
		page := decode[store.Page[dto.Subscription]](t, resp.Body.Bytes())
		require.Len(t, page.Data.Items, 1)
		assert.Equal(t, bobID, page.Data.Items[0].ID)
		assert.Len(t, page.Data.Items[0].Recipes, 2)
	})

	t.Run("unsubscribe", func(t *testing.T) {
		resp := ts.api.Delete("/api/users/"+bobID+"/subscribe", bearer(aliceToken))
		require.Equal(t, http.StatusNoContent, resp.Code)

		resp = ts.api.Delete("/api/users/"+bobID+"/subscribe", bearer(aliceToken))
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("requires auth", func(t *testing.T) {
		resp := ts.api.Get("/api/users/subscriptions")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestOpenAPIDocument(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/openapi.json")

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.True(t, strings.Contains(body, "/api/recipes/download_shopping_cart"))
	// Tag endpoints and the tags embedded in recipes register distinct schemas.
	assert.Contains(t, body, `"Tag"`)
	assert.Contains(t, body, `"RecipeTag"`)
}
