package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
)

func TestMembershipService_AddIsIdempotent(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	recipe, err := f.env.recipes.Create(ctx, f.author, f.request(nil))
	require.NoError(t, err)

	for _, kind := range []domain.MembershipKind{domain.MembershipFavorite, domain.MembershipShoppingCart} {
		t.Run(string(kind), func(t *testing.T) {
			first, err := f.env.memberships.Add(ctx, kind, f.other.ID, recipe.ID)
			require.NoError(t, err)
			assert.Equal(t, recipe.ID, first.ID)
			assert.Equal(t, recipe.CookingTime, first.CookingTime)

			second, err := f.env.memberships.Add(ctx, kind, f.other.ID, recipe.ID)
			require.NoError(t, err)
			assert.Equal(t, first, second)

			has, err := f.env.store.HasMembership(ctx, kind, f.other.ID, recipe.ID)
			require.NoError(t, err)
			assert.True(t, has)
		})
	}
}

func TestMembershipService_Remove(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	recipe, err := f.env.recipes.Create(ctx, f.author, f.request(nil))
	require.NoError(t, err)

	err = f.env.memberships.Remove(ctx, domain.MembershipFavorite, f.other.ID, recipe.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = f.env.memberships.Add(ctx, domain.MembershipFavorite, f.other.ID, recipe.ID)
	require.NoError(t, err)
	require.NoError(t, f.env.memberships.Remove(ctx, domain.MembershipFavorite, f.other.ID, recipe.ID))

	has, err := f.env.store.HasMembership(ctx, domain.MembershipFavorite, f.other.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMembershipService_Errors(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	_, err := f.env.memberships.Add(ctx, domain.MembershipFavorite, f.other.ID, "recipe-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = f.env.memberships.Add(ctx, domain.MembershipKind("wishlist"), f.other.ID, "recipe-missing")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestShoppingCart_EndToEnd(t *testing.T) {
	f := setupRecipeFixture(t)
	ctx := context.Background()

	a, err := f.env.recipes.Create(ctx, f.author, f.request(nil,
		IngredientAmountRequest{ID: f.egg.ID, Amount: 2},
		IngredientAmountRequest{ID: f.flour.ID, Amount: 100},
	))
	require.NoError(t, err)
	b, err := f.env.recipes.Create(ctx, f.author, f.request(nil,
		IngredientAmountRequest{ID: f.egg.ID, Amount: 3},
	))
	require.NoError(t, err)

	for _, r := range []string{a.ID, b.ID} {
		_, err := f.env.memberships.Add(ctx, domain.MembershipShoppingCart, f.other.ID, r)
		require.NoError(t, err)
	}

	list, err := f.env.shopping.Export(ctx, f.other.ID)
	require.NoError(t, err)
	assert.Equal(t, "яйцо (шт.) - 5\nмука (г) - 100\n", string(list.Content))

	empty, err := f.env.shopping.Export(ctx, f.author.ID)
	require.NoError(t, err)
	assert.Empty(t, empty.Content)
}
