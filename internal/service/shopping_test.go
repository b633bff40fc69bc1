package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/mocks"
)

func cartLine(recipeID, ingredientID, name string, unit domain.MeasurementUnit, amount int) domain.CartLine {
	return domain.CartLine{RecipeID: recipeID, IngredientID: ingredientID, Name: name, Unit: unit, Amount: amount}
}

func TestAggregateLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.CartLine
		want  []domain.ShoppingItem
	}{
		{
			name:  "empty cart",
			lines: nil,
			want:  []domain.ShoppingItem{},
		},
		{
			name: "sums across recipes in first-seen order",
			lines: []domain.CartLine{
				cartLine("recipe-a", "ingr-egg", "яйцо", domain.UnitCount, 2),
				cartLine("recipe-a", "ingr-flour", "мука", domain.UnitGram, 100),
				cartLine("recipe-b", "ingr-egg", "яйцо", domain.UnitCount, 3),
			},
			want: []domain.ShoppingItem{
				{IngredientID: "ingr-egg", Name: "яйцо", Unit: domain.UnitCount, Amount: 5},
				{IngredientID: "ingr-flour", Name: "мука", Unit: domain.UnitGram, Amount: 100},
			},
		},
		{
			name: "same name with different units stays separate",
			lines: []domain.CartLine{
				cartLine("recipe-a", "ingr-milk-ml", "молоко", domain.UnitMilliliter, 200),
				cartLine("recipe-b", "ingr-milk-glass", "молоко", domain.UnitGlass, 1),
			},
			want: []domain.ShoppingItem{
				{IngredientID: "ingr-milk-ml", Name: "молоко", Unit: domain.UnitMilliliter, Amount: 200},
				{IngredientID: "ingr-milk-glass", Name: "молоко", Unit: domain.UnitGlass, Amount: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateLines(tt.lines))
		})
	}
}

func TestRender(t *testing.T) {
	items := []domain.ShoppingItem{
		{Name: "яйцо", Unit: domain.UnitCount, Amount: 5},
		{Name: "мука", Unit: domain.UnitGram, Amount: 100},
	}
	assert.Equal(t, "яйцо (шт.) - 5\nмука (г) - 100\n", string(Render(items)))
	assert.Empty(t, Render(nil))
}

func TestShoppingListService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockCartLineSource(ctrl)
	ctx := context.Background()

	src.EXPECT().GetCartLines(ctx, "user-1").Return([]domain.CartLine{
		cartLine("recipe-a", "ingr-egg", "яйцо", domain.UnitCount, 2),
		cartLine("recipe-a", "ingr-flour", "мука", domain.UnitGram, 100),
		cartLine("recipe-b", "ingr-egg", "яйцо", domain.UnitCount, 3),
	}, nil)

	svc := NewShoppingListService(src, discardLogger())
	list, err := svc.Export(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "яйцо (шт.) - 5\nмука (г) - 100\n", string(list.Content))
	assert.Len(t, list.Items, 2)
	assert.Regexp(t, regexp.MustCompile(`^shopping_cart_[0-9a-f-]{36}\.txt$`), list.Filename)
}

func TestShoppingListService_Export_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockCartLineSource(ctrl)
	src.EXPECT().GetCartLines(gomock.Any(), "user-1").Return([]domain.CartLine{}, nil)

	list, err := NewShoppingListService(src, discardLogger()).Export(context.Background(), "user-1")
	require.NoError(t, err)

	assert.NotNil(t, list.Content)
	assert.Empty(t, list.Content)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
}

func TestShoppingListService_Export_FilenamesDiffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockCartLineSource(ctrl)
	src.EXPECT().GetCartLines(gomock.Any(), "user-1").Return(nil, nil).Times(2)

	svc := NewShoppingListService(src, discardLogger())
	first, err := svc.Export(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := svc.Export(context.Background(), "user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestShoppingListService_Aggregate_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockCartLineSource(ctrl)
	boom := errors.New("connection reset")
	src.EXPECT().GetCartLines(gomock.Any(), "user-1").Return(nil, boom)

	_, err := NewShoppingListService(src, discardLogger()).Export(context.Background(), "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestShoppingListService_Export_FromStore(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, s, "user-1", domain.RoleMember)
	createTestIngredient(t, s, "ingr-egg", "яйцо", domain.UnitCount)
	createTestIngredient(t, s, "ingr-flour", "мука", domain.UnitGram)
	createTestRecipe(t, s, "recipe-a", "user-1")
	createTestRecipe(t, s, "recipe-b", "user-1")

	r := NewReconciler(s, discardLogger())
	_, err := r.Reconcile(ctx, "recipe-a", domain.RecipeComposition{Ingredients: []domain.IngredientAmount{
		{IngredientID: "ingr-egg", Amount: 2},
		{IngredientID: "ingr-flour", Amount: 100},
	}})
	require.NoError(t, err)
	_, err = r.Reconcile(ctx, "recipe-b", domain.RecipeComposition{Ingredients: []domain.IngredientAmount{
		{IngredientID: "ingr-egg", Amount: 3},
	}})
	require.NoError(t, err)

	for _, id := range []string{"recipe-a", "recipe-b"} {
		require.NoError(t, s.AddMembership(ctx, &domain.Membership{
			Kind:      domain.MembershipShoppingCart,
			UserID:    "user-1",
			RecipeID:  id,
			CreatedAt: time.Now(),
		}))
	}

	list, err := NewShoppingListService(s, discardLogger()).Export(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "яйцо (шт.) - 5\nмука (г) - 100\n", string(list.Content))
}
