package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

func TestMembership_AddHasRemove(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")
	seedRecipe(t, s, "recipe-1", "user-1")

	for _, kind := range []domain.MembershipKind{domain.MembershipFavorite, domain.MembershipShoppingCart} {
		t.Run(string(kind), func(t *testing.T) {
			m := &domain.Membership{Kind: kind, UserID: "user-1", RecipeID: "recipe-1", CreatedAt: time.Now()}

			if err := s.AddMembership(ctx, m); err != nil {
				t.Fatalf("AddMembership: %v", err)
			}
			if err := s.AddMembership(ctx, m); !errors.Is(err, store.ErrAlreadyExists) {
				t.Errorf("duplicate: expected ErrAlreadyExists, got %v", err)
			}

			ok, err := s.HasMembership(ctx, kind, "user-1", "recipe-1")
			if err != nil {
				t.Fatalf("HasMembership: %v", err)
			}
			if !ok {
				t.Error("expected membership")
			}

			if err := s.RemoveMembership(ctx, kind, "user-1", "recipe-1"); err != nil {
				t.Fatalf("RemoveMembership: %v", err)
			}
			if err := s.RemoveMembership(ctx, kind, "user-1", "recipe-1"); !errors.Is(err, store.ErrNotFound) {
				t.Errorf("second remove: expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestMembership_UnknownRecipe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")

	err := s.AddMembership(ctx, &domain.Membership{
		Kind: domain.MembershipFavorite, UserID: "user-1", RecipeID: "ghost", CreatedAt: time.Now(),
	})
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	err = s.AddMembership(ctx, &domain.Membership{Kind: "bogus", UserID: "user-1", RecipeID: "ghost"})
	if err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestGetCartLines_Order(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")
	seedRecipe(t, s, "recipe-a", "user-1")
	seedRecipe(t, s, "recipe-b", "user-1")
	seedRecipe(t, s, "recipe-c", "user-1")
	seedIngredient(t, s, "flour", "мука", domain.UnitGram)
	seedIngredient(t, s, "sugar", "сахар", domain.UnitGram)
	seedIngredient(t, s, "eggs", "яйца", domain.UnitPiece)
	seedLines(t, s, "recipe-a",
		domain.IngredientAmount{IngredientID: "sugar", Amount: 50},
		domain.IngredientAmount{IngredientID: "flour", Amount: 200},
	)
	seedLines(t, s, "recipe-b",
		domain.IngredientAmount{IngredientID: "eggs", Amount: 2},
		domain.IngredientAmount{IngredientID: "flour", Amount: 100},
	)
	seedLines(t, s, "recipe-c", domain.IngredientAmount{IngredientID: "eggs", Amount: 9})

	// Cart insertion order is b then a; c is not in the cart.
	for _, id := range []string{"recipe-b", "recipe-a"} {
		if err := s.AddMembership(ctx, &domain.Membership{
			Kind: domain.MembershipShoppingCart, UserID: "user-1", RecipeID: id, CreatedAt: time.Now(),
		}); err != nil {
			t.Fatalf("AddMembership: %v", err)
		}
	}

	lines, err := s.GetCartLines(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetCartLines: %v", err)
	}

	want := []struct {
		recipe, ingredient string
		amount             int
	}{
		{"recipe-b", "eggs", 2},
		{"recipe-b", "flour", 100},
		{"recipe-a", "sugar", 50},
		{"recipe-a", "flour", 200},
	}
	if len(lines) != len(want) {
		t.Fatalf("len: got %d, want %d", len(lines), len(want))
	}
	for i, w := range want {
		got := lines[i]
		if got.RecipeID != w.recipe || got.IngredientID != w.ingredient || got.Amount != w.amount {
			t.Errorf("lines[%d]: got %+v, want %+v", i, got, w)
		}
	}
	if lines[0].Name != "яйца" || lines[0].Unit != domain.UnitPiece {
		t.Errorf("catalog join: got %q (%q)", lines[0].Name, lines[0].Unit)
	}

	empty, err := s.GetCartLines(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetCartLines(nobody): %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}
}
