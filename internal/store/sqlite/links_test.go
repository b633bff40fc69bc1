package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

func findLines(t *testing.T, s *Store, recipeID string) []domain.IngredientLine {
	t.Helper()
	var lines []domain.IngredientLine
	err := s.WithTx(context.Background(), func(tx store.Tx) error {
		var err error
		lines, err = tx.IngredientLines().Find(context.Background(), recipeID)
		return err
	})
	if err != nil {
		t.Fatalf("find lines: %v", err)
	}
	return lines
}

func TestTagLinks_InsertFindDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")
	seedRecipe(t, s, "recipe-1", "user-1")
	seedTag(t, s, "tag-1", "breakfast", domain.TagColorOrange)
	seedTag(t, s, "tag-2", "lunch", domain.TagColorGreen)
	seedTag(t, s, "tag-3", "supper", domain.TagColorPurple)

	now := time.Now()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.TagLinks().BulkInsert(ctx, []domain.TagLink{
			{RecipeID: "recipe-1", TagID: "tag-2", CreatedAt: now},
			{RecipeID: "recipe-1", TagID: "tag-1", CreatedAt: now},
			{RecipeID: "recipe-1", TagID: "tag-3", CreatedAt: now},
		})
	})
	if err != nil {
		t.Fatalf("BulkInsert: %v", err)
	}

	err = s.WithTx(ctx, func(tx store.Tx) error {
		links := tx.TagLinks()
		found, err := links.Find(ctx, "recipe-1")
		if err != nil {
			return err
		}
		if len(found) != 3 || found[0].TagID != "tag-2" {
			t.Errorf("Find: got %+v", found)
		}
		return links.Delete(ctx, []domain.TagLink{
			{RecipeID: "recipe-1", TagID: "tag-2"},
			{RecipeID: "recipe-1", TagID: "tag-3"},
		})
	})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	tags, err := s.GetRecipeTags(ctx, "recipe-1")
	if err != nil {
		t.Fatalf("GetRecipeTags: %v", err)
	}
	if len(tags) != 1 || tags[0].ID != "tag-1" {
		t.Errorf("remaining tags: %+v", tags)
	}
}

func TestTagLinks_BulkUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.TagLinks().BulkUpdate(ctx, nil); err != nil {
			t.Errorf("empty BulkUpdate: %v", err)
		}
		return tx.TagLinks().BulkUpdate(ctx, []domain.TagLink{{RecipeID: "r", TagID: "t"}})
	})
	if !errors.Is(err, ErrNoMutableColumns) {
		t.Errorf("expected ErrNoMutableColumns, got %v", err)
	}
}

func TestTagLinks_DuplicateInsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")
	seedRecipe(t, s, "recipe-1", "user-1")
	seedTag(t, s, "tag-1", "breakfast", domain.TagColorOrange)

	now := time.Now()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.TagLinks().BulkInsert(ctx, []domain.TagLink{
			{RecipeID: "recipe-1", TagID: "tag-1", CreatedAt: now},
			{RecipeID: "recipe-1", TagID: "tag-1", CreatedAt: now},
		})
	})
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestIngredientLines_BulkUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")
	seedRecipe(t, s, "recipe-1", "user-1")
	seedRecipe(t, s, "recipe-2", "user-1")
	seedIngredient(t, s, "ing-1", "мука", domain.UnitGram)
	seedIngredient(t, s, "ing-2", "сахар", domain.UnitGram)
	seedIngredient(t, s, "ing-3", "яйца", domain.UnitPiece)
	seedLines(t, s, "recipe-1",
		domain.IngredientAmount{IngredientID: "ing-1", Amount: 100},
		domain.IngredientAmount{IngredientID: "ing-2", Amount: 50},
		domain.IngredientAmount{IngredientID: "ing-3", Amount: 2},
	)
	seedLines(t, s, "recipe-2", domain.IngredientAmount{IngredientID: "ing-1", Amount: 7})

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.IngredientLines().BulkUpdate(ctx, []domain.IngredientLine{
			{RecipeID: "recipe-1", IngredientID: "ing-1", Amount: 300},
			{RecipeID: "recipe-1", IngredientID: "ing-3", Amount: 4},
		})
	})
	if err != nil {
		t.Fatalf("BulkUpdate: %v", err)
	}

	lines := findLines(t, s, "recipe-1")
	want := map[string]int{"ing-1": 300, "ing-2": 50, "ing-3": 4}
	if len(lines) != len(want) {
		t.Fatalf("len: got %d, want %d", len(lines), len(want))
	}
	for _, l := range lines {
		if l.Amount != want[l.IngredientID] {
			t.Errorf("%s: got %d, want %d", l.IngredientID, l.Amount, want[l.IngredientID])
		}
	}

	// Lines of other recipes are untouched.
	other := findLines(t, s, "recipe-2")
	if len(other) != 1 || other[0].Amount != 7 {
		t.Errorf("recipe-2 changed: %+v", other)
	}
}

func TestIngredientLines_BulkUpdateRejectsNonPositive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")
	seedRecipe(t, s, "recipe-1", "user-1")
	seedIngredient(t, s, "ing-1", "мука", domain.UnitGram)
	seedLines(t, s, "recipe-1", domain.IngredientAmount{IngredientID: "ing-1", Amount: 100})

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.IngredientLines().BulkUpdate(ctx, []domain.IngredientLine{
			{RecipeID: "recipe-1", IngredientID: "ing-1", Amount: 0},
		})
	})
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIngredientLines_DeleteKeepsOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")
	seedRecipe(t, s, "recipe-1", "user-1")
	seedIngredient(t, s, "ing-1", "мука", domain.UnitGram)
	seedIngredient(t, s, "ing-2", "сахар", domain.UnitGram)
	seedIngredient(t, s, "ing-3", "яйца", domain.UnitPiece)
	seedLines(t, s, "recipe-1",
		domain.IngredientAmount{IngredientID: "ing-3", Amount: 2},
		domain.IngredientAmount{IngredientID: "ing-2", Amount: 50},
		domain.IngredientAmount{IngredientID: "ing-1", Amount: 100},
	)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.IngredientLines().Delete(ctx, []domain.IngredientLine{
			{RecipeID: "recipe-1", IngredientID: "ing-2"},
		})
	})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	lines := findLines(t, s, "recipe-1")
	if len(lines) != 2 || lines[0].IngredientID != "ing-3" || lines[1].IngredientID != "ing-1" {
		t.Errorf("unexpected lines: %+v", lines)
	}
}

func TestIngredientLines_UnknownIngredientRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")
	seedRecipe(t, s, "recipe-1", "user-1")
	seedIngredient(t, s, "ing-1", "мука", domain.UnitGram)
	seedLines(t, s, "recipe-1", domain.IngredientAmount{IngredientID: "ing-1", Amount: 100})

	now := time.Now()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		lines := tx.IngredientLines()
		if err := lines.Delete(ctx, []domain.IngredientLine{{RecipeID: "recipe-1", IngredientID: "ing-1"}}); err != nil {
			return err
		}
		return lines.BulkInsert(ctx, []domain.IngredientLine{
			{RecipeID: "recipe-1", IngredientID: "ghost", Amount: 1, CreatedAt: now},
		})
	})
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	lines := findLines(t, s, "recipe-1")
	if len(lines) != 1 || lines[0].IngredientID != "ing-1" || lines[0].Amount != 100 {
		t.Errorf("expected previous state, got %+v", lines)
	}
}
