package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

func TestCreateAndGetTag(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedTag(t, s, "tag-1", "breakfast", domain.TagColorOrange)

	got, err := s.GetTag(ctx, "tag-1")
	if err != nil {
		t.Fatalf("GetTag: %v", err)
	}
	if got.Slug != "breakfast" {
		t.Errorf("Slug: got %q, want %q", got.Slug, "breakfast")
	}
	if got.Color != domain.TagColorOrange {
		t.Errorf("Color: got %q, want %q", got.Color, domain.TagColorOrange)
	}

	if _, err := s.GetTag(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateTag_UniqueColumns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTag(t, s, "tag-1", "breakfast", domain.TagColorOrange)

	now := time.Now()
	tests := []struct {
		name string
		tag  domain.Tag
	}{
		{"name", domain.Tag{ID: "tag-2", Name: "breakfast", Slug: "other", Color: domain.TagColorGreen}},
		{"slug", domain.Tag{ID: "tag-3", Name: "Other", Slug: "breakfast", Color: domain.TagColorGreen}},
		{"color", domain.Tag{ID: "tag-4", Name: "Other", Slug: "other", Color: domain.TagColorOrange}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := tt.tag
			tag.CreatedAt, tag.UpdatedAt = now, now
			if err := s.CreateTag(ctx, &tag); !errors.Is(err, store.ErrAlreadyExists) {
				t.Errorf("expected ErrAlreadyExists, got %v", err)
			}
		})
	}
}

func TestListTags_OrderedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedTag(t, s, "tag-1", "supper", domain.TagColorPurple)
	seedTag(t, s, "tag-2", "breakfast", domain.TagColorOrange)
	seedTag(t, s, "tag-3", "lunch", domain.TagColorGreen)

	tags, err := s.ListTags(ctx)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	want := []string{"breakfast", "lunch", "supper"}
	if len(tags) != len(want) {
		t.Fatalf("len: got %d, want %d", len(tags), len(want))
	}
	for i, slug := range want {
		if tags[i].Slug != slug {
			t.Errorf("tags[%d]: got %q, want %q", i, tags[i].Slug, slug)
		}
	}
}

func TestGetTagsByIDs_SkipsMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTag(t, s, "tag-1", "breakfast", domain.TagColorOrange)

	tags, err := s.GetTagsByIDs(ctx, []string{"tag-1", "missing"})
	if err != nil {
		t.Fatalf("GetTagsByIDs: %v", err)
	}
	if len(tags) != 1 || tags[0].ID != "tag-1" {
		t.Errorf("unexpected tags: %+v", tags)
	}

	empty, err := s.GetTagsByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("GetTagsByIDs(nil): %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestUpdateAndDeleteTag(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	tag := seedTag(t, s, "tag-1", "breakfast", domain.TagColorOrange)

	tag.Name = "Brunch"
	tag.Slug = "brunch"
	tag.Touch()
	if err := s.UpdateTag(ctx, tag); err != nil {
		t.Fatalf("UpdateTag: %v", err)
	}

	got, err := s.GetTag(ctx, "tag-1")
	if err != nil {
		t.Fatalf("GetTag: %v", err)
	}
	if got.Slug != "brunch" || got.Name != "Brunch" {
		t.Errorf("update not applied: %+v", got)
	}

	if err := s.DeleteTag(ctx, "tag-1"); err != nil {
		t.Fatalf("DeleteTag: %v", err)
	}
	if err := s.DeleteTag(ctx, "tag-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}

	missing := &domain.Tag{ID: "missing", Name: "x", Slug: "x", Color: domain.TagColorGreen}
	if err := s.UpdateTag(ctx, missing); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("update missing: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTag_CascadesLinks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "user-1")
	seedRecipe(t, s, "recipe-1", "user-1")
	seedTag(t, s, "tag-1", "breakfast", domain.TagColorOrange)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.TagLinks().BulkInsert(ctx, []domain.TagLink{
			{RecipeID: "recipe-1", TagID: "tag-1", CreatedAt: time.Now()},
		})
	})
	if err != nil {
		t.Fatalf("link tag: %v", err)
	}

	if err := s.DeleteTag(ctx, "tag-1"); err != nil {
		t.Fatalf("DeleteTag: %v", err)
	}

	tags, err := s.GetRecipeTags(ctx, "recipe-1")
	if err != nil {
		t.Fatalf("GetRecipeTags: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("expected links to cascade, got %d", len(tags))
	}
}
