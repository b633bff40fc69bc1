package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/service"
)

// Catalog is the seed file contents.
type Catalog struct {
	Tags        []service.CreateTagRequest        `json:"tags"`
	Ingredients []service.CreateIngredientRequest `json:"ingredients"`
}

// LoadResult counts what a load created and skipped.
type LoadResult struct {
	TagsCreated        int
	TagsSkipped        int
	IngredientsCreated int
	IngredientsSkipped int
}

func readCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

type tagCreator interface {
	CreateTag(ctx context.Context, actor *domain.User, req service.CreateTagRequest) (*domain.Tag, error)
}

type ingredientCreator interface {
	Create(ctx context.Context, actor *domain.User, req service.CreateIngredientRequest) (*domain.Ingredient, error)
}

// catalogLoader writes catalog entries through the services so names are
// normalized and validated exactly as API writes are.
type catalogLoader struct {
	tags        tagCreator
	ingredients ingredientCreator
	logger      *slog.Logger
}

// seedActor is the admin identity the loader acts as.
var seedActor = &domain.User{ID: "seed", Username: "seed", Role: domain.RoleAdmin}

// Load creates every catalog entry, skipping ones that already exist.
func (l *catalogLoader) Load(ctx context.Context, c *Catalog) (LoadResult, error) {
	var res LoadResult

	for i, req := range c.Tags {
		_, err := l.tags.CreateTag(ctx, seedActor, req)
		switch {
		case errors.Is(err, domainerrors.AlreadyExists("")):
			res.TagsSkipped++
		case err != nil:
			return res, fmt.Errorf("tag %d (%q): %w", i, req.Name, err)
		default:
			res.TagsCreated++
		}
	}

	for i, req := range c.Ingredients {
		_, err := l.ingredients.Create(ctx, seedActor, req)
		switch {
		case errors.Is(err, domainerrors.AlreadyExists("")):
			res.IngredientsSkipped++
		case err != nil:
			return res, fmt.Errorf("ingredient %d (%q): %w", i, req.Name, err)
		default:
			res.IngredientsCreated++
		}
	}

	l.logger.Debug("catalog processed", "tags", len(c.Tags), "ingredients", len(c.Ingredients))
	return res, nil
}
