package dto

//go:generate mockgen -source=enricher.go -destination=../mocks/mock_enricher.go -package=mocks -mock_names=Store=MockEnricherStore

import (
	"context"
	"fmt"

	"github.com/foodgramapp/foodgram-server/internal/domain"
)

// Store defines the reads the Enricher needs.
// Kept narrow so enrichment can be tested without a database.
type Store interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetRecipeTags(ctx context.Context, recipeID string) ([]*domain.Tag, error)
	GetRecipeIngredients(ctx context.Context, recipeID string) ([]domain.RecipeIngredient, error)
	HasMembership(ctx context.Context, kind domain.MembershipKind, userID, recipeID string) (bool, error)
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
	ListRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]*domain.Recipe, error)
	CountRecipesByAuthor(ctx context.Context, authorID string) (int, error)
}

// Enricher denormalizes domain models for client consumption.
//
// Lookups that fail return an error; the caller decides whether to degrade.
// Viewer flags are computed only when viewerID is non-empty.
type Enricher struct {
	store Store
}

// NewEnricher creates a new enricher.
func NewEnricher(store Store) *Enricher {
	return &Enricher{store: store}
}

// EnrichUser returns the public profile of u as seen by viewerID.
func (e *Enricher) EnrichUser(ctx context.Context, viewerID string, u *domain.User) (User, error) {
	out := NewUser(u)
	if viewerID == "" || viewerID == u.ID {
		return out, nil
	}

	following, err := e.store.IsFollowing(ctx, viewerID, u.ID)
	if err != nil {
		return User{}, fmt.Errorf("check subscription: %w", err)
	}
	out.IsSubscribed = following
	return out, nil
}

// EnrichUsers enriches a page of users.
func (e *Enricher) EnrichUsers(ctx context.Context, viewerID string, users []*domain.User) ([]User, error) {
	out := make([]User, 0, len(users))
	for _, u := range users {
		enriched, err := e.EnrichUser(ctx, viewerID, u)
		if err != nil {
			return nil, err
		}
		out = append(out, enriched)
	}
	return out, nil
}

// EnrichRecipe builds the full representation of r for viewerID.
func (e *Enricher) EnrichRecipe(ctx context.Context, viewerID string, r *domain.Recipe) (*Recipe, error) {
	return e.enrichRecipe(ctx, viewerID, r, map[string]User{})
}

// EnrichRecipes enriches a page of recipes, fetching each author once.
func (e *Enricher) EnrichRecipes(ctx context.Context, viewerID string, recipes []*domain.Recipe) ([]*Recipe, error) {
	if len(recipes) == 0 {
		return []*Recipe{}, nil
	}

	authors := make(map[string]User)
	out := make([]*Recipe, 0, len(recipes))
	for _, r := range recipes {
		enriched, err := e.enrichRecipe(ctx, viewerID, r, authors)
		if err != nil {
			return nil, err
		}
		out = append(out, enriched)
	}
	return out, nil
}

func (e *Enricher) enrichRecipe(ctx context.Context, viewerID string, r *domain.Recipe, authors map[string]User) (*Recipe, error) {
	author, ok := authors[r.AuthorID]
	if !ok {
		u, err := e.store.GetUser(ctx, r.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("fetch author: %w", err)
		}
		author, err = e.EnrichUser(ctx, viewerID, u)
		if err != nil {
			return nil, err
		}
		authors[r.AuthorID] = author
	}

	tags, err := e.store.GetRecipeTags(ctx, r.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}

	ingredients, err := e.store.GetRecipeIngredients(ctx, r.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch ingredients: %w", err)
	}
	if ingredients == nil {
		ingredients = []domain.RecipeIngredient{}
	}

	out := &Recipe{
		ID:          r.ID,
		Tags:        make([]RecipeTag, len(tags)),
		Author:      author,
		Ingredients: ingredients,
		Name:        r.Name,
		Image:       r.Image,
		Text:        r.Text,
		CookingTime: r.CookingTime,
	}
	for i, t := range tags {
		out.Tags[i] = NewRecipeTag(t)
	}

	if viewerID != "" {
		if out.IsFavorited, err = e.store.HasMembership(ctx, domain.MembershipFavorite, viewerID, r.ID); err != nil {
			return nil, fmt.Errorf("check favorite: %w", err)
		}
		if out.IsInShoppingCart, err = e.store.HasMembership(ctx, domain.MembershipShoppingCart, viewerID, r.ID); err != nil {
			return nil, fmt.Errorf("check cart: %w", err)
		}
	}

	return out, nil
}

// EnrichSubscription builds a followed author card with up to recipesLimit
// recipes. A non-positive limit includes all of them.
func (e *Enricher) EnrichSubscription(ctx context.Context, viewerID string, author *domain.User, recipesLimit int) (*Subscription, error) {
	user, err := e.EnrichUser(ctx, viewerID, author)
	if err != nil {
		return nil, err
	}

	recipes, err := e.store.ListRecipesByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch author recipes: %w", err)
	}

	count, err := e.store.CountRecipesByAuthor(ctx, author.ID)
	if err != nil {
		return nil, fmt.Errorf("count author recipes: %w", err)
	}

	sub := &Subscription{
		User:         user,
		Recipes:      make([]RecipeSummary, len(recipes)),
		RecipesCount: count,
	}
	for i, r := range recipes {
		sub.Recipes[i] = NewRecipeSummary(r)
	}
	return sub, nil
}
