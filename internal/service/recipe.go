package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/authz"
	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/dto"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/id"
	"github.com/foodgramapp/foodgram-server/internal/metrics"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

// RecipeService manages recipes and their compositions.
type RecipeService struct {
	store      store.Store
	reconciler *Reconciler
	enricher   *dto.Enricher
	authz      *authz.Enforcer
	logger     *slog.Logger
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(
	store store.Store,
	reconciler *Reconciler,
	enricher *dto.Enricher,
	enforcer *authz.Enforcer,
	logger *slog.Logger,
) *RecipeService {
	return &RecipeService{
		store:      store,
		reconciler: reconciler,
		enricher:   enricher,
		authz:      enforcer,
		logger:     logger,
	}
}

// IngredientAmountRequest is one requested ingredient line.
type IngredientAmountRequest struct {
	ID     string `json:"id" validate:"required"`
	Amount int    `json:"amount" validate:"gte=1,lte=32000"`
}

// RecipeRequest is the body of recipe create and update calls.
// Tags and ingredients describe the complete desired composition. Both are
// capped at 100 entries so one batch statement stays within SQLite's bound
// on host parameters.
type RecipeRequest struct {
	Tags        []string                  `json:"tags" validate:"max=100,dive,required"`
	Ingredients []IngredientAmountRequest `json:"ingredients" validate:"max=100,dive"`
	Name        string                    `json:"name" validate:"required,max=200"`
	Image       string                    `json:"image"`
	Text        string                    `json:"text" validate:"required,max=400"`
	CookingTime int                       `json:"cooking_time" validate:"gte=1,lte=32000"`
}

// Composition returns the desired tag set and ingredient lines.
func (r RecipeRequest) Composition() domain.RecipeComposition {
	comp := domain.RecipeComposition{
		TagIDs:      r.Tags,
		Ingredients: make([]domain.IngredientAmount, len(r.Ingredients)),
	}
	for i, ia := range r.Ingredients {
		comp.Ingredients[i] = domain.IngredientAmount{IngredientID: ia.ID, Amount: ia.Amount}
	}
	return comp
}

// RecipeQuery filters a recipe listing.
type RecipeQuery struct {
	AuthorID         string
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
}

// Create publishes a recipe authored by actor.
func (s *RecipeService) Create(ctx context.Context, actor *domain.User, req RecipeRequest) (*dto.Recipe, error) {
	if err := s.authz.Authorize(actor, authz.ObjectRecipe, authz.ActionCreate, ""); err != nil {
		return nil, err
	}
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	comp := req.Composition()
	if err := s.checkReferences(ctx, comp); err != nil {
		return nil, err
	}

	recipeID, err := id.Generate(id.PrefixRecipe)
	if err != nil {
		return nil, fmt.Errorf("generate recipe ID: %w", err)
	}

	now := time.Now()
	recipe := &domain.Recipe{
		ID:          recipeID,
		AuthorID:    actor.ID,
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var changes Changes
	err = s.store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.CreateRecipe(ctx, recipe); err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		c, err := s.reconciler.Apply(ctx, tx, recipe.ID, comp)
		changes = c
		return err
	})
	metrics.RecordReconciliation(changes.counts(), err)
	if err != nil {
		return nil, compositionError(err)
	}

	s.logger.Info("recipe created",
		"recipe_id", recipe.ID,
		"user_id", actor.ID,
		"tags", changes.TagsAdded,
		"ingredients", changes.LinesInserted,
	)

	return s.enricher.EnrichRecipe(ctx, actor.ID, recipe)
}

// Update replaces a recipe's fields and reconciles its composition.
// Only the author or an admin may update.
func (s *RecipeService) Update(ctx context.Context, actor *domain.User, recipeID string, req RecipeRequest) (*dto.Recipe, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(actor, authz.ObjectRecipe, authz.ActionUpdate, recipe.AuthorID); err != nil {
		return nil, err
	}
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	comp := req.Composition()
	if err := s.checkReferences(ctx, comp); err != nil {
		return nil, err
	}

	recipe.Name = req.Name
	recipe.Image = req.Image
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime
	recipe.Touch()

	var changes Changes
	err = s.store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.UpdateRecipe(ctx, recipe); err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}
		c, err := s.reconciler.Apply(ctx, tx, recipe.ID, comp)
		changes = c
		return err
	})
	metrics.RecordReconciliation(changes.counts(), err)
	if err != nil {
		return nil, compositionError(err)
	}

	s.logger.Info("recipe updated",
		"recipe_id", recipe.ID,
		"user_id", actor.ID,
		"writes", changes.Writes(),
	)

	return s.enricher.EnrichRecipe(ctx, actor.ID, recipe)
}

// Delete removes a recipe with all its associations.
func (s *RecipeService) Delete(ctx context.Context, actor *domain.User, recipeID string) error {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	if err := s.authz.Authorize(actor, authz.ObjectRecipe, authz.ActionDelete, recipe.AuthorID); err != nil {
		return err
	}

	if err := s.store.DeleteRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("recipe not found")
		}
		return fmt.Errorf("delete recipe: %w", err)
	}

	s.logger.Info("recipe deleted", "recipe_id", recipeID, "user_id", actor.ID)
	return nil
}

// Get returns a recipe as seen by viewerID, which may be empty.
func (s *RecipeService) Get(ctx context.Context, viewerID, recipeID string) (*dto.Recipe, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.enricher.EnrichRecipe(ctx, viewerID, recipe)
}

// List returns a page of recipes, newest first. Membership filters apply
// only when viewerID is set.
func (s *RecipeService) List(ctx context.Context, viewerID string, q RecipeQuery, params store.PageParams) (*store.Page[*dto.Recipe], error) {
	params.Validate()

	filter := store.RecipeFilter{
		AuthorID: q.AuthorID,
		TagSlugs: q.TagSlugs,
		ViewerID: viewerID,
	}
	if viewerID != "" {
		filter.OnlyFavorited = q.IsFavorited
		filter.OnlyInCart = q.IsInShoppingCart
	}

	page, err := s.store.ListRecipes(ctx, filter, params)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	recipes, err := s.enricher.EnrichRecipes(ctx, viewerID, page.Items)
	if err != nil {
		return nil, err
	}
	return store.NewPage(recipes, page.Count, params), nil
}

func (s *RecipeService) getRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	recipe, err := s.store.GetRecipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("recipe not found")
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return recipe, nil
}

// checkReferences rejects tag and ingredient IDs that do not exist.
func (s *RecipeService) checkReferences(ctx context.Context, comp domain.RecipeComposition) error {
	details := make(map[string]string)

	tagIDs := uniqueStrings(comp.TagIDs)
	if len(tagIDs) > 0 {
		tags, err := s.store.GetTagsByIDs(ctx, tagIDs)
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		found := make(map[string]bool, len(tags))
		for _, t := range tags {
			found[t.ID] = true
		}
		if missing := missingIDs(tagIDs, found); len(missing) > 0 {
			details["tags"] = "unknown tag IDs: " + strings.Join(missing, ", ")
		}
	}

	ingredientIDs := make([]string, len(comp.Ingredients))
	for i, ia := range comp.Ingredients {
		ingredientIDs[i] = ia.IngredientID
	}
	ingredientIDs = uniqueStrings(ingredientIDs)
	if len(ingredientIDs) > 0 {
		ingredients, err := s.store.GetIngredientsByIDs(ctx, ingredientIDs)
		if err != nil {
			return fmt.Errorf("load ingredients: %w", err)
		}
		found := make(map[string]bool, len(ingredients))
		for _, ing := range ingredients {
			found[ing.ID] = true
		}
		if missing := missingIDs(ingredientIDs, found); len(missing) > 0 {
			details["ingredients"] = "unknown ingredient IDs: " + strings.Join(missing, ", ")
		}
	}

	if len(details) > 0 {
		return domainerrors.ValidationWithDetails("validation failed", details)
	}
	return nil
}

// compositionError maps constraint failures that slipped past
// checkReferences, such as a tag deleted concurrently.
func compositionError(err error) error {
	if errors.Is(err, store.ErrInvalidInput) {
		return domainerrors.Validation("recipe references a missing tag or ingredient")
	}
	return err
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func missingIDs(ids []string, found map[string]bool) []string {
	var missing []string
	for _, v := range ids {
		if !found[v] {
			missing = append(missing, v)
		}
	}
	sort.Strings(missing)
	return missing
}
