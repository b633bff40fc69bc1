package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/dto"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

// MembershipService manages favorites and the shopping cart.
type MembershipService struct {
	store  store.Store
	logger *slog.Logger
}

// NewMembershipService creates a new membership service.
func NewMembershipService(store store.Store, logger *slog.Logger) *MembershipService {
	return &MembershipService{
		store:  store,
		logger: logger,
	}
}

// Add puts a recipe on the user's list of the given kind. Adding a recipe
// that is already there succeeds without a write.
func (s *MembershipService) Add(ctx context.Context, kind domain.MembershipKind, userID, recipeID string) (*dto.RecipeSummary, error) {
	if !kind.Valid() {
		return nil, domainerrors.Validationf("unknown list %q", kind)
	}

	recipe, err := s.store.GetRecipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("recipe not found")
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	err = s.store.AddMembership(ctx, &domain.Membership{
		Kind:      kind,
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		// Already present.
	case err != nil:
		return nil, fmt.Errorf("add %s: %w", kind, err)
	default:
		s.logger.Info("recipe added to list",
			"list", kind,
			"recipe_id", recipeID,
			"user_id", userID,
		)
	}

	summary := dto.NewRecipeSummary(recipe)
	return &summary, nil
}

// Remove takes a recipe off the user's list of the given kind.
func (s *MembershipService) Remove(ctx context.Context, kind domain.MembershipKind, userID, recipeID string) error {
	if !kind.Valid() {
		return domainerrors.Validationf("unknown list %q", kind)
	}

	if err := s.store.RemoveMembership(ctx, kind, userID, recipeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFoundf("recipe is not in your %s", listName(kind))
		}
		return fmt.Errorf("remove %s: %w", kind, err)
	}

	s.logger.Info("recipe removed from list",
		"list", kind,
		"recipe_id", recipeID,
		"user_id", userID,
	)
	return nil
}

func listName(kind domain.MembershipKind) string {
	if kind == domain.MembershipShoppingCart {
		return "shopping cart"
	}
	return "favorites"
}
