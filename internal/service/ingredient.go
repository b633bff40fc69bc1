package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/authz"
	"github.com/foodgramapp/foodgram-server/internal/domain"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/id"
	"github.com/foodgramapp/foodgram-server/internal/store"
	"github.com/foodgramapp/foodgram-server/internal/util"
)

// IngredientService manages the ingredient catalog.
type IngredientService struct {
	store  store.Store
	authz  *authz.Enforcer
	logger *slog.Logger
}

// NewIngredientService creates a new ingredient service.
func NewIngredientService(store store.Store, enforcer *authz.Enforcer, logger *slog.Logger) *IngredientService {
	return &IngredientService{
		store:  store,
		authz:  enforcer,
		logger: logger,
	}
}

// CreateIngredientRequest describes a catalog entry.
type CreateIngredientRequest struct {
	Name            string                 `json:"name" validate:"required,max=200"`
	MeasurementUnit domain.MeasurementUnit `json:"measurement_unit" validate:"required,unit"`
}

// Search returns up to 50 ingredients whose name starts with prefix,
// ignoring case. An empty prefix lists the start of the catalog.
func (s *IngredientService) Search(ctx context.Context, prefix string) ([]*domain.Ingredient, error) {
	ingredients, err := s.store.SearchIngredients(ctx, util.NormalizeIngredientName(prefix))
	if err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	return ingredients, nil
}

// Get returns an ingredient by ID.
func (s *IngredientService) Get(ctx context.Context, ingredientID string) (*domain.Ingredient, error) {
	ing, err := s.store.GetIngredient(ctx, ingredientID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("ingredient not found")
	}
	return ing, err
}

// Create adds an ingredient. Names are stored normalized, so "Мука " and
// "мука" are the same entry for a given unit.
func (s *IngredientService) Create(ctx context.Context, actor *domain.User, req CreateIngredientRequest) (*domain.Ingredient, error) {
	if err := s.authz.Authorize(actor, authz.ObjectIngredient, authz.ActionCreate, ""); err != nil {
		return nil, err
	}
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	name := util.NormalizeIngredientName(req.Name)
	if name == "" {
		return nil, domainerrors.ValidationWithDetails("validation failed", map[string]string{"name": "is required"})
	}

	ingredientID, err := id.Generate(id.PrefixIngredient)
	if err != nil {
		return nil, fmt.Errorf("generate ingredient ID: %w", err)
	}

	ing := &domain.Ingredient{
		ID:              ingredientID,
		Name:            name,
		MeasurementUnit: req.MeasurementUnit,
		CreatedAt:       time.Now(),
	}
	if err := s.store.CreateIngredient(ctx, ing); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExistsf("ingredient %q in %q already exists", ing.Name, ing.MeasurementUnit)
		}
		return nil, fmt.Errorf("create ingredient: %w", err)
	}

	s.logger.Info("ingredient created",
		"ingredient_id", ing.ID,
		"name", ing.Name,
		"unit", ing.MeasurementUnit,
		"user_id", actor.ID,
	)
	return ing, nil
}

// Delete removes an unused ingredient.
func (s *IngredientService) Delete(ctx context.Context, actor *domain.User, ingredientID string) error {
	if err := s.authz.Authorize(actor, authz.ObjectIngredient, authz.ActionDelete, ""); err != nil {
		return err
	}

	if err := s.store.DeleteIngredient(ctx, ingredientID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domainerrors.NotFound("ingredient not found")
		case errors.Is(err, store.ErrInvalidInput):
			return domainerrors.Conflict("ingredient is used by recipes")
		}
		return fmt.Errorf("delete ingredient: %w", err)
	}

	s.logger.Info("ingredient deleted", "ingredient_id", ingredientID, "user_id", actor.ID)
	return nil
}
