package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/service"
)

func (s *Server) registerIngredientRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchIngredients",
		Method:      http.MethodGet,
		Path:        "/api/ingredients",
		Summary:     "Search ingredients",
		Description: "Returns up to 50 ingredients whose name starts with the given prefix, ignoring case",
		Tags:        []string{"Ingredients"},
	}, s.handleSearchIngredients)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createIngredient",
		Method:        http.MethodPost,
		Path:          "/api/ingredients",
		Summary:       "Create ingredient",
		Description:   "Adds an ingredient to the catalog. Admin only.",
		Tags:          []string{"Ingredients"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateIngredient)

	huma.Register(s.api, huma.Operation{
		OperationID: "getIngredient",
		Method:      http.MethodGet,
		Path:        "/api/ingredients/{id}",
		Summary:     "Get ingredient",
		Description: "Returns an ingredient by ID",
		Tags:        []string{"Ingredients"},
	}, s.handleGetIngredient)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteIngredient",
		Method:        http.MethodDelete,
		Path:          "/api/ingredients/{id}",
		Summary:       "Delete ingredient",
		Description:   "Removes an ingredient no recipe uses. Admin only.",
		Tags:          []string{"Ingredients"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteIngredient)
}

// === DTOs ===

// SearchIngredientsInput contains the name prefix filter.
type SearchIngredientsInput struct {
	Name string `query:"name" maxLength:"200" doc:"Name prefix"`
}

// IngredientInput identifies an ingredient by path.
type IngredientInput struct {
	ID string `path:"id" doc:"Ingredient ID"`
}

// CreateIngredientRequest is the request body for creating an ingredient.
type CreateIngredientRequest struct {
	Name            string                 `json:"name" doc:"Ingredient name"`
	MeasurementUnit domain.MeasurementUnit `json:"measurement_unit" doc:"Unit the amount is measured in"`
}

// CreateIngredientInput wraps the create ingredient request for Huma.
type CreateIngredientInput struct {
	Body CreateIngredientRequest
}

// IngredientOutput wraps an ingredient for Huma.
type IngredientOutput struct {
	Body *domain.Ingredient
}

// ListIngredientsOutput wraps the ingredient list for Huma.
type ListIngredientsOutput struct {
	Body []*domain.Ingredient
}

// === Handlers ===

func (s *Server) handleSearchIngredients(ctx context.Context, input *SearchIngredientsInput) (*ListIngredientsOutput, error) {
	ingredients, err := s.services.Ingredients.Search(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if ingredients == nil {
		ingredients = []*domain.Ingredient{}
	}
	return &ListIngredientsOutput{Body: ingredients}, nil
}

func (s *Server) handleGetIngredient(ctx context.Context, input *IngredientInput) (*IngredientOutput, error) {
	ing, err := s.services.Ingredients.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &IngredientOutput{Body: ing}, nil
}

func (s *Server) handleCreateIngredient(ctx context.Context, input *CreateIngredientInput) (*IngredientOutput, error) {
	actor, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	ing, err := s.services.Ingredients.Create(ctx, actor, service.CreateIngredientRequest{
		Name:            input.Body.Name,
		MeasurementUnit: input.Body.MeasurementUnit,
	})
	if err != nil {
		return nil, err
	}
	return &IngredientOutput{Body: ing}, nil
}

func (s *Server) handleDeleteIngredient(ctx context.Context, input *IngredientInput) (*struct{}, error) {
	actor, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Ingredients.Delete(ctx, actor, input.ID); err != nil {
		return nil, err
	}
	return nil, nil
}
