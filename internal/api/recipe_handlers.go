package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/foodgramapp/foodgram-server/internal/dto"
	"github.com/foodgramapp/foodgram-server/internal/service"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

func (s *Server) registerRecipeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listRecipes",
		Method:      http.MethodGet,
		Path:        "/api/recipes",
		Summary:     "List recipes",
		Description: "Returns a page of recipes, newest first. Favorite and cart filters apply only to authenticated users.",
		Tags:        []string{"Recipes"},
	}, s.handleListRecipes)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createRecipe",
		Method:        http.MethodPost,
		Path:          "/api/recipes",
		Summary:       "Create recipe",
		Description:   "Publishes a recipe authored by the current user",
		Tags:          []string{"Recipes"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateRecipe)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRecipe",
		Method:      http.MethodGet,
		Path:        "/api/recipes/{id}",
		Summary:     "Get recipe",
		Description: "Returns a recipe with its tags, ingredients and viewer flags",
		Tags:        []string{"Recipes"},
	}, s.handleGetRecipe)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateRecipe",
		Method:      http.MethodPatch,
		Path:        "/api/recipes/{id}",
		Summary:     "Update recipe",
		Description: "Replaces the recipe's fields and reconciles its tags and ingredients. Author or admin only.",
		Tags:        []string{"Recipes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateRecipe)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteRecipe",
		Method:        http.MethodDelete,
		Path:          "/api/recipes/{id}",
		Summary:       "Delete recipe",
		Description:   "Deletes a recipe with its tags, ingredients, favorites and cart entries. Author or admin only.",
		Tags:          []string{"Recipes"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteRecipe)
}

// === DTOs ===

// ListRecipesInput contains recipe list filters and pagination.
type ListRecipesInput struct {
	PaginationInput
	Author           string   `query:"author" doc:"Only recipes by this user ID"`
	Tags             []string `query:"tags,explode" doc:"Only recipes with any of these tag slugs"`
	IsFavorited      string   `query:"is_favorited" doc:"Only the viewer's favorites when 1"`
	IsInShoppingCart string   `query:"is_in_shopping_cart" doc:"Only recipes in the viewer's cart when 1"`
}

// RecipeIngredientRequest is one ingredient line of a recipe body.
type RecipeIngredientRequest struct {
	ID     string `json:"id" doc:"Ingredient ID"`
	Amount int    `json:"amount" doc:"Amount in the ingredient's unit (1-32000)"`
}

// RecipeRequest is the request body for creating or updating a recipe.
// Tags and ingredients are the complete desired composition.
type RecipeRequest struct {
	Tags        []string                  `json:"tags" maxItems:"100" doc:"Tag IDs"`
	Ingredients []RecipeIngredientRequest `json:"ingredients" maxItems:"100" doc:"Ingredient lines; a repeated ingredient keeps its last amount"`
	Name        string                    `json:"name" doc:"Recipe name"`
	Image       string                    `json:"image,omitempty" doc:"Image reference"`
	Text        string                    `json:"text" doc:"Description"`
	CookingTime int                       `json:"cooking_time" doc:"Cooking time in minutes (1-32000)"`
}

// CreateRecipeInput wraps the create recipe request for Huma.
type CreateRecipeInput struct {
	Body RecipeRequest
}

// UpdateRecipeInput wraps the update recipe request for Huma.
type UpdateRecipeInput struct {
	ID   string `path:"id" doc:"Recipe ID"`
	Body RecipeRequest
}

// RecipeInput identifies a recipe by path.
type RecipeInput struct {
	ID string `path:"id" doc:"Recipe ID"`
}

// RecipeOutput wraps a recipe for Huma.
type RecipeOutput struct {
	Body *dto.Recipe
}

// ListRecipesOutput wraps a page of recipes for Huma.
type ListRecipesOutput struct {
	Body *store.Page[*dto.Recipe]
}

// toService converts the request body into the service request.
func (r RecipeRequest) toService() service.RecipeRequest {
	req := service.RecipeRequest{
		Tags:        r.Tags,
		Ingredients: make([]service.IngredientAmountRequest, len(r.Ingredients)),
		Name:        r.Name,
		Image:       r.Image,
		Text:        r.Text,
		CookingTime: r.CookingTime,
	}
	for i, ing := range r.Ingredients {
		req.Ingredients[i] = service.IngredientAmountRequest{ID: ing.ID, Amount: ing.Amount}
	}
	return req
}

// === Handlers ===

func (s *Server) handleListRecipes(ctx context.Context, input *ListRecipesInput) (*ListRecipesOutput, error) {
	page, err := s.services.Recipes.List(ctx, viewerID(ctx), service.RecipeQuery{
		AuthorID:         input.Author,
		TagSlugs:         input.Tags,
		IsFavorited:      flag(input.IsFavorited),
		IsInShoppingCart: flag(input.IsInShoppingCart),
	}, input.PageParams())
	if err != nil {
		return nil, err
	}
	return &ListRecipesOutput{Body: page}, nil
}

func (s *Server) handleGetRecipe(ctx context.Context, input *RecipeInput) (*RecipeOutput, error) {
	recipe, err := s.services.Recipes.Get(ctx, viewerID(ctx), input.ID)
	if err != nil {
		return nil, err
	}
	return &RecipeOutput{Body: recipe}, nil
}

func (s *Server) handleCreateRecipe(ctx context.Context, input *CreateRecipeInput) (*RecipeOutput, error) {
	actor, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	recipe, err := s.services.Recipes.Create(ctx, actor, input.Body.toService())
	if err != nil {
		return nil, err
	}
	return &RecipeOutput{Body: recipe}, nil
}

func (s *Server) handleUpdateRecipe(ctx context.Context, input *UpdateRecipeInput) (*RecipeOutput, error) {
	actor, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	recipe, err := s.services.Recipes.Update(ctx, actor, input.ID, input.Body.toService())
	if err != nil {
		return nil, err
	}
	return &RecipeOutput{Body: recipe}, nil
}

func (s *Server) handleDeleteRecipe(ctx context.Context, input *RecipeInput) (*struct{}, error) {
	actor, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Recipes.Delete(ctx, actor, input.ID); err != nil {
		return nil, err
	}
	return nil, nil
}
