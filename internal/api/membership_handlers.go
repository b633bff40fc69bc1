package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/dto"
)

func (s *Server) registerMembershipRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "downloadShoppingCart",
		Method:      http.MethodGet,
		Path:        "/api/recipes/download_shopping_cart",
		Summary:     "Download shopping list",
		Description: "Sums the ingredients of every recipe in the cart and returns them as a plain text attachment",
		Tags:        []string{"Shopping cart"},
		Security:    []map[string][]string{{"bearer": {}}},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Shopping list, one \"<name> (<unit>) - <total>\" line per ingredient",
				Content: map[string]*huma.MediaType{
					"text/plain": {Schema: &huma.Schema{Type: huma.TypeString}},
				},
			},
		},
	}, s.handleDownloadShoppingCart)

	for _, kind := range []domain.MembershipKind{domain.MembershipFavorite, domain.MembershipShoppingCart} {
		tag := membershipTag(kind)

		huma.Register(s.api, huma.Operation{
			OperationID:   "add_" + string(kind),
			Method:        http.MethodPost,
			Path:          "/api/recipes/{id}/" + string(kind),
			Summary:       "Add to " + tag,
			Description:   "Adds the recipe to the current user's " + tag + ". Adding it twice succeeds without change.",
			Tags:          []string{tag},
			DefaultStatus: http.StatusCreated,
			Security:      []map[string][]string{{"bearer": {}}},
		}, s.addMembershipHandler(kind))

		huma.Register(s.api, huma.Operation{
			OperationID:   "remove_" + string(kind),
			Method:        http.MethodDelete,
			Path:          "/api/recipes/{id}/" + string(kind),
			Summary:       "Remove from " + tag,
			Description:   "Removes the recipe from the current user's " + tag,
			Tags:          []string{tag},
			DefaultStatus: http.StatusNoContent,
			Security:      []map[string][]string{{"bearer": {}}},
		}, s.removeMembershipHandler(kind))
	}
}

func membershipTag(kind domain.MembershipKind) string {
	if kind == domain.MembershipShoppingCart {
		return "Shopping cart"
	}
	return "Favorites"
}

// === DTOs ===

// RecipeSummaryOutput wraps a recipe card for Huma.
type RecipeSummaryOutput struct {
	Body *dto.RecipeSummary
}

// ShoppingListOutput is the plain text shopping list attachment.
type ShoppingListOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// === Handlers ===

func (s *Server) addMembershipHandler(kind domain.MembershipKind) func(context.Context, *RecipeInput) (*RecipeSummaryOutput, error) {
	return func(ctx context.Context, input *RecipeInput) (*RecipeSummaryOutput, error) {
		me, err := RequireUser(ctx)
		if err != nil {
			return nil, err
		}
		summary, err := s.services.Memberships.Add(ctx, kind, me.ID, input.ID)
		if err != nil {
			return nil, err
		}
		return &RecipeSummaryOutput{Body: summary}, nil
	}
}

func (s *Server) removeMembershipHandler(kind domain.MembershipKind) func(context.Context, *RecipeInput) (*struct{}, error) {
	return func(ctx context.Context, input *RecipeInput) (*struct{}, error) {
		me, err := RequireUser(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.services.Memberships.Remove(ctx, kind, me.ID, input.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func (s *Server) handleDownloadShoppingCart(ctx context.Context, _ *struct{}) (*ShoppingListOutput, error) {
	me, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.services.Shopping.Export(ctx, me.ID)
	if err != nil {
		return nil, err
	}
	return &ShoppingListOutput{
		ContentType:        "text/plain; charset=utf-8",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", list.Filename),
		Body:               list.Content,
	}, nil
}
