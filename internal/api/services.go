package api

import "github.com/foodgramapp/foodgram-server/internal/service"

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Follows     *service.FollowService
	Tags        *service.TagService
	Ingredients *service.IngredientService
	Recipes     *service.RecipeService
	Memberships *service.MembershipService
	Shopping    *service.ShoppingListService
}
