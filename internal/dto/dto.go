// Package dto provides the client-facing read models returned by the API.
//
// DTOs flatten a recipe's associations (author, tags, ingredient lines) and
// add viewer-relative flags so a client can render a card from one response.
// Viewer flags are always JSON booleans; anonymous viewers get false.
package dto

import "github.com/foodgramapp/foodgram-server/internal/domain"

// User is the public profile of an account.
type User struct {
	Email        string `json:"email"`
	ID           string `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"` // Whether the viewer follows this user.
}

// NewUser builds the public profile without viewer context.
func NewUser(u *domain.User) User {
	return User{
		Email:     u.Email,
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// RecipeTag is a tag as embedded in a recipe representation.
type RecipeTag struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Color domain.TagColor `json:"color"`
	Slug  string          `json:"slug"`
}

// NewRecipeTag converts a domain tag.
func NewRecipeTag(t *domain.Tag) RecipeTag {
	return RecipeTag{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

// Recipe is the full recipe representation.
type Recipe struct {
	ID               string                    `json:"id"`
	Tags             []RecipeTag               `json:"tags"`
	Author           User                      `json:"author"`
	Ingredients      []domain.RecipeIngredient `json:"ingredients"`
	IsFavorited      bool                      `json:"is_favorited"`
	IsInShoppingCart bool                      `json:"is_in_shopping_cart"`
	Name             string                    `json:"name"`
	Image            string                    `json:"image"`
	Text             string                    `json:"text"`
	CookingTime      int                       `json:"cooking_time"`
}

// RecipeSummary is the short card used in favorites, cart and subscription lists.
type RecipeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// NewRecipeSummary converts a domain recipe.
func NewRecipeSummary(r *domain.Recipe) RecipeSummary {
	return RecipeSummary{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

// Subscription is a followed author with a preview of their recipes.
type Subscription struct {
	User
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int             `json:"recipes_count"`
}
