package domain

import (
	"fmt"
	"time"
)

// MembershipKind distinguishes the per-user recipe lists.
type MembershipKind string

const (
	// MembershipFavorite marks a recipe as a user's favorite.
	MembershipFavorite MembershipKind = "favorite"
	// MembershipShoppingCart places a recipe in the user's shopping cart.
	MembershipShoppingCart MembershipKind = "shopping_cart"
)

// Valid reports whether k is a known membership kind.
func (k MembershipKind) Valid() bool {
	return k == MembershipFavorite || k == MembershipShoppingCart
}

// Membership is a (user, recipe) row in a favorites or cart list.
type Membership struct {
	Kind      MembershipKind `json:"kind"`
	UserID    string         `json:"user_id"`
	RecipeID  string         `json:"recipe_id"`
	CreatedAt time.Time      `json:"created_at"`
}

// CartLine is a single ingredient line reached through a user's cart.
type CartLine struct {
	RecipeID     string
	IngredientID string
	Name         string
	Unit         MeasurementUnit
	Amount       int
}

// ShoppingItem is an aggregated total for one ingredient.
type ShoppingItem struct {
	IngredientID string          `json:"id"`
	Name         string          `json:"name"`
	Unit         MeasurementUnit `json:"measurement_unit"`
	Amount       int             `json:"amount"`
}

// String renders the item as an export line without the trailing newline.
func (i ShoppingItem) String() string {
	return fmt.Sprintf("%s (%s) - %d", i.Name, i.Unit, i.Amount)
}
