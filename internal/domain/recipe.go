package domain

import "time"

// Field limits for recipes.
const (
	RecipeNameMaxLength = 200
	RecipeTextMaxLength = 400
)

// Recipe is the persisted recipe row. Tags and ingredient lines live in
// their own association tables.
type Recipe struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"` // Opaque client-supplied value, typically a data URI.
	Text        string    `json:"text"`
	CookingTime int       `json:"cooking_time"` // Minutes, always positive.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt timestamp.
func (r *Recipe) Touch() {
	r.UpdatedAt = time.Now()
}

// IsAuthoredBy reports whether userID wrote the recipe.
func (r *Recipe) IsAuthoredBy(userID string) bool {
	return r.AuthorID == userID
}

// RecipeComposition is the desired association state of a recipe.
type RecipeComposition struct {
	TagIDs      []string
	Ingredients []IngredientAmount
}
