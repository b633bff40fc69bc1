// Package store defines the persistence interface for the Foodgram server.
package store

//go:generate mockgen -source=interface.go -destination=../mocks/mock_store.go -package=mocks -exclude_interfaces=Store

import (
	"context"

	"github.com/foodgramapp/foodgram-server/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	// Lifecycle
	Close() error

	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	RegisterUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, params PageParams) (*Page[*domain.User], error)
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
	BumpTokenVersion(ctx context.Context, userID string) (int, error)

	// Tags
	CreateTag(ctx context.Context, tag *domain.Tag) error
	GetTag(ctx context.Context, id string) (*domain.Tag, error)
	GetTagsByIDs(ctx context.Context, ids []string) ([]*domain.Tag, error)
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	UpdateTag(ctx context.Context, tag *domain.Tag) error
	DeleteTag(ctx context.Context, id string) error

	// Ingredients
	CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error
	GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []string) ([]*domain.Ingredient, error)
	SearchIngredients(ctx context.Context, namePrefix string) ([]*domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, id string) error

	// Recipes
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, filter RecipeFilter, params PageParams) (*Page[*domain.Recipe], error)
	ListRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]*domain.Recipe, error)
	CountRecipesByAuthor(ctx context.Context, authorID string) (int, error)
	DeleteRecipe(ctx context.Context, id string) error
	GetRecipeTags(ctx context.Context, recipeID string) ([]*domain.Tag, error)
	GetRecipeIngredients(ctx context.Context, recipeID string) ([]domain.RecipeIngredient, error)

	// Favorites and shopping cart
	AddMembership(ctx context.Context, m *domain.Membership) error
	RemoveMembership(ctx context.Context, kind domain.MembershipKind, userID, recipeID string) error
	HasMembership(ctx context.Context, kind domain.MembershipKind, userID, recipeID string) (bool, error)
	GetCartLines(ctx context.Context, userID string) ([]domain.CartLine, error)

	// Follows
	CreateFollow(ctx context.Context, f *domain.Follow) error
	DeleteFollow(ctx context.Context, userID, authorID string) error
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
	ListFollowedAuthors(ctx context.Context, userID string, params PageParams) (*Page[*domain.User], error)

	// Transactions
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the write surface available inside a transaction.
// Every call made through a Tx commits or rolls back together.
type Tx interface {
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) error
	UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error
	TagLinks() Collection[domain.TagLink]
	IngredientLines() Collection[domain.IngredientLine]
}

// Collection is a typed repository over one association table.
// Bulk operations are issued as a single statement per call.
type Collection[T any] interface {
	Find(ctx context.Context, recipeID string) ([]T, error)
	BulkInsert(ctx context.Context, rows []T) error
	BulkUpdate(ctx context.Context, rows []T) error
	Delete(ctx context.Context, rows []T) error
}

// RecipeFilter narrows ListRecipes. Zero values disable a criterion.
type RecipeFilter struct {
	AuthorID string
	TagSlugs []string // Any-of match.

	// ViewerID scopes the membership flags below. Both flags are ignored
	// when ViewerID is empty.
	ViewerID      string
	OnlyFavorited bool
	OnlyInCart    bool
}
