// Package id generates prefixed entity identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Entity prefixes.
const (
	PrefixUser       = "user"
	PrefixTag        = "tag"
	PrefixIngredient = "ingr"
	PrefixRecipe     = "recipe"
	PrefixToken      = "token"
)

// Generate creates a prefixed NanoID such as "recipe-V1StGXR8_Z5jdHi6B-myT".
// It fails only when the system entropy source does.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}
