// Package util provides text normalization helpers shared by services.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Matches spaces, underscores, and slashes (for replacement with dashes).
	wordSeparatorRe = regexp.MustCompile(`[\s_/]+`)
	// Matches non-alphanumeric characters (except dashes).
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)

	lower = cases.Lower(language.Und)
)

// NormalizeTagSlug converts user input to a canonical tag slug.
//
// Normalization rules:
//  1. Fold accents (NFKD, then drop combining marks)
//  2. Trim whitespace and lowercase
//  3. Replace spaces, underscores and slashes with dashes
//  4. Remove anything outside [a-z0-9-]
//  5. Collapse and trim dashes
//
// Examples:
//
//	"Early Breakfast" → "early-breakfast"
//	"crème_brûlée"    → "creme-brulee"
//	"🍳 Brunch!"       → "brunch"
//	"Завтрак"         → ""
func NormalizeTagSlug(input string) string {
	s := foldAccents(input)
	s = strings.ToLower(strings.TrimSpace(s))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeIngredientName trims, collapses inner whitespace, lowercases and
// composes to NFC so visually equal names compare equal in storage.
func NormalizeIngredientName(input string) string {
	s := strings.Join(strings.Fields(input), " ")
	return norm.NFC.String(lower.String(s))
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
