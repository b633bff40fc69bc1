package util

import "testing"

func TestNormalizeTagSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Basic normalization
		{"lowercase", "BREAKFAST", "breakfast"},
		{"spaces to dashes", "early breakfast", "early-breakfast"},
		{"underscores to dashes", "early_breakfast", "early-breakfast"},
		{"already normalized", "early-breakfast", "early-breakfast"},

		// Whitespace handling
		{"trim whitespace", "  lunch  ", "lunch"},
		{"multiple spaces", "late   supper", "late-supper"},
		{"tabs and spaces", "late\t supper", "late-supper"},

		// Special characters
		{"emoji removal", "🍳 Brunch!", "brunch"},
		{"slash", "sweet/savory", "sweet-savory"},
		{"apostrophe removal", "chef's", "chefs"},
		{"accent folding", "crème brûlée", "creme-brulee"},
		{"non latin dropped", "Завтрак", ""},

		// Dash handling
		{"multiple dashes", "late--supper", "late-supper"},
		{"leading dashes", "--lunch", "lunch"},
		{"trailing dashes", "lunch--", "lunch"},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeTagSlug(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeTagSlug(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIngredientName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase cyrillic", "Мука", "мука"},
		{"collapse whitespace", "  сахарная   пудра ", "сахарная пудра"},
		{"compose to NFC", "E\u0301clair", "\u00e9clair"},
		{"already normal", "соль", "соль"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeIngredientName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIngredientName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
