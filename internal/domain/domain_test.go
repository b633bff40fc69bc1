package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagColor_Valid(t *testing.T) {
	tests := []struct {
		color    TagColor
		expected bool
	}{
		{TagColorOrange, true},
		{TagColorGreen, true},
		{TagColorPurple, true},
		{"#e26c2d", false}, // case sensitive
		{"#FFFFFF", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.color.Valid())
		})
	}
}

func TestMeasurementUnits_AllValid(t *testing.T) {
	assert.Len(t, MeasurementUnits, 30)

	seen := make(map[MeasurementUnit]bool)
	for _, u := range MeasurementUnits {
		assert.True(t, u.Valid(), "unit %q should be valid", u)
		assert.False(t, seen[u], "unit %q listed twice", u)
		seen[u] = true
	}
}

func TestMeasurementUnit_Invalid(t *testing.T) {
	for _, u := range []MeasurementUnit{"", "kg", "Г", "ст.л."} {
		assert.False(t, u.Valid(), "unit %q should be invalid", u)
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleMember.Valid())
	assert.False(t, Role("root").Valid())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleMember}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}

func TestRecipe_IsAuthoredBy(t *testing.T) {
	r := &Recipe{AuthorID: "user-1"}
	assert.True(t, r.IsAuthoredBy("user-1"))
	assert.False(t, r.IsAuthoredBy("user-2"))
}

func TestShoppingItem_String(t *testing.T) {
	item := ShoppingItem{Name: "мука", Unit: UnitGram, Amount: 300}
	assert.Equal(t, "мука (г) - 300", item.String())
}

func TestMembershipKind_Valid(t *testing.T) {
	assert.True(t, MembershipFavorite.Valid())
	assert.True(t, MembershipShoppingCart.Valid())
	assert.False(t, MembershipKind("wishlist").Valid())
}
