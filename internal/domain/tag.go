package domain

import "time"

// TagColor is one of the fixed palette entries a tag may use.
type TagColor string

// The palette is closed; new colors require a schema-level decision.
const (
	TagColorOrange TagColor = "#E26C2D"
	TagColorGreen  TagColor = "#49B64E"
	TagColorPurple TagColor = "#8775D2"
)

// TagColors lists the palette in display order.
var TagColors = []TagColor{TagColorOrange, TagColorGreen, TagColorPurple}

// Valid reports whether c belongs to the palette.
func (c TagColor) Valid() bool {
	switch c {
	case TagColorOrange, TagColorGreen, TagColorPurple:
		return true
	default:
		return false
	}
}

// Tag categorizes recipes. Name, color and slug are each unique.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     TagColor  `json:"color"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt timestamp.
func (t *Tag) Touch() {
	t.UpdatedAt = time.Now()
}

// TagLink associates a recipe with a tag. The pair is unique.
type TagLink struct {
	RecipeID  string    `json:"recipe_id"`
	TagID     string    `json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
