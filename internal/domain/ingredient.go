package domain

import "time"

// MeasurementUnit is the unit an ingredient is measured in.
type MeasurementUnit string

// Supported measurement units.
const (
	UnitGram       MeasurementUnit = "г"
	UnitKilogram   MeasurementUnit = "кг"
	UnitMilliliter MeasurementUnit = "мл"
	UnitLiter      MeasurementUnit = "л"
	UnitTablespoon MeasurementUnit = "ст. л."
	UnitTeaspoon   MeasurementUnit = "ч. л."
	UnitJar        MeasurementUnit = "банка"
	UnitLoaf       MeasurementUnit = "батон"
	UnitBottle     MeasurementUnit = "бутылка"
	UnitSprig      MeasurementUnit = "веточка"
	UnitHandful    MeasurementUnit = "горсть"
	UnitSegment    MeasurementUnit = "долька"
	UnitStar       MeasurementUnit = "звездочка"
	UnitClove      MeasurementUnit = "зубчик"
	UnitDrop       MeasurementUnit = "капля"
	UnitPiece      MeasurementUnit = "кусок"
	UnitLeaf       MeasurementUnit = "лист"
	UnitBag        MeasurementUnit = "пакет"
	UnitSachet     MeasurementUnit = "пакетик"
	UnitPack       MeasurementUnit = "пачка"
	UnitSlab       MeasurementUnit = "пласт"
	UnitToTaste    MeasurementUnit = "по вкусу"
	UnitBunch      MeasurementUnit = "пучок"
	UnitGlass      MeasurementUnit = "стакан"
	UnitStalk      MeasurementUnit = "стебель"
	UnitPod        MeasurementUnit = "стручок"
	UnitCarcass    MeasurementUnit = "тушка"
	UnitPackage    MeasurementUnit = "упаковка"
	UnitCount      MeasurementUnit = "шт."
	UnitPinch      MeasurementUnit = "щепотка"
)

// MeasurementUnits lists every supported unit.
var MeasurementUnits = []MeasurementUnit{
	UnitGram, UnitKilogram, UnitMilliliter, UnitLiter, UnitTablespoon, UnitTeaspoon,
	UnitJar, UnitLoaf, UnitBottle, UnitSprig, UnitHandful, UnitSegment, UnitStar,
	UnitClove, UnitDrop, UnitPiece, UnitLeaf, UnitBag, UnitSachet, UnitPack, UnitSlab,
	UnitToTaste, UnitBunch, UnitGlass, UnitStalk, UnitPod, UnitCarcass, UnitPackage,
	UnitCount, UnitPinch,
}

// Valid reports whether u is a supported unit.
//
//nolint:gocyclo // Exhaustive switch over a closed enumeration.
func (u MeasurementUnit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitMilliliter, UnitLiter, UnitTablespoon, UnitTeaspoon,
		UnitJar, UnitLoaf, UnitBottle, UnitSprig, UnitHandful, UnitSegment, UnitStar,
		UnitClove, UnitDrop, UnitPiece, UnitLeaf, UnitBag, UnitSachet, UnitPack, UnitSlab,
		UnitToTaste, UnitBunch, UnitGlass, UnitStalk, UnitPod, UnitCarcass, UnitPackage,
		UnitCount, UnitPinch:
		return true
	default:
		return false
	}
}

// Ingredient is a catalog entry. The (Name, MeasurementUnit) pair is unique.
type Ingredient struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	MeasurementUnit MeasurementUnit `json:"measurement_unit"`
	CreatedAt       time.Time       `json:"created_at"`
}

// IngredientLine is one (recipe, ingredient, amount) row.
type IngredientLine struct {
	RecipeID     string    `json:"recipe_id"`
	IngredientID string    `json:"ingredient_id"`
	Amount       int       `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// IngredientAmount is a requested (ingredient, amount) pair.
type IngredientAmount struct {
	IngredientID string `json:"id"`
	Amount       int    `json:"amount"`
}

// RecipeIngredient is an ingredient line joined with its catalog entry.
type RecipeIngredient struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	MeasurementUnit MeasurementUnit `json:"measurement_unit"`
	Amount          int             `json:"amount"`
}
