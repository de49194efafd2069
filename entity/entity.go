package entity

import (
	"errors"
	"fmt"
	"time"
)

// Category classifies a pantry item.
type Category string

const (
	CategoryLacteos  Category = "lacteos"
	CategoryProteina Category = "proteina"
	CategoryVerduras Category = "verduras"
	CategoryFrutas   Category = "frutas"
	CategoryGranos   Category = "granos"
	CategoryOtros    Category = "otros"
)

// Unit is the measurement unit an item quantity is expressed in.
type Unit string

const (
	UnitUnidades Unit = "unidades"
	UnitKg       Unit = "kg"
	UnitG        Unit = "g"
	UnitL        Unit = "l"
	UnitMl       Unit = "ml"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryLacteos, CategoryProteina, CategoryVerduras, CategoryFrutas, CategoryGranos, CategoryOtros:
		return true
	}
	return false
}

// Valid reports whether the unit is one of the known values.
func (u Unit) Valid() bool {
	switch u {
	case UnitUnidades, UnitKg, UnitG, UnitL, UnitMl:
		return true
	}
	return false
}

// Identity represents the email-keyed principal that owns pantry items.
// The ID is assigned by the store on creation and is empty before that.
type Identity struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
}

// Item represents a tracked food item.
type Item struct {
	ID             string     `json:"id,omitempty"`
	Name           string     `json:"name"`
	Category       Category   `json:"category"`
	Perishable     bool       `json:"perishable"`
	Quantity       float64    `json:"quantity"`
	Unit           Unit       `json:"unit"`
	EntryDate      time.Time  `json:"entryDate"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

// ValidationError marks an item or request that was rejected before any
// store or network interaction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks the item against the canonical schema. Perishable items
// must carry an expiration date and non-perishable items must not.
func (i *Item) Validate() error {
	if i.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if !i.Category.Valid() {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", i.Category)}
	}
	if i.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if !i.Unit.Valid() {
		return &ValidationError{Field: "unit", Reason: fmt.Sprintf("unknown unit %q", i.Unit)}
	}
	if i.EntryDate.IsZero() {
		return &ValidationError{Field: "entryDate", Reason: "is required"}
	}
	if i.Perishable && i.ExpirationDate == nil {
		return &ValidationError{Field: "expirationDate", Reason: "is required for perishable items"}
	}
	if !i.Perishable && i.ExpirationDate != nil {
		return &ValidationError{Field: "expirationDate", Reason: "must be absent for non-perishable items"}
	}
	return nil
}

// Recipe is one dish of a generated weekly plan.
type Recipe struct {
	Day         string   `json:"day"`
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// RecipeResult carries a generated weekly plan together with the rendered
// document. Document serializes to base64 on the wire.
type RecipeResult struct {
	Recipes  []Recipe `json:"recipes"`
	Document []byte   `json:"document"`
}
