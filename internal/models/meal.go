package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal type values. The enumeration is closed: anything else is rejected
// at the boundary before it reaches the store.
const (
	Breakfast = "breakfast"
	Lunch     = "lunch"
	Dinner    = "dinner"
	Snack     = "snack"
)

// MealTypes lists the enumerated meal types in display order.
var MealTypes = []string{Breakfast, Lunch, Dinner, Snack}

// IsValidMealType reports whether s is one of the enumerated meal types.
func IsValidMealType(s string) bool {
	switch s {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// MealDB represents a meal row in the database
type MealDB struct {
	MealID    uuid.UUID `json:"meal_id" db:"meal_id"`       // Unique meal identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the meal's owner, immutable
	Name      string    `json:"name" db:"name"`             // Meal name, non-empty, max 100 chars
	Calories  float64   `json:"calories" db:"calories"`     // Calories, kcal, >= 0
	Protein   float64   `json:"protein" db:"protein"`       // Protein, grams, >= 0
	Carbs     float64   `json:"carbs" db:"carbs"`           // Carbohydrates, grams, >= 0
	Fat       float64   `json:"fat" db:"fat"`               // Fat, grams, >= 0
	Date      time.Time `json:"date" db:"date"`             // Date the meal is attributed to
	MealType  string    `json:"meal_type" db:"meal_type"`   // One of breakfast, lunch, dinner, snack
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the meal was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last meal update
}

// MealFields carries the caller-supplied mutable fields of a meal.
// Used by add (all fields) and update (full replacement).
type MealFields struct {
	Name     string     `json:"name"`
	Calories float64    `json:"calories"`
	Protein  float64    `json:"protein"`
	Carbs    float64    `json:"carbs"`
	Fat      float64    `json:"fat"`
	Date     *time.Time `json:"date,omitempty"` // nil defaults to "now"
	MealType string     `json:"meal_type"`
}
