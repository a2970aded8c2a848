package models

// NutritionTotals holds summed nutrient values over a set of meals.
// The zero value is the correct total for an empty set.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add accumulates a meal's nutrient values into the totals.
func (t *NutritionTotals) Add(m MealDB) {
	t.Calories += m.Calories
	t.Protein += m.Protein
	t.Carbs += m.Carbs
	t.Fat += m.Fat
}

// MealGroup is one meal-type bucket with its own totals.
// Meals is never nil: an empty bucket is an empty slice.
type MealGroup struct {
	MealType string          `json:"meal_type"`
	Meals    []MealDB        `json:"meals"`
	Totals   NutritionTotals `json:"totals"`
}

// DailySummary is the aggregated view over one owner's meals:
// per-type groups plus overall daily totals.
type DailySummary struct {
	Groups []MealGroup     `json:"groups"`
	Totals NutritionTotals `json:"totals"`
}
