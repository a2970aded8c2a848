package services

import (
	"github.com/sbilibin2017/gw-meal-tracker/internal/models"
)

// The aggregation engine. Pure functions over one owner's meals: no store
// access, no caching, recomputed on every call.

// GroupByType partitions meals into the four enumerated buckets.
// Every bucket is present even when empty so callers can render
// "no meals yet" per group.
func GroupByType(meals []models.MealDB) map[string][]models.MealDB {
	groups := make(map[string][]models.MealDB, len(models.MealTypes))
	for _, t := range models.MealTypes {
		groups[t] = []models.MealDB{}
	}
	for _, m := range meals {
		groups[m.MealType] = append(groups[m.MealType], m)
	}
	return groups
}

// Totals sums calories and macros across the given meals.
// The sum over an empty slice is all-zero.
func Totals(meals []models.MealDB) models.NutritionTotals {
	var t models.NutritionTotals
	for _, m := range meals {
		t.Add(m)
	}
	return t
}

// Summarize builds the full aggregated view: per-type groups with their own
// totals plus overall daily totals. Per-type totals sum to the daily totals
// exactly, field by field, since both are plain sums over the same meals.
func Summarize(meals []models.MealDB) models.DailySummary {
	grouped := GroupByType(meals)

	groups := make([]models.MealGroup, 0, len(models.MealTypes))
	for _, t := range models.MealTypes {
		groups = append(groups, models.MealGroup{
			MealType: t,
			Meals:    grouped[t],
			Totals:   Totals(grouped[t]),
		})
	}

	return models.DailySummary{
		Groups: groups,
		Totals: Totals(meals),
	}
}
