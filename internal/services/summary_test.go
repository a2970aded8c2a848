package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-meal-tracker/internal/models"
	"github.com/sbilibin2017/gw-meal-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func meal(mealType string, calories, protein, carbs, fat float64) models.MealDB {
	return models.MealDB{
		MealID:   uuid.New(),
		Name:     "meal",
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		MealType: mealType,
	}
}

func TestGroupByType_AllBucketsAlwaysPresent(t *testing.T) {
	groups := services.GroupByType(nil)

	assert.Len(t, groups, 4)
	for _, mealType := range models.MealTypes {
		bucket, ok := groups[mealType]
		assert.True(t, ok, "bucket %s missing", mealType)
		assert.NotNil(t, bucket)
		assert.Empty(t, bucket)
	}
}

func TestGroupByType_Partitions(t *testing.T) {
	meals := []models.MealDB{
		meal(models.Breakfast, 300, 10, 50, 5),
		meal(models.Lunch, 400, 20, 40, 10),
		meal(models.Breakfast, 200, 5, 30, 3),
		meal(models.Snack, 100, 2, 15, 4),
	}

	groups := services.GroupByType(meals)

	assert.Len(t, groups[models.Breakfast], 2)
	assert.Len(t, groups[models.Lunch], 1)
	assert.Len(t, groups[models.Dinner], 0)
	assert.Len(t, groups[models.Snack], 1)

	// every meal lands in exactly one bucket
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, len(meals), total)
}

func TestTotals(t *testing.T) {
	t.Run("empty set is all-zero", func(t *testing.T) {
		totals := services.Totals(nil)
		assert.Equal(t, models.NutritionTotals{}, totals)
	})

	t.Run("sums every field", func(t *testing.T) {
		meals := []models.MealDB{
			meal(models.Breakfast, 300, 10, 50, 5),
			meal(models.Lunch, 400, 20, 40, 10),
		}
		totals := services.Totals(meals)
		assert.Equal(t, models.NutritionTotals{Calories: 700, Protein: 30, Carbs: 90, Fat: 15}, totals)
	})
}

func TestSummarize_TwoBreakfastsOneLunch(t *testing.T) {
	meals := []models.MealDB{
		meal(models.Breakfast, 300, 10, 50, 5),
		meal(models.Breakfast, 200, 8, 30, 4),
		meal(models.Lunch, 400, 25, 45, 12),
	}

	summary := services.Summarize(meals)

	assert.Equal(t, 900.0, summary.Totals.Calories)

	byType := map[string]models.MealGroup{}
	for _, g := range summary.Groups {
		byType[g.MealType] = g
	}
	assert.Equal(t, 500.0, byType[models.Breakfast].Totals.Calories)
	assert.Equal(t, 400.0, byType[models.Lunch].Totals.Calories)
	assert.Equal(t, 0.0, byType[models.Dinner].Totals.Calories)
	assert.Equal(t, 0.0, byType[models.Snack].Totals.Calories)
}

func TestSummarize_PerTypeTotalsSumToDailyTotals(t *testing.T) {
	meals := []models.MealDB{
		meal(models.Breakfast, 310.5, 12.25, 48.75, 6.25),
		meal(models.Breakfast, 199.5, 7.75, 31.25, 3.75),
		meal(models.Lunch, 420, 25, 45, 12),
		meal(models.Dinner, 615.25, 33.5, 60.75, 20.5),
		meal(models.Snack, 90, 1.5, 12, 5.25),
		meal(models.Snack, 110, 3, 18, 2.75),
	}

	summary := services.Summarize(meals)

	var sum models.NutritionTotals
	for _, g := range summary.Groups {
		sum.Calories += g.Totals.Calories
		sum.Protein += g.Totals.Protein
		sum.Carbs += g.Totals.Carbs
		sum.Fat += g.Totals.Fat
	}

	assert.Equal(t, summary.Totals, sum)
}

func TestSummarize_Empty(t *testing.T) {
	summary := services.Summarize(nil)

	assert.Equal(t, models.NutritionTotals{}, summary.Totals)
	assert.Len(t, summary.Groups, 4)
	for _, g := range summary.Groups {
		assert.Empty(t, g.Meals)
		assert.Equal(t, models.NutritionTotals{}, g.Totals)
	}
}
