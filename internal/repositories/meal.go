package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-meal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-meal-tracker/internal/models"
)

// MealReadRepository handles meal read operations
type MealReadRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewMealReadRepository(db *sqlx.DB, timeout time.Duration) *MealReadRepository {
	return &MealReadRepository{db: db, timeout: timeout}
}

// GetByID returns the meal with the given id, or nil if none exists.
func (r *MealReadRepository) GetByID(ctx context.Context, mealID uuid.UUID) (*models.MealDB, error) {
	const query = `
		SELECT meal_id, user_id, name, calories, protein, carbs, fat, date, meal_type, created_at, updated_at
		FROM meals
		WHERE meal_id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var meal models.MealDB
	err := r.db.GetContext(ctx, &meal, query, mealID)

	// Log with query in single line
	logger.Log.Infow("meal read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mealID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &meal, nil
}

// ListByUserID returns all meals of one owner ordered by date descending.
// An owner with no meals yields an empty slice, not an error.
func (r *MealReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MealDB, error) {
	const query = `
		SELECT meal_id, user_id, name, calories, protein, carbs, fat, date, meal_type, created_at, updated_at
		FROM meals
		WHERE user_id = $1
		ORDER BY date DESC
	`

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	meals := []models.MealDB{}
	err := r.db.SelectContext(ctx, &meals, query, userID)

	// Log with query in single line
	logger.Log.Infow("meal list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(meals),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return meals, nil
}

// MealWriteRepository handles meal write operations
type MealWriteRepository struct {
	db       *sqlx.DB
	timeout  time.Duration
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMealWriteRepository(db *sqlx.DB, timeout time.Duration, txGetter func(ctx context.Context) *sqlx.Tx) *MealWriteRepository {
	return &MealWriteRepository{db: db, timeout: timeout, txGetter: txGetter}
}

func (r *MealWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new meal and returns the fully materialized row.
func (r *MealWriteRepository) Save(ctx context.Context, userID uuid.UUID, name string, calories, protein, carbs, fat float64, date time.Time, mealType string) (*models.MealDB, error) {
	const query = `
		INSERT INTO meals (meal_id, user_id, name, calories, protein, carbs, fat, date, meal_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING meal_id, user_id, name, calories, protein, carbs, fat, date, meal_type, created_at, updated_at
	`
	args := []any{uuid.New(), userID, name, calories, protein, carbs, fat, date, mealType}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var meal models.MealDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &meal, query, args...)

	// Log with query in single line
	logger.Log.Infow("meal insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Update replaces all mutable fields of a meal in one statement.
// The owner column is never touched. Returns nil if no such meal exists.
// Concurrent updates to the same row are last-writer-wins.
func (r *MealWriteRepository) Update(ctx context.Context, mealID uuid.UUID, name string, calories, protein, carbs, fat float64, date time.Time, mealType string) (*models.MealDB, error) {
	const query = `
		UPDATE meals
		SET name = $2, calories = $3, protein = $4, carbs = $5, fat = $6, date = $7, meal_type = $8, updated_at = NOW()
		WHERE meal_id = $1
		RETURNING meal_id, user_id, name, calories, protein, carbs, fat, date, meal_type, created_at, updated_at
	`
	args := []any{mealID, name, calories, protein, carbs, fat, date, mealType}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var meal models.MealDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &meal, query, args...)

	// Log with query in single line
	logger.Log.Infow("meal update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Delete removes a meal by id. Returns false if no such meal exists.
func (r *MealWriteRepository) Delete(ctx context.Context, mealID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM meals
		WHERE meal_id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.executor(ctx).ExecContext(ctx, query, mealID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow("meal delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mealID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
