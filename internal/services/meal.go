package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-meal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-meal-tracker/internal/models"
	"github.com/sbilibin2017/gw-meal-tracker/internal/validation"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrMealNotFound is returned when no meal with the requested id exists.
	ErrMealNotFound = errors.New("meal not found")
	// ErrForbidden is returned when the acting user is not the meal's owner.
	ErrForbidden = errors.New("meal belongs to another user")
)

// MealReader defines read operations for meals.
type MealReader interface {
	GetByID(ctx context.Context, mealID uuid.UUID) (*models.MealDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MealDB, error)
}

// MealWriter defines write operations for meals.
type MealWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name string, calories, protein, carbs, fat float64, date time.Time, mealType string) (*models.MealDB, error)
	Update(ctx context.Context, mealID uuid.UUID, name string, calories, protein, carbs, fat float64, date time.Time, mealType string) (*models.MealDB, error)
	Delete(ctx context.Context, mealID uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MealService is the meal ledger: per-user CRUD with ownership enforcement.
// Every mutating operation takes the acting user's id and refuses to touch
// meals owned by someone else.
type MealService struct {
	readRepo    MealReader
	writeRepo   MealWriter
	kafkaWriter KafkaWriter
}

// NewMealService creates a new MealService.
func NewMealService(readRepo MealReader, writeRepo MealWriter, kafkaWriter KafkaWriter) *MealService {
	return &MealService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a meal change event to Kafka.
// Publishing is synchronous and best-effort: a missing writer or a broker
// failure is logged and never fails the ledger operation.
func (s *MealService) publishEvent(ctx context.Context, operation string, meal *models.MealDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "operation", operation)
		return
	}

	event := models.MealEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		MealID:    meal.MealID.String(),
		UserID:    meal.UserID.String(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal meal event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.MealID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish meal event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("meal event published", "event_id", event.EventID, "operation", operation)
	}
}

// Add validates and persists a new meal owned by userID.
// A nil date defaults to "now". Returns the fully materialized meal.
func (s *MealService) Add(ctx context.Context, userID uuid.UUID, fields models.MealFields) (*models.MealDB, error) {
	if err := validation.Meal(fields); err != nil {
		logger.Log.Infow("meal rejected", "userID", userID, "err", err)
		return nil, err
	}

	date := time.Now()
	if fields.Date != nil {
		date = *fields.Date
	}

	meal, err := s.writeRepo.Save(ctx, userID, strings.TrimSpace(fields.Name),
		fields.Calories, fields.Protein, fields.Carbs, fields.Fat, date, fields.MealType)
	if err != nil {
		logger.Log.Errorw("failed to save meal", "userID", userID, "error", err)
		return nil, storeErr(err)
	}

	s.publishEvent(ctx, models.MealCreated, meal)

	return meal, nil
}

// List returns all meals of one owner, most recent first.
func (s *MealService) List(ctx context.Context, userID uuid.UUID) ([]models.MealDB, error) {
	meals, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list meals", "userID", userID, "error", err)
		return nil, storeErr(err)
	}
	return meals, nil
}

// Update replaces all mutable fields of a meal. The owner is never changed.
// Fails with ErrMealNotFound for an unknown id and ErrForbidden when the
// acting user is not the owner.
func (s *MealService) Update(ctx context.Context, userID, mealID uuid.UUID, fields models.MealFields) (*models.MealDB, error) {
	if err := validation.Meal(fields); err != nil {
		logger.Log.Infow("meal update rejected", "mealID", mealID, "err", err)
		return nil, err
	}

	existing, err := s.readRepo.GetByID(ctx, mealID)
	if err != nil {
		logger.Log.Errorw("failed to get meal", "mealID", mealID, "error", err)
		return nil, storeErr(err)
	}
	if existing == nil {
		return nil, ErrMealNotFound
	}
	if existing.UserID != userID {
		logger.Log.Warnw("ownership violation on update", "mealID", mealID, "owner", existing.UserID, "actor", userID)
		return nil, ErrForbidden
	}

	date := time.Now()
	if fields.Date != nil {
		date = *fields.Date
	}

	meal, err := s.writeRepo.Update(ctx, mealID, strings.TrimSpace(fields.Name),
		fields.Calories, fields.Protein, fields.Carbs, fields.Fat, date, fields.MealType)
	if err != nil {
		logger.Log.Errorw("failed to update meal", "mealID", mealID, "error", err)
		return nil, storeErr(err)
	}
	if meal == nil {
		// Deleted between the ownership check and the update.
		return nil, ErrMealNotFound
	}

	s.publishEvent(ctx, models.MealUpdated, meal)

	return meal, nil
}

// Delete removes a meal. Same not-found and ownership semantics as Update.
func (s *MealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	existing, err := s.readRepo.GetByID(ctx, mealID)
	if err != nil {
		logger.Log.Errorw("failed to get meal", "mealID", mealID, "error", err)
		return storeErr(err)
	}
	if existing == nil {
		return ErrMealNotFound
	}
	if existing.UserID != userID {
		logger.Log.Warnw("ownership violation on delete", "mealID", mealID, "owner", existing.UserID, "actor", userID)
		return ErrForbidden
	}

	deleted, err := s.writeRepo.Delete(ctx, mealID)
	if err != nil {
		logger.Log.Errorw("failed to delete meal", "mealID", mealID, "error", err)
		return storeErr(err)
	}
	if !deleted {
		return ErrMealNotFound
	}

	s.publishEvent(ctx, models.MealDeleted, existing)

	return nil
}

// Summary lists the owner's meals and aggregates them.
func (s *MealService) Summary(ctx context.Context, userID uuid.UUID) (*models.DailySummary, error) {
	meals, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(meals)
	return &summary, nil
}
