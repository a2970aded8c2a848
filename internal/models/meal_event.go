package models

// Meal event operations published to Kafka.
const (
	MealCreated = "meal.created"
	MealUpdated = "meal.updated"
	MealDeleted = "meal.deleted"
)

// MealEvent represents a meal change event published to Kafka.
type MealEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the event
	Operation string `json:"operation"` // meal.created, meal.updated or meal.deleted
	MealID    string `json:"meal_id"`   // Identifier of the affected meal
	UserID    string `json:"user_id"`   // Identifier of the meal's owner
}
