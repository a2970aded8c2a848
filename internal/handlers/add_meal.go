package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-meal-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-meal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-meal-tracker/internal/models"
	"github.com/sbilibin2017/gw-meal-tracker/internal/services"
	"github.com/sbilibin2017/gw-meal-tracker/internal/validation"
)

// AddMealTokener defines only the methods needed by this handler.
type AddMealTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MealAdder defines the interface that the service must implement.
type MealAdder interface {
	Add(ctx context.Context, userID uuid.UUID, fields models.MealFields) (*models.MealDB, error)
}

// MealErrorResponse represents an error response for meal endpoints
// swagger:model MealErrorResponse
type MealErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Violated fields, present on validation failures
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// NewAddMealHandler returns an HTTP handler for creating a meal.
// @Summary Add a meal
// @Description Creates a meal owned by the authenticated user. Date defaults to now when omitted.
// @Tags meals
// @Accept json
// @Produce json
// @Param mealFields body models.MealFields true "Meal fields"
// @Success 201 {object} models.MealDB "Created meal"
// @Failure 400 {object} handlers.MealErrorResponse "Validation failure"
// @Failure 401 {object} handlers.MealErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.MealErrorResponse "Store timeout"
// @Router /meals [post]
// @Security BearerAuth
func NewAddMealHandler(svc MealAdder, tokenGetter AddMealTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var fields models.MealFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MealErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		meal, err := svc.Add(ctx, claims.UserID, fields)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MealErrorResponse{
					Error:  "Invalid meal",
					Fields: vErr.Fields,
				})
			case errors.Is(err, services.ErrStoreTimeout):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(MealErrorResponse{
					Error: "Temporary failure, try again",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MealErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(meal)
	}
}

// claimsTokener is what claimsFromRequest needs from any per-handler tokener.
type claimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsFromRequest resolves the acting user from the bearer token,
// writing a 401 response on failure.
func claimsFromRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, tokenGetter claimsTokener) (*jwt.Claims, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Infow("unauthorized request: missing or malformed token", "uri", r.RequestURI)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(MealErrorResponse{
			Error: "Unauthorized",
		})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Infow("unauthorized request: invalid token", "uri", r.RequestURI, "err", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(MealErrorResponse{
			Error: "Unauthorized",
		})
		return nil, false
	}

	return claims, true
}
