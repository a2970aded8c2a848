package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-meal-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-meal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-meal-tracker/internal/models"
	"github.com/sbilibin2017/gw-meal-tracker/internal/services"
	"github.com/sbilibin2017/gw-meal-tracker/internal/validation"
)

// UpdateMealTokener defines only the methods needed by this handler.
type UpdateMealTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MealUpdater defines the interface that the service must implement.
type MealUpdater interface {
	Update(ctx context.Context, userID, mealID uuid.UUID, fields models.MealFields) (*models.MealDB, error)
}

// NewUpdateMealHandler returns an HTTP handler for updating a meal.
// @Summary Update a meal
// @Description Replaces all mutable fields of a meal owned by the authenticated user.
// @Tags meals
// @Accept json
// @Produce json
// @Param id path string true "Meal id"
// @Param mealFields body models.MealFields true "Replacement meal fields"
// @Success 200 {object} models.MealDB "Updated meal"
// @Failure 400 {object} handlers.MealErrorResponse "Validation failure"
// @Failure 401 {object} handlers.MealErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.MealErrorResponse "Meal belongs to another user"
// @Failure 404 {object} handlers.MealErrorResponse "Meal not found"
// @Failure 503 {object} handlers.MealErrorResponse "Store timeout"
// @Router /meals/{id} [put]
// @Security BearerAuth
func NewUpdateMealHandler(svc MealUpdater, tokenGetter UpdateMealTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		mealID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MealErrorResponse{
				Error: "Meal not found",
			})
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

		meal, err := svc.Update(ctx, claims.UserID, mealID, fields)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MealErrorResponse{
					Error:  "Invalid meal",
					Fields: vErr.Fields,
				})
			case errors.Is(err, services.ErrMealNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MealErrorResponse{
					Error: "Meal not found",
				})
			case errors.Is(err, services.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(MealErrorResponse{
					Error: "Forbidden",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(meal)
	}
}
