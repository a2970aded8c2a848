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
	"github.com/sbilibin2017/gw-meal-tracker/internal/services"
)

// DeleteMealTokener defines only the methods needed by this handler.
type DeleteMealTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MealDeleter defines the interface that the service must implement.
type MealDeleter interface {
	Delete(ctx context.Context, userID, mealID uuid.UUID) error
}

// DeleteMealResponse represents a successful deletion response
// swagger:model DeleteMealResponse
type DeleteMealResponse struct {
	// Success message
	// default: Meal deleted successfully
	Message string `json:"message"`
}

// NewDeleteMealHandler returns an HTTP handler for deleting a meal.
// @Summary Delete a meal
// @Description Removes a meal owned by the authenticated user.
// @Tags meals
// @Produce json
// @Param id path string true "Meal id"
// @Success 200 {object} handlers.DeleteMealResponse "Meal deleted"
// @Failure 401 {object} handlers.MealErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.MealErrorResponse "Meal belongs to another user"
// @Failure 404 {object} handlers.MealErrorResponse "Meal not found"
// @Failure 503 {object} handlers.MealErrorResponse "Store timeout"
// @Router /meals/{id} [delete]
// @Security BearerAuth
func NewDeleteMealHandler(svc MealDeleter, tokenGetter DeleteMealTokener) http.HandlerFunc {
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

		if err := svc.Delete(ctx, claims.UserID, mealID); err != nil {
			switch {
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
		json.NewEncoder(w).Encode(DeleteMealResponse{
			Message: "Meal deleted successfully",
		})
	}
}
