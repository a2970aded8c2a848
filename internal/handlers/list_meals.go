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
)

// ListMealsTokener defines only the methods needed by this handler.
type ListMealsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MealLister defines the interface that the service must implement.
type MealLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.MealDB, error)
}

// NewListMealsHandler returns an HTTP handler for listing the user's meals.
// The list is always scoped by the token's subject; any userId query
// parameter is ignored.
// @Summary List meals
// @Description Returns all meals of the authenticated user, most recent first.
// @Tags meals
// @Produce json
// @Success 200 {array} models.MealDB "Meals ordered by date descending"
// @Failure 401 {object} handlers.MealErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.MealErrorResponse "Store timeout"
// @Router /meals [get]
// @Security BearerAuth
func NewListMealsHandler(svc MealLister, tokenGetter ListMealsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		meals, err := svc.List(ctx, claims.UserID)
		if err != nil {
			switch {
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
		json.NewEncoder(w).Encode(meals)
	}
}
