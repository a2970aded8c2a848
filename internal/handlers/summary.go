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

// SummaryTokener defines only the methods needed by this handler.
type SummaryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Summarizer defines the interface that the service must implement.
type Summarizer interface {
	Summary(ctx context.Context, userID uuid.UUID) (*models.DailySummary, error)
}

// NewSummaryHandler returns an HTTP handler for the aggregated meal view.
// @Summary Daily nutrition summary
// @Description Returns the authenticated user's meals grouped by meal type with per-group and daily totals. Every group is present even when empty.
// @Tags meals
// @Produce json
// @Success 200 {object} models.DailySummary "Grouped meals and totals"
// @Failure 401 {object} handlers.MealErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.MealErrorResponse "Store timeout"
// @Router /meals/summary [get]
// @Security BearerAuth
func NewSummaryHandler(svc Summarizer, tokenGetter SummaryTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		claims, ok := claimsFromRequest(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		summary, err := svc.Summary(ctx, claims.UserID)
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
		json.NewEncoder(w).Encode(summary)
	}
}
