package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-meal-tracker/internal/models"
	"github.com/sbilibin2017/gw-meal-tracker/internal/services"
	"github.com/sbilibin2017/gw-meal-tracker/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestUpdateMealHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener, userID, token := newTestJWT(t)

	mealID := uuid.New()
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fields := models.MealFields{
		Name:     "Chicken salad",
		Calories: 450,
		Protein:  35,
		Carbs:    20,
		Fat:      15,
		Date:     &date,
		MealType: models.Lunch,
	}
	updated := models.MealDB{
		MealID:   mealID,
		UserID:   userID,
		Name:     fields.Name,
		Calories: fields.Calories,
		Protein:  fields.Protein,
		Carbs:    fields.Carbs,
		Fat:      fields.Fat,
		Date:     date,
		MealType: fields.MealType,
	}

	tests := []struct {
		name         string
		mealID       string
		authHeader   string
		rawBody      string
		mockSetup    func(m *MockMealUpdater)
		expectedCode int
		checkBody    func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name:       "success",
			mealID:     mealID.String(),
			authHeader: "Bearer " + token,
			mockSetup: func(m *MockMealUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, mealID, fields).
					Return(&updated, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got models.MealDB
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, mealID, got.MealID)
				assert.Equal(t, "Chicken salad", got.Name)
			},
		},
		{
			name:         "malformed meal id",
			mealID:       "not-a-uuid",
			authHeader:   "Bearer " + token,
			expectedCode: http.StatusNotFound,
		},
		{
			name:       "meal not found",
			mealID:     mealID.String(),
			authHeader: "Bearer " + token,
			mockSetup: func(m *MockMealUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, mealID, fields).
					Return(nil, services.ErrMealNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:       "meal owned by another user",
			mealID:     mealID.String(),
			authHeader: "Bearer " + token,
			mockSetup: func(m *MockMealUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, mealID, fields).
					Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
			checkBody: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got MealErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, "Forbidden", got.Error)
			},
		},
		{
			name:       "validation failure reports fields",
			mealID:     mealID.String(),
			authHeader: "Bearer " + token,
			mockSetup: func(m *MockMealUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, mealID, fields).
					Return(nil, &validation.Error{Fields: []validation.FieldError{
						{Field: "name", Message: "must not be empty"},
						{Field: "mealType", Message: "must be one of breakfast, lunch, dinner, snack"},
					}})
			},
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got MealErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, "Invalid meal", got.Error)
				assert.Len(t, got.Fields, 2)
			},
		},
		{
			name:       "store timeout",
			mealID:     mealID.String(),
			authHeader: "Bearer " + token,
			mockSetup: func(m *MockMealUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, mealID, fields).
					Return(nil, services.ErrStoreTimeout)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name:       "internal error",
			mealID:     mealID.String(),
			authHeader: "Bearer " + token,
			mockSetup: func(m *MockMealUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, mealID, fields).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "invalid json",
			mealID:       mealID.String(),
			authHeader:   "Bearer " + token,
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing token",
			mealID:       mealID.String(),
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMealUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Put("/meals/{id}", NewUpdateMealHandler(mockSvc, tokener))

			body := tt.rawBody
			if body == "" {
				bodyBytes, _ := json.Marshal(fields)
				body = string(bodyBytes)
			}
			req := httptest.NewRequest(http.MethodPut, "/meals/"+tt.mealID, bytes.NewBufferString(body))
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr)
			}
		})
	}
}
