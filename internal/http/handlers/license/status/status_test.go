package status

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/writing-assistant/internal/models"
)

// MockService реализует интерфейс status.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Check(email string) models.LicenseStatus {
	args := m.Called(email)
	return args.Get(0).(models.LicenseStatus)
}

func strPtr(s string) *string { return &s }

func TestStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "активная лицензия",
			query: "?email=user@example.com",
			setupMock: func(m *MockService) {
				m.On("Check", "user@example.com").
					Return(models.LicenseStatus{Active: true, Expiry: strPtr("2026-03-01")})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"active":true,"expiry":"2026-03-01"}`,
		},
		{
			name:  "записи нет — неактивна с null",
			query: "?email=nobody@example.com",
			setupMock: func(m *MockService) {
				m.On("Check", "nobody@example.com").
					Return(models.LicenseStatus{Active: false, Expiry: nil})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"active":false,"expiry":null}`,
		},
		{
			name:           "email не передан",
			query:          "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"email is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/license_status"+tt.query, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
