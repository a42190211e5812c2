package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentesana/landing-api/internal/models"
	"github.com/mentesana/landing-api/internal/services/auth"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	args := m.Called(ctx, email, rawPassword)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	user := &models.User{
		ID:    "11111111-1111-1111-1111-111111111111",
		Name:  "María García",
		Email: "maria@gmail.com",
		Role:  models.RoleAdmin,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful login",
			requestBody: Request{
				Email:    "maria@gmail.com",
				Password: "secreto123",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "maria@gmail.com", "secreto123").
					Return("signed-token", user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"token":"signed-token","user":{"id":"11111111-1111-1111-1111-111111111111","nombre":"María García","correo":"maria@gmail.com","rol":"admin","fecha_registro":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name: "wrong password",
			requestBody: Request{
				Email:    "maria@gmail.com",
				Password: "incorrecta",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "maria@gmail.com", "incorrecta").
					Return("", nil, auth.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"error":"invalid credentials"}`,
		},
		{
			name: "unknown email is indistinguishable from wrong password",
			requestBody: Request{
				Email:    "nadie@gmail.com",
				Password: "secreto123",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "nadie@gmail.com", "secreto123").
					Return("", nil, auth.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"error":"invalid credentials"}`,
		},
		{
			name:           "malformed JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"invalid request body"}`,
		},
		{
			name: "service error",
			requestBody: Request{
				Email:    "maria@gmail.com",
				Password: "secreto123",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "maria@gmail.com", "secreto123").
					Return("", nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"failed to log in"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
