package me

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/mentesana/landing-api/internal/http/middlewarectx"
	"github.com/mentesana/landing-api/internal/models"
)

func TestMeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	user := &models.User{
		ID:    "11111111-1111-1111-1111-111111111111",
		Name:  "María García",
		Email: "maria@gmail.com",
		Role:  models.RoleUser,
	}

	t.Run("returns the context user", func(t *testing.T) {
		handler := New(logger)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		ctx := context.WithValue(req.Context(), middlewarectx.UserKey, user)
		ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
		req = req.WithContext(ctx)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":{"id":"11111111-1111-1111-1111-111111111111","nombre":"María García","correo":"maria@gmail.com","rol":"user","fecha_registro":"0001-01-01T00:00:00Z"}}`, w.Body.String())
	})

	t.Run("401 without a context user", func(t *testing.T) {
		handler := New(logger)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"unauthorized"}`, w.Body.String())
	})
}
