// Package ingresos serves the dashboard revenue card.
package ingresos

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mentesana/landing-api/internal/http/response"
	"github.com/mentesana/landing-api/internal/lib/sl"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	RevenueTotal(ctx context.Context) (string, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Total revenue
// @Description Returns the sum of all purchases formatted in soles
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Formatted total"
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} response.ErrorResponse "Not an administrator"
// @Router /api/admin/ingresos [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.ingresos"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	total, err := h.service.RevenueTotal(r.Context())
	if err != nil {
		log.Error("failed to sum purchases", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to sum purchases"))
		return
	}

	render.JSON(w, r, map[string]any{"total": total})
}
