// Package metriclist lists raw metric events for the admin dashboard.
package metriclist

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mentesana/landing-api/internal/http/response"
	"github.com/mentesana/landing-api/internal/lib/sl"
	"github.com/mentesana/landing-api/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	RecentEvents(ctx context.Context, limit int) ([]*models.MetricEvent, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List metric events
// @Description Returns up to 500 raw metric events, newest first
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Param limit query int false "Maximum rows, capped at 500"
// @Success 200 {array} models.MetricEvent
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} response.ErrorResponse "Not an administrator"
// @Router /api/admin/metricas [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.metriclist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.service.RecentEvents(r.Context(), limit)
	if err != nil {
		log.Error("failed to list metric events", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list metric events"))
		return
	}
	if events == nil {
		events = []*models.MetricEvent{}
	}

	render.JSON(w, r, events)
}
