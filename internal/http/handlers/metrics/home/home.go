// Package home serves the landing-page headline counters.
package home

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mentesana/landing-api/internal/http/response"
	"github.com/mentesana/landing-api/internal/lib/sl"
	"github.com/mentesana/landing-api/internal/services/metrics"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	HomeSummary(ctx context.Context) (*metrics.HomeSummary, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Home page metrics
// @Description Returns the aggregated counters shown on the landing page
// @Tags Metrics
// @Produce  json
// @Success 200 {object} metrics.HomeSummary
// @Failure 500 {object} response.ErrorResponse "Storage failure"
// @Router /api/metricas/home [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.metrics.home"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	summary, err := h.service.HomeSummary(r.Context())
	if err != nil {
		log.Error("failed to build home summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build home summary"))
		return
	}

	render.JSON(w, r, summary)
}
