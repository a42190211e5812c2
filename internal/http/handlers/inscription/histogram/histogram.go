// Package histogram serves the six-month inscription chart data.
package histogram

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
	MonthlyHistogram(ctx context.Context) (*metrics.Histogram, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Inscription histogram
// @Description Returns inscription counts per month for the last six months
// @Tags Inscriptions
// @Produce  json
// @Success 200 {object} metrics.Histogram
// @Failure 500 {object} response.ErrorResponse "Storage failure"
// @Router /api/inscripciones/ultimos6meses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.inscription.histogram"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	hist, err := h.service.MonthlyHistogram(r.Context())
	if err != nil {
		log.Error("failed to build histogram", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build histogram"))
		return
	}

	render.JSON(w, r, hist)
}
