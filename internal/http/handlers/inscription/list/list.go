// Package list returns recent inscriptions, newest first.
package list

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
	ListRecent(ctx context.Context, limit int) ([]*models.Inscription, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List recent inscriptions
// @Description Returns up to 100 inscriptions, newest first
// @Tags Inscriptions
// @Produce  json
// @Param limit query int false "Maximum rows, capped at 100"
// @Success 200 {array} models.Inscription
// @Failure 500 {object} response.ErrorResponse "Storage failure"
// @Router /api/inscripciones [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.inscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		log.Error("failed to list inscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list inscriptions"))
		return
	}
	if items == nil {
		items = []*models.Inscription{}
	}

	render.JSON(w, r, items)
}
