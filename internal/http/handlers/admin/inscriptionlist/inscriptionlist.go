// Package inscriptionlist lists every captured lead for the admin
// dashboard, without the public endpoint's row cap.
package inscriptionlist

import (
	"context"
	"log/slog"
	"net/http"

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
	ListAll(ctx context.Context) ([]*models.Inscription, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List all inscriptions
// @Description Returns every inscription, newest first
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} models.Inscription
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} response.ErrorResponse "Not an administrator"
// @Router /api/admin/inscripciones [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.inscriptionlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	items, err := h.service.ListAll(r.Context())
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
