// Package purchaselist lists purchases with the owning user joined in.
package purchaselist

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
	Purchases(ctx context.Context) ([]*models.Purchase, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List purchases
// @Description Returns all purchases with buyer name and email, newest first
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} models.Purchase
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} response.ErrorResponse "Not an administrator"
// @Router /api/admin/compras [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.purchaselist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	items, err := h.service.Purchases(r.Context())
	if err != nil {
		log.Error("failed to list purchases", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list purchases"))
		return
	}
	if items == nil {
		items = []*models.Purchase{}
	}

	render.JSON(w, r, items)
}
