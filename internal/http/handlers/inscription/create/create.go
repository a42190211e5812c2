// Package create implements the public lead-capture endpoint.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mentesana/landing-api/internal/http/response"
	"github.com/mentesana/landing-api/internal/lib/sl"
	"github.com/mentesana/landing-api/internal/models"
)

type Request struct {
	Name    string `json:"nombre" validate:"required,min=2,max=100"`
	Email   string `json:"correo" validate:"required,email"`
	Phone   string `json:"telefono" validate:"omitempty,max=30"`
	Message string `json:"mensaje" validate:"omitempty,max=2000"`
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

type Service interface {
	Record(ctx context.Context, lead models.NewLead) (int, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Register an inscription
// @Description Stores a landing-page contact form submission
// @Tags Inscriptions
// @Accept  json
// @Produce  json
// @Param request body Request true "Contact form"
// @Success 200 {object} map[string]any "Stored inscription id"
// @Failure 400 {object} response.ErrorResponse "Invalid body"
// @Failure 429 {object} response.ErrorResponse "Too many requests"
// @Router /api/inscripciones [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.inscription.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.service.Record(r.Context(), models.NewLead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		log.Error("failed to record inscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register inscription"))
		return
	}

	log.Info("inscription recorded", slog.Int("id", id))
	render.JSON(w, r, map[string]any{
		"success": true,
		"id":      id,
		"message": "inscripción registrada",
	})
}
