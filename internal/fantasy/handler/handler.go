package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinelog/internal/reviews/models"
	"cinelog/internal/transport/shared"
	dErrors "cinelog/pkg/domainerrors"
)

// Service defines the fantasy movie operation the handler dispatches to.
type Service interface {
	CreateFantasyMovie(ctx context.Context, movie models.Movie) (*models.Movie, error)
}

// Handler accepts user-submitted fantasy movies.
type Handler struct {
	fantasy Service
	logger  *slog.Logger
}

func New(fantasy Service, logger *slog.Logger) *Handler {
	return &Handler{fantasy: fantasy, logger: logger}
}

// Register registers the fantasy routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/fantasy/movies", h.handleCreateFantasyMovie)
}

func (h *Handler) handleCreateFantasyMovie(w http.ResponseWriter, r *http.Request) {
	var req CreateFantasyMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return
	}
	movie, err := req.Validate()
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	created, err := h.fantasy.CreateFantasyMovie(r.Context(), movie)
	if err != nil {
		h.logger.Error("create fantasy movie failed", "error", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "fantasy movie created successfully",
		"movieId": created.ID,
	})
}
