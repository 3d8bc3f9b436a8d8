package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinelog/internal/reviews/models"
	"cinelog/internal/transport/shared"
	id "cinelog/pkg/domain"
	dErrors "cinelog/pkg/domainerrors"
)

// Service defines the translation lookup the handler dispatches to.
type Service interface {
	GetTranslation(ctx context.Context, key models.Key, targetLang string) (string, error)
}

// Handler serves cached review translations.
type Handler struct {
	translation Service
	logger      *slog.Logger
}

func New(translation Service, logger *slog.Logger) *Handler {
	return &Handler{translation: translation, logger: logger}
}

// Register registers the translation route with the chi router. The path
// puts the review id before the movie id; this ordering is part of the
// public API and preserved as-is.
func (h *Handler) Register(r chi.Router) {
	r.Get("/reviews/{reviewId}/{movieId}/translation", h.handleGetTranslation)
}

func (h *Handler) handleGetTranslation(w http.ResponseWriter, r *http.Request) {
	reviewID, err := id.ParseReviewID(chi.URLParam(r, "reviewId"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	movieID, err := id.ParseMovieID(chi.URLParam(r, "movieId"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	key := models.Key{MovieID: movieID, ReviewID: reviewID}
	language := r.URL.Query().Get("language")

	translated, err := h.translation.GetTranslation(r.Context(), key, language)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.Error("translation failed",
				"movieId", movieID.String(), "reviewId", reviewID.String(), "error", err)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{
		"translatedText": translated,
	})
}
