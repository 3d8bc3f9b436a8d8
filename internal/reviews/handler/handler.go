package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinelog/internal/reviews/models"
	"cinelog/internal/transport/shared"
	id "cinelog/pkg/domain"
	dErrors "cinelog/pkg/domainerrors"
)

// Service defines the review operations the handler dispatches to.
type Service interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID id.MovieID) (*models.MovieWithReviews, error)
	CreateReview(ctx context.Context, movieID id.MovieID, reviewerID, content string) (*models.Review, error)
	UpdateReview(ctx context.Context, key models.Key, content string) (*models.Review, error)
	DeleteReview(ctx context.Context, key models.Key) error
	UpdateMovieMedia(ctx context.Context, movieID id.MovieID, cast []models.CastMember, posterURL string) (*models.Movie, error)
}

// Handler is the thin HTTP layer over the review service. Path and payload
// parsing happen here; everything else is the service's business.
type Handler struct {
	reviews Service
	logger  *slog.Logger
}

func New(reviews Service, logger *slog.Logger) *Handler {
	return &Handler{reviews: reviews, logger: logger}
}

// Register registers the movie and review routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/movies", h.handleListMovies)
	r.Get("/movies/{movieId}", h.handleGetMovie)
	r.Post("/movies/reviews", h.handleCreateReview)
	r.Put("/movies/{movieId}/reviews/{reviewId}", h.handleUpdateReview)
	r.Delete("/movies/{movieId}/reviews/{reviewId}", h.handleDeleteReview)
	r.Put("/movies/{movieId}/media", h.handleUpdateMedia)
}

func (h *Handler) handleListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.reviews.ListMovies(r.Context())
	if err != nil {
		h.logger.Error("list movies failed", "error", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, movies)
}

func (h *Handler) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := id.ParseMovieID(chi.URLParam(r, "movieId"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	result, err := h.reviews.GetMovie(r.Context(), movieID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.Error("get movie failed", "movieId", movieID.String(), "error", err)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return
	}
	cmd, err := req.Validate()
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), cmd.MovieID, cmd.ReviewerID, cmd.Content)
	if err != nil {
		h.logger.Error("create review failed", "movieId", cmd.MovieID.String(), "error", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":  "review posted successfully",
		"reviewId": review.ReviewID,
		"review":   review,
	})
}

func (h *Handler) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	key, err := reviewKeyFromPath(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return
	}
	content, err := req.Validate()
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	review, err := h.reviews.UpdateReview(r.Context(), key, content)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.Error("update review failed", "reviewId", key.ReviewID.String(), "error", err)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"message":       "review updated successfully",
		"updatedReview": review,
	})
}

func (h *Handler) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	key, err := reviewKeyFromPath(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if err := h.reviews.DeleteReview(r.Context(), key); err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.Error("delete review failed", "reviewId", key.ReviewID.String(), "error", err)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "review deleted successfully",
	})
}

func (h *Handler) handleUpdateMedia(w http.ResponseWriter, r *http.Request) {
	movieID, err := id.ParseMovieID(chi.URLParam(r, "movieId"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req UpdateMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		shared.WriteError(w, err)
		return
	}

	movie, err := h.reviews.UpdateMovieMedia(r.Context(), movieID, req.Cast, req.PosterURL)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.Error("update movie media failed", "movieId", movieID.String(), "error", err)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "movie updated successfully",
		"movie":   movie,
	})
}

func reviewKeyFromPath(r *http.Request) (models.Key, error) {
	movieID, err := id.ParseMovieID(chi.URLParam(r, "movieId"))
	if err != nil {
		return models.Key{}, err
	}
	reviewID, err := id.ParseReviewID(chi.URLParam(r, "reviewId"))
	if err != nil {
		return models.Key{}, err
	}
	return models.Key{MovieID: movieID, ReviewID: reviewID}, nil
}
