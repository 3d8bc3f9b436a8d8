package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cinelog/internal/audit"
	"cinelog/internal/reviews/metrics"
	"cinelog/internal/reviews/models"
	id "cinelog/pkg/domain"
	dErrors "cinelog/pkg/domainerrors"
	"cinelog/pkg/platform/sentinel"
)

type MovieStore interface {
	List(ctx context.Context) ([]models.Movie, error)
	FindByID(ctx context.Context, movieID id.MovieID) (models.Movie, error)
	UpdateMedia(ctx context.Context, movieID id.MovieID, cast []models.CastMember, posterURL string) (models.Movie, error)
}

type ReviewStore interface {
	ListByMovie(ctx context.Context, movieID id.MovieID) ([]models.Review, error)
	CreateIfAbsent(ctx context.Context, r models.Review) error
	UpdateContent(ctx context.Context, key models.Key, content string) (models.Review, error)
	Delete(ctx context.Context, key models.Key) (bool, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// maxIDAttempts bounds the generate-then-conditionally-write loop. Five
// rounds of a millisecond clock plus increment never collide in practice;
// hitting the bound means the store itself is misbehaving.
const maxIDAttempts = 5

// Service owns the movie/review key space: catalog reads, review CRUD, and
// media updates. Review ids are generated here and made unique by the store's
// conditional write, never by clock resolution alone.
type Service struct {
	movies  MovieStore
	reviews ReviewStore
	logger  *slog.Logger
	audit   AuditPublisher
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the wall clock; tests use it to pin review dates and
// generated ids.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service.
func New(movies MovieStore, reviews ReviewStore, opts ...Option) *Service {
	s := &Service{movies: movies, reviews: reviews, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// ListMovies returns every movie in the catalog, fantasy movies included.
func (s *Service) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to list movies")
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

// GetMovie returns the movie plus every review in its key space, ordered by
// review id ascending.
func (s *Service) GetMovie(ctx context.Context, movieID id.MovieID) (*models.MovieWithReviews, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "movie not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to load movie")
	}
	list, err := s.reviews.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to load reviews")
	}
	if list == nil {
		list = []models.Review{}
	}
	return &models.MovieWithReviews{Movie: movie, Reviews: list}, nil
}

// CreateReview stores a new review under a generated id. The candidate id is
// the current wall clock in milliseconds; on a conditional-write conflict the
// candidate is bumped and retried, so concurrent submissions for the same
// movie each end up with their own id.
func (s *Service) CreateReview(ctx context.Context, movieID id.MovieID, reviewerID, content string) (*models.Review, error) {
	now := s.now().UTC()
	review := models.Review{
		MovieID:    movieID,
		ReviewerID: reviewerID,
		ReviewDate: now.Format("2006-01-02"),
		Content:    content,
	}

	candidate := id.ReviewID(now.UnixMilli())
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		review.ReviewID = candidate
		err := s.reviews.CreateIfAbsent(ctx, review)
		if err == nil {
			s.incrementReviewsCreated()
			s.emitAudit(ctx, audit.Event{
				Action:  audit.ActionReviewCreated,
				Actor:   reviewerID,
				Subject: review.ReviewID.String(),
				Detail:  map[string]string{"movieId": movieID.String()},
			})
			return &review, nil
		}
		if !errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to store review")
		}
		candidate++
		if s.metrics != nil {
			s.metrics.IncrementIDRetries()
		}
	}
	return nil, dErrors.New(dErrors.CodeInternal, "could not allocate a unique review id")
}

// UpdateReview replaces the review text, leaving every other field untouched.
func (s *Service) UpdateReview(ctx context.Context, key models.Key, content string) (*models.Review, error) {
	updated, err := s.reviews.UpdateContent(ctx, key, content)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "review not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to update review")
	}
	s.emitAudit(ctx, audit.Event{
		Action:  audit.ActionReviewUpdated,
		Subject: key.ReviewID.String(),
		Detail:  map[string]string{"movieId": key.MovieID.String()},
	})
	return &updated, nil
}

// DeleteReview removes the review. The store treats a missing key as a no-op;
// the not-found answer here exists purely for caller clarity.
func (s *Service) DeleteReview(ctx context.Context, key models.Key) error {
	deleted, err := s.reviews.Delete(ctx, key)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, "failed to delete review")
	}
	if !deleted {
		return dErrors.New(dErrors.CodeNotFound, "review not found")
	}
	s.incrementReviewsDeleted()
	s.emitAudit(ctx, audit.Event{
		Action:  audit.ActionReviewDeleted,
		Subject: key.ReviewID.String(),
		Detail:  map[string]string{"movieId": key.MovieID.String()},
	})
	return nil
}

// UpdateMovieMedia replaces the cast list and poster URL of an existing movie.
func (s *Service) UpdateMovieMedia(ctx context.Context, movieID id.MovieID, cast []models.CastMember, posterURL string) (*models.Movie, error) {
	movie, err := s.movies.UpdateMedia(ctx, movieID, cast, posterURL)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "movie not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to update movie media")
	}
	s.emitAudit(ctx, audit.Event{
		Action:  audit.ActionMovieMediaUpdated,
		Subject: movieID.String(),
	})
	return &movie, nil
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.Warn("audit emit failed", "action", event.Action, "error", err)
	}
}

func (s *Service) incrementReviewsCreated() {
	if s.metrics != nil {
		s.metrics.IncrementReviewsCreated()
	}
}

func (s *Service) incrementReviewsDeleted() {
	if s.metrics != nil {
		s.metrics.IncrementReviewsDeleted()
	}
}
