package service

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"math/big"

	"cinelog/internal/audit"
	"cinelog/internal/reviews/models"
	id "cinelog/pkg/domain"
	dErrors "cinelog/pkg/domainerrors"
	"cinelog/pkg/platform/sentinel"
)

type MovieStore interface {
	CreateIfAbsent(ctx context.Context, m models.Movie) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// fantasyIDSpan bounds the random id range. Fantasy movies live outside the
// catalog's assigned id space, so the generator is random rather than
// sequential; the conditional write catches the rare collision with either
// another fantasy movie or a catalog entry.
const fantasyIDSpan = 10_000_000

const maxIDAttempts = 5

// Service is the write path that synthesizes a new movie record under a
// generated identifier. Validation of the payload happens at the boundary;
// the service owns id generation and the uniqueness retry loop.
type Service struct {
	movies MovieStore
	logger *slog.Logger
	audit  AuditPublisher
	newID  func() (id.MovieID, error)
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

// WithIDGenerator overrides the random id source; tests use it to force
// collisions deterministically.
func WithIDGenerator(newID func() (id.MovieID, error)) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// New constructs a Service.
func New(movies MovieStore, opts ...Option) *Service {
	s := &Service{movies: movies, newID: randomMovieID}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// CreateFantasyMovie writes the movie under a fresh random id. On an id
// collision the write is rejected, a new id is drawn, and the write retried a
// bounded number of times.
func (s *Service) CreateFantasyMovie(ctx context.Context, movie models.Movie) (*models.Movie, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		movieID, err := s.newID()
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate movie id")
		}
		movie.ID = movieID

		err = s.movies.CreateIfAbsent(ctx, movie)
		if err == nil {
			if s.audit != nil {
				if err := s.audit.Emit(ctx, audit.Event{
					Action:  audit.ActionFantasyMovieCreate,
					Subject: movieID.String(),
				}); err != nil {
					s.logger.Warn("audit emit failed", "action", audit.ActionFantasyMovieCreate, "error", err)
				}
			}
			return &movie, nil
		}
		if !errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to store movie")
		}
	}
	return nil, dErrors.New(dErrors.CodeInternal, "could not allocate a unique movie id")
}

func randomMovieID() (id.MovieID, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(fantasyIDSpan-1))
	if err != nil {
		return 0, err
	}
	return id.MovieID(n.Int64() + 1), nil
}
