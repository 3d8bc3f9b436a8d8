package movie

import (
	"context"
	"sort"
	"sync"

	"cinelog/internal/reviews/models"
	id "cinelog/pkg/domain"
	"cinelog/pkg/platform/sentinel"
)

// InMemory keeps the movie key space in a mutex-guarded map. It backs unit
// tests and database-less runs; it intentionally favors clarity over
// performance.
type InMemory struct {
	mu     sync.RWMutex
	movies map[id.MovieID]models.Movie
}

func NewInMemory() *InMemory {
	return &InMemory{movies: make(map[id.MovieID]models.Movie)}
}

func (s *InMemory) List(_ context.Context) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) FindByID(_ context.Context, movieID id.MovieID) (models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movies[movieID]
	if !ok {
		return models.Movie{}, sentinel.ErrNotFound
	}
	return m, nil
}

// CreateIfAbsent is the conditional write enforcing movie id uniqueness. The
// in-memory variant holds the lock across check and insert so concurrent
// creators see exactly one winner, mirroring the database's primary-key
// guarantee.
func (s *InMemory) CreateIfAbsent(_ context.Context, m models.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.movies[m.ID]; exists {
		return sentinel.ErrConflict
	}
	s.movies[m.ID] = m
	return nil
}

// UpdateMedia replaces the cast list and poster URL, leaving every other field
// untouched. Last writer wins.
func (s *InMemory) UpdateMedia(_ context.Context, movieID id.MovieID, cast []models.CastMember, posterURL string) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[movieID]
	if !ok {
		return models.Movie{}, sentinel.ErrNotFound
	}
	m.Cast = cast
	m.PosterURL = posterURL
	s.movies[movieID] = m
	return m, nil
}
