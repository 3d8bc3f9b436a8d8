package review

import (
	"context"
	"sort"
	"sync"

	"cinelog/internal/reviews/models"
	id "cinelog/pkg/domain"
	"cinelog/pkg/platform/sentinel"
)

// InMemory keeps reviews in a flat map keyed by the composite (movie, review)
// key. Scans over a movie's partition are linear; fine for tests and
// database-less runs.
type InMemory struct {
	mu      sync.RWMutex
	reviews map[models.Key]models.Review
}

func NewInMemory() *InMemory {
	return &InMemory{reviews: make(map[models.Key]models.Review)}
}

func (s *InMemory) ListByMovie(_ context.Context, movieID id.MovieID) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Review
	for k, r := range s.reviews {
		if k.MovieID == movieID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReviewID < out[j].ReviewID })
	return out, nil
}

func (s *InMemory) FindByKey(_ context.Context, key models.Key) (models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviews[key]
	if !ok {
		return models.Review{}, sentinel.ErrNotFound
	}
	return r, nil
}

// CreateIfAbsent enforces composite-key uniqueness: a generated review id that
// collides with an existing one is rejected so the caller can regenerate,
// never silently overwritten.
func (s *InMemory) CreateIfAbsent(_ context.Context, r models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.reviews[r.Key()]; exists {
		return sentinel.ErrConflict
	}
	s.reviews[r.Key()] = r
	return nil
}

// UpdateContent replaces only the review text. The translation slot is left
// as-is; serving a stale cached translation after an edit matches the
// deployed contract.
func (s *InMemory) UpdateContent(_ context.Context, key models.Key, content string) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[key]
	if !ok {
		return models.Review{}, sentinel.ErrNotFound
	}
	r.Content = content
	s.reviews[key] = r
	return r, nil
}

// SetTranslation populates the single cache slot. Last writer wins.
func (s *InMemory) SetTranslation(_ context.Context, key models.Key, translated string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[key]
	if !ok {
		return sentinel.ErrNotFound
	}
	r.TranslatedContent = translated
	s.reviews[key] = r
	return nil
}

// Delete removes the record. Deleting an absent key is not an error at store
// level; the returned flag tells the boundary layer whether anything existed
// so it can still answer 404 for caller clarity.
func (s *InMemory) Delete(_ context.Context, key models.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed := s.reviews[key]
	delete(s.reviews, key)
	return existed, nil
}
