package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"

	"cinelog/internal/audit"
	"cinelog/internal/reviews/models"
	"cinelog/internal/translation/metrics"
	dErrors "cinelog/pkg/domainerrors"
	"cinelog/pkg/platform/sentinel"
)

// ReviewStore is the slice of the review key space the cache needs: reading a
// review and writing its single translation slot.
type ReviewStore interface {
	FindByKey(ctx context.Context, key models.Key) (models.Review, error)
	SetTranslation(ctx context.Context, key models.Key, translated string) error
}

// Translator is the external translation backend.
type Translator interface {
	Translate(ctx context.Context, sourceLang, targetLang, text string) (string, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service implements the cache-aside read path over the review's translation
// slot. The slot is language-unaware: once populated it is served for every
// target language until the review is rewritten. Per-language keying would be
// the obvious fix, and would silently change what existing callers observe,
// so the single slot stays.
type Service struct {
	reviews       ReviewStore
	translator    Translator
	sourceLang    string
	defaultTarget string
	logger        *slog.Logger
	audit         AuditPublisher
	metrics       *metrics.Metrics
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

// New constructs a Service. sourceLang is fixed for every backend call;
// defaultTarget is used when the caller omits a language.
func New(reviews ReviewStore, translator Translator, sourceLang, defaultTarget string, opts ...Option) *Service {
	s := &Service{
		reviews:       reviews,
		translator:    translator,
		sourceLang:    sourceLang,
		defaultTarget: defaultTarget,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// GetTranslation returns the cached translation when the slot is populated,
// otherwise translates, fills the slot, and returns the fresh result. A
// backend failure leaves the slot untouched. Concurrent first requests may
// each call the backend; the last write wins and both callers get a correct
// translation for their own call.
func (s *Service) GetTranslation(ctx context.Context, key models.Key, targetLang string) (string, error) {
	if targetLang == "" {
		targetLang = s.defaultTarget
	}

	review, err := s.reviews.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeNotFound, "review not found")
		}
		return "", dErrors.Wrap(err, dErrors.CodeUpstream, "failed to load review")
	}

	if review.TranslatedContent != "" {
		s.incrementHits()
		return review.TranslatedContent, nil
	}
	s.incrementMisses()

	translated, err := s.translator.Translate(ctx, s.sourceLang, targetLang, review.Content)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncrementUpstreamErrors()
		}
		return "", dErrors.Wrap(err, dErrors.CodeUpstream, "translation backend failed")
	}

	if err := s.reviews.SetTranslation(ctx, key, translated); err != nil {
		// The review may have been deleted between read and write. The caller
		// still gets the translation it asked for; only the cache fill is lost.
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.Warn("translation cache fill failed",
				"movieId", key.MovieID.String(), "reviewId", key.ReviewID.String(), "error", err)
		}
		return translated, nil
	}

	if s.audit != nil {
		if err := s.audit.Emit(ctx, audit.Event{
			Action:  audit.ActionTranslationCached,
			Subject: key.ReviewID.String(),
			Detail:  map[string]string{"movieId": key.MovieID.String(), "language": targetLang},
		}); err != nil {
			s.logger.Warn("audit emit failed", "action", audit.ActionTranslationCached, "error", err)
		}
	}
	return translated, nil
}

func (s *Service) incrementHits() {
	if s.metrics != nil {
		s.metrics.IncrementCacheHits()
	}
}

func (s *Service) incrementMisses() {
	if s.metrics != nil {
		s.metrics.IncrementCacheMisses()
	}
}
