package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cinelog/internal/audit"
	"cinelog/internal/reviews/models"
	moviestore "cinelog/internal/reviews/store/movie"
	reviewstore "cinelog/internal/reviews/store/review"
	id "cinelog/pkg/domain"
	dErrors "cinelog/pkg/domainerrors"
)

type ReviewServiceSuite struct {
	suite.Suite
	movies   *moviestore.InMemory
	reviews  *reviewstore.InMemory
	recorder *audit.Recorder
	service  *Service
	ctx      context.Context
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceSuite))
}

func (s *ReviewServiceSuite) SetupTest() {
	s.movies = moviestore.NewInMemory()
	s.reviews = reviewstore.NewInMemory()
	s.recorder = audit.NewRecorder()
	s.service = New(s.movies, s.reviews, WithAuditPublisher(s.recorder))
	s.ctx = context.Background()
}

func (s *ReviewServiceSuite) seedMovie(movieID int64, title string) {
	s.Require().NoError(s.movies.CreateIfAbsent(s.ctx, models.Movie{
		ID:    id.MovieID(movieID),
		Title: title,
	}))
}

func (s *ReviewServiceSuite) TestListMovies() {
	s.Run("empty catalog returns empty slice, not nil", func() {
		movies, err := s.service.ListMovies(s.ctx)
		s.Require().NoError(err)
		s.NotNil(movies)
		s.Empty(movies)
	})

	s.Run("lists seeded movies", func() {
		s.seedMovie(1, "One")
		s.seedMovie(2, "Two")
		movies, err := s.service.ListMovies(s.ctx)
		s.Require().NoError(err)
		s.Len(movies, 2)
	})
}

func (s *ReviewServiceSuite) TestGetMovie() {
	s.Run("unknown movie returns not_found", func() {
		_, err := s.service.GetMovie(s.ctx, id.MovieID(12345))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("movie without reviews returns empty review slice", func() {
		s.seedMovie(10, "Quiet")
		got, err := s.service.GetMovie(s.ctx, id.MovieID(10))
		s.Require().NoError(err)
		s.Equal("Quiet", got.Movie.Title)
		s.NotNil(got.Reviews)
		s.Empty(got.Reviews)
	})

	s.Run("reviews come back ordered by review id", func() {
		s.seedMovie(11, "Busy")
		for _, rid := range []int64{300, 100, 200} {
			s.Require().NoError(s.reviews.CreateIfAbsent(s.ctx, models.Review{
				MovieID:  id.MovieID(11),
				ReviewID: id.ReviewID(rid),
				Content:  "c",
			}))
		}
		got, err := s.service.GetMovie(s.ctx, id.MovieID(11))
		s.Require().NoError(err)
		s.Require().Len(got.Reviews, 3)
		s.Equal(id.ReviewID(100), got.Reviews[0].ReviewID)
		s.Equal(id.ReviewID(300), got.Reviews[2].ReviewID)
	})
}

func (s *ReviewServiceSuite) TestCreateReview() {
	s.Run("assigns millisecond clock id and date", func() {
		fixed := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
		svc := New(s.movies, s.reviews, WithClock(func() time.Time { return fixed }))

		review, err := svc.CreateReview(s.ctx, id.MovieID(1), "critic@example.com", "superb")
		s.Require().NoError(err)
		s.Equal(id.ReviewID(fixed.UnixMilli()), review.ReviewID)
		s.Equal("2024-06-15", review.ReviewDate)
		s.Equal("critic@example.com", review.ReviewerID)
	})

	s.Run("does not require the movie to exist", func() {
		review, err := s.service.CreateReview(s.ctx, id.MovieID(987654), "x@example.com", "orphan")
		s.Require().NoError(err)
		s.NotZero(review.ReviewID)
	})

	s.Run("bumps the candidate id on collision", func() {
		fixed := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
		svc := New(s.movies, s.reviews, WithClock(func() time.Time { return fixed }))

		first, err := svc.CreateReview(s.ctx, id.MovieID(2), "a@example.com", "one")
		s.Require().NoError(err)
		second, err := svc.CreateReview(s.ctx, id.MovieID(2), "b@example.com", "two")
		s.Require().NoError(err)

		s.Equal(id.ReviewID(fixed.UnixMilli()), first.ReviewID)
		s.Equal(id.ReviewID(fixed.UnixMilli()+1), second.ReviewID)
	})

	s.Run("emits an audit event", func() {
		_, err := s.service.CreateReview(s.ctx, id.MovieID(3), "c@example.com", "noted")
		s.Require().NoError(err)

		events := s.recorder.Events()
		s.Require().NotEmpty(events)
		s.Equal(audit.ActionReviewCreated, events[len(events)-1].Action)
	})
}

func (s *ReviewServiceSuite) TestUpdateReview() {
	s.Run("updates content only", func() {
		created, err := s.service.CreateReview(s.ctx, id.MovieID(4), "d@example.com", "draft")
		s.Require().NoError(err)

		updated, err := s.service.UpdateReview(s.ctx, created.Key(), "final")
		s.Require().NoError(err)
		s.Equal("final", updated.Content)
		s.Equal(created.ReviewID, updated.ReviewID)
		s.Equal(created.ReviewDate, updated.ReviewDate)
	})

	s.Run("unknown key returns not_found", func() {
		_, err := s.service.UpdateReview(s.ctx, models.Key{MovieID: 1, ReviewID: 42}, "x")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ReviewServiceSuite) TestDeleteReview() {
	s.Run("deletes an existing review", func() {
		created, err := s.service.CreateReview(s.ctx, id.MovieID(5), "e@example.com", "bye")
		s.Require().NoError(err)

		s.Require().NoError(s.service.DeleteReview(s.ctx, created.Key()))

		err = s.service.DeleteReview(s.ctx, created.Key())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound), "second delete answers not_found")
	})

	s.Run("unknown key returns not_found", func() {
		err := s.service.DeleteReview(s.ctx, models.Key{MovieID: 8, ReviewID: 8})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ReviewServiceSuite) TestUpdateMovieMedia() {
	s.Run("replaces media on an existing movie", func() {
		s.seedMovie(20, "Poster Child")
		cast := []models.CastMember{{Name: "Grace", Role: "Lead"}}

		movie, err := s.service.UpdateMovieMedia(s.ctx, id.MovieID(20), cast, "https://img.example/p.png")
		s.Require().NoError(err)
		s.Equal(cast, movie.Cast)
		s.Equal("https://img.example/p.png", movie.PosterURL)
		s.Equal("Poster Child", movie.Title)
	})

	s.Run("unknown movie returns not_found", func() {
		_, err := s.service.UpdateMovieMedia(s.ctx, id.MovieID(404), nil, "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
