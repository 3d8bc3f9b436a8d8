//go:build integration

package movie_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"cinelog/internal/reviews/models"
	"cinelog/internal/reviews/store/movie"
	id "cinelog/pkg/domain"
	"cinelog/pkg/platform/sentinel"
	"cinelog/pkg/testutil/containers"
)

type PostgresMovieSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *movie.PostgresStore
}

func TestPostgresMovieSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresMovieSuite))
}

func (s *PostgresMovieSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = movie.NewPostgres(s.postgres.DB, "movies")
}

func (s *PostgresMovieSuite) SetupTest() {
	s.Require().NoError(s.postgres.Truncate(context.Background(), "movies"))
}

func newTestMovie(movieID int64) models.Movie {
	return models.Movie{
		ID:                  id.MovieID(movieID),
		Title:               "Integration Movie",
		Overview:            "a movie that exists to be queried",
		Genres:              []string{"drama", "test"},
		ReleaseDate:         "2024-01-01",
		ProductionCompanies: []string{"Test Films"},
		Runtime:             101,
	}
}

func (s *PostgresMovieSuite) TestRoundTrip() {
	ctx := context.Background()
	m := newTestMovie(42)
	s.Require().NoError(s.store.CreateIfAbsent(ctx, m))

	found, err := s.store.FindByID(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(m.Title, found.Title)
	s.Equal(m.Genres, found.Genres)
	s.Equal(m.ProductionCompanies, found.ProductionCompanies)
	s.Equal(m.Runtime, found.Runtime)
}

func (s *PostgresMovieSuite) TestConflictLeavesWinnerIntact() {
	ctx := context.Background()
	m := newTestMovie(7)
	s.Require().NoError(s.store.CreateIfAbsent(ctx, m))

	dup := newTestMovie(7)
	dup.Title = "Intruder"
	s.Require().ErrorIs(s.store.CreateIfAbsent(ctx, dup), sentinel.ErrConflict)

	found, err := s.store.FindByID(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal("Integration Movie", found.Title)
}

func (s *PostgresMovieSuite) TestUpdateMedia() {
	ctx := context.Background()
	m := newTestMovie(9)
	s.Require().NoError(s.store.CreateIfAbsent(ctx, m))

	cast := []models.CastMember{{Name: "Ada", Role: "Lead", Description: "protagonist"}}
	updated, err := s.store.UpdateMedia(ctx, m.ID, cast, "https://img.example/p.png")
	s.Require().NoError(err)
	s.Equal(cast, updated.Cast)
	s.Equal("https://img.example/p.png", updated.PosterURL)
	s.Equal(m.Title, updated.Title)

	_, err = s.store.UpdateMedia(ctx, id.MovieID(404), nil, "")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresMovieSuite) TestListOrdering() {
	ctx := context.Background()
	for _, movieID := range []int64{30, 10, 20} {
		s.Require().NoError(s.store.CreateIfAbsent(ctx, newTestMovie(movieID)))
	}

	list, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal(id.MovieID(10), list[0].ID)
	s.Equal(id.MovieID(30), list[2].ID)
}
