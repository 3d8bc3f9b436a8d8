package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinelog/internal/reviews/models"
	"cinelog/internal/reviews/service"
	"cinelog/internal/reviews/store"
	moviestore "cinelog/internal/reviews/store/movie"
	reviewstore "cinelog/internal/reviews/store/review"
	"cinelog/pkg/testutil"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	movies := moviestore.NewInMemory()
	reviews := reviewstore.NewInMemory()
	store.SeedCatalog(movies, reviews)

	svc := service.New(movies, reviews)
	r := chi.NewRouter()
	New(svc, slog.Default()).Register(r)
	return r
}

func TestListMovies(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/movies"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	movies := testutil.UnmarshalResponse[[]models.Movie](t, rr)
	require.Len(t, *movies, 2)
	assert.Equal(t, int64(572802), (*movies)[0].ID.Int64())
	assert.Equal(t, int64(848326), (*movies)[1].ID.Int64())
}

func TestGetMovie(t *testing.T) {
	router := newRouter(t)

	t.Run("returns movie with its reviews", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/movies/848326"))
		testutil.AssertStatus(t, rr, http.StatusOK)

		got := testutil.UnmarshalResponse[models.MovieWithReviews](t, rr)
		assert.Equal(t, int64(848326), got.Movie.ID.Int64())
		assert.NotEmpty(t, got.Reviews)
	})

	t.Run("unknown movie answers 404", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/movies/999999"))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})

	t.Run("non-numeric id answers 400", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/movies/abc"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")
	})
}

func TestCreateReview(t *testing.T) {
	router := newRouter(t)

	t.Run("creates a review and returns its id", func(t *testing.T) {
		payload := map[string]any{
			"movieId":    848326,
			"reviewerId": "critic@example.com",
			"content":    "a thrilling watch",
		}
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/movies/reviews", payload))
		testutil.AssertStatus(t, rr, http.StatusCreated)
		testutil.AssertJSONHasKey(t, rr, "reviewId")
		testutil.AssertJSONHasKey(t, rr, "review")
	})

	t.Run("accepts a numeric string movie id", func(t *testing.T) {
		payload := map[string]any{
			"movieId":    "572802",
			"reviewerId": "critic@example.com",
			"content":    "fine",
		}
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/movies/reviews", payload))
		testutil.AssertStatus(t, rr, http.StatusCreated)
	})

	t.Run("reports every invalid field at once", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/movies/reviews", map[string]any{}))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")

		resp := testutil.UnmarshalResponse[map[string]any](t, rr)
		fields, ok := (*resp)["fields"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "movieId")
		assert.Contains(t, fields, "reviewerId")
		assert.Contains(t, fields, "content")
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/movies/reviews", "{not json"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")
	})
}

func TestUpdateReview(t *testing.T) {
	router := newRouter(t)

	t.Run("updates an existing review", func(t *testing.T) {
		payload := map[string]any{"content": "revised opinion"}
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut, "/movies/848326/reviews/1", payload))
		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertJSONHasKey(t, rr, "updatedReview")
	})

	t.Run("unknown review answers 404", func(t *testing.T) {
		payload := map[string]any{"content": "ghost"}
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut, "/movies/848326/reviews/424242", payload))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})

	t.Run("missing content answers 400", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut, "/movies/848326/reviews/1", map[string]any{}))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")
	})
}

func TestDeleteReview(t *testing.T) {
	router := newRouter(t)

	t.Run("deletes and then answers 404 for the same key", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/movies/848326/reviews/1"))
		testutil.AssertStatus(t, rr, http.StatusOK)

		rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/movies/848326/reviews/1"))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})
}

func TestUpdateMovieMedia(t *testing.T) {
	router := newRouter(t)

	t.Run("replaces cast and poster", func(t *testing.T) {
		payload := map[string]any{
			"cast": []map[string]string{
				{"name": "Sofia Boutella", "role": "Kora", "description": "lead"},
			},
			"posterUrl": "https://img.example/poster.png",
		}
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut, "/movies/848326/media", payload))
		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertJSONHasKey(t, rr, "movie")
	})

	t.Run("missing cast answers 400", func(t *testing.T) {
		payload := map[string]any{"posterUrl": "https://img.example/poster.png"}
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut, "/movies/848326/media", payload))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")
	})

	t.Run("unknown movie answers 404", func(t *testing.T) {
		payload := map[string]any{"cast": []map[string]string{}, "posterUrl": ""}
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPut, "/movies/31337/media", payload))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})
}
