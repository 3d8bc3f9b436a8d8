package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinelog/internal/fantasy/service"
	moviestore "cinelog/internal/reviews/store/movie"
	"cinelog/pkg/testutil"
)

func newRouter(t *testing.T) (http.Handler, *moviestore.InMemory) {
	t.Helper()
	movies := moviestore.NewInMemory()
	svc := service.New(movies)
	r := chi.NewRouter()
	New(svc, slog.Default()).Register(r)
	return r, movies
}

func validPayload() map[string]any {
	return map[string]any{
		"title":       "My Fantasy Epic",
		"overview":    "A quest across impossible lands.",
		"genres":      []string{"fantasy", "adventure"},
		"releaseDate": "2025-06-01",
	}
}

func TestCreateFantasyMovie(t *testing.T) {
	t.Run("creates with required fields only", func(t *testing.T) {
		router, _ := newRouter(t)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/fantasy/movies", validPayload()))
		testutil.AssertStatus(t, rr, http.StatusCreated)
		testutil.AssertJSONHasKey(t, rr, "movieId")
	})

	t.Run("stores the optional fields", func(t *testing.T) {
		router, movies := newRouter(t)

		payload := validPayload()
		payload["productionCompanies"] = []string{"Dream Studio"}
		payload["runtime"] = 142

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/fantasy/movies", payload))
		testutil.AssertStatus(t, rr, http.StatusCreated)

		list, err := movies.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, []string{"Dream Studio"}, list[0].ProductionCompanies)
		assert.Equal(t, 142, list[0].Runtime)
	})

	t.Run("reports missing required fields together", func(t *testing.T) {
		router, _ := newRouter(t)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/fantasy/movies", map[string]any{}))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")

		resp := testutil.UnmarshalResponse[map[string]any](t, rr)
		fields, ok := (*resp)["fields"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "overview")
		assert.Contains(t, fields, "genres")
		assert.Contains(t, fields, "releaseDate")
	})

	t.Run("rejects mistyped optional fields", func(t *testing.T) {
		router, _ := newRouter(t)

		payload := validPayload()
		payload["runtime"] = "two hours"

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/fantasy/movies", payload))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")
	})

	t.Run("rejects a genres array with non-string members", func(t *testing.T) {
		router, _ := newRouter(t)

		payload := validPayload()
		payload["genres"] = []any{"fantasy", 42}

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/fantasy/movies", payload))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")
	})
}
