package store

import (
	"context"

	"cinelog/internal/reviews/models"
	moviestore "cinelog/internal/reviews/store/movie"
	reviewstore "cinelog/internal/reviews/store/review"
)

// SeedCatalog loads the bundled catalog fixtures into the in-memory stores so
// a database-less run serves the same data the hosted service was seeded with.
func SeedCatalog(ms *moviestore.InMemory, rs *reviewstore.InMemory) {
	ctx := context.Background()
	for _, m := range CatalogMovies() {
		_ = ms.CreateIfAbsent(ctx, m)
	}
	for _, r := range CatalogReviews() {
		_ = rs.CreateIfAbsent(ctx, r)
	}
}

// CatalogMovies returns fresh copies of the seed movies; callers may mutate.
func CatalogMovies() []models.Movie {
	return []models.Movie{
		{
			ID:          848326,
			Title:       "Rebel Moon - Part One: A Child of Fire",
			Overview:    "When a peaceful colony on the edge of the galaxy finds itself threatened by the armies of the tyrannical Regent Balisarius, they dispatch a young woman to seek out warriors from neighboring planets.",
			Genres:      []string{"sci-fi", "action"},
			ReleaseDate: "2023-12-15",
			ProductionCompanies: []string{
				"Grand Electric",
			},
			Runtime: 133,
		},
		{
			ID:          572802,
			Title:       "Aquaman and the Lost Kingdom",
			Overview:    "Black Manta seeks revenge on Aquaman for his father's death. Wielding the Black Trident's power, he becomes a formidable foe, forcing Aquaman to forge an unlikely alliance with his brother.",
			Genres:      []string{"action", "adventure"},
			ReleaseDate: "2023-12-20",
			ProductionCompanies: []string{
				"DC Films",
				"Atomic Monster",
			},
			Runtime: 124,
		},
	}
}

// CatalogReviews returns fresh copies of the seed reviews.
func CatalogReviews() []models.Review {
	return []models.Review{
		{
			MovieID:    848326,
			ReviewID:   1,
			ReviewerID: "user1@example.com",
			ReviewDate: "2024-03-10",
			Content:    "Amazing sci-fi movie with great visuals!",
		},
		{
			MovieID:    572802,
			ReviewID:   2,
			ReviewerID: "user2@example.com",
			ReviewDate: "2024-03-11",
			Content:    "Good action scenes but predictable story.",
		},
	}
}
