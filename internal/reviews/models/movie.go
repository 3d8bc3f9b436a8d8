package models

import (
	id "cinelog/pkg/domain"
)

// CastMember is one entry in a movie's ordered cast list.
type CastMember struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
}

// Movie is the aggregate the review key space hangs off.
//
// Invariants:
//   - ID is immutable and unique across catalog and fantasy movies
//   - Title, Overview, Genres and ReleaseDate are always present
//   - Movies are never deleted; only cast and poster are mutated after creation
//
// Fantasy movies are ordinary movies whose id was drawn from the random
// out-of-band range instead of being catalog-assigned.
type Movie struct {
	ID                  id.MovieID   `json:"id"`
	Title               string       `json:"title"`
	Overview            string       `json:"overview"`
	Genres              []string     `json:"genres"`
	ReleaseDate         string       `json:"releaseDate"`
	ProductionCompanies []string     `json:"productionCompanies,omitempty"`
	Runtime             int          `json:"runtime,omitempty"`
	PosterURL           string       `json:"posterUrl,omitempty"`
	Cast                []CastMember `json:"cast,omitempty"`
}

// MovieWithReviews is the getMovie read model: the movie plus every review in
// its key space, ordered by review id ascending.
type MovieWithReviews struct {
	Movie   Movie    `json:"movie"`
	Reviews []Review `json:"reviews"`
}
