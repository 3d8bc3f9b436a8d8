package handler

import (
	"strings"

	"cinelog/internal/reviews/models"
	dErrors "cinelog/pkg/domainerrors"
)

// CreateFantasyMovieRequest carries loosely typed fields so that wrong
// types are reported as validation problems rather than decode failures.
type CreateFantasyMovieRequest struct {
	Title               any `json:"title"`
	Overview            any `json:"overview"`
	Genres              any `json:"genres"`
	ReleaseDate         any `json:"releaseDate"`
	ProductionCompanies any `json:"productionCompanies"`
	Runtime             any `json:"runtime"`
}

// Validate checks the payload and converts it into a movie ready for
// the fantasy service. The id is left zero; the service assigns one.
func (r CreateFantasyMovieRequest) Validate() (models.Movie, error) {
	fields := map[string]string{}

	title, ok := stringField(r.Title)
	if !ok {
		fields["title"] = "title is required and must be a non-empty string"
	}
	overview, ok := stringField(r.Overview)
	if !ok {
		fields["overview"] = "overview is required and must be a non-empty string"
	}
	genres, ok := stringSliceField(r.Genres)
	if !ok || len(genres) == 0 {
		fields["genres"] = "genres is required and must be a non-empty array of strings"
	}
	releaseDate, ok := stringField(r.ReleaseDate)
	if !ok {
		fields["releaseDate"] = "releaseDate is required and must be a non-empty string"
	}

	var companies []string
	if r.ProductionCompanies != nil {
		companies, ok = stringSliceField(r.ProductionCompanies)
		if !ok {
			fields["productionCompanies"] = "productionCompanies must be an array of strings"
		}
	}
	var runtime int64
	if r.Runtime != nil {
		runtime, ok = wholeNumberField(r.Runtime)
		if !ok || runtime < 0 {
			fields["runtime"] = "runtime must be a non-negative whole number"
		}
	}

	if len(fields) > 0 {
		return models.Movie{}, dErrors.NewValidation(fields)
	}
	return models.Movie{
		Title:               title,
		Overview:            overview,
		Genres:              genres,
		ReleaseDate:         releaseDate,
		ProductionCompanies: companies,
		Runtime:             int(runtime),
	}, nil
}

func stringField(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func stringSliceField(v any) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func wholeNumberField(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}
