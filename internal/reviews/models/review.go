package models

import (
	id "cinelog/pkg/domain"
)

// Review is addressed by the composite key (MovieID, ReviewID). ReviewID orders
// reviews within a movie and is generated at write time.
//
// TranslatedContent is the translation cache slot. It holds at most one cached
// translation and does not record which language it was translated into; a
// populated slot is served as-is regardless of the requested target language.
// That limitation is part of the external contract and must not be "fixed"
// here by keying the slot per language.
type Review struct {
	MovieID           id.MovieID  `json:"movieId"`
	ReviewID          id.ReviewID `json:"reviewId"`
	ReviewerID        string      `json:"reviewerId"`
	ReviewDate        string      `json:"reviewDate"`
	Content           string      `json:"content"`
	TranslatedContent string      `json:"translatedContent,omitempty"`
}

// Key is the composite review key used by the store and the translation cache.
type Key struct {
	MovieID  id.MovieID
	ReviewID id.ReviewID
}

func (r Review) Key() Key {
	return Key{MovieID: r.MovieID, ReviewID: r.ReviewID}
}
