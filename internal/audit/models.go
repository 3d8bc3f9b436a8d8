package audit

import "time"

// Event is one append-only audit record. Actor is the acting principal when
// known (a reviewer email, a signup email) and Subject the record acted on.
// Detail never carries credentials or review bodies, only identifiers.
type Event struct {
	Action    string            `json:"action"`
	Actor     string            `json:"actor,omitempty"`
	Subject   string            `json:"subject,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Detail    map[string]string `json:"detail,omitempty"`
}

// Actions emitted by the service verticals.
const (
	ActionReviewCreated      = "review.created"
	ActionReviewUpdated      = "review.updated"
	ActionReviewDeleted      = "review.deleted"
	ActionTranslationCached  = "translation.cached"
	ActionUserSignup         = "user.signup"
	ActionFantasyMovieCreate = "movie.fantasy_created"
	ActionMovieMediaUpdated  = "movie.media_updated"
)
