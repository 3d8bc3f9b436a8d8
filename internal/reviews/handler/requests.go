package handler

import (
	"strconv"
	"strings"

	"cinelog/internal/reviews/models"
	id "cinelog/pkg/domain"
	dErrors "cinelog/pkg/domainerrors"
)

// Request payloads decode their fields as dynamic values so validation can
// report every missing or mistyped field in one pass instead of failing on
// the first decode error.

type CreateReviewRequest struct {
	MovieID    any `json:"movieId"`
	ReviewerID any `json:"reviewerId"`
	Content    any `json:"content"`
}

type CreateReviewCommand struct {
	MovieID    id.MovieID
	ReviewerID string
	Content    string
}

func (r CreateReviewRequest) Validate() (*CreateReviewCommand, error) {
	fields := make(map[string]string)

	movieID, ok := numericField(r.MovieID)
	if !ok || movieID <= 0 {
		fields["movieId"] = "must be a positive number"
	}
	reviewerID, ok := stringField(r.ReviewerID)
	if !ok {
		fields["reviewerId"] = "is required"
	}
	content, ok := stringField(r.Content)
	if !ok {
		fields["content"] = "is required"
	}

	if len(fields) > 0 {
		return nil, dErrors.NewValidation(fields)
	}
	return &CreateReviewCommand{
		MovieID:    id.MovieID(movieID),
		ReviewerID: reviewerID,
		Content:    content,
	}, nil
}

type UpdateReviewRequest struct {
	Content any `json:"content"`
}

func (r UpdateReviewRequest) Validate() (string, error) {
	content, ok := stringField(r.Content)
	if !ok {
		return "", dErrors.NewValidation(map[string]string{"content": "is required"})
	}
	return content, nil
}

type UpdateMediaRequest struct {
	Cast      []models.CastMember `json:"cast"`
	PosterURL string              `json:"posterUrl"`
}

func (r UpdateMediaRequest) Validate() error {
	if r.Cast == nil {
		return dErrors.NewValidation(map[string]string{"cast": "must be an array"})
	}
	return nil
}

// numericField accepts JSON numbers and numeric strings, mirroring the loose
// typing of the clients this API grew up with.
func numericField(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func stringField(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
