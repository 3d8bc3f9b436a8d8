// Package domain holds the identifier types shared across verticals. IDs are
// distinct named types so a review id can never be passed where a movie id is
// expected; the compiler enforces what the DynamoDB-era service checked by hand.
package domain

import (
	"strconv"

	"github.com/google/uuid"

	dErrors "cinelog/pkg/domainerrors"
)

// MovieID identifies a movie. Catalog movies carry TMDB-style ids; fantasy
// movies carry randomly generated ids in their own range.
type MovieID int64

// ReviewID orders reviews within a movie. Generated from wall-clock
// milliseconds at write time, uniqueness enforced by conditional write.
type ReviewID int64

// UserID is the generated, immutable identifier of a user account. The record
// key is the normalized email; UserID is what responses expose.
type UserID uuid.UUID

func (id MovieID) Int64() int64   { return int64(id) }
func (id ReviewID) Int64() int64  { return int64(id) }
func (id MovieID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id ReviewID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText keeps the JSON form the canonical uuid string; the named type
// does not inherit uuid.UUID's encoding methods.
func (id UserID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

func (id *UserID) UnmarshalText(text []byte) error {
	u, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = UserID(u)
	return nil
}

// NewUserID generates a fresh random user id.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseMovieID parses a path or payload value into a MovieID. Movie ids are
// positive integers; anything else is a validation failure at the trust
// boundary, never a store lookup.
func ParseMovieID(raw string) (MovieID, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.Newf(dErrors.CodeValidation, "invalid movie id %q", raw)
	}
	return MovieID(n), nil
}

// ParseReviewID parses a path or payload value into a ReviewID.
func ParseReviewID(raw string) (ReviewID, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.Newf(dErrors.CodeValidation, "invalid review id %q", raw)
	}
	return ReviewID(n), nil
}

// ParseUserID parses a stored user id string back into a UserID.
func ParseUserID(raw string) (UserID, error) {
	u, err := uuid.Parse(raw)
	if err != nil || u == uuid.Nil {
		return UserID(uuid.Nil), dErrors.New(dErrors.CodeValidation, "invalid user id")
	}
	return UserID(u), nil
}
