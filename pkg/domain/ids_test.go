package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cinelog/pkg/domainerrors"
)

// TestParseMovieID_Invariants validates the parsing invariant: movie ids are
// positive integers, checked at the trust boundary before any store is consulted.
func TestParseMovieID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseMovieID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseMovieID("the-matrix")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects zero and negative ids", func(t *testing.T) {
		for _, raw := range []string{"0", "-1", "-848326"} {
			_, err := ParseMovieID(raw)
			require.Error(t, err, "input %q", raw)
		}
	})

	t.Run("accepts catalog-style ids", func(t *testing.T) {
		id, err := ParseMovieID("848326")
		require.NoError(t, err)
		assert.Equal(t, MovieID(848326), id)
	})
}

func TestParseReviewID_Invariants(t *testing.T) {
	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "1.5", "0"} {
			_, err := ParseReviewID(raw)
			require.Error(t, err, "input %q", raw)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		}
	})

	t.Run("accepts millisecond-style ids", func(t *testing.T) {
		id, err := ParseReviewID("1710070496000")
		require.NoError(t, err)
		assert.Equal(t, ReviewID(1710070496000), id)
	})
}

func TestParseUserID_Invariants(t *testing.T) {
	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseUserID(uuid.Nil.String())
		require.Error(t, err)
	})

	t.Run("round-trips a valid UUID", func(t *testing.T) {
		want := NewUserID()
		got, err := ParseUserID(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

// TestTypeDistinction verifies the compiler enforces type safety between the
// two halves of the review composite key. If this compiles, the invariant holds.
func TestTypeDistinction(t *testing.T) {
	movieID := MovieID(848326)
	reviewID := ReviewID(848326)

	// These would fail to compile if types were interchangeable:
	// var _ MovieID = reviewID   // compile error
	// var _ ReviewID = movieID   // compile error

	assert.Equal(t, movieID.Int64(), reviewID.Int64())
}
