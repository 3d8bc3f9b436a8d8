//go:build go1.18

package domain

import "testing"

// FuzzParseMovieID tests that parsing never panics on arbitrary input and that
// any accepted id survives a round-trip through its string form.
func FuzzParseMovieID(f *testing.F) {
	f.Add("")
	f.Add("848326")
	f.Add("-1")
	f.Add("9223372036854775807")
	f.Add("9223372036854775808")
	f.Add("'; DROP TABLE movies;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseMovieID(input)
		if err != nil {
			return
		}
		if id <= 0 {
			t.Errorf("accepted non-positive id %d from %q", id, input)
		}
		roundTrip, err2 := ParseMovieID(id.String())
		if err2 != nil {
			t.Errorf("valid id failed round-trip: %v", err2)
		}
		if roundTrip != id {
			t.Error("round-trip changed id value")
		}
	})
}
