package utils

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// RatingDecimals is the number of decimal places kept on a restaurant's
// aggregate rating. Held fixed so stored ratings stay comparable.
const RatingDecimals = 1

// SameID reports whether two identifier representations denote the same
// record. Ids are uuid strings, but callers may hold them in different
// textual forms (hyphenated, raw hex, urn-prefixed, mixed case), so both
// sides are normalized before comparison. Falls back to plain string
// equality when either side is not a well-formed uuid.
func SameID(a, b string) bool {
	ua, errA := uuid.Parse(a)
	ub, errB := uuid.Parse(b)
	if errA == nil && errB == nil {
		return ua == ub
	}
	return a == b
}

// RoundRating rounds an aggregate rating to RatingDecimals decimal places.
func RoundRating(rating float64) float64 {
	shift := math.Pow(10, RatingDecimals)
	return math.Round(rating*shift) / shift
}

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomAlphabetString generates a random lowercase string of length n.
func RandomAlphabetString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
