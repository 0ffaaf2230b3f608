package engine

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinRating = 1.0
	MaxRating = 10.0

	// EloScale converts a 1-10 rating to the 0-1000 derived scale.
	EloScale = 100.0
)

// ErrInvalidRating is matched by every *InvalidRatingError.
var ErrInvalidRating = errors.New("invalid rating")

// InvalidRatingError describes a rejected rating input.
type InvalidRatingError struct {
	Input  string
	Reason string
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating %q: %s", e.Input, e.Reason)
}

func (e *InvalidRatingError) Is(target error) bool {
	return target == ErrInvalidRating
}

// plainDecimal rejects the hex, exponent and signed forms ParseFloat allows.
var plainDecimal = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)

// ValidateRating parses raw and accepts only numbers in [1.0, 10.0].
func ValidateRating(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &InvalidRatingError{Input: raw, Reason: "empty"}
	}

	if !plainDecimal.MatchString(s) {
		return 0, &InvalidRatingError{Input: raw, Reason: "not a decimal number"}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InvalidRatingError{Input: raw, Reason: "not a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidRatingError{Input: raw, Reason: "not a finite number"}
	}
	if v < MinRating || v > MaxRating {
		return 0, &InvalidRatingError{Input: raw, Reason: "must be between 1 and 10"}
	}
	return v, nil
}

// ToElo maps a 1-10 rating onto the derived 0-1000 scale. The product is
// rounded at the input's own decimal precision so 7.3 maps to exactly 730
// instead of the float artifact 729.9999999999999.
func ToElo(rating float64) float64 {
	decimals := decimalPlaces(rating)
	shift := math.Pow10(max(decimals-2, 0))
	return math.Round(rating*EloScale*shift) / shift
}

// ApplyRating returns a copy of m carrying the user rating and its Elo
// equivalent. Comparison-engine fields are left untouched.
func ApplyRating(m Movie, rating float64) Movie {
	out := m.Clone()
	out.UserRating = Float(rating)
	out.EloRating = Float(ToElo(rating))
	return out
}

// DisplayRating formats the rating shown to the user with one decimal: the
// user rating, else Elo/100. It never writes back into the movie.
func DisplayRating(m Movie) (string, bool) {
	v, ok := EffectiveScore(m)
	if !ok {
		return "", false
	}
	return strconv.FormatFloat(v, 'f', 1, 64), true
}

// decimalPlaces returns the number of fractional digits in the shortest
// representation of v.
func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
