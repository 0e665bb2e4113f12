package randgen

import (
	"fmt"
	"math/rand/v2"

	apperrors "flowcat/internal/platform/errors"
)

// Source abstracts the random stream so picks are deterministic in tests.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
}

type MathRand struct{}

func (MathRand) IntN(n int) int {
	return rand.IntN(n)
}

// IntBetween draws a uniform integer in the inclusive range [min, max].
func IntBetween(src Source, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %d exceeds max %d", apperrors.ErrInvalidInput, min, max)
	}
	return min + src.IntN(max-min+1), nil
}
