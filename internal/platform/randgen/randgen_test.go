package randgen_test

import (
	"errors"
	"testing"

	apperrors "flowcat/internal/platform/errors"
	"flowcat/internal/platform/randgen"
)

type fixedSource struct{ value int }

func (f fixedSource) IntN(n int) int { return f.value % n }

func TestIntBetween(t *testing.T) {
	t.Parallel()
	got, err := randgen.IntBetween(fixedSource{value: 3}, 10, 20)
	if err != nil {
		t.Fatalf("int between: %v", err)
	}
	if got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}

	// Single-value range is valid.
	got, err = randgen.IntBetween(fixedSource{}, 5, 5)
	if err != nil {
		t.Fatalf("single-value range: %v", err)
	}
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}

	if _, err := randgen.IntBetween(fixedSource{}, 7, 3); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("min > max: want ErrInvalidInput, got %v", err)
	}
}

func TestMathRandStaysInRange(t *testing.T) {
	t.Parallel()
	src := randgen.MathRand{}
	for i := 0; i < 100; i++ {
		got, err := randgen.IntBetween(src, -2, 2)
		if err != nil {
			t.Fatalf("int between: %v", err)
		}
		if got < -2 || got > 2 {
			t.Fatalf("value %d outside [-2, 2]", got)
		}
	}
}
