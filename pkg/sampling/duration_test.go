package sampling

import (
	"errors"
	"math"
	"testing"
)

func TestDuration_RejectsNonPositiveMean(t *testing.T) {
	src := NewSource(1)
	for _, mean := range []float64{0, -1, -0.001} {
		_, err := Duration(src, mean)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("mean=%v: expected ErrInvalidParameter, got %v", mean, err)
		}
	}
}

func TestDuration_AlwaysNonNegative(t *testing.T) {
	src := NewSource(99)
	for i := 0; i < 10000; i++ {
		d, err := Duration(src, 2.5)
		if err != nil {
			t.Fatalf("Duration failed: %v", err)
		}
		if d < 0 {
			t.Fatalf("Negative duration %v at draw %d", d, i)
		}
	}
}

func TestDuration_SampleMeanMatchesParameter(t *testing.T) {
	const draws = 100000
	src := NewSource(31337)

	sum := 0.0
	for i := 0; i < draws; i++ {
		d, err := Duration(src, 1.0)
		if err != nil {
			t.Fatalf("Duration failed: %v", err)
		}
		sum += d
	}

	mean := sum / draws
	if math.Abs(mean-1.0) > 0.02 {
		t.Errorf("Sample mean %.5f outside 1.0 ± 0.02", mean)
	}
}

func TestDuration_RoundedToThreeDecimals(t *testing.T) {
	src := NewSource(5)
	for i := 0; i < 1000; i++ {
		d, err := Duration(src, 3.0)
		if err != nil {
			t.Fatalf("Duration failed: %v", err)
		}
		scaled := d * 1000
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Fatalf("Duration %v is not rounded to 3 decimal digits", d)
		}
	}
}

func TestRound3(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.23456, 1.235},
		{1.23449, 1.234},
		{0, 0},
		{7.0, 7.0},
		{-1.2344, -1.234},
		{-1.2346, -1.235},
	}
	for _, tc := range cases {
		if got := Round3(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Round3(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
