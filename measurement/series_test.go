package measurement

import (
	"errors"
	"math"
	"testing"
)

func TestSubElementwise(t *testing.T) {
	b := FromNominals([]float64{5.1, 6.2, 7.3})
	v := FromNominals([]float64{4.9, 5.9, 7.0})

	diff, err := Sub(b, v)
	if err != nil {
		t.Fatal(err)
	}

	if len(diff) != len(b) {
		t.Fatalf("expected %d entries, got %d", len(b), len(diff))
	}

	for i := range diff {
		if want := b[i].Nominal - v[i].Nominal; math.Abs(diff[i].Nominal-want) > tolerance {
			t.Errorf("entry %d: got %v, expected %v", i, diff[i].Nominal, want)
		}
	}
}

func TestSubLengthMismatch(t *testing.T) {
	_, err := Sub(FromNominals([]float64{1, 2}), FromNominals([]float64{1}))
	if !errors.Is(err, ErrCorrelationLengthMismatch) {
		t.Fatalf("expected ErrCorrelationLengthMismatch, got %v", err)
	}
}

func TestFromPairsLengthMismatch(t *testing.T) {
	_, err := FromPairs([]float64{1, 2, 3}, []float64{0.1})
	if !errors.Is(err, ErrCorrelationLengthMismatch) {
		t.Fatalf("expected ErrCorrelationLengthMismatch, got %v", err)
	}
}

func TestExcluding(t *testing.T) {
	s := FromNominals([]float64{10, 20, 30, 40, 50})
	excluded := NewIndexSet(2, 4)

	kept := s.Excluding(excluded)
	if want := len(s) - excluded.Len(); len(kept) != want {
		t.Fatalf("expected %d entries after filtering, got %d", want, len(kept))
	}

	// None of the excluded values may survive into downstream computation.
	for _, v := range kept {
		if v.Nominal == 20 || v.Nominal == 40 {
			t.Errorf("excluded value %v appears in filtered series", v.Nominal)
		}
	}

	if got := s.Only(excluded); len(got) != 2 || got[0].Nominal != 20 || got[1].Nominal != 40 {
		t.Errorf("Only(excluded) returned %v", got)
	}
}

func TestExcludingPairedStaysAligned(t *testing.T) {
	x := FromNominals([]float64{1, 2, 3, 4})
	y := FromNominals([]float64{10, 20, 30, 40})

	fx, fy, err := ExcludingPaired(x, y, NewIndexSet(3))
	if err != nil {
		t.Fatal(err)
	}

	if len(fx) != len(fy) {
		t.Fatalf("filtered series have different lengths: %d vs %d", len(fx), len(fy))
	}

	for i := range fx {
		if fy[i].Nominal != 10*fx[i].Nominal {
			t.Errorf("entry %d no longer aligned: %v vs %v", i, fx[i].Nominal, fy[i].Nominal)
		}
	}

	if _, _, err := ExcludingPaired(x, y[:2], NewIndexSet(1)); !errors.Is(err, ErrCorrelationLengthMismatch) {
		t.Fatalf("expected ErrCorrelationLengthMismatch, got %v", err)
	}
}
