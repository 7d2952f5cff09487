package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []complex128{1, 2i}, []complex128{1 + 1e-13, 2i}, 1e-12)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []complex128{0, 1 + 1i, -1e300})
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]complex128{0, 1}, []complex128{3 + 4i, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d-5) > 1e-12 {
		t.Fatalf("MaxAbsDiff = %v, want 5", d)
	}
	if _, err := MaxAbsDiff([]complex128{0}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestMeanPower(t *testing.T) {
	if p := MeanPower([]complex128{1, 1i, 1 + 1i}); math.Abs(p-4.0/3) > 1e-12 {
		t.Fatalf("MeanPower = %v, want 4/3", p)
	}
	if !math.IsNaN(MeanPower(nil)) {
		t.Fatal("expected NaN for empty input")
	}
}
