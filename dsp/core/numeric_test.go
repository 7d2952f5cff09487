package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(1e9, 1e9+1, 1e-6) {
		t.Fatal("expected relative tolerance for large values")
	}
}

func TestComplexNearlyEqual(t *testing.T) {
	if !ComplexNearlyEqual(1+1i, 1+1i+1e-14i, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if ComplexNearlyEqual(1+1i, 1-1i, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestDBConversions(t *testing.T) {
	tests := []struct {
		db   float64
		want float64
	}{
		{db: 0, want: 1},
		{db: 20, want: 10},
		{db: -20, want: 0.1},
		{db: -10, want: math.Pow(10, -0.5)},
	}

	for _, tt := range tests {
		got := DBToLinear(tt.db)
		if !NearlyEqual(got, tt.want, 1e-12) {
			t.Fatalf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.want)
		}
		if back := LinearToDB(got); !NearlyEqual(back, tt.db, 1e-10) {
			t.Fatalf("LinearToDB(DBToLinear(%v)) = %v", tt.db, back)
		}
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestDBPowerConversions(t *testing.T) {
	// 3 dB power ~ 2x linear power
	p := DBPowerToLinear(3)
	if !NearlyEqual(p, 2.0, 0.01) {
		t.Fatalf("DBPowerToLinear(3) = %v, want ~2.0", p)
	}
	if got := LinearPowerToDB(100); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", got)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}

func TestWrapPhase(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: math.Pi, want: math.Pi},
		{in: -math.Pi, want: math.Pi},
		{in: 1.5 * math.Pi, want: -0.5 * math.Pi},
		{in: -1.5 * math.Pi, want: 0.5 * math.Pi},
		{in: 5.5 * math.Pi, want: -0.5 * math.Pi},
		{in: 0.25 + 4*math.Pi, want: 0.25},
	}

	for _, tt := range tests {
		got := WrapPhase(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("WrapPhase(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHzRadiansRoundTrip(t *testing.T) {
	omega := HzToRadiansPerSample(1000, 48000)
	if !NearlyEqual(omega, 2*math.Pi/48, 1e-15) {
		t.Fatalf("HzToRadiansPerSample = %v", omega)
	}
	if hz := RadiansPerSampleToHz(omega, 48000); !NearlyEqual(hz, 1000, 1e-12) {
		t.Fatalf("RadiansPerSampleToHz = %v, want 1000", hz)
	}
}
