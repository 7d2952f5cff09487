package snr

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-channel/dsp/channel"
	"github.com/cwbudde/algo-channel/dsp/signal"
	"github.com/cwbudde/algo-channel/internal/testutil"
)

func TestMeanPower(t *testing.T) {
	x := []complex128{1, 1i, 1 + 1i, 0}
	if got := MeanPower(x); math.Abs(got-1) > 1e-12 {
		t.Fatalf("MeanPower = %v, want 1", got)
	}
	if got := MeanPower(nil); got != 0 {
		t.Fatalf("MeanPower(nil) = %v, want 0", got)
	}
	if got := MeanPowerDB(testutil.DC(10, 4)); math.Abs(got-20) > 1e-12 {
		t.Fatalf("MeanPowerDB = %v, want 20", got)
	}
}

func TestMeasureNoiseless(t *testing.T) {
	ref := testutil.DeterministicTone(0.2, 1, 128)
	g := complex(0.5, -0.5)
	imp := make([]complex128, len(ref))
	for i, x := range ref {
		imp[i] = g * x
	}

	r, err := Measure(ref, imp)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if cmplx.Abs(r.Gain-g) > 1e-12 {
		t.Fatalf("Gain = %v, want %v", r.Gain, g)
	}
	if !math.IsInf(r.SNRDB, 1) && r.SNRDB < 200 {
		t.Fatalf("SNRDB = %v, want very large", r.SNRDB)
	}
}

func TestMeasureErrors(t *testing.T) {
	if _, err := Measure(nil, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if _, err := Measure([]complex128{1}, []complex128{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	if _, err := Measure([]complex128{0, 0}, []complex128{1, 2}); !errors.Is(err, ErrZeroReference) {
		t.Fatalf("err = %v, want ErrZeroReference", err)
	}
}

func TestMeasureChannelAWGN(t *testing.T) {
	tests := []struct {
		noiseFloorDB float64
		snrDB        float64
	}{
		{noiseFloorDB: -60, snrDB: 20},
		{noiseFloorDB: -30, snrDB: 10},
		{noiseFloorDB: 0, snrDB: 3},
	}

	g := signal.NewGeneratorWithOptions(nil, signal.WithSeed(8))
	ref, err := g.QPSK(40000)
	if err != nil {
		t.Fatalf("QPSK: %v", err)
	}

	for _, tt := range tests {
		ch := channel.New(channel.WithSeed(21))
		ch.AddAWGN(tt.noiseFloorDB, tt.snrDB)
		out := ch.Process(ref)

		r, err := Measure(ref, out)
		if err != nil {
			t.Fatalf("Measure: %v", err)
		}
		if math.Abs(r.SNRDB-tt.snrDB) > 0.2 {
			t.Fatalf("floor=%v snr=%v: measured %v dB", tt.noiseFloorDB, tt.snrDB, r.SNRDB)
		}
		if want := ch.Gain(); math.Abs(cmplx.Abs(r.Gain)-want)/want > 0.02 {
			t.Fatalf("gain = %v, want ~%v", cmplx.Abs(r.Gain), want)
		}
	}
}
