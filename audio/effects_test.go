package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestStaticGeneratorRange verifies noise samples stay in [-1, 1]
func TestStaticGeneratorRange(t *testing.T) {
	gen := NewStaticGenerator(beep.SampleRate(44100), 1)

	samples := make([][2]float64, 512)
	n, ok := gen.Stream(samples)
	if !ok || n != 512 {
		t.Fatalf("Expected 512 samples ok, got %d %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("Sample %d not mono", i)
		}
	}
	if gen.Err() != nil {
		t.Errorf("Expected no error, got: %v", gen.Err())
	}
}

// TestStaticGeneratorDeterministic verifies equal seeds give equal output
func TestStaticGeneratorDeterministic(t *testing.T) {
	a := NewStaticGenerator(beep.SampleRate(44100), 7)
	b := NewStaticGenerator(beep.SampleRate(44100), 7)

	sa := make([][2]float64, 64)
	sb := make([][2]float64, 64)
	a.Stream(sa)
	b.Stream(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("Sample %d differs: %v vs %v", i, sa[i], sb[i])
		}
	}
}

// TestStaticGeneratorDecays verifies the envelope fades the burst
func TestStaticGeneratorDecays(t *testing.T) {
	rate := beep.SampleRate(44100)
	gen := NewStaticGenerator(rate, 3)

	energy := func(n int) float64 {
		buf := make([][2]float64, n)
		gen.Stream(buf)
		sum := 0.0
		for _, s := range buf {
			sum += s[0] * s[0]
		}
		return sum / float64(n)
	}

	first := energy(rate.N(10 * time.Millisecond))
	energy(rate.N(80 * time.Millisecond))
	late := energy(rate.N(10 * time.Millisecond))
	if late >= first {
		t.Errorf("Expected decaying energy, first=%f late=%f", first, late)
	}
}

// TestNewVolumeSilent verifies zero volume silences the stream
func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := newVolume(beep.Take(100, NewStaticGenerator(rate, 5)), 0)

	buf := make([][2]float64, 100)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence at %d, got %f", i, buf[i][0])
		}
	}

	half := newVolume(beep.Take(100, NewStaticGenerator(rate, 5)), 0.5)
	full := beep.Take(100, NewStaticGenerator(rate, 5))
	hb := make([][2]float64, 100)
	fb := make([][2]float64, 100)
	half.Stream(hb)
	full.Stream(fb)
	for i := range hb {
		if math.Abs(hb[i][0]-fb[i][0]*0.5) > 1e-9 {
			t.Fatalf("Sample %d: expected half amplitude", i)
		}
	}
}
