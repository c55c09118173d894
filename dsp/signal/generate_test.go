package signal

import (
	"math"
	"testing"
)

func TestTimesInclusive(t *testing.T) {
	times, err := Times(2, 5)
	if err != nil {
		t.Fatalf("Times() error = %v", err)
	}
	want := []float64{0, 0.5, 1, 1.5, 2}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("times[%d] = %v, want %v", i, times[i], want[i])
		}
	}

	if _, err := Times(1, 1); err == nil {
		t.Fatal("expected error for n < 2")
	}
	if _, err := Times(0, 8); err == nil {
		t.Fatal("expected error for end <= 0")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	terms := SquareWave(3, 2)

	g1 := NewGenerator(WithSeed(42), WithNoise(0.5))
	g2 := NewGenerator(WithSeed(42), WithNoise(0.5))

	_, c1, n1, err := g1.Generate(terms, 4, 64)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	_, c2, n2, err := g2.Generate(terms, 4, 64)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] || c1[i] != c2[i] {
			t.Fatalf("mismatch at %d", i)
		}
		if math.Abs(n1[i]-c1[i]) > 0.5 {
			t.Fatalf("noise at %d exceeds level: %v", i, n1[i]-c1[i])
		}
	}
}

func TestGenerateWithoutNoise(t *testing.T) {
	g := NewGenerator()
	if g.Noise() != 0 || g.Seed() != 1 {
		t.Fatalf("defaults = noise %v seed %d", g.Noise(), g.Seed())
	}

	_, clean, noisy, err := g.Generate([]Term{Bias(2)}, 1, 8)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := range clean {
		if clean[i] != 2 || noisy[i] != 2 {
			t.Fatalf("sample %d = %v/%v, want 2", i, clean[i], noisy[i])
		}
	}
}

func TestWithNoiseIgnoresNegative(t *testing.T) {
	g := NewGenerator(WithNoise(-1))
	if g.Noise() != 0 {
		t.Fatalf("Noise() = %v, want 0", g.Noise())
	}
}

func TestWaveTerms(t *testing.T) {
	sq := SquareWave(3, 8)
	if len(sq) != 3 {
		t.Fatalf("square len = %d, want 3", len(sq))
	}
	if math.Abs(sq[1].Amplitude-4/(3*math.Pi)) > 1e-15 || math.Abs(sq[1].Omega-3*math.Pi/8) > 1e-15 {
		t.Fatalf("square term 1 = %+v", sq[1])
	}

	tri := TriangleWave(3, 6)
	if tri[0].Amplitude <= 0 || tri[1].Amplitude >= 0 || tri[2].Amplitude <= 0 {
		t.Fatalf("triangle signs wrong: %+v", tri)
	}
	if math.Abs(tri[1].Amplitude+8/(9*math.Pi*math.Pi)) > 1e-15 {
		t.Fatalf("triangle term 1 = %+v", tri[1])
	}

	saw := SawtoothWave(4, 7)
	if len(saw) != 4 || math.Abs(saw[3].Omega-4*math.Pi/7) > 1e-15 {
		t.Fatalf("sawtooth terms = %+v", saw)
	}

	if len(SquareWave(0, 1)) != 0 || len(SawtoothWave(-2, 1)) != 0 {
		t.Fatal("expected no terms for non-positive count")
	}
}
