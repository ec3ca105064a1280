package geoframe

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestR1R2R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r2 := R2(x)
	r3 := R3(x)
	// Test items equal to 1.
	if r1.At(0, 0) != r2.At(1, 1) || r1.At(0, 0) != r3.At(2, 2) || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R2.At(1, 1) = R3.At(2, 2) = 1\n")
	}
	// Test R1.
	if r1.At(1, 1) != r1.At(2, 2) || r1.At(2, 2) != c {
		t.Fatal("expected R1 cosines misplaced\n")
	}
	if r1.At(2, 1) != -r1.At(1, 2) || r1.At(1, 2) != s {
		t.Fatal("expected R1 sines misplaced\n")
	}
	// Test R2.
	if r2.At(0, 0) != r2.At(2, 2) || r2.At(2, 2) != c {
		t.Fatal("expected R2 cosines misplaced\n")
	}
	if r2.At(2, 0) != -r2.At(0, 2) || r2.At(2, 0) != s {
		t.Fatal("expected R2 sines misplaced\n")
	}
	// Test R3.
	if r3.At(1, 1) != r3.At(0, 0) || r3.At(0, 0) != c {
		t.Fatal("expected R3 cosines misplaced\n")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced\n")
	}
}

func TestChain(t *testing.T) {
	var exp, tmp mat64.Dense
	tmp.Mul(R2(0.2), R3(0.3))
	exp.Mul(R1(0.1), &tmp)
	if !mat64.EqualApprox(chain(R1(0.1), R2(0.2), R3(0.3)), &exp, 1e-15) {
		t.Fatal("chain differs from manual product")
	}
	// chain must not modify its first argument
	first := R1(0.1)
	chain(first, R2(0.2))
	if !mat64.Equal(first, R1(0.1)) {
		t.Fatal("chain modified its input")
	}
}

func TestMxV33(t *testing.T) {
	// A passive rotation of +90° about Z maps the X axis to -Y.
	v := MxV33(R3(math.Pi/2), []float64{1, 0, 0})
	if !vectorsEqual(v, []float64{0, -1, 0}, 1e-15) {
		t.Fatalf("R3(90°)·x = %+v", v)
	}
	back := MTxV33(R3(math.Pi/2), v)
	if !vectorsEqual(back, []float64{1, 0, 0}, 1e-15) {
		t.Fatalf("R3(90°)ᵗ·R3(90°)·x = %+v", back)
	}
}
