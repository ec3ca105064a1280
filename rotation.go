package geoframe

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

const (
	// EarthRotationRate is the nominal Earth rotation rate in radians per second.
	EarthRotationRate = 7.292115146706979e-5
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// chain multiplies the provided matrices left to right: chain(A, B, C) = A·B·C.
func chain(first *mat64.Dense, others ...*mat64.Dense) *mat64.Dense {
	out := mat64.DenseCopyOf(first)
	for _, m := range others {
		var tmp mat64.Dense
		tmp.Mul(out, m)
		out = &tmp
	}
	return out
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat64.Matrix, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// MTxV33 multiplies the transpose of a matrix with a vector.
func MTxV33(m mat64.Matrix, v []float64) []float64 {
	return MxV33(m.T(), v)
}
