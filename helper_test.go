package geoframe

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// vectorsEqual returns whether both vectors are equal within the absolute tolerance.
func vectorsEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func mustTT(t *testing.T, dt time.Time) TerrestrialTime {
	tt, err := NewTerrestrialTime(dt)
	if err != nil {
		t.Fatalf("%s: %s", dt, err)
	}
	return tt
}
