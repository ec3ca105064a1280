package geoframe

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

func TestStateVectorVallado(t *testing.T) {
	// Vallado, Fundamentals of Astrodynamics and Applications, 4th ed., example 3-15.
	tt := mustTT(t, time.Date(2004, 4, 6, 7, 51, 28, 386009000, time.UTC))
	eop, err := NewEOPTable([]EOPRecord{{Epoch: tt.Time(), EOP: EOP{Xp: -0.140682, Yp: 0.333309, DUT1: -0.4399619, LOD: 0.0015563}}})
	if err != nil {
		t.Fatal(err)
	}
	itrf, err := NewStateVector(ECEF, []float64{-1033479.3830, 7901295.2754, 6380356.5958}, []float64{-3225.636520, -2872.451450, 5531.924446}, tt)
	if err != nil {
		t.Fatal(err)
	}
	itrf.EOP = eop
	gcrf, err := itrf.ToECI()
	if err != nil {
		t.Fatal(err)
	}
	if gcrf.Frame != ECI {
		t.Fatalf("expected ECI, got %s", gcrf.Frame)
	}
	expR := []float64{5102508.958, 6123011.401, 6378136.928}
	if d := floats.Distance(expR, gcrf.R, 2); d > 1 {
		t.Fatalf("GCRF R %+v is %f m away from %+v", gcrf.R, d, expR)
	}
	expV := []float64{-4743.220157, 790.536497, 5533.755727}
	if d := floats.Distance(expV, gcrf.V, 2); d > 1e-2 {
		t.Fatalf("GCRF V %+v is %f m/s away from %+v", gcrf.V, d, expV)
	}

	back, err := gcrf.ToECEF()
	if err != nil {
		t.Fatal(err)
	}
	if !vectorsEqual(itrf.R, back.R, 1e-6) || !vectorsEqual(itrf.V, back.V, 1e-9) {
		t.Fatalf("round trip %s != %s", back, itrf)
	}
}

func TestStateVectorGeostationary(t *testing.T) {
	tt := mustTT(t, time.Date(2022, 9, 23, 1, 4, 0, 0, time.UTC))
	r := 42164e3
	geo, err := NewStateVector(ECEF, []float64{r, 0, 0}, []float64{0, 0, 0}, tt)
	if err != nil {
		t.Fatal(err)
	}
	eci, err := geo.ToECI()
	if err != nil {
		t.Fatal(err)
	}
	// At rest in the Earth fixed frame: circular inertial motion.
	if v := floats.Norm(eci.V, 2); !floats.EqualWithinAbs(v, EarthRotationRate*r, 1e-6) {
		t.Fatalf("|V| = %f m/s", v)
	}
	if d := floats.Dot(eci.R, eci.V); math.Abs(d) > 1e-3*r {
		t.Fatalf("R·V = %f", d)
	}
	if n := floats.Norm(eci.R, 2); !floats.EqualWithinAbs(n, r, 1e-6) {
		t.Fatalf("|R| = %f m", n)
	}

	pos := eci.Position(WGS84)
	if pos.Frame() != ECI {
		t.Fatalf("expected ECI, got %s", pos.Frame())
	}
	lat, _, alt, err := pos.Geodetic()
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(lat, 0, 1e-4) || !floats.EqualWithinAbs(alt, r-WGS84.SemiMajorAxis(), 1) {
		t.Fatalf("geostationary at lat=%f alt=%f", lat, alt)
	}
}

func TestStateVectorErrors(t *testing.T) {
	if _, err := NewStateVector(LLA, []float64{0, 0, 0}, []float64{0, 0, 0}, TerrestrialTime{}); err == nil {
		t.Fatal("LLA state vector accepted")
	}
	if _, err := NewStateVector(ECEF, []float64{0, 0}, []float64{0, 0, 0}, TerrestrialTime{}); err == nil {
		t.Fatal("2x1 position accepted")
	}
	s, err := NewStateVector(ECEF, []float64{7e6, 0, 0}, []float64{0, 7.5e3, 0}, TerrestrialTime{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = s.ToECI(); !errors.Is(err, ErrInvalidTimeContext) {
		t.Fatalf("expected ErrInvalidTimeContext, got %v", err)
	}
	same, err := s.ToECEF()
	if err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(same.R, s.R) {
		t.Fatalf("ECEF to ECEF changed R: %+v", same.R)
	}
}
