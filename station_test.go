package geoframe

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

func TestStationDefinitions(t *testing.T) {
	for name, exp := range map[string]Station{"dss13": DSS13Goldstone, "DSS34": DSS34Canberra, "Dss65": DSS65Madrid} {
		st, err := StationFromName(name)
		if err != nil {
			t.Fatal(err)
		}
		if st.Name != exp.Name {
			t.Fatalf("%s returned %s", name, st)
		}
	}
	if _, err := StationFromName("dss43"); !errors.Is(err, ErrUnknownStation) {
		t.Fatal("dss43 is not built in")
	}
	lat, lon, alt, err := DSS13Goldstone.Location.Geodetic()
	if err != nil {
		t.Fatal(err)
	}
	if lat != 35.247164 || !floats.EqualWithinAbs(lon, 243.205-360, 1e-12) || alt != 1071.14904 {
		t.Fatalf("unexpected DSS13 location (%f, %f, %f)", lat, lon, alt)
	}
	if !floats.EqualWithinAbs(DSS13Goldstone.LatΦ, lat*deg2rad, 1e-15) || !floats.EqualWithinAbs(DSS13Goldstone.Longθ, lon*deg2rad, 1e-15) {
		t.Fatalf("DSS13 angles (%f, %f) rad", DSS13Goldstone.LatΦ, DSS13Goldstone.Longθ)
	}
	if !floats.EqualWithinAbs(norm(DSS65Madrid.R), DSS65Madrid.Location.Magnitude(), 1e-9) {
		t.Fatal("station position does not match its location")
	}
	// The inertial velocity of a station is perpendicular to its position.
	if !floats.EqualWithinAbs(floats.Dot(DSS34Canberra.R, DSS34Canberra.V), 0, 1e-6) {
		t.Fatal("station velocity not perpendicular to its position")
	}
	assertPanic(t, func() {
		mustStation("nowhere", 91, 0, 0, 0)
	})
}

func TestStationRangeElAz(t *testing.T) {
	st := DSS65Madrid
	lat, lon, alt, _ := st.Location.Geodetic()

	zenith, _ := NewLLA(lat, lon, alt+1000, WGS84, TerrestrialTime{})
	ρ, el, _, err := st.RangeElAz(zenith)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(ρ, 1000, 1e-6) || !floats.EqualWithinAbs(el, 90, 1e-5) {
		t.Fatalf("zenith: ρ=%f el=%f", ρ, el)
	}
	if visible, _ := st.Visible(zenith); !visible {
		t.Fatal("zenith target should be visible")
	}

	north, _ := NewLLA(lat+0.01, lon, alt, WGS84, TerrestrialTime{})
	_, el, az, _ := st.RangeElAz(north)
	if math.Abs(math.Remainder(az, 360)) > 1e-3 || el > 0 || el < -0.01 {
		t.Fatalf("north: el=%f az=%f", el, az)
	}

	east, _ := NewLLA(lat, lon+0.01, alt, WGS84, TerrestrialTime{})
	_, _, az, _ = st.RangeElAz(east)
	if !floats.EqualWithinAbs(az, 90, 1e-2) {
		t.Fatalf("east: az=%f", az)
	}

	antipode, _ := NewLLA(-lat, lon+180, 0, WGS84, TerrestrialTime{})
	if visible, _ := st.Visible(antipode); visible {
		t.Fatal("antipode should not be visible")
	}

	// Inertial targets are converted at their own instant.
	tt := mustTT(t, time.Date(2017, 3, 1, 12, 0, 0, 0, time.UTC))
	fixed, err := zenith.ToECEF()
	if err != nil {
		t.Fatal(err)
	}
	inertial, err := NewECEF(fixed.v[0], fixed.v[1], fixed.v[2], WGS84, tt).ToECI()
	if err != nil {
		t.Fatal(err)
	}
	ρ, el, _, err = st.RangeElAz(inertial)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(ρ, 1000, 1e-6) || !floats.EqualWithinAbs(el, 90, 1e-5) {
		t.Fatalf("inertial zenith: ρ=%f el=%f", ρ, el)
	}
	if _, _, _, err = st.RangeElAz(NewECI(1, 2, 3, WGS84, TerrestrialTime{})); !errors.Is(err, ErrInvalidTimeContext) {
		t.Fatalf("expected ErrInvalidTimeContext, got %v", err)
	}
}
