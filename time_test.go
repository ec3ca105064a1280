package geoframe

import (
	"testing"
	"time"

	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

func TestTerrestrialTimeJ2000(t *testing.T) {
	tt := mustTT(t, J2000)
	if tt.Seconds() != 0 || tt.Centuries() != 0 {
		t.Fatalf("J2000 is %f s after J2000", tt.Seconds())
	}
	if tt.JDE() != 2451545.0 {
		t.Fatalf("JDE(J2000) = %f", tt.JDE())
	}
	// UT1 = UTC: the Julian day lags by TT-UTC = 64.184 s.
	if jd := tt.JD(0); !floats.EqualWithinAbs(jd, 2451545.0-64.184/86400, 1e-8) {
		t.Fatalf("JD(J2000) = %f", jd)
	}
	if !tt.Valid() {
		t.Fatal("J2000 should be valid")
	}
	// Same instant in another zone.
	paris := J2000.In(time.FixedZone("CET", 3600))
	if mustTT(t, paris).Seconds() != 0 {
		t.Fatal("zone changes the instant")
	}
}

func TestTerrestrialTimeLeapSeconds(t *testing.T) {
	before := mustTT(t, time.Date(2005, 12, 31, 23, 59, 59, 0, time.UTC))
	after := mustTT(t, time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC))
	if Δt := after.SecondsSince(before); Δt != 2 {
		t.Fatalf("expected 2 s across the 2006 leap second, got %f", Δt)
	}
	for _, tc := range []struct {
		dt    time.Time
		leaps float64
	}{
		{time.Date(2004, 4, 6, 7, 51, 28, 0, time.UTC), 0},
		{time.Date(2008, 6, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2012, 6, 30, 23, 59, 59, 0, time.UTC), 2},
		{time.Date(2012, 7, 1, 0, 0, 0, 0, time.UTC), 3},
		{time.Date(2016, 12, 31, 12, 0, 0, 0, time.UTC), 4},
		{time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 5},
	} {
		tt := mustTT(t, tc.dt)
		if Δ := tt.Seconds() - tc.dt.Sub(J2000).Seconds(); Δ != tc.leaps {
			t.Fatalf("%s: %f leap seconds, expected %f", tc.dt, Δ, tc.leaps)
		}
	}
}

func TestTerrestrialTimeCenturies(t *testing.T) {
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	t0 := mustTT(t, start)
	t1 := mustTT(t, start.Add(36525*24*time.Hour))
	if c := t1.CenturiesSince(t0); !floats.EqualWithinAbs(c, 1, 1e-15) {
		t.Fatalf("expected one century, got %.16f", c)
	}
	if s := t0.SecondsSince(t1); !floats.EqualWithinAbs(s, -36525*86400, 1e-6) {
		t.Fatalf("expected minus one century in seconds, got %f", s)
	}
	if !floats.EqualWithinAbs(t0.Centuries(), t0.Seconds()/3155760000, 1e-18) {
		t.Fatal("incorrect century length")
	}
}

func TestTerrestrialTimeInvalid(t *testing.T) {
	if _, err := NewTerrestrialTime(time.Time{}); !errors.Is(err, ErrInvalidTimeContext) {
		t.Fatalf("zero time accepted: %v", err)
	}
	var tt TerrestrialTime
	if tt.Valid() {
		t.Fatal("zero TerrestrialTime should be invalid")
	}
	if tt.String() != "invalid time" {
		t.Fatal("unexpected string")
	}
	for _, value := range []string{"2020-01-01T00:00:00", "2020-01-01 00:00:00Z", "yesterday"} {
		if _, err := ParseTerrestrialTime(value); !errors.Is(err, ErrInvalidTimeContext) {
			t.Fatalf("%s: expected ErrInvalidTimeContext, got %v", value, err)
		}
	}
}

func TestParseTerrestrialTime(t *testing.T) {
	utc, err := ParseTerrestrialTime("2019-12-31T22:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	offset, err := ParseTerrestrialTime("2020-01-01T00:00:00+02:00")
	if err != nil {
		t.Fatal(err)
	}
	if utc.Seconds() != offset.Seconds() {
		t.Fatalf("%s != %s", utc, offset)
	}
	if _, err := ParseTerrestrialTime("2000-01-01T11:58:55.816Z"); err != nil {
		t.Fatal(err)
	}
}
