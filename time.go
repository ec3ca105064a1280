package geoframe

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

const (
	secondsPerDay = 86400.0
	// SecondsPerCentury is the number of seconds in a Julian century.
	SecondsPerCentury = secondsPerDay * base.JulianCentury
)

// J2000 is the J2000.0 epoch (2000-01-01 12:00:00 TT) expressed in UTC.
// The UTC to TT offset at that date (32 leap seconds and 32.184 s) is baked in.
var J2000 = time.Date(2000, 1, 1, 11, 58, 55, 816000000, time.UTC)

// leapSeconds lists the leap seconds introduced after J2000.0.
// This is a static table: leap seconds announced later are not accounted for.
var leapSeconds = []time.Time{
	time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC),
	time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC),
	time.Date(2012, 7, 1, 0, 0, 0, 0, time.UTC),
	time.Date(2015, 7, 1, 0, 0, 0, 0, time.UTC),
	time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
}

// TerrestrialTime is an instant expressed as Terrestrial Time elapsed since J2000.0.
// The zero value is invalid and any time dependent computation on it fails.
type TerrestrialTime struct {
	dt    time.Time
	secTT float64 // TT seconds since J2000.0
	valid bool
}

// NewTerrestrialTime returns the TerrestrialTime of the provided instant.
// The zero time.Time carries no instant nor zone and is rejected.
func NewTerrestrialTime(dt time.Time) (TerrestrialTime, error) {
	if dt.IsZero() {
		return TerrestrialTime{}, errors.Wrap(ErrInvalidTimeContext, "zero time")
	}
	utc := dt.UTC()
	sec := utc.Sub(J2000).Seconds()
	for _, leap := range leapSeconds {
		if !utc.Before(leap) {
			sec++
		}
	}
	return TerrestrialTime{dt, sec, true}, nil
}

// ParseTerrestrialTime parses an RFC 3339 timestamp. The zone designator ("Z" or an offset) is
// mandatory: a timestamp without one fails with ErrInvalidTimeContext.
func ParseTerrestrialTime(value string) (TerrestrialTime, error) {
	dt, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return TerrestrialTime{}, errors.Wrapf(ErrInvalidTimeContext, "`%s`: %s", value, err)
	}
	return NewTerrestrialTime(dt)
}

// Valid returns whether this instant can drive Earth orientation computations.
func (tt TerrestrialTime) Valid() bool {
	return tt.valid
}

// Time returns the civil time this TerrestrialTime was created from.
func (tt TerrestrialTime) Time() time.Time {
	return tt.dt
}

// Seconds returns the TT seconds elapsed since J2000.0.
func (tt TerrestrialTime) Seconds() float64 {
	return tt.secTT
}

// Centuries returns the Julian centuries of TT elapsed since J2000.0.
func (tt TerrestrialTime) Centuries() float64 {
	return tt.secTT / SecondsPerCentury
}

// SecondsSince returns the TT seconds elapsed since the provided epoch.
func (tt TerrestrialTime) SecondsSince(epoch TerrestrialTime) float64 {
	return tt.secTT - epoch.secTT
}

// CenturiesSince returns the Julian centuries of TT elapsed since the provided epoch.
func (tt TerrestrialTime) CenturiesSince(epoch TerrestrialTime) float64 {
	return tt.SecondsSince(epoch) / SecondsPerCentury
}

// JDE returns the Julian ephemeris day (TT).
func (tt TerrestrialTime) JDE() float64 {
	return base.J2000 + tt.secTT/secondsPerDay
}

// JD returns the UT1 Julian day given UT1-UTC in seconds.
func (tt TerrestrialTime) JD(dut1 float64) float64 {
	return julian.TimeToJD(tt.dt.UTC()) + dut1/secondsPerDay
}

func (tt TerrestrialTime) String() string {
	if !tt.valid {
		return "invalid time"
	}
	return fmt.Sprintf("%s (TT J2000%+.3f s)", tt.dt.Format(time.RFC3339Nano), tt.secTT)
}

// mustInstant returns an ErrInvalidTimeContext if the time cannot be used.
func (tt TerrestrialTime) mustInstant() error {
	if !tt.valid {
		return errors.Wrap(ErrInvalidTimeContext, "coordinate has no valid instant")
	}
	return nil
}
