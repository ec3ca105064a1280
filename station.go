package geoframe

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

var (
	DSS34Canberra  = mustStation("DSS34Canberra", -35.398333, 148.981944, 691.750, 6)
	DSS65Madrid    = mustStation("DSS65Madrid", 40.427222, 4.250556, 834.939, 6)
	DSS13Goldstone = mustStation("DSS13Goldstone", 35.247164, 243.205, 1071.14904, 6)
)

// Station defines a ground station.
type Station struct {
	Name      string
	Location  Coordinate // geodetic location
	R, V      []float64  // position and inertial velocity in ECEF axes (m and m/s)
	LatΦ      float64    // geodetic latitude, stored in radians!
	Longθ     float64    // longitude, stored in radians!
	Elevation float64    // elevation mask in degrees
}

// NewStation returns a new station. Angles in degrees and altitude in meters.
// The station location does not depend on time.
func NewStation(name string, latΦ, longθ, altitude, elevation float64, e Ellipsoid) (Station, error) {
	loc, err := NewLLA(latΦ, longθ, altitude, e, TerrestrialTime{})
	if err != nil {
		return Station{}, errors.Wrapf(err, "station %s", name)
	}
	ecef, err := loc.ToECEF()
	if err != nil {
		return Station{}, err
	}
	R := ecef.Vector()
	V := cross([]float64{0, 0, EarthRotationRate}, R)
	return Station{name, loc, R, V, loc.v[0] * deg2rad, loc.v[1] * deg2rad, elevation}, nil
}

func mustStation(name string, latΦ, longθ, altitude, elevation float64) Station {
	s, err := NewStation(name, latΦ, longθ, altitude, elevation, WGS84)
	if err != nil {
		panic(err)
	}
	return s
}

// RangeElAz returns the range (in meters), elevation and azimuth (in degrees) of the target,
// computed in the topocentric SEZ frame of the station.
// The target is converted to ECEF at its own instant.
func (s Station) RangeElAz(target Coordinate) (ρ, el, az float64, err error) {
	ecef, err := target.ToECEF()
	if err != nil {
		return 0, 0, 0, err
	}
	ρECEF := make([]float64, 3)
	for i, r := range ecef.Vector() {
		ρECEF[i] = r - s.R[i]
	}
	ρ = norm(ρECEF)
	if ρ == 0 {
		return 0, 90, 0, nil
	}
	rSEZ := MxV33(R3(s.Longθ), ρECEF)
	rSEZ = MxV33(R2(math.Pi/2-s.LatΦ), rSEZ)
	el = math.Asin(rSEZ[2]/ρ) * rad2deg
	az = math.Mod(2*math.Pi+math.Atan2(rSEZ[1], -rSEZ[0]), 2*math.Pi) * rad2deg
	return
}

// Visible returns whether the target is above the elevation mask of the station.
func (s Station) Visible(target Coordinate) (bool, error) {
	_, el, _, err := s.RangeElAz(target)
	if err != nil {
		return false, err
	}
	return el >= s.Elevation, nil
}

func (s Station) String() string {
	return fmt.Sprintf("%s (%f,%f); alt = %f m; el = %f deg", s.Name, s.LatΦ*rad2deg, s.Longθ*rad2deg, s.Location.v[2], s.Elevation)
}

// StationFromName returns the built-in station from its short name (e.g. "dss13").
func StationFromName(name string) (Station, error) {
	switch strings.ToLower(name) {
	case "dss13":
		return DSS13Goldstone, nil
	case "dss34":
		return DSS34Canberra, nil
	case "dss65":
		return DSS65Madrid, nil
	default:
		return Station{}, errors.Wrapf(ErrUnknownStation, "`%s`", name)
	}
}
