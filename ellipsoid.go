package geoframe

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Ellipsoid defines a reference ellipsoid from its semi-major axis (in meters)
// and its inverse flattening.
// Note: custom ellipsoids are fully convertible between frames, but a geoid
// model only answers for the ellipsoid it was built on.
type Ellipsoid struct {
	name string
	a    float64 // semi-major axis
	invf float64 // inverse flattening
	epsg int
}

// NewEllipsoid returns a new ellipsoid after checking that a > 0 and 0 < f < 1.
func NewEllipsoid(name string, a, invF float64, epsg int) (Ellipsoid, error) {
	if !(a > 0) || math.IsInf(a, 0) {
		return Ellipsoid{}, errors.Wrapf(ErrInvalidEllipsoid, "semi-major axis %f must be positive", a)
	}
	if !(invF > 1) || math.IsInf(invF, 0) {
		return Ellipsoid{}, errors.Wrapf(ErrInvalidEllipsoid, "inverse flattening %f must be greater than one", invF)
	}
	return Ellipsoid{name, a, invF, epsg}, nil
}

// Name returns the name of this ellipsoid.
func (e Ellipsoid) Name() string {
	return e.name
}

// EPSG returns the EPSG code identifying this ellipsoid (zero if unknown).
func (e Ellipsoid) EPSG() int {
	return e.epsg
}

// SemiMajorAxis returns a in meters.
func (e Ellipsoid) SemiMajorAxis() float64 {
	return e.a
}

// SemiMinorAxis returns b = a(1-f) in meters.
func (e Ellipsoid) SemiMinorAxis() float64 {
	return e.a * (1 - e.Flattening())
}

// Flattening returns f.
func (e Ellipsoid) Flattening() float64 {
	return 1 / e.invf
}

// InverseFlattening returns 1/f.
func (e Ellipsoid) InverseFlattening() float64 {
	return e.invf
}

// E2 returns the first eccentricity squared, (a²-b²)/a².
func (e Ellipsoid) E2() float64 {
	f := e.Flattening()
	return f * (2 - f)
}

// E2Prime returns the second eccentricity squared, (a²-b²)/b².
func (e Ellipsoid) E2Prime() float64 {
	e2 := e.E2()
	return e2 / (1 - e2)
}

// RadiusAt returns the radius of the ellipsoid at the provided geodetic latitude (in degrees).
func (e Ellipsoid) RadiusAt(latitude float64) (float64, error) {
	if err := checkLatitude(latitude); err != nil {
		return 0, err
	}
	sφ, cφ := math.Sincos(latitude * deg2rad)
	a, b := e.a, e.SemiMinorAxis()
	num := math.Pow(a*a*cφ, 2) + math.Pow(b*b*sφ, 2)
	den := math.Pow(a*cφ, 2) + math.Pow(b*sφ, 2)
	return math.Sqrt(num / den), nil
}

// PrimeVerticalRadius returns the radius of curvature in the prime vertical N(φ) for φ in radians.
func (e Ellipsoid) PrimeVerticalRadius(φ float64) float64 {
	sφ := math.Sin(φ)
	return e.a / math.Sqrt(1-e.E2()*sφ*sφ)
}

// Equals returns whether both ellipsoids have the same geometry.
func (e Ellipsoid) Equals(o Ellipsoid) bool {
	return e.a == o.a && e.invf == o.invf
}

// IsZero returns whether this is the zero value (e.g. an uninitialized Coordinate).
func (e Ellipsoid) IsZero() bool {
	return e.a == 0
}

func (e Ellipsoid) String() string {
	if e.epsg != 0 {
		return fmt.Sprintf("%s (EPSG:%d; a=%.3f m; 1/f=%.9f)", e.name, e.epsg, e.a, e.invf)
	}
	return fmt.Sprintf("%s (a=%.3f m; 1/f=%.9f)", e.name, e.a, e.invf)
}

// EllipsoidFromString returns the built-in ellipsoid from its name.
func EllipsoidFromString(name string) (Ellipsoid, error) {
	switch strings.ToLower(strings.Replace(name, "-", "", -1)) {
	case "grs80":
		return GRS80, nil
	case "wgs66":
		return WGS66, nil
	case "wgs72":
		return WGS72, nil
	case "wgs84":
		return WGS84, nil
	default:
		return Ellipsoid{}, errors.Wrapf(ErrUnknownEllipsoid, "'%s'", name)
	}
}

// EllipsoidFromEPSG returns the built-in ellipsoid from its EPSG code.
func EllipsoidFromEPSG(code int) (Ellipsoid, error) {
	for _, e := range []Ellipsoid{GRS80, WGS66, WGS72, WGS84} {
		if e.epsg == code {
			return e, nil
		}
	}
	return Ellipsoid{}, errors.Wrapf(ErrUnknownEllipsoid, "EPSG:%d", code)
}

/* Definitions */

// GRS80 is the Geodetic Reference System 1980 ellipsoid (EPSG:7019).
var GRS80 = Ellipsoid{"GRS80", 6378137.0, 298.257222101, 7019}

// WGS66 is the World Geodetic System 1966 ellipsoid (EPSG:4890).
var WGS66 = Ellipsoid{"WGS66", 6378145.0, 298.25, 4890}

// WGS72 is the World Geodetic System 1972 ellipsoid (EPSG:4322).
var WGS72 = Ellipsoid{"WGS72", 6378135.0, 298.26, 4322}

// WGS84 is the GPS ellipsoid (EPSG:4326).
var WGS84 = Ellipsoid{"WGS84", 6378137.0, 298.257223563, 4326}
