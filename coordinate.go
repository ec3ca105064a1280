package geoframe

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

// Frame identifies the reference frame of a Coordinate.
type Frame uint8

const (
	// ECEF is the Earth-centered Earth-fixed frame (ITRS), components in meters.
	ECEF Frame = iota + 1
	// ECI is the Earth-centered inertial frame (GCRS), components in meters.
	ECI
	// LLA is the geodetic frame: latitude and longitude in degrees, altitude in meters.
	LLA
)

func (f Frame) String() string {
	switch f {
	case ECEF:
		return "ECEF"
	case ECI:
		return "ECI"
	case LLA:
		return "LLA"
	default:
		return fmt.Sprintf("Frame(%d)", uint8(f))
	}
}

// Coordinate is a point in one of the supported frames, tied to an ellipsoid and an instant.
// Coordinates are immutable: every conversion returns a new value.
type Coordinate struct {
	frame Frame
	v     [3]float64
	ell   Ellipsoid
	tt    TerrestrialTime
	eop   *EOPTable
}

// NewECEF returns an ECEF coordinate (meters).
func NewECEF(x, y, z float64, e Ellipsoid, tt TerrestrialTime) Coordinate {
	return Coordinate{ECEF, [3]float64{x, y, z}, e, tt, nil}
}

// NewECI returns an ECI coordinate (meters).
func NewECI(x, y, z float64, e Ellipsoid, tt TerrestrialTime) Coordinate {
	return Coordinate{ECI, [3]float64{x, y, z}, e, tt, nil}
}

// NewLLA returns a geodetic coordinate. The latitude must be within [-90, 90] degrees,
// the longitude must be finite and is normalized to (-180, 180].
func NewLLA(latitude, longitude, altitude float64, e Ellipsoid, tt TerrestrialTime) (Coordinate, error) {
	if err := checkLatitude(latitude); err != nil {
		return Coordinate{}, err
	}
	if err := checkLongitude(longitude); err != nil {
		return Coordinate{}, err
	}
	return Coordinate{LLA, [3]float64{latitude, NormalizeLongitude(longitude), altitude}, e, tt, nil}, nil
}

// WithEOP returns a copy of this coordinate whose ECI conversions use the provided table.
func (c Coordinate) WithEOP(table *EOPTable) Coordinate {
	c.eop = table
	return c
}

// Frame returns the frame of this coordinate.
func (c Coordinate) Frame() Frame { return c.frame }

// Vector returns a copy of the three components.
func (c Coordinate) Vector() []float64 {
	return []float64{c.v[0], c.v[1], c.v[2]}
}

// Ellipsoid returns the reference ellipsoid.
func (c Coordinate) Ellipsoid() Ellipsoid { return c.ell }

// Time returns the instant of this coordinate.
func (c Coordinate) Time() TerrestrialTime { return c.tt }

// EOPTable returns the EOP table used for ECI conversions, if any.
func (c Coordinate) EOPTable() *EOPTable { return c.eop }

// Geodetic returns the latitude (deg), longitude (deg) and altitude (m) of this coordinate.
func (c Coordinate) Geodetic() (latitude, longitude, altitude float64, err error) {
	lla, err := c.ToLLA()
	if err != nil {
		return 0, 0, 0, err
	}
	return lla.v[0], lla.v[1], lla.v[2], nil
}

// Magnitude returns the distance to the center of the Earth in meters.
func (c Coordinate) Magnitude() float64 {
	if c.frame == LLA {
		x, y, z := ecefFromGeodetic(c.v[0]*deg2rad, c.v[1]*deg2rad, c.v[2], c.ell)
		return norm([]float64{x, y, z})
	}
	return norm(c.v[:])
}

// Orientation returns the ECI to ECEF rotation at the instant of this coordinate.
func (c Coordinate) Orientation() (EarthOrientation, error) {
	if err := c.tt.mustInstant(); err != nil {
		return EarthOrientation{}, err
	}
	return NewEarthOrientation(c.tt, c.eop.At(c.tt.Time()))
}

// ToECEF returns this coordinate in the ECEF frame.
func (c Coordinate) ToECEF() (Coordinate, error) {
	switch c.frame {
	case ECEF:
		return c, nil
	case LLA:
		x, y, z := ecefFromGeodetic(c.v[0]*deg2rad, c.v[1]*deg2rad, c.v[2], c.ell)
		return c.with(ECEF, x, y, z), nil
	case ECI:
		o, err := c.Orientation()
		if err != nil {
			return Coordinate{}, err
		}
		r := o.ToECEF(c.v[:])
		return c.with(ECEF, r[0], r[1], r[2]), nil
	default:
		return Coordinate{}, errors.Errorf("unknown frame %s", c.frame)
	}
}

// ToECI returns this coordinate in the ECI frame. This requires a valid instant.
func (c Coordinate) ToECI() (Coordinate, error) {
	if c.frame == ECI {
		return c, nil
	}
	ecef, err := c.ToECEF()
	if err != nil {
		return Coordinate{}, err
	}
	o, err := c.Orientation()
	if err != nil {
		return Coordinate{}, err
	}
	r := o.ToECI(ecef.v[:])
	return c.with(ECI, r[0], r[1], r[2]), nil
}

// ToLLA returns this coordinate in the geodetic frame.
func (c Coordinate) ToLLA() (Coordinate, error) {
	if c.frame == LLA {
		return c, nil
	}
	ecef, err := c.ToECEF()
	if err != nil {
		return Coordinate{}, err
	}
	φ, λ, h := geodeticFromECEF(ecef.v[0], ecef.v[1], ecef.v[2], c.ell)
	return c.with(LLA, φ*rad2deg, NormalizeLongitude(λ*rad2deg), h), nil
}

// To returns this coordinate in the requested frame.
func (c Coordinate) To(f Frame) (Coordinate, error) {
	switch f {
	case ECEF:
		return c.ToECEF()
	case ECI:
		return c.ToECI()
	case LLA:
		return c.ToLLA()
	default:
		return Coordinate{}, errors.Errorf("unknown frame %s", f)
	}
}

// ApproxEqual returns whether both coordinates describe the same point within the
// tolerance (in meters), once expressed in ECEF.
func (c Coordinate) ApproxEqual(o Coordinate, tolerance float64) bool {
	if !c.ell.Equals(o.ell) {
		return false
	}
	if c.frame == o.frame && c.frame != LLA {
		if c.frame == ECI && c.tt.Seconds() != o.tt.Seconds() {
			return false
		}
		return floats.Distance(c.v[:], o.v[:], 2) <= tolerance
	}
	a, err := c.ToECEF()
	if err != nil {
		return false
	}
	b, err := o.ToECEF()
	if err != nil {
		return false
	}
	return floats.Distance(a.v[:], b.v[:], 2) <= tolerance
}

// LatLng returns the geodetic latitude and longitude as an s2.LatLng.
func (c Coordinate) LatLng() (s2.LatLng, error) {
	lat, lon, _, err := c.Geodetic()
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(lat) * s1.Degree, Lng: s1.Angle(lon) * s1.Degree}, nil
}

func (c Coordinate) String() string {
	if c.frame == LLA {
		return fmt.Sprintf("LLA(lat=%.9f° lon=%.9f° alt=%.4f m) on %s", c.v[0], c.v[1], c.v[2], c.ell.Name())
	}
	return fmt.Sprintf("%s(%.4f, %.4f, %.4f) m on %s", c.frame, c.v[0], c.v[1], c.v[2], c.ell.Name())
}

func (c Coordinate) with(f Frame, a, b, d float64) Coordinate {
	return Coordinate{f, [3]float64{a, b, d}, c.ell, c.tt, c.eop}
}

