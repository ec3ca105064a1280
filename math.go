package geoframe

import (
	"math"

	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
	// arcsec2rad converts arc seconds to radians.
	arcsec2rad = deg2rad / 3600
)

// norm returns the norm of a given vector which is supposed to be 3x1.
func norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// cross performs the cross product.
func cross(a, b []float64) []float64 {
	return []float64{a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0]}
}

// checkLatitude returns an ErrInvalidLatitude if the latitude (in degrees) is not within [-90, 90].
// Latitudes are never clamped.
func checkLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return errors.Wrapf(ErrInvalidLatitude, "%f not in [-90, 90]", latitude)
	}
	return nil
}

// checkLongitude returns an ErrInvalidLongitude if the longitude cannot be normalized.
func checkLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return errors.Wrapf(ErrInvalidLongitude, "%f", longitude)
	}
	return nil
}

// NormalizeLongitude returns the longitude (in degrees) within (-180, 180].
// Both -180 and 180 map to 180.
func NormalizeLongitude(longitude float64) float64 {
	λ := math.Mod(longitude, 360)
	if λ <= -180 {
		λ += 360
	} else if λ > 180 {
		λ -= 360
	}
	return λ
}
