package geoframe

import "github.com/pkg/errors"

// Error kinds returned by this package. They are always wrapped with the
// offending values, so match them with errors.Is.
var (
	// ErrInvalidLatitude is returned when a latitude is outside [-90, 90] degrees.
	ErrInvalidLatitude = errors.New("latitude out of range")
	// ErrInvalidLongitude is returned when a longitude is NaN or infinite.
	ErrInvalidLongitude = errors.New("longitude is not finite")
	// ErrInvalidTimeContext is returned when an instant has no usable time zone or epoch.
	ErrInvalidTimeContext = errors.New("invalid timestamp")
	// ErrGridLookupOutOfRange is returned when a geoid lookup falls outside the grid.
	ErrGridLookupOutOfRange = errors.New("geoid grid lookup out of range")
	// ErrUnsupportedEllipsoid is returned when a geoid model is queried with a
	// coordinate defined on another ellipsoid.
	ErrUnsupportedEllipsoid = errors.New("unsupported ellipsoid")
	// ErrInvalidEllipsoid is returned for non physical ellipsoid parameters.
	ErrInvalidEllipsoid = errors.New("invalid ellipsoid")
	// ErrUnknownEllipsoid is returned when a named ellipsoid is not built in.
	ErrUnknownEllipsoid = errors.New("unknown ellipsoid")
	// ErrInvalidGrid is returned when decoded grid samples are inconsistent.
	ErrInvalidGrid = errors.New("invalid geoid grid")
	// ErrNotOnGrid is returned by literal lookups between grid nodes.
	ErrNotOnGrid = errors.New("position is not a grid node")
	// ErrUnknownStation is returned when a named station is not built in.
	ErrUnknownStation = errors.New("unknown station")
)
