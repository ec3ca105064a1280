package geoframe

import (
	"math"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

// nodeε is the tolerance (in degrees) under which a position is considered on a grid node.
const nodeε = 1e-9

// Interpolation selects how a GeoidModel computes heights between grid nodes.
type Interpolation uint8

const (
	// Bilinear interpolates between the four surrounding nodes.
	Bilinear Interpolation = iota
	// Literal only returns the heights of the grid nodes themselves.
	Literal
)

func (m Interpolation) String() string {
	switch m {
	case Bilinear:
		return "bilinear"
	case Literal:
		return "literal"
	default:
		return "unknown"
	}
}

// InterpolationFromString returns the interpolation method from its name.
func InterpolationFromString(name string) (Interpolation, error) {
	switch strings.ToLower(name) {
	case "", "bilinear":
		return Bilinear, nil
	case "literal":
		return Literal, nil
	default:
		return 0, errors.Errorf("unknown interpolation method '%s'", name)
	}
}

// GeoidModel returns geoid undulations above a reference ellipsoid from a decoded grid.
// It is immutable and safe for concurrent use.
type GeoidModel struct {
	grid     Grid
	ell      Ellipsoid
	method   Interpolation
	logger   log.Logger
	lats     []float64
	lons     []float64
	periodic bool
}

// GeoidOption configures a GeoidModel.
type GeoidOption func(*GeoidModel)

// WithInterpolation sets the default interpolation method (Bilinear otherwise).
func WithInterpolation(m Interpolation) GeoidOption {
	return func(g *GeoidModel) { g.method = m }
}

// WithLogger sets the logger used to trace lookups at debug level.
func WithLogger(logger log.Logger) GeoidOption {
	return func(g *GeoidModel) { g.logger = logger }
}

// NewGeoidModel returns a geoid model over the provided grid, valid on the provided ellipsoid only.
func NewGeoidModel(g Grid, e Ellipsoid, opts ...GeoidOption) (*GeoidModel, error) {
	if g == nil {
		return nil, errors.Wrap(ErrInvalidGrid, "nil grid")
	}
	rows, cols := g.Dims()
	dLat, dLon := g.Spacing()
	if rows < 2 || cols < 2 || !(dLat > 0) || !(dLon > 0) {
		return nil, errors.Wrapf(ErrInvalidGrid, "%dx%d grid with spacing (%f, %f)", rows, cols, dLat, dLon)
	}
	lat0, lon0 := g.Origin()
	m := &GeoidModel{grid: g, ell: e, method: Bilinear, logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(m)
	}
	m.lats = make([]float64, rows)
	for i := range m.lats {
		m.lats[i] = lat0 + float64(i)*dLat
	}
	// A grid covering the full circle wraps its last cell back onto the first column.
	m.periodic = math.Abs(float64(cols)*dLon-360) < nodeε
	n := cols
	if m.periodic {
		n++
	}
	m.lons = make([]float64, n)
	for j := range m.lons {
		m.lons[j] = lon0 + float64(j)*dLon
	}
	level.Debug(m.logger).Log("msg", "geoid model ready", "rows", rows, "cols", cols, "periodic", m.periodic, "ellipsoid", e.Name(), "method", m.method)
	return m, nil
}

// Ellipsoid returns the ellipsoid this model is defined on.
func (g *GeoidModel) Ellipsoid() Ellipsoid {
	return g.ell
}

// Interpolation returns the default interpolation method.
func (g *GeoidModel) Interpolation() Interpolation {
	return g.method
}

// Height returns the geoid height (in meters) at the provided latitude and longitude (in degrees)
// using the default interpolation method.
func (g *GeoidModel) Height(latitude, longitude float64) (float64, error) {
	return g.HeightWith(g.method, latitude, longitude)
}

// HeightWith returns the geoid height (in meters) using the provided interpolation method.
func (g *GeoidModel) HeightWith(m Interpolation, latitude, longitude float64) (float64, error) {
	if err := checkLatitude(latitude); err != nil {
		return 0, err
	}
	if err := checkLongitude(longitude); err != nil {
		return 0, err
	}
	lon, ok := g.wrapLongitude(longitude)
	if !ok || latitude < g.lats[0]-nodeε || latitude > g.lats[len(g.lats)-1]+nodeε {
		level.Debug(g.logger).Log("msg", "lookup out of range", "lat", latitude, "lon", longitude)
		return 0, errors.Wrapf(ErrGridLookupOutOfRange, "(%f, %f)", latitude, longitude)
	}
	switch m {
	case Bilinear:
		return g.bilinear(latitude, lon), nil
	case Literal:
		return g.literal(latitude, lon)
	default:
		return 0, errors.Errorf("unknown interpolation method %d", m)
	}
}

// wrapLongitude returns the longitude shifted by a multiple of 360° into the grid extent.
func (g *GeoidModel) wrapLongitude(longitude float64) (float64, bool) {
	first, last := g.lons[0], g.lons[len(g.lons)-1]
	λ := NormalizeLongitude(longitude)
	for _, candidate := range []float64{λ, λ + 360, λ - 360} {
		if candidate >= first-nodeε && candidate <= last+nodeε {
			return math.Min(math.Max(candidate, first), last), true
		}
	}
	return 0, false
}

// cell returns the index of the lower node of the cell holding v and the fractional
// position within it. The upper edge of the axis belongs to the last cell.
func cell(axis []float64, v float64) (int, float64) {
	v = math.Min(math.Max(v, axis[0]), axis[len(axis)-1])
	i := floats.Within(axis, v)
	if i < 0 {
		i = len(axis) - 2
	}
	return i, (v - axis[i]) / (axis[i+1] - axis[i])
}

// column maps an index of the longitude axis to a grid column.
func (g *GeoidModel) column(j int) int {
	_, cols := g.grid.Dims()
	return j % cols
}

func (g *GeoidModel) bilinear(latitude, longitude float64) float64 {
	i, t := cell(g.lats, latitude)
	j, u := cell(g.lons, longitude)
	j0, j1 := g.column(j), g.column(j+1)
	h00 := g.grid.At(i, j0)
	h01 := g.grid.At(i, j1)
	h10 := g.grid.At(i+1, j0)
	h11 := g.grid.At(i+1, j1)
	return (1-t)*(1-u)*h00 + (1-t)*u*h01 + t*(1-u)*h10 + t*u*h11
}

func (g *GeoidModel) literal(latitude, longitude float64) (float64, error) {
	i, ok := node(g.lats, latitude)
	if !ok {
		return 0, errors.Wrapf(ErrNotOnGrid, "latitude %f", latitude)
	}
	j, ok := node(g.lons, longitude)
	if !ok {
		return 0, errors.Wrapf(ErrNotOnGrid, "longitude %f", longitude)
	}
	return g.grid.At(i, g.column(j)), nil
}

// node returns the index of the axis node at v, if any.
func node(axis []float64, v float64) (int, bool) {
	step := axis[1] - axis[0]
	k := int(math.Round((v - axis[0]) / step))
	if k < 0 || k >= len(axis) || math.Abs(axis[k]-v) > nodeε {
		return 0, false
	}
	return k, true
}

// Undulation returns the geoid height N (in meters) below the provided coordinate.
// The coordinate must be defined on the ellipsoid of this model.
func (g *GeoidModel) Undulation(c Coordinate) (float64, error) {
	if !c.Ellipsoid().Equals(g.ell) {
		return 0, errors.Wrapf(ErrUnsupportedEllipsoid, "model on %s, coordinate on %s", g.ell.Name(), c.Ellipsoid().Name())
	}
	lat, lon, _, err := c.Geodetic()
	if err != nil {
		return 0, err
	}
	return g.Height(lat, lon)
}

// OrthometricHeight returns the height of the coordinate above the geoid, H = h - N.
func (g *GeoidModel) OrthometricHeight(c Coordinate) (float64, error) {
	if !c.Ellipsoid().Equals(g.ell) {
		return 0, errors.Wrapf(ErrUnsupportedEllipsoid, "model on %s, coordinate on %s", g.ell.Name(), c.Ellipsoid().Name())
	}
	_, _, h, err := c.Geodetic()
	if err != nil {
		return 0, err
	}
	N, err := g.Undulation(c)
	if err != nil {
		return 0, err
	}
	return h - N, nil
}
