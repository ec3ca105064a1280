package geoframe

import (
	"math"

	"github.com/gonum/matrix/mat64"
	"github.com/pkg/errors"
)

// Grid is a regular latitude/longitude grid of geoid heights, as decoded by a data loader.
// Row i is at latitude lat0 + i·dLat and column j at longitude lon0 + j·dLon, with
// positive spacings. All angles are in degrees and heights in meters.
type Grid interface {
	Dims() (rows, cols int)
	Origin() (lat, lon float64)
	Spacing() (dLat, dLon float64)
	At(i, j int) float64
}

// SampleGrid is an in-memory Grid.
type SampleGrid struct {
	lat0, lon0 float64
	dLat, dLon float64
	heights    *mat64.Dense
}

// NewSampleGrid returns a grid from row-major heights, where row i is at lat0 + i·dLat.
// A negative dLat (files listed north to south) is flipped so that rows go south to north.
func NewSampleGrid(lat0, lon0, dLat, dLon float64, rows, cols int, heights []float64) (*SampleGrid, error) {
	if rows < 2 || cols < 2 {
		return nil, errors.Wrapf(ErrInvalidGrid, "need at least 2x2 samples, got %dx%d", rows, cols)
	}
	if len(heights) != rows*cols {
		return nil, errors.Wrapf(ErrInvalidGrid, "%d heights for a %dx%d grid", len(heights), rows, cols)
	}
	if dLat == 0 || dLon <= 0 || math.IsNaN(dLat) || math.IsNaN(dLon) {
		return nil, errors.Wrapf(ErrInvalidGrid, "invalid spacing (%f, %f)", dLat, dLon)
	}
	data := make([]float64, len(heights))
	if dLat < 0 {
		for i := 0; i < rows; i++ {
			copy(data[(rows-1-i)*cols:(rows-i)*cols], heights[i*cols:(i+1)*cols])
		}
		lat0 += float64(rows-1) * dLat
		dLat = -dLat
	} else {
		copy(data, heights)
	}
	if err := checkLatitude(lat0); err != nil {
		return nil, errors.Wrap(ErrInvalidGrid, err.Error())
	}
	if err := checkLatitude(lat0 + float64(rows-1)*dLat); err != nil {
		return nil, errors.Wrap(ErrInvalidGrid, err.Error())
	}
	return &SampleGrid{lat0, lon0, dLat, dLon, mat64.NewDense(rows, cols, data)}, nil
}

// Dims implements the Grid interface.
func (g *SampleGrid) Dims() (rows, cols int) {
	return g.heights.Dims()
}

// Origin implements the Grid interface.
func (g *SampleGrid) Origin() (lat, lon float64) {
	return g.lat0, g.lon0
}

// Spacing implements the Grid interface.
func (g *SampleGrid) Spacing() (dLat, dLon float64) {
	return g.dLat, g.dLon
}

// At implements the Grid interface.
func (g *SampleGrid) At(i, j int) float64 {
	return g.heights.At(i, j)
}
