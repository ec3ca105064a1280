package main

import (
	"bufio"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ChristopherRabotin/geoframe"
	"github.com/pkg/errors"
)

type gridPoint struct {
	lat, lon float64
}

// loadGridFile reads a text grid of `lat,lon,height` lines (degrees and meters).
// Empty lines and lines starting with # are skipped, as is a non numerical header.
func loadGridFile(filename string) (*geoframe.SampleGrid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)
	heights := make(map[gridPoint]float64)
	lats := make(map[float64]bool)
	lons := make(map[float64]bool)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0:1] == "#" {
			continue
		}
		entries := strings.Split(line, ",")
		if len(entries) != 3 {
			return nil, errors.Errorf("line %d: expected 3 columns, got %d", lineNo, len(entries))
		}
		var vals [3]float64
		for i, entry := range entries {
			if vals[i], err = strconv.ParseFloat(strings.TrimSpace(entry), 64); err != nil {
				break
			}
		}
		if err != nil {
			if len(heights) == 0 {
				// Header line
				err = nil
				continue
			}
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		heights[gridPoint{vals[0], vals[1]}] = vals[2]
		lats[vals[0]] = true
		lons[vals[1]] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	latAxis := sortedKeys(lats)
	lonAxis := sortedKeys(lons)
	if len(latAxis) < 2 || len(lonAxis) < 2 {
		return nil, errors.Wrapf(geoframe.ErrInvalidGrid, "%d latitudes and %d longitudes", len(latAxis), len(lonAxis))
	}
	data := make([]float64, 0, len(latAxis)*len(lonAxis))
	for _, lat := range latAxis {
		for _, lon := range lonAxis {
			h, found := heights[gridPoint{lat, lon}]
			if !found {
				return nil, errors.Wrapf(geoframe.ErrInvalidGrid, "missing sample at (%f, %f)", lat, lon)
			}
			data = append(data, h)
		}
	}
	dLat, dLon := latAxis[1]-latAxis[0], lonAxis[1]-lonAxis[0]
	if !uniform(latAxis, dLat) || !uniform(lonAxis, dLon) {
		return nil, errors.Wrap(geoframe.ErrInvalidGrid, "samples are not regularly spaced")
	}
	return geoframe.NewSampleGrid(latAxis[0], lonAxis[0], dLat, dLon, len(latAxis), len(lonAxis), data)
}

func sortedKeys(set map[float64]bool) []float64 {
	keys := make([]float64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

func uniform(axis []float64, step float64) bool {
	for i := range axis {
		if math.Abs(axis[0]+float64(i)*step-axis[i]) > 1e-9 {
			return false
		}
	}
	return true
}

// mjdUnix is the modified Julian date of the Unix epoch.
const mjdUnix = 40587

// loadEOPFile reads an IERS finals2000A file (fixed width columns, Bulletin A values).
// Lines without polar motion or UT1-UTC values, i.e. past the end of the predictions,
// are skipped. Predicted values (flagged P) are only kept if predicted is set.
func loadEOPFile(filename string, predicted bool) (*geoframe.EOPTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)
	var records []geoframe.EOPRecord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if field(line, 18, 27) == "" || field(line, 58, 68) == "" {
			continue
		}
		if !predicted && (field(line, 16, 17) == "P" || field(line, 57, 58) == "P") {
			continue
		}
		var vals [5]float64
		for i, cols := range [5][2]int{{7, 15}, {18, 27}, {37, 46}, {58, 68}, {79, 86}} {
			entry := field(line, cols[0], cols[1])
			if entry == "" && i == 4 {
				// LOD is often missing from predictions
				continue
			}
			if vals[i], err = strconv.ParseFloat(entry, 64); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
		}
		epoch := time.Unix(0, 0).UTC().Add(time.Duration((vals[0] - mjdUnix) * 86400 * float64(time.Second)))
		records = append(records, geoframe.EOPRecord{
			Epoch: epoch,
			EOP:   geoframe.EOP{Xp: vals[1], Yp: vals[2], DUT1: vals[3], LOD: vals[4] / 1e3},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return geoframe.NewEOPTable(records)
}

// field returns the trimmed [from, to) columns of a fixed width line.
func field(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}
