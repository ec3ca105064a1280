package geoframe

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// EOP holds the Earth orientation parameters at a given instant.
type EOP struct {
	Xp, Yp float64 // Pole coordinates in arc seconds
	DUT1   float64 // UT1-UTC in seconds
	LOD    float64 // Excess length of day in seconds
}

func (p EOP) String() string {
	return fmt.Sprintf("xp=%.6f\" yp=%.6f\" UT1-UTC=%.7f s LOD=%.7f s", p.Xp, p.Yp, p.DUT1, p.LOD)
}

// EOPRecord is an EOP sample at a given epoch (e.g. one line of IERS finals2000A).
type EOPRecord struct {
	Epoch time.Time
	EOP
}

// EOPTable is an immutable time series of Earth orientation parameters.
type EOPTable struct {
	records []EOPRecord
}

// NewEOPTable returns a table of the provided records, sorted by epoch.
// Two records cannot share an epoch.
func NewEOPTable(records []EOPRecord) (*EOPTable, error) {
	if len(records) == 0 {
		return nil, errors.New("no EOP records")
	}
	sorted := make([]EOPRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Epoch.Before(sorted[j].Epoch) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Epoch.Equal(sorted[i-1].Epoch) {
			return nil, errors.Errorf("duplicate EOP record at %s", sorted[i].Epoch)
		}
	}
	return &EOPTable{sorted}, nil
}

// Len returns the number of records.
func (t *EOPTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns the parameters at the provided instant by linear interpolation.
// Instants outside the table are clamped to the first or last record.
// A nil table returns the zero EOP: no polar motion and UT1 = UTC.
func (t *EOPTable) At(dt time.Time) EOP {
	if t == nil || len(t.records) == 0 {
		return EOP{}
	}
	n := len(t.records)
	i := sort.Search(n, func(i int) bool { return t.records[i].Epoch.After(dt) })
	if i == 0 {
		return t.records[0].EOP
	}
	if i == n {
		return t.records[n-1].EOP
	}
	prev, next := t.records[i-1], t.records[i]
	α := dt.Sub(prev.Epoch).Seconds() / next.Epoch.Sub(prev.Epoch).Seconds()
	lerp := func(a, b float64) float64 { return a + α*(b-a) }
	return EOP{
		Xp:   lerp(prev.Xp, next.Xp),
		Yp:   lerp(prev.Yp, next.Yp),
		DUT1: lerp(prev.DUT1, next.DUT1),
		LOD:  lerp(prev.LOD, next.LOD),
	}
}
