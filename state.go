package geoframe

import (
	"fmt"

	"github.com/pkg/errors"
)

// StateVector is a Cartesian position (m) and velocity (m/s) in the ECEF or ECI frame.
type StateVector struct {
	Frame Frame
	R, V  []float64
	TT    TerrestrialTime
	EOP   *EOPTable
}

// NewStateVector returns a new state vector, which must be in the ECEF or ECI frame.
func NewStateVector(f Frame, R, V []float64, tt TerrestrialTime) (StateVector, error) {
	if f != ECEF && f != ECI {
		return StateVector{}, errors.Errorf("state vectors are Cartesian, got frame %s", f)
	}
	if len(R) != 3 || len(V) != 3 {
		return StateVector{}, errors.Errorf("expected 3x1 position and velocity, got %dx1 and %dx1", len(R), len(V))
	}
	return StateVector{f, R, V, tt, nil}, nil
}

// rotationRate returns the Earth angular velocity vector, corrected for the excess length of day.
func rotationRate(eop EOP) []float64 {
	return []float64{0, 0, EarthRotationRate * (1 - eop.LOD/secondsPerDay)}
}

// ToECEF returns the state in the Earth fixed frame: v_ecef = M·v_eci - ω×r_ecef.
func (s StateVector) ToECEF() (StateVector, error) {
	if s.Frame == ECEF {
		return s, nil
	}
	if err := s.TT.mustInstant(); err != nil {
		return StateVector{}, err
	}
	eop := s.EOP.At(s.TT.Time())
	o, err := NewEarthOrientation(s.TT, eop)
	if err != nil {
		return StateVector{}, err
	}
	R := o.ToECEF(s.R)
	V := o.ToECEF(s.V)
	ωxR := cross(rotationRate(eop), R)
	for i := 0; i < 3; i++ {
		V[i] -= ωxR[i]
	}
	return StateVector{ECEF, R, V, s.TT, s.EOP}, nil
}

// ToECI returns the state in the inertial frame: v_eci = Mᵗ·(v_ecef + ω×r_ecef).
func (s StateVector) ToECI() (StateVector, error) {
	if s.Frame == ECI {
		return s, nil
	}
	if err := s.TT.mustInstant(); err != nil {
		return StateVector{}, err
	}
	eop := s.EOP.At(s.TT.Time())
	o, err := NewEarthOrientation(s.TT, eop)
	if err != nil {
		return StateVector{}, err
	}
	ωxR := cross(rotationRate(eop), s.R)
	V := make([]float64, 3)
	for i := 0; i < 3; i++ {
		V[i] = s.V[i] + ωxR[i]
	}
	return StateVector{ECI, o.ToECI(s.R), o.ToECI(V), s.TT, s.EOP}, nil
}

// Position returns the position as a Coordinate on the provided ellipsoid.
func (s StateVector) Position(e Ellipsoid) Coordinate {
	c := Coordinate{s.Frame, [3]float64{s.R[0], s.R[1], s.R[2]}, e, s.TT, nil}
	return c.WithEOP(s.EOP)
}

func (s StateVector) String() string {
	return fmt.Sprintf("%s R=%+v m V=%+v m/s @ %s", s.Frame, s.R, s.V, s.TT)
}
