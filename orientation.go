package geoframe

import (
	"math"

	"github.com/gonum/matrix/mat64"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
)

// IERS frame bias between GCRS and the J2000.0 mean equator and equinox, in milliarcseconds.
const (
	biasη0  = -6.8192
	biasξ0  = -16.617
	biasdα0 = -14.6
)

// EarthOrientation is the rotation from ECI (GCRS) to ECEF (ITRS) at an instant,
// composed as W·R·N·P·B. It is computed once and immutable.
type EarthOrientation struct {
	tt         TerrestrialTime
	eop        EOP
	b, p, n    *mat64.Dense
	r, w, m    *mat64.Dense
	gmst, gast float64 // radians
}

// NewEarthOrientation computes the Earth orientation at the provided instant.
func NewEarthOrientation(tt TerrestrialTime, eop EOP) (EarthOrientation, error) {
	if err := tt.mustInstant(); err != nil {
		return EarthOrientation{}, err
	}
	T := tt.Centuries()
	jde := tt.JDE()

	// Frame bias
	B := chain(R1(-biasη0*1e-3*arcsec2rad), R2(biasξ0*1e-3*arcsec2rad), R3(biasdα0*1e-3*arcsec2rad))

	// IAU 1976 precession
	ζ := (2306.2181*T + 0.30188*T*T + 0.017998*T*T*T) * arcsec2rad
	z := (2306.2181*T + 1.09468*T*T + 0.018203*T*T*T) * arcsec2rad
	θ := (2004.3109*T - 0.42665*T*T - 0.041833*T*T*T) * arcsec2rad
	P := chain(R3(-z), R2(θ), R3(-ζ))

	// IAU 1980 nutation
	Δψa, Δεa := nutation.Nutation(jde)
	Δψ, Δε := Δψa.Rad(), Δεa.Rad()
	ε := nutation.MeanObliquity(jde).Rad()
	N := chain(R1(-ε-Δε), R3(-Δψ), R1(ε))

	// Earth rotation: GMST on UT1 and the equation of the equinoxes.
	gmst := sidereal.Mean(tt.JD(eop.DUT1)).Angle().Rad()
	Ω := moonAscendingNode(T)
	gast := gmst + Δψ*math.Cos(ε) + (0.00264*math.Sin(Ω)+0.000063*math.Sin(2*Ω))*arcsec2rad
	gast = math.Mod(gast, 2*math.Pi)
	if gast < 0 {
		gast += 2 * math.Pi
	}
	R := R3(gast)

	// Polar motion with the TIO locator s'.
	s := -0.000047 * T * arcsec2rad
	W := chain(R1(-eop.Yp*arcsec2rad), R2(-eop.Xp*arcsec2rad), R3(s))

	M := chain(W, R, N, P, B)
	return EarthOrientation{tt: tt, eop: eop, b: B, p: P, n: N, r: R, w: W, m: M, gmst: gmst, gast: gast}, nil
}

// moonAscendingNode returns the mean longitude of the Moon's ascending node in radians.
func moonAscendingNode(T float64) float64 {
	Ω := 125.04455501*3600 + (-6962890.2665+(7.4722+(0.007702-0.00005939*T)*T)*T)*T
	return math.Mod(Ω, 1296000) * arcsec2rad
}

// Matrix returns the ECI to ECEF rotation matrix.
func (o EarthOrientation) Matrix() *mat64.Dense {
	return mat64.DenseCopyOf(o.m)
}

// Transpose returns the ECEF to ECI rotation matrix.
func (o EarthOrientation) Transpose() *mat64.Dense {
	return mat64.DenseCopyOf(o.m.T())
}

// ToECEF rotates an ECI vector to ECEF.
func (o EarthOrientation) ToECEF(v []float64) []float64 {
	return MxV33(o.m, v)
}

// ToECI rotates an ECEF vector to ECI.
func (o EarthOrientation) ToECI(v []float64) []float64 {
	return MTxV33(o.m, v)
}

// Bias returns the frame bias matrix B.
func (o EarthOrientation) Bias() *mat64.Dense { return mat64.DenseCopyOf(o.b) }

// Precession returns the precession matrix P.
func (o EarthOrientation) Precession() *mat64.Dense { return mat64.DenseCopyOf(o.p) }

// Nutation returns the nutation matrix N.
func (o EarthOrientation) Nutation() *mat64.Dense { return mat64.DenseCopyOf(o.n) }

// Rotation returns the Earth rotation matrix R.
func (o EarthOrientation) Rotation() *mat64.Dense { return mat64.DenseCopyOf(o.r) }

// PolarMotion returns the polar motion matrix W.
func (o EarthOrientation) PolarMotion() *mat64.Dense { return mat64.DenseCopyOf(o.w) }

// GMST returns the Greenwich mean sidereal time in radians.
func (o EarthOrientation) GMST() float64 { return o.gmst }

// GAST returns the Greenwich apparent sidereal time in radians.
func (o EarthOrientation) GAST() float64 { return o.gast }

// Time returns the instant of this orientation.
func (o EarthOrientation) Time() TerrestrialTime { return o.tt }

// EOP returns the parameters this orientation was computed with.
func (o EarthOrientation) EOP() EOP { return o.eop }
