package geoframe

import "math"

const (
	// polarAxisε is the distance to the polar axis (in meters) under which longitude is undefined.
	polarAxisε = 1e-9
	// iterativeε is the convergence threshold on z (in meters) of the fallback inversion.
	iterativeε = 1e-6
)

// ecefFromGeodetic converts geodetic coordinates (radians and meters) to ECEF (meters).
func ecefFromGeodetic(φ, λ, h float64, e Ellipsoid) (x, y, z float64) {
	sφ, cφ := math.Sincos(φ)
	sλ, cλ := math.Sincos(λ)
	a, b := e.a, e.SemiMinorAxis()
	N := e.PrimeVerticalRadius(φ)
	x = (N + h) * cφ * cλ
	y = (N + h) * cφ * sλ
	z = ((b*b)/(a*a)*N + h) * sφ
	return
}

// geodeticFromECEF converts ECEF (meters) to geodetic coordinates (radians and meters)
// using Ferrari's closed form solution, as derived by Zhu (1993) and Heikkinen (1982).
func geodeticFromECEF(x, y, z float64, e Ellipsoid) (φ, λ, h float64) {
	a, b := e.a, e.SemiMinorAxis()
	p := math.Hypot(x, y)
	if p < polarAxisε {
		// On the polar axis: the longitude is undefined and the closed form divides by p.
		φ = math.Pi / 2
		if z < 0 {
			φ = -φ
		}
		return φ, 0, math.Abs(z) - b
	}
	a2, b2 := a*a, b*b
	r := a2 - b2 // a²-b², the "E²" term of Zhu
	e2 := r / a2
	ep2 := r / b2
	F := 54 * b2 * z * z
	G := p*p + (1-e2)*z*z - e2*r
	if G <= 0 {
		return geodeticIterative(x, y, z, e)
	}
	c := e2 * e2 * F * p * p / (G * G * G)
	disc := c*c + 2*c
	if disc < 0 {
		return geodeticIterative(x, y, z, e)
	}
	s := math.Cbrt(1 + c + math.Sqrt(disc))
	k := s + 1 + 1/s
	P := F / (3 * k * k * G * G)
	Q := math.Sqrt(1 + 2*e2*e2*P)
	// Round-off makes this slightly negative for points a few millimeters off the polar axis.
	rad := a2/2*(1+1/Q) - P*(1-e2)*z*z/(Q*(1+Q)) - P*p*p/2
	r0 := -(P*e2*p)/(1+Q) + math.Sqrt(math.Max(rad, 0))
	t := p - e2*r0
	U := math.Sqrt(t*t + z*z)
	V := math.Sqrt(t*t + (1-e2)*z*z)
	z0 := b2 * z / (a * V)
	φ = math.Atan((z + ep2*z0) / p)
	λ = math.Atan2(y, x)
	h = U * (1 - b2/(a*V))
	return
}

// geodeticIterative solves the inverse problem by fixed point iteration on z.
// This only serves points so deep inside the ellipsoid that Ferrari's discriminant is negative.
func geodeticIterative(x, y, z float64, e Ellipsoid) (φ, λ, h float64) {
	e2 := e.E2()
	r2 := x*x + y*y
	v := e.a
	zi := z
	for i, zk := 0, math.Inf(1); i < 100 && math.Abs(zi-zk) >= iterativeε; i++ {
		zk = zi
		sφ := zk / math.Sqrt(r2+zk*zk)
		v = e.a / math.Sqrt(1-e2*sφ*sφ)
		zi = z + v*e2*sφ
	}
	φ = math.Atan(zi / math.Sqrt(r2))
	λ = math.Atan2(y, x)
	h = math.Sqrt(r2+zi*zi) - v
	return
}
