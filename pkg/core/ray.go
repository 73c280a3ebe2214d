package core

import "math"

// RayEpsilon is the default minimum ray parameter, keeping spawned rays
// from immediately re-hitting the surface they left.
const RayEpsilon = 1e-4

// Ray represents a ray with an origin, a direction and a [TMin, TMax]
// validity interval. Shadow rays clamp TMax just short of the light.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray with the default validity interval [RayEpsilon, +inf)
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      RayEpsilon,
		TMax:      math.MaxFloat64,
	}
}

// NewRayRange creates a ray with an explicit validity interval
func NewRayRange(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// WithinRange reports whether t lies inside the ray's validity interval
func (r Ray) WithinRange(t float64) bool {
	return t >= r.TMin && t <= r.TMax
}
