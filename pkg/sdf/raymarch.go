package sdf

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

// Smallest advance per step, keeps grazing rays from stalling
const minAdvance = 1e-7

// Status reports how a marching attempt ended
type Status int

const (
	// StatusMiss means no surface was found within the travel window
	StatusMiss Status = iota
	// StatusHit means a surface was detected under the hit epsilon
	StatusHit
	// StatusMaxSteps means the step budget ran out before convergence
	StatusMaxSteps
	// StatusEscapedBounds means the ray never entered the object's bounds
	StatusEscapedBounds
)

// String returns a human-readable status name
func (s Status) String() string {
	switch s {
	case StatusMiss:
		return "miss"
	case StatusHit:
		return "hit"
	case StatusMaxSteps:
		return "max-steps-exceeded"
	case StatusEscapedBounds:
		return "escaped-bounds"
	default:
		return "unknown"
	}
}

// Hit is the payload returned once a surface hit is confirmed
type Hit struct {
	T        float64
	Position core.Vec3
	Normal   core.Vec3
	Material material.Material
	Steps    int
}

// Result is the outcome of one marching attempt; Hit is non-nil only for
// StatusHit
type Result struct {
	Status Status
	Hit    *Hit
}

// Raymarch sphere-traces the ray against one signed-distance object. The
// march is clipped to the object's bounds and to the ray's [TMin,TMax]
// window before any field evaluation happens. Each step advances by
// max(distance·step clamp·object step scale, hit epsilon, 1e-7), so the
// march always moves forward, even from inside the surface.
func Raymarch(ray core.Ray, obj Object, settings Settings) Result {
	entry, exit, ok := obj.Bounds().HitRange(ray)
	if !ok {
		return Result{Status: StatusEscapedBounds}
	}
	exit = math.Min(exit, settings.MaxTravelDistance)
	if exit <= entry {
		return Result{Status: StatusEscapedBounds}
	}

	stepScale := objectStepScale(obj)

	t := entry
	for steps := 0; steps < settings.MaxSteps; steps++ {
		position := ray.At(t)
		distance := obj.Distance(position)

		// A broken field wedges the march rather than converging
		if math.IsNaN(distance) || math.IsInf(distance, 0) {
			return Result{Status: StatusMaxSteps}
		}

		if math.Abs(distance) <= settings.HitEpsilon {
			return Result{
				Status: StatusHit,
				Hit: &Hit{
					T:        t,
					Position: position,
					Normal:   Normal(position, obj, settings.NormalEpsilon),
					Material: obj.Material(),
					Steps:    steps,
				},
			}
		}

		step := distance * settings.StepClamp * stepScale
		if step < settings.HitEpsilon {
			step = settings.HitEpsilon
		}
		if step < minAdvance {
			step = minAdvance
		}

		t += step
		if t > exit {
			return Result{Status: StatusMiss}
		}
	}

	return Result{Status: StatusMaxSteps}
}

// Normal estimates the surface normal at p, preferring the object's
// closed-form gradient and falling back to central differences on the
// field. Degenerate gradients fall back to +Y so shading always has a
// frame.
func Normal(p core.Vec3, obj Object, epsilon float64) core.Vec3 {
	if field, ok := obj.(GradientField); ok {
		if gradient, ok := field.Gradient(p); ok && gradient.LengthSquared() > machineEpsilon {
			return gradient.Normalize()
		}
	}

	if epsilon <= 0 {
		epsilon = 1e-4
	}

	gradient := core.NewVec3(
		obj.Distance(p.Add(core.NewVec3(epsilon, 0, 0)))-obj.Distance(p.Subtract(core.NewVec3(epsilon, 0, 0))),
		obj.Distance(p.Add(core.NewVec3(0, epsilon, 0)))-obj.Distance(p.Subtract(core.NewVec3(0, epsilon, 0))),
		obj.Distance(p.Add(core.NewVec3(0, 0, epsilon)))-obj.Distance(p.Subtract(core.NewVec3(0, 0, epsilon))),
	)
	if gradient.LengthSquared() <= machineEpsilon {
		return core.NewVec3(0, 1, 0)
	}
	return gradient.Normalize()
}

const machineEpsilon = 2.220446049250313e-16

// SurfaceBias offsets a hit point by twice the hit epsilon along its
// normal so secondary rays do not immediately re-enter the hit shell
func SurfaceBias(position, normal core.Vec3, settings Settings) core.Vec3 {
	if normal.LengthSquared() <= machineEpsilon {
		return position
	}
	return position.Add(normal.Normalize().Multiply(2 * settings.HitEpsilon))
}
