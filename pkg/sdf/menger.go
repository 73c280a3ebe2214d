package sdf

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

// Menger is a distance estimator for a Menger sponge fractal cube spanning
// Center ± Scale
type Menger struct {
	object
	Center     core.Vec3
	Scale      float64
	Iterations int
}

// NewMenger creates a Menger sponge field with the given subdivision depth
func NewMenger(center core.Vec3, scale float64, iterations int, mat material.Material) *Menger {
	if scale < 1e-4 {
		scale = 1e-4
	}
	if iterations < 0 {
		iterations = 0
	}
	return &Menger{
		object:     object{mat: mat},
		Center:     center,
		Scale:      scale,
		Iterations: iterations,
	}
}

// Distance returns the estimated signed distance to the sponge surface
func (m *Menger) Distance(p core.Vec3) float64 {
	local := p.Subtract(m.Center).Multiply(1.0 / m.Scale)
	return mengerDistance(local, m.Iterations) * m.Scale
}

// Bounds returns the bounding box of the unsubdivided cube
func (m *Menger) Bounds() core.AABB {
	extent := core.NewVec3(m.Scale, m.Scale, m.Scale)
	return core.NewAABB(m.Center.Subtract(extent), m.Center.Add(extent))
}

// StepScale shrinks marching steps; the estimator underestimates distance
// near the sponge's thin lattice
func (m *Menger) StepScale() float64 {
	return 0.75
}

// mengerDistance carves cross-shaped holes out of a unit cube, tripling the
// lattice frequency each iteration
func mengerDistance(p core.Vec3, iterations int) float64 {
	d := sdBox(p, core.NewVec3(1, 1, 1))
	scale := 1.0

	for i := 0; i < iterations; i++ {
		cell := core.NewVec3(
			remEuclid(p.X*scale, 2)-1,
			remEuclid(p.Y*scale, 2)-1,
			remEuclid(p.Z*scale, 2)-1,
		)

		scale *= 3.0

		r := core.NewVec3(
			1-3*math.Abs(cell.X),
			1-3*math.Abs(cell.Y),
			1-3*math.Abs(cell.Z),
		)

		c := math.Min(math.Max(r.X, r.Y), math.Max(r.Y, r.Z))
		d = math.Max(d, c/scale)
	}

	return d
}

// remEuclid returns the non-negative remainder of x/m
func remEuclid(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
