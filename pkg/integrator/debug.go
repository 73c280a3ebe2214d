package integrator

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/scene"
)

// Normal shades the first visible surface by its geometric normal mapped
// to RGB, a quick visual check that analytic and marched normals agree
type Normal struct{}

// NewNormal creates the normal debug integrator
func NewNormal() *Normal {
	return &Normal{}
}

// RayColor maps the surface normal at the first hit from [-1,1] to [0,1]
func (in *Normal) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, stats *core.Stats) core.Vec3 {
	shading, ok := CollectSurfaceHits(ray, s, stats).Resolve(s)
	if !ok {
		return core.Vec3{}
	}
	return shading.Normal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
}

// Albedo shades the first visible surface by its reflectance, with no
// lighting. Emitters show their radiance clamped to displayable range.
type Albedo struct{}

// NewAlbedo creates the albedo debug integrator
func NewAlbedo() *Albedo {
	return &Albedo{}
}

// RayColor returns the material's sampling weight at the first hit, which
// equals the albedo for every non-emissive material in this renderer
func (in *Albedo) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, stats *core.Stats) core.Vec3 {
	shading, ok := CollectSurfaceHits(ray, s, stats).Resolve(s)
	if !ok {
		return core.Vec3{}
	}

	frame := core.NewFrame(shading.Normal)
	wo := frame.ToLocal(ray.Direction.Negate())

	if shading.Material.IsEmissive() {
		return shading.Material.Emit(wo, shading.UV, shading.Position).Clamp(0, 1)
	}

	// The midpoint sample keeps the debug view noise-free
	sampled, ok := shading.Material.Sample(wo, shading.UV, shading.Position, core.NewVec2(0.5, 0.5))
	if !ok {
		return core.Vec3{}
	}
	return sampled.Weight.Clamp(0, 1)
}
