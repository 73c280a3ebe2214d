package integrator

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/scene"
)

// PathMIS is a unidirectional path tracer that combines emitter sampling
// and material sampling with the balance heuristic. One loop serves both
// analytic and marched surfaces; the only difference between them is where
// secondary rays spawn and that marched emitters cannot be sampled
// directly, so their hits always carry full material-sampling weight.
type PathMIS struct {
	maxDepth int
}

// NewPathMIS creates a path tracer that follows paths up to maxDepth
// bounces; non-positive values fall back to the default of 16.
func NewPathMIS(maxDepth int) *PathMIS {
	if maxDepth <= 0 {
		maxDepth = 16
	}
	return &PathMIS{maxDepth: maxDepth}
}

// RayColor estimates the radiance arriving along the given camera ray.
//
// Each iteration shades one path vertex: add its emission (unless the
// previous vertex already accounted for this emitter via direct sampling),
// estimate direct lighting, then extend the path by material sampling. The
// surface hits collected for the extension ray double as the next
// iteration's vertex, so every segment is traced exactly once. Paths
// terminate on a miss, on a failed material sample, or at maxDepth; there
// is no Russian roulette.
func (pt *PathMIS) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, stats *core.Stats) core.Vec3 {
	var accRadiance core.Vec3
	throughput := core.NewVec3(1, 1, 1)
	depth := 0
	skipNextEmission := false

	current := CollectSurfaceHits(ray, s, stats)

	for {
		shading, found := current.Resolve(s)
		if !found {
			background := s.Background.Radiance(ray.Direction)
			accRadiance = accRadiance.Add(throughput.MultiplyVec(background))
			break
		}

		frame := core.NewFrame(shading.Normal)
		wo := frame.ToLocal(ray.Direction.Negate())

		if !skipNextEmission && shading.Material.IsEmissive() {
			emitted := shading.Material.Emit(wo, shading.UV, shading.Position)
			accRadiance = accRadiance.Add(throughput.MultiplyVec(emitted))
		}
		skipNextEmission = false

		if depth >= pt.maxDepth {
			break
		}

		direct := pt.directEmitterMIS(s, shading, frame, wo, sampler, stats)

		sampled, ok := shading.Material.Sample(wo, shading.UV, shading.Position, sampler.Next2D())
		if !ok {
			accRadiance = accRadiance.Add(throughput.MultiplyVec(direct))
			break
		}

		wiWorld := frame.ToWorld(sampled.Wi)
		nextRay := core.NewRay(shading.SpawnOrigin, wiWorld)
		next := CollectSurfaceHits(nextRay, s, stats)

		// If the extension ray lands on an emitter, weight its emission
		// against the density with which direct sampling would have found
		// it. Marched emitters and delta lobes are unreachable by direct
		// sampling and keep full weight.
		if nextShading, hitNext := next.Resolve(s); hitNext && nextShading.Material.IsEmissive() {
			nextFrame := core.NewFrame(nextShading.Normal)
			le := nextShading.Material.Emit(
				nextFrame.ToLocal(wiWorld.Negate()), nextShading.UV, nextShading.Position)

			misWeight := 1.0
			if !shading.Material.IsDelta() {
				pdfMaterial := shading.Material.PDF(wo, sampled.Wi, shading.UV, shading.Position)
				pdfEmitter := 0.0
				if nextShading.Analytic != nil {
					pdfEmitter = s.PdfDirect(shading.SpawnOrigin, nextShading.Analytic)
				}
				misWeight = core.BalanceHeuristic(pdfMaterial, pdfEmitter)
			}

			direct = direct.Add(sampled.Weight.MultiplyVec(le).Multiply(misWeight))
			skipNextEmission = true
		}

		accRadiance = accRadiance.Add(throughput.MultiplyVec(direct))
		throughput = throughput.MultiplyVec(sampled.Weight)
		depth++
		ray = nextRay
		current = next
	}

	return accRadiance
}

// directEmitterMIS estimates direct lighting at one path vertex by sampling
// the analytic emitters. Delta materials never use emitter sampling, and
// the shadow ray runs from the spawn origin so marched surfaces do not
// shadow themselves inside their hit epsilon shell.
func (pt *PathMIS) directEmitterMIS(s *scene.Scene, shading Shading, frame core.Frame, wo core.Vec3, sampler core.Sampler, stats *core.Stats) core.Vec3 {
	if shading.Material.IsDelta() || !s.HasAnalyticEmitters() {
		return core.Vec3{}
	}

	es, ok := s.SampleDirect(shading.SpawnOrigin, sampler.Next2D())
	if !ok || es.Pdf <= 0 {
		return core.Vec3{}
	}
	if es.Distance <= 2*core.RayEpsilon {
		return core.Vec3{}
	}

	shadow := core.NewRayRange(
		shading.SpawnOrigin, es.Direction, core.RayEpsilon, es.Distance-2*core.RayEpsilon)
	if CollectSurfaceHits(shadow, s, stats).Valid() {
		return core.Vec3{}
	}

	wi := frame.ToLocal(es.Direction)
	fCos := shading.Material.Evaluate(wo, wi, shading.UV, shading.Position)
	if fCos.IsZero() {
		return core.Vec3{}
	}

	pdfMaterial := shading.Material.PDF(wo, wi, shading.UV, shading.Position)
	misWeight := core.BalanceHeuristic(es.Pdf, pdfMaterial)
	if misWeight == 0 {
		return core.Vec3{}
	}

	return fCos.MultiplyVec(es.Emission).Multiply(misWeight / es.Pdf)
}
