package geometry

import (
	"math"
	"testing"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, nil)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_OutwardNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit from outside",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit from inside keeps outward normal",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Shape != Shape(sphere) {
				t.Error("Intersection should reference the sphere that produced it")
			}
		})
	}
}

func TestSphere_Hit_RespectsRayWindow(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))

	// TMax short of the sphere: miss
	ray := core.NewRayRange(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), core.RayEpsilon, 3.0)
	if _, isHit := sphere.Hit(ray, nil); isHit {
		t.Error("Expected miss with TMax short of the sphere")
	}

	// TMin past the near root: the far root is returned
	ray = core.NewRayRange(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 5.0, math.Inf(1))
	hit, isHit := sphere.Hit(ray, nil)
	if !isHit {
		t.Fatal("Expected far-root hit, but got miss")
	}
	if math.Abs(hit.T-6.0) > 1e-9 {
		t.Errorf("Expected far root t=6, got t=%f", hit.T)
	}
}

func TestSphere_Hit_CountsIntersections(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))
	stats := &core.Stats{}

	sphere.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), stats)
	sphere.Hit(core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 1, 0)), stats)

	if stats.Intersections != 2 {
		t.Errorf("Expected 2 intersection tests, got %d", stats.Intersections)
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name     string
		normal   core.Vec3
		expected core.Vec2
	}{
		{"north pole", core.NewVec3(0, 1, 0), core.NewVec2(0.5, 0)},
		{"equator +x", core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{"equator +z", core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphereUV(tt.normal)
			if math.Abs(uv.X-tt.expected.X) > 1e-9 || math.Abs(uv.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("sphereUV(%v): got %v, expected %v", tt.normal, uv, tt.expected)
			}
		})
	}
}

func TestSphere_SampleDirect_ConeDensity(t *testing.T) {
	radiance := core.NewVec3(10, 10, 10)
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, material.NewDiffuseLight(radiance))
	ref := core.NewVec3(0, 0, 0)

	cosThetaMax := math.Sqrt(1.0 - 1.0/25.0)
	expectedPdf := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))

	es, ok := sphere.SampleDirect(ref, core.NewVec2(0.3, 0.7))
	if !ok {
		t.Fatal("Expected a direct sample toward the sphere")
	}

	if math.Abs(es.Pdf-expectedPdf) > 1e-9 {
		t.Errorf("Cone pdf: got %f, expected %f", es.Pdf, expectedPdf)
	}
	if math.Abs(es.Point.Subtract(sphere.Center).Length()-sphere.Radius) > 1e-6 {
		t.Errorf("Sample point %v is not on the sphere surface", es.Point)
	}
	if es.Direction.Dot(sphere.Center.Subtract(ref)) <= 0 {
		t.Errorf("Sample direction %v points away from the sphere", es.Direction)
	}
	if es.Emission != radiance {
		t.Errorf("Emission: got %v, expected %v", es.Emission, radiance)
	}

	// The density lookup must agree with the sampler
	pdf := sphere.PdfDirect(ref, es.Point, es.Normal)
	if math.Abs(pdf-es.Pdf) > 1e-9 {
		t.Errorf("PdfDirect: got %f, expected %f", pdf, es.Pdf)
	}
}

func TestSphere_SampleDirect_InsideUniform(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, material.NewDiffuseLight(core.NewVec3(1, 1, 1)))

	// From the center every surface point is at distance r with cosine one
	es, ok := sphere.SampleDirect(core.NewVec3(0, 0, 0), core.NewVec2(0.4, 0.6))
	if !ok {
		t.Fatal("Expected a direct sample from inside the sphere")
	}

	expectedPdf := 1.0 / (4.0 * math.Pi)
	if math.Abs(es.Pdf-expectedPdf) > 1e-9 {
		t.Errorf("Uniform pdf from center: got %f, expected %f", es.Pdf, expectedPdf)
	}
	if math.Abs(es.Distance-2.0) > 1e-9 {
		t.Errorf("Distance from center: got %f, expected 2", es.Distance)
	}
}
