package geometry

import (
	"math"
	"testing"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

func testQuad(mat material.Material) *Quad {
	// 2x2 quad in the z=0 plane facing +z, centered on the origin
	return NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)
}

func TestQuad_Hit_InsideAndOutside(t *testing.T) {
	quad := testQuad(material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))

	tests := []struct {
		name      string
		rayOrigin core.Vec3
		expectHit bool
	}{
		{"center hit", core.NewVec3(0, 0, 5), true},
		{"near corner hit", core.NewVec3(0.9, 0.9, 5), true},
		{"outside in u", core.NewVec3(1.5, 0, 5), false},
		{"outside in v", core.NewVec3(0, -1.5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, core.NewVec3(0, 0, -1))
			hit, isHit := quad.Hit(ray, nil)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-5.0) > 1e-9 {
				t.Errorf("Expected t=5, got t=%f", hit.T)
			}
			if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
				t.Errorf("Expected normal +z, got %v", hit.Normal)
			}
		})
	}
}

func TestQuad_Hit_ParallelRayMisses(t *testing.T) {
	quad := testQuad(material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0))

	if _, isHit := quad.Hit(ray, nil); isHit {
		t.Error("Expected parallel ray to miss the quad")
	}
}

func TestQuad_Hit_UVCoordinates(t *testing.T) {
	quad := testQuad(material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))

	ray := core.NewRay(core.NewVec3(-0.5, 0.5, 5), core.NewVec3(0, 0, -1))
	hit, isHit := quad.Hit(ray, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// Corner (-1,-1), so x=-0.5 is a quarter along u and y=0.5 is three quarters along v
	if math.Abs(hit.UV.X-0.25) > 1e-9 || math.Abs(hit.UV.Y-0.75) > 1e-9 {
		t.Errorf("Expected UV (0.25, 0.75), got %v", hit.UV)
	}
}

func TestQuad_SampleDirect_SolidAngleDensity(t *testing.T) {
	radiance := core.NewVec3(5, 5, 5)
	quad := testQuad(material.NewDiffuseLight(radiance))
	ref := core.NewVec3(0, 0, 3)

	// Sample the quad center: distance 3, cosine 1, area 4
	es, ok := quad.SampleDirect(ref, core.NewVec2(0.5, 0.5))
	if !ok {
		t.Fatal("Expected a direct sample on the quad")
	}

	expectedPdf := (1.0 / 4.0) * 9.0
	if math.Abs(es.Pdf-expectedPdf) > 1e-9 {
		t.Errorf("Solid-angle pdf: got %f, expected %f", es.Pdf, expectedPdf)
	}
	if es.Point.Subtract(core.NewVec3(0, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected sample at the quad center, got %v", es.Point)
	}
	if math.Abs(es.Distance-3.0) > 1e-9 {
		t.Errorf("Distance: got %f, expected 3", es.Distance)
	}
	if es.Emission != radiance {
		t.Errorf("Front-side emission: got %v, expected %v", es.Emission, radiance)
	}

	pdf := quad.PdfDirect(ref, es.Point, es.Normal)
	if math.Abs(pdf-es.Pdf) > 1e-9 {
		t.Errorf("PdfDirect: got %f, expected %f", pdf, es.Pdf)
	}
}

func TestQuad_SampleDirect_BackSideSeesNoEmission(t *testing.T) {
	quad := testQuad(material.NewDiffuseLight(core.NewVec3(5, 5, 5)))

	// Reference behind the quad: geometry is sampled but the light is one-sided
	es, ok := quad.SampleDirect(core.NewVec3(0, 0, -3), core.NewVec2(0.5, 0.5))
	if !ok {
		t.Fatal("Expected a geometric sample from behind the quad")
	}
	if !es.Emission.IsZero() {
		t.Errorf("Back-side emission: got %v, expected zero", es.Emission)
	}
}

func TestQuad_SampleDirect_EdgeOnFails(t *testing.T) {
	quad := testQuad(material.NewDiffuseLight(core.NewVec3(5, 5, 5)))

	// Reference in the quad plane: the solid-angle conversion degenerates
	if _, ok := quad.SampleDirect(core.NewVec3(5, 0, 0), core.NewVec2(0.5, 0.5)); ok {
		t.Error("Expected edge-on sample to fail")
	}
}
