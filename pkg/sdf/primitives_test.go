package sdf

import (
	"math"
	"testing"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

func TestSphere_Distance(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 0, 0), 2.0, nil)

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"outside on axis", core.NewVec3(5, 0, 0), 2.0},
		{"on the surface", core.NewVec3(3, 0, 0), 0.0},
		{"at the center", core.NewVec3(1, 0, 0), -2.0},
		{"inside off axis", core.NewVec3(1, 1, 0), -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sphere.Distance(tt.point); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Distance(%v): got %f, expected %f", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRoundBox_Distance(t *testing.T) {
	box := NewRoundBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 0.1, nil)

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"outside a face", core.NewVec3(2, 0, 0), 1.0},
		{"at the center", core.NewVec3(0, 0, 0), -1.0},
		{"outside a corner", core.NewVec3(2, 2, 2), 1.1*math.Sqrt(3) - 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Distance(tt.point); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Distance(%v): got %f, expected %f", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRoundBox_SurfaceStaysWithinExtent(t *testing.T) {
	box := NewRoundBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 0.25, nil)

	// The rounding is carved from the extent: the face plane is still the surface
	if got := box.Distance(core.NewVec3(1, 0, 0)); math.Abs(got) > 1e-12 {
		t.Errorf("Face point distance: got %f, expected 0", got)
	}
}

func TestMenger_ZeroIterationsIsBox(t *testing.T) {
	menger := NewMenger(core.NewVec3(0, 0, 0), 1.0, 0, nil)

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"outside a face", core.NewVec3(2, 0, 0), 1.0},
		{"at the center", core.NewVec3(0, 0, 0), -1.0},
		{"on the surface", core.NewVec3(1, 0, 0), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := menger.Distance(tt.point); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Distance(%v): got %f, expected %f", tt.point, got, tt.expected)
			}
		})
	}
}

func TestMenger_ScalesDistances(t *testing.T) {
	unit := NewMenger(core.NewVec3(0, 0, 0), 1.0, 3, nil)
	double := NewMenger(core.NewVec3(0, 0, 0), 2.0, 3, nil)

	p := core.NewVec3(0.4, 0.7, -0.2)
	if got, want := double.Distance(p.Multiply(2)), 2*unit.Distance(p); math.Abs(got-want) > 1e-12 {
		t.Errorf("Scaled sponge: got %f, expected %f", got, want)
	}
}

func TestMenger_IterationsCarveTheCube(t *testing.T) {
	box := NewMenger(core.NewVec3(0, 0, 0), 1.0, 0, nil)
	sponge := NewMenger(core.NewVec3(0, 0, 0), 1.0, 2, nil)

	// Carving only removes volume: the estimator can only grow
	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0.5, 0.1, 0.2),
		core.NewVec3(0.9, 0.9, 0),
		core.NewVec3(0.333, 0.333, 0.333),
	}
	grew := false
	for _, p := range points {
		db, ds := box.Distance(p), sponge.Distance(p)
		if ds < db-1e-12 {
			t.Errorf("Distance(%v) shrank from %f to %f with iterations", p, db, ds)
		}
		if ds > db+1e-12 {
			grew = true
		}
	}
	if !grew {
		t.Error("Expected at least one probe point to see carved space")
	}
}

func TestMenger_BoundsSpanScale(t *testing.T) {
	menger := NewMenger(core.NewVec3(1, 2, 3), 0.5, 4, nil)

	bounds := menger.Bounds()
	if bounds.Min != core.NewVec3(0.5, 1.5, 2.5) || bounds.Max != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Bounds: got [%v, %v]", bounds.Min, bounds.Max)
	}
}

func TestPrimitives_MaterialAndSettings(t *testing.T) {
	mat := material.NewDiffuse(core.NewVec3(0.8, 0.2, 0.2))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, mat)

	if sphere.Material() != material.Material(mat) {
		t.Error("Expected the constructor material")
	}
	if sphere.Settings() != nil {
		t.Error("Expected no marching overrides by default")
	}

	custom := DefaultSettings()
	custom.MaxSteps = 256
	sphere.SetSettings(custom)
	if sphere.Settings() == nil || sphere.Settings().MaxSteps != 256 {
		t.Error("Expected the installed marching override")
	}
}
