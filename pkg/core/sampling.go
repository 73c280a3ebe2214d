package core

import "math"

// Sampling routines used by materials and emitters. Directions are
// expressed in the local shading frame (+Z is the surface normal), so a
// direction's Z component is the cosine with the normal.

// SphericalDirection converts spherical angles to a unit direction in the
// local frame
func SphericalDirection(theta, phi float64) Vec3 {
	sinTheta := math.Sin(theta)
	return NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), math.Cos(theta))
}

// SampleCosineHemisphere generates a cosine-weighted direction in the
// upper hemisphere of the local frame
func SampleCosineHemisphere(sample Vec2) Vec3 {
	theta := math.Acos(math.Sqrt(1.0 - sample.X))
	phi := 2.0 * math.Pi * sample.Y
	return SphericalDirection(theta, phi)
}

// PdfCosineHemisphere returns the solid-angle density of
// SampleCosineHemisphere for the given local direction
func PdfCosineHemisphere(dir Vec3) float64 {
	if dir.Z < 0 {
		return 0
	}
	return dir.Z / math.Pi
}

// SampleUniformSphere generates a uniform direction on the unit sphere
func SampleUniformSphere(sample Vec2) Vec3 {
	theta := math.Acos(2.0*sample.X - 1.0)
	phi := 2.0 * math.Pi * sample.Y
	return SphericalDirection(theta, phi)
}

// PdfUniformSphere returns the constant density of SampleUniformSphere
func PdfUniformSphere() float64 {
	return 1.0 / (4.0 * math.Pi)
}

// SamplePhongLobe generates a direction from the cosine-power lobe
// z^exponent around the local +Z axis
func SamplePhongLobe(sample Vec2, exponent float64) Vec3 {
	theta := math.Acos(math.Pow(1.0-sample.X, 1.0/(exponent+1.0)))
	phi := 2.0 * math.Pi * sample.Y
	return SphericalDirection(theta, phi)
}

// PdfPhongLobe returns the solid-angle density of SamplePhongLobe for the
// given local direction
func PdfPhongLobe(dir Vec3, exponent float64) float64 {
	if dir.Z < 0 {
		return 0
	}
	return math.Pow(dir.Z, exponent) * (exponent + 1.0) / (2.0 * math.Pi)
}

// SampleCone generates a direction inside the cone around local +Z whose
// half-angle has the given cosine
func SampleCone(sample Vec2, cosThetaMax float64) Vec3 {
	theta := math.Acos(1.0 + sample.X*(cosThetaMax-1.0))
	phi := 2.0 * math.Pi * sample.Y
	return SphericalDirection(theta, phi)
}

// PdfCone returns the constant density of SampleCone inside the cone and
// zero outside it
func PdfCone(dir Vec3, cosThetaMax float64) float64 {
	if dir.Z < cosThetaMax {
		return 0
	}
	return 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
}

// SamplePointInUnitDisk generates a point in the unit disk using concentric
// mapping, avoiding rejection sampling; used for lens apertures
func SamplePointInUnitDisk(sample Vec2) Vec2 {
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec2(0, 0)
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}

// BalanceHeuristic combines two sampling strategies' densities into the
// multiple importance sampling weight for the first one. A non-positive
// denominator yields weight zero rather than a division by zero.
func BalanceHeuristic(pdfA, pdfB float64) float64 {
	denom := pdfA + pdfB
	if denom <= 0 {
		return 0
	}
	return pdfA / denom
}

// SurfaceToSolidAngle converts a surface-area density at point y with
// normal n to a solid-angle density as seen from the shading point p
func SurfaceToSolidAngle(pdf float64, p, y, n Vec3) float64 {
	toP := p.Subtract(y)
	dist2 := toP.LengthSquared()
	cosTheta := toP.Normalize().Dot(n)
	if cosTheta == 0 {
		return 0
	}
	return pdf * dist2 / math.Abs(cosTheta)
}
