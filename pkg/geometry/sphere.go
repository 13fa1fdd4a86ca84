package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Sphere represents a sphere shape
type Sphere struct {
	center   mgl64.Vec3
	radius   float64
	material core.Shader
}

// NewSphere creates a new sphere
func NewSphere(center mgl64.Vec3, radius float64, material core.Shader) *Sphere {
	return &Sphere{
		center:   center,
		radius:   radius,
		material: material,
	}
}

// Center returns the sphere center
func (s *Sphere) Center() mgl64.Vec3 { return s.center }

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 { return s.radius }

// Intersect tests the ray against the sphere. The direction is normalized
// first, so t is a distance along the ray rather than a raw parameter.
func (s *Sphere) Intersect(r core.Ray, hit *core.Hit, tMin float64) bool {
	ray := r.Normalized()
	oc := ray.Origin.Sub(s.center)

	// |D| = 1 so the quadratic is t² + bt + c = 0
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.radius*s.radius
	discriminant := b*b - 4*c

	var t float64
	switch {
	case discriminant < 0:
		return false
	case discriminant == 0:
		t = -b / 2
	default:
		sqrtD := math.Sqrt(discriminant)
		t = (-b - sqrtD) / 2
		if t < 0 {
			// Origin is inside the sphere, use the far root
			t = (-b + sqrtD) / 2
		}
	}

	if !hit.Accepts(t, tMin) {
		return false
	}

	point := ray.At(t)
	hit.Set(t, point, point.Sub(s.center).Normalize(), s.material)
	return true
}
