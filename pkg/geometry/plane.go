package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Plane is the infinite plane of points p with normal·p = offset
type Plane struct {
	normal   mgl64.Vec3
	offset   float64
	material core.Shader
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(normal mgl64.Vec3, offset float64, material core.Shader) *Plane {
	return &Plane{
		normal:   normal.Normalize(),
		offset:   offset,
		material: material,
	}
}

// Normal returns the unit plane normal
func (p *Plane) Normal() mgl64.Vec3 { return p.normal }

// Offset returns the signed distance of the plane from the origin
func (p *Plane) Offset() float64 { return p.offset }

// Intersect tests the ray against the plane. Like the sphere, t is measured
// along the normalized direction. The stored normal is the plane normal as
// given, never flipped toward the viewer.
func (p *Plane) Intersect(r core.Ray, hit *core.Hit, tMin float64) bool {
	ray := r.Normalized()

	denominator := ray.Direction.Dot(p.normal)
	if denominator == 0 {
		// Parallel to the plane
		return false
	}

	t := (p.offset - p.normal.Dot(ray.Origin)) / denominator
	if !hit.Accepts(t, tMin) {
		return false
	}

	hit.Set(t, ray.At(t), p.normal, p.material)
	return true
}
