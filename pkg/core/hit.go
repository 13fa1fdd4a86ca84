package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shader is the surface description a primitive stores in a Hit.
// It is implemented by *material.Material.
type Shader interface {
	// Shade returns the contribution of one light arriving from dirToLight
	Shade(ray Ray, hit *Hit, dirToLight, lightColor mgl64.Vec3) mgl64.Vec3
	// DiffuseColor returns the flat diffuse reflectance, used for the ambient term
	DiffuseColor() mgl64.Vec3
}

// Hit accumulates the closest intersection found so far while one ray
// traverses a primitive tree. It is owned by the caller of the top-level
// Intersect and passed down by pointer; primitives only overwrite it with a
// strictly closer intersection.
type Hit struct {
	T          float64    // Parametric distance, +Inf until something is hit
	Point      mgl64.Vec3 // Intersection point in the caller's space
	Normal     mgl64.Vec3 // Unit surface normal
	Material   Shader     // Material of the closest primitive, nil until hit
	HasTexture bool       // Whether TexCoord is valid
	TexCoord   mgl64.Vec2 // Interpolated texture coordinate
}

// NewHit returns an empty hit record
func NewHit() Hit {
	return Hit{T: math.Inf(1)}
}

// Set records an intersection. Texture state is cleared; primitives that
// carry texture coordinates call SetTexCoord afterwards.
func (h *Hit) Set(t float64, point, normal mgl64.Vec3, material Shader) {
	h.T = t
	h.Point = point
	h.Normal = normal
	h.Material = material
	h.HasTexture = false
	h.TexCoord = mgl64.Vec2{}
}

// SetTexCoord records the texture coordinate of the current intersection
func (h *Hit) SetTexCoord(uv mgl64.Vec2) {
	h.TexCoord = uv
	h.HasTexture = true
}

// IsHit reports whether any intersection has been recorded
func (h *Hit) IsHit() bool {
	return !math.IsInf(h.T, 1)
}

// Accepts reports whether t lies in [tMin, h.T), the only window in which a
// candidate may replace the current intersection.
func (h *Hit) Accepts(t, tMin float64) bool {
	return t >= tMin && t < h.T
}
