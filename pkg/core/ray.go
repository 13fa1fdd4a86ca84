package core

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a ray with an origin and direction.
// The direction is not required to be unit length.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Normalized returns a copy of the ray with a unit-length direction
func (r Ray) Normalized() Ray {
	return Ray{Origin: r.Origin, Direction: r.Direction.Normalize()}
}
