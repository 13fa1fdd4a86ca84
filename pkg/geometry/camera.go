package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera generates primary rays from normalized device coordinates
type Camera interface {
	// GenerateRay returns the ray through an NDC point in [-1,1]×[-1,1]
	GenerateRay(ndc mgl64.Vec2) core.Ray
	// MinimumT is the near bound passed to the root Intersect
	MinimumT() float64
}

// PerspectiveCamera is a pinhole camera with a symmetric field of view
type PerspectiveCamera struct {
	center     mgl64.Vec3
	direction  mgl64.Vec3
	up         mgl64.Vec3
	horizontal mgl64.Vec3

	angle            float64 // Full field of view in degrees
	distanceToScreen float64
	aspectRatio      float64
}

// NewPerspectiveCamera creates a camera at center looking along direction.
// up only needs to be non-parallel to direction; the stored basis is
// orthonormal. An aspect ratio <= 0 is treated as 1.
func NewPerspectiveCamera(center, direction, up mgl64.Vec3, fovDegrees, aspectRatio float64) *PerspectiveCamera {
	if aspectRatio <= 0 {
		aspectRatio = 1
	}

	dir := direction.Normalize()
	horizontal := dir.Cross(up).Normalize()
	c := &PerspectiveCamera{
		center:      center,
		direction:   dir,
		horizontal:  horizontal,
		up:          horizontal.Cross(dir).Normalize(),
		aspectRatio: aspectRatio,
	}
	c.SetAngle(fovDegrees)
	return c
}

// SetAngle changes the field of view and recomputes the screen distance
func (c *PerspectiveCamera) SetAngle(fovDegrees float64) {
	c.angle = fovDegrees
	c.distanceToScreen = 1 / math.Tan(mgl64.DegToRad(fovDegrees)/2)
}

// Angle returns the field of view in degrees
func (c *PerspectiveCamera) Angle() float64 { return c.angle }

// Center returns the eye position
func (c *PerspectiveCamera) Center() mgl64.Vec3 { return c.center }

// Basis returns the orthonormal forward, up and horizontal vectors
func (c *PerspectiveCamera) Basis() (direction, up, horizontal mgl64.Vec3) {
	return c.direction, c.up, c.horizontal
}

// GenerateRay returns a ray from the eye through the screen point. The
// direction is not normalized; its length grows toward the frame edges.
func (c *PerspectiveCamera) GenerateRay(ndc mgl64.Vec2) core.Ray {
	dir := c.horizontal.Mul(ndc.X()).
		Add(c.direction.Mul(c.distanceToScreen)).
		Add(c.up.Mul(c.aspectRatio * ndc.Y()))
	return core.NewRay(c.center, dir)
}

// MinimumT returns 0, the camera has no near clip plane
func (c *PerspectiveCamera) MinimumT() float64 { return 0 }
