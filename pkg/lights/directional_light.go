package lights

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DirectionalLight is a light at infinity shining along a fixed direction
type DirectionalLight struct {
	direction mgl64.Vec3 // Propagation direction, unit length
	color     mgl64.Vec3
}

// NewDirectionalLight creates a light travelling along direction
func NewDirectionalLight(direction, color mgl64.Vec3) *DirectionalLight {
	return &DirectionalLight{direction: direction.Normalize(), color: color}
}

// Type returns the light type
func (l *DirectionalLight) Type() LightType { return LightTypeDirectional }

// Direction returns the unit propagation direction
func (l *DirectionalLight) Direction() mgl64.Vec3 { return l.direction }

// SetDirection changes the propagation direction
func (l *DirectionalLight) SetDirection(direction mgl64.Vec3) {
	l.direction = direction.Normalize()
}

// Color returns the light color
func (l *DirectionalLight) Color() mgl64.Vec3 { return l.color }

// SetColor changes the light color
func (l *DirectionalLight) SetColor(color mgl64.Vec3) { l.color = color }

// Illuminate returns the reversed propagation direction at every point
func (l *DirectionalLight) Illuminate(point mgl64.Vec3) Illumination {
	return Illumination{
		Direction: l.direction.Mul(-1),
		Color:     l.color,
		Distance:  math.Inf(1),
	}
}
