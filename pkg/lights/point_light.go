package lights

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PointLight emits equally in all directions from a position. There is no
// distance falloff.
type PointLight struct {
	position mgl64.Vec3
	color    mgl64.Vec3
}

// NewPointLight creates a point light
func NewPointLight(position, color mgl64.Vec3) *PointLight {
	return &PointLight{position: position, color: color}
}

// Type returns the light type
func (l *PointLight) Type() LightType { return LightTypePoint }

// Position returns the light position
func (l *PointLight) Position() mgl64.Vec3 { return l.position }

// SetPosition moves the light
func (l *PointLight) SetPosition(position mgl64.Vec3) { l.position = position }

// Color returns the light color
func (l *PointLight) Color() mgl64.Vec3 { return l.color }

// SetColor changes the light color
func (l *PointLight) SetColor(color mgl64.Vec3) { l.color = color }

// Illuminate returns the direction and distance from point to the light.
// A point at the light's position has no direction and receives nothing.
func (l *PointLight) Illuminate(point mgl64.Vec3) Illumination {
	toLight := l.position.Sub(point)
	distance := toLight.Len()
	if distance == 0 {
		return Illumination{}
	}
	return Illumination{
		Direction: toLight.Mul(1 / distance),
		Color:     l.color,
		Distance:  distance,
	}
}
