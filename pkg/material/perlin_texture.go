package material

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

// Noise parameters: amplitude falloff, frequency growth and octave count
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// PerlinTexture blends two colors by 2D Perlin noise
type PerlinTexture struct {
	noise  *perlin.Perlin
	scale  float64
	color1 mgl64.Vec3
	color2 mgl64.Vec3
}

// NewPerlinTexture creates a noise texture. scale sets how many noise cells
// span one unit of texture space. Equal seeds produce equal textures.
func NewPerlinTexture(scale float64, color1, color2 mgl64.Vec3, seed int64) *PerlinTexture {
	return &PerlinTexture{
		noise:  perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		scale:  scale,
		color1: color1,
		color2: color2,
	}
}

// Sample maps the noise value at uv from [-1, 1] to a mix of the two colors
func (p *PerlinTexture) Sample(uv mgl64.Vec2) mgl64.Vec3 {
	n := p.noise.Noise2D(uv.X()*p.scale, uv.Y()*p.scale)
	t := mgl64.Clamp((n+1)/2, 0, 1)
	return p.color1.Mul(1 - t).Add(p.color2.Mul(t))
}
