package material

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Material is a Phong surface: a diffuse term, plus a specular highlight
// when Shininess is non-zero
type Material struct {
	Diffuse   mgl64.Vec3
	Specular  mgl64.Vec3
	Shininess float64
	Texture   Texture // Replaces Diffuse at textured hits when set
}

// NewMaterial creates a Phong material
func NewMaterial(diffuse, specular mgl64.Vec3, shininess float64) *Material {
	return &Material{
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewDiffuseMaterial creates a material without a specular highlight
func NewDiffuseMaterial(diffuse mgl64.Vec3) *Material {
	return &Material{Diffuse: diffuse}
}

// NewTexturedMaterial creates a diffuse material sampling texture. diffuse
// remains the color of untextured hits and of the ambient term.
func NewTexturedMaterial(diffuse mgl64.Vec3, texture Texture) *Material {
	return &Material{Diffuse: diffuse, Texture: texture}
}

// DiffuseColor returns the flat diffuse color. A nil material is black.
func (m *Material) DiffuseColor() mgl64.Vec3 {
	if m == nil {
		return mgl64.Vec3{}
	}
	return m.Diffuse
}

// diffuseAt returns the texture color when the hit carries coordinates and
// a texture is loaded, otherwise the flat diffuse color
func (m *Material) diffuseAt(hit *core.Hit) mgl64.Vec3 {
	if hit.HasTexture && m.Texture != nil {
		return m.Texture.Sample(hit.TexCoord)
	}
	return m.Diffuse
}

// Shade returns the light reflected toward the ray origin from one light.
// dirToLight must be unit length. A light behind the surface contributes
// nothing, specular included, and so does a nil material.
func (m *Material) Shade(ray core.Ray, hit *core.Hit, dirToLight, lightColor mgl64.Vec3) mgl64.Vec3 {
	if m == nil {
		return mgl64.Vec3{}
	}

	normal := hit.Normal
	lDotN := dirToLight.Dot(normal)
	if lDotN <= 0 {
		return mgl64.Vec3{}
	}

	color := core.Modulate(lightColor, m.diffuseAt(hit)).Mul(lDotN)

	if m.Shininess != 0 {
		reflected := normal.Mul(2 * lDotN).Sub(dirToLight)
		toEye := ray.Direction.Normalize().Mul(-1)
		if rDotV := reflected.Dot(toEye); rDotV > 0 {
			color = color.Add(core.Modulate(lightColor, m.Specular).Mul(math.Pow(rDotV, m.Shininess)))
		}
	}

	return color
}

// LoadTexture replaces the texture with the image at path. A file that
// cannot be read is logged and leaves the material untextured; the
// return value reports whether the texture was loaded.
func (m *Material) LoadTexture(path string, logger *zap.Logger) bool {
	logger = core.LoggerOrNop(logger)

	img, err := loaders.LoadImage(path)
	if err != nil {
		logger.Warn("Texture unavailable, using flat diffuse color",
			zap.String("path", path), zap.Error(err))
		m.Texture = nil
		return false
	}

	m.Texture = NewImageTexture(img.Width, img.Height, img.Pixels)
	logger.Debug("Loaded texture",
		zap.String("path", path),
		zap.String("format", img.Format),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height))
	return true
}
