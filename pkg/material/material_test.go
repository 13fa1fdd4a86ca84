package material

import (
	"image"
	"math"
	"path/filepath"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

const tolerance = 1e-9

// hitFacingZ is a hit on a surface whose normal points at +Z
func hitFacingZ(m *Material) *core.Hit {
	hit := core.NewHit()
	hit.Set(1, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, m)
	return &hit
}

// viewRay looks straight down -Z at the surface
var viewRay = core.NewRay(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -1})

func assertColor(t *testing.T, expected, actual mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], tolerance, "channel %d", i)
	}
}

func TestMaterial_ShadeDiffuse(t *testing.T) {
	m := NewDiffuseMaterial(mgl64.Vec3{1, 0.5, 0})

	tests := []struct {
		name     string
		toLight  mgl64.Vec3
		light    mgl64.Vec3
		expected mgl64.Vec3
	}{
		{"head on", mgl64.Vec3{0, 0, 1}, white, mgl64.Vec3{1, 0.5, 0}},
		{"sixty degrees", mgl64.Vec3{math.Sqrt(3) / 2, 0, 0.5}, white, mgl64.Vec3{0.5, 0.25, 0}},
		{"colored light", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0.5, 1, 1}, mgl64.Vec3{0.5, 0.5, 0}},
		{"grazing", mgl64.Vec3{1, 0, 0}, white, mgl64.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertColor(t, tt.expected, m.Shade(viewRay, hitFacingZ(m), tt.toLight, tt.light))
		})
	}
}

func TestMaterial_ShadeSpecular(t *testing.T) {
	m := NewMaterial(mgl64.Vec3{}, mgl64.Vec3{0.5, 0.5, 0.5}, 2)

	// Mirror direction points straight at the eye
	assertColor(t, mgl64.Vec3{0.5, 0.5, 0.5}, m.Shade(viewRay, hitFacingZ(m), mgl64.Vec3{0, 0, 1}, white))

	// Light at 45°: R·V = cos 45°, squared = 0.5
	toLight := mgl64.Vec3{1, 0, 1}.Normalize()
	assertColor(t, mgl64.Vec3{0.25, 0.25, 0.25}, m.Shade(viewRay, hitFacingZ(m), toLight, white))

	// Unnormalized view directions give the same highlight
	longRay := core.NewRay(viewRay.Origin, mgl64.Vec3{0, 0, -7})
	assertColor(t, mgl64.Vec3{0.25, 0.25, 0.25}, m.Shade(longRay, hitFacingZ(m), toLight, white))
}

func TestMaterial_ShadeDiffusePlusSpecular(t *testing.T) {
	m := NewMaterial(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, 2)
	toLight := mgl64.Vec3{1, 0, 1}.Normalize()

	assertColor(t, mgl64.Vec3{math.Sqrt2 / 2, 0.5, 0}, m.Shade(viewRay, hitFacingZ(m), toLight, white))
}

func TestMaterial_ZeroShininessHasNoHighlight(t *testing.T) {
	m := NewMaterial(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, 0)

	assertColor(t, mgl64.Vec3{}, m.Shade(viewRay, hitFacingZ(m), mgl64.Vec3{0, 0, 1}, white))
}

func TestMaterial_LightBehindSurface(t *testing.T) {
	toLights := []mgl64.Vec3{
		{0, 0, -1},
		mgl64.Vec3{1, 0, -1}.Normalize(),
		mgl64.Vec3{0, 1, -0.01}.Normalize(),
	}

	for _, shininess := range []float64{0, 1, 10, 200} {
		m := NewMaterial(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1}, shininess)
		for _, toLight := range toLights {
			// The eye sits on the light's side so the reflection would line up
			eye := core.NewRay(toLight.Mul(3), toLight.Mul(-1))
			assert.Equal(t, mgl64.Vec3{}, m.Shade(eye, hitFacingZ(m), toLight, white),
				"shininess %v, light %v", shininess, toLight)
		}
	}
}

func TestMaterial_NilIsBlack(t *testing.T) {
	var m *Material

	assert.Equal(t, mgl64.Vec3{}, m.DiffuseColor())
	assert.Equal(t, mgl64.Vec3{}, m.Shade(viewRay, hitFacingZ(m), mgl64.Vec3{0, 0, 1}, white))
}

func TestMaterial_TextureLookup(t *testing.T) {
	texture := NewImageTexture(1, 1, []mgl64.Vec3{blue})
	textured := NewTexturedMaterial(red, texture)
	toLight := mgl64.Vec3{0, 0, 1}

	t.Run("textured hit samples the texture", func(t *testing.T) {
		hit := hitFacingZ(textured)
		hit.SetTexCoord(mgl64.Vec2{0.5, 0.5})
		assertColor(t, blue, textured.Shade(viewRay, hit, toLight, white))
	})

	t.Run("untextured hit uses diffuse", func(t *testing.T) {
		assertColor(t, red, textured.Shade(viewRay, hitFacingZ(textured), toLight, white))
	})

	t.Run("missing texture uses diffuse", func(t *testing.T) {
		plain := NewDiffuseMaterial(red)
		hit := hitFacingZ(plain)
		hit.SetTexCoord(mgl64.Vec2{0.5, 0.5})
		assertColor(t, red, plain.Shade(viewRay, hit, toLight, white))
	})

	t.Run("ambient color stays flat", func(t *testing.T) {
		assert.Equal(t, red, textured.DiffuseColor())
	})
}

// textureImage encodes a texture's pixels as an 8-bit image
func textureImage(tex *ImageTexture) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, tex.Width, tex.Height))
	for y := 0; y < tex.Height; y++ {
		for x := 0; x < tex.Width; x++ {
			img.SetRGBA(x, y, core.ToRGBA(tex.Pixels[y*tex.Width+x]))
		}
	}
	return img
}

func TestMaterial_LoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.png")
	require.NoError(t, loaders.SavePNG(path, textureImage(NewCheckerboardTexture(4, 4, 2, red, blue))))

	m := NewDiffuseMaterial(white)
	require.True(t, m.LoadTexture(path, zaptest.NewLogger(t)))
	require.NotNil(t, m.Texture)

	assertColor(t, red, m.Texture.Sample(mgl64.Vec2{0.1, 0.9}))
	assertColor(t, blue, m.Texture.Sample(mgl64.Vec2{0.6, 0.9}))
}

func TestMaterial_LoadTextureFallback(t *testing.T) {
	observed, logs := observer.New(zapcore.WarnLevel)
	m := NewTexturedMaterial(red, NewUVDebugTexture(2, 2))

	assert.False(t, m.LoadTexture(filepath.Join(t.TempDir(), "missing.bmp"), zap.New(observed)))
	assert.Nil(t, m.Texture)
	assert.Equal(t, 1, logs.FilterMessage("Texture unavailable, using flat diffuse color").Len())

	// Shading still works and falls back to the flat color
	hit := hitFacingZ(m)
	hit.SetTexCoord(mgl64.Vec2{0.5, 0.5})
	assertColor(t, red, m.Shade(viewRay, hit, mgl64.Vec3{0, 0, 1}, white))

	// A nil logger is allowed
	assert.False(t, m.LoadTexture("", nil))
}

func TestMaterial_ImplementsShader(t *testing.T) {
	var _ core.Shader = (*Material)(nil)
}
