package material

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

var (
	white = mgl64.Vec3{1, 1, 1}
	black = mgl64.Vec3{0, 0, 0}
	red   = mgl64.Vec3{1, 0, 0}
	blue  = mgl64.Vec3{0, 0, 1}
)

func TestImageTexture_Sample(t *testing.T) {
	// Layout:
	//   white black   (row 0, top)
	//   black white   (row 1, bottom)
	texture := NewImageTexture(2, 2, []mgl64.Vec3{white, black, black, white})

	tests := []struct {
		name     string
		uv       mgl64.Vec2
		expected mgl64.Vec3
	}{
		{"bottom left", mgl64.Vec2{0.1, 0.1}, black},
		{"bottom right", mgl64.Vec2{0.9, 0.1}, white},
		{"top left", mgl64.Vec2{0.1, 0.9}, white},
		{"top right", mgl64.Vec2{0.9, 0.9}, black},
		{"wraps above one", mgl64.Vec2{1.1, 1.9}, white},
		{"wraps below zero", mgl64.Vec2{-0.9, -0.9}, black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, texture.Sample(tt.uv))
		})
	}
}

func TestImageTexture_SampleEmpty(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{}, NewImageTexture(0, 0, nil).Sample(mgl64.Vec2{0.5, 0.5}))
	assert.Equal(t, mgl64.Vec3{}, NewImageTexture(2, 2, []mgl64.Vec3{red}).Sample(mgl64.Vec2{0.5, 0.5}))
}

func TestCheckerboardTexture(t *testing.T) {
	texture := NewCheckerboardTexture(4, 4, 2, red, blue)

	assert.Equal(t, red, texture.Pixels[0])
	assert.Equal(t, blue, texture.Pixels[2])
	assert.Equal(t, red, texture.Pixels[2*4+2])
	assert.Equal(t, red, texture.Sample(mgl64.Vec2{0.1, 0.9}))
	assert.Equal(t, blue, texture.Sample(mgl64.Vec2{0.6, 0.9}))
}

func TestUVDebugTexture(t *testing.T) {
	texture := NewUVDebugTexture(3, 3)

	assert.Equal(t, mgl64.Vec3{1, 1, 0}, texture.Sample(mgl64.Vec2{0.9, 0.9}))
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, texture.Sample(mgl64.Vec2{0.1, 0.1}))
	assert.Equal(t, mgl64.Vec3{0.5, 0.5, 0}, texture.Sample(mgl64.Vec2{0.5, 0.5}))
}

func TestGradientTexture(t *testing.T) {
	texture := NewGradientTexture(1, 2, white, blue)

	assert.Equal(t, white, texture.Sample(mgl64.Vec2{0.5, 0.9}))
	assert.Equal(t, blue, texture.Sample(mgl64.Vec2{0.5, 0.1}))
}

func TestProceduralTextures_SinglePixel(t *testing.T) {
	uv := NewUVDebugTexture(1, 1)
	assert.Equal(t, []mgl64.Vec3{{0, 1, 0}}, uv.Pixels)

	gradient := NewGradientTexture(1, 1, white, blue)
	assert.Equal(t, []mgl64.Vec3{white}, gradient.Pixels)

	for _, c := range append(uv.Pixels, gradient.Pixels...) {
		for i := 0; i < 3; i++ {
			assert.False(t, math.IsNaN(c[i]))
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"inside", 0.25, 0.25},
		{"one", 1, 0},
		{"above one", 2.75, 0.75},
		{"negative", -0.25, 0.75},
		{"negative integer", -3, 0},
		{"tiny negative", -1e-20, 0},
		{"beyond int64", 1e300, 0},
		{"negative beyond int64", -1e300, 0},
		{"NaN", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := wrap(tt.x)
			assert.Equal(t, tt.expected, w)
			assert.GreaterOrEqual(t, w, 0.0)
			assert.Less(t, w, 1.0)
		})
	}
}

func TestPerlinTexture(t *testing.T) {
	a := NewPerlinTexture(4, red, blue, 42)
	b := NewPerlinTexture(4, red, blue, 42)

	seen := map[mgl64.Vec3]bool{}
	for i := 0; i < 20; i++ {
		uv := mgl64.Vec2{0.13 * float64(i), 0.07 * float64(i)}
		color := a.Sample(uv)

		assert.Equal(t, color, b.Sample(uv), "same seed, same texture")
		assert.InDelta(t, 1.0, color.X()+color.Z(), 1e-9, "blend of the two colors")
		assert.Equal(t, 0.0, color.Y())
		assert.GreaterOrEqual(t, color.X(), 0.0)
		assert.LessOrEqual(t, color.X(), 1.0)
		seen[color] = true
	}
	assert.Greater(t, len(seen), 1)
}
