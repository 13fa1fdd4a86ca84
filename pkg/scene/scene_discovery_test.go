package scene

import (
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, titleCase(tc.input))
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"default", "sphere", "textured", "transforms", "triangles"}, Names())
}

func TestList(t *testing.T) {
	scenes := List()
	require.Len(t, scenes, len(Names()))

	for i, info := range scenes {
		assert.NotEmpty(t, info.Description, info.ID)
		assert.Equal(t, titleCase(info.ID), info.DisplayName)
		if i > 0 {
			assert.Less(t, scenes[i-1].DisplayName, info.DisplayName)
		}
	}
}

func TestCreate_Builtins(t *testing.T) {
	primitives := map[string]int{
		"default":    4,
		"sphere":     1,
		"triangles":  6,
		"transforms": 16,
		"textured":   6,
	}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, zaptest.NewLogger(t))
			require.NoError(t, err)

			assert.NotNil(t, s.Camera)
			assert.Greater(t, s.NumLights(), 0)
			assert.Greater(t, s.NumMaterials(), 0)
			assert.Equal(t, primitives[name], s.PrimitiveCount())
		})
	}
}

func TestCreate_Unknown(t *testing.T) {
	s, err := Create("cornell", nil)
	assert.Nil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scene")
}

func TestSphereScene_CenterRayHitsRedSphere(t *testing.T) {
	s := NewSphereScene()

	ray := s.Camera.GenerateRay(mgl64.Vec2{0, 0})
	hit := core.NewHit()
	require.True(t, s.Root.Intersect(ray, &hit, s.Camera.MinimumT()))

	assert.InDelta(t, 4.0, hit.T, 1e-9)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, hit.Material.DiffuseColor())
}
