package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"go.uber.org/zap"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type builtinScene struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtinScene{
	"default": {
		description: "Spheres and an ellipsoid on a ground plane, lit by a sun and a point light",
		build:       NewDefaultScene,
	},
	"sphere": {
		description: "A single red sphere in front of a point light at the eye",
		build:       NewSphereScene,
	},
	"triangles": {
		description: "A smooth-shaded pyramid mesh and a textured triangle",
		build:       NewTriangleScene,
	},
	"transforms": {
		description: "Scaled, rotated and nested transforms of simple primitives",
		build:       NewTransformScene,
	},
	"textured": {
		description: "Checkerboard, gradient and Perlin noise textures on triangle meshes",
		build:       NewTextureScene,
	},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the built-in scenes sorted by display name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtins[name].description,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// Create builds the named scene and validates it
func Create(name string, logger *zap.Logger) (*Scene, error) {
	logger = core.LoggerOrNop(logger)

	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, available: %s", name, strings.Join(Names(), ", "))
	}

	s := b.build()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q is invalid: %w", name, err)
	}

	logger.Debug("Created scene",
		zap.String("scene", name),
		zap.Int("primitives", s.PrimitiveCount()),
		zap.Int("lights", s.NumLights()),
		zap.Int("materials", s.NumMaterials()))
	return s, nil
}

// titleCase converts a scene name like "my-scene" to "My Scene"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
