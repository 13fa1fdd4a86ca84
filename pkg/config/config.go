package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// Help describes the configuration file format
const Help = `
The render configuration is a TOML file with the following fields, all optional:
             scene: built-in scene name (default "default")
             width: image width in pixels, at least 2 (default 400)
            height: image height in pixels, at least 2 (default 400)
            output: PNG file to write (default "output/render.png")
         log_level: debug, info, warn or error (default "info")
        background: [r, g, b] colour of rays that hit nothing
           ambient: [r, g, b] ambient light
           texture: image file applied to a scene material
  texture_material: index of the material that receives the texture (default 0)

Example:

  scene = "textured"
  width = 640
  height = 640
  background = [0.1, 0.1, 0.2]
  texture = "textures/wood.png"
  texture_material = 1
`

// RenderConfig holds everything needed to render one image
type RenderConfig struct {
	Scene           string      `toml:"scene"`
	Width           int         `toml:"width"`
	Height          int         `toml:"height"`
	Output          string      `toml:"output"`
	LogLevel        string      `toml:"log_level"`
	Background      *[3]float64 `toml:"background"`
	Ambient         *[3]float64 `toml:"ambient"`
	Texture         string      `toml:"texture"`
	TextureMaterial int         `toml:"texture_material"`
}

// Default returns the configuration used when no file or flags are given
func Default() RenderConfig {
	return RenderConfig{
		Scene:    "default",
		Width:    400,
		Height:   400,
		Output:   "output/render.png",
		LogLevel: "info",
	}
}

// Load reads a TOML file on top of the defaults. Unknown keys are an error.
func Load(path string) (RenderConfig, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return RenderConfig{}, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate reports every problem with the configuration at once
func (c RenderConfig) Validate() error {
	var err error

	if c.Width < 2 || c.Height < 2 {
		err = multierr.Append(err, fmt.Errorf("image size must be at least 2x2, got %dx%d", c.Width, c.Height))
	}
	if c.Output == "" {
		err = multierr.Append(err, errors.New("output path is empty"))
	}
	if _, levelErr := zapcore.ParseLevel(c.LogLevel); levelErr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	if !knownScene(c.Scene) {
		err = multierr.Append(err, fmt.Errorf("unknown scene %q, available: %s", c.Scene, strings.Join(scene.Names(), ", ")))
	}
	if c.Texture != "" && c.TextureMaterial < 0 {
		err = multierr.Append(err, fmt.Errorf("texture material index must not be negative, got %d", c.TextureMaterial))
	}

	return err
}

// Apply copies the colour overrides onto a scene
func (c RenderConfig) Apply(s *scene.Scene) {
	if c.Background != nil {
		s.Background = mgl64.Vec3(*c.Background)
	}
	if c.Ambient != nil {
		s.Ambient = mgl64.Vec3(*c.Ambient)
	}
}

func knownScene(name string) bool {
	for _, n := range scene.Names() {
		if n == name {
			return true
		}
	}
	return false
}
