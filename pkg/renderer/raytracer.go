package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
	"go.uber.org/zap"
)

// Raytracer renders a scene at a fixed resolution
type Raytracer struct {
	scene  *scene.Scene
	width  int
	height int
	logger *zap.Logger
}

// NewRaytracer creates a new raytracer. A nil logger disables logging.
func NewRaytracer(s *scene.Scene, width, height int, logger *zap.Logger) *Raytracer {
	return &Raytracer{
		scene:  s,
		width:  width,
		height: height,
		logger: core.LoggerOrNop(logger),
	}
}

// Render validates the scene and renders it. Both dimensions must be at
// least 2 so that every pixel has a distinct NDC coordinate.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats, error) {
	if err := rt.check(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		Primitives:  rt.scene.PrimitiveCount(),
		Lights:      rt.scene.NumLights(),
	}

	rt.logger.Info("Starting render",
		zap.Int("width", rt.width),
		zap.Int("height", rt.height),
		zap.Int("primitives", stats.Primitives),
		zap.Int("lights", stats.Lights))

	start := time.Now()
	fb, hits := render(rt.scene.Camera, rt.scene.Root, rt.scene.Lights(),
		rt.scene.Ambient, rt.scene.Background, rt.width, rt.height)
	stats.Duration = time.Since(start)
	stats.HitPixels = hits

	rt.logger.Info("Render complete",
		zap.Int("pixels", stats.TotalPixels),
		zap.Int("hits", stats.HitPixels),
		zap.Float64("hitRatio", stats.HitRatio()),
		zap.Duration("elapsed", stats.Duration))

	return fb, stats, nil
}

// check reports why the raytracer cannot render, if it cannot
func (rt *Raytracer) check() error {
	if rt.width < 2 || rt.height < 2 {
		return fmt.Errorf("image size must be at least 2x2, got %dx%d", rt.width, rt.height)
	}
	if rt.scene == nil {
		return errors.New("no scene to render")
	}
	if err := rt.scene.Validate(); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}
	return nil
}
