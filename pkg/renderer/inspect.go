package renderer

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// PixelInfo describes what the primary ray through one pixel sees
type PixelInfo struct {
	Ray      core.Ray
	Hit      bool
	T        float64     // Ray parameter of the hit, +Inf on a miss
	Point    mgl64.Vec3  // Zero on a miss
	Normal   mgl64.Vec3  // Zero on a miss
	Material core.Shader // Nil on a miss
	TexCoord *mgl64.Vec2 // Nil unless the surface is textured
	Color    mgl64.Vec3  // Same value Render stores for the pixel
}

// InspectPixel traces the single pixel (x, y) in framebuffer coordinates,
// where y=0 is the bottom row.
func (rt *Raytracer) InspectPixel(x, y int) (PixelInfo, error) {
	if err := rt.check(); err != nil {
		return PixelInfo{}, err
	}
	if x < 0 || x >= rt.width || y < 0 || y >= rt.height {
		return PixelInfo{}, fmt.Errorf("pixel (%d, %d) is outside the %dx%d image", x, y, rt.width, rt.height)
	}

	s := rt.scene
	ray, hit, color := tracePixel(s.Camera, s.Root, s.Lights(), s.Ambient, s.Background, x, y, rt.width, rt.height)

	info := PixelInfo{
		Ray:   ray,
		Hit:   hit.IsHit(),
		T:     hit.T,
		Color: color,
	}
	if info.Hit {
		info.Point = hit.Point
		info.Normal = hit.Normal
		info.Material = hit.Material
		if hit.HasTexture {
			uv := hit.TexCoord
			info.TexCoord = &uv
		}
	}
	return info, nil
}
