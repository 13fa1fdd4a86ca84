package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// Render casts one ray per pixel and returns the shaded framebuffer.
//
// Pixel (x, y) maps to NDC (2x/(width-1) - 1, 2y/(height-1) - 1), so the
// outermost pixels sample the frame edges exactly. A hit pixel is the sum
// of Shade over all lights plus ambient times the flat diffuse color; a
// miss is the background color.
func Render(camera geometry.Camera, root geometry.Primitive, lightList []lights.Light,
	ambient, background mgl64.Vec3, width, height int) *Framebuffer {
	fb, _ := render(camera, root, lightList, ambient, background, width, height)
	return fb
}

// render is Render plus the number of pixels that hit geometry
func render(camera geometry.Camera, root geometry.Primitive, lightList []lights.Light,
	ambient, background mgl64.Vec3, width, height int) (*Framebuffer, int) {
	fb := NewFramebuffer(width, height)
	hits := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_, hit, color := tracePixel(camera, root, lightList, ambient, background, x, y, width, height)
			if hit.IsHit() {
				hits++
			}
			fb.Set(x, y, color)
		}
	}

	return fb, hits
}

// tracePixel casts the ray through pixel (x, y) and returns it with its
// closest hit and final color
func tracePixel(camera geometry.Camera, root geometry.Primitive, lightList []lights.Light,
	ambient, background mgl64.Vec3, x, y, width, height int) (core.Ray, core.Hit, mgl64.Vec3) {
	ray := camera.GenerateRay(mgl64.Vec2{toNDC(x, width), toNDC(y, height)})

	hit := core.NewHit()
	root.Intersect(ray, &hit, camera.MinimumT())
	if !hit.IsHit() {
		return ray, hit, background
	}
	return ray, hit, shade(ray, &hit, lightList, ambient)
}

// fallbackMaterial shades primitives that were built without a material
var fallbackMaterial core.Shader = scene.DefaultMaterial()

// shade evaluates direct illumination at a hit
func shade(ray core.Ray, hit *core.Hit, lightList []lights.Light, ambient mgl64.Vec3) mgl64.Vec3 {
	m := hit.Material
	if m == nil {
		m = fallbackMaterial
	}

	color := mgl64.Vec3{}
	for _, light := range lightList {
		ill := light.Illuminate(hit.Point)
		color = color.Add(m.Shade(ray, hit, ill.Direction, ill.Color))
	}
	return color.Add(core.Modulate(ambient, m.DiffuseColor()))
}

// toNDC maps pixel index i of n to [-1, 1]. A single pixel maps to 0.
func toNDC(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return 2*float64(i)/float64(n-1) - 1
}
