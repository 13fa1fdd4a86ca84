package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose ray hit geometry
	Primitives  int           // Leaf primitives in the scene
	Lights      int           // Lights evaluated per hit pixel
	Duration    time.Duration // Wall time of the render loop
}

// MissPixels returns the number of background pixels
func (s RenderStats) MissPixels() int {
	return s.TotalPixels - s.HitPixels
}

// HitRatio returns the fraction of pixels that hit geometry
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
