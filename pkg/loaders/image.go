package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
)

// ImageData contains loaded image data as a linear color array
type ImageData struct {
	Width  int
	Height int
	Pixels []mgl64.Vec3 // Row-major, row 0 is the top of the image
	Format string       // Decoder that read the file: png, jpeg, bmp or tiff
}

// LoadImage loads a PNG, JPEG, BMP or TIFF image and converts it to a
// color array with channels in [0, 1]
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]mgl64.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = mgl64.Vec3{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(b) / 65535.0,
			}
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
		Format: format,
	}, nil
}

// SavePNG encodes img as PNG at path, creating parent directories as needed
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}
