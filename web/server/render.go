package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string      // Built-in scene name
	Width      int         // Image width
	Height     int         // Image height
	Background *mgl64.Vec3 // Overrides the scene background when set
	Ambient    *mgl64.Vec3 // Overrides the scene ambient light when set
	Format     string      // "png" or "json"
}

// RenderResponse is the JSON form of a render
type RenderResponse struct {
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels int     `json:"totalPixels"`
	HitPixels   int     `json:"hitPixels"`
	HitRatio    float64 `json:"hitRatio"`
	Primitives  int     `json:"primitives"`
	Lights      int     `json:"lights"`
}

// handleRender renders a scene and returns it as a PNG, or as JSON with the
// render log when format=json
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	console := NewConsole()
	logger := zap.New(zapcore.NewTee(s.logger.Core(), console.Core(zapcore.InfoLevel))).
		With(zap.String("scene", req.Scene))

	sceneObj, err := s.createScene(req, logger)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fb, stats, err := renderer.NewRaytracer(sceneObj, req.Width, req.Height, logger).Render()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Format == "json" {
		data, err := imageToBase64PNG(fb.Image())
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.writeJSON(w, http.StatusOK, RenderResponse{
			ImageData: data,
			Stats: Stats{
				TotalPixels: stats.TotalPixels,
				HitPixels:   stats.HitPixels,
				HitRatio:    stats.HitRatio(),
				Primitives:  stats.Primitives,
				Lights:      stats.Lights,
			},
			Console:   console.Messages(),
			ElapsedMs: stats.Duration.Milliseconds(),
		})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.Image()); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("Failed to write image", zap.Error(err))
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:  query.Get("scene"),
		Format: query.Get("format"),
	}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Format == "" {
		req.Format = "png"
	}
	if req.Format != "png" && req.Format != "json" {
		return nil, fmt.Errorf("format must be png or json, got: %s", req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 2, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 400, 2, 2000); err != nil {
		return nil, err
	}
	if req.Background, err = parseColorParam(query, "bg", 0, 1); err != nil {
		return nil, err
	}
	if req.Ambient, err = parseColorParam(query, "ambient", 0, 1); err != nil {
		return nil, err
	}

	return req, nil
}

// createScene builds the requested scene and applies the colour overrides
func (s *Server) createScene(req *RenderRequest, logger *zap.Logger) (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene, logger)
	if err != nil {
		return nil, err
	}
	if req.Background != nil {
		sceneObj.Background = *req.Background
	}
	if req.Ambient != nil {
		sceneObj.Ambient = *req.Ambient
	}
	return sceneObj, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
