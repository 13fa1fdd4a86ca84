package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit        bool                   `json:"hit"`
	Point      [3]float64             `json:"point"`
	Normal     [3]float64             `json:"normal"`
	Distance   float64                `json:"distance"`
	Color      [3]float64             `json:"color"`
	TexCoord   *[2]float64            `json:"texCoord,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// handleInspect casts the primary ray through one pixel and reports what it hit.
// Pixel coordinates follow the image: y=0 is the top row.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		s.writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(req, s.logger)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	info, err := renderer.NewRaytracer(sceneObj, req.Width, req.Height, s.logger).
		InspectPixel(pixelX, req.Height-1-pixelY)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := InspectResponse{
		Hit:   info.Hit,
		Color: info.Color,
	}
	if info.Hit {
		response.Point = info.Point
		response.Normal = info.Normal
		response.Distance = info.T
		if info.TexCoord != nil {
			uv := [2]float64(*info.TexCoord)
			response.TexCoord = &uv
		}
		response.Properties = materialInfo(info.Material)
	}

	s.writeJSON(w, http.StatusOK, response)
}

// materialInfo extracts the shading parameters of a material
func materialInfo(shader core.Shader) map[string]interface{} {
	m, ok := shader.(*material.Material)
	if !ok {
		return map[string]interface{}{"type": fmt.Sprintf("%T", shader)}
	}

	return map[string]interface{}{
		"type":      "phong",
		"diffuse":   [3]float64(m.Diffuse),
		"specular":  [3]float64(m.Specular),
		"shininess": m.Shininess,
		"textured":  m.Texture != nil,
	}
}
