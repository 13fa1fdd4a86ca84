package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Server handles web requests for the ray caster
type Server struct {
	port   int
	logger *zap.Logger
}

// NewServer creates a new web server. A nil logger disables logging.
func NewServer(port int, logger *zap.Logger) *Server {
	return &Server{port: port, logger: core.LoggerOrNop(logger)}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("Starting web server", zap.String("addr", "http://localhost"+addr))
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, scene.List())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseColorParam parses an "r,g,b" parameter with each channel in [min, max].
// A missing parameter returns nil.
func parseColorParam(values url.Values, key string, min, max float64) (*mgl64.Vec3, error) {
	value := values.Get(key)
	if value == "" {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid %s: expected r,g,b, got: %s", key, value)
	}

	var c mgl64.Vec3
	for i, p := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return nil, fmt.Errorf("%s channels must be between %g and %g, got: %g", key, min, max, parsed)
		}
		c[i] = parsed
	}
	return &c, nil
}
