package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(0, zaptest.NewLogger(t)).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleHealth(t *testing.T) {
	resp := get(t, newTestServer(t), "/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleScenes(t *testing.T) {
	resp := get(t, newTestServer(t), "/api/scenes")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var scenes []scene.SceneInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&scenes))
	assert.Equal(t, scene.List(), scenes)
}

func TestHandleRender_PNG(t *testing.T) {
	resp := get(t, newTestServer(t), "/api/render?scene=sphere&width=3&height=3&bg=0,0,1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "1", resp.Header.Get("X-Render-Hit-Pixels"))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 3), img.Bounds())

	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
}

func TestHandleRender_JSON(t *testing.T) {
	resp := get(t, newTestServer(t), "/api/render?scene=sphere&width=3&height=3&format=json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body RenderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 9, body.Stats.TotalPixels)
	assert.Equal(t, 1, body.Stats.HitPixels)
	assert.Equal(t, 1, body.Stats.Primitives)

	data, err := base64.StdEncoding.DecodeString(body.ImageData)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())

	var messages []string
	for _, m := range body.Console {
		messages = append(messages, m.Message)
		assert.Equal(t, "sphere", m.Fields["scene"])
	}
	assert.Equal(t, []string{"Starting render", "Render complete"}, messages)
}

func TestHandleRender_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"unknown scene", "scene=nonexistent"},
		{"width too small", "width=1"},
		{"width not a number", "width=wide"},
		{"height too large", "height=5000"},
		{"short background", "bg=1,1"},
		{"background out of range", "bg=0,2,0"},
		{"bad ambient", "ambient=a,b,c"},
		{"bad format", "format=gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, srv, "/api/render?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleInspect(t *testing.T) {
	srv := newTestServer(t)

	t.Run("hit", func(t *testing.T) {
		resp := get(t, srv, "/api/inspect?scene=sphere&width=3&height=3&x=1&y=1")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body InspectResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Hit)
		assert.InDelta(t, 4.0, body.Distance, 1e-9)
		assert.InDelta(t, -4.0, body.Point[2], 1e-9)
		assert.InDelta(t, 1.0, body.Normal[2], 1e-9)
		assert.InDelta(t, 1.0, body.Color[0], 1e-9)
		assert.Equal(t, "phong", body.Properties["type"])
		assert.Nil(t, body.TexCoord)
	})

	t.Run("miss shows background", func(t *testing.T) {
		resp := get(t, srv, "/api/inspect?scene=sphere&width=3&height=3&x=0&y=0&ambient=0.2,0.2,0.2")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body InspectResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Hit)
		assert.Equal(t, [3]float64(scene.DefaultBackground), body.Color)
		assert.Nil(t, body.Properties)
	})

	for _, query := range []string{"x=1", "x=1&y=q", "x=3&y=0", "x=0&y=-1"} {
		t.Run("bad "+query, func(t *testing.T) {
			resp := get(t, srv, "/api/inspect?scene=sphere&width=3&height=3&"+query)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestParseColorParam(t *testing.T) {
	values := url.Values{"bg": {"0.25, 0.5,1"}}

	c, err := parseColorParam(values, "bg", 0, 1)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, mgl64.Vec3{0.25, 0.5, 1}, *c)

	c, err = parseColorParam(values, "ambient", 0, 1)
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestParseIntParam(t *testing.T) {
	values := url.Values{"width": {"64"}}

	v, err := parseIntParam(values, "width", 400, 2, 2000)
	require.NoError(t, err)
	assert.Equal(t, 64, v)

	v, err = parseIntParam(values, "height", 400, 2, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, v)

	_, err = parseIntParam(values, "width", 400, 100, 2000)
	assert.Error(t, err)
}
