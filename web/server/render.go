package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/integrator"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/renderer"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/scene"
)

// RenderRequest is the first message a client sends on the render socket.
// Zero values fall back to the scene's own configuration.
type RenderRequest struct {
	Scene           string `json:"scene"`
	Width           int    `json:"width"`
	SamplesPerPixel int    `json:"samplesPerPixel"`
	MaxDepth        int    `json:"maxDepth"`
	Integrator      string `json:"integrator"`
}

type startFrame struct {
	Type   string `json:"type"` // always "start"
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  int    `json:"tiles"`
}

type tileFrame struct {
	Type      string `json:"type"` // always "tile"
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	PNG       string `json:"png"` // base64 PNG of the tile pixels
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type doneFrame struct {
	Type      string     `json:"type"` // always "done"
	PNG       string     `json:"png"`  // base64 PNG of the full image
	Stats     frameStats `json:"stats"`
	ElapsedMs int64      `json:"elapsedMs"`
}

type frameStats struct {
	TracedRays          uint64  `json:"tracedRays"`
	Intersections       uint64  `json:"intersections"`
	IntersectionsPerRay float64 `json:"intersectionsPerRay"`
	DroppedSamples      uint64  `json:"droppedSamples"`
}

type errorFrame struct {
	Type    string `json:"type"` // always "error"
	Message string `json:"message"`
}

// handleRenderSocket runs one render per websocket connection, streaming a
// frame for every finished tile and a final frame with the whole image and
// the ray statistics
func (s *Server) handleRenderSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Errorf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		glog.Errorf("Reading the render request failed: %v", err)
		return
	}

	if !s.tryBeginRender() {
		s.writeError(conn, "a render is already running")
		return
	}
	defer s.endRender()

	sc, integ, sampler, err := buildRender(req)
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		// The client sends nothing after the request, so any read outcome
		// means it is gone and the render should stop.
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	width, height := sc.Camera.Width(), sc.Camera.Height()
	tiles := len(renderer.Tiles(width, height))
	if err := conn.WriteJSON(startFrame{Type: "start", Width: width, Height: height, Tiles: tiles}); err != nil {
		return
	}

	glog.Infof("Live render: scene %q at %dx%d, %d samples/pixel",
		req.Scene, width, height, sampler.SamplesPerPixel())
	start := time.Now()
	img, stats, err := renderer.Render(ctx, sc, integ, sampler, renderer.Options{
		OnTile: func(res renderer.TileResult) {
			data, err := encodePNGBase64(res.Pixels)
			if err == nil {
				err = conn.WriteJSON(tileFrame{
					Type:      "tile",
					X:         res.Bounds.Min.X,
					Y:         res.Bounds.Min.Y,
					Width:     res.Bounds.Dx(),
					Height:    res.Bounds.Dy(),
					PNG:       data,
					Completed: res.Completed,
					Total:     res.Total,
				})
			}
			if err != nil {
				cancel()
			}
		},
	})
	if err != nil {
		s.writeError(conn, fmt.Sprintf("render aborted: %v", err))
		return
	}

	data, err := encodePNGBase64(img)
	if err != nil {
		s.writeError(conn, fmt.Sprintf("encoding the image failed: %v", err))
		return
	}
	if err := conn.WriteJSON(doneFrame{
		Type: "done",
		PNG:  data,
		Stats: frameStats{
			TracedRays:          stats.TracedRays,
			Intersections:       stats.Intersections,
			IntersectionsPerRay: stats.IntersectionsPerRay(),
			DroppedSamples:      stats.DroppedSamples,
		},
		ElapsedMs: time.Since(start).Milliseconds(),
	}); err != nil {
		glog.Errorf("Writing the final frame failed: %v", err)
	}
}

// buildRender resolves the requested scene and render configuration
func buildRender(req RenderRequest) (*scene.Scene, integrator.Integrator, core.Sampler, error) {
	name := req.Scene
	if name == "" {
		name = "cornell"
	}
	width, err := boundedInt("width", req.Width, 0, 64, 2048)
	if err != nil {
		return nil, nil, nil, err
	}
	spp, err := boundedInt("samplesPerPixel", req.SamplesPerPixel, 0, 1, 4096)
	if err != nil {
		return nil, nil, nil, err
	}
	depth, err := boundedInt("maxDepth", req.MaxDepth, 0, 1, 64)
	if err != nil {
		return nil, nil, nil, err
	}

	sc, err := scene.NewBuiltinScene(name, scene.CameraConfig{Width: width})
	if err != nil {
		return nil, nil, nil, err
	}
	if spp > 0 {
		sc.SamplingConfig.SamplesPerPixel = spp
	}
	if depth > 0 {
		sc.SamplingConfig.MaxDepth = depth
	}

	integName := req.Integrator
	if integName == "" {
		integName = sc.Integrator
	}
	integ, err := integrator.New(integName, sc.SamplingConfig)
	if err != nil {
		return nil, nil, nil, err
	}

	sampler := core.NewIndependentSampler(sc.SamplingConfig.Seed, sc.SamplingConfig.SamplesPerPixel)
	return sc, integ, sampler, nil
}

// boundedInt validates an optional request parameter, keeping the fallback
// when the value is zero
func boundedInt(name string, value, fallback, min, max int) (int, error) {
	if value == 0 {
		return fallback, nil
	}
	if value < min || value > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got: %d", name, min, max, value)
	}
	return value, nil
}

// encodePNGBase64 converts a film to a base64 PNG string for JSON transport
func encodePNGBase64(img *renderer.Image) (string, error) {
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *Server) writeError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(errorFrame{Type: "error", Message: message}); err != nil {
		glog.Errorf("Writing an error frame failed: %v", err)
	}
}
