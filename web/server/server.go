// Package server exposes the renderer over HTTP: a static live-view page,
// JSON endpoints for scene discovery, and a websocket that streams render
// progress tile by tile.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/scene"
)

// Server handles web requests for the renderer
type Server struct {
	addr      string
	staticDir string
	upgrader  websocket.Upgrader

	mu        sync.Mutex
	rendering bool
}

// New creates a web server that listens on addr and serves static assets
// from staticDir
func New(addr, staticDir string) *Server {
	return &Server{
		addr:      addr,
		staticDir: staticDir,
		upgrader: websocket.Upgrader{
			// The live view is local tooling, so any page may connect
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the server's route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/ws/render", s.handleRenderSocket)
	return mux
}

// ListenAndServe serves until the context is cancelled, then shuts down
// gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	glog.Infof("Live view listening on http://%s", s.addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		glog.Info("Shutting down the web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.BuiltinScenes()})
}

// tryBeginRender reserves the single render slot. Rendering saturates every
// core, so concurrent renders would only starve each other.
func (s *Server) tryBeginRender() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rendering {
		return false
	}
	s.rendering = true
	return true
}

func (s *Server) endRender() {
	s.mu.Lock()
	s.rendering = false
	s.mu.Unlock()
}
