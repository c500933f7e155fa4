// Package http exposes the voxclone HTTP API.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/Yordan777/voxclone/internal/backend"
	"github.com/Yordan777/voxclone/internal/config"
	"github.com/Yordan777/voxclone/internal/service"
	"github.com/Yordan777/voxclone/internal/spool"
)

// Version is reported in the generated OpenAPI document.
const Version = "1.0.0"

// Server wraps the HTTP server and its registered API.
type Server struct {
	http *http.Server
}

// APIConfig returns the huma configuration shared by the server and tests.
// The schema-link transformer is dropped so error bodies stay a bare
// {"error": ...} envelope.
func APIConfig() huma.Config {
	config := huma.DefaultConfig("voxclone", Version)
	config.Transformers = nil
	return config
}

// New builds the API and the server around it. Synthesis is long-running, so
// only the header read is bounded here; per-request limits live in the
// executor timeout.
func New(cfg *config.Config, svc *service.TTS, sp *spool.Spool) *Server {
	mux := http.NewServeMux()
	api := humago.New(mux, APIConfig())

	provider := backend.Provider(cfg.Engine.Backend)
	defaultModel := cfg.DefaultTTSModel()

	NewTTSHandler(api, svc, sp, provider, defaultModel)
	NewHealthHandler(api, svc, provider, defaultModel)

	return &Server{
		http: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// ListenAndServe serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
