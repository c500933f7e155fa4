// Package grpc exposes a standard gRPC health service so orchestrators can
// probe engine readiness without touching the synthesis endpoint.
package grpc

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-check service identifier for the TTS engine.
const ServiceName = "voxclone.tts"

// Server wraps a gRPC server carrying only the health service.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	addr   string
}

// New creates the health server. The engine starts out NOT_SERVING until the
// model manager reports a successful load.
func New(host string, port int) *Server {
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{
		grpc:   srv,
		health: hs,
		addr:   fmt.Sprintf("%s:%d", host, port),
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// SetReady flips the engine's serving status.
func (s *Server) SetReady(ready bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ready {
		status = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus(ServiceName, status)
	s.health.SetServingStatus("", status)
}

// ListenAndServe serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	return s.grpc.Serve(lis)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
