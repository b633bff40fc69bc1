package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status and database reachability",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// HealthResponse contains health check data.
type HealthResponse struct {
	Status   string `json:"status" doc:"Overall status (healthy or degraded)"`
	Database string `json:"database" doc:"Database status (ok or unreachable)"`
}

// HealthOutput wraps the health check response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "healthy", Database: "ok"}
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Warn("health check: database unreachable", "error", err)
		resp.Status = "degraded"
		resp.Database = "unreachable"
	}
	return &HealthOutput{Body: resp}, nil
}
