package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Yordan777/voxclone/internal/backend"
	"github.com/Yordan777/voxclone/internal/service"
)

type (
	// HealthResponseDTO is the response body for the health operation.
	HealthResponseDTO struct {
		Status string `json:"status"`
		Engine string `json:"engine"`
	}

	// HealthOutput is the huma output for the health operation.
	HealthOutput struct {
		Body HealthResponseDTO
	}
)

// HealthHandler reports process liveness and engine availability.
type HealthHandler struct {
	service      *service.TTS
	provider     backend.Provider
	defaultModel string
}

// NewHealthHandler creates a new HealthHandler instance and registers its operations.
func NewHealthHandler(api huma.API, svc *service.TTS, provider backend.Provider, defaultModel string) *HealthHandler {
	h := &HealthHandler{
		service:      svc,
		provider:     provider,
		defaultModel: defaultModel,
	}

	huma.Register(api, huma.Operation{
		OperationID:   "health",
		Method:        "GET",
		Path:          "/healthz",
		Summary:       "Report service and engine health",
		Tags:          []string{"health"},
		DefaultStatus: http.StatusOK,
	}, h.handleHealth)

	return h
}

// handleHealth handles the health operation.
func (h *HealthHandler) handleHealth(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	engine := "unavailable"
	if h.service.Ready(h.provider, h.defaultModel) {
		engine = "available"
	}

	return &HealthOutput{
		Body: HealthResponseDTO{
			Status: "ok",
			Engine: engine,
		},
	}, nil
}
