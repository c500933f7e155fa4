package service

import (
	"context"
	"log/slog"

	"github.com/Yordan777/voxclone/internal/backend"
	"github.com/Yordan777/voxclone/internal/model"
)

// TTS is a service abstraction for voice-cloning text-to-speech.
type TTS struct {
	backends *backend.Registry
	models   *model.Registry
}

// NewTTS creates a new TTS service.
func NewTTS(backends *backend.Registry, models *model.Registry) *TTS {
	return &TTS{
		backends: backends,
		models:   models,
	}
}

// Synthesize synthesizes speech using a text-to-speech model.
func (s *TTS) Synthesize(ctx context.Context, provider backend.Provider, modelID string, req *backend.Request) (*backend.Response, error) {
	b, ok := s.backends.Get(provider)
	if !ok {
		return nil, backend.ErrBackendNotFound
	}

	m, ok := s.models.Get(modelID)
	if !ok {
		return nil, model.ErrModelNotFound
	}

	breq := *req
	breq.ModelPath = m.Path

	resp, err := b.Synthesize(ctx, &breq)
	if err != nil {
		slog.Error("Failed to synthesize speech", "model_id", modelID, "error", err)
		return nil, err
	}

	return resp, nil
}

// Ready reports whether the synthesis engine can serve the given model:
// the backend is registered and the model is present and loaded.
func (s *TTS) Ready(provider backend.Provider, modelID string) bool {
	if _, ok := s.backends.Get(provider); !ok {
		return false
	}

	m, ok := s.models.Get(modelID)
	if !ok {
		return false
	}

	return m.Status == model.StatusLoaded
}
