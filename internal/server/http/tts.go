package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Yordan777/voxclone/internal/backend"
	"github.com/Yordan777/voxclone/internal/model"
	"github.com/Yordan777/voxclone/internal/service"
	"github.com/Yordan777/voxclone/internal/spool"
)

type (
	// SynthesizeInput is the huma input for the synthesize operation.
	SynthesizeInput struct {
		RawBody huma.MultipartFormFiles[struct {
			SpeakerWAV huma.FormFile `form:"speaker_wav" contentType:"audio/wav,audio/x-wav,application/octet-stream"`
			Text       string        `form:"text"`
			Language   string        `form:"language"`
			ModelID    string        `form:"model_id"`
			Parameters string        `form:"parameters"` // JSON-encoded optional parameters
		}]
	}

	// SynthesizeOutput is the huma output for the synthesize operation.
	SynthesizeOutput struct {
		ContentType        string `header:"Content-Type"`
		ContentDisposition string `header:"Content-Disposition"`
		Body               []byte
	}
)

// TTSHandler handles HTTP requests for voice-cloning TTS.
type TTSHandler struct {
	service      *service.TTS
	spool        *spool.Spool
	provider     backend.Provider
	defaultModel string
}

// NewTTSHandler creates a new TTSHandler instance and registers its operations.
func NewTTSHandler(api huma.API, svc *service.TTS, sp *spool.Spool, provider backend.Provider, defaultModel string) *TTSHandler {
	h := &TTSHandler{
		service:      svc,
		spool:        sp,
		provider:     provider,
		defaultModel: defaultModel,
	}

	huma.Register(api, huma.Operation{
		OperationID:   "synthesize",
		Method:        "POST",
		Path:          "/tts",
		Summary:       "Synthesize speech cloned from a reference voice sample",
		Tags:          []string{"tts"},
		DefaultStatus: http.StatusOK,
	}, h.handleSynthesize)

	return h
}

// handleSynthesize handles the synthesize operation.
//
// Required fields are declared optional in the schema and checked by hand so
// each missing field yields its own 400 instead of a generic validation error.
func (h *TTSHandler) handleSynthesize(ctx context.Context, input *SynthesizeInput) (*SynthesizeOutput, error) {
	formData := input.RawBody.Data()

	// Reject before any file handling when the engine never came up.
	if !h.service.Ready(h.provider, h.defaultModel) {
		return nil, huma.Error500InternalServerError("synthesis engine is not available, check server logs", nil)
	}

	modelID := formData.ModelID
	if modelID == "" {
		modelID = h.defaultModel
	}

	if formData.Text == "" {
		return nil, huma.Error400BadRequest("missing required parameter 'text'", nil)
	}
	if formData.Language == "" {
		return nil, huma.Error400BadRequest("missing required parameter 'language'", nil)
	}
	if !formData.SpeakerWAV.IsSet {
		return nil, huma.Error400BadRequest("missing required file 'speaker_wav'", nil)
	}
	if !strings.EqualFold(filepath.Ext(formData.SpeakerWAV.Filename), ".wav") {
		return nil, huma.Error400BadRequest("file 'speaker_wav' must be a .wav file", nil)
	}

	var parameters map[string]any
	if formData.Parameters != "" {
		if err := json.Unmarshal([]byte(formData.Parameters), &parameters); err != nil {
			return nil, huma.Error400BadRequest("invalid parameters JSON", err)
		}
	}

	refPath, err := h.spool.SaveUpload(formData.SpeakerWAV)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to save reference audio", err)
	}
	// The reference upload and the output file are removed on every path out
	// of this handler; the response body is served from memory.
	defer h.spool.Remove(refPath)

	outPath := h.spool.OutputPath()
	defer h.spool.Remove(outPath)

	resp, err := h.service.Synthesize(ctx, h.provider, modelID, &backend.Request{
		Text:       formData.Text,
		Language:   formData.Language,
		SpeakerWAV: refPath,
		OutputPath: outPath,
		Parameters: parameters,
	})
	if err != nil {
		if errors.Is(err, model.ErrModelNotFound) {
			return nil, huma.Error404NotFound("model not found", err)
		}
		if errors.Is(err, backend.ErrBackendNotFound) {
			return nil, huma.Error500InternalServerError("synthesis engine is not available, check server logs", nil)
		}
		return nil, huma.Error500InternalServerError("speech synthesis failed", err)
	}

	audio, err := io.ReadAll(resp.Audio)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to read generated audio", err)
	}

	return &SynthesizeOutput{
		ContentType:        "audio/wav",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", filepath.Base(outPath)),
		Body:               audio,
	}, nil
}
