package backend

import (
	"context"
	"io"
	"time"
)

// Provider is a string identifier for a synthesis backend provider.
type Provider string

const (
	// ProviderXTTS is the Coqui XTTS voice-cloning backend.
	ProviderXTTS Provider = "xtts"
)

// Backend defines the core interface for all synthesis backends.
type Backend interface {
	// Provider returns the backend identifier.
	Provider() Provider

	// Synthesize executes speech synthesis and returns the complete result.
	Synthesize(ctx context.Context, req *Request) (*Response, error)

	// Close cleans up resources.
	Close() error
}

// Request encapsulates all parameters for a synthesis call.
type Request struct {
	// ModelPath is the path to the model directory or file.
	ModelPath string

	// Text is the text to synthesize.
	Text string

	// Language is the target language code (e.g. "en", "es").
	Language string

	// SpeakerWAV is the path to the reference voice sample to clone.
	SpeakerWAV string

	// OutputPath is where the backend writes the generated WAV.
	OutputPath string

	// Parameters contains backend-specific synthesis parameters.
	Parameters map[string]any
}

// Response contains the result of a synthesis operation.
type Response struct {
	// Audio is the generated audio data.
	Audio io.Reader

	// Metadata contains backend-specific information.
	Metadata *ResponseMetadata
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	Provider        Provider       `json:"provider"`
	Model           string         `json:"model"`
	Timestamp       time.Time      `json:"timestamp"`
	OutputBytes     int64          `json:"output_bytes"`
	BackendSpecific map[string]any `json:"backend_specific"`
}
