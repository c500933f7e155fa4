// Package xtts implements backend.Backend for the Coqui XTTS voice-cloning CLI.
package xtts

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Yordan777/voxclone/internal/backend"
	"github.com/Yordan777/voxclone/internal/mapsafe"
)

// Backend implements backend.Backend for XTTS.
type Backend struct {
	executor *backend.Executor
	useCUDA  bool
}

// NewBackend creates a new XTTS backend.
func NewBackend(binPath string, timeout time.Duration, useCUDA bool) (*Backend, error) {
	executor, err := backend.NewExecutor(binPath, timeout)
	if err != nil {
		return nil, err
	}

	return &Backend{
		executor: executor,
		useCUDA:  useCUDA,
	}, nil
}

// NewBackendWithRunner creates an XTTS backend with a custom command runner.
// This constructor is primarily for testing.
func NewBackendWithRunner(binPath string, timeout time.Duration, useCUDA bool, runner backend.CommandRunner) *Backend {
	return &Backend{
		executor: backend.NewExecutorWithRunner(binPath, timeout, runner),
		useCUDA:  useCUDA,
	}
}

// Provider returns the backend provider.
func (b *Backend) Provider() backend.Provider {
	return backend.ProviderXTTS
}

// Synthesize clones the reference voice and renders the text as speech.
// The CLI only writes to a file, so the audio is written to req.OutputPath
// and read back. The caller owns the output file.
func (b *Backend) Synthesize(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	args := b.buildArgs(req)

	stdout, stderr, err := b.executor.Execute(ctx, args, nil)
	if err != nil {
		return nil, fmt.Errorf("execution failed: %w\nstderr: %s", err, stderr)
	}

	audioData, err := os.ReadFile(req.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read generated audio: %w", err)
	}

	return &backend.Response{
		Audio: bytes.NewReader(audioData),
		Metadata: &backend.ResponseMetadata{
			Provider:    b.Provider(),
			Model:       req.ModelPath,
			Timestamp:   time.Now(),
			OutputBytes: int64(len(audioData)),
			BackendSpecific: map[string]any{
				"stdout": string(stdout),
				"stderr": string(stderr),
				"args":   strings.Join(args, " "),
			},
		},
	}, nil
}

// buildArgs builds XTTS command-line arguments.
func (b *Backend) buildArgs(req *backend.Request) []string {
	args := []string{
		"--text", req.Text,
		"--language_idx", req.Language,
		"--speaker_wav", req.SpeakerWAV,
		"--out_path", req.OutputPath,
	}

	// A model downloaded into a directory is loaded by path; anything else is
	// treated as a model name the CLI resolves itself.
	if info, err := os.Stat(req.ModelPath); err == nil && info.IsDir() {
		args = append(args,
			"--model_path", req.ModelPath,
			"--config_path", filepath.Join(req.ModelPath, "config.json"),
		)
	} else if req.ModelPath != "" {
		args = append(args, "--model_name", req.ModelPath)
	}

	if b.useCUDA {
		args = append(args, "--use_cuda", "true")
	}

	// Speaking rate
	if v := mapsafe.Get(req.Parameters, "speed", 0.0); v > 0 {
		args = append(args, "--speed", fmt.Sprintf("%.2f", v))
	}

	return args
}

// Close cleans up resources. XTTS does not have any resources to clean up.
func (b *Backend) Close() error {
	return nil
}
