// Package spool manages the transient audio files a synthesis request leaves
// on disk: the uploaded reference voice and the generated output.
package spool

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o600
)

// Spool owns the upload and output directories. File names carry a random
// token so concurrent requests never collide.
type Spool struct {
	uploadDir string
	outputDir string
}

// New creates a spool, creating both directories if absent.
func New(uploadDir, outputDir string) (*Spool, error) {
	for _, dir := range []string{uploadDir, outputDir} {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return nil, fmt.Errorf("failed to create spool directory %s: %w", dir, err)
		}
	}

	return &Spool{
		uploadDir: uploadDir,
		outputDir: outputDir,
	}, nil
}

// UploadDir returns the directory holding uploaded reference audio.
func (s *Spool) UploadDir() string {
	return s.uploadDir
}

// OutputDir returns the directory holding generated audio.
func (s *Spool) OutputDir() string {
	return s.outputDir
}

// SaveUpload persists an uploaded reference voice sample under a unique name
// and returns its path.
func (s *Spool) SaveUpload(r io.Reader) (string, error) {
	path := filepath.Join(s.uploadDir, fmt.Sprintf("speaker_%s.wav", uuid.NewString()))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePermissions)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		s.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	if err := f.Close(); err != nil {
		s.Remove(path)
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return path, nil
}

// OutputPath reserves a unique path for generated audio. The file itself is
// written by the synthesis backend.
func (s *Spool) OutputPath() string {
	return filepath.Join(s.outputDir, fmt.Sprintf("output_%s.wav", uuid.NewString()))
}

// Remove deletes a spool file. Best effort: a failure is logged, never returned.
func (s *Spool) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove spool file", "path", path, "error", err)
	}
}

// Sweep removes spool files older than maxAge. Requests delete their own
// files; the sweeper only catches orphans left by crashes.
func (s *Spool) Sweep(maxAge time.Duration) {
	cutoff := time.Now().Add(-maxAge)

	for _, dir := range []string{s.uploadDir, s.outputDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			slog.Warn("Failed to read spool directory", "dir", dir, "error", err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				continue
			}

			if info.ModTime().Before(cutoff) {
				s.Remove(filepath.Join(dir, entry.Name()))
				slog.Debug("Swept orphaned spool file", "file", entry.Name())
			}
		}
	}
}

// Run sweeps periodically until the context is canceled.
func (s *Spool) Run(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(maxAge)
		}
	}
}
