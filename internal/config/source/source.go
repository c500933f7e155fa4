// Package source acquires model files for the registry, either by downloading
// them or by resolving a path already on disk.
package source

import (
	"context"
	"fmt"
	"os"

	"github.com/Yordan777/voxclone/internal/config"
)

// Downloader materializes a model on the local filesystem.
// It returns the local path and whether the model was already cached.
type Downloader interface {
	Download(ctx context.Context, modelConfig *config.ModelConfig, targetDir string) (string, bool, error)
}

// GetDownloader returns the downloader for the given source type.
func GetDownloader(_ context.Context, sourceType config.SourceType) (Downloader, error) {
	switch sourceType {
	case config.SourceTypeHuggingFace:
		return &HuggingFaceDownloader{}, nil
	case config.SourceTypeLocal:
		return &LocalResolver{}, nil
	default:
		return nil, fmt.Errorf("unsupported model source type: %s", sourceType)
	}
}

// EnsureModelsDirectory creates the models directory if it does not exist.
func EnsureModelsDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create models directory: %w", err)
	}

	return nil
}
