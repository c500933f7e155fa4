package source

import (
	"context"
	"fmt"
	"os"

	"github.com/Yordan777/voxclone/internal/config"
	"github.com/Yordan777/voxclone/internal/xfs"
)

// LocalResolver resolves a model directory that already exists on disk.
// Nothing is copied; the configured path is validated and returned.
type LocalResolver struct{}

// Download validates the configured local path and returns it.
func (r *LocalResolver) Download(_ context.Context, modelConfig *config.ModelConfig, _ string) (string, bool, error) {
	source, err := modelConfig.GetSource()
	if err != nil {
		return "", false, fmt.Errorf("failed to get model source: %w", err)
	}

	localSource, ok := source.(config.LocalSource)
	if !ok {
		return "", false, fmt.Errorf("invalid source type: %T", source)
	}

	path := xfs.ExpandTilde(localSource.Path)
	if path == "" {
		return "", false, fmt.Errorf("local model source has no path")
	}

	if _, err := os.Stat(path); err != nil {
		return "", false, fmt.Errorf("local model path not accessible: %w", err)
	}

	return path, true, nil
}
