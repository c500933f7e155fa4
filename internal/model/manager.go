package model

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/Yordan777/voxclone/internal/config"
	"github.com/Yordan777/voxclone/internal/config/source"
	"github.com/Yordan777/voxclone/internal/envvar"
	"github.com/Yordan777/voxclone/internal/xfs"
)

// Manager orchestrates model lifecycle.
type Manager struct {
	registry *Registry
	mu       sync.Mutex
}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{
		registry: NewRegistry(),
	}
}

// Registry returns the model registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// LoadModelsFromConfig materializes every model assigned to the TTS service
// and updates the registry. Models no longer assigned are dropped.
func (m *Manager) LoadModelsFromConfig(ctx context.Context, cfg *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	assignedModels := make(map[string]bool)
	for _, modelID := range cfg.Services.TTS.Models {
		assignedModels[modelID] = true
	}

	modelsPath := resolveModelsPath(cfg)
	if err := source.EnsureModelsDirectory(modelsPath); err != nil {
		return fmt.Errorf("failed to prepare models directory %s: %w", modelsPath, err)
	}

	loadedKeys := make(map[string]bool)
	for modelID := range assignedModels {
		modelConfig, ok := cfg.Models[modelID]
		if !ok {
			slog.Warn("Model not found in config", "model_id", modelID)
			continue
		}

		modelSource, err := modelConfig.GetSource()
		if err != nil {
			return fmt.Errorf("failed to get model source for %s: %w", modelID, err)
		}

		downloader, err := source.GetDownloader(ctx, modelSource.Type())
		if err != nil {
			return fmt.Errorf("failed to get downloader for %s: %w", modelID, err)
		}

		downloadPath, _, err := downloader.Download(ctx, &modelConfig, modelsPath)
		if err != nil {
			return fmt.Errorf("failed to download model %s into %s: %w", modelID, modelsPath, err)
		}

		instance := NewInstance(&modelConfig, modelID, downloadPath)
		instance.SetStatus(StatusLoaded)
		loadedKeys[modelID] = true
		m.registry.Set(instance)

		slog.Info("Model loaded into registry", "model_id", modelID, "path", downloadPath)
	}

	// Drop registry entries no longer assigned
	for _, instance := range m.registry.List() {
		if !loadedKeys[instance.ID] {
			m.registry.Delete(instance.ID)
			slog.Info("Model unloaded", "model_id", instance.ID)
		}
	}

	return nil
}

// resolveModelsPath returns the path to the models directory.
// Precedence:
// 1. VOXCLONE_MODELS_PATH environment variable.
// 2. ModelsDir field in the config.
// 3. Default models path.
func resolveModelsPath(cfg *config.Config) string {
	if p := os.Getenv(envvar.VoxcloneModelsPath); p != "" {
		return xfs.ExpandTilde(p)
	}
	if cfg.Storage.ModelsDir != "" {
		return xfs.ExpandTilde(cfg.Storage.ModelsDir)
	}
	return xfs.ExpandTilde(config.DefaultModelsPath())
}
