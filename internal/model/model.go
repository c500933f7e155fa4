package model

import (
	"time"

	"github.com/Yordan777/voxclone/internal/config"
)

// Type is the type of a model.
type Type string

const (
	// TypeTTS is the type of a text-to-speech model.
	TypeTTS Type = "tts"
)

// Status is the current loading status of a model.
type Status string

const (
	// StatusUnloaded indicates that the model is not loaded.
	StatusUnloaded Status = "unloaded"

	// StatusLoading indicates that the model is being loaded.
	StatusLoading Status = "loading"

	// StatusLoaded indicates that the model is loaded.
	StatusLoaded Status = "loaded"

	// StatusFailed indicates that the model failed to load.
	StatusFailed Status = "failed"
)

// Instance represents a loaded model profile.
type Instance struct {
	Config   *config.ModelConfig `json:"config"`
	LoadedAt *time.Time          `json:"loaded_at,omitempty"`
	ID       string              `json:"id"`
	Path     string              `json:"-"`
	Status   Status              `json:"status"`
	Error    string              `json:"error,omitempty"`
}

// NewInstance creates a new model instance.
func NewInstance(cfg *config.ModelConfig, id, path string) *Instance {
	return &Instance{
		ID:     id,
		Path:   path,
		Config: cfg,
		Status: StatusUnloaded,
	}
}

// SetStatus sets the status of the model instance.
func (mi *Instance) SetStatus(status Status) {
	mi.Status = status
	if status == StatusLoaded {
		now := time.Now()
		mi.LoadedAt = &now
	}
}

// SetError sets the error associated with the model instance.
func (mi *Instance) SetError(err error) {
	mi.Error = err.Error()
	mi.Status = StatusFailed
}
