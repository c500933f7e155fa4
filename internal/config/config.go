package config

import (
	"errors"
	"time"
)

// SourceType represents the type of model source.
type SourceType string

const (
	// SourceTypeHuggingFace represents a Hugging Face model repository source.
	SourceTypeHuggingFace SourceType = "huggingface"

	// SourceTypeLocal represents a model already present on the local filesystem.
	SourceTypeLocal SourceType = "local"
)

// Config holds the main configuration for the application.
type Config struct {
	Version  string                 `json:"version"           yaml:"version"`
	Server   ServerConfig           `json:"server,omitempty"  yaml:"server,omitempty"`
	Engine   EngineConfig           `json:"engine,omitempty"  yaml:"engine,omitempty"`
	Storage  StorageConfig          `json:"storage,omitempty" yaml:"storage,omitempty"`
	Models   map[string]ModelConfig `json:"models"            yaml:"models"`
	Services ServicesConfig         `json:"services"          yaml:"services"`
}

// ServerConfig holds the listen configuration for the HTTP and gRPC servers.
type ServerConfig struct {
	Host     string `json:"host,omitempty"      yaml:"host,omitempty"`
	HTTPPort int    `json:"http_port,omitempty" yaml:"http_port,omitempty"`
	GRPCPort int    `json:"grpc_port,omitempty" yaml:"grpc_port,omitempty"`
}

// EngineConfig holds configuration for the synthesis engine invocation.
type EngineConfig struct {
	Backend        string `json:"backend,omitempty"         yaml:"backend,omitempty"`
	BinPath        string `json:"bin_path,omitempty"        yaml:"bin_path,omitempty"`
	UseCUDA        bool   `json:"use_cuda,omitempty"        yaml:"use_cuda,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
}

// Timeout returns the synthesis timeout as a duration.
func (e EngineConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// StorageConfig holds configuration for transient audio files and model caching.
type StorageConfig struct {
	UploadDir            string `json:"upload_dir,omitempty"             yaml:"upload_dir,omitempty"`
	OutputDir            string `json:"output_dir,omitempty"             yaml:"output_dir,omitempty"`
	ModelsDir            string `json:"models_dir,omitempty"             yaml:"models_dir,omitempty"`
	OutputTTLSeconds     int    `json:"output_ttl_seconds,omitempty"     yaml:"output_ttl_seconds,omitempty"`
	SweepIntervalSeconds int    `json:"sweep_interval_seconds,omitempty" yaml:"sweep_interval_seconds,omitempty"`
}

// OutputTTL returns how long generated audio may linger on disk.
func (s StorageConfig) OutputTTL() time.Duration {
	return time.Duration(s.OutputTTLSeconds) * time.Second
}

// SweepInterval returns how often the spool sweeper runs.
func (s StorageConfig) SweepInterval() time.Duration {
	return time.Duration(s.SweepIntervalSeconds) * time.Second
}

// ModelConfig holds configuration for a specific model.
type ModelConfig struct {
	Source  SourceConfig `json:"source"  yaml:"source"`
	Type    string       `json:"type"    yaml:"type"`
	Backend string       `json:"backend" yaml:"backend"`
	Tags    []string     `json:"tags"    yaml:"tags"`
}

// SourceConfig wraps optional sources (only one should be set).
type SourceConfig struct {
	HuggingFace *HuggingFaceSource `json:"huggingface,omitempty" yaml:"huggingface,omitempty"`
	Local       *LocalSource       `json:"local,omitempty"       yaml:"local,omitempty"`
}

// ServicesConfig holds configuration for all services.
type ServicesConfig struct {
	TTS ServicesConfigAssignment `json:"tts" yaml:"tts"`
}

// ServicesConfigAssignment holds model assignments for a service.
type ServicesConfigAssignment struct {
	Models []string `json:"models" yaml:"models"` // List of model IDs
}

// DefaultTTSModel returns the first TTS model assignment, or "" when none is configured.
func (c *Config) DefaultTTSModel() string {
	if len(c.Services.TTS.Models) == 0 {
		return ""
	}

	return c.Services.TTS.Models[0]
}

// -------------------------
// Source definitions
// -------------------------

// ModelSource represents a source for a model.
type ModelSource interface {
	Type() SourceType
}

// HuggingFaceSource represents a Hugging Face model repository source.
type HuggingFaceSource struct {
	Repo          string   `json:"repo"                     yaml:"repo"`
	Revision      string   `json:"revision,omitempty"       yaml:"revision,omitempty"`
	RepoType      string   `json:"repo_type,omitempty"      yaml:"repo_type,omitempty"`
	Token         string   `json:"token,omitempty"          yaml:"token,omitempty"`
	Include       []string `json:"include,omitempty"        yaml:"include,omitempty"`
	Exclude       []string `json:"exclude,omitempty"        yaml:"exclude,omitempty"`
	MaxWorkers    int      `json:"max_workers,omitempty"    yaml:"max_workers,omitempty"`
	ForceDownload bool     `json:"force_download,omitempty" yaml:"force_download,omitempty"`
}

// Type returns the Hugging Face source type.
func (h HuggingFaceSource) Type() SourceType {
	return SourceTypeHuggingFace
}

// LocalSource represents a model directory already present on disk.
type LocalSource struct {
	Path string `json:"path" yaml:"path"`
}

// Type returns the local source type.
func (l LocalSource) Type() SourceType {
	return SourceTypeLocal
}

// GetSource returns the active source for the model.
func (m *ModelConfig) GetSource() (ModelSource, error) {
	if m.Source.HuggingFace != nil {
		return *m.Source.HuggingFace, nil
	}

	if m.Source.Local != nil {
		return *m.Source.Local, nil
	}

	return nil, errors.New("no source configured for model")
}

// SetHuggingFaceSource sets the Hugging Face source.
func (m *ModelConfig) SetHuggingFaceSource(source HuggingFaceSource) {
	m.Source.HuggingFace = &source
}

// SetLocalSource sets the local source.
func (m *ModelConfig) SetLocalSource(source LocalSource) {
	m.Source.Local = &source
}
