package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Default listen ports and engine settings.
const (
	defaultHTTPPort      = 5005
	defaultGRPCPort      = 5006
	defaultEngineBackend = "xtts"
	defaultEngineBinPath = "tts"
	defaultEngineTimeout = 300 // seconds
	defaultUploadDir     = "uploads"
	defaultOutputDir     = "outputs"
	defaultOutputTTL     = 600 // seconds
	defaultSweepInterval = 60  // seconds
)

// DefaultHTTPPort returns the default HTTP listen port.
func DefaultHTTPPort() int {
	return defaultHTTPPort
}

// DefaultGRPCPort returns the default gRPC listen port.
func DefaultGRPCPort() int {
	return defaultGRPCPort
}

// DefaultConfigPath returns the default path for the voxclone config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "voxclone", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "voxclone")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "voxclone")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "voxclone")
		}
		return filepath.Join(home, ".config", "voxclone")
	}
}

// DefaultModelsPath returns the default path for the voxclone models directory.
func DefaultModelsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "voxclone", "models")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "voxclone", "models")
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "voxclone", "models")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, "voxclone", "models")
		}
		return filepath.Join(home, ".cache", "voxclone", "models")
	}
}

// applyDefaults fills in zero-valued fields after unmarshaling.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = defaultHTTPPort
	}
	if c.Server.GRPCPort == 0 {
		c.Server.GRPCPort = defaultGRPCPort
	}
	if c.Engine.Backend == "" {
		c.Engine.Backend = defaultEngineBackend
	}
	if c.Engine.BinPath == "" {
		c.Engine.BinPath = defaultEngineBinPath
	}
	if c.Engine.TimeoutSeconds == 0 {
		c.Engine.TimeoutSeconds = defaultEngineTimeout
	}
	if c.Storage.UploadDir == "" {
		c.Storage.UploadDir = defaultUploadDir
	}
	if c.Storage.OutputDir == "" {
		c.Storage.OutputDir = defaultOutputDir
	}
	if c.Storage.OutputTTLSeconds == 0 {
		c.Storage.OutputTTLSeconds = defaultOutputTTL
	}
	if c.Storage.SweepIntervalSeconds == 0 {
		c.Storage.SweepIntervalSeconds = defaultSweepInterval
	}
}
