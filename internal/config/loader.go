package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v3"
)

// envOverrides are environment variables that take precedence over file values.
type envOverrides struct {
	HTTPPort  int    `env:"VOXCLONE_SERVER_HTTP_PORT"`
	GRPCPort  int    `env:"VOXCLONE_SERVER_GRPC_PORT"`
	UploadDir string `env:"VOXCLONE_UPLOAD_DIR"`
	OutputDir string `env:"VOXCLONE_OUTPUT_DIR"`
	ModelsDir string `env:"VOXCLONE_MODELS_PATH"`
}

// LoadAndValidate loads and validates the configuration.
func LoadAndValidate(path, schemaPath string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	schema, err := jsonschema.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal into Config struct: %w", err)
	}

	config.applyDefaults()

	if err := config.applyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return &config, nil
}

// applyEnvOverrides overlays environment variable values onto the config.
func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return err
	}

	if o.HTTPPort != 0 {
		c.Server.HTTPPort = o.HTTPPort
	}
	if o.GRPCPort != 0 {
		c.Server.GRPCPort = o.GRPCPort
	}
	if o.UploadDir != "" {
		c.Storage.UploadDir = o.UploadDir
	}
	if o.OutputDir != "" {
		c.Storage.OutputDir = o.OutputDir
	}
	if o.ModelsDir != "" {
		c.Storage.ModelsDir = o.ModelsDir
	}

	return nil
}
