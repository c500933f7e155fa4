package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The shipped schema is the one validated against in production.
const schemaPath = "../../config/voxclone.v1.schema.json"

const minimalConfig = `
version: "1"
models:
  xtts-v2:
    type: tts
    backend: xtts
    source:
      local:
        path: /models/xtts-v2
services:
  tts:
    models:
      - xtts-v2
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAndValidate_ShippedExample(t *testing.T) {
	cfg, err := LoadAndValidate("../../config/config.yaml", schemaPath)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "xtts-v2", cfg.DefaultTTSModel())
	assert.Contains(t, cfg.Models, "xtts-v2")

	model := cfg.Models["xtts-v2"]
	source, err := model.GetSource()
	require.NoError(t, err)
	assert.Equal(t, SourceTypeHuggingFace, source.Type())
}

func TestLoadAndValidate_DefaultsApplied(t *testing.T) {
	cfg, err := LoadAndValidate(writeConfig(t, minimalConfig), schemaPath)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, DefaultHTTPPort(), cfg.Server.HTTPPort)
	assert.Equal(t, DefaultGRPCPort(), cfg.Server.GRPCPort)
	assert.Equal(t, "xtts", cfg.Engine.Backend)
	assert.Equal(t, "tts", cfg.Engine.BinPath)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "outputs", cfg.Storage.OutputDir)
	assert.Positive(t, cfg.Storage.OutputTTL())
	assert.Positive(t, cfg.Storage.SweepInterval())
}

func TestLoadAndValidate_EnvOverrides(t *testing.T) {
	t.Setenv("VOXCLONE_SERVER_HTTP_PORT", "8080")
	t.Setenv("VOXCLONE_UPLOAD_DIR", "/var/spool/voxclone/uploads")

	cfg, err := LoadAndValidate(writeConfig(t, minimalConfig), schemaPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "/var/spool/voxclone/uploads", cfg.Storage.UploadDir)
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	_, err := LoadAndValidate(filepath.Join(t.TempDir(), "missing.yaml"), schemaPath)
	assert.Error(t, err)
}

func TestLoadAndValidate_InvalidYAML(t *testing.T) {
	_, err := LoadAndValidate(writeConfig(t, "version: [unclosed"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestLoadAndValidate_SchemaViolation(t *testing.T) {
	// Unknown version and a model with no source.
	bad := `
version: "2"
models:
  broken:
    type: tts
    backend: xtts
    source: {}
services:
  tts:
    models: [broken]
`
	_, err := LoadAndValidate(writeConfig(t, bad), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestModelConfig_GetSource_None(t *testing.T) {
	var m ModelConfig
	_, err := m.GetSource()
	assert.Error(t, err)
}

func TestModelConfig_SetSources(t *testing.T) {
	var m ModelConfig

	m.SetLocalSource(LocalSource{Path: "/models/x"})
	source, err := m.GetSource()
	require.NoError(t, err)
	assert.Equal(t, SourceTypeLocal, source.Type())

	m = ModelConfig{}
	m.SetHuggingFaceSource(HuggingFaceSource{Repo: "coqui/XTTS-v2"})
	source, err = m.GetSource()
	require.NoError(t, err)
	assert.Equal(t, SourceTypeHuggingFace, source.Type())
}
