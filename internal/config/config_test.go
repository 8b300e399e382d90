package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/internal/core/scene"
	"github.com/zeusync/scenegraph/pkg/encoding"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenectl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, log.LevelInfo, cfg.LogLevel())
	assert.Equal(t, encoding.FormatJSON, cfg.OutputFormat())
	assert.Len(t, cfg.DecodeOptions(), 1)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
decode:
  mode: lenient
  fresh_ids: true
  workers: 4
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, log.LevelDebug, cfg.LogLevel())
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, 4, cfg.Decode.Workers)
	assert.Equal(t, encoding.FormatJSON, cfg.OutputFormat())
	assert.Len(t, cfg.DecodeOptions(), 2)

	d := scene.NewRegistry(log.NewNop()).NewDecoder(cfg.DecodeOptions()...)
	assert.Equal(t, scene.ModeLenient, d.Mode())
}

func TestLoadRejectsInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"level":    "log:\n  level: loud\n",
		"encoding": "log:\n  encoding: xml\n",
		"mode":     "decode:\n  mode: loose\n",
		"workers":  "decode:\n  workers: -1\n",
		"format":   "format: toml\n",
		"syntax":   "log: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
