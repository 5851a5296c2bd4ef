package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "ARTIFACTS_SOURCE", "ARTIFACTS_DIR", "MAX_UPLOAD_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, SourceDir, cfg.ArtifactsSource)
	assert.Equal(t, "artifacts", cfg.ArtifactsDir)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ARTIFACTS_SOURCE", "Postgres")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("READ_TIMEOUT_SECONDS", "not-a-number")
	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SourcePostgres, cfg.ArtifactsSource)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, 30, cfg.ReadTimeoutSeconds)
}
