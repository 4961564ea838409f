package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.BodyLimitMB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "local", cfg.Archive.Backend)
	assert.Equal(t, "uploaded_files", cfg.Archive.UploadDir)
	assert.Equal(t, "records", cfg.Archive.RecordDir)
	assert.Equal(t, 7, cfg.Archive.RetentionDays)
	assert.Equal(t, 0, cfg.Archive.SweepIntervalMinutes)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ARCHIVE_RETENTION_DAYS", "3")
	t.Setenv("SERVER_API_KEY", "secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Archive.RetentionDays)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ARCHIVE_BACKEND=s3\nSTORAGE_BUCKET=stock\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("ARCHIVE_BACKEND")
		os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "s3", cfg.Archive.Backend)
	assert.Equal(t, "stock", cfg.Storage.Bucket)
}

func TestLoadConfig_SectionPrefixes(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("STORAGE_ENDPOINT", "minio:9000")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DATABASE_NAME", "ledger")
	t.Setenv("ARCHIVE_SWEEP_INTERVAL_MINUTES", "15")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "minio:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "ledger", cfg.Database.Name)
	assert.Equal(t, 15, cfg.Archive.SweepIntervalMinutes)
}
