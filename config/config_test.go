package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "REGISTRY_SOURCE", "REGISTRY_FILE", "MEDIA_BASE_URL", "APP_PUBLIC_URL", "DB_MAX_RETRIES"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SourceFile, cfg.RegistrySource)
	assert.Equal(t, "data/campus.json", cfg.RegistryFile)
	assert.Equal(t, "/media/", cfg.MediaBaseURL)
	assert.Empty(t, cfg.AppPublicURL)
	assert.Equal(t, 30, cfg.DB.MaxRetries)
}

func TestUsesDefaultRegistryFile(t *testing.T) {
	t.Setenv("REGISTRY_FILE", "")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.UsesDefaultRegistryFile())

	t.Setenv("REGISTRY_FILE", "./data/campus.json")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.UsesDefaultRegistryFile())

	t.Setenv("REGISTRY_FILE", "data/campsu.json")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.UsesDefaultRegistryFile())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REGISTRY_SOURCE", "db")
	t.Setenv("APP_PUBLIC_URL", "https://www.satiengg.in/")
	t.Setenv("DB_MAX_RETRIES", "3")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SourceDB, cfg.RegistrySource)
	assert.Equal(t, "https://www.satiengg.in/", cfg.AppPublicURL)
	assert.Equal(t, 3, cfg.DB.MaxRetries)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("REGISTRY_SOURCE", "redis")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("REGISTRY_SOURCE", "")
	t.Setenv("DB_MAX_RETRIES", "many")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REGISTRY_FILE=custom/campus.yaml\n"), 0o644))
	t.Setenv("REGISTRY_FILE", "")
	os.Unsetenv("REGISTRY_FILE")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom/campus.yaml", cfg.RegistryFile)
}
