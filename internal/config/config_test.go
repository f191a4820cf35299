package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig(viper.New())

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "release", cfg.HTTP.GinMode)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.False(t, cfg.Database.SeedOnEmpty)
	assert.False(t, cfg.Demo.Enabled)
	assert.Equal(t, DefaultDemoResetSchedule, cfg.Demo.ResetSchedule)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/books.db")
	t.Setenv("SEED_ON_EMPTY", "true")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("DEMO_RESET_SCHEDULE", "0 * * * *")

	cfg := newConfig(viper.New())

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "/tmp/books.db", cfg.Database.Path)
	assert.True(t, cfg.Database.SeedOnEmpty)
	assert.True(t, cfg.Demo.Enabled)
	assert.Equal(t, "0 * * * *", cfg.Demo.ResetSchedule)
}

func TestNewConfig_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HOST=127.0.0.1\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	// Register HOST for restoration before godotenv sets it.
	t.Setenv("HOST", "")
	os.Unsetenv("HOST")

	cfg := NewConfig()

	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
}

func TestNewConfig_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7000\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	t.Setenv("PORT", "7100")

	cfg := NewConfig()

	assert.Equal(t, int32(7100), cfg.HTTP.Port)
}

func TestNewConfig_MalformedEnvFileIsLogged(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("BAD-KEY=1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GIN_MODE=debug\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	t.Setenv("GIN_MODE", "")
	os.Unsetenv("GIN_MODE")

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	cfg := NewConfig()

	assert.Contains(t, logs.String(), ".env.local")
	assert.Equal(t, "debug", cfg.HTTP.GinMode)
}

func TestNewConfig_MissingEnvFilesAreSilent(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	NewConfig()

	assert.Empty(t, logs.String())
}
