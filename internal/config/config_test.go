package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps tests away from the developer's real config: an empty
// override directory and a scratch working directory.
func isolate(t *testing.T) {
	t.Helper()
	SetDirOverride(t.TempDir())
	t.Cleanup(Reset)
	t.Chdir(t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Verbs)
	assert.Empty(t, cfg.VerbsFile)
	assert.False(t, cfg.OneLiners)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.toml")
	content := "verbs = ['craft', 'polish']\none_liners = true\nformat = 'json'\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"craft", "polish"}, cfg.Verbs)
	assert.True(t, cfg.OneLiners)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_LocalFile(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(LocalFileName, []byte("one_liners = true\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.OneLiners)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoad_UserConfigDir(t *testing.T) {
	dir := t.TempDir()
	SetDirOverride(dir)
	t.Cleanup(Reset)
	t.Chdir(t.TempDir())

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("verbs = ['ship']\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"ship"}, cfg.Verbs)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(LocalFileName, []byte("format = 'json'\n"), 0o644))
	t.Setenv("COMMITKIT_FORMAT", "text")
	t.Setenv("COMMITKIT_ONE_LINERS", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.True(t, cfg.OneLiners)
}

func TestLoad_EnvVerbsList(t *testing.T) {
	isolate(t)
	t.Setenv("COMMITKIT_VERBS", "craft,polish")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"craft", "polish"}, cfg.Verbs)
}

func TestLoad_InvalidFormat(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(LocalFileName, []byte("format = 'yaml'\n"), 0o644))

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestInit(t *testing.T) {
	SetDirOverride(filepath.Join(t.TempDir(), "commitkit"))
	t.Cleanup(Reset)

	path, created, err := Init()
	require.NoError(t, err)
	assert.True(t, created)
	assert.FileExists(t, path)

	// The starter file must load back cleanly as the defaults.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Verbs)
	assert.Empty(t, cfg.VerbsFile)
	assert.False(t, cfg.OneLiners)
	assert.Equal(t, FormatText, cfg.Format)

	// A second Init leaves the existing file alone.
	_, created, err = Init()
	require.NoError(t, err)
	assert.False(t, created)
}

func TestRender(t *testing.T) {
	out, err := Render(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "format = 'text'")
	assert.Contains(t, out, "one_liners = false")
}
