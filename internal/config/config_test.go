package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "projects", cfg.ProjectsRoot)
	assert.Equal(t, []string{"r", "python", "static"}, cfg.Subdirs)
	assert.Equal(t, "README.md", cfg.ReadmeName)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.SearchParents)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TIDYWEEK_PROJECTS_ROOT", "/srv/tidy")
	t.Setenv("TIDYWEEK_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/tidy", cfg.ProjectsRoot)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestSaveThenLoad_ExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "tidyweek.yaml")

	in := &Global{
		ProjectsRoot: "~/work/projects",
		Subdirs:      []string{"r", "python", "static", "data"},
		ReadmeName:   "README.md",
		LogLevel:     "info",
		LogFormat:    "json",
	}
	require.NoError(t, Save(in, path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, Save(&Global{ProjectsRoot: "elsewhere"}, ""))
	_, err := os.Stat(filepath.Join(home, ".tidyweek", "config.yaml"))
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.ProjectsRoot)
	// empty list in the file falls back to the default layout
	assert.Equal(t, []string{"r", "python", "static"}, cfg.Subdirs)
}

func TestLoad_MissingExplicitFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("subdirs: [r, python\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_CreatesParentOfExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "dir", "tidyweek.yaml")

	require.NoError(t, Save(&Global{ProjectsRoot: "p", SearchParents: true}, path))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "p", cfg.ProjectsRoot)
	assert.True(t, cfg.SearchParents)
}
