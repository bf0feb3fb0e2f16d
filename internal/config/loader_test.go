package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a temporary settings file
func createTempSettingsFile(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func overrideSettingsPaths(t *testing.T, user, project string) {
	t.Helper()
	origUser, origProject := getUserSettingsPath, getProjectSettingsPath
	getUserSettingsPath = func() (string, error) { return user, nil }
	getProjectSettingsPath = func() (string, error) { return project, nil }
	t.Cleanup(func() {
		getUserSettingsPath, getProjectSettingsPath = origUser, origProject
	})
}

func TestLoadSettings_DefaultsOnly(t *testing.T) {
	tmp := t.TempDir()
	overrideSettingsPaths(t, filepath.Join(tmp, "nouser.yaml"), filepath.Join(tmp, "noproject.yaml"))

	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, ModeAuto, s.Mode)
	assert.Equal(t, "info", s.LogLevel)
	assert.True(t, s.WatchEnabled())
	assert.Equal(t, DefaultBackendName(), s.Backend.Name)
	assert.Empty(t, s.Update.Repository)
}

func TestLoadSettings_UserThenProjectThenExplicit(t *testing.T) {
	tmp := t.TempDir()
	userPath := createTempSettingsFile(t, filepath.Join(tmp, "user"), `
mode: installed
logLevel: debug
backend:
  name: Tracker.bin
update:
  repository: acme/trackerctl
`)
	projectPath := createTempSettingsFile(t, filepath.Join(tmp, "project"), `
mode: development
rootDir: /srv/tracker
watchConfig: false
`)
	explicitPath := createTempSettingsFile(t, filepath.Join(tmp, "explicit"), `
backend:
  path: /usr/local/bin/ColorTracker
`)
	overrideSettingsPaths(t, userPath, projectPath)

	s, err := LoadSettings(explicitPath)
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, s.Mode)
	assert.Equal(t, "/srv/tracker", s.RootDir)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "Tracker.bin", s.Backend.Name)
	assert.Equal(t, "/usr/local/bin/ColorTracker", s.Backend.Path)
	assert.Equal(t, "acme/trackerctl", s.Update.Repository)
	assert.False(t, s.WatchEnabled())
}

func TestLoadSettings_WatchConfigKeptWhenOverlayOmitsIt(t *testing.T) {
	tmp := t.TempDir()
	userPath := createTempSettingsFile(t, filepath.Join(tmp, "user"), "watchConfig: false\n")
	projectPath := createTempSettingsFile(t, filepath.Join(tmp, "project"), "logLevel: warn\n")
	overrideSettingsPaths(t, userPath, projectPath)

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.False(t, s.WatchEnabled())
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	userPath := createTempSettingsFile(t, filepath.Join(tmp, "user"), "mode: [unclosed\n")
	overrideSettingsPaths(t, userPath, filepath.Join(tmp, "none.yaml"))

	_, err := LoadSettings("")
	assert.ErrorContains(t, err, "error loading user settings")
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	overrideSettingsPaths(t, filepath.Join(tmp, "a.yaml"), filepath.Join(tmp, "b.yaml"))

	_, err := LoadSettings(filepath.Join(tmp, "explicit.yaml"))
	assert.Error(t, err)
}

func TestGetUserSettingsDir(t *testing.T) {
	orig := osUserHomeDir
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }
	t.Cleanup(func() { osUserHomeDir = orig })

	dir, err := GetUserSettingsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "trackerctl"), dir)
}
