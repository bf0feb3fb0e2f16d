package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOS points the OS lookups at fixed locations for one test.
func stubOS(t *testing.T, exe, wd, tmp string) {
	t.Helper()
	origExe, origWd, origTmp, origGoos := osExecutable, osGetwd, osTempDir, goos
	osExecutable = func() (string, error) { return exe, nil }
	osGetwd = func() (string, error) { return wd, nil }
	osTempDir = func() string { return tmp }
	goos = "linux"
	t.Cleanup(func() {
		osExecutable, osGetwd, osTempDir, goos = origExe, origWd, origTmp, origGoos
	})
}

func TestResolvePaths_Development(t *testing.T) {
	root := t.TempDir()
	stubOS(t, "/opt/trackerctl/trackerctl", root, "/tmp")

	p, err := ResolvePaths(Settings{Mode: ModeDevelopment})
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, p.Mode)
	assert.Equal(t, root, p.RootDir)
	assert.Equal(t, root, p.ConfigDir)
	assert.Equal(t, filepath.Join(root, "config.json"), p.ConfigPath)
	assert.Equal(t, filepath.Join(root, "ColorTracker"), p.BackendPath)
}

func TestResolvePaths_DevelopmentRootOverride(t *testing.T) {
	root := t.TempDir()
	stubOS(t, "/opt/trackerctl/trackerctl", "/somewhere/else", "/tmp")

	p, err := ResolvePaths(Settings{Mode: ModeDevelopment, RootDir: root})
	require.NoError(t, err)
	assert.Equal(t, root, p.RootDir)
	assert.Equal(t, filepath.Join(root, FileName), p.ConfigPath)
}

func TestResolvePaths_Installed(t *testing.T) {
	dir := t.TempDir()
	stubOS(t, filepath.Join(dir, "trackerctl"), "/ignored", "/nonexistent-tmp")

	p, err := ResolvePaths(Settings{Mode: ModeInstalled, Backend: BackendSettings{Name: "ColorTracker.exe"}})
	require.NoError(t, err)

	assert.Equal(t, ModeInstalled, p.Mode)
	assert.Equal(t, dir, p.RootDir)
	assert.Equal(t, dir, p.ConfigDir)
	assert.Equal(t, filepath.Join(dir, "config.json"), p.ConfigPath)
	assert.Equal(t, filepath.Join(dir, "resources", "ColorTracker.exe"), p.BackendPath)
}

func TestResolvePaths_AutoDetectsDevelopmentUnderTemp(t *testing.T) {
	tmp := t.TempDir()
	wd := t.TempDir()
	stubOS(t, filepath.Join(tmp, "go-build123", "exe", "trackerctl"), wd, tmp)

	p, err := ResolvePaths(Settings{Mode: ModeAuto})
	require.NoError(t, err)
	assert.Equal(t, ModeDevelopment, p.Mode)
	assert.Equal(t, wd, p.RootDir)
}

func TestResolvePaths_AutoDetectsInstalled(t *testing.T) {
	dir := t.TempDir()
	stubOS(t, filepath.Join(dir, "trackerctl"), "/ignored", "/nonexistent-tmp")

	p, err := ResolvePaths(Settings{})
	require.NoError(t, err)
	assert.Equal(t, ModeInstalled, p.Mode)
	assert.Equal(t, dir, p.ConfigDir)
}

func TestResolvePaths_BackendPathOverrides(t *testing.T) {
	root := t.TempDir()
	stubOS(t, "/opt/trackerctl/trackerctl", root, "/tmp")
	backend := filepath.Join(t.TempDir(), "tracker-dev")

	p, err := ResolvePaths(Settings{Mode: ModeDevelopment, Backend: BackendSettings{Path: backend}})
	require.NoError(t, err)
	assert.Equal(t, backend, p.BackendPath)
	assert.Equal(t, filepath.Join(root, FileName), p.ConfigPath)
}

func TestResolvePaths_UnknownMode(t *testing.T) {
	stubOS(t, "/opt/trackerctl/trackerctl", "/", "/tmp")

	_, err := ResolvePaths(Settings{Mode: "portable"})
	assert.ErrorContains(t, err, "unknown mode")
}

func TestResolvePaths_ExecutableLookupFails(t *testing.T) {
	stubOS(t, "", "/", "/tmp")
	osExecutable = func() (string, error) { return "", errors.New("no proc") }

	_, err := ResolvePaths(Settings{Mode: ModeInstalled})
	assert.ErrorContains(t, err, "no proc")
}

func TestDefaultBackendName(t *testing.T) {
	orig := goos
	t.Cleanup(func() { goos = orig })

	goos = "windows"
	assert.Equal(t, "ColorTracker.exe", DefaultBackendName())
	goos = "darwin"
	assert.Equal(t, "ColorTracker", DefaultBackendName())
}
