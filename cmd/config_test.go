package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackerctl/internal/config"
)

func readRecord(t *testing.T, root string) config.Record {
	t.Helper()
	rec, found, err := config.Load(filepath.Join(root, config.FileName))
	require.NoError(t, err)
	require.True(t, found)
	return rec
}

func TestConfigShow_MissingFileShowsDefaults(t *testing.T) {
	root := useDevRoot(t)

	out, err := execute(t, newConfigCmd(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"searchRadius": 50`)
	assert.Contains(t, out, `"enableKey": "F5"`)

	_, statErr := os.Stat(filepath.Join(root, config.FileName))
	assert.True(t, os.IsNotExist(statErr), "show does not create the file")
}

func TestConfigSet(t *testing.T) {
	root := useDevRoot(t)

	out, err := execute(t, newConfigCmd(), "set", "tolerance", "40")
	require.NoError(t, err)
	assert.Equal(t, "tolerance = 40\n", out)

	_, err = execute(t, newConfigCmd(), "set", "toggleKey", "q")
	require.NoError(t, err)

	rec := readRecord(t, root)
	assert.Equal(t, 40, rec.Tolerance)
	assert.Equal(t, "Q", rec.ToggleKey)
	assert.Equal(t, config.DefaultSearchRadius, rec.SearchRadius)
}

func TestConfigSet_KeepsUnknownKeys(t *testing.T) {
	root := useDevRoot(t)
	path := filepath.Join(root, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"tolerance": 10, "overlay": true}`), 0o644))

	_, err := execute(t, newConfigCmd(), "set", "theme", "forest")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"overlay": true`)
	assert.Contains(t, string(data), `"theme": "forest"`)
}

func TestConfigSet_Errors(t *testing.T) {
	useDevRoot(t)

	_, err := execute(t, newConfigCmd(), "set", "tolerance", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects an integer")

	_, err = execute(t, newConfigCmd(), "set", "volume", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")

	_, err = execute(t, newConfigCmd(), "set", "tolerance")
	require.Error(t, err)
}

func TestConfigReset(t *testing.T) {
	root := useDevRoot(t)
	path := filepath.Join(root, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"searchRadius": 100, "tolerance": 3, "loopSleepMs": 9, "enableKey": "F1", "toggleKey": "X", "modeKey": "F9", "theme": "forest"}`), 0o644))

	out, err := execute(t, newConfigCmd(), "reset", "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset settings")

	rec := readRecord(t, root)
	assert.Equal(t, config.DefaultSearchRadius, rec.SearchRadius)
	assert.Equal(t, config.DefaultTolerance, rec.Tolerance)
	assert.Equal(t, config.DefaultLoopSleepMs, rec.LoopSleepMs)
	assert.Equal(t, "F1", rec.EnableKey, "keys are untouched")

	_, err = execute(t, newConfigCmd(), "reset", "keybinds")
	require.NoError(t, err)

	rec = readRecord(t, root)
	assert.Equal(t, config.DefaultEnableKey, rec.EnableKey)
	assert.Equal(t, config.DefaultToggleKey, rec.ToggleKey)
	assert.Equal(t, "F9", rec.ModeKey)
	assert.Equal(t, "forest", rec.Theme)
}

func TestConfigReset_RejectsMalformedFile(t *testing.T) {
	root := useDevRoot(t)
	path := filepath.Join(root, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := execute(t, newConfigCmd(), "reset", "settings")
	require.Error(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, `{not json`, string(data))
}

func TestConfigReset_InvalidTarget(t *testing.T) {
	useDevRoot(t)
	_, err := execute(t, newConfigCmd(), "reset", "everything")
	require.Error(t, err)
}

func TestConfigResetKeybinds_KeepsValuesOutsideSliderRange(t *testing.T) {
	root := useDevRoot(t)

	_, err := execute(t, newConfigCmd(), "set", "loopSleepMs", "150")
	require.NoError(t, err)
	_, err = execute(t, newConfigCmd(), "set", "searchRadius", "52")
	require.NoError(t, err)

	_, err = execute(t, newConfigCmd(), "reset", "keybinds")
	require.NoError(t, err)

	rec := readRecord(t, root)
	assert.Equal(t, 150, rec.LoopSleepMs)
	assert.Equal(t, 52, rec.SearchRadius)
	assert.Equal(t, config.DefaultEnableKey, rec.EnableKey)
}
