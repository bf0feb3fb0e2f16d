package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackerctl/internal/failure"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	rec, found, err := Load(path)
	require.NoError(t, err)
	assert.False(t, found)
	assert.True(t, Defaults().Equal(rec))
}

func TestLoad_MalformedIsParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"tolerance": `), 0o644))

	rec, found, err := Load(path)
	require.Error(t, err)
	assert.True(t, found)
	assert.True(t, failure.Is(err, failure.ParseFailure))
	assert.True(t, Defaults().Equal(rec))
}

func TestLoad_DirectoryIsIOFailure(t *testing.T) {
	path := t.TempDir()

	_, _, err := Load(path)
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.IOFailure))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	rec := Defaults()
	rec.SearchRadius = 200
	rec.ToggleKey = "CTRL"
	require.NoError(t, Save(path, rec))

	back, found, err := Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, rec.Equal(back))
}

func TestSave_PreservesUnknownKeysFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"loopSleepMs": 3, "overlay": {"alpha": 0.5}}`), 0o644))

	rec, _, err := Load(path)
	require.NoError(t, err)
	rec.LoopSleepMs = 9
	require.NoError(t, Save(path, rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"loopSleepMs": 9`)
	assert.Contains(t, string(data), `"overlay"`)
	assert.Contains(t, string(data), `"alpha": 0.5`)
}

func TestSave_UnwritableIsIOFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", FileName)

	err := Save(path, Defaults())
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.IOFailure))
}
