package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelfUpdateCmd(t *testing.T) {
	selfUpdateCmd := newSelfUpdateCmd()

	assert.Equal(t, "self-update", selfUpdateCmd.Use)
	assert.NotEmpty(t, selfUpdateCmd.Short)
	assert.NotEmpty(t, selfUpdateCmd.Long)
	assert.NotNil(t, selfUpdateCmd.RunE)
}

func TestRunSelfUpdate_DevelopmentVersions(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	for _, v := range []string{"dev", ""} {
		rootCmd.Version = v
		err := runSelfUpdate(nil, []string{})
		require.Error(t, err, "version %q", v)
		assert.Contains(t, err.Error(), "cannot self-update a development version")
	}
}

func TestRunSelfUpdate_RequiresRepository(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	rootCmd.Version = "1.0.0"

	root := useDevRoot(t)
	settingsFlag = filepath.Join(root, "settings.yaml")
	require.NoError(t, os.WriteFile(settingsFlag, []byte("update:\n  repository: \"\"\n"), 0o644))

	err := runSelfUpdate(nil, []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no update repository configured")
}

func TestSelfUpdateCommandHelp(t *testing.T) {
	out, err := execute(t, newSelfUpdateCmd(), "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Checks for the latest release")
	assert.Contains(t, out, "self-update")
}

// The update itself needs network access and replaces the running binary,
// so it is not exercised here.
