package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userSettingsDir    = ".config/trackerctl"
	projectSettingsDir = ".trackerctl"
	settingsFileName   = "settings.yaml"
)

// LoadSettings layers the built-in defaults, the user file, the project
// file and finally explicitPath (when non-empty). Missing user and project
// files are skipped; a missing explicit file is an error.
func LoadSettings(explicitPath string) (Settings, error) {
	settings := DefaultSettings()

	userPath, err := getUserSettingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user settings path: %v\n", err)
	} else if _, err := os.Stat(userPath); !os.IsNotExist(err) {
		userSettings, err := loadSettingsFromFile(userPath)
		if err != nil {
			return Settings{}, fmt.Errorf("error loading user settings from %s: %w", userPath, err)
		}
		settings = mergeSettings(settings, userSettings)
	}

	projectPath, err := getProjectSettingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project settings path: %v\n", err)
	} else if _, err := os.Stat(projectPath); !os.IsNotExist(err) {
		projectSettings, err := loadSettingsFromFile(projectPath)
		if err != nil {
			return Settings{}, fmt.Errorf("error loading project settings from %s: %w", projectPath, err)
		}
		settings = mergeSettings(settings, projectSettings)
	}

	if explicitPath != "" {
		explicit, err := loadSettingsFromFile(explicitPath)
		if err != nil {
			return Settings{}, fmt.Errorf("error loading settings from %s: %w", explicitPath, err)
		}
		settings = mergeSettings(settings, explicit)
	}

	return settings, nil
}

var getUserSettingsPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userSettingsDir, settingsFileName), nil
}

var getProjectSettingsPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectSettingsDir, settingsFileName), nil
}

func loadSettingsFromFile(filePath string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// mergeSettings merges 'overlay' into 'base'. Empty strings in the overlay
// leave the base untouched; watchConfig only overrides when present.
func mergeSettings(base, overlay Settings) Settings {
	merged := base

	if overlay.Mode != "" {
		merged.Mode = overlay.Mode
	}
	if overlay.RootDir != "" {
		merged.RootDir = overlay.RootDir
	}
	if overlay.Backend.Path != "" {
		merged.Backend.Path = overlay.Backend.Path
	}
	if overlay.Backend.Name != "" {
		merged.Backend.Name = overlay.Backend.Name
	}
	if overlay.WatchConfig != nil {
		watch := *overlay.WatchConfig
		merged.WatchConfig = &watch
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.Update.Repository != "" {
		merged.Update.Repository = overlay.Update.Repository
	}

	return merged
}

// GetUserSettingsDir returns the user settings directory path.
func GetUserSettingsDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userSettingsDir), nil
}
