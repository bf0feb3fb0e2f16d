package app

import (
	"fmt"

	"trackerctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// Overrides from the command line. Empty values leave the settings
	// files in charge.
	Mode         string
	RootDir      string
	BackendPath  string
	SettingsPath string
	NoWatch      bool

	// Filled in by NewApplication.
	Settings *config.Settings
	Paths    config.AppPaths
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool) *Config {
	return &Config{
		NoTUI: noTUI,
		Debug: debug,
	}
}

// applyOverrides layers the command line flags over the loaded settings.
func (c *Config) applyOverrides(s config.Settings) config.Settings {
	if c.Mode != "" {
		s.Mode = config.Mode(c.Mode)
	}
	if c.RootDir != "" {
		s.RootDir = c.RootDir
	}
	if c.BackendPath != "" {
		s.Backend.Path = c.BackendPath
	}
	if c.NoWatch {
		off := false
		s.WatchConfig = &off
	}
	if c.Debug {
		s.LogLevel = "debug"
	}
	return s
}

// Resolve loads the layered settings, applies the overrides and resolves
// the paths, filling Settings and Paths.
func (c *Config) Resolve() error {
	settings, err := config.LoadSettings(c.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to load trackerctl settings: %w", err)
	}
	settings = c.applyOverrides(settings)
	c.Settings = &settings

	paths, err := config.ResolvePaths(settings)
	if err != nil {
		return fmt.Errorf("failed to resolve application paths: %w", err)
	}
	c.Paths = paths
	return nil
}
