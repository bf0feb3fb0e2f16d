package config

import "runtime"

// Default values of the configuration record.
const (
	DefaultSearchRadius = 50
	DefaultTolerance    = 24
	DefaultLoopSleepMs  = 1
	DefaultEnableKey    = "F5"
	DefaultToggleKey    = "E"
	DefaultModeKey      = "F4"
	DefaultTheme        = "default"
)

// FileName is the fixed name the backend looks for in its working directory.
const FileName = "config.json"

// Defaults returns a record holding every default value.
func Defaults() Record {
	return Record{
		SearchRadius: DefaultSearchRadius,
		Tolerance:    DefaultTolerance,
		LoopSleepMs:  DefaultLoopSleepMs,
		EnableKey:    DefaultEnableKey,
		ToggleKey:    DefaultToggleKey,
		ModeKey:      DefaultModeKey,
		Theme:        DefaultTheme,
	}
}

// DefaultSettings returns the built-in launcher settings layer.
func DefaultSettings() Settings {
	watch := true
	return Settings{
		Mode:        ModeAuto,
		Backend:     BackendSettings{Name: DefaultBackendName()},
		WatchConfig: &watch,
		LogLevel:    "info",
	}
}

// DefaultBackendName is the backend file name for the running platform.
func DefaultBackendName() string {
	if goos == "windows" {
		return "ColorTracker.exe"
	}
	return "ColorTracker"
}

var goos = runtime.GOOS
