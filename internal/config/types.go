package config

import "encoding/json"

// Record is the configuration shared with the backend executable.
type Record struct {
	SearchRadius int    // pixel radius of the color search
	Tolerance    int    // per-channel color distance threshold
	LoopSleepMs  int    // backend scan delay in milliseconds
	EnableKey    string // hotkey that switches tracking on and off
	ToggleKey    string // hotkey held while tracking
	ModeKey      string // hotkey that switches the backend mode
	Theme        string // UI theme identifier

	// Extra holds keys found in the file that Record does not model.
	Extra map[string]json.RawMessage
}

// Mode selects how paths are resolved.
type Mode string

const (
	ModeAuto        Mode = "auto"
	ModeDevelopment Mode = "development"
	ModeInstalled   Mode = "installed"
)

// Settings configures the front-end. Zero values mean "not set" so layers
// can be merged.
type Settings struct {
	Mode        Mode            `yaml:"mode,omitempty"`
	RootDir     string          `yaml:"rootDir,omitempty"`
	Backend     BackendSettings `yaml:"backend,omitempty"`
	WatchConfig *bool           `yaml:"watchConfig,omitempty"`
	LogLevel    string          `yaml:"logLevel,omitempty"`
	Update      UpdateSettings  `yaml:"update,omitempty"`
}

// BackendSettings locates the backend executable.
type BackendSettings struct {
	Path string `yaml:"path,omitempty"` // explicit path, wins over resolution
	Name string `yaml:"name,omitempty"` // file name looked up by resolution
}

// UpdateSettings configures `trackerctl self-update`.
type UpdateSettings struct {
	Repository string `yaml:"repository,omitempty"` // GitHub owner/name slug
}

// WatchEnabled reports whether config.json should be watched for outside edits.
func (s Settings) WatchEnabled() bool {
	return s.WatchConfig == nil || *s.WatchConfig
}

// AppPaths are the resolved filesystem locations.
type AppPaths struct {
	Mode        Mode
	RootDir     string
	ConfigDir   string
	ConfigPath  string
	BackendPath string
}
