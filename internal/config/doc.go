// Package config owns the two files trackerctl reads.
//
// # Tracker configuration (config.json)
//
// The configuration record is a flat JSON object shared with the backend
// executable, which polls it from its working directory:
//
//	{
//	  "searchRadius": 50,
//	  "tolerance": 24,
//	  "loopSleepMs": 1,
//	  "enableKey": "F5",
//	  "toggleKey": "E",
//	  "modeKey": "F4",
//	  "theme": "default"
//	}
//
// Loading always starts from Defaults and overlays the keys found in the
// file, so a partial file yields a complete record. Keys this package does
// not know are kept in Record.Extra and written back untouched. The file is
// rewritten in place on every save with no locking; the backend simply
// re-reads it on its own schedule.
//
// # Launcher settings (settings.yaml)
//
// Settings tune the front-end itself and are never read by the backend.
// They are layered like this, later layers overriding earlier ones:
//
//  1. Built-in defaults
//  2. User settings (~/.config/trackerctl/settings.yaml)
//  3. Project settings (./.trackerctl/settings.yaml)
//  4. An explicit file passed with --settings
//
// # Path resolution
//
// ResolvePaths decides where the backend executable and config.json live.
// In development mode both sit in the checkout root; in installed mode the
// config sits next to the trackerctl executable and the backend in its
// resources directory. The backend is always started with the config
// directory as its working directory so it finds config.json by name.
package config
