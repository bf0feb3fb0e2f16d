// Package tui provides the terminal user interface for trackerctl.
//
// The TUI follows a Model-View-Controller split built on Bubble Tea:
//
//   - model: application state (editor, indicators, activity log, modes)
//   - view: lipgloss rendering of the panels and overlays
//   - controller: key handling, host events and the tea.Program wrapper
//   - design: spacing constants and the selectable color themes
//
// The UI never touches the backend process or writes config.json itself.
// Edits go to the editor, which hands records to the host; the host pushes
// status lines back and the controller feeds them to the indicators.
//
// # Keyboard
//
//	↑/k ↓/j        move between controls
//	←/h →/l        adjust the focused slider or theme (shift: ×10)
//	enter/space    record a key binding or press a reset button
//	c              copy the RGB readout
//	m              minimize to a one-line status view
//	t              toggle always-on-top
//	L              activity log (y copies it)
//	?              help
//	q/ctrl+c       stop the backend and quit
//
// While a key binding is recording, the next key press is stored as the
// binding instead of running its shortcut.
package tui
