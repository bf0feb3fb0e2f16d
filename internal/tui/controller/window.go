package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"trackerctl/internal/tui/model"
)

// programWindow lets the host drive the terminal window. Each call becomes
// a message for the Bubble Tea loop.
type programWindow struct {
	program *tea.Program
}

func (w *programWindow) Minimize() {
	w.program.Send(model.WindowMinimizeMsg{})
}

func (w *programWindow) SetAlwaysOnTop(on bool) {
	w.program.Send(model.WindowPinMsg{On: on})
}

func (w *programWindow) Close() {
	w.program.Send(model.WindowCloseMsg{})
}
