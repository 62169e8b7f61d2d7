package cli

import (
	"github.com/alexanderramin/scholarform/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages handled by appModel.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// replaceViewMsg replaces the top view.
type replaceViewMsg struct {
	view View
}

// cmdOutputMsg carries a transient notice shown under the active view.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a huh form completes or is cancelled.
// appModel pops the form and then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// submittedMsg reports a stored application.
type submittedMsg struct {
	app *domain.Application
}

// submitFailedMsg reports a submission the service refused or could not
// store.
type submitFailedMsg struct {
	err error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}
