package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Dialog is the contract shared by popups that a host routes input to.
// Show and Hide are requests: a dialog whose visibility is owned by its host
// reports them without changing state.
type Dialog interface {
	// IsVisible reports whether the dialog is currently shown.
	IsVisible() bool

	// Show asks for the dialog to be shown.
	Show()

	// Hide asks for the dialog to be dismissed.
	Hide()

	// View renders the dialog body alone. Empty when hidden.
	View() string

	// HandleKey processes a key event. Returns the resulting command and whether
	// the key was consumed (true = stop further processing).
	HandleKey(key tea.KeyMsg) (cmd tea.Cmd, consumed bool)

	// SetSize informs the dialog of the current terminal dimensions.
	SetSize(width, height int)
}

var _ Dialog = (*Popconfirm)(nil)
