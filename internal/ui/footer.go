package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width     int
	bindings  []KeyBinding
	capturing bool // Whether a text field is capturing keystrokes
	running   bool // Whether an operation is in flight
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab/↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "select"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(capturing, running bool) {
	f.capturing = capturing
	f.running = running
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the default bindings, typically per screen
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// View renders the footer
func (f *Footer) View() string {
	bindings := f.bindings

	// Editing a text field: only the exits apply
	if f.capturing {
		bindings = []KeyBinding{
			{Key: "esc", Desc: "done"},
			{Key: "tab", Desc: "next field"},
			{Key: "shift+tab", Desc: "prev field"},
		}
	} else if f.running {
		bindings = []KeyBinding{
			{Key: "esc", Desc: "cancel"},
		}
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	content := strings.Join(parts, sep)
	return FooterStyle.Width(f.width).Render(content)
}
