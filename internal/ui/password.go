package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// =============================================================================
// PasswordState - password entry for protect/unprotect
// =============================================================================

// PasswordState collects one or two passwords. For protect it asks for a
// user password plus an optional owner password; for unprotect a single
// password. Input is masked and never echoed to the log.
type PasswordState struct {
	Action string // "protect" or "unprotect"

	inputs  []textinput.Model
	labels  []string
	current int
}

func (*PasswordState) modalState() {}

func (s *PasswordState) Title() string {
	if s.Action == "protect" {
		return "Set Passwords"
	}
	return "Enter Password"
}

func (s *PasswordState) Help() string {
	return "Tab to switch field, Enter to confirm, Esc to cancel"
}

func (s *PasswordState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var rows []string
	for i, input := range s.inputs {
		label := LabelStyle.Render(s.labels[i])
		rows = append(rows, label, input.View())
	}

	help := ModalHelpStyle.Render(s.Help())
	return strings.Join(append([]string{title}, append(rows, help)...), "\n")
}

func (s *PasswordState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab", "down", "up":
			s.inputs[s.current].Blur()
			if keyMsg.String() == "tab" || keyMsg.String() == "down" {
				s.current = (s.current + 1) % len(s.inputs)
			} else {
				s.current = (s.current - 1 + len(s.inputs)) % len(s.inputs)
			}
			s.inputs[s.current].Focus()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.inputs[s.current], cmd = s.inputs[s.current].Update(msg)
	return s, cmd
}

// Password returns the primary (user) password.
func (s *PasswordState) Password() string {
	return s.inputs[0].Value()
}

// OwnerPassword returns the owner password, or "" when not collected.
func (s *PasswordState) OwnerPassword() string {
	if len(s.inputs) < 2 {
		return ""
	}
	return s.inputs[1].Value()
}

func newPasswordInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = ModalInputCharLimit
	input.SetWidth(ModalInputWidth)
	return input
}

// NewProtectPasswordState creates the two-field protect modal.
func NewProtectPasswordState() *PasswordState {
	user := newPasswordInput("required")
	user.Focus()
	owner := newPasswordInput("defaults to user password")

	return &PasswordState{
		Action: "protect",
		inputs: []textinput.Model{user, owner},
		labels: []string{"User password", "Owner password (optional)"},
	}
}

// NewUnprotectPasswordState creates the single-field unprotect modal.
func NewUnprotectPasswordState() *PasswordState {
	input := newPasswordInput("document password")
	input.Focus()

	return &PasswordState{
		Action: "unprotect",
		inputs: []textinput.Model{input},
		labels: []string{"Password"},
	}
}
