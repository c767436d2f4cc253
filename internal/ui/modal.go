package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfzen/internal/keys"
	"github.com/zhubert/pdfzen/internal/pdf"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// ConfirmState - generic yes/no confirmation
// =============================================================================

type ConfirmState struct {
	title   string
	message string
	Choice  bool   // true = confirm
	Action  string // identifies what is being confirmed, e.g. "quit", "overwrite"
	Context string // optional payload, e.g. the path being overwritten
	Danger  bool   // render the message in the warning color
}

func (*ConfirmState) modalState() {}

func (s *ConfirmState) Title() string { return s.title }

func (s *ConfirmState) Help() string {
	return "←/→ to choose, Enter to confirm, Esc to cancel"
}

func (s *ConfirmState) Render() string {
	title := ModalTitleStyle.Render(s.title)

	msgStyle := ValueStyle
	if s.Danger {
		msgStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	}
	message := msgStyle.Render(s.message)

	yes := ButtonStyle.Render("Yes")
	no := ButtonFocusedStyle.Render("No")
	if s.Choice {
		yes = ButtonFocusedStyle.Render("Yes")
		no = ButtonStyle.Render("No")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yes, "  ", no)

	help := ModalHelpStyle.Render(s.Help())
	return strings.Join([]string{title, message, "", buttons, help}, "\n")
}

func (s *ConfirmState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Left, keys.Right, keys.Tab:
			s.Choice = !s.Choice
		}
	}
	return s, nil
}

// NewConfirmState creates a confirmation modal. The choice defaults to No.
func NewConfirmState(title, message, action string) *ConfirmState {
	return &ConfirmState{title: title, message: message, Action: action}
}

// =============================================================================
// ResultState - outcome of a completed operation
// =============================================================================

type ResultState struct {
	Tool       string
	OutputPath string
	Detail     string // extra line, e.g. compression summary
	Err        error
}

func (*ResultState) modalState() {}

func (s *ResultState) Title() string {
	if s.Err != nil {
		return s.Tool + " Failed"
	}
	return s.Tool + " Complete"
}

func (s *ResultState) Help() string {
	if s.Err != nil {
		return "Enter/Esc to dismiss"
	}
	return "ctrl+y to copy path, Enter/Esc to dismiss"
}

func (s *ResultState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var body string
	if s.Err != nil {
		body = StatusErrorStyle.Render(s.Err.Error())
	} else {
		var lines []string
		if s.OutputPath != "" {
			lines = append(lines, ValueStyle.Render(s.OutputPath))
		}
		if s.Detail != "" {
			lines = append(lines, LabelStyle.Render(s.Detail))
		}
		body = StatusSuccessStyle.Render("✓ done")
		if len(lines) > 0 {
			body += "\n" + strings.Join(lines, "\n")
		}
	}

	help := ModalHelpStyle.Render(s.Help())
	return strings.Join([]string{title, body, help}, "\n")
}

func (s *ResultState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewResultState creates a result modal for a finished operation.
func NewResultState(tool, outputPath string, err error) *ResultState {
	return &ResultState{Tool: tool, OutputPath: outputPath, Err: err}
}

// NewCompressResultState creates a result modal carrying size savings.
func NewCompressResultState(res *pdf.CompressResult) *ResultState {
	return &ResultState{
		Tool:       "Compress",
		OutputPath: res.OutputPath,
		Detail: fmt.Sprintf("%s → %s (saved %s)",
			pdf.FormatSize(res.OriginalSize),
			pdf.FormatSize(res.CompressedSize),
			res.Ratio()),
	}
}

// =============================================================================
// HelpState - keybinding reference
// =============================================================================

type HelpState struct{}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Reference" }

func (s *HelpState) Help() string { return "Enter/Esc to dismiss" }

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	rows := []KeyBinding{
		{Key: "tab / ↓ / j", Desc: "next element"},
		{Key: "shift+tab / ↑ / k", Desc: "previous element"},
		{Key: "enter", Desc: "activate focused element"},
		{Key: "esc", Desc: "leave text field / go back"},
		{Key: "ctrl+o", Desc: "open file picker"},
		{Key: "ctrl+l", Desc: "view logs"},
		{Key: "ctrl+s", Desc: "settings"},
		{Key: "ctrl+y", Desc: "copy last output path"},
		{Key: "q / ctrl+c", Desc: "quit"},
	}

	var lines []string
	for _, r := range rows {
		key := FooterKeyStyle.Render(fmt.Sprintf("%-18s", r.Key))
		lines = append(lines, key+FooterDescStyle.Render(r.Desc))
	}

	help := ModalHelpStyle.Render(s.Help())
	return strings.Join([]string{title, strings.Join(lines, "\n"), help}, "\n")
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewHelpState creates the help modal.
func NewHelpState() *HelpState {
	return &HelpState{}
}

// =============================================================================
// WelcomeState - first-run greeting
// =============================================================================

type WelcomeState struct{}

func (*WelcomeState) modalState() {}

func (s *WelcomeState) Title() string { return "Welcome to PDFZen" }

func (s *WelcomeState) Help() string { return "Enter to get started" }

func (s *WelcomeState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	body := ValueStyle.Render(strings.Join([]string{
		"Merge, split, rotate, compress, and protect PDFs",
		"without leaving your terminal.",
		"",
	}, "\n")) + LabelStyle.Render(strings.Join([]string{
		"Navigate with tab or ↑/↓, activate with enter.",
		"Press ? any time for the keyboard reference.",
	}, "\n"))

	help := ModalHelpStyle.Render(s.Help())
	return strings.Join([]string{title, body, help}, "\n")
}

func (s *WelcomeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewWelcomeState creates the first-run welcome modal.
func NewWelcomeState() *WelcomeState {
	return &WelcomeState{}
}
