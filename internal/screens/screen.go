package screens

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/backend"
	"github.com/zhubert/pdfzen/internal/config"
	"github.com/zhubert/pdfzen/internal/ui"
)

// Screen is one full-panel view. The app routes keypresses here whenever no
// modal is open.
type Screen interface {
	// Name is the human-readable tool name shown in the header.
	Name() string
	// HandleKey processes one keypress and may emit a command.
	HandleKey(msg tea.KeyPressMsg) tea.Cmd
	// Update receives non-key messages, e.g. cursor blinks.
	Update(msg tea.Msg) tea.Cmd
	// View renders the screen body.
	View(width, height int) string
	// Bindings lists the footer shortcuts for this screen.
	Bindings() []ui.KeyBinding
	// Capturing reports whether a text field owns the keystream.
	Capturing() bool
	// SetFile delivers a path chosen in the file picker modal.
	SetFile(purpose, path string)
}

// SecretsReceiver is implemented by screens that accept passwords from the
// password modal.
type SecretsReceiver interface {
	SetSecrets(user, owner string)
}

// Deps carries the shared dependencies screens need to run operations.
type Deps struct {
	Config  *config.Config
	Backend *backend.Backend // nil until discovered
}

// defaultBindings are the footer shortcuts shared by every tool screen.
func defaultBindings() []ui.KeyBinding {
	return []ui.KeyBinding{
		{Key: "tab/↑/↓", Desc: "navigate"},
		{Key: "enter", Desc: "select"},
		{Key: "esc", Desc: "back"},
		{Key: "?", Desc: "help"},
	}
}

// startOp wraps a blocking operation into the start/done message pair the
// app animates between.
func startOp(tool string, inputs []string, run func() (output, detail string, err error)) tea.Cmd {
	started := func() tea.Msg { return OpStartedMsg{Tool: tool} }
	work := func() tea.Msg {
		begin := time.Now()
		output, detail, err := run()
		return OpDoneMsg{
			Tool:     tool,
			Inputs:   inputs,
			Output:   output,
			Detail:   detail,
			Err:      err,
			Duration: time.Since(begin),
		}
	}
	return tea.Batch(started, work)
}

// navCmd produces a navigation command.
func navCmd(tool string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Tool: tool} }
}

// outputDirFor resolves where outputs go: the configured directory when set,
// otherwise alongside the input.
func outputDirFor(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.GetDefaultOutputDir()
}

// formScreen is the common embedding for form-based tool screens.
type formScreen struct {
	name string
	form *Form
}

func (s *formScreen) Name() string { return s.name }

func (s *formScreen) HandleKey(msg tea.KeyPressMsg) tea.Cmd {
	if !s.form.Capturing() && msg.String() == "esc" {
		return navCmd("")
	}
	return s.form.HandleKey(msg)
}

func (s *formScreen) Update(msg tea.Msg) tea.Cmd {
	return s.form.Update(msg)
}

func (s *formScreen) View(width, height int) string {
	title := ui.PanelTitleStyle.Render(s.name)
	return title + "\n\n" + s.form.View(width)
}

func (s *formScreen) Bindings() []ui.KeyBinding { return defaultBindings() }

func (s *formScreen) Capturing() bool { return s.form.Capturing() }

func (s *formScreen) SetFile(purpose, path string) {
	s.form.SetFile(purpose, path)
}
