package screens

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfzen/internal/pdf"
	"github.com/zhubert/pdfzen/internal/ui"
)

// UnprotectScreen removes encryption from a PDF given its password.
type UnprotectScreen struct {
	formScreen
	deps Deps

	password string
}

// NewUnprotectScreen creates the unprotect screen.
func NewUnprotectScreen(deps Deps) *UnprotectScreen {
	s := &UnprotectScreen{deps: deps}
	s.name = "Unprotect PDF"

	file := FilesField("input", "Protected PDF", false, []string{".pdf"})
	s.form = NewForm(
		file,
		Button("password", "Enter password…", nil, func() tea.Cmd {
			return func() tea.Msg { return PasswordRequestMsg{Action: "unprotect"} }
		}),
		Button("run", "Unprotect", func() bool {
			return len(file.Paths) == 1 && s.password != ""
		}, s.run),
		Button("back", "Back", nil, func() tea.Cmd { return navCmd("") }),
	)
	return s
}

// SetSecrets receives the password from the modal. Only the first value is
// used.
func (s *UnprotectScreen) SetSecrets(user, _ string) {
	s.password = user
}

func (s *UnprotectScreen) View(width, height int) string {
	base := s.formScreen.View(width, height)

	status := ui.LabelStyle.Render("password: not set")
	if s.password != "" {
		status = lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render("password: set")
	}
	return base + "\n" + status
}

func (s *UnprotectScreen) run() tea.Cmd {
	input := s.form.Files("input")[0]
	password := s.password

	out := pdf.EnsureUnique(pdf.OutputPath(input, "unprotected", outputDirFor(s.deps.Config)))

	return startOp("Unprotect", []string{input}, func() (string, string, error) {
		return out, "", pdf.Decrypt(input, out, password)
	})
}
