package screens

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfzen/internal/pdf"
	"github.com/zhubert/pdfzen/internal/ui"
)

// ProtectScreen encrypts a PDF with user and owner passwords. Passwords are
// collected through the masked password modal and held only in memory for
// the duration of the run.
type ProtectScreen struct {
	formScreen
	deps Deps

	userPW  string
	ownerPW string
}

// NewProtectScreen creates the protect screen.
func NewProtectScreen(deps Deps) *ProtectScreen {
	s := &ProtectScreen{deps: deps}
	s.name = "Protect PDF"

	file := FilesField("input", "PDF to protect", false, []string{".pdf"})
	perms := SelectField("perms", "Permissions", []string{"none", "print", "all"})
	s.form = NewForm(
		file,
		perms,
		Button("passwords", "Set passwords…", nil, func() tea.Cmd {
			return func() tea.Msg { return PasswordRequestMsg{Action: "protect"} }
		}),
		Button("run", "Protect", func() bool {
			return len(file.Paths) == 1 && s.userPW != ""
		}, s.run),
		Button("back", "Back", nil, func() tea.Cmd { return navCmd("") }),
	)
	return s
}

// SetSecrets receives the passwords from the modal.
func (s *ProtectScreen) SetSecrets(user, owner string) {
	s.userPW = user
	s.ownerPW = owner
}

func (s *ProtectScreen) View(width, height int) string {
	base := s.formScreen.View(width, height)

	status := ui.LabelStyle.Render("passwords: not set")
	if s.userPW != "" {
		status = lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render("passwords: set")
	}
	return base + "\n" + status
}

func (s *ProtectScreen) run() tea.Cmd {
	input := s.form.Files("input")[0]
	userPW, ownerPW := s.userPW, s.ownerPW

	var perms pdf.PermissionLevel
	switch s.form.Value("perms") {
	case "print":
		perms = pdf.PermissionsPrint
	case "all":
		perms = pdf.PermissionsAll
	default:
		perms = pdf.PermissionsNone
	}

	out := pdf.EnsureUnique(pdf.OutputPath(input, "protected", outputDirFor(s.deps.Config)))

	return startOp("Protect", []string{input}, func() (string, string, error) {
		return out, "", pdf.Encrypt(input, out, userPW, ownerPW, perms)
	})
}
