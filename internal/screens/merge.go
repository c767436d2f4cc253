package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/pdf"
	"github.com/zhubert/pdfzen/internal/ui"
)

// MergeScreen combines two or more PDFs into one, in list order.
type MergeScreen struct {
	formScreen
	deps Deps
}

// NewMergeScreen creates the merge screen.
func NewMergeScreen(deps Deps) *MergeScreen {
	s := &MergeScreen{deps: deps}
	s.name = "Merge PDFs"

	files := FilesField("inputs", "Files to merge (in order)", true, []string{".pdf"})
	s.form = NewForm(
		files,
		Button("run", "Merge", func() bool { return len(files.Paths) >= 2 }, s.run),
		Button("back", "Back", nil, func() tea.Cmd { return navCmd("") }),
	)
	return s
}

// Bindings implements Screen.
func (s *MergeScreen) Bindings() []ui.KeyBinding {
	return append(defaultBindings(), ui.KeyBinding{Key: "ctrl+↑/↓", Desc: "reorder"})
}

func (s *MergeScreen) run() tea.Cmd {
	inputs := s.form.Files("inputs")
	out := pdf.EnsureUnique(pdf.OutputPath(inputs[0], "merged", outputDirFor(s.deps.Config)))

	return startOp("Merge", inputs, func() (string, string, error) {
		return out, "", pdf.Merge(inputs, out)
	})
}
