package screens

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/pdf"
)

// RotateScreen rotates selected pages (or all pages) by a fixed angle.
type RotateScreen struct {
	formScreen
	deps Deps
}

// NewRotateScreen creates the rotate screen.
func NewRotateScreen(deps Deps) *RotateScreen {
	s := &RotateScreen{deps: deps}
	s.name = "Rotate Pages"

	file := FilesField("input", "PDF to rotate", false, []string{".pdf"})
	angle := SelectField("angle", "Angle", []string{"90", "180", "270"})
	pages := TextField("pages", "Pages (empty = all)", "e.g. 1,3-5")
	s.form = NewForm(
		file,
		angle,
		pages,
		Button("run", "Rotate", func() bool { return len(file.Paths) == 1 }, s.run),
		Button("back", "Back", nil, func() tea.Cmd { return navCmd("") }),
	)
	return s
}

func (s *RotateScreen) run() tea.Cmd {
	input := s.form.Files("input")[0]
	angle, _ := strconv.Atoi(s.form.Value("angle"))

	var pages []string
	if sel := s.form.Value("pages"); sel != "" {
		parsed, err := pdf.ParsePageSelection(sel, 0)
		if err != nil {
			return statusCmd(err.Error())
		}
		pages = parsed
	}

	out := pdf.EnsureUnique(pdf.OutputPath(input, fmt.Sprintf("rotated%d", angle), outputDirFor(s.deps.Config)))

	return startOp("Rotate", []string{input}, func() (string, string, error) {
		return out, "", pdf.Rotate(input, out, angle, pages)
	})
}
