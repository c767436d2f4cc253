package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/pdf"
)

// DeletePagesScreen removes a page selection from a PDF.
type DeletePagesScreen struct {
	formScreen
	deps Deps
}

// NewDeletePagesScreen creates the delete-pages screen.
func NewDeletePagesScreen(deps Deps) *DeletePagesScreen {
	s := &DeletePagesScreen{deps: deps}
	s.name = "Delete Pages"

	file := FilesField("input", "PDF to edit", false, []string{".pdf"})
	pages := TextField("pages", "Pages to delete", "e.g. 2,4-6")
	s.form = NewForm(
		file,
		pages,
		Button("run", "Delete Pages", func() bool {
			return len(file.Paths) == 1 && pages.Value() != ""
		}, s.run),
		Button("back", "Back", nil, func() tea.Cmd { return navCmd("") }),
	)
	return s
}

func (s *DeletePagesScreen) run() tea.Cmd {
	input := s.form.Files("input")[0]

	count, err := pdf.PageCount(input)
	if err != nil {
		return statusCmd(err.Error())
	}
	pages, err := pdf.ParsePageSelection(s.form.Value("pages"), count)
	if err != nil {
		return statusCmd(err.Error())
	}
	if len(pdf.ExpandPages(pages)) >= count {
		return statusCmd("cannot delete every page")
	}

	out := pdf.EnsureUnique(pdf.OutputPath(input, "edited", outputDirFor(s.deps.Config)))

	return startOp("Delete Pages", []string{input}, func() (string, string, error) {
		return out, "", pdf.RemovePages(input, out, pages)
	})
}
