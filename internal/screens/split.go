package screens

import (
	"fmt"
	"path/filepath"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/pdf"
)

// SplitScreen splits a PDF into chunks of N pages each.
type SplitScreen struct {
	formScreen
	deps Deps
}

// NewSplitScreen creates the split screen.
func NewSplitScreen(deps Deps) *SplitScreen {
	s := &SplitScreen{deps: deps}
	s.name = "Split PDF"

	file := FilesField("input", "PDF to split", false, []string{".pdf"})
	mode := SelectField("mode", "Mode", []string{splitEveryPage, splitEveryN})
	span := TextField("span", "Pages per chunk", "2")
	s.form = NewForm(
		file,
		mode,
		span,
		Button("run", "Split", func() bool { return len(file.Paths) == 1 }, s.run),
		Button("back", "Back", nil, func() tea.Cmd { return navCmd("") }),
	)
	return s
}

const (
	splitEveryPage = "one file per page"
	splitEveryN    = "every N pages"
)

func (s *SplitScreen) run() tea.Cmd {
	input := s.form.Files("input")[0]

	span := 1
	if s.form.Value("mode") == splitEveryN {
		n, err := strconv.Atoi(s.form.Value("span"))
		if err != nil || n < 1 {
			return statusCmd("pages per chunk must be a positive number")
		}
		span = n
	}

	outDir := filepath.Join(filepath.Dir(input), pdf.Stem(input)+"_split")
	if dir := outputDirFor(s.deps.Config); dir != "" {
		outDir = filepath.Join(dir, pdf.Stem(input)+"_split")
	}

	return startOp("Split", []string{input}, func() (string, string, error) {
		err := pdf.Split(input, outDir, span)
		return outDir, fmt.Sprintf("%d page(s) per file", span), err
	})
}

// statusCmd flashes a validation message without starting an operation.
func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}
