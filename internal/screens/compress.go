package screens

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/pdf"
)

// CompressScreen optimizes a PDF and reports the size savings.
type CompressScreen struct {
	formScreen
	deps Deps
}

// NewCompressScreen creates the compress screen.
func NewCompressScreen(deps Deps) *CompressScreen {
	s := &CompressScreen{deps: deps}
	s.name = "Compress PDF"

	file := FilesField("input", "PDF to compress", false, []string{".pdf"})
	s.form = NewForm(
		file,
		Button("run", "Compress", func() bool { return len(file.Paths) == 1 }, s.run),
		Button("back", "Back", nil, func() tea.Cmd { return navCmd("") }),
	)
	return s
}

func (s *CompressScreen) run() tea.Cmd {
	input := s.form.Files("input")[0]
	out := pdf.EnsureUnique(pdf.OutputPath(input, "compressed", outputDirFor(s.deps.Config)))

	started := func() tea.Msg { return OpStartedMsg{Tool: "Compress"} }
	work := func() tea.Msg {
		begin := time.Now()
		res, err := pdf.Compress(input, out)
		msg := OpDoneMsg{
			Tool:     "Compress",
			Inputs:   []string{input},
			Output:   out,
			Err:      err,
			Duration: time.Since(begin),
		}
		if err == nil {
			msg.Compress = &res
		}
		return msg
	}
	return tea.Batch(started, work)
}
