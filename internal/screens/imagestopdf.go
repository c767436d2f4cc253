package screens

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/config"
	"github.com/zhubert/pdfzen/internal/pdf"
)

// imageExtensions are the input formats accepted when building a PDF.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff", ".webp"}

// ImagesToPDFScreen builds a PDF from image files, one page per image.
type ImagesToPDFScreen struct {
	formScreen
	deps Deps
}

// NewImagesToPDFScreen creates the images-to-PDF screen.
func NewImagesToPDFScreen(deps Deps) *ImagesToPDFScreen {
	s := &ImagesToPDFScreen{deps: deps}
	s.name = "Images to PDF"

	files := FilesField("inputs", "Images (in page order)", true, imageExtensions)
	size := SelectField("size", "Page size", []string{config.PageSizeFit, config.PageSizeA4, config.PageSizeLetter})

	switch deps.Config.GetPageSize() {
	case config.PageSizeA4:
		size.Index = 1
	case config.PageSizeLetter:
		size.Index = 2
	}

	s.form = NewForm(
		files,
		size,
		Button("run", "Create PDF", func() bool { return len(files.Paths) >= 1 }, s.run),
		Button("back", "Back", nil, func() tea.Cmd { return navCmd("") }),
	)
	return s
}

func (s *ImagesToPDFScreen) run() tea.Cmd {
	inputs := s.form.Files("inputs")
	size := s.form.Value("size")
	out := pdf.EnsureUnique(pdf.OutputPath(inputs[0], "from_images", outputDirFor(s.deps.Config)))

	return startOp("Images to PDF", inputs, func() (string, string, error) {
		err := pdf.ImportImages(inputs, out, size)
		return out, fmt.Sprintf("%d page(s)", len(inputs)), err
	})
}
