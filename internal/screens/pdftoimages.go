package screens

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/backend"
	"github.com/zhubert/pdfzen/internal/config"
	"github.com/zhubert/pdfzen/internal/errors"
	"github.com/zhubert/pdfzen/internal/pdf"
)

// PDFToImagesScreen renders PDF pages to image files. Rasterization runs in
// the external helper process.
type PDFToImagesScreen struct {
	formScreen
	deps Deps
}

// NewPDFToImagesScreen creates the PDF-to-images screen.
func NewPDFToImagesScreen(deps Deps) *PDFToImagesScreen {
	s := &PDFToImagesScreen{deps: deps}
	s.name = "PDF to Images"

	file := FilesField("input", "PDF to convert", false, []string{".pdf"})
	format := SelectField("format", "Format", []string{config.ImageFormatPNG, config.ImageFormatJPG})
	dpi := TextField("dpi", "DPI", strconv.Itoa(deps.Config.GetDPI()))
	pages := TextField("pages", "Pages (empty = all)", "e.g. 1,3-5")

	if deps.Config.GetImageFormat() == config.ImageFormatJPG {
		format.Index = 1
	}

	s.form = NewForm(
		file,
		format,
		dpi,
		pages,
		Button("run", "Convert", func() bool { return len(file.Paths) == 1 }, s.run),
		Button("back", "Back", nil, func() tea.Cmd { return navCmd("") }),
	)
	return s
}

func (s *PDFToImagesScreen) run() tea.Cmd {
	if s.deps.Backend == nil {
		return statusCmd("rendering helper not found; run pdfzen check-deps")
	}
	input := s.form.Files("input")[0]

	dpi := s.deps.Config.GetDPI()
	if v := s.form.Value("dpi"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < config.MinDPI || n > config.MaxDPI {
			return statusCmd(fmt.Sprintf("DPI must be between %d and %d", config.MinDPI, config.MaxDPI))
		}
		dpi = n
	}

	var pageNums []int
	if sel := s.form.Value("pages"); sel != "" {
		tokens, err := pdf.ParsePageSelection(sel, 0)
		if err != nil {
			return statusCmd(err.Error())
		}
		pageNums = pdf.ExpandPages(tokens)
	}

	outDir := filepath.Join(filepath.Dir(input), pdf.Stem(input)+"_images")
	if dir := outputDirFor(s.deps.Config); dir != "" {
		outDir = filepath.Join(dir, pdf.Stem(input)+"_images")
	}

	req := backend.PDFToImagesRequest{
		Input:     input,
		OutputDir: outDir,
		Format:    s.form.Value("format"),
		DPI:       dpi,
		Pages:     pageNums,
	}
	be := s.deps.Backend

	return startOp("PDF to Images", []string{input}, func() (string, string, error) {
		res, err := be.PDFToImages(context.Background(), req)
		if err != nil {
			return "", "", err
		}
		if res.TotalImages == 0 {
			return outDir, "", errors.BackendFailed("pdf-to-images", fmt.Errorf("no images produced"))
		}
		return outDir, fmt.Sprintf("%d image(s) at %d DPI", res.TotalImages, dpi), nil
	})
}
