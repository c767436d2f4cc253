package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpulib "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/zhubert/pdfzen/internal/errors"
	"github.com/zhubert/pdfzen/internal/logger"
)

// PermissionLevel controls what an encrypted document allows without the
// owner password.
type PermissionLevel int

const (
	// PermissionsNone forbids printing, copying and modification.
	PermissionsNone PermissionLevel = iota
	// PermissionsPrint allows printing only.
	PermissionsPrint
	// PermissionsAll allows printing, copying and modification.
	PermissionsAll
)

// CompressResult reports the size change of an optimize run.
type CompressResult struct {
	OutputPath     string
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns the size reduction as a percentage string, e.g. "37.20%".
// Matches the reporting format of the external backend.
func (r CompressResult) Ratio() string {
	if r.OriginalSize == 0 {
		return "0.00%"
	}
	ratio := (1 - float64(r.CompressedSize)/float64(r.OriginalSize)) * 100
	return fmt.Sprintf("%.2f%%", ratio)
}

// conf returns a fresh pdfcpu configuration. Relaxed validation keeps the
// tool usable on the slightly-broken PDFs scanners tend to produce.
func conf() *model.Configuration {
	c := model.NewDefaultConfiguration()
	c.ValidationMode = model.ValidationRelaxed
	return c
}

// checkInputs verifies that every input file exists before handing it to
// pdfcpu, which reports missing files less helpfully.
func checkInputs(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return errors.PDFNotFound(p)
		}
	}
	return nil
}

// Merge concatenates the given PDFs, in order, into outPath.
func Merge(inputs []string, outPath string) error {
	if len(inputs) < 2 {
		return errors.E(errors.Op("pdf.Merge"), errors.KindInvalid, "merge needs at least two input files")
	}
	if err := checkInputs(inputs...); err != nil {
		return err
	}

	logger.Debug("PDF: merging %d files into %s", len(inputs), outPath)
	if err := api.MergeCreateFile(inputs, outPath, false, conf()); err != nil {
		return errors.PDFOperationFailed("pdf.Merge", inputs[0], err)
	}
	return nil
}

// Split writes one PDF per span pages of the input into outDir. span=1 means
// one file per page.
func Split(inPath, outDir string, span int) error {
	if span < 1 {
		return errors.E(errors.Op("pdf.Split"), errors.KindInvalid, fmt.Sprintf("invalid span %d", span))
	}
	if err := checkInputs(inPath); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.E(errors.Op("pdf.Split"), errors.KindIO, err)
	}

	logger.Debug("PDF: splitting %s into %s (span %d)", inPath, outDir, span)
	if err := api.SplitFile(inPath, outDir, span, conf()); err != nil {
		return errors.PDFOperationFailed("pdf.Split", inPath, err)
	}
	return nil
}

// Rotate rotates the selected pages by the given angle (90, 180 or 270,
// clockwise). A nil selection rotates every page.
func Rotate(inPath, outPath string, angle int, pages []string) error {
	switch angle {
	case 90, 180, 270:
	default:
		return errors.E(errors.Op("pdf.Rotate"), errors.KindInvalid, fmt.Sprintf("invalid rotation %d", angle))
	}
	if err := checkInputs(inPath); err != nil {
		return err
	}

	logger.Debug("PDF: rotating %s by %d (pages %v)", inPath, angle, pages)
	if err := api.RotateFile(inPath, outPath, angle, pages, conf()); err != nil {
		return errors.PDFOperationFailed("pdf.Rotate", inPath, err)
	}
	return nil
}

// RemovePages deletes the selected pages. Deleting every page is refused by
// pdfcpu and surfaces as a KindPDF error.
func RemovePages(inPath, outPath string, pages []string) error {
	if len(pages) == 0 {
		return errors.E(errors.Op("pdf.RemovePages"), errors.KindInvalid, "no pages selected")
	}
	if err := checkInputs(inPath); err != nil {
		return err
	}

	logger.Debug("PDF: removing pages %v from %s", pages, inPath)
	if err := api.RemovePagesFile(inPath, outPath, pages, conf()); err != nil {
		return errors.PDFOperationFailed("pdf.RemovePages", inPath, err)
	}
	return nil
}

// Compress rewrites the document with pdfcpu's optimizer and reports the
// size change.
func Compress(inPath, outPath string) (CompressResult, error) {
	if err := checkInputs(inPath); err != nil {
		return CompressResult{}, err
	}

	before, err := os.Stat(inPath)
	if err != nil {
		return CompressResult{}, errors.E(errors.Op("pdf.Compress"), errors.KindIO, err)
	}

	logger.Debug("PDF: optimizing %s -> %s", inPath, outPath)
	if err := api.OptimizeFile(inPath, outPath, conf()); err != nil {
		return CompressResult{}, errors.PDFOperationFailed("pdf.Compress", inPath, err)
	}

	after, err := os.Stat(outPath)
	if err != nil {
		return CompressResult{}, errors.E(errors.Op("pdf.Compress"), errors.KindIO, err)
	}

	return CompressResult{
		OutputPath:     outPath,
		OriginalSize:   before.Size(),
		CompressedSize: after.Size(),
	}, nil
}

// Encrypt password-protects the document. The user password opens it, the
// owner password unlocks permission changes; either may be empty but not
// both. Passwords travel only inside the configuration struct, never through
// argv or logs.
func Encrypt(inPath, outPath, userPW, ownerPW string, perms PermissionLevel) error {
	if userPW == "" && ownerPW == "" {
		return errors.E(errors.Op("pdf.Encrypt"), errors.KindInvalid, "at least one password is required")
	}
	if err := checkInputs(inPath); err != nil {
		return err
	}

	c := conf()
	c.UserPW = userPW
	c.OwnerPW = ownerPW
	if c.OwnerPW == "" {
		// pdfcpu requires distinct owner/user passwords for encryption; fall
		// back to the user password as the original backend does.
		c.OwnerPW = userPW
	}
	switch perms {
	case PermissionsAll:
		c.Permissions = model.PermissionsAll
	case PermissionsPrint:
		c.Permissions = model.PermissionsPrint
	default:
		c.Permissions = model.PermissionsNone
	}

	logger.Debug("PDF: encrypting %s -> %s", inPath, outPath)
	if err := api.EncryptFile(inPath, outPath, c); err != nil {
		return errors.PDFOperationFailed("pdf.Encrypt", inPath, err)
	}
	return nil
}

// Decrypt removes password protection using the given password.
func Decrypt(inPath, outPath, password string) error {
	if err := checkInputs(inPath); err != nil {
		return err
	}

	c := conf()
	c.UserPW = password
	c.OwnerPW = password

	logger.Debug("PDF: decrypting %s -> %s", inPath, outPath)
	if err := api.DecryptFile(inPath, outPath, c); err != nil {
		return errors.PDFOperationFailed("pdf.Decrypt", inPath, err)
	}
	return nil
}

// ImportImages builds a PDF from image files, one page per image. pageSize is
// one of "fit" (page matches image dimensions), "a4" or "letter" (image
// centered and scaled to fit).
func ImportImages(images []string, outPath, pageSize string) error {
	if len(images) == 0 {
		return errors.E(errors.Op("pdf.ImportImages"), errors.KindInvalid, "no images selected")
	}
	if err := checkInputs(images...); err != nil {
		return err
	}

	var imp *pdfcpulib.Import
	switch pageSize {
	case "a4":
		desc, err := api.Import("form:A4, pos:c, scalefactor:1.0 rel", types.POINTS)
		if err != nil {
			return errors.PDFOperationFailed("pdf.ImportImages", images[0], err)
		}
		imp = desc
	case "letter":
		desc, err := api.Import("form:Letter, pos:c, scalefactor:1.0 rel", types.POINTS)
		if err != nil {
			return errors.PDFOperationFailed("pdf.ImportImages", images[0], err)
		}
		imp = desc
	default:
		// fit: nil import means one page per image at image size.
	}

	logger.Debug("PDF: importing %d images into %s (page size %s)", len(images), outPath, pageSize)
	if err := api.ImportImagesFile(images, outPath, imp, conf()); err != nil {
		return errors.PDFOperationFailed("pdf.ImportImages", images[0], err)
	}
	return nil
}

// PageCount returns the number of pages in the document.
func PageCount(inPath string) (int, error) {
	if err := checkInputs(inPath); err != nil {
		return 0, err
	}
	n, err := api.PageCountFile(inPath)
	if err != nil {
		return 0, errors.PDFOperationFailed("pdf.PageCount", inPath, err)
	}
	return n, nil
}
