// Package backend runs the external pdfzen helper process that handles the
// operations requiring a rasterizer (PDF page rendering). The helper speaks a
// small JSON protocol: one result object on stdout, {"success": bool, ...},
// with secrets passed via stdin so they never show up in a process listing.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/zhubert/pdfzen/internal/errors"
	"github.com/zhubert/pdfzen/internal/logger"
)

// helperName is the executable looked up on PATH.
const helperName = "pdfzen-backend"

// scriptName is the python fallback, searched for under ~/.pdfzen/backend.
const scriptName = "pdfzen_backend.py"

// runTimeout bounds a single helper invocation. Rasterizing a large document
// at high DPI is slow, so this is generous.
const runTimeout = 2 * time.Minute

// Backend is a handle to a located helper.
type Backend struct {
	command string   // executable to invoke
	args    []string // leading args, e.g. the script path when run via python3
}

// Command returns the invocation for display ("python3 /path/to/script").
func (b *Backend) Command() string {
	if len(b.args) == 0 {
		return b.command
	}
	return b.command + " " + strings.Join(b.args, " ")
}

// Discover locates the helper. Order: explicit override, helper binary on
// PATH, python3 plus the bundled script under ~/.pdfzen/backend.
func Discover(override string) (*Backend, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return nil, errors.E(errors.Op("backend.Discover"), errors.KindNotFound,
				fmt.Sprintf("configured backend %s does not exist", override))
		}
		return &Backend{command: override}, nil
	}

	if path, err := exec.LookPath(helperName); err == nil {
		logger.Debug("Backend: found helper on PATH: %s", path)
		return &Backend{command: path}, nil
	}

	home, err := os.UserHomeDir()
	if err == nil {
		script := filepath.Join(home, ".pdfzen", "backend", scriptName)
		if _, err := os.Stat(script); err == nil {
			if python, err := exec.LookPath("python3"); err == nil {
				logger.Debug("Backend: using python helper: %s %s", python, script)
				return &Backend{command: python, args: []string{script}}, nil
			}
		}
	}

	return nil, errors.BackendNotFound()
}

// Result is the JSON envelope every helper subcommand prints on stdout.
// Operation-specific fields are populated only by their subcommand.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	OutputPath  string   `json:"outputPath,omitempty"`
	OutputFiles []string `json:"outputFiles,omitempty"`
	TotalImages int      `json:"totalImages,omitempty"`
	TotalPages  int      `json:"totalPages,omitempty"`

	OriginalSize     int64  `json:"originalSize,omitempty"`
	CompressedSize   int64  `json:"compressedSize,omitempty"`
	CompressionRatio string `json:"compressionRatio,omitempty"`

	Dependencies map[string]Dependency `json:"dependencies,omitempty"`
	Message      string                `json:"message,omitempty"`
}

// Dependency reports the install state of one helper dependency.
type Dependency struct {
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
}

// parseResult decodes the helper's stdout. The helper prints exactly one
// JSON object, but warnings from a mis-configured python can precede it, so
// decoding starts at the first brace.
func parseResult(out []byte) (*Result, error) {
	trimmed := bytes.TrimSpace(out)
	if i := bytes.IndexByte(trimmed, '{'); i > 0 {
		trimmed = trimmed[i:]
	}
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	var res Result
	if err := json.Unmarshal(trimmed, &res); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	return &res, nil
}

// run invokes one helper subcommand. A non-nil secrets value is marshaled to
// JSON and written to stdin with --stdin-secrets appended, mirroring the
// helper's protect/unprotect protocol.
func (b *Backend) run(ctx context.Context, subcommand string, args []string, secrets interface{}) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	full := append(append(append([]string{}, b.args...), subcommand), args...)
	if secrets != nil {
		full = append(full, "--stdin-secrets")
	}

	cmd := exec.CommandContext(ctx, b.command, full...)

	if secrets != nil {
		payload, err := json.Marshal(secrets)
		if err != nil {
			return nil, errors.BackendFailed(subcommand, err)
		}
		cmd.Stdin = bytes.NewReader(payload)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Backend: running %s %s", b.command, subcommand)
	runErr := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, errors.BackendTimeout(subcommand)
	}
	if stderr.Len() > 0 {
		logger.Warn("Backend: %s stderr: %s", subcommand, strings.TrimSpace(stderr.String()))
	}

	// The helper exits non-zero on failure but still prints a JSON error
	// envelope; prefer that over the raw exit status.
	res, parseErr := parseResult(stdout.Bytes())
	if parseErr != nil {
		if runErr != nil {
			return nil, errors.BackendFailed(subcommand, runErr)
		}
		return nil, errors.BackendFailed(subcommand, parseErr)
	}

	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "unknown backend error"
		}
		return res, errors.BackendFailed(subcommand, fmt.Errorf("%s", msg))
	}
	return res, nil
}

// PDFToImagesRequest describes a pdf-to-images conversion.
type PDFToImagesRequest struct {
	Input     string
	OutputDir string
	Format    string // png or jpg
	DPI       int
	Pages     []int // 1-based; empty means all pages
}

// args renders the request as helper flags.
func (r PDFToImagesRequest) args() []string {
	out := []string{
		"--input", r.Input,
		"--output-dir", r.OutputDir,
		"--format", r.Format,
		"--dpi", strconv.Itoa(r.DPI),
	}
	if len(r.Pages) > 0 {
		pages := make([]string, len(r.Pages))
		for i, p := range r.Pages {
			pages[i] = strconv.Itoa(p)
		}
		out = append(out, "--pages", strings.Join(pages, ","))
	}
	return out
}

// PDFToImages renders PDF pages to image files in the request's output dir.
func (b *Backend) PDFToImages(ctx context.Context, req PDFToImagesRequest) (*Result, error) {
	return b.run(ctx, "pdf-to-images", req.args(), nil)
}

// CheckDeps asks the helper to report its own dependency status. The helper
// exits non-zero when anything is missing, but the envelope still carries the
// full dependency map, so that error is swallowed here.
func (b *Backend) CheckDeps(ctx context.Context) (map[string]Dependency, error) {
	res, err := b.run(ctx, "check-deps", nil, nil)
	if res != nil && res.Dependencies != nil {
		return res.Dependencies, nil
	}
	return nil, err
}

// InstallDeps asks the helper to install its missing dependencies into its
// own virtual environment.
func (b *Backend) InstallDeps(ctx context.Context) (*Result, error) {
	return b.run(ctx, "install-deps", nil, nil)
}
