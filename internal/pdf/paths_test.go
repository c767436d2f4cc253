package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/docs/report.pdf", "report"},
		{"report.pdf", "report"},
		{"/docs/archive.tar.gz", "archive.tar"},
		{"/docs/noext", "noext"},
	}

	for _, tt := range tests {
		if got := Stem(tt.path); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestOutputPath_DefaultsToInputDir(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "report.pdf")

	got := OutputPath(in, "merged", "")
	want := filepath.Join(dir, "report_merged.pdf")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestOutputPath_HonorsOutputDir(t *testing.T) {
	outDir := t.TempDir()
	got := OutputPath("/somewhere/report.pdf", "rotated", outDir)
	want := filepath.Join(outDir, "report_rotated.pdf")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestEnsureUnique_AvoidsCollisions(t *testing.T) {
	dir := t.TempDir()
	taken := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(taken, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got := EnsureUnique(taken)
	want := filepath.Join(dir, "out_2.pdf")
	if got != want {
		t.Errorf("EnsureUnique = %q, want %q", got, want)
	}

	// The next collision moves to _3.
	if err := os.WriteFile(want, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := EnsureUnique(taken); got != filepath.Join(dir, "out_3.pdf") {
		t.Errorf("EnsureUnique second collision = %q", got)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.n); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCompressResult_Ratio(t *testing.T) {
	tests := []struct {
		name string
		r    CompressResult
		want string
	}{
		{"typical", CompressResult{OriginalSize: 1000, CompressedSize: 628}, "37.20%"},
		{"no change", CompressResult{OriginalSize: 1000, CompressedSize: 1000}, "0.00%"},
		{"zero original", CompressResult{OriginalSize: 0, CompressedSize: 0}, "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Ratio(); got != tt.want {
				t.Errorf("Ratio() = %q, want %q", got, tt.want)
			}
		})
	}
}
