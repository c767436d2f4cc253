package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath derives a result path for an operation on inputPath. The file
// lands in outDir when set, otherwise next to the input, named
// "<stem>_<suffix>.pdf". The returned path never collides with an existing
// file: a numeric counter is appended until the name is free.
func OutputPath(inputPath, suffix, outDir string) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	stem := Stem(inputPath)
	return EnsureUnique(filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", stem, suffix)))
}

// Stem returns the file name without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// EnsureUnique returns path if nothing exists there, otherwise the first
// "<stem>_N<ext>" that is free.
func EnsureUnique(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for i := 2; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// FormatSize renders a byte count the way the original backend reported
// sizes: binary units with one decimal.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
