// Package clipboard copies text such as output paths to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"golang.design/x/clipboard"

	"github.com/zhubert/pdfzen/internal/logger"
)

// initialized tracks whether the clipboard has been initialized
var initialized bool

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard: Failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	logger.Debug("Clipboard: Initialized successfully")
	return nil
}

// WriteText places text on the clipboard. Any terminal escape sequences are
// stripped first so styled UI strings paste clean.
func WriteText(text string) error {
	if !initialized {
		if err := Init(); err != nil {
			return err
		}
	}

	plain := ansi.Strip(text)
	clipboard.Write(clipboard.FmtText, []byte(plain))
	logger.Debug("Clipboard: Wrote %d bytes of text", len(plain))
	return nil
}

// ReadText returns the clipboard's text content, or "" when empty.
func ReadText() (string, error) {
	if !initialized {
		if err := Init(); err != nil {
			return "", err
		}
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
