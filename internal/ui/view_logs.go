package ui

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/viewport"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/pdfzen/internal/logger"
)

// LogViewer is a full-screen overlay showing the debug log with severity
// coloring. It tails the file by default.
type LogViewer struct {
	viewport   viewport.Model
	path       string
	followTail bool
	width      int
	height     int
}

// NewLogViewer creates a viewer over the application's log file.
func NewLogViewer() *LogViewer {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &LogViewer{
		viewport:   vp,
		path:       logger.Path(),
		followTail: true,
	}
}

// SetSize resizes the viewer and reloads content at the new wrap width.
func (v *LogViewer) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.SetWidth(width)
	v.viewport.SetHeight(height - 2)
	v.Reload()
}

// Reload re-reads the log file and re-renders the viewport content.
func (v *LogViewer) Reload() {
	data, err := os.ReadFile(v.path)
	if err != nil {
		v.viewport.SetContent(LabelStyle.Render("no log output yet"))
		return
	}

	wrapWidth := v.width
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = HighlightLogLine(wordwrap.String(line, wrapWidth))
	}

	v.viewport.SetContent(strings.Join(rendered, "\n"))
	if v.followTail {
		v.viewport.GotoBottom()
	}
}

// ScrollUp moves the view up and stops tailing.
func (v *LogViewer) ScrollUp(lines int) {
	v.followTail = false
	v.viewport.ScrollUp(lines)
}

// ScrollDown moves the view down, resuming the tail at the bottom.
func (v *LogViewer) ScrollDown(lines int) {
	v.viewport.ScrollDown(lines)
	if v.viewport.AtBottom() {
		v.followTail = true
	}
}

// View renders the overlay.
func (v *LogViewer) View() string {
	title := PanelTitleStyle.Render("Log — " + v.path)
	status := ""
	if v.followTail {
		status = StatusLoadingStyle.Render(" (following)")
	}
	return title + status + "\n" + v.viewport.View()
}
