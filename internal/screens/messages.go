// Package screens implements the tool screens of the application. Each
// screen owns a focus session over its interactive elements and renders a
// form-style layout in the main panel.
package screens

import (
	"time"

	"github.com/zhubert/pdfzen/internal/pdf"
)

// NavigateMsg asks the app to switch screens. An empty Tool returns home.
type NavigateMsg struct {
	Tool string
}

// PickFileRequestMsg asks the app to open the file picker modal.
type PickFileRequestMsg struct {
	Purpose    string // routed back to the active screen's SetFile
	Extensions []string
	StartDir   string
}

// PasswordRequestMsg asks the app to open the password modal.
type PasswordRequestMsg struct {
	Action string // "protect" or "unprotect"
}

// ClearHistoryRequestMsg asks the app to confirm wiping recent activity.
type ClearHistoryRequestMsg struct{}

// StatusMsg flashes a short-lived message in the footer area.
type StatusMsg struct {
	Text string
}

// OpStartedMsg marks the beginning of a long-running operation.
type OpStartedMsg struct {
	Tool string
}

// OpDoneMsg delivers the outcome of a tool operation.
type OpDoneMsg struct {
	Tool     string
	Inputs   []string
	Output   string
	Detail   string
	Compress *pdf.CompressResult
	Err      error
	Duration time.Duration
}
