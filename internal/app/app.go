package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/backend"
	"github.com/zhubert/pdfzen/internal/config"
	"github.com/zhubert/pdfzen/internal/history"
	"github.com/zhubert/pdfzen/internal/logger"
	"github.com/zhubert/pdfzen/internal/screens"
	"github.com/zhubert/pdfzen/internal/ui"
)

// AppState represents the current state of the application.
// Using an explicit state machine prevents invalid state combinations
// and makes state transitions clear and traceable.
type AppState int

const (
	StateIdle    AppState = iota // Ready for user input
	StateRunning                 // A PDF operation is in flight
)

// String returns a human-readable name for the state
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// escQuitWindow is how long a second esc press at the home screen counts as
// a quit request.
const escQuitWindow = 1500 * time.Millisecond

// statusFlashDuration is how long a flashed footer message stays visible.
var statusFlashDuration = 3 * time.Second

// spinnerFrames animate the footer while an operation runs.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerTickMsg advances the running animation.
type spinnerTickMsg struct{}

// statusClearMsg clears a flashed status line.
type statusClearMsg struct{ id int }

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	footer  *ui.Footer
	modal   *ui.Modal

	deps    screens.Deps
	history *history.History
	home    *screens.HomeScreen
	screen  screens.Screen // nil means the home screen is active

	logViewer *ui.LogViewer
	showLogs  bool

	state        AppState
	runningTool  string
	spinnerFrame int

	status   string
	statusID int

	lastOutput string    // most recent output path, for ctrl+y
	lastEsc    time.Time // for double-esc quit at home

	width  int
	height int
}

// New creates the application model. Backend discovery failure is not fatal;
// only the rasterizing tools need the helper.
func New(cfg *config.Config, version string) *Model {
	ui.SetThemeByName(cfg.GetTheme())

	histPath, err := config.HistoryPath()
	if err != nil {
		logger.Warn("App: no history path: %v", err)
	}
	hist := history.Load(histPath)

	deps := screens.Deps{Config: cfg}
	if be, err := backend.Discover(cfg.GetBackendPath()); err == nil {
		deps.Backend = be
	} else {
		logger.Info("App: rasterizing helper unavailable: %v", err)
	}

	m := &Model{
		config:    cfg,
		version:   version,
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(),
		modal:     ui.NewModal(),
		deps:      deps,
		history:   hist,
		home:      screens.NewHomeScreen(deps, hist),
		logViewer: ui.NewLogViewer(),
		state:     StateIdle,
	}

	if !cfg.HasSeenWelcome() {
		m.modal.Show(ui.NewWelcomeState())
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	logger.Info("App: starting pdfzen %s", m.version)
	return nil
}

// current returns the active screen.
func (m *Model) current() screens.Screen {
	if m.screen != nil {
		return m.screen
	}
	return m.home
}

// newScreen constructs the screen for a tool ID, or nil for home.
func (m *Model) newScreen(tool string) screens.Screen {
	switch tool {
	case "merge":
		return screens.NewMergeScreen(m.deps)
	case "split":
		return screens.NewSplitScreen(m.deps)
	case "rotate":
		return screens.NewRotateScreen(m.deps)
	case "delete-pages":
		return screens.NewDeletePagesScreen(m.deps)
	case "compress":
		return screens.NewCompressScreen(m.deps)
	case "protect":
		return screens.NewProtectScreen(m.deps)
	case "unprotect":
		return screens.NewUnprotectScreen(m.deps)
	case "pdf-to-images":
		return screens.NewPDFToImagesScreen(m.deps)
	case "images-to-pdf":
		return screens.NewImagesToPDFScreen(m.deps)
	default:
		return nil
	}
}

// flashStatus shows a short-lived footer message.
func (m *Model) flashStatus(text string) tea.Cmd {
	m.status = text
	m.statusID++
	id := m.statusID
	return tea.Tick(statusFlashDuration, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

// spinnerTick schedules the next animation frame.
func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}
