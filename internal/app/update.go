package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/clipboard"
	"github.com/zhubert/pdfzen/internal/keys"
	"github.com/zhubert/pdfzen/internal/logger"
	"github.com/zhubert/pdfzen/internal/notification"
	"github.com/zhubert/pdfzen/internal/screens"
	"github.com/zhubert/pdfzen/internal/ui"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case spinnerTickMsg:
		if m.state != StateRunning {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
		return m, spinnerTick()

	case statusClearMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case screens.NavigateMsg:
		return m.handleNavigate(msg)

	case screens.PickFileRequestMsg:
		start := msg.StartDir
		if start == "" {
			if recent := m.config.GetRecentFiles(); len(recent) > 0 {
				start = parentDir(recent[0])
			}
		}
		m.modal.Show(ui.NewFilePickerState(msg.Purpose, start, msg.Extensions))
		return m, nil

	case screens.PasswordRequestMsg:
		if msg.Action == "protect" {
			m.modal.Show(ui.NewProtectPasswordState())
		} else {
			m.modal.Show(ui.NewUnprotectPasswordState())
		}
		return m, nil

	case screens.ClearHistoryRequestMsg:
		m.modal.Show(ui.NewConfirmState(
			"Clear recent activity",
			"Forget the operation history and recent files list? Output files are not touched.",
			"clear-history"))
		return m, nil

	case screens.StatusMsg:
		return m, m.flashStatus(msg.Text)

	case screens.OpStartedMsg:
		m.state = StateRunning
		m.runningTool = msg.Tool
		m.spinnerFrame = 0
		return m, spinnerTick()

	case screens.OpDoneMsg:
		return m.handleOpDone(msg)
	}

	// Everything else (cursor blinks etc.) goes to the modal or the screen.
	if m.modal.IsVisible() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	return m, m.current().Update(msg)
}

func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return ""
}

// handleNavigate switches screens. Returning home refreshes the activity
// list.
func (m *Model) handleNavigate(msg screens.NavigateMsg) (tea.Model, tea.Cmd) {
	if msg.Tool == "" {
		m.screen = nil
		m.home.Refresh()
	} else {
		m.screen = m.newScreen(msg.Tool)
	}
	return m, nil
}

// handleOpDone records the outcome, notifies, and shows the result modal.
func (m *Model) handleOpDone(msg screens.OpDoneMsg) (tea.Model, tea.Cmd) {
	m.state = StateIdle
	m.runningTool = ""

	if m.history != nil {
		m.history.Record(msg.Tool, msg.Inputs, msg.Output, msg.Err, msg.Duration)
	}

	if msg.Err != nil {
		logger.Error("App: %s failed: %v", msg.Tool, msg.Err)
		if m.config.GetNotificationsEnabled() {
			notification.OperationFailed(msg.Tool)
		}
		m.modal.Show(ui.NewResultState(msg.Tool, "", msg.Err))
		return m, nil
	}

	logger.Info("App: %s finished in %s: %s", msg.Tool, msg.Duration.Round(time.Millisecond), msg.Output)
	m.lastOutput = msg.Output
	for _, input := range msg.Inputs {
		m.config.AddRecentFile(input)
	}
	if err := m.config.Save(); err != nil {
		logger.Warn("App: config save failed: %v", err)
	}

	if m.config.GetNotificationsEnabled() {
		notification.OperationCompleted(msg.Tool, msg.Output)
	}

	if msg.Compress != nil {
		m.modal.Show(ui.NewCompressResultState(msg.Compress))
	} else {
		state := ui.NewResultState(msg.Tool, msg.Output, nil)
		state.Detail = msg.Detail
		m.modal.Show(state)
	}
	return m, nil
}

// handleKey routes a keypress by priority: log overlay, modal, globals,
// then the active screen's focus session.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.showLogs {
		return m.handleLogKey(key)
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	capturing := m.current().Capturing()

	if !capturing {
		switch key {
		case keys.CtrlL:
			m.showLogs = true
			m.logViewer.SetSize(m.width, m.height-ui.HeaderHeight-ui.FooterHeight)
			return m, nil
		case keys.CtrlS:
			m.modal.Show(ui.NewSettingsState(m.config))
			return m, nil
		case "?":
			m.modal.Show(ui.NewHelpState())
			return m, nil
		case keys.CtrlY:
			if m.lastOutput == "" {
				return m, m.flashStatus("nothing to copy yet")
			}
			if err := clipboard.WriteText(m.lastOutput); err != nil {
				return m, m.flashStatus("clipboard unavailable")
			}
			return m, m.flashStatus("copied " + m.lastOutput)
		case "q":
			if m.screen == nil {
				return m, tea.Quit
			}
		case keys.Escape:
			if m.screen == nil {
				// Double-esc quits from home
				if time.Since(m.lastEsc) < escQuitWindow {
					return m, tea.Quit
				}
				m.lastEsc = time.Now()
				return m, m.flashStatus("press esc again to quit")
			}
		default:
			// Any other key disarms a pending double-esc.
			m.lastEsc = time.Time{}
		}
	}

	if m.state == StateRunning {
		// Input is ignored while an operation runs; the work itself is not
		// cancellable mid-flight.
		return m, nil
	}

	return m, m.current().HandleKey(msg)
}

// handleLogKey drives the log overlay.
func (m *Model) handleLogKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, "q", keys.CtrlL:
		m.showLogs = false
	case keys.Up, "k":
		m.logViewer.ScrollUp(1)
	case keys.Down, "j":
		m.logViewer.ScrollDown(1)
	case keys.PgUp:
		m.logViewer.ScrollUp(10)
	case keys.PgDown:
		m.logViewer.ScrollDown(10)
	}
	return m, nil
}

// handleModalKey applies enter/esc semantics per modal type and lets the
// modal state handle everything else.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch state := m.modal.State.(type) {
	case *ui.WelcomeState:
		if key == keys.Enter || key == keys.Escape {
			m.modal.Hide()
			m.config.MarkWelcomeShown()
			if err := m.config.Save(); err != nil {
				logger.Warn("App: config save failed: %v", err)
			}
		}
		return m, nil

	case *ui.HelpState:
		if key == keys.Enter || key == keys.Escape {
			m.modal.Hide()
		}
		return m, nil

	case *ui.ResultState:
		switch key {
		case keys.Enter, keys.Escape:
			m.modal.Hide()
		case keys.CtrlY:
			if state.OutputPath != "" {
				if err := clipboard.WriteText(state.OutputPath); err == nil {
					m.modal.Hide()
					return m, m.flashStatus("copied " + state.OutputPath)
				}
			}
		}
		return m, nil

	case *ui.ConfirmState:
		switch key {
		case keys.Escape:
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			m.modal.Hide()
			if state.Choice && state.Action == "clear-history" {
				return m, m.clearHistory()
			}
			return m, nil
		}

	case *ui.FilePickerState:
		switch key {
		case keys.Escape:
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			if state.Descend() {
				path := state.Selected()
				m.modal.Hide()
				m.current().SetFile(state.Purpose, path)
				m.config.AddRecentFile(path)
			}
			return m, nil
		}

	case *ui.PasswordState:
		switch key {
		case keys.Escape:
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			if state.Password() == "" {
				m.modal.SetError("password must not be empty")
				return m, nil
			}
			if recv, ok := m.current().(screens.SecretsReceiver); ok {
				recv.SetSecrets(state.Password(), state.OwnerPassword())
			}
			m.modal.Hide()
			return m, nil
		}

	case *ui.SettingsState:
		switch key {
		case keys.Escape:
			ui.SetThemeByName(state.OriginalTheme)
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			m.applySettings(state)
			m.modal.Hide()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// clearHistory wipes the operation history and the recent files list.
func (m *Model) clearHistory() tea.Cmd {
	if m.history != nil {
		if err := m.history.Clear(); err != nil {
			logger.Warn("App: history clear failed: %v", err)
		}
	}
	m.config.ClearRecentFiles()
	if err := m.config.Save(); err != nil {
		logger.Warn("App: config save failed: %v", err)
	}
	m.home.Refresh()
	return m.flashStatus("recent activity cleared")
}

// applySettings persists the settings form.
func (m *Model) applySettings(state *ui.SettingsState) {
	m.config.SetTheme(state.SelectedTheme())
	m.config.SetDPI(state.DPI())
	m.config.SetImageFormat(state.ImageFormat())
	m.config.SetPageSize(state.PageSize())
	m.config.SetDefaultOutputDir(state.OutputDir())
	m.config.SetNotificationsEnabled(state.NotificationsEnabled())

	ui.SetThemeByName(state.SelectedTheme())

	if err := m.config.Save(); err != nil {
		logger.Warn("App: config save failed: %v", err)
	}
}
