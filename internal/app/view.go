package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfzen/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	if m.showLogs {
		m.logViewer.SetSize(m.width, m.height-ui.HeaderHeight-ui.FooterHeight)
	}
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	screen := m.current()
	m.header.SetToolName(screen.Name())

	m.footer.SetContext(screen.Capturing(), m.state == StateRunning)
	m.footer.SetBindings(screen.Bindings())

	header := m.header.View()
	footer := m.footer.View()

	if m.showLogs {
		v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, m.logViewer.View(), footer))
		return v
	}

	bodyHeight := m.height - ui.HeaderHeight - ui.FooterHeight - 1
	body := screen.View(m.width, bodyHeight)

	var statusLine string
	switch {
	case m.state == StateRunning:
		statusLine = ui.StatusLoadingStyle.Render(spinnerFrames[m.spinnerFrame] + " " + m.runningTool + "…")
	case m.status != "":
		statusLine = ui.LabelStyle.Render(m.status)
	}

	body = lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Height(bodyHeight).
		Render(body)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		statusLine,
		footer,
	)

	// Overlay modal if visible
	if m.modal.IsVisible() {
		v.SetContent(m.modal.View(m.width, m.height))
		return v
	}

	v.SetContent(view)
	return v
}
