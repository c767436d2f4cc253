package screens

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfzen/internal/clipboard"
	"github.com/zhubert/pdfzen/internal/focus"
	"github.com/zhubert/pdfzen/internal/history"
	"github.com/zhubert/pdfzen/internal/ui"
)

// recentShown is how many history entries the home screen lists.
const recentShown = 5

// Tool describes one tile on the home grid.
type Tool struct {
	ID   string
	Name string
	Desc string
}

// Tools lists every tool in display order. The IDs double as navigation
// targets.
var Tools = []Tool{
	{ID: "merge", Name: "Merge", Desc: "combine PDFs"},
	{ID: "split", Name: "Split", Desc: "cut into chunks"},
	{ID: "rotate", Name: "Rotate", Desc: "turn pages"},
	{ID: "delete-pages", Name: "Delete Pages", Desc: "drop a selection"},
	{ID: "compress", Name: "Compress", Desc: "shrink file size"},
	{ID: "protect", Name: "Protect", Desc: "add a password"},
	{ID: "unprotect", Name: "Unprotect", Desc: "remove a password"},
	{ID: "pdf-to-images", Name: "PDF → Images", Desc: "render pages"},
	{ID: "images-to-pdf", Name: "Images → PDF", Desc: "bundle images"},
}

// HomeScreen is the tool launcher: a grid of tiles plus recent activity.
type HomeScreen struct {
	deps    Deps
	session *focus.Session
	history *history.History
	recent  []history.Entry
	pending tea.Cmd
}

// NewHomeScreen creates the home screen.
func NewHomeScreen(deps Deps, hist *history.History) *HomeScreen {
	s := &HomeScreen{
		deps:    deps,
		session: focus.NewSession(),
		history: hist,
	}
	s.Refresh()
	return s
}

// Refresh reloads the recent activity list and re-registers every element.
func (s *HomeScreen) Refresh() {
	if s.history != nil {
		s.recent = s.history.Recent(recentShown)
	}

	s.session.ClearAll()
	for _, tool := range Tools {
		tool := tool
		s.session.Register(focus.Element{
			ID:   "tool." + tool.ID,
			Kind: focus.KindToolTile,
			OnActivate: func() {
				s.pending = navCmd(tool.ID)
			},
		})
	}
	for i, entry := range s.recent {
		entry := entry
		s.session.Register(focus.Element{
			ID:   fmt.Sprintf("recent.%d", i),
			Kind: focus.KindListItem,
			CanFocus: func() bool {
				return entry.Success && entry.Output != ""
			},
			OnActivate: func() {
				s.pending = copyPathCmd(entry.Output)
			},
		})
	}
	if len(s.recent) > 0 {
		s.session.Register(focus.Element{
			ID:   "recent.clear",
			Kind: focus.KindButton,
			OnActivate: func() {
				s.pending = func() tea.Msg { return ClearHistoryRequestMsg{} }
			},
		})
	}
}

// copyPathCmd copies a path to the clipboard and reports the result.
func copyPathCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteText(path); err != nil {
			return StatusMsg{Text: "clipboard unavailable"}
		}
		return StatusMsg{Text: "copied " + path}
	}
}

// Name implements Screen.
func (s *HomeScreen) Name() string { return "" }

// HandleKey implements Screen.
func (s *HomeScreen) HandleKey(msg tea.KeyPressMsg) tea.Cmd {
	s.session.HandleKey(msg.String())
	cmd := s.pending
	s.pending = nil
	return cmd
}

// Update implements Screen.
func (s *HomeScreen) Update(tea.Msg) tea.Cmd { return nil }

// Bindings implements Screen.
func (s *HomeScreen) Bindings() []ui.KeyBinding {
	return []ui.KeyBinding{
		{Key: "tab/↑/↓", Desc: "navigate"},
		{Key: "enter", Desc: "open tool"},
		{Key: "ctrl+s", Desc: "settings"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	}
}

// Capturing implements Screen. The home screen has no text fields.
func (s *HomeScreen) Capturing() bool { return false }

// SetFile implements Screen. The home screen takes no file input.
func (s *HomeScreen) SetFile(string, string) {}

// View implements Screen.
func (s *HomeScreen) View(width, height int) string {
	focused := s.session.CurrentFocusedID()

	var rows []string
	var tiles []string
	for i, tool := range Tools {
		style := ui.TileStyle
		if focused == "tool."+tool.ID {
			style = ui.TileFocusedStyle
		}
		tile := style.Render(tool.Name + "\n" + ui.TileDescStyle.Render(tool.Desc))
		tiles = append(tiles, tile)

		if (i+1)%ui.TilesPerRow == 0 || i == len(Tools)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
			tiles = nil
		}
	}

	grid := strings.Join(rows, "\n")

	var recent []string
	if len(s.recent) > 0 {
		recent = append(recent, "", ui.PanelTitleStyle.Render("Recent"))
		for i, entry := range s.recent {
			line := formatEntry(entry)
			if focused == fmt.Sprintf("recent.%d", i) {
				recent = append(recent, ui.ListItemFocusedStyle.Render(line))
			} else {
				recent = append(recent, ui.ListItemStyle.Render(line))
			}
		}
		if focused == "recent.clear" {
			recent = append(recent, ui.ListItemFocusedStyle.Render("Clear recent activity"))
		} else {
			recent = append(recent, ui.ListItemStyle.Render("Clear recent activity"))
		}
	}

	return grid + strings.Join(recent, "\n")
}

// formatEntry renders one recent-activity line.
func formatEntry(entry history.Entry) string {
	status := "✓"
	if !entry.Success {
		status = "✗"
	}
	target := entry.Output
	if target == "" && len(entry.Inputs) > 0 {
		target = entry.Inputs[0]
	}
	return fmt.Sprintf("%s %-14s %s", status, entry.Tool, truncateLeft(target, 48))
}
