package ui

import (
	"os"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/pdfzen/internal/keys"
	"github.com/zhubert/pdfzen/internal/pdf"
	"github.com/zhubert/pdfzen/internal/picker"
)

// =============================================================================
// FilePickerState - directory browser with fuzzy filtering
// =============================================================================

// FilePickerState browses the filesystem from a starting directory. Typing
// filters the listing fuzzily; enter descends into directories or selects a
// file; backspace on an empty query ascends.
type FilePickerState struct {
	Purpose string // identifies which field requested the pick

	dir        string
	opts       picker.Options
	entries    []picker.Entry
	visible    []picker.Entry
	cursor     int
	offset     int
	query      textinput.Model
	selected   string
	showHidden bool
	loadErr    error
}

func (*FilePickerState) modalState() {}

func (s *FilePickerState) Title() string { return "Select File" }

func (s *FilePickerState) Help() string {
	return "type to filter, ↑/↓ to move, Enter to open, backspace up, ctrl+h hidden, Esc to cancel"
}

// truncatePath shortens a path from the left so the tail stays visible.
func truncatePath(path string, width int) string {
	if runewidth.StringWidth(path) <= width {
		return path
	}
	return "…" + runewidth.TruncateLeft(path, runewidth.StringWidth(path)-width+1, "")
}

func (s *FilePickerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	dir := LabelStyle.Render(truncatePath(s.dir, ModalWidth-8))

	var rows []string
	if s.loadErr != nil {
		rows = append(rows, StatusErrorStyle.Render(s.loadErr.Error()))
	} else if len(s.visible) == 0 {
		rows = append(rows, LabelStyle.Render("no matches"))
	}

	end := s.offset + PickerVisibleRows
	if end > len(s.visible) {
		end = len(s.visible)
	}
	for i := s.offset; i < end; i++ {
		entry := s.visible[i]
		name := entry.Name
		if entry.IsDir {
			name += "/"
		} else if entry.Size > 0 {
			name += "  " + pdf.FormatSize(entry.Size)
		}
		name = runewidth.Truncate(name, ModalWidth-8, "…")

		if i == s.cursor {
			rows = append(rows, ListItemFocusedStyle.Render(name))
		} else {
			rows = append(rows, ListItemStyle.Render(name))
		}
	}

	help := ModalHelpStyle.Render(s.Help())
	parts := []string{title, dir, s.query.View(), strings.Join(rows, "\n"), help}
	return strings.Join(parts, "\n")
}

func (s *FilePickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		s.query, cmd = s.query.Update(msg)
		return s, cmd
	}

	switch keyMsg.String() {
	case keys.Up:
		if s.cursor > 0 {
			s.cursor--
		}
	case keys.Down:
		if s.cursor < len(s.visible)-1 {
			s.cursor++
		}
	case keys.PgUp:
		s.cursor -= PickerVisibleRows
		if s.cursor < 0 {
			s.cursor = 0
		}
	case keys.PgDown:
		s.cursor += PickerVisibleRows
		if s.cursor > len(s.visible)-1 {
			s.cursor = len(s.visible) - 1
		}
	case "ctrl+h":
		s.showHidden = !s.showHidden
		s.reload()
	case keys.Backspace:
		if s.query.Value() != "" {
			var cmd tea.Cmd
			s.query, cmd = s.query.Update(msg)
			s.refilter()
			return s, cmd
		}
		s.dir = filepath.Dir(s.dir)
		s.reload()
	default:
		var cmd tea.Cmd
		s.query, cmd = s.query.Update(msg)
		s.refilter()
		return s, cmd
	}

	s.scroll()
	return s, nil
}

// Descend follows the cursor into a directory, or records a file selection.
// It reports whether a file was selected.
func (s *FilePickerState) Descend() bool {
	if s.cursor >= len(s.visible) {
		return false
	}
	entry := s.visible[s.cursor]
	if entry.IsDir {
		s.dir = entry.Path
		s.query.SetValue("")
		s.reload()
		return false
	}
	s.selected = entry.Path
	return true
}

// Selected returns the chosen file path, or "" when nothing was selected.
func (s *FilePickerState) Selected() string {
	return s.selected
}

func (s *FilePickerState) reload() {
	opts := s.opts
	opts.ShowHidden = s.showHidden
	s.entries, s.loadErr = picker.List(s.dir, opts)
	s.refilter()
}

func (s *FilePickerState) refilter() {
	s.visible = picker.Rank(s.entries, s.query.Value())
	s.cursor = 0
	s.offset = 0
}

// scroll keeps the cursor inside the visible window.
func (s *FilePickerState) scroll() {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+PickerVisibleRows {
		s.offset = s.cursor - PickerVisibleRows + 1
	}
}

// NewFilePickerState opens a picker rooted at startDir (or the home
// directory when empty), filtered to the given extensions.
func NewFilePickerState(purpose, startDir string, extensions []string) *FilePickerState {
	if startDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			startDir = home
		} else {
			startDir = "."
		}
	}

	query := textinput.New()
	query.Placeholder = "filter"
	query.CharLimit = ModalInputCharLimit
	query.SetWidth(ModalInputWidth)
	query.Focus()

	s := &FilePickerState{
		Purpose: purpose,
		dir:     startDir,
		opts:    picker.Options{Extensions: extensions},
		query:   query,
	}
	s.reload()
	return s
}
