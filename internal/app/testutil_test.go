package app

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfzen/internal/config"
	"github.com/zhubert/pdfzen/internal/keys"
	"github.com/zhubert/pdfzen/internal/notification"
)

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		r := []rune(key)[0]
		return tea.KeyPressMsg{Code: r, Text: key}
	}
}

// testConfig creates an isolated config backed by a temp file.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	// The welcome modal would swallow the first keypress of every test.
	cfg.MarkWelcomeShown()
	return cfg
}

// testModel creates a test Model with an isolated config and silenced
// notifications.
func testModel(t *testing.T) *Model {
	t.Helper()
	// New resolves the history journal under the user's home directory;
	// isolate it so tests don't share state through the real ~/.pdfzen.
	t.Setenv("HOME", t.TempDir())
	notification.SetNotifier(func(string, string, any) error { return nil })
	t.Cleanup(notification.ResetNotifier)

	m := New(testConfig(t), "0.0.0-test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// collect runs a command synchronously, flattening batches, and returns
// every message produced. Tick commands are not executed.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, collect(sub)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// press sends a keypress and feeds any resulting messages back into the
// model, one round. It returns the messages produced.
func press(m *Model, key string) []tea.Msg {
	_, cmd := m.Update(keyPress(key))
	msgs := collect(cmd)
	for _, msg := range msgs {
		m.Update(msg)
	}
	return msgs
}

// containsQuit reports whether a command chain produced a quit.
func containsQuit(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func init() {
	statusFlashDuration = 0
}
