package screens

import (
	"strings"
	"testing"

	"github.com/zhubert/pdfzen/internal/history"
)

func testHistory(t *testing.T) *history.History {
	t.Helper()
	return history.Load(t.TempDir() + "/history.json")
}

func TestHomeRegistersAllTools(t *testing.T) {
	s := NewHomeScreen(testDeps(t), testHistory(t))

	if got := s.session.Count(); got != len(Tools) {
		t.Errorf("element count = %d, want %d", got, len(Tools))
	}
	if got := s.session.CurrentFocusedID(); got != "tool.merge" {
		t.Errorf("initial focus = %q, want tool.merge", got)
	}
}

func TestHomeTileNavigates(t *testing.T) {
	s := NewHomeScreen(testDeps(t), testHistory(t))

	// Move to the second tile and activate it
	s.HandleKey(keyPress("tab"))
	cmd := s.HandleKey(keyPress("enter"))
	if cmd == nil {
		t.Fatal("activation produced no command")
	}

	msg, ok := drainLast(cmd).(NavigateMsg)
	if !ok {
		t.Fatalf("message type = %T, want NavigateMsg", drainLast(cmd))
	}
	if msg.Tool != "split" {
		t.Errorf("navigation target = %q, want split", msg.Tool)
	}
}

func TestHomeWrapsAcrossTiles(t *testing.T) {
	s := NewHomeScreen(testDeps(t), testHistory(t))

	for range Tools {
		s.HandleKey(keyPress("tab"))
	}
	if got := s.session.CurrentFocusedID(); got != "tool.merge" {
		t.Errorf("focus after full cycle = %q, want tool.merge", got)
	}
}

func TestHomeShowsRecentActivity(t *testing.T) {
	hist := testHistory(t)
	hist.Record("merge", []string{"a.pdf", "b.pdf"}, "/tmp/a_merged.pdf", nil, 0)
	s := NewHomeScreen(testDeps(t), hist)

	// Tiles plus the one recent entry plus the clear action
	if got := s.session.Count(); got != len(Tools)+2 {
		t.Errorf("element count = %d, want %d", got, len(Tools)+2)
	}
	view := s.View(120, 40)
	if !strings.Contains(view, "a_merged.pdf") {
		t.Error("recent output missing from view")
	}
}

func TestHomeFailedEntriesNotFocusable(t *testing.T) {
	hist := testHistory(t)
	hist.Record("compress", []string{"a.pdf"}, "", errFake, 0)
	s := NewHomeScreen(testDeps(t), hist)

	if s.session.FocusByID("recent.0") {
		t.Error("failed history entry should not be focusable")
	}
}

var errFake = &fakeErr{}

type fakeErr struct{}

func (*fakeErr) Error() string { return "boom" }
