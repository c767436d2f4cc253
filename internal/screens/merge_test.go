package screens

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeRunButtonRequiresTwoFiles(t *testing.T) {
	s := NewMergeScreen(testDeps(t))

	if s.form.Session().FocusByID("run") {
		t.Error("run focusable with no files")
	}

	s.SetFile("inputs", "/tmp/a.pdf")
	if s.form.Session().FocusByID("run") {
		t.Error("run focusable with one file")
	}

	s.SetFile("inputs", "/tmp/b.pdf")
	if !s.form.Session().FocusByID("run") {
		t.Error("run not focusable with two files")
	}
}

func TestMergeReportsMissingInput(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	// Files exist but are not real PDFs; a and b pass the existence check
	// and the merge itself fails, which still exercises the full path.
	for _, p := range []string{a} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	s := NewMergeScreen(testDeps(t))
	s.SetFile("inputs", a)
	s.SetFile("inputs", b) // does not exist

	s.form.Session().FocusByID("run")
	cmd := s.form.HandleKey(keyPress("enter"))
	if cmd == nil {
		t.Fatal("run produced no command")
	}

	done, ok := drainLast(cmd).(OpDoneMsg)
	if !ok {
		t.Fatalf("message type = %T, want OpDoneMsg", drainLast(cmd))
	}
	if done.Err == nil {
		t.Error("merge of a missing input reported success")
	}
	if done.Tool != "Merge" {
		t.Errorf("Tool = %q", done.Tool)
	}
	if len(done.Inputs) != 2 {
		t.Errorf("Inputs = %v", done.Inputs)
	}
}

func TestMergeEscNavigatesHome(t *testing.T) {
	s := NewMergeScreen(testDeps(t))
	cmd := s.HandleKey(keyPress("esc"))
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	msg, ok := drainLast(cmd).(NavigateMsg)
	if !ok || msg.Tool != "" {
		t.Errorf("esc message = %#v, want NavigateMsg home", drainLast(cmd))
	}
}
