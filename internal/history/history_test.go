package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func journalPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "history.json")
}

func TestLoadMissingFile(t *testing.T) {
	h := Load(journalPath(t))
	if got := len(h.Entries()); got != 0 {
		t.Errorf("got %d entries, want 0", got)
	}
}

func TestRecordAndReload(t *testing.T) {
	path := journalPath(t)
	h := Load(path)

	entry := h.Record("merge", []string{"a.pdf", "b.pdf"}, "a_merged.pdf", nil, 120*time.Millisecond)
	if entry.ID == "" {
		t.Error("entry ID not assigned")
	}
	if !entry.Success {
		t.Error("entry not marked successful")
	}

	reloaded := Load(path)
	entries := reloaded.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries after reload, want 1", len(entries))
	}
	if entries[0].Tool != "merge" || entries[0].Output != "a_merged.pdf" {
		t.Errorf("entry = %+v", entries[0])
	}
	if len(entries[0].Inputs) != 2 {
		t.Errorf("got %d inputs, want 2", len(entries[0].Inputs))
	}
}

func TestRecordFailure(t *testing.T) {
	h := Load(journalPath(t))
	entry := h.Record("compress", []string{"a.pdf"}, "", errors.New("file locked"), time.Second)
	if entry.Success {
		t.Error("failed operation marked successful")
	}
	if entry.Error != "file locked" {
		t.Errorf("Error = %q", entry.Error)
	}
}

func TestNewestFirst(t *testing.T) {
	h := Load(journalPath(t))
	h.Record("merge", nil, "", nil, 0)
	h.Record("split", nil, "", nil, 0)

	entries := h.Entries()
	if entries[0].Tool != "split" {
		t.Errorf("newest entry = %q, want split", entries[0].Tool)
	}
}

func TestRecent(t *testing.T) {
	h := Load(journalPath(t))
	for i := 0; i < 5; i++ {
		h.Record("rotate", nil, "", nil, 0)
	}
	if got := len(h.Recent(3)); got != 3 {
		t.Errorf("Recent(3) returned %d entries", got)
	}
	if got := len(h.Recent(50)); got != 5 {
		t.Errorf("Recent(50) returned %d entries, want 5", got)
	}
}

func TestBounded(t *testing.T) {
	h := Load(journalPath(t))
	for i := 0; i < maxEntries+10; i++ {
		h.Record("split", nil, "", nil, 0)
	}
	if got := len(h.Entries()); got != maxEntries {
		t.Errorf("got %d entries, want %d", got, maxEntries)
	}
}

func TestCorruptJournal(t *testing.T) {
	path := journalPath(t)
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := Load(path)
	if got := len(h.Entries()); got != 0 {
		t.Errorf("got %d entries from corrupt file, want 0", got)
	}
}

func TestClear(t *testing.T) {
	path := journalPath(t)
	h := Load(path)
	h.Record("merge", nil, "", nil, 0)

	if err := h.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := len(h.Entries()); got != 0 {
		t.Errorf("got %d entries after clear", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("journal file still exists after clear")
	}
}
