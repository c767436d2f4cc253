// Package history keeps a bounded journal of completed operations so the
// home screen can show recent activity and re-open recent outputs.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/pdfzen/internal/logger"
)

// maxEntries bounds the journal; the oldest entries fall off.
const maxEntries = 100

// Entry records one completed operation.
type Entry struct {
	ID        string        `json:"id"`
	Tool      string        `json:"tool"`
	Inputs    []string      `json:"inputs"`
	Output    string        `json:"output,omitempty"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// History is a journal persisted as JSON. Entries are stored newest first.
type History struct {
	mu       sync.RWMutex
	entries  []Entry
	filePath string
}

// Load reads the journal at path, returning an empty journal when the file
// does not exist yet. A corrupt file is logged and replaced rather than
// blocking startup.
func Load(path string) *History {
	h := &History{filePath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("History: failed to read %s: %v", path, err)
		}
		return h
	}

	if err := json.Unmarshal(data, &h.entries); err != nil {
		logger.Warn("History: corrupt journal at %s, starting fresh: %v", path, err)
		h.entries = nil
	}
	return h
}

// Record prepends an entry, assigning its ID and timestamp, and persists.
func (h *History) Record(tool string, inputs []string, output string, opErr error, duration time.Duration) Entry {
	entry := Entry{
		ID:        uuid.New().String(),
		Tool:      tool,
		Inputs:    append([]string{}, inputs...),
		Output:    output,
		Success:   opErr == nil,
		Duration:  duration,
		Timestamp: time.Now(),
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}

	h.mu.Lock()
	h.entries = append([]Entry{entry}, h.entries...)
	if len(h.entries) > maxEntries {
		h.entries = h.entries[:maxEntries]
	}
	h.mu.Unlock()

	if err := h.save(); err != nil {
		logger.Warn("History: failed to save: %v", err)
	}
	return entry
}

// Entries returns a copy of the journal, newest first.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Recent returns up to n entries, newest first.
func (h *History) Recent(n int) []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]Entry, n)
	copy(out, h.entries[:n])
	return out
}

// Clear empties the journal and removes the file.
func (h *History) Clear() error {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()

	if err := os.Remove(h.filePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (h *History) save() error {
	h.mu.RLock()
	data, err := json.MarshalIndent(h.entries, "", "  ")
	h.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(h.filePath), 0o755); err != nil {
		return err
	}

	tmp := h.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, h.filePath)
}
