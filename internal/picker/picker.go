// Package picker lists directory contents for the file selection modal:
// directories first, optional hidden entries, an extension filter, and
// fuzzy ranking of entries against what the user has typed so far.
package picker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Entry is one row in the picker listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Options controls which entries List returns.
type Options struct {
	Extensions []string // lowercase, with dot, e.g. ".pdf"; empty means all files
	ShowHidden bool
}

// matchesExt reports whether name passes the extension filter.
func (o Options) matchesExt(name string) bool {
	if len(o.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range o.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// List reads dir and returns its entries, directories first, each group
// sorted case-insensitively. Directories always pass the extension filter so
// the user can keep descending.
func List(dir string, opts Options) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirents {
		name := de.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !de.IsDir() && !opts.matchesExt(name) {
			continue
		}

		entry := Entry{
			Name:  name,
			Path:  filepath.Join(dir, name),
			IsDir: de.IsDir(),
		}
		if info, err := de.Info(); err == nil && !de.IsDir() {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries, nil
}

// Rank orders entries by how well they match query. Substring matches rank
// first (earlier match positions win), then near misses by edit distance.
// Entries further than maxDistance edits with no substring hit are dropped.
// An empty query returns the entries unchanged.
func Rank(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}
	q := strings.ToLower(query)

	const maxDistance = 5

	type scored struct {
		entry Entry
		score int
	}

	var matches []scored
	for _, e := range entries {
		name := strings.ToLower(e.Name)
		if idx := strings.Index(name, q); idx >= 0 {
			matches = append(matches, scored{e, idx})
			continue
		}
		if d := levenshtein.ComputeDistance(q, name); d <= maxDistance {
			// Offset past any possible substring score so typo matches
			// always sort after exact ones.
			matches = append(matches, scored{e, 1000 + d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = m.entry
	}
	return out
}
