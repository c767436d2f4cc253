// Package pdf wraps the pdfcpu library with the operations the tool screens
// launch: merge, split, rotate, delete pages, optimize, encrypt, decrypt and
// image import. All functions are synchronous; the app runs them inside
// Bubble Tea commands.
package pdf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zhubert/pdfzen/internal/errors"
)

// ParsePageSelection parses a user-typed page selection like "1,3-5,7" into
// pdfcpu's selection token form. Pages are 1-based. When pageCount > 0 every
// page must fall within [1, pageCount]; pass 0 to skip the bounds check (the
// page count is not always known up front).
func ParsePageSelection(sel string, pageCount int) ([]string, error) {
	trimmed := strings.TrimSpace(sel)
	if trimmed == "" {
		return nil, errors.PageSelectionInvalid(sel)
	}

	var tokens []string
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, err := parseRange(part)
		if err != nil {
			return nil, errors.PageSelectionInvalid(sel)
		}
		if pageCount > 0 && hi > pageCount {
			return nil, errors.E(errors.Op("pdf.ParsePageSelection"), errors.KindInvalid,
				fmt.Sprintf("page %d out of range, document has %d pages", hi, pageCount))
		}

		if lo == hi {
			tokens = append(tokens, strconv.Itoa(lo))
		} else {
			tokens = append(tokens, fmt.Sprintf("%d-%d", lo, hi))
		}
	}

	if len(tokens) == 0 {
		return nil, errors.PageSelectionInvalid(sel)
	}
	return tokens, nil
}

// parseRange parses "N" or "N-M" into an inclusive 1-based range.
func parseRange(part string) (lo, hi int, err error) {
	if i := strings.Index(part, "-"); i >= 0 {
		lo, err = strconv.Atoi(strings.TrimSpace(part[:i]))
		if err != nil {
			return 0, 0, err
		}
		hi, err = strconv.Atoi(strings.TrimSpace(part[i+1:]))
		if err != nil {
			return 0, 0, err
		}
	} else {
		lo, err = strconv.Atoi(part)
		if err != nil {
			return 0, 0, err
		}
		hi = lo
	}

	if lo < 1 || hi < lo {
		return 0, 0, fmt.Errorf("bad range %q", part)
	}
	return lo, hi, nil
}

// ExpandPages flattens selection tokens into an ordered, de-duplicated list
// of page numbers. Used for display ("3 pages selected") and for the helper
// process, which takes comma-separated page numbers rather than ranges.
func ExpandPages(tokens []string) []int {
	seen := map[int]bool{}
	var pages []int
	for _, tok := range tokens {
		lo, hi, err := parseRange(tok)
		if err != nil {
			continue
		}
		for p := lo; p <= hi; p++ {
			if !seen[p] {
				seen[p] = true
				pages = append(pages, p)
			}
		}
	}
	sort.Ints(pages)
	return pages
}
