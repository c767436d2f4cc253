package pdf

import (
	"reflect"
	"testing"

	"github.com/zhubert/pdfzen/internal/errors"
)

func TestParsePageSelection(t *testing.T) {
	tests := []struct {
		name      string
		sel       string
		pageCount int
		want      []string
		wantErr   bool
	}{
		{name: "single page", sel: "3", pageCount: 10, want: []string{"3"}},
		{name: "list", sel: "1,3,5", pageCount: 10, want: []string{"1", "3", "5"}},
		{name: "range", sel: "2-4", pageCount: 10, want: []string{"2-4"}},
		{name: "mixed", sel: "1,3-5,7", pageCount: 10, want: []string{"1", "3-5", "7"}},
		{name: "whitespace tolerated", sel: " 1 , 3 - 5 ", pageCount: 10, want: []string{"1", "3-5"}},
		{name: "collapsed range", sel: "4-4", pageCount: 10, want: []string{"4"}},
		{name: "trailing comma", sel: "1,2,", pageCount: 10, want: []string{"1", "2"}},
		{name: "no bounds check when count unknown", sel: "999", pageCount: 0, want: []string{"999"}},

		{name: "empty", sel: "", pageCount: 10, wantErr: true},
		{name: "only commas", sel: ",,,", pageCount: 10, wantErr: true},
		{name: "letters", sel: "1,abc", pageCount: 10, wantErr: true},
		{name: "zero page", sel: "0", pageCount: 10, wantErr: true},
		{name: "negative", sel: "-3", pageCount: 10, wantErr: true},
		{name: "inverted range", sel: "5-2", pageCount: 10, wantErr: true},
		{name: "out of range", sel: "11", pageCount: 10, wantErr: true},
		{name: "range end out of range", sel: "8-12", pageCount: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageSelection(tt.sel, tt.pageCount)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePageSelection(%q) = %v, want error", tt.sel, got)
				}
				if !errors.Is(err, errors.KindInvalid) {
					t.Errorf("error kind = %v, want KindInvalid", errors.GetKind(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePageSelection(%q) failed: %v", tt.sel, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePageSelection(%q) = %v, want %v", tt.sel, got, tt.want)
			}
		})
	}
}

func TestExpandPages(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []int
	}{
		{name: "singles", tokens: []string{"1", "3"}, want: []int{1, 3}},
		{name: "range", tokens: []string{"2-5"}, want: []int{2, 3, 4, 5}},
		{name: "overlap deduped", tokens: []string{"1-3", "2-4"}, want: []int{1, 2, 3, 4}},
		{name: "unordered input sorted", tokens: []string{"7", "1-2"}, want: []int{1, 2, 7}},
		{name: "empty", tokens: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPages(tt.tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandPages(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}
