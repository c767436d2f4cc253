package cmd

import (
	"strings"
	"testing"
)

func TestVersionTemplate(t *testing.T) {
	SetVersionInfo("1.2.3", "none", "unknown")
	if got := versionTemplate(); got != "pdfzen 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc1234", "2026-01-01")
	got := versionTemplate()
	if !strings.Contains(got, "abc1234") || !strings.Contains(got, "2026-01-01") {
		t.Errorf("versionTemplate() = %q, missing commit info", got)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"merge": false, "compress": false, "clean": false, "check-deps": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
