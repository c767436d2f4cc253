package ui

import "testing"

func TestThemeNamesAllResolvable(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		if theme.Name == "" {
			t.Errorf("theme %q has no name", name)
		}
		if theme.Primary == "" || theme.Text == "" || theme.Bg == "" {
			t.Errorf("theme %q is missing core colors", name)
		}
	}
}

func TestGetThemeUnknownFallsBack(t *testing.T) {
	got := GetTheme("no-such-theme")
	want := GetTheme(DefaultTheme)
	if got.Name != want.Name {
		t.Errorf("unknown theme resolved to %q, want %q", got.Name, want.Name)
	}
}

func TestSetThemeByNameRoundTrip(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetThemeByName("nord")
	if got := CurrentThemeName(); got != ThemeNord {
		t.Errorf("current theme = %q, want %q", got, ThemeNord)
	}
	if CurrentTheme().Name != GetTheme(ThemeNord).Name {
		t.Error("current theme does not match the nord definition")
	}
}

func TestThemesAreDistinct(t *testing.T) {
	seen := map[string]ThemeName{}
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		if prev, ok := seen[theme.Primary]; ok {
			t.Errorf("themes %q and %q share primary color %s", prev, name, theme.Primary)
		}
		seen[theme.Primary] = name
	}
}
