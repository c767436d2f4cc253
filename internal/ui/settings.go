package ui

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfzen/internal/config"
	"github.com/zhubert/pdfzen/internal/keys"
)

// initHuhForm initializes a huh form eagerly so it renders correctly
// immediately. Call this in every constructor after creating the form.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate is the common Update logic for huh-based modals.
// It intercepts Enter and Escape (handled by the app-layer modal handlers)
// and delegates everything else to the huh form.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			// Don't let huh handle these — the app-layer modal handlers do
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	form = m.(*huh.Form)
	return form, cmd
}

// ModalTheme returns a huh theme that matches the current modal color palette.
// Called each time a huh form is created to pick up the current theme colors.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)
		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
		t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(ColorSuccess).SetString("[x] ")
		t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(ColorTextMuted).SetString("[ ] ")
		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorSecondary)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorTextMuted)

		return t
	})
}

// =============================================================================
// SettingsState - application settings form
// =============================================================================

const optionNotifications = "notifications"

type SettingsState struct {
	form *huh.Form

	selectedTheme  string
	OriginalTheme  string
	dpi            string
	imageFormat    string
	pageSize       string
	outputDir      string
	generalOptions []string
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "↑/↓ to move, Enter to save, Esc to cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return strings.Join([]string{title, s.form.View(), help}, "\n")
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)

	// Live-preview theme changes while the form is open
	if s.selectedTheme != "" && s.selectedTheme != string(CurrentThemeName()) {
		SetThemeByName(s.selectedTheme)
	}
	return s, cmd
}

// SelectedTheme returns the chosen theme name.
func (s *SettingsState) SelectedTheme() string { return s.selectedTheme }

// DPI returns the chosen DPI, falling back to the default on bad input.
func (s *SettingsState) DPI() int {
	n, err := strconv.Atoi(strings.TrimSpace(s.dpi))
	if err != nil {
		return config.DefaultDPI
	}
	return n
}

// ImageFormat returns the chosen image format.
func (s *SettingsState) ImageFormat() string { return s.imageFormat }

// PageSize returns the chosen page size.
func (s *SettingsState) PageSize() string { return s.pageSize }

// OutputDir returns the chosen output directory ("" means alongside input).
func (s *SettingsState) OutputDir() string { return strings.TrimSpace(s.outputDir) }

// NotificationsEnabled reports whether desktop notifications were left on.
func (s *SettingsState) NotificationsEnabled() bool {
	for _, opt := range s.generalOptions {
		if opt == optionNotifications {
			return true
		}
	}
	return false
}

// NewSettingsState builds the settings form from the current configuration.
func NewSettingsState(cfg *config.Config) *SettingsState {
	s := &SettingsState{
		selectedTheme: cfg.GetTheme(),
		OriginalTheme: cfg.GetTheme(),
		dpi:           strconv.Itoa(cfg.GetDPI()),
		imageFormat:   cfg.GetImageFormat(),
		pageSize:      cfg.GetPageSize(),
		outputDir:     cfg.GetDefaultOutputDir(),
	}

	themes := ThemeNames()
	themeOptions := make([]huh.Option[string], len(themes))
	for i, name := range themes {
		themeOptions[i] = huh.NewOption(GetTheme(name).Name, string(name))
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notifications", optionNotifications).
			Selected(cfg.GetNotificationsEnabled()),
	}
	if cfg.GetNotificationsEnabled() {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}

	group := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewInput().
			Title("Image DPI").
			Description("Resolution for PDF to image conversion (36-600)").
			CharLimit(4).
			Value(&s.dpi),
		huh.NewSelect[string]().
			Title("Image format").
			Options(
				huh.NewOption("PNG", config.ImageFormatPNG),
				huh.NewOption("JPG", config.ImageFormatJPG),
			).
			Value(&s.imageFormat),
		huh.NewSelect[string]().
			Title("Page size").
			Description("Page size when building PDFs from images").
			Options(
				huh.NewOption("Fit to image", config.PageSizeFit),
				huh.NewOption("A4", config.PageSizeA4),
				huh.NewOption("Letter", config.PageSizeLetter),
			).
			Value(&s.pageSize),
		huh.NewInput().
			Title("Output directory").
			Description("Leave empty to write next to the input file").
			Placeholder("e.g., ~/Documents/pdfzen").
			CharLimit(ModalInputCharLimit).
			Value(&s.outputDir),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(generalOpts...).
			Height(len(generalOpts)).
			Value(&s.generalOptions),
	)

	s.form = huh.NewForm(group).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
