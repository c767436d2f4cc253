package screens

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/pdfzen/internal/focus"
	"github.com/zhubert/pdfzen/internal/keys"
	"github.com/zhubert/pdfzen/internal/ui"
)

// FieldKind discriminates the field variants a form can hold.
type FieldKind int

const (
	// FieldText is a free-text input; activating it begins keystroke capture.
	FieldText FieldKind = iota
	// FieldSelect cycles through a fixed option list on activation.
	FieldSelect
	// FieldFiles is a list of chosen paths plus an add/change affordance.
	FieldFiles
	// FieldButton triggers an action.
	FieldButton
)

// Field is one row of a form.
type Field struct {
	ID    string
	Label string
	Kind  FieldKind

	// FieldText
	Input textinput.Model

	// FieldSelect
	Options []string
	Index   int

	// FieldFiles
	Paths      []string
	Multi      bool
	Extensions []string
	AddLabel   string

	// FieldButton
	Press   func() tea.Cmd
	Enabled func() bool
}

// TextField creates a text input field.
func TextField(id, label, placeholder string) *Field {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = ui.ModalInputCharLimit
	input.SetWidth(ui.ModalInputWidth)
	return &Field{ID: id, Label: label, Kind: FieldText, Input: input}
}

// SelectField creates a field cycling through options on activation.
func SelectField(id, label string, options []string) *Field {
	return &Field{ID: id, Label: label, Kind: FieldSelect, Options: options}
}

// FilesField creates a file list field. Single-file fields replace their
// path on re-selection; multi-file fields accumulate and allow removal.
func FilesField(id, label string, multi bool, extensions []string) *Field {
	addLabel := "Choose file…"
	if multi {
		addLabel = "Add file…"
	}
	return &Field{
		ID: id, Label: label, Kind: FieldFiles,
		Multi: multi, Extensions: extensions, AddLabel: addLabel,
	}
}

// Button creates an action field. A nil enabled func means always enabled.
func Button(id, label string, enabled func() bool, press func() tea.Cmd) *Field {
	return &Field{ID: id, Label: label, Kind: FieldButton, Press: press, Enabled: enabled}
}

// Value returns the selected option for select fields.
func (f *Field) Value() string {
	if f.Kind == FieldSelect && len(f.Options) > 0 {
		return f.Options[f.Index]
	}
	if f.Kind == FieldText {
		return strings.TrimSpace(f.Input.Value())
	}
	return ""
}

// Form lays out fields vertically and routes keys through a focus session.
// Interactive elements are re-registered wholesale whenever the field set
// changes shape, e.g. when files are added or removed.
type Form struct {
	fields  []*Field
	session *focus.Session
	pending tea.Cmd
	active  *Field // text field currently capturing keystrokes
}

// NewForm builds a form and registers its elements.
func NewForm(fields ...*Field) *Form {
	f := &Form{
		fields:  fields,
		session: focus.NewSession(),
	}
	f.rebuild()
	return f
}

// Session exposes the form's focus session.
func (f *Form) Session() *focus.Session {
	return f.session
}

// Field returns the field with the given ID, or nil.
func (f *Form) Field(id string) *Field {
	for _, field := range f.fields {
		if field.ID == id {
			return field
		}
	}
	return nil
}

// Value returns the text or selected value of the named field.
func (f *Form) Value(id string) string {
	if field := f.Field(id); field != nil {
		return field.Value()
	}
	return ""
}

// Files returns the chosen paths of the named files field.
func (f *Form) Files(id string) []string {
	if field := f.Field(id); field != nil {
		return append([]string{}, field.Paths...)
	}
	return nil
}

// SetFile records a picked path on the named files field.
func (f *Form) SetFile(id, path string) {
	field := f.Field(id)
	if field == nil {
		return
	}
	if field.Multi {
		field.Paths = append(field.Paths, path)
	} else {
		field.Paths = []string{path}
	}
	f.rebuild()
}

// Capturing reports whether a text field currently owns the keystream.
func (f *Form) Capturing() bool {
	return f.session.InputCapturing()
}

// rebuild re-registers every interactive element. The session preserves the
// cursor position by index across the rebuild.
func (f *Form) rebuild() {
	f.session.ClearAll()

	for _, field := range f.fields {
		switch field.Kind {
		case FieldText:
			field := field
			f.session.Register(focus.Element{
				ID:   field.ID,
				Kind: focus.KindInput,
				OnActivate: func() {
					f.beginCapture(field)
				},
			})

		case FieldSelect:
			field := field
			f.session.Register(focus.Element{
				ID:   field.ID,
				Kind: focus.KindToggle,
				OnActivate: func() {
					field.Index = (field.Index + 1) % len(field.Options)
				},
			})

		case FieldFiles:
			field := field
			for i := range field.Paths {
				i := i
				id := fmt.Sprintf("%s.file.%d", field.ID, i)
				f.session.Register(focus.Element{
					ID:   id,
					Kind: focus.KindListItem,
					OnActivate: func() {
						if field.Multi {
							field.Paths = append(field.Paths[:i], field.Paths[i+1:]...)
							f.rebuild()
						} else {
							f.pending = pickCmd(field)
						}
					},
				})
			}
			f.session.Register(focus.Element{
				ID:   field.ID + ".add",
				Kind: focus.KindButton,
				OnActivate: func() {
					f.pending = pickCmd(field)
				},
			})

		case FieldButton:
			field := field
			f.session.Register(focus.Element{
				ID:       field.ID,
				Kind:     focus.KindButton,
				CanFocus: field.Enabled,
				OnActivate: func() {
					if field.Press != nil {
						f.pending = field.Press()
					}
				},
			})
		}
	}
}

func pickCmd(field *Field) tea.Cmd {
	msg := PickFileRequestMsg{Purpose: field.ID, Extensions: field.Extensions}
	return func() tea.Msg { return msg }
}

// beginCapture hands the keystream to a text field.
func (f *Form) beginCapture(field *Field) {
	f.active = field
	field.Input.Focus()
	f.session.SetInputCapture(true)
}

// endCapture returns the keystream to the navigation layer.
func (f *Form) endCapture() {
	if f.active != nil {
		f.active.Input.Blur()
		f.active = nil
	}
}

// HandleKey processes one keypress. It returns any command produced by an
// activated element.
func (f *Form) HandleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if f.session.InputCapturing() {
		// esc/tab/shift+tab end capture at the session level; everything
		// else belongs to the text field.
		if f.session.HandleKey(key) {
			if !f.session.InputCapturing() {
				f.endCapture()
			}
			return nil
		}
		if f.active != nil {
			var cmd tea.Cmd
			f.active.Input, cmd = f.active.Input.Update(msg)
			return cmd
		}
		return nil
	}

	switch key {
	case keys.CtrlUp:
		if f.moveFile(-1) {
			return nil
		}
	case keys.CtrlDown:
		if f.moveFile(1) {
			return nil
		}
	}

	f.session.HandleKey(key)
	cmd := f.pending
	f.pending = nil
	return cmd
}

// moveFile reorders the focused entry of a multi-file list. It reports
// whether the key was spent on a move.
func (f *Form) moveFile(delta int) bool {
	focused := f.session.CurrentFocusedID()
	for _, field := range f.fields {
		if field.Kind != FieldFiles || !field.Multi {
			continue
		}
		prefix := field.ID + ".file."
		if !strings.HasPrefix(focused, prefix) {
			continue
		}
		i, err := strconv.Atoi(strings.TrimPrefix(focused, prefix))
		if err != nil {
			return false
		}
		j := i + delta
		if j < 0 || j >= len(field.Paths) {
			return true
		}
		field.Paths[i], field.Paths[j] = field.Paths[j], field.Paths[i]
		f.rebuild()
		f.session.FocusByID(fmt.Sprintf("%s%d", prefix, j))
		return true
	}
	return false
}

// Update forwards non-key messages, such as cursor blinks, to the capturing
// text field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if f.active == nil {
		return nil
	}
	var cmd tea.Cmd
	f.active.Input, cmd = f.active.Input.Update(msg)
	return cmd
}

// View renders the form rows.
func (f *Form) View(width int) string {
	focused := f.session.CurrentFocusedID()

	var rows []string
	for _, field := range f.fields {
		switch field.Kind {
		case FieldText:
			label := ui.LabelStyle.Render(field.Label)
			input := field.Input.View()
			if focused == field.ID {
				label = ui.PanelTitleStyle.Render("› " + field.Label)
			}
			rows = append(rows, label, input, "")

		case FieldSelect:
			label := ui.LabelStyle.Render(field.Label + ": ")
			value := ui.ValueStyle.Render(field.Value())
			line := label + value
			if focused == field.ID {
				line = ui.ListItemFocusedStyle.Render(field.Label + ": " + field.Value())
			}
			rows = append(rows, line, "")

		case FieldFiles:
			rows = append(rows, ui.LabelStyle.Render(field.Label))
			for i, path := range field.Paths {
				id := fmt.Sprintf("%s.file.%d", field.ID, i)
				name := truncateLeft(path, width-6)
				if focused == id {
					rows = append(rows, ui.ListItemFocusedStyle.Render(name))
				} else {
					rows = append(rows, ui.ListItemStyle.Render(name))
				}
			}
			add := field.AddLabel
			if focused == field.ID+".add" {
				rows = append(rows, ui.ListItemFocusedStyle.Render(add))
			} else {
				rows = append(rows, ui.ListItemStyle.Render(add))
			}
			rows = append(rows, "")

		case FieldButton:
			if field.Enabled != nil && !field.Enabled() {
				rows = append(rows, ui.LabelStyle.Render("  "+field.Label), "")
				continue
			}
			if focused == field.ID {
				rows = append(rows, ui.ButtonFocusedStyle.Render(field.Label), "")
			} else {
				rows = append(rows, ui.ButtonStyle.Render(field.Label), "")
			}
		}
	}

	return strings.Join(rows, "\n")
}

// truncateLeft shortens a path from the left, keeping the filename visible.
func truncateLeft(path string, width int) string {
	if width <= 0 || runewidth.StringWidth(path) <= width {
		return path
	}
	name := filepath.Base(path)
	if runewidth.StringWidth(name) >= width {
		return runewidth.Truncate(name, width, "…")
	}
	return "…" + runewidth.TruncateLeft(path, runewidth.StringWidth(path)-width+1, "")
}
