// Package focus implements keyboard focus tracking for a single screen.
//
// Each screen constructs one Session at mount time and tears it down on
// unmount. Screens re-assert their full set of focusable elements (ClearAll
// followed by Register calls) every time their own state changes, rather than
// diffing individual additions and removals. This keeps the element set an
// exact mirror of what the screen currently renders, at the cost of focus
// position being preserved by index rather than by element identity: when the
// set shrinks, the cursor is clamped into range instead of chasing the element
// it used to point at.
package focus

import "github.com/zhubert/pdfzen/internal/keys"

// Kind describes what sort of widget an element is. It has no effect on
// navigation; screens use it to pick highlight styling.
type Kind int

const (
	KindButton Kind = iota
	KindInput
	KindListItem
	KindToggle
	KindToolTile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	case KindListItem:
		return "list-item"
	case KindToggle:
		return "toggle"
	case KindToolTile:
		return "tool-tile"
	default:
		return "unknown"
	}
}

// Element is one interactive unit on a screen.
type Element struct {
	// ID uniquely identifies the element within the current registration set.
	ID string
	// Kind is purely descriptive.
	Kind Kind
	// OnActivate runs when the element is focused and enter is pressed.
	// May be nil for elements that are focusable but have no action.
	OnActivate func()
	// CanFocus reports whether the element is currently eligible for focus.
	// Nil means always focusable. The predicate is re-evaluated on every
	// navigation step and at activation time, never cached, because screen
	// state changes between registrations.
	CanFocus func() bool
}

// focusable evaluates the element's CanFocus predicate.
func (e Element) focusable() bool {
	return e.CanFocus == nil || e.CanFocus()
}

// Session owns the ordered element set and the focus cursor for one screen.
// It is not safe for concurrent use; Bubble Tea's single-threaded update loop
// is the only caller.
type Session struct {
	elements  []Element
	cursor    int  // index into the valid subset
	capturing bool // true while a text input owns the keyboard
}

// NewSession creates an empty focus session.
func NewSession() *Session {
	return &Session{}
}

// Register appends an element to the registration order. Registering an ID
// that is already present is a no-op: the first registration wins and keeps
// its position.
func (s *Session) Register(el Element) {
	if el.ID == "" {
		return
	}
	for _, existing := range s.elements {
		if existing.ID == el.ID {
			return
		}
	}
	s.elements = append(s.elements, el)
}

// Unregister removes the element with the given ID, if present.
func (s *Session) Unregister(id string) {
	for i, el := range s.elements {
		if el.ID == id {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			return
		}
	}
}

// ClearAll empties the registration set and resets the cursor to 0. Screens
// call this before re-registering their current element set, and on teardown.
// Input capture is left alone so an open text field survives a rebuild.
func (s *Session) ClearAll() {
	s.elements = nil
	s.cursor = 0
}

// Count returns the number of registered elements, focusable or not.
func (s *Session) Count() int {
	return len(s.elements)
}

// valid returns the currently focusable elements in registration order.
// Recomputed on every call because CanFocus results are volatile.
func (s *Session) valid() []Element {
	out := make([]Element, 0, len(s.elements))
	for _, el := range s.elements {
		if el.focusable() {
			out = append(out, el)
		}
	}
	return out
}

// clamp pulls the cursor back into [0, n-1] after the valid subset changed
// underneath it. With an empty subset the cursor parks at 0 and is inert.
func (s *Session) clamp(n int) {
	if n == 0 {
		s.cursor = 0
		return
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// CurrentFocusedID returns the ID of the focused element, or "" when the
// valid subset is empty.
func (s *Session) CurrentFocusedID() string {
	valid := s.valid()
	if len(valid) == 0 {
		return ""
	}
	s.clamp(len(valid))
	return valid[s.cursor].ID
}

// IsFocused reports whether the element with the given ID currently has focus.
func (s *Session) IsFocused(id string) bool {
	return id != "" && s.CurrentFocusedID() == id
}

// FocusByID moves the cursor directly to the given element. Returns false if
// the ID is not in the valid subset. Used by screens to seed focus
// programmatically, e.g. when opening a text field.
func (s *Session) FocusByID(id string) bool {
	for i, el := range s.valid() {
		if el.ID == id {
			s.cursor = i
			return true
		}
	}
	return false
}

// SetInputCapture switches input-capture mode. While capturing, navigation
// keys pass through to the focused text field; only esc (exit capture) and
// tab/shift+tab (exit capture and move) are interpreted by the session.
func (s *Session) SetInputCapture(on bool) {
	s.capturing = on
}

// InputCapturing reports whether a text input currently owns the keyboard.
// The session is the single source of truth for this flag; screens query it
// instead of mirroring their own copy.
func (s *Session) InputCapturing() bool {
	return s.capturing
}

// move advances the cursor by delta within the valid subset, wrapping in both
// directions. A no-op when nothing is focusable.
func (s *Session) move(delta int) {
	valid := s.valid()
	n := len(valid)
	if n == 0 {
		s.cursor = 0
		return
	}
	s.clamp(n)
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// Next moves focus forward one element, wrapping at the end.
func (s *Session) Next() { s.move(1) }

// Prev moves focus backward one element, wrapping at the start.
func (s *Session) Prev() { s.move(-1) }

// activate fires the focused element's action. The CanFocus predicate is
// re-checked at fire time: a stale cursor must never trigger a disabled
// element.
func (s *Session) activate() {
	valid := s.valid()
	if len(valid) == 0 {
		return
	}
	s.clamp(len(valid))
	el := valid[s.cursor]
	if !el.focusable() || el.OnActivate == nil {
		return
	}
	el.OnActivate()
}

// HandleKey interprets one key press, given in Bubble Tea's string form
// (msg.String()). It returns true when the key was consumed by navigation or
// activation, false when the caller should route it elsewhere. Unknown keys
// are ignored.
func (s *Session) HandleKey(key string) bool {
	if s.capturing {
		switch key {
		case keys.Escape:
			// Exit capture without moving focus.
			s.capturing = false
			return true
		case keys.Tab:
			// Exit capture and move in the same keystroke.
			s.capturing = false
			s.move(1)
			return true
		case keys.ShiftTab:
			s.capturing = false
			s.move(-1)
			return true
		}
		// Everything else belongs to the text field.
		return false
	}

	switch key {
	case keys.Tab, keys.Down, "j":
		s.move(1)
		return true
	case keys.ShiftTab, keys.Up, "k":
		s.move(-1)
		return true
	case keys.Enter:
		s.activate()
		return true
	}
	return false
}
