package display

import (
	"sort"

	"github.com/lox/rps/internal/rules"
)

// Target identifiers of the standard board
const (
	PlayerScoreID   = "player-score"
	ComputerScoreID = "computer-score"
	ResultDisplayID = "result-display"
	ResetButtonID   = "reset-button"
)

// Attribute names and values understood by the presenter and the TUI
const (
	MoveAttr = "data-move"
	LiveAttr = "aria-live"
	Polite   = "polite"

	// AnimateClass marks a control during its activation pulse
	AnimateClass = "animate"
)

// MoveControlID returns the target identifier of the control for m
func MoveControlID(m rules.Move) string {
	return "move-" + m.String()
}

// Target is a named presentation element: a text display or a control
type Target struct {
	ID        string
	Label     string
	Text      string
	Focusable bool

	classes map[string]bool
	attrs   map[string]string
}

// NewTarget creates an empty target
func NewTarget(id string) *Target {
	return &Target{
		ID:      id,
		classes: make(map[string]bool),
		attrs:   make(map[string]string),
	}
}

// AddClass adds one or more classes
func (t *Target) AddClass(classes ...string) {
	for _, c := range classes {
		t.classes[c] = true
	}
}

// RemoveClass removes classes; unknown classes are ignored
func (t *Target) RemoveClass(classes ...string) {
	for _, c := range classes {
		delete(t.classes, c)
	}
}

// HasClass reports whether the class is applied
func (t *Target) HasClass(class string) bool {
	return t.classes[class]
}

// ClearClasses removes every class
func (t *Target) ClearClasses() {
	clear(t.classes)
}

// Classes returns the applied classes in sorted order
func (t *Target) Classes() []string {
	out := make([]string, 0, len(t.classes))
	for c := range t.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Attr returns an attribute value and whether it is set
func (t *Target) Attr(name string) (string, bool) {
	v, ok := t.attrs[name]
	return v, ok
}

// SetAttr sets an attribute
func (t *Target) SetAttr(name, value string) {
	t.attrs[name] = value
}

// Board holds the presentation targets of the game screen, addressed by ID.
// Lookups of absent targets return nil and callers treat that as a no-op.
type Board struct {
	targets  map[string]*Target
	order    []string
	announce func(id, text string)
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{targets: make(map[string]*Target)}
}

// NewStandardBoard creates the game screen: both score displays, the result
// display, one control per move and the reset control.
func NewStandardBoard() *Board {
	b := NewBoard()

	b.Add(NewTarget(PlayerScoreID))
	b.Add(NewTarget(ComputerScoreID))
	b.Add(NewTarget(ResultDisplayID))

	for _, m := range rules.Moves() {
		control := NewTarget(MoveControlID(m))
		control.Label = m.Title()
		control.Focusable = true
		control.SetAttr(MoveAttr, m.String())
		b.Add(control)
	}

	reset := NewTarget(ResetButtonID)
	reset.Label = "Reset"
	reset.Focusable = true
	b.Add(reset)

	return b
}

// Add registers a target, replacing any target with the same ID
func (b *Board) Add(t *Target) *Target {
	if _, exists := b.targets[t.ID]; !exists {
		b.order = append(b.order, t.ID)
	}
	b.targets[t.ID] = t
	return t
}

// Remove deletes a target. Removing an absent target does nothing.
func (b *Board) Remove(id string) {
	if _, exists := b.targets[id]; !exists {
		return
	}
	delete(b.targets, id)
	for i, existing := range b.order {
		if existing == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Get returns the target with the given ID, or nil
func (b *Board) Get(id string) *Target {
	return b.targets[id]
}

// Controls returns the focusable targets in tab order
func (b *Board) Controls() []*Target {
	var controls []*Target
	for _, id := range b.order {
		if t := b.targets[id]; t.Focusable {
			controls = append(controls, t)
		}
	}
	return controls
}

// OnAnnounce registers the callback that receives polite live-region updates
func (b *Board) OnAnnounce(fn func(id, text string)) {
	b.announce = fn
}

// SetText updates a target's text. When the target is a polite live region
// and the text changed to something non-empty, the change is announced.
func (b *Board) SetText(t *Target, text string) {
	changed := t.Text != text
	t.Text = text

	if !changed || text == "" || b.announce == nil {
		return
	}
	if live, _ := t.Attr(LiveAttr); live == Polite {
		b.announce(t.ID, text)
	}
}
