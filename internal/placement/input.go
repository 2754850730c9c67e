package placement

import (
	"fmt"
	"strings"
)

// Target receives placement requests from an input adapter.
//
// *Engine satisfies it directly; the quiz controller wraps an engine so it can
// react when the last slot is filled.
type Target interface {
	Place(fragment, slot int) Result
	PlaceNext(fragment int) Result
	Remove(fragment int) Result
	Toggle(fragment int) Result
}

var _ Target = (*Engine)(nil)

// Tap turns single taps into toggles.
type Tap struct {
	target Target
}

// NewTap builds a tap adapter.
func NewTap(target Target) *Tap {
	return &Tap{target: target}
}

// Tap toggles a fragment between the pool and the lowest empty slot.
func (t *Tap) Tap(fragment int) Result {
	return t.target.Toggle(fragment)
}

// Drag tracks a picked-up fragment until it is dropped.
type Drag struct {
	target  Target
	holding int
}

// NewDrag builds a drag adapter with nothing picked up.
func NewDrag(target Target) *Drag {
	return &Drag{target: target, holding: Empty}
}

// Pick starts dragging a fragment, replacing any fragment already held.
func (d *Drag) Pick(fragment int) {
	d.holding = fragment
}

// Holding returns the dragged fragment or Empty.
func (d *Drag) Holding() int {
	return d.holding
}

// Dragging reports whether a fragment is picked up.
func (d *Drag) Dragging() bool {
	return d.holding != Empty
}

// DropOnSlot places the held fragment in a slot. An occupied slot rejects the drop.
func (d *Drag) DropOnSlot(slot int) Result {
	fragment := d.holding
	d.holding = Empty
	if fragment == Empty {
		return ignored(Empty, slot, ErrUnknownFragment)
	}
	return d.target.Place(fragment, slot)
}

// DropOnPool returns the held fragment to the pool.
func (d *Drag) DropOnPool() Result {
	fragment := d.holding
	d.holding = Empty
	if fragment == Empty {
		return ignored(Empty, Empty, ErrUnknownFragment)
	}
	return d.target.Remove(fragment)
}

// Cancel abandons the drag without touching placement state.
func (d *Drag) Cancel() {
	d.holding = Empty
}

// Mode selects the input modality a presentation layer offers.
type Mode int

const (
	// ModeTap toggles a fragment with a single gesture.
	ModeTap Mode = iota
	// ModeDrag picks a fragment up and drops it on a slot or back on the pool.
	ModeDrag
)

// Instructions shown to the player for each mode.
const (
	TapInstructions  = "Tap a code block to place it in the next empty slot. Tap a placed block to remove it."
	DragInstructions = "Drag & drop code blocks into the correct order."
	GoalInstructions = "Arrange the code correctly!"
)

// ParseMode parses "tap" or "drag".
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "tap":
		return ModeTap, nil
	case "drag":
		return ModeDrag, nil
	default:
		return ModeTap, fmt.Errorf("invalid input mode %q (expected tap|drag)", value)
	}
}

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeDrag {
		return "drag"
	}
	return "tap"
}

// Instructions returns the help text for the mode.
func (m Mode) Instructions() string {
	if m == ModeDrag {
		return DragInstructions + "\n" + GoalInstructions
	}
	return TapInstructions + "\n" + GoalInstructions
}
