// Package placement tracks which code fragments sit in which ordered slots.
//
// The Engine knows nothing about input devices. The Tap and Drag adapters
// translate gestures into Place, PlaceNext, Remove and Toggle calls.
package placement

import "errors"

// Empty marks an unoccupied slot in CurrentOrder and an unplaced fragment in Location.
const Empty = -1

var (
	// ErrUnknownFragment indicates a fragment id outside the question.
	ErrUnknownFragment = errors.New("unknown fragment")
	// ErrUnknownSlot indicates a slot id outside the question.
	ErrUnknownSlot = errors.New("unknown slot")
	// ErrSlotOccupied indicates the target slot already holds a fragment.
	ErrSlotOccupied = errors.New("slot occupied")
	// ErrNoEmptySlot indicates every slot is already filled.
	ErrNoEmptySlot = errors.New("no empty slot")
	// ErrNotRunning indicates placement input arrived while no question accepts it.
	ErrNotRunning = errors.New("placement not accepted")
)

// Outcome describes what a placement request did.
type Outcome int

const (
	// Ignored means the request left the state unchanged.
	Ignored Outcome = iota
	// Placed means a pooled fragment moved into a slot.
	Placed
	// Moved means a fragment moved from one slot to another.
	Moved
	// Removed means a fragment returned to the pool.
	Removed
)

// String returns the outcome label.
func (o Outcome) String() string {
	switch o {
	case Placed:
		return "placed"
	case Moved:
		return "moved"
	case Removed:
		return "removed"
	default:
		return "ignored"
	}
}

// Result reports the outcome of a placement request.
type Result struct {
	Outcome  Outcome
	Fragment int
	Slot     int
	// Reason is set when Outcome is Ignored.
	Reason error
}

// Changed reports whether the request mutated the placement state.
func (r Result) Changed() bool {
	return r.Outcome != Ignored
}

func ignored(fragment, slot int, reason error) Result {
	return Result{Outcome: Ignored, Fragment: fragment, Slot: slot, Reason: reason}
}

// Engine holds the placement state of one question.
//
// slots[s] is the fragment in slot s or Empty; where[f] is the slot holding
// fragment f or Empty when it is in the pool. Both views are updated together.
type Engine struct {
	slots []int
	where []int
}

// New builds an engine with every fragment in the pool.
func New(fragments, slotCount int) *Engine {
	if fragments < 0 {
		fragments = 0
	}
	if slotCount < 0 {
		slotCount = 0
	}
	e := &Engine{
		slots: make([]int, slotCount),
		where: make([]int, fragments),
	}
	e.ResetToPool()
	return e
}

// Fragments returns the number of fragments.
func (e *Engine) Fragments() int {
	return len(e.where)
}

// SlotCount returns the number of slots.
func (e *Engine) SlotCount() int {
	return len(e.slots)
}

// Place moves a fragment into an explicit empty slot.
func (e *Engine) Place(fragment, slot int) Result {
	if !e.knownFragment(fragment) {
		return ignored(fragment, slot, ErrUnknownFragment)
	}
	if slot < 0 || slot >= len(e.slots) {
		return ignored(fragment, slot, ErrUnknownSlot)
	}
	if e.slots[slot] != Empty {
		return ignored(fragment, slot, ErrSlotOccupied)
	}
	return e.move(fragment, slot)
}

// PlaceNext moves a fragment into the lowest-indexed empty slot.
func (e *Engine) PlaceNext(fragment int) Result {
	if !e.knownFragment(fragment) {
		return ignored(fragment, Empty, ErrUnknownFragment)
	}
	slot := e.firstEmpty()
	if slot == Empty {
		return ignored(fragment, Empty, ErrNoEmptySlot)
	}
	return e.move(fragment, slot)
}

// Remove returns a fragment to the pool.
func (e *Engine) Remove(fragment int) Result {
	if !e.knownFragment(fragment) {
		return ignored(fragment, Empty, ErrUnknownFragment)
	}
	slot := e.where[fragment]
	if slot == Empty {
		return ignored(fragment, Empty, nil)
	}
	e.slots[slot] = Empty
	e.where[fragment] = Empty
	return Result{Outcome: Removed, Fragment: fragment, Slot: slot}
}

// Toggle removes a placed fragment or places a pooled one in the lowest empty slot.
func (e *Engine) Toggle(fragment int) Result {
	if !e.knownFragment(fragment) {
		return ignored(fragment, Empty, ErrUnknownFragment)
	}
	if e.where[fragment] != Empty {
		return e.Remove(fragment)
	}
	return e.PlaceNext(fragment)
}

// IsComplete reports whether every slot holds a fragment.
func (e *Engine) IsComplete() bool {
	return e.firstEmpty() == Empty
}

// CurrentOrder returns the fragment in each slot, Empty where unoccupied.
func (e *Engine) CurrentOrder() []int {
	order := make([]int, len(e.slots))
	copy(order, e.slots)
	return order
}

// Location returns the slot holding a fragment, or Empty when it is pooled or unknown.
func (e *Engine) Location(fragment int) int {
	if !e.knownFragment(fragment) {
		return Empty
	}
	return e.where[fragment]
}

// Pool returns the unplaced fragments in ascending order.
func (e *Engine) Pool() []int {
	pool := make([]int, 0, len(e.where))
	for fragment, slot := range e.where {
		if slot == Empty {
			pool = append(pool, fragment)
		}
	}
	return pool
}

// ResetToPool clears every slot.
func (e *Engine) ResetToPool() {
	for i := range e.slots {
		e.slots[i] = Empty
	}
	for i := range e.where {
		e.where[i] = Empty
	}
}

// move relocates a fragment to an empty slot, vacating its previous slot.
func (e *Engine) move(fragment, slot int) Result {
	previous := e.where[fragment]
	if previous != Empty {
		e.slots[previous] = Empty
	}
	e.slots[slot] = fragment
	e.where[fragment] = slot
	if previous != Empty {
		return Result{Outcome: Moved, Fragment: fragment, Slot: slot}
	}
	return Result{Outcome: Placed, Fragment: fragment, Slot: slot}
}

func (e *Engine) firstEmpty() int {
	for slot, fragment := range e.slots {
		if fragment == Empty {
			return slot
		}
	}
	return Empty
}

func (e *Engine) knownFragment(fragment int) bool {
	return fragment >= 0 && fragment < len(e.where)
}
