package cotask

// Slot addresses a position in the task tree: a complete binary heap of
// bounded depth. Slot 0 is the root; slot i's children are 2i+1 and 2i+2.
type Slot int32

// Root is the slot occupied by a driver's top-level task.
const Root Slot = 0

// Left returns this slot's first child.
func (s Slot) Left() Slot { return 2*s + 1 }

// Right returns this slot's second child.
func (s Slot) Right() Slot { return 2*s + 2 }

// Parent returns this slot's parent. Parent(Root) is Root, by convention;
// callers must not call Parent on Root from a context that needs a real
// ancestor (only combinator-invoked tasks, which are never the root, do
// that — see YieldToPeer and PeerValue).
func (s Slot) Parent() Slot {
	if s == Root {
		return Root
	}
	return (s - 1) / 2
}

// Tree is a fixed-capacity task tree: frames are allocated lazily, at
// most once per slot, and persist for the life of the Tree.
type Tree struct {
	frames []*Frame
	cursor Slot
}

// NewTree allocates a Tree with room for 2^depth - 1 slots. depth is a
// compile-time constant in spirit (it is fixed for the life of the tree,
// chosen once when the driver is constructed); exceeding it is a
// programming error, detected deterministically the first time a
// combinator tries to address a slot past the end.
func NewTree(depth int) *Tree {
	if depth < 1 {
		depth = 1
	}
	return &Tree{
		frames: make([]*Frame, (1<<uint(depth))-1),
	}
}

// Cursor returns the slot currently being evaluated.
func (t *Tree) Cursor() Slot { return t.cursor }

// Frame returns the frame at slot, creating it on first touch. It panics
// with a DepthOverflowError if slot falls outside the tree's capacity:
// this is the "combinator tree deeper than MAX_DEPTH" failure mode from
// spec.md §7, detected at the first overflowing access since Go cannot
// prove combinator nesting depth at compile time the way a macro-based
// reimplementation can.
func (t *Tree) Frame(slot Slot) *Frame {
	if slot < 0 || int(slot) >= len(t.frames) {
		panic(DepthOverflowError{Slot: slot, Capacity: len(t.frames)})
	}
	f := t.frames[slot]
	if f == nil {
		f = &Frame{}
		t.frames[slot] = f
	}
	return f
}

// Reset reinitializes the frame at slot, as performed by a parent
// combinator beginning a fresh invocation of a child task.
func (t *Tree) Reset(slot Slot) {
	t.Frame(slot).reset()
}

// enter moves the cursor to slot, returning the previous cursor so the
// caller can restore it once the child task returns.
func (t *Tree) enter(slot Slot) Slot {
	prev := t.cursor
	t.cursor = slot
	return prev
}

// restore sets the cursor back to a value previously returned by enter.
func (t *Tree) restore(prev Slot) {
	t.cursor = prev
}
