package cotask

// Clock supplies the monotonic millisecond counter the core needs. It is
// the only external service the combinator layer calls into besides the
// tree itself.
type Clock interface {
	// Now returns a monotonic millisecond count. It must wrap cleanly;
	// callers compare deadlines against it with unsigned subtraction.
	Now() uint32
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() uint32

// Now implements Clock.
func (f ClockFunc) Now() uint32 { return f() }

// Task is a resumable operation: evaluate the current pass and report a
// Status. Combinators are functions that build a Task out of other Tasks;
// leaf tasks are usually written by hand as a small switch over their
// frame's PC.
type Task func(rt *Runtime) Status

// Runtime is the per-driver context threaded through a task tree
// evaluation: the tree (frames plus the current-slot cursor), the clock,
// and an optional debug sink. It is not safe for concurrent use — the
// scheduler is single-threaded by design (spec.md §5).
type Runtime struct {
	tree  *Tree
	clock Clock
	debug DebugSink
}

// NewRuntime builds a Runtime over tree, driven by clock. A nil debug
// sink is replaced with NopSink, so call sites never need a nil check.
func NewRuntime(tree *Tree, clock Clock, debug DebugSink) *Runtime {
	if debug == nil {
		debug = NopSink{}
	}
	return &Runtime{tree: tree, clock: clock, debug: debug}
}

// Clock returns the runtime's clock.
func (rt *Runtime) Clock() Clock { return rt.clock }

// Cursor returns the slot currently being evaluated.
func (rt *Runtime) Cursor() Slot { return rt.tree.Cursor() }

// CurrentFrame returns the frame at the current cursor, creating it on
// first touch.
func (rt *Runtime) CurrentFrame() *Frame { return rt.tree.Frame(rt.tree.Cursor()) }

// Begin is the standard task prologue: it fetches the current frame and
// reports whether the task has already reached Finally, in which case the
// caller's own evaluation should return Done immediately without running
// any of its body (the "idempotent completion" property, spec.md §8.1).
func (rt *Runtime) Begin() (*Frame, bool) {
	f := rt.CurrentFrame()
	return f, f.finished()
}

// Invoke moves the cursor to slot, evaluates t, and restores the prior
// cursor before returning. Every combinator that descends into a child
// goes through this, so nested combinators can safely move the cursor
// without the caller needing to save or restore it itself. It is exported
// so a hand-written multi-step task can call its own child sub-tasks
// directly, the same way the built-in combinators do, instead of going
// through AndThen (which is one primitive among several, not a mandatory
// wrapper for every child call).
func (rt *Runtime) Invoke(slot Slot, t Task) Status {
	prev := rt.tree.enter(slot)
	st := t(rt)
	rt.tree.restore(prev)
	return st
}

// Reset reinitializes the frame at slot, the way a parent combinator
// begins a fresh invocation of a child task. A hand-written multi-step
// task calls this itself, on the pass where it starts a new child call,
// before the first Invoke of that child.
func (rt *Runtime) Reset(slot Slot) {
	rt.tree.Reset(slot)
}

// parentFrame returns the frame one level up from the current cursor. It
// is used by YieldToPeer and PeerValue to reach the Alternate combinator
// that is, conceptually, the channel between the two peers.
func (rt *Runtime) parentFrame() (*Frame, bool) {
	cur := rt.tree.Cursor()
	if cur == Root {
		return nil, false
	}
	return rt.tree.Frame(cur.Parent()), true
}
