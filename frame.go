package cotask

// Frame is a task's activation record: its resume point, wait deadline,
// scalar mailbox, condition latch, and user-declared persistent locals.
//
// A frame is allocated at most once per tree slot per driver lifetime;
// its storage address is stable for the life of the driver. See Tree for
// the lazy-creation contract.
type Frame struct {
	// PC is the resume token. It is 0 on first entry and advances through
	// opaque, task-defined tokens, terminating at Finally.
	PC Token

	// Wait is an absolute deadline (monotonic milliseconds), meaningful
	// only while a combinator has parked the task on one; compare against
	// Clock.Now() with wraparound-safe unsigned subtraction.
	Wait uint32

	// Val is the single scalar mailbox used by Alternate's YieldToPeer /
	// PeerValue channel.
	Val any

	// Cond is a single-bit latch used by combinators that must remember a
	// decision taken on a prior pass (which branch of a Race won; whose
	// turn it is in Alternate).
	Cond bool

	// Locals holds the task's user-declared persistent variables. Use the
	// package-level Locals helper to obtain a typed pointer into it,
	// allocating lazily on first use.
	Locals any
}

// finished reports whether this frame has reached Finally.
func (f *Frame) finished() bool {
	return f.PC == Finally
}

// reset reinitializes the frame to its initial state, as performed by a
// parent combinator beginning a fresh invocation of a child task. Only PC,
// Wait and Cond are cleared; Val keeps its last value, and Locals
// storage is not released: a well-formed program always re-enters the
// same slot with the same task, so the locals remain valid and are simply
// overwritten by the task's own prologue, if it declares any.
func (f *Frame) reset() {
	f.PC = 0
	f.Wait = 0
	f.Cond = false
}

// Locals returns a typed pointer to the current frame's persistent local
// storage, allocating it on the first call for this slot. Subsequent
// calls, for the life of the slot, return the same pointer.
//
// A well-formed program never calls Locals with two different types for
// the same slot: the first type to claim a slot's Locals keeps it, and a
// later call with a different type panics on the type assertion.
func Locals[T any](rt *Runtime) *T {
	f := rt.CurrentFrame()
	if f.Locals == nil {
		f.Locals = new(T)
	}
	return f.Locals.(*T)
}
