package cotask

import "fmt"

// Status is the four-valued tag returned from every task evaluation.
type Status uint8

const (
	// None is the uninitialized/default value. A well-formed task never
	// returns it.
	None Status = iota
	// Done means the task completed normally and should not be re-entered
	// (re-entering it is harmless: it returns Done again, idempotently).
	Done
	// Cont means the task suspended and wants to be resumed on a later
	// pass.
	Cont
	// Yield means the task voluntarily handed control to a peer via
	// Alternate; it will resume where it left off.
	Yield
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case None:
		return "None"
	case Done:
		return "Done"
	case Cont:
		return "Cont"
	case Yield:
		return "Yield"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Token is an opaque resume-point identifier. A task's frame stores the
// token it should resume at; the task's own dispatch (usually a switch
// statement) jumps straight to the matching case, skipping everything
// between the top of the body and that point.
type Token int32

// Finally is the sentinel token marking a task that has completed. Once a
// frame's PC reaches Finally, every subsequent evaluation of that task
// falls straight through to the epilogue and returns Done, without
// re-running any of the task's body.
const Finally Token = -1
