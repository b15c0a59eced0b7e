package cotask

import "time"

// Metrics is an optional, per-driver counter block. It carries none of
// the teacher's P-square percentile estimation (eventloop/psquare.go):
// that machinery exists to characterize tail latency across a large
// population of async I/O callbacks, which has no analogue in a
// scheduler whose defining property is a small, bounded amount of work
// per pass. The last and longest pass durations and a tick/completion
// count are the metrics this domain actually produces.
type Metrics struct {
	// Ticks is the number of Driver.Tick calls observed.
	Ticks uint64
	// Completions is the number of passes on which the root task
	// reported Done.
	Completions uint64
	// LastPassDuration is the wall-clock time the most recent Tick call
	// took to evaluate the root task.
	LastPassDuration time.Duration
	// MaxPassDuration is the longest Tick call observed.
	MaxPassDuration time.Duration
}

// record updates m after a pass that took elapsed and produced status.
func (m *Metrics) record(elapsed time.Duration, status Status) {
	if m == nil {
		return
	}
	m.Ticks++
	m.LastPassDuration = elapsed
	if elapsed > m.MaxPassDuration {
		m.MaxPassDuration = elapsed
	}
	if status == Done {
		m.Completions++
	}
}
