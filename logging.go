package cotask

import "github.com/joeycumines/logiface"

// DebugSink receives optional scheduler trace events: an event name, the
// slot it occurred at, the task's own label (if the caller supplied one;
// empty otherwise), and the resume token at the time. It exists purely
// for diagnostics — nothing in the core reads it back.
//
// Call sites call the sink without a nil check: NewRuntime and the Driver
// options replace a nil sink with NopSink, so a disabled sink costs one
// interface method call that does nothing. That is the Go stand-in for
// spec.md §6's "compiled out with zero cost when off" debug log.
type DebugSink interface {
	Debug(event string, slot Slot, task string, token Token)
}

// NopSink is the default DebugSink: it discards everything.
type NopSink struct{}

// Debug implements DebugSink.
func (NopSink) Debug(string, Slot, string, Token) {}

// logifaceSink adapts a logiface.Logger to DebugSink, the way this
// runtime's debug trace plugs into the same structured-logging stack the
// teacher corpus uses everywhere (github.com/joeycumines/logiface, with
// the github.com/joeycumines/stumpy JSON backend as the usual concrete
// choice — see logiface-stumpy/example_test.go for the upstream pattern
// this mirrors).
type logifaceSink[E logiface.Event] struct {
	log *logiface.Logger[E]
}

// NewLogifaceSink builds a DebugSink that emits a debug-level structured
// log record per event, with fields for the slot, task label, and resume
// token. A nil logger yields a sink equivalent to NopSink.
func NewLogifaceSink[E logiface.Event](log *logiface.Logger[E]) DebugSink {
	if log == nil {
		return NopSink{}
	}
	return logifaceSink[E]{log: log}
}

// Debug implements DebugSink.
func (s logifaceSink[E]) Debug(event string, slot Slot, task string, token Token) {
	s.log.Debug().
		Int64(`slot`, int64(slot)).
		Str(`task`, task).
		Int64(`token`, int64(token)).
		Log(event)
}
