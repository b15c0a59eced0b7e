// Package cotask implements a cooperative, single-threaded task runtime
// intended for resource-constrained targets: straight-line procedures that
// "delay" and "wait" as if blocking are composed, via a small algebra of
// combinators, onto a single fixed-capacity task tree with no preemption,
// no per-step heap churn, and no operating system underneath it.
//
// The host owns the clock and the idle loop. It calls into a Driver
// (Once, Repeat, or Every) once per pass; the core does the rest.
//
// # Writing a task
//
// A Task is a func(*Runtime) Status. Simple operations are built by
// composing the combinators in combinators.go. A task with more than one
// suspension point in its own body — the common case for anything that
// does several things in sequence — tracks its own resume point as an
// explicit state machine over its frame's PC, calling out to a single
// dedicated child slot for whichever sub-task is active:
//
//	func blinkOnce(pin Pin) cotask.Task {
//		return func(rt *cotask.Runtime) cotask.Status {
//			f, done := rt.Begin()
//			if done {
//				return cotask.Done
//			}
//			child := rt.Cursor().Left()
//			switch f.PC {
//			case 0:
//				pin.Set(true)
//				rt.Reset(child)
//				f.PC = 1
//			case 1:
//				if rt.Invoke(child, cotask.Delay(500*time.Millisecond)) != cotask.Done {
//					return cotask.Cont
//				}
//				pin.Set(false)
//				rt.Reset(child)
//				f.PC = 2
//			case 2:
//				if rt.Invoke(child, cotask.Delay(500*time.Millisecond)) != cotask.Done {
//					return cotask.Cont
//				}
//				f.PC = cotask.Finally
//				return cotask.Done
//			}
//			return cotask.Cont
//		}
//	}
//
// Driven by NewRepeat, blinkOnce becomes an infinite blink: the driver
// resets the root frame every time it reports Done, starting the cycle
// over (spec.md §8, scenario S1).
package cotask
