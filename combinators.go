package cotask

import "time"

// expired reports whether deadline has passed, given now, using
// wraparound-safe unsigned subtraction (spec.md §6): if now is still
// "before" deadline, now-deadline interpreted as a signed delta is
// negative.
func expired(now, deadline uint32) bool {
	return int32(now-deadline) >= 0
}

// Delay suspends for d, polling the clock. Even d == 0 suspends once: the
// host always gets at least one yield before the task falls through.
func Delay(d time.Duration) Task {
	ms := uint32(d.Milliseconds())
	return func(rt *Runtime) Status {
		f, done := rt.Begin()
		if done {
			return Done
		}
		switch f.PC {
		case 0:
			f.Wait = rt.clock.Now() + ms
			f.PC = 1
			rt.debug.Debug("delay.arm", rt.Cursor(), "Delay", f.PC)
			return Cont
		default:
			if !expired(rt.clock.Now(), f.Wait) {
				return Cont
			}
		}
		f.PC = Finally
		return Done
	}
}

// Await polls a pure, side-effect-free predicate every pass until it
// reports true.
func Await(predicate func() bool) Task {
	return func(rt *Runtime) Status {
		f, done := rt.Begin()
		if done {
			return Done
		}
		if !predicate() {
			return Cont
		}
		f.PC = Finally
		return Done
	}
}

// AndThen runs f to completion as a sequential subtask, reinitializing
// it on each fresh invocation of the AndThen task itself.
func AndThen(f Task) Task {
	return func(rt *Runtime) Status {
		self, done := rt.Begin()
		if done {
			return Done
		}
		child := rt.Cursor().Left()
		if self.PC == 0 {
			rt.tree.Reset(child)
			self.PC = 1
			rt.debug.Debug("andthen.enter", rt.Cursor(), "AndThen", self.PC)
		}
		st := rt.Invoke(child, f)
		// Yields from a child not running under a live Alternate are
		// transparently coerced to Cont (spec.md §4.3, §7).
		if st == Cont || st == Yield {
			return Cont
		}
		self.PC = Finally
		return Done
	}
}

// Join waits for both f and g to finish, evaluating f before g on every
// pass (spec.md §8.3's ordering property).
func Join(f, g Task) Task {
	return func(rt *Runtime) Status {
		self, done := rt.Begin()
		if done {
			return Done
		}
		me := rt.Cursor()
		c1, c2 := me.Left(), me.Right()
		if self.PC == 0 {
			rt.tree.Reset(c1)
			rt.tree.Reset(c2)
			self.PC = 1
			rt.debug.Debug("join.enter", me, "Join", self.PC)
		}
		sf := rt.Invoke(c1, f)
		sg := rt.Invoke(c2, g)
		if sf != Done || sg != Done {
			return Cont
		}
		self.PC = Finally
		return Done
	}
}

// Until runs g while f is not done, stopping as soon as f completes. g is
// abandoned where it stands, with no cleanup notification: cancellation
// in this algebra is implicit and silent (spec.md §5).
func Until(f, g Task) Task {
	return func(rt *Runtime) Status {
		self, done := rt.Begin()
		if done {
			return Done
		}
		me := rt.Cursor()
		c1, c2 := me.Left(), me.Right()
		if self.PC == 0 {
			rt.tree.Reset(c1)
			rt.tree.Reset(c2)
			self.PC = 1
			rt.debug.Debug("until.enter", me, "Until", self.PC)
		}
		sf := rt.Invoke(c1, f)
		rt.Invoke(c2, g)
		if sf != Done {
			return Cont
		}
		self.PC = Finally
		return Done
	}
}

// Race waits for either f or g to finish, then runs onF if f won or onG
// if g won. If both finish on the same pass, f wins the tie-break
// (spec.md §8.4). onF and onG run in the slots one level under f's and
// g's respective slots (c1.Left() and c2.Left()), so the branch body never
// shares a frame with f or g themselves. Those slots are also the first
// child slots of f and g: when f (or g) is itself a combinator, its branch
// body reuses that child's slot after it has finished, with the frame
// reset but its Locals kept — see DESIGN.md.
func Race(f, g Task, onF, onG Task) Task {
	return func(rt *Runtime) Status {
		self, done := rt.Begin()
		if done {
			return Done
		}
		me := rt.Cursor()
		c1, c2 := me.Left(), me.Right()
		switch self.PC {
		case 0:
			rt.tree.Reset(c1)
			rt.tree.Reset(c2)
			self.PC = 1
			rt.debug.Debug("race.enter", me, "Race", self.PC)
			fallthrough
		case 1:
			sf := rt.Invoke(c1, f)
			sg := rt.Invoke(c2, g)
			if sf != Done && sg != Done {
				return Cont
			}
			self.Cond = sf == Done // tie-break: f wins
			if self.Cond {
				rt.tree.Reset(c1.Left())
			} else {
				rt.tree.Reset(c2.Left())
			}
			self.PC = 2
			rt.debug.Debug("race.decide", me, "Race", self.PC)
			fallthrough
		default:
			if self.Cond {
				st := rt.Invoke(c1.Left(), onF)
				if st == Cont || st == Yield {
					return Cont
				}
			} else {
				st := rt.Invoke(c2.Left(), onG)
				if st == Cont || st == Yield {
					return Cont
				}
			}
		}
		self.PC = Finally
		return Done
	}
}

// Timeout runs f for at most d; if f finishes first, the combinator
// simply completes. If d elapses first, onTimeout runs. The deadline is
// computed once, at first entry, and never adjusted (spec.md §5).
func Timeout(d time.Duration, f Task, onTimeout Task) Task {
	ms := uint32(d.Milliseconds())
	return func(rt *Runtime) Status {
		self, done := rt.Begin()
		if done {
			return Done
		}
		me := rt.Cursor()
		child := me.Left()
		// onTimeout gets its own slot, unused by the rest of Timeout, so it
		// can never alias a sub-slot f uses with a different Locals type.
		branch := me.Right()
		switch self.PC {
		case 0:
			rt.tree.Reset(child)
			self.Wait = rt.clock.Now() + ms
			self.PC = 1
			rt.debug.Debug("timeout.arm", me, "Timeout", self.PC)
			fallthrough
		case 1:
			sf := rt.Invoke(child, f)
			if sf != Done && !expired(rt.clock.Now(), self.Wait) {
				return Cont
			}
			self.Cond = sf != Done // true: timeout fired first
			if self.Cond {
				rt.tree.Reset(branch)
			}
			self.PC = 2
			rt.debug.Debug("timeout.decide", me, "Timeout", self.PC)
			fallthrough
		default:
			if self.Cond {
				st := rt.Invoke(branch, onTimeout)
				if st == Cont || st == Yield {
					return Cont
				}
			}
		}
		self.PC = Finally
		return Done
	}
}

// Alternate runs f and g as a coroutine pair, starting on f's turn. A
// task that returns Cont keeps its turn; one that returns Yield hands the
// turn to its peer next pass; one that returns Done ends the alternation
// immediately, regardless of the other side's state.
func Alternate(f, g Task) Task {
	return func(rt *Runtime) Status {
		self, done := rt.Begin()
		if done {
			return Done
		}
		me := rt.Cursor()
		c1, c2 := me.Left(), me.Right()
		if self.PC == 0 {
			rt.tree.Reset(c1)
			rt.tree.Reset(c2)
			self.Cond = true // f's turn
			self.PC = 1
			rt.debug.Debug("alternate.enter", me, "Alternate", self.PC)
		}
		var st Status
		if self.Cond {
			st = rt.Invoke(c1, f)
		} else {
			st = rt.Invoke(c2, g)
		}
		switch st {
		case Cont:
			return Cont
		case Yield:
			self.Cond = !self.Cond
			rt.debug.Debug("alternate.handoff", me, "Alternate", self.PC)
			return Cont
		default:
			self.PC = Finally
			return Done
		}
	}
}

// YieldToPeer deposits v into the mailbox shared with this task's
// Alternate peer and hands control over for this pass. It is only
// meaningful inside a task invoked by Alternate. Called from any other
// non-root slot, it still deposits v into the parent frame and reports
// true, whatever combinator the parent is. Only at the tree root is there
// no parent frame: it then deposits nothing, returns Yield with false,
// and YieldToPeerStrict reports the same case as an error (spec.md §7's
// "stricter implementation" escape hatch).
func YieldToPeer(rt *Runtime, v any) (Status, bool) {
	parent, ok := rt.parentFrame()
	if !ok {
		return Yield, false
	}
	parent.Val = v
	return Yield, true
}

// PeerValue returns the value most recently deposited by this task's
// Alternate peer via YieldToPeer (the parent frame's mailbox), or nil if
// none has been deposited yet or this task is the tree root.
func PeerValue(rt *Runtime) any {
	parent, ok := rt.parentFrame()
	if !ok {
		return nil
	}
	return parent.Val
}

// YieldToPeerStrict is YieldToPeer for a caller that wants the no-peer
// case reported as an error rather than a bool, per spec.md §7's "a
// stricter implementation may detect it" escape hatch.
func YieldToPeerStrict(rt *Runtime, v any) (Status, error) {
	st, ok := YieldToPeer(rt, v)
	if !ok {
		return st, NoPeerError{Slot: rt.Cursor()}
	}
	return st, nil
}

// PeerValueStrict is PeerValue for a caller that wants the no-peer case
// reported as an error rather than a silent nil.
func PeerValueStrict(rt *Runtime) (any, error) {
	if _, ok := rt.parentFrame(); !ok {
		return nil, NoPeerError{Slot: rt.Cursor()}
	}
	return PeerValue(rt), nil
}

// Finish marks the current task as complete starting on the next
// evaluation, but returns Cont for this pass: the caller observes
// suspension now and completion (Done) only on the following entry. This
// is the documented, preserved-verbatim behaviour from spec.md §4.3 and
// §9 — an open question about original intent, resolved in favour of
// matching existing behaviour exactly rather than "fixing" the one-pass
// latency.
func Finish(rt *Runtime) Status {
	f := rt.CurrentFrame()
	f.PC = Finally
	return Cont
}
