package cotask

// manualClock is a Clock double that only advances when the test tells
// it to, so the deterministic scenarios in spec.md §8 run instantly
// instead of depending on wall-clock sleeps — the same seam eventloop's
// loopTestHooks provides for its own timing-dependent tests.
type manualClock struct {
	now uint32
}

func (c *manualClock) Now() uint32 { return c.now }

func (c *manualClock) Advance(ms uint32) { c.now += ms }
