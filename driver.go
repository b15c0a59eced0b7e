package cotask

import "time"

// driverMode selects what a Driver does when its root task completes.
type driverMode uint8

const (
	modeOnce driverMode = iota
	modeRepeat
	modeEvery
)

// Driver is a top-level entry point the host's idle loop calls once per
// pass. It owns one task tree and one Runtime; independent Driver
// instances compose by sharing nothing but the host's time axis
// (spec.md §4.4).
type Driver struct {
	rt      *Runtime
	root    Task
	mode    driverMode
	clock   Clock
	metrics *Metrics

	interval     uint32
	completedAt  uint32
	haveComplete bool
}

func newDriver(mode driverMode, root Task, clock Clock, interval uint32, opts []Option) *Driver {
	cfg := resolveOptions(opts)
	tree := NewTree(cfg.maxDepth)
	rt := NewRuntime(tree, clock, cfg.debug)
	return &Driver{
		rt:       rt,
		root:     root,
		mode:     mode,
		clock:    clock,
		metrics:  cfg.metrics,
		interval: interval,
	}
}

// NewOnce builds a Driver that evaluates root on every pass; once root
// completes, further passes are no-ops (the root frame stays at Finally).
func NewOnce(root Task, clock Clock, opts ...Option) *Driver {
	return newDriver(modeOnce, root, clock, 0, opts)
}

// NewRepeat builds a Driver that, like NewOnce, evaluates root every
// pass, but resets the root frame as soon as root completes so it starts
// over on the next pass.
func NewRepeat(root Task, clock Clock, opts ...Option) *Driver {
	return newDriver(modeRepeat, root, clock, 0, opts)
}

// NewEvery builds a Driver that behaves like NewRepeat, except the reset
// only happens once root has completed AND at least interval has elapsed
// since the reference time; the reference time is advanced to the moment
// root completed, each time it completes.
func NewEvery(interval time.Duration, root Task, clock Clock, opts ...Option) *Driver {
	return newDriver(modeEvery, root, clock, uint32(interval.Milliseconds()), opts)
}

// Tick evaluates the driver's root task for one pass and applies the
// driver's reset policy. The host idle loop calls this once per pass; it
// must not be called from an interrupt context (spec.md §4.4).
func (d *Driver) Tick() Status {
	start := time.Now()
	st := d.rt.Invoke(Root, d.root)
	d.metrics.record(time.Since(start), st)

	switch d.mode {
	case modeRepeat:
		if st == Done {
			d.rt.tree.Reset(Root)
		}
	case modeEvery:
		if st == Done {
			now := d.clock.Now()
			if !d.haveComplete {
				d.completedAt = now
				d.haveComplete = true
			} else if expired(now, d.completedAt+d.interval) {
				d.rt.tree.Reset(Root)
				d.haveComplete = false
			}
		}
	}
	return st
}

// Metrics returns the Metrics instance attached via WithMetrics, or nil
// if none was configured.
func (d *Driver) Metrics() *Metrics { return d.metrics }
