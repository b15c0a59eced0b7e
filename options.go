package cotask

// driverConfig holds resolved Driver construction options.
type driverConfig struct {
	maxDepth int
	debug    DebugSink
	metrics  *Metrics
}

// Option configures a Driver at construction time, following the same
// functional-options shape as eventloop.LoopOption in the teacher corpus:
// an interface wrapping an apply function, with nil options skipped.
type Option interface {
	apply(*driverConfig)
}

type optionFunc func(*driverConfig)

func (f optionFunc) apply(c *driverConfig) { f(c) }

// WithMaxDepth sets the task tree's depth: the tree holds 2^depth - 1
// slots. The default is 5. Combinator nesting deeper than this panics
// with a DepthOverflowError on first use of the overflowing slot.
func WithMaxDepth(depth int) Option {
	return optionFunc(func(c *driverConfig) { c.maxDepth = depth })
}

// WithDebugSink attaches a DebugSink that receives scheduler trace
// events. The default is NopSink, which costs nothing beyond one
// no-op interface call per event.
func WithDebugSink(sink DebugSink) Option {
	return optionFunc(func(c *driverConfig) { c.debug = sink })
}

// WithMetrics attaches a Metrics instance that the driver updates on
// every Tick. The default is nil: no metrics are collected.
func WithMetrics(m *Metrics) Option {
	return optionFunc(func(c *driverConfig) { c.metrics = m })
}

// resolveOptions applies opts over the package defaults, skipping any nil
// entries so callers can pass conditionally-constructed option slices
// without filtering them first.
func resolveOptions(opts []Option) *driverConfig {
	cfg := &driverConfig{maxDepth: 5}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	if cfg.debug == nil {
		cfg.debug = NopSink{}
	}
	return cfg
}
