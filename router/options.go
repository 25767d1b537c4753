package router

// Option customizes a Controller at construction time.
type Option func(*Controller)

// WithMaxBacktracks bounds the number of backtrack steps a single
// ordering attempt may take before it is declared infeasible
// (spec.md §4.6's "limited by per-pair retry bookkeeping"). n<=0 is
// ignored, leaving the default in place.
func WithMaxBacktracks(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxBacktracks = n
		}
	}
}

// WithLogger attaches a logger for per-attempt progress messages.
// A nil logger is ignored, leaving the default no-op logger in place.
func WithLogger(l Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}
