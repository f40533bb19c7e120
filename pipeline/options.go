package pipeline

// config holds the pipeline's tunable knobs. Run builds its single-var and
// multi-var Newton solvers with newton's default options, which Run does
// not let callers change; these are the pipeline's own observability knobs.
type config struct {
	trace func(event string)
}

// Option configures Run.
type Option func(*config)

// WithTrace registers a callback invoked with a short human-readable
// description of each step the outer loop takes (equation solved,
// subsystem built, seed rejected). Useful for debugging stuck inputs;
// never required for correctness.
func WithTrace(fn func(event string)) Option {
	return func(c *config) { c.trace = fn }
}

func resolve(opts []Option) config {
	c := config{trace: func(string) {}}
	for _, o := range opts {
		o(&c)
	}

	return c
}
