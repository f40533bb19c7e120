package newton

// config holds the tunable knobs shared by SingleVarSolver and
// MultiVarSolver. Defaults match spec.md's worked examples.
type config struct {
	margin float64
	limit  int
}

func defaultConfig() config {
	return config{margin: 1e-9, limit: 100}
}

// Option configures a solver at construction time.
type Option func(*config)

// WithMargin sets the convergence tolerance ε. Must be positive.
func WithMargin(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.margin = eps
		}
	}
}

// WithIterationLimit sets the maximum number of Newton iterations N.
// Must be positive.
func WithIterationLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limit = n
		}
	}
}

func resolve(opts []Option) config {
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}

	return c
}
