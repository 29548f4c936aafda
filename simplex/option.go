package simplex

// DefaultMaxIterations bounds the number of pivots of a single run.
const DefaultMaxIterations = 10000

type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

type config struct {
	logger        Logger
	tolerance     float64
	maxIterations int
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:        noopLogger{},
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type Option func(*config)

// WithLogger logs every pivot to logger.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTolerance treats values in [-eps, eps] as zero when looking for
// negative objective entries and positive pivot candidates. The default of 0
// compares against zero exactly.
func WithTolerance(eps float64) Option {
	return func(c *config) {
		if eps >= 0 {
			c.tolerance = eps
		}
	}
}

// WithMaxIterations caps the number of pivots; n <= 0 removes the cap.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		c.maxIterations = n
	}
}
