package platform

import "log/slog"

// options holds the internal configuration for a sampler.
type options struct {
	logger  *slog.Logger
	workers int
}

// Option defines a functional option for configuring terrane.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:  nil,
		workers: 0,
	}
}

// WithLogger sets the logger for the sampler. Noise modules themselves
// never log; only bulk sampling does.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithWorkers caps the number of goroutines used when filling sample
// planes. Zero or negative keeps the executor default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
