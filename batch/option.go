package batch

import (
	"log/slog"
	"runtime"

	"github.com/viant/schemaconv/conv"
)

type (
	options struct {
		workers     int
		metrics     *Metrics
		convOptions []conv.Option
		logger      *slog.Logger
	}

	// Option represents batch converter option
	Option func(o *options)
)

// WithWorkers sets max number of concurrent workers
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithMetrics sets metrics
func WithMetrics(metrics *Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithConvOptions sets converter options
func WithConvOptions(opts ...conv.Option) Option {
	return func(o *options) {
		o.convOptions = append(o.convOptions, opts...)
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	ret := &options{workers: runtime.NumCPU(), logger: slog.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.workers < 1 {
		ret.workers = 1
	}
	return ret
}
