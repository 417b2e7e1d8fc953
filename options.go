package retouch

import "log/slog"

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Two task workers, row bands spread over all CPUs
//	e, err := retouch.NewEngine()
//
//	// One task at a time, four band workers, verbose logging
//	e, err := retouch.NewEngine(
//	    retouch.WithWorkers(1),
//	    retouch.WithParallelism(4),
//	    retouch.WithLogger(logger),
//	)
type EngineOption func(*engineOptions)

type engineOptions struct {
	workers     int
	parallelism int
	logger      *slog.Logger
	yield       bool
}

// DefaultWorkers is the number of task goroutines an Engine starts unless
// WithWorkers says otherwise.
const DefaultWorkers = 2

func defaultOptions() engineOptions {
	return engineOptions{
		workers:     DefaultWorkers,
		parallelism: 0, // GOMAXPROCS
		logger:      nil,
		yield:       true,
	}
}

// WithWorkers sets how many tasks may run at the same time. Tasks for
// different slots run in parallel up to this limit; the rest wait in FIFO
// order. n must be at least 1.
func WithWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithParallelism sets how many goroutines a single operator may use to
// process row bands. Zero means runtime.GOMAXPROCS(0); 1 runs every
// operator on the task goroutine.
func WithParallelism(n int) EngineOption {
	return func(o *engineOptions) {
		o.parallelism = n
	}
}

// WithLogger sets the logger for one engine, overriding the package logger
// set with SetLogger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// WithYield controls whether task goroutines call runtime.Gosched between
// pipeline stages. It is on by default.
func WithYield(yield bool) EngineOption {
	return func(o *engineOptions) {
		o.yield = yield
	}
}
