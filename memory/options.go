package memory

import "log/slog"

// DefaultInitialCapacity is the size of the first allocation of a growable
// buffer when no larger write forces more.
const DefaultInitialCapacity = 256

// options holds configuration for a memory File.
type options struct {
	appendMode      bool
	truncate        bool
	initialCapacity int
	logger          *slog.Logger
}

// Option is a functional option for configuring a memory File.
type Option func(*options)

// WithAppend makes every write land at the current end of data,
// regardless of the offset.
func WithAppend() Option {
	return func(opts *options) {
		opts.appendMode = true
	}
}

// WithTruncate starts a fixed buffer with a logical length of zero, so the
// caller's region is treated as capacity to be filled. The caller's bytes
// are not cleared.
func WithTruncate() Option {
	return func(opts *options) {
		opts.truncate = true
	}
}

// WithInitialCapacity sets the size of the first allocation of a growable
// buffer. Non-positive values keep the default.
func WithInitialCapacity(n int) Option {
	return func(opts *options) {
		if n > 0 {
			opts.initialCapacity = n
		}
	}
}

// WithLogger configures the File with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *options {
	return &options{
		initialCapacity: DefaultInitialCapacity,
		logger:          nil, // No default logger
	}
}

// applyOptions applies the given options and fills in a discarding logger
// when none was provided.
func applyOptions(o *options, opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
}
