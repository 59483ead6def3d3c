package fileio

import (
	"log/slog"
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/fileio/billy"
	"github.com/input-output-hk/catalyst-forge-libs/fileio/memory"
)

// DefaultPerm is the permission used when Open creates a disk file.
const DefaultPerm os.FileMode = 0o666

// options holds configuration for Open.
type options struct {
	buffer          []byte
	filesystem      *billy.FS
	perm            os.FileMode
	initialCapacity int
	logger          *slog.Logger
}

// Option is a functional option for configuring Open.
type Option func(*options)

// WithBuffer backs the handle with buf instead of a disk file. The region is
// fixed: it is read and written in place, never grown, and writes past its
// end are clipped. A nil buf is the same as not passing the option.
func WithBuffer(buf []byte) Option {
	return func(opts *options) {
		opts.buffer = buf
	}
}

// WithFilesystem sets the filesystem disk handles are opened on.
// If fsys is nil, the native filesystem is used.
func WithFilesystem(fsys *billy.FS) Option {
	return func(opts *options) {
		opts.filesystem = fsys
	}
}

// WithPerm sets the permission of disk files created by Open.
func WithPerm(perm os.FileMode) Option {
	return func(opts *options) {
		opts.perm = perm
	}
}

// WithInitialCapacity sets the first allocation of a growable memory buffer.
func WithInitialCapacity(n int) Option {
	return func(opts *options) {
		opts.initialCapacity = n
	}
}

// WithLogger configures the handle with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *options {
	return &options{
		perm:            DefaultPerm,
		initialCapacity: memory.DefaultInitialCapacity,
		logger:          nil, // No default logger
	}
}

// applyOptions applies the given options to o and fills in the native
// filesystem and a discarding logger where none was set.
func applyOptions(o *options, opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	if o.filesystem == nil {
		o.filesystem = billy.NewBaseOSFS()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
}
