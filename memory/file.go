// Package memory implements the in-memory fileio backend.
//
// A File is either fixed or growable. A fixed File operates in place on a
// caller-supplied slice and never reallocates it: writes past its end are
// clipped and report errors.ErrBufferFull. A growable File owns its storage,
// allocates it lazily on the first write and reallocates as needed so every
// write succeeds in full. Take hands a growable File's storage over to the
// caller.
//
// The offset of a File always lies within [0, Len()].
package memory

import (
	"io"
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/fileio/core"
	ferrors "github.com/input-output-hk/catalyst-forge-libs/fileio/errors"
)

// maxGrowStep caps a single reallocation step of a growable buffer.
const maxGrowStep = 1 << 30

// File is a memory region addressed like a file.
type File struct {
	name string

	// data is the whole capacity region; data[:length] holds the contents
	data   []byte
	length int
	offset int

	growable        bool
	appendMode      bool
	initialCapacity int
	closed          bool

	logger *slog.Logger
}

// NewFixed creates a File over buf. The File never grows buf and never
// writes outside it. The logical length starts at len(buf), or at zero when
// WithTruncate is given. The offset always starts at zero; in append mode
// writes move it to the end of data.
func NewFixed(name string, buf []byte, opts ...Option) *File {
	o := defaultOptions()
	applyOptions(o, opts)

	f := &File{
		name:       name,
		data:       buf,
		length:     len(buf),
		appendMode: o.appendMode,
		logger:     o.logger,
	}
	if o.truncate {
		f.length = 0
	}
	return f
}

// NewGrowable creates an empty File that owns its storage. Nothing is
// allocated until the first write.
func NewGrowable(name string, opts ...Option) *File {
	o := defaultOptions()
	applyOptions(o, opts)

	return &File{
		name:            name,
		growable:        true,
		appendMode:      o.appendMode,
		initialCapacity: o.initialCapacity,
		logger:          o.logger,
	}
}

// Name returns the name the File was created with.
func (f *File) Name() string {
	return f.name
}

// Read copies min(len(p), Len()-Offset()) bytes from the current offset and
// advances the offset. At end of data Read returns 0, io.EOF.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, ferrors.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if f.offset >= f.length {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.offset:f.length])
	f.offset += n
	return n, nil
}

// Write copies p at the current offset (or at the end of data in append
// mode), extending the logical length as needed. A fixed File clips the
// write to its remaining capacity and returns errors.ErrBufferFull with the
// number of bytes that fit.
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, ferrors.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if f.appendMode {
		f.offset = f.length
	}

	end := f.offset + len(p)
	if end > len(f.data) {
		if !f.growable {
			n := copy(f.data[f.offset:], p)
			f.advance(n)
			return n, ferrors.ErrBufferFull
		}
		f.grow(end)
	}

	n := copy(f.data[f.offset:end], p)
	f.advance(n)
	return n, nil
}

func (f *File) advance(n int) {
	f.offset += n
	if f.offset > f.length {
		f.length = f.offset
	}
}

// grow reallocates data so it can hold need bytes, preserving the contents.
func (f *File) grow(need int) {
	oldCap := len(f.data)
	newCap := growCapacity(oldCap, need, f.initialCapacity)

	data := make([]byte, newCap)
	copy(data, f.data[:f.length])
	f.data = data

	f.logger.Debug("memory buffer grown",
		"name", f.name,
		"from", oldCap,
		"to", newCap,
	)
}

// growCapacity returns the capacity that follows cur when need bytes are
// required: double cur, or grow by 1 GiB when cur is larger than that, and
// never less than need. An empty buffer starts at initial.
func growCapacity(cur, need, initial int) int {
	if cur == 0 {
		return max(need, initial)
	}
	growBy := min(cur, maxGrowStep)
	return max(cur+growBy, need)
}

// Seek sets the offset relative to the start, the current offset or the
// end of data. Targets outside [0, Len()] fail with errors.ErrOutOfRange and
// leave the offset unchanged.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, ferrors.ErrClosed
	}

	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = int64(f.offset)
	case io.SeekEnd:
		base = int64(f.length)
	default:
		return int64(f.offset), ferrors.ErrInvalidWhence
	}

	target := base + offset
	// Overflow wraps the sum around to the other sign.
	if (offset > 0 && target < base) || target < 0 || target > int64(f.length) {
		return int64(f.offset), ferrors.ErrOutOfRange
	}
	f.offset = int(target)
	return target, nil
}

// Sync is a no-op; the contents are always fully materialized.
func (f *File) Sync() error {
	if f.closed {
		return ferrors.ErrClosed
	}
	return nil
}

// Close drops the File's reference to its storage. A fixed buffer is left
// untouched, as is anything already handed out by Take.
func (f *File) Close() error {
	if f.closed {
		return ferrors.ErrClosed
	}
	f.closed = true
	f.data = nil
	f.length = 0
	f.offset = 0
	return nil
}

// Bytes returns the contents without transferring ownership. The slice
// aliases the File's storage and may be invalidated by the next write.
func (f *File) Bytes() []byte {
	return f.data[:f.length]
}

// Take returns the contents and, for a growable File, transfers ownership
// to the caller: the File forgets the storage and is empty afterwards, so
// later writes start a fresh allocation and Close cannot affect the
// returned slice. For a fixed File the caller already owns the storage and
// Take is equivalent to Bytes.
func (f *File) Take() ([]byte, error) {
	if f.closed {
		return nil, ferrors.ErrClosed
	}
	out := f.data[:f.length:f.length]
	if !f.growable {
		return out, nil
	}

	f.data = nil
	f.length = 0
	f.offset = 0
	f.logger.Debug("memory buffer taken", "name", f.name, "length", len(out))
	return out, nil
}

// Len returns the logical length of the contents.
func (f *File) Len() int {
	return f.length
}

// Cap returns the number of bytes the File can hold without growing.
func (f *File) Cap() int {
	return len(f.data)
}

// Offset returns the current read/write offset.
func (f *File) Offset() int {
	return f.offset
}

// EOF reports whether the offset has reached the end of data.
func (f *File) EOF() bool {
	return f.offset >= f.length
}

// Growable reports whether the File owns and grows its storage.
func (f *File) Growable() bool {
	return f.growable
}

// Compile-time interface checks.
var (
	_ core.File   = (*File)(nil)
	_ core.Syncer = (*File)(nil)
	_ io.Seeker   = (*File)(nil)
)
