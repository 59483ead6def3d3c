package fileio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/fileio/core"
	ferrors "github.com/input-output-hk/catalyst-forge-libs/fileio/errors"
	"github.com/input-output-hk/catalyst-forge-libs/fileio/memory"
)

// Backend identifies the storage a Handle operates on.
type Backend int

const (
	// BackendDisk is a file opened through a billy filesystem.
	BackendDisk Backend = iota
	// BackendMemory is a fixed or growable memory buffer.
	BackendMemory
)

// String returns the name of the backend.
func (b Backend) String() string {
	switch b {
	case BackendDisk:
		return "disk"
	case BackendMemory:
		return "memory"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// Handle is one open I/O target: a disk file or a memory region. Every
// operation is dispatched to the backend chosen by Open.
//
// A Handle keeps two indicators, mirroring stdio streams: the error
// indicator is set by any failed operation and stays set until ClearError;
// the end-of-data indicator is reported by IsEOF.
//
// A Handle is not safe for concurrent use.
type Handle struct {
	name    string
	mode    Mode
	backend Backend

	file core.File
	// mem is the same backend as file when backend == BackendMemory.
	mem *memory.File

	eof    bool
	failed bool
	closed bool

	logger *slog.Logger
}

// Name returns the name the handle was opened with.
func (h *Handle) Name() string {
	return h.name
}

// Mode returns the parsed mode the handle was opened with.
func (h *Handle) Mode() Mode {
	return h.mode
}

// Backend returns the storage kind of the handle.
func (h *Handle) Backend() Backend {
	return h.backend
}

// Read implements io.Reader. It reads until p is full or data runs out;
// a short read returns io.EOF and sets the end-of-data indicator.
func (h *Handle) Read(p []byte) (int, error) {
	return h.read("read", p)
}

// ReadItems reads up to count elements of size bytes each into dst and
// returns the number of whole elements read. Fewer than count elements are
// returned with io.EOF when data runs out; the bytes of a trailing partial
// element are copied into dst but not counted.
func (h *Handle) ReadItems(dst []byte, size, count int) (int, error) {
	if size <= 0 || count <= 0 {
		return 0, nil
	}
	total, ok := itemBytes(size, count, len(dst))
	if !ok {
		return 0, h.wrap("read", fmt.Errorf("%w: %d items of %d bytes do not fit in %d bytes",
			ferrors.ErrInvalidInput, count, size, len(dst)))
	}
	n, err := h.read("read", dst[:total])
	return n / size, err
}

func (h *Handle) read(op string, p []byte) (int, error) {
	if h.closed {
		return 0, h.wrap(op, ferrors.ErrClosed)
	}
	if !h.mode.Readable() {
		return 0, h.fail(op, ferrors.ErrNotReadable)
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := io.ReadFull(h.file, p)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		h.eof = true
		return n, io.EOF
	default:
		return n, h.fail(op, err)
	}
}

// Write implements io.Writer.
func (h *Handle) Write(p []byte) (int, error) {
	return h.write("write", p)
}

// WriteItems writes count elements of size bytes each from src and returns
// the number of whole elements written. On a fixed memory buffer the write
// is clipped to the remaining capacity, the error indicator is set and the
// error matches errors.ErrBufferFull. A growable memory buffer always takes
// the full write.
func (h *Handle) WriteItems(src []byte, size, count int) (int, error) {
	if size <= 0 || count <= 0 {
		return 0, nil
	}
	total, ok := itemBytes(size, count, len(src))
	if !ok {
		return 0, h.wrap("write", fmt.Errorf("%w: %d items of %d bytes exceed %d bytes",
			ferrors.ErrInvalidInput, count, size, len(src)))
	}
	n, err := h.write("write", src[:total])
	return n / size, err
}

// Printf formats according to format into a temporary buffer and writes
// it. It returns the number of bytes written.
func (h *Handle) Printf(format string, args ...any) (int, error) {
	return h.write("printf", fmt.Appendf(nil, format, args...))
}

// PutChar writes the single byte c.
func (h *Handle) PutChar(c byte) error {
	_, err := h.write("putc", []byte{c})
	return err
}

// PutString writes s. No newline is appended.
func (h *Handle) PutString(s string) (int, error) {
	return h.write("puts", []byte(s))
}

func (h *Handle) write(op string, p []byte) (int, error) {
	if h.closed {
		return 0, h.wrap(op, ferrors.ErrClosed)
	}
	if !h.mode.Writable() {
		return 0, h.fail(op, ferrors.ErrNotWritable)
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := h.file.Write(p)
	if err != nil {
		return n, h.fail(op, err)
	}
	if n < len(p) {
		return n, h.fail(op, io.ErrShortWrite)
	}
	return n, nil
}

// Flush commits written data: a disk file is synced to stable storage,
// a memory buffer needs nothing.
func (h *Handle) Flush() error {
	if h.closed {
		return h.wrap("flush", ferrors.ErrClosed)
	}
	s, ok := h.file.(core.Syncer)
	if !ok {
		return nil
	}
	if err := s.Sync(); err != nil {
		return h.fail("flush", err)
	}
	return nil
}

// Seek implements io.Seeker. On a memory handle a target outside
// [0, length] fails with errors.ErrOutOfRange, leaves the offset unchanged
// and sets the error indicator. A successful seek clears the end-of-data
// indicator of a disk handle.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	if h.closed {
		return 0, h.wrap("seek", ferrors.ErrClosed)
	}
	switch whence {
	case io.SeekStart, io.SeekCurrent, io.SeekEnd:
	default:
		return 0, h.fail("seek", fmt.Errorf("%w: %d", ferrors.ErrInvalidWhence, whence))
	}

	pos, err := h.file.Seek(offset, whence)
	if err != nil {
		return pos, h.fail("seek", err)
	}
	h.eof = false
	return pos, nil
}

// Tell returns the current offset.
func (h *Handle) Tell() (int64, error) {
	if h.closed {
		return -1, h.wrap("tell", ferrors.ErrClosed)
	}
	if h.mem != nil {
		return int64(h.mem.Offset()), nil
	}
	pos, err := h.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1, h.fail("tell", err)
	}
	return pos, nil
}

// IsEOF reports whether there is no more data to read. A memory handle is
// at end of data when its offset has reached the logical length; a disk
// handle once a read ran out of data, until the next successful seek.
func (h *Handle) IsEOF() bool {
	if h.mem != nil {
		return h.mem.EOF()
	}
	return h.eof
}

// HasError reports whether an operation on the handle has failed since it
// was opened or since the last ClearError. Reaching end of data is not an
// error.
func (h *Handle) HasError() bool {
	return h.failed
}

// ClearError resets the error and end-of-data indicators.
func (h *Handle) ClearError() {
	h.failed = false
	h.eof = false
}

// TakeBuffer returns the contents of a memory handle. For a growable
// buffer, ownership moves to the caller: the handle forgets the slice and
// is empty afterwards, and Close will not touch it. For a caller-supplied
// buffer it returns that buffer up to its logical length. Disk handles
// fail with errors.ErrNotMemory.
func (h *Handle) TakeBuffer() ([]byte, error) {
	if h.closed {
		return nil, h.wrap("take", ferrors.ErrClosed)
	}
	if h.mem == nil {
		return nil, h.wrap("take", ferrors.ErrNotMemory)
	}
	buf, err := h.mem.Take()
	if err != nil {
		return nil, h.wrap("take", err)
	}
	h.logger.Debug("memory buffer handed to caller", "name", h.name, "length", len(buf))
	return buf, nil
}

// Bytes returns the contents of a memory handle without transferring
// ownership. The slice aliases the handle's storage and may be
// invalidated by the next write.
func (h *Handle) Bytes() ([]byte, error) {
	if h.closed {
		return nil, h.wrap("bytes", ferrors.ErrClosed)
	}
	if h.mem == nil {
		return nil, h.wrap("bytes", ferrors.ErrNotMemory)
	}
	return h.mem.Bytes(), nil
}

// Len returns the logical length of a memory handle.
func (h *Handle) Len() (int, error) {
	if h.closed {
		return 0, h.wrap("len", ferrors.ErrClosed)
	}
	if h.mem == nil {
		return 0, h.wrap("len", ferrors.ErrNotMemory)
	}
	return h.mem.Len(), nil
}

// Close releases the backend: the disk file is closed, or the memory
// buffer reference is dropped. Closing twice returns errors.ErrClosed.
func (h *Handle) Close() error {
	if h.closed {
		return h.wrap("close", ferrors.ErrClosed)
	}
	h.closed = true

	err := h.file.Close()
	h.logger.Debug("handle closed", "name", h.name, "backend", h.backend.String())
	if err != nil {
		return h.wrap("close", err)
	}
	return nil
}

// fail sets the error indicator and wraps err.
func (h *Handle) fail(op string, err error) error {
	if !h.failed {
		h.logger.Debug("handle error indicator set", "name", h.name, "op", op, "error", err)
	}
	h.failed = true
	return h.wrap(op, err)
}

func (h *Handle) wrap(op string, err error) error {
	return ferrors.NewError(op, h.name, err)
}

// itemBytes returns size*count when it fits in avail.
func itemBytes(size, count, avail int) (int, bool) {
	if count > avail/size {
		return 0, false
	}
	return size * count, true
}

// Compile-time interface checks.
var (
	_ io.ReadWriteSeeker = (*Handle)(nil)
	_ io.Closer          = (*Handle)(nil)
)
