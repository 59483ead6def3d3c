package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error represents a handle operation error with context about the operation that failed.
type Error struct {
	// Op is the operation that failed (e.g., "open", "read", "seek")
	Op string

	// Name is the name the handle was opened with (if applicable)
	Name string

	// Code classifies the failure
	Code ErrorCode

	// Err is the underlying error from the backend or a sentinel from this package
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("fileio.%s %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("fileio.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error for op on name. The code is derived from err.
func NewError(op, name string, err error) *Error {
	return &Error{
		Op:   op,
		Name: name,
		Code: CodeOf(err),
		Err:  err,
	}
}

// Sentinel errors for handle operation failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrInvalidMode indicates an unparseable mode string or an unusable mode/buffer combination
	ErrInvalidMode = errors.New("fileio: invalid mode")

	// ErrInvalidInput indicates that an argument is invalid
	ErrInvalidInput = errors.New("fileio: invalid input")

	// ErrInvalidWhence indicates a seek origin other than start, current or end
	ErrInvalidWhence = errors.New("fileio: invalid whence")

	// ErrOutOfRange indicates a seek target outside the memory buffer
	ErrOutOfRange = errors.New("fileio: offset out of range")

	// ErrBufferFull indicates a write past the end of a fixed memory buffer
	ErrBufferFull = errors.New("fileio: buffer full")

	// ErrClosed indicates an operation on a closed handle
	ErrClosed = fmt.Errorf("fileio: %w", fs.ErrClosed)

	// ErrNotMemory indicates a memory-only operation on a disk handle
	ErrNotMemory = errors.New("fileio: not a memory handle")

	// ErrNotReadable indicates a read on a handle opened without read access
	ErrNotReadable = errors.New("fileio: handle not open for reading")

	// ErrNotWritable indicates a write on a handle opened without write access
	ErrNotWritable = errors.New("fileio: handle not open for writing")

	// ErrUnsupported indicates the backend does not support the operation
	ErrUnsupported = errors.New("fileio: operation not supported")
)

// CodeOf classifies err. Structured errors report their own code; sentinel
// and io/fs errors are mapped; anything else is CodeInternal. A nil error
// has no code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) && e.Code != "" {
		return e.Code
	}

	switch {
	case errors.Is(err, ErrInvalidMode):
		return CodeInvalidMode
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidWhence),
		errors.Is(err, ErrNotReadable), errors.Is(err, ErrNotWritable):
		return CodeInvalidInput
	case errors.Is(err, ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, ErrBufferFull):
		return CodeBufferFull
	case errors.Is(err, fs.ErrClosed):
		return CodeClosed
	case errors.Is(err, ErrNotMemory), errors.Is(err, ErrUnsupported):
		return CodeNotImplemented
	case errors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case errors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return CodeForbidden
	case errors.Is(err, fs.ErrInvalid):
		return CodeInvalidInput
	}
	return CodeInternal
}

// IsNotFound checks if an error indicates that the file does not exist.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsOutOfRange checks if an error indicates an out-of-range memory access.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsBufferFull checks if an error indicates a fixed buffer ran out of room.
func IsBufferFull(err error) bool {
	return errors.Is(err, ErrBufferFull)
}

// IsClosed checks if an error indicates use of a closed handle.
func IsClosed(err error) bool {
	return errors.Is(err, fs.ErrClosed)
}
