// Package errors provides the error handling system for fileio handles.
// It extends Go's standard error handling with string error codes, a
// structured error carrying the failed operation and target name, and the
// sentinel errors every backend reports.
package errors

// ErrorCode represents a specific error condition of a handle operation.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates the file to open does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a file exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Permission errors.

	// CodeForbidden indicates the platform denied access to the file.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates an argument is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidMode indicates a mode string, or a mode and buffer
	// combination, that cannot be honored.
	CodeInvalidMode ErrorCode = "INVALID_MODE"

	// Buffer errors.

	// CodeOutOfRange indicates a position outside the valid range of a memory buffer.
	CodeOutOfRange ErrorCode = "OUT_OF_RANGE"

	// CodeBufferFull indicates a fixed memory buffer has no room left.
	CodeBufferFull ErrorCode = "BUFFER_FULL"

	// Lifecycle errors.

	// CodeClosed indicates the handle was already closed.
	CodeClosed ErrorCode = "CLOSED"

	// System errors.

	// CodeInternal indicates an underlying platform I/O error.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeNotImplemented indicates the operation is not available on the backend.
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
