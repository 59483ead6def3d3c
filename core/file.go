// Package core defines the backend contract shared by every fileio storage
// backend. A fileio.Handle owns exactly one File for its whole life.
package core

// File represents an open backend supporting the primitive I/O operations a
// handle is built from. Implementations should behave consistently with the
// standard library: Read returns io.EOF at end of data, Seek accepts
// io.SeekStart, io.SeekCurrent and io.SeekEnd.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
	Write(p []byte) (n int, err error)
}

// Syncer is implemented by backends that can commit buffered state to
// stable storage.
type Syncer interface {
	Sync() error
}
