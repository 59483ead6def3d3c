// Package fileio provides stdio-style file handles that transparently target
// either a file on disk or a region of memory.
//
// Code written against open/read/write/seek/tell/printf/flush/eof/error
// style routines can be pointed at an in-memory buffer by switching to a
// Handle, with no other logic changes. The only call that needs extra
// arguments is Open:
//
//	// disk, exactly like fopen
//	h, err := fileio.Open("scene.xml", "rb")
//
//	// read a resource already loaded into memory
//	h, err := fileio.Open("scene.xml", "rb", fileio.WithBuffer(data))
//
//	// write into a buffer the handle allocates and grows
//	h, err := fileio.Open("scene.xml", "wmem")
//	h.Printf("<scene name=%q/>", name)
//	out, err := h.TakeBuffer() // out now belongs to the caller
//	h.Close()                  // does not touch out
//
// # Errors
//
// Every operation returns an error wrapping one of the sentinels in the
// errors subpackage, with a code from errors.CodeOf. Like stdio streams, a
// Handle also keeps a sticky error indicator (HasError) and an end-of-data
// indicator (IsEOF). Running out of data is reported as io.EOF with a short
// count and does not set the error indicator; a fixed buffer running out of
// room, an out-of-range seek and any platform failure do.
//
// # Thread safety
//
// A Handle is not safe for concurrent use. Callers sharing a handle across
// goroutines must serialize access themselves.
package fileio
