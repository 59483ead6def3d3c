package fileio

import (
	"fmt"
	"os"
	"strings"

	ferrors "github.com/input-output-hk/catalyst-forge-libs/fileio/errors"
)

// memToken is the mode token that selects a handle-owned, growable memory
// buffer instead of a disk file.
const memToken = "mem"

// Access is the primary access kind of a mode string.
type Access int

const (
	// AccessRead opens for reading ("r").
	AccessRead Access = iota + 1
	// AccessWrite opens for writing, truncating or creating ("w").
	AccessWrite
	// AccessAppend opens for writing at the end of data ("a").
	AccessAppend
)

// String returns the mode letter of the access kind.
func (a Access) String() string {
	switch a {
	case AccessRead:
		return "r"
	case AccessWrite:
		return "w"
	case AccessAppend:
		return "a"
	}
	return fmt.Sprintf("Access(%d)", int(a))
}

// Mode is a parsed stdio mode string.
type Mode struct {
	Access Access

	// Update is set by "+": the handle is opened for both reading and writing.
	Update bool

	// Binary is set by "b". It is accepted for compatibility and has no effect.
	Binary bool

	// Exclusive is set by "x": a "w" open fails if the file already exists.
	Exclusive bool

	// Memory is set by the "mem" token.
	Memory bool

	raw string
}

// ParseMode parses a stdio mode string: one of 'r', 'w' or 'a' followed by
// any combination of '+', 'b', 't', 'x' and the token "mem".
func ParseMode(s string) (Mode, error) {
	m := Mode{raw: s}
	if s == "" {
		return m, fmt.Errorf("%w: empty mode", ferrors.ErrInvalidMode)
	}

	switch s[0] {
	case 'r':
		m.Access = AccessRead
	case 'w':
		m.Access = AccessWrite
	case 'a':
		m.Access = AccessAppend
	default:
		return m, fmt.Errorf("%w: %q must start with r, w or a", ferrors.ErrInvalidMode, s)
	}

	for rest := s[1:]; rest != ""; {
		if strings.HasPrefix(rest, memToken) {
			m.Memory = true
			rest = rest[len(memToken):]
			continue
		}
		switch rest[0] {
		case '+':
			m.Update = true
		case 'b':
			m.Binary = true
		case 't':
		case 'x':
			m.Exclusive = true
		default:
			return m, fmt.Errorf("%w: unknown character %q in %q", ferrors.ErrInvalidMode, rest[0], s)
		}
		rest = rest[1:]
	}

	if m.Exclusive && m.Access != AccessWrite {
		return m, fmt.Errorf("%w: 'x' is only valid with 'w' in %q", ferrors.ErrInvalidMode, s)
	}
	return m, nil
}

// Readable reports whether the mode permits reading.
func (m Mode) Readable() bool {
	return m.Access == AccessRead || m.Update
}

// Writable reports whether the mode permits writing.
func (m Mode) Writable() bool {
	return m.Access != AccessRead || m.Update
}

// Flag returns the os.OpenFile flags equivalent to the mode.
func (m Mode) Flag() int {
	access := os.O_WRONLY
	if m.Update {
		access = os.O_RDWR
	}

	switch m.Access {
	case AccessRead:
		if m.Update {
			return os.O_RDWR
		}
		return os.O_RDONLY
	case AccessWrite:
		flag := access | os.O_CREATE | os.O_TRUNC
		if m.Exclusive {
			flag |= os.O_EXCL
		}
		return flag
	case AccessAppend:
		return access | os.O_CREATE | os.O_APPEND
	}
	return os.O_RDONLY
}

// String returns the mode string as it was parsed.
func (m Mode) String() string {
	return m.raw
}
