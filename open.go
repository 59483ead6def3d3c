package fileio

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/input-output-hk/catalyst-forge-libs/fileio/billy"
	ferrors "github.com/input-output-hk/catalyst-forge-libs/fileio/errors"
	"github.com/input-output-hk/catalyst-forge-libs/fileio/memory"
)

// Open opens name with a stdio mode string and returns a handle on the
// backend the arguments select:
//
//   - WithBuffer(buf): a fixed memory region. "r" and "r+" read the whole
//     buffer, "w" and "w+" treat it as empty capacity, "a" and "a+" read
//     from the start and write at its end.
//   - the "mem" mode token (e.g. "wmem"): a growable memory buffer owned by
//     the handle until TakeBuffer. name is only a label. The mode must permit
//     writing, since there is nothing to read.
//   - otherwise: the disk file name, opened through the configured
//     filesystem (the native filesystem by default). Modes that create the
//     file fail with a NOT_FOUND error when its directory does not exist.
//
// The "x" flag applies to disk files only and is rejected for memory
// handles.
//
// On failure the handle is nil and the error is an *errors.Error whose Code
// classifies the cause.
func Open(name, mode string, opts ...Option) (*Handle, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, ferrors.NewError("open", name, err)
	}

	o := defaultOptions()
	applyOptions(o, opts)

	h := &Handle{
		name:   name,
		mode:   m,
		logger: o.logger,
	}

	if m.Exclusive && (o.buffer != nil || m.Memory) {
		return nil, ferrors.NewError("open", name,
			fmt.Errorf("%w: %q: exclusive create needs a disk file", ferrors.ErrInvalidMode, mode))
	}

	switch {
	case o.buffer != nil:
		h.setMemory(memory.NewFixed(name, o.buffer, memoryOptions(m, o)...))
	case m.Memory:
		if !m.Writable() {
			return nil, ferrors.NewError("open", name,
				fmt.Errorf("%w: %q reads memory but no buffer was supplied", ferrors.ErrInvalidMode, mode))
		}
		h.setMemory(memory.NewGrowable(name, memoryOptions(m, o)...))
	default:
		flag := m.Flag()
		if flag&os.O_CREATE != 0 {
			if err := checkParent(o.filesystem, name); err != nil {
				return nil, ferrors.NewError("open", name, err)
			}
		}
		f, err := o.filesystem.OpenFile(name, flag, o.perm)
		if err != nil {
			return nil, ferrors.NewError("open", name, err)
		}
		h.backend = BackendDisk
		h.file = f
	}

	h.logger.Debug("handle opened",
		"name", name,
		"mode", mode,
		"backend", h.backend.String(),
	)
	return h, nil
}

// OpenFS loads name from fsys, for example an embed.FS, and returns a
// read-only handle over the loaded bytes.
func OpenFS(fsys fs.FS, name string, opts ...Option) (*Handle, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, ferrors.NewError("open", name, err)
	}
	if data == nil {
		data = []byte{}
	}
	return Open(name, "rb", append(slices.Clone(opts), WithBuffer(data))...)
}

// checkParent fails with fs.ErrNotExist when the directory name would be
// created in is missing. billy filesystems create parents on demand; a
// platform open does not.
func checkParent(fsys *billy.FS, name string) error {
	dir := filepath.Dir(name)
	if dir == "." || dir == filepath.Dir(dir) {
		return nil
	}
	ok, err := fsys.Exists(dir)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("directory %q: %w", dir, fs.ErrNotExist)
	}
	return nil
}

func (h *Handle) setMemory(f *memory.File) {
	h.backend = BackendMemory
	h.file = f
	h.mem = f
}

// memoryOptions translates the mode and handle options for the memory backend.
func memoryOptions(m Mode, o *options) []memory.Option {
	opts := []memory.Option{
		memory.WithLogger(o.logger),
		memory.WithInitialCapacity(o.initialCapacity),
	}
	switch m.Access {
	case AccessWrite:
		opts = append(opts, memory.WithTruncate())
	case AccessAppend:
		opts = append(opts, memory.WithAppend())
	}
	return opts
}
