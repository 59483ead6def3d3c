package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWriteReadExists(t *testing.T, fsys *FS, root string) {
	t.Helper()
	p := filepath.Join(root, "file.txt")

	ok, err := fsys.Exists(p)
	require.NoError(t, err)
	assert.False(t, ok)

	f, err := fsys.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
	require.NoError(t, err)
	n, err := f.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	b, err := fsys.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	ok, err = fsys.Exists(p)
	require.NoError(t, err)
	assert.True(t, ok)
}

func testSeekAndEOF(t *testing.T, fsys *FS, root string) {
	t.Helper()
	p := filepath.Join(root, "seek.txt")
	require.NoError(t, fsys.WriteFile(p, []byte("abcdef"), 0o644))

	f, err := fsys.OpenFile(p, os.O_RDONLY, 0)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	pos, err := f.Seek(2, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pos)

	buf := make([]byte, 8)
	n, err := f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "cdef", string(buf[:n]))

	n, err = f.Read(buf)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err, "EOF must not be wrapped")
}

func testOpenFileFlags(t *testing.T, fsys *FS, root string) {
	t.Helper()
	p := filepath.Join(root, "flags.txt")

	f, err := fsys.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	require.NoError(t, err)
	_, err = f.Write([]byte("one"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = fsys.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o666)
	require.NoError(t, err)
	_, err = f.Write([]byte("two"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err := fsys.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "onetwo", string(b))
}

func testOpenMissing(t *testing.T, fsys *FS, root string) {
	t.Helper()
	_, err := fsys.OpenFile(filepath.Join(root, "missing.txt"), os.O_RDONLY, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

// runSuite runs a battery of consistency tests against an FS.
func runSuite(t *testing.T, fsys *FS, root string) {
	t.Helper()
	testWriteReadExists(t, fsys, root)
	testSeekAndEOF(t, fsys, root)
	testOpenFileFlags(t, fsys, root)
	testOpenMissing(t, fsys, root)
}

func TestInMemoryFS_Suite(t *testing.T) {
	runSuite(t, NewInMemoryFS(), "/")
}

func TestOSFS_Suite(t *testing.T) {
	root := t.TempDir()
	runSuite(t, NewOSFS(root), "/")
}

func TestBaseOSFS_Suite(t *testing.T) {
	assert.Equal(t, "/", (&BaseOSFS{}).Root())
	runSuite(t, NewBaseOSFS(), t.TempDir())
}

func TestFile_SyncWithoutSupport(t *testing.T) {
	fsys := NewFS(memfs.New())
	f, err := fsys.OpenFile("nosync.txt", os.O_RDWR|os.O_CREATE, 0o666)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.NoError(t, f.Sync())
}

func TestFS_ExistsDirectory(t *testing.T) {
	fsys := NewInMemoryFS()
	require.NoError(t, fsys.WriteFile("dir/data.bin", []byte("12345"), 0o600))

	ok, err := fsys.Exists("dir")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fsys.Exists("other")
	require.NoError(t, err)
	assert.False(t, ok)
}
