package fileio_test

import (
	"embed"
	"io"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/fileio"
	ferrors "github.com/input-output-hk/catalyst-forge-libs/fileio/errors"
)

//go:embed testdata/*
var testdataFS embed.FS

func TestOpenFS_Embedded(t *testing.T) {
	h, err := fileio.OpenFS(testdataFS, "testdata/scene.xml")
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	assert.Equal(t, fileio.BackendMemory, h.Backend())
	assert.Equal(t, "testdata/scene.xml", h.Name())

	data, err := io.ReadAll(h)
	require.NoError(t, err)
	want, err := testdataFS.ReadFile("testdata/scene.xml")
	require.NoError(t, err)
	assert.Equal(t, want, data)
	assert.True(t, h.IsEOF())

	// The loaded resource is read-only.
	_, err = h.PutString("<extra/>")
	assert.ErrorIs(t, err, ferrors.ErrNotWritable)
}

func TestOpenFS_NestedFile(t *testing.T) {
	h, err := fileio.OpenFS(testdataFS, "testdata/models/cube.obj")
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	line := make([]byte, 8)
	n, err := h.ReadItems(line, 1, len(line))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "v 0 0 0\n", string(line))
}

func TestOpenFS_EmptyFile(t *testing.T) {
	h, err := fileio.OpenFS(testdataFS, "testdata/empty.txt")
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	assert.Equal(t, fileio.BackendMemory, h.Backend())
	assert.True(t, h.IsEOF())
	n, err := h.Read(make([]byte, 1))
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenFS_Missing(t *testing.T) {
	h, err := fileio.OpenFS(testdataFS, "testdata/missing.xml")
	assert.Nil(t, h)
	assert.True(t, ferrors.IsNotFound(err), "got %v", err)
}

func TestOpenFS_MapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"config/app.ini": &fstest.MapFile{Data: []byte("[core]\nname=demo\n")},
	}

	h, err := fileio.OpenFS(fsys, "config/app.ini")
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	_, err = h.Seek(7, io.SeekStart)
	require.NoError(t, err)
	rest, err := io.ReadAll(h)
	require.NoError(t, err)
	assert.Equal(t, "name=demo\n", string(rest))
}

func TestOpenFS_KeepsCallerOptions(t *testing.T) {
	opts := make([]fileio.Option, 1, 4)
	opts[0] = fileio.WithInitialCapacity(16)

	h, err := fileio.OpenFS(testdataFS, "testdata/scene.xml", opts...)
	require.NoError(t, err)
	require.NoError(t, h.Close())

	assert.Nil(t, opts[:cap(opts)][1], "spare capacity of the caller's options must stay untouched")
}
