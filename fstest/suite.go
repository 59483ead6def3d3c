// Package fstest provides a conformance test suite for fileio handles.
//
// Every backend a fileio.Handle can sit on (growable memory, fixed memory,
// any billy filesystem) must honor the same operation contracts. The suite
// checks those contracts through the public Handle API, so a new way of
// opening handles can be validated by running it against a factory.
//
// The factory must return a fresh, empty handle opened for reading and
// writing ("w+" or "w+mem" style) with room for at least 4 KiB.
//
// Example usage:
//
//	func TestMyHandles(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) *fileio.Handle {
//	        h, err := fileio.Open("suite", "w+mem")
//	        if err != nil {
//	            t.Fatalf("Open: %v", err)
//	        }
//	        return h
//	    })
//	}
package fstest

import (
	"io"
	"slices"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fileio"
)

// NewHandle returns a fresh, empty read-write handle.
type NewHandle func(t *testing.T) *fileio.Handle

// TestSuite runs all conformance tests against handles from newHandle.
// Each test gets its own handle and closes it when done.
func TestSuite(t *testing.T, newHandle NewHandle) {
	TestSuiteWithSkip(t, newHandle, nil)
}

// TestSuiteWithSkip runs conformance tests with optional test skipping.
// The skipTests parameter is a slice of group names to skip (e.g., "Seek").
// This is useful for backends with known behavioral differences, such as
// disk files, which may be positioned past their end.
func TestSuiteWithSkip(t *testing.T, newHandle NewHandle, skipTests []string) {
	groups := []struct {
		name string
		run  func(t *testing.T, newHandle NewHandle)
	}{
		{name: "Read", run: TestRead},
		{name: "Write", run: TestWrite},
		{name: "Seek", run: TestSeek},
		{name: "Lifecycle", run: TestLifecycle},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if slices.Contains(skipTests, g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			g.run(t, newHandle)
		})
	}
}

// open returns a handle from newHandle that is closed when the test ends.
func open(t *testing.T, newHandle NewHandle) *fileio.Handle {
	t.Helper()
	h := newHandle(t)
	t.Cleanup(func() {
		// Tests that close the handle themselves leave nothing to release.
		_ = h.Close()
	})
	return h
}

// fill writes data and rewinds.
func fill(t *testing.T, h *fileio.Handle, data []byte) {
	t.Helper()
	n, err := h.Write(data)
	if err != nil {
		t.Fatalf("Write(%q): setup failed: %v", data, err)
	}
	if n != len(data) {
		t.Fatalf("Write(%q): setup wrote %d bytes, want %d", data, n, len(data))
	}
	if _, err := h.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(0, start): setup failed: %v", err)
	}
}
