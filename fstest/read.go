package fstest

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// TestRead tests Read and ReadItems: whole reads, short reads at end of
// data, element truncation and the end-of-data indicator.
func TestRead(t *testing.T, newHandle NewHandle) {
	t.Run("ReadAll", func(t *testing.T) {
		testReadAll(t, newHandle)
	})
	t.Run("ShortRead", func(t *testing.T) {
		testReadShort(t, newHandle)
	})
	t.Run("Items", func(t *testing.T) {
		testReadItems(t, newHandle)
	})
	t.Run("EmptyRead", func(t *testing.T) {
		testReadEmpty(t, newHandle)
	})
}

// testReadAll reads exactly the contents and checks EOF afterwards.
func testReadAll(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	content := []byte("This is a test.")
	fill(t, h, content)

	data := make([]byte, len(content))
	n, err := h.Read(data)
	if err != nil {
		t.Errorf("Read(): got error %v, want nil", err)
		return
	}
	if n != len(content) {
		t.Errorf("Read(): read %d bytes, want %d", n, len(content))
	}
	if !bytes.Equal(data, content) {
		t.Errorf("Read(): got %q, want %q", data, content)
	}

	// A disk handle learns about the end only by trying to read past it.
	n, err = h.Read(make([]byte, 1))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read() past end: got (%d, %v), want (0, EOF)", n, err)
	}
	if !h.IsEOF() {
		t.Errorf("IsEOF(): got false after reading past end, want true")
	}
	if h.HasError() {
		t.Errorf("HasError(): got true after end of data, want false")
	}
}

// testReadShort requests more than is available.
func testReadShort(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	fill(t, h, []byte("abc"))

	data := make([]byte, 10)
	n, err := h.Read(data)
	if !errors.Is(err, io.EOF) {
		t.Errorf("Read(10): got error %v, want EOF", err)
	}
	if n != 3 || string(data[:n]) != "abc" {
		t.Errorf("Read(10): got %q, want %q", data[:n], "abc")
	}
	if !h.IsEOF() {
		t.Errorf("IsEOF(): got false after short read, want true")
	}
}

// testReadItems checks element counting and partial element truncation.
func testReadItems(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	fill(t, h, []byte("0123456789"))

	dst := make([]byte, 12)
	n, err := h.ReadItems(dst, 4, 2)
	if err != nil {
		t.Errorf("ReadItems(4, 2): got error %v, want nil", err)
	}
	if n != 2 || string(dst[:8]) != "01234567" {
		t.Errorf("ReadItems(4, 2): got %d items %q, want 2 items %q", n, dst[:8], "01234567")
	}

	// Two bytes remain: not a whole 4-byte element.
	n, err = h.ReadItems(dst, 4, 3)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadItems(4, 3) at tail: got (%d, %v), want (0, EOF)", n, err)
	}

	pos, err := h.Tell()
	if err != nil {
		t.Errorf("Tell(): got error %v, want nil", err)
	}
	if pos != 10 {
		t.Errorf("Tell(): got %d after partial element, want 10", pos)
	}

	if _, err := h.ReadItems(make([]byte, 3), 2, 2); err == nil {
		t.Errorf("ReadItems with short dst: got nil error, want invalid input")
	}
}

// testReadEmpty reads from an empty handle.
func testReadEmpty(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)

	n, err := h.ReadItems(make([]byte, 1), 1, 1)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadItems on empty: got (%d, %v), want (0, EOF)", n, err)
	}
	if n, err := h.Read(nil); n != 0 || err != nil {
		t.Errorf("Read(nil): got (%d, %v), want (0, nil)", n, err)
	}
}
