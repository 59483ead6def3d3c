package fstest

import (
	"bytes"
	"io"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fileio"
)

// TestWrite tests Write, WriteItems, Printf, PutChar, PutString and Flush.
// Written data is verified by seeking back and reading it.
func TestWrite(t *testing.T, newHandle NewHandle) {
	t.Run("Write", func(t *testing.T) {
		testWriteBytes(t, newHandle)
	})
	t.Run("Items", func(t *testing.T) {
		testWriteItems(t, newHandle)
	})
	t.Run("Formatted", func(t *testing.T) {
		testWriteFormatted(t, newHandle)
	})
	t.Run("Overwrite", func(t *testing.T) {
		testWriteOverwrite(t, newHandle)
	})
	t.Run("Flush", func(t *testing.T) {
		testWriteFlush(t, newHandle)
	})
}

// readBack rewinds h and returns everything up to the end of data.
func readBack(t *testing.T, h *fileio.Handle) []byte {
	t.Helper()
	if _, err := h.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(0, start): got error %v, want nil", err)
	}
	data, err := io.ReadAll(h)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	return data
}

// testWriteBytes writes in several calls and verifies the concatenation.
func testWriteBytes(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)

	parts := [][]byte{[]byte("This "), []byte("is a "), []byte("test.")}
	var want bytes.Buffer
	for _, p := range parts {
		n, err := h.Write(p)
		if err != nil {
			t.Fatalf("Write(%q): got error %v, want nil", p, err)
		}
		if n != len(p) {
			t.Errorf("Write(%q): wrote %d bytes, want %d", p, n, len(p))
		}
		want.Write(p)
	}

	if got := readBack(t, h); !bytes.Equal(got, want.Bytes()) {
		t.Errorf("contents: got %q, want %q", got, want.Bytes())
	}
	if h.HasError() {
		t.Errorf("HasError(): got true, want false")
	}
}

// testWriteItems writes whole elements.
func testWriteItems(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)

	src := []byte("aabbccdd")
	n, err := h.WriteItems(src, 2, 3)
	if err != nil {
		t.Fatalf("WriteItems(2, 3): got error %v, want nil", err)
	}
	if n != 3 {
		t.Errorf("WriteItems(2, 3): wrote %d items, want 3", n)
	}
	if got := readBack(t, h); string(got) != "aabbcc" {
		t.Errorf("contents: got %q, want %q", got, "aabbcc")
	}

	if _, err := h.WriteItems(src, 3, 3); err == nil {
		t.Errorf("WriteItems with short src: got nil error, want invalid input")
	}
}

// testWriteFormatted covers Printf, PutChar and PutString.
func testWriteFormatted(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)

	n, err := h.Printf("%s=%d;", "answer", 42)
	if err != nil {
		t.Fatalf("Printf(): got error %v, want nil", err)
	}
	if n != len("answer=42;") {
		t.Errorf("Printf(): wrote %d bytes, want %d", n, len("answer=42;"))
	}
	if err := h.PutChar('['); err != nil {
		t.Fatalf("PutChar(): got error %v, want nil", err)
	}
	if n, err := h.PutString("xml"); err != nil || n != 3 {
		t.Fatalf("PutString(): got (%d, %v), want (3, nil)", n, err)
	}
	if err := h.PutChar(']'); err != nil {
		t.Fatalf("PutChar(): got error %v, want nil", err)
	}

	if got := readBack(t, h); string(got) != "answer=42;[xml]" {
		t.Errorf("contents: got %q, want %q", got, "answer=42;[xml]")
	}
}

// testWriteOverwrite rewrites bytes in the middle without changing the length.
func testWriteOverwrite(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	fill(t, h, []byte("hello world"))

	if _, err := h.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek(6, start): got error %v, want nil", err)
	}
	if _, err := h.Write([]byte("WORLD")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if got := readBack(t, h); string(got) != "hello WORLD" {
		t.Errorf("contents: got %q, want %q", got, "hello WORLD")
	}
}

// testWriteFlush flushes after writing; every backend reports success.
func testWriteFlush(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	if _, err := h.Write([]byte("flushed")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := h.Flush(); err != nil {
		t.Errorf("Flush(): got error %v, want nil", err)
	}
	if got := readBack(t, h); string(got) != "flushed" {
		t.Errorf("contents: got %q, want %q", got, "flushed")
	}
}
