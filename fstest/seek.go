package fstest

import (
	"io"
	"testing"
)

// TestSeek tests Seek and Tell within [0, length] for every origin.
func TestSeek(t *testing.T, newHandle NewHandle) {
	t.Run("SeekTell", func(t *testing.T) {
		testSeekTell(t, newHandle)
	})
	t.Run("Origins", func(t *testing.T) {
		testSeekOrigins(t, newHandle)
	})
	t.Run("ClearsEOF", func(t *testing.T) {
		testSeekClearsEOF(t, newHandle)
	})
	t.Run("InvalidWhence", func(t *testing.T) {
		testSeekInvalidWhence(t, newHandle)
	})
}

// testSeekTell checks that Tell reports every offset Seek moved to.
func testSeekTell(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	content := []byte("0123456789")
	fill(t, h, content)

	for k := int64(0); k <= int64(len(content)); k++ {
		pos, err := h.Seek(k, io.SeekStart)
		if err != nil {
			t.Errorf("Seek(%d, start): got error %v, want nil", k, err)
			continue
		}
		if pos != k {
			t.Errorf("Seek(%d, start): got %d, want %d", k, pos, k)
		}
		tell, err := h.Tell()
		if err != nil {
			t.Errorf("Tell(): got error %v, want nil", err)
			continue
		}
		if tell != k {
			t.Errorf("Tell() after Seek(%d): got %d, want %d", k, tell, k)
		}
	}
}

// testSeekOrigins checks relative and end-based seeks and reading after them.
func testSeekOrigins(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	fill(t, h, []byte("0123456789"))

	tests := []struct {
		name   string
		offset int64
		whence int
		want   int64
		next   byte
	}{
		{name: "start", offset: 3, whence: io.SeekStart, want: 3, next: '3'},
		{name: "current forward", offset: 2, whence: io.SeekCurrent, want: 6, next: '6'},
		{name: "current backward", offset: -5, whence: io.SeekCurrent, want: 2, next: '2'},
		{name: "end", offset: -1, whence: io.SeekEnd, want: 9, next: '9'},
	}

	for _, tt := range tests {
		pos, err := h.Seek(tt.offset, tt.whence)
		if err != nil {
			t.Errorf("%s: Seek(%d, %d): got error %v, want nil", tt.name, tt.offset, tt.whence, err)
			return
		}
		if pos != tt.want {
			t.Errorf("%s: Seek(%d, %d): got %d, want %d", tt.name, tt.offset, tt.whence, pos, tt.want)
		}
		b := make([]byte, 1)
		if _, err := h.Read(b); err != nil {
			t.Errorf("%s: Read(): got error %v, want nil", tt.name, err)
			return
		}
		if b[0] != tt.next {
			t.Errorf("%s: Read(): got %q, want %q", tt.name, b[0], tt.next)
		}
	}

	end, err := h.Seek(0, io.SeekEnd)
	if err != nil || end != 10 {
		t.Errorf("Seek(0, end): got (%d, %v), want (10, nil)", end, err)
	}
}

// testSeekClearsEOF rewinds after hitting end of data.
func testSeekClearsEOF(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	fill(t, h, []byte("ab"))

	if _, err := io.ReadAll(h); err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	if !h.IsEOF() {
		t.Errorf("IsEOF(): got false at end, want true")
	}
	if _, err := h.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(0, start): got error %v, want nil", err)
	}
	if h.IsEOF() {
		t.Errorf("IsEOF(): got true after rewind, want false")
	}
}

// testSeekInvalidWhence uses an origin that does not exist.
func testSeekInvalidWhence(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	if _, err := h.Seek(0, 42); err == nil {
		t.Errorf("Seek(0, 42): got nil error, want invalid whence")
	}
	if !h.HasError() {
		t.Errorf("HasError(): got false after invalid seek, want true")
	}
}
