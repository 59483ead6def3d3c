package fstest

import (
	"testing"

	ferrors "github.com/input-output-hk/catalyst-forge-libs/fileio/errors"
)

// TestLifecycle tests the error indicator and the closed state.
func TestLifecycle(t *testing.T, newHandle NewHandle) {
	t.Run("ClearError", func(t *testing.T) {
		testLifecycleClearError(t, newHandle)
	})
	t.Run("Closed", func(t *testing.T) {
		testLifecycleClosed(t, newHandle)
	})
}

// testLifecycleClearError sets and clears the error indicator.
func testLifecycleClearError(t *testing.T, newHandle NewHandle) {
	h := open(t, newHandle)
	if h.HasError() {
		t.Fatalf("HasError(): got true on a fresh handle, want false")
	}
	_, _ = h.Seek(0, -1)
	if !h.HasError() {
		t.Fatalf("HasError(): got false after failed seek, want true")
	}
	h.ClearError()
	if h.HasError() {
		t.Errorf("HasError(): got true after ClearError, want false")
	}
}

// testLifecycleClosed checks that every operation on a closed handle fails.
func testLifecycleClosed(t *testing.T, newHandle NewHandle) {
	h := newHandle(t)
	if err := h.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	checks := []struct {
		op  string
		err error
	}{
		{op: "Close", err: h.Close()},
		{op: "Read", err: second(h.Read(make([]byte, 1)))},
		{op: "Write", err: second(h.Write([]byte("x")))},
		{op: "Printf", err: second(h.Printf("x"))},
		{op: "PutChar", err: h.PutChar('x')},
		{op: "Seek", err: second(h.Seek(0, 0))},
		{op: "Tell", err: second(h.Tell())},
		{op: "Flush", err: h.Flush()},
	}
	for _, c := range checks {
		if !ferrors.IsClosed(c.err) {
			t.Errorf("%s() on closed handle: got error %v, want closed", c.op, c.err)
		}
	}
}

func second[T any](_ T, err error) error {
	return err
}
