package fileio_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/input-output-hk/catalyst-forge-libs/fileio"
	ferrors "github.com/input-output-hk/catalyst-forge-libs/fileio/errors"
)

func ExampleOpen_growable() {
	h, err := fileio.Open("report", "wmem")
	if err != nil {
		fmt.Println(err)
		return
	}
	_, _ = h.Printf("%s:%d\n", "frames", 42)
	_, _ = h.PutString("done")

	buf, err := h.TakeBuffer()
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = h.Close()

	fmt.Printf("%q\n", buf)
	// Output: "frames:42\ndone"
}

func ExampleOpen_fixedBuffer() {
	h, err := fileio.Open("header", "rb", fileio.WithBuffer([]byte("MAGIC\x01\x02")))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer func() { _ = h.Close() }()

	magic := make([]byte, 5)
	if _, err := h.Read(magic); err != nil {
		fmt.Println(err)
		return
	}
	pos, _ := h.Tell()
	fmt.Println(string(magic), pos)

	_, err = h.Read(make([]byte, 4))
	fmt.Println(errors.Is(err, io.EOF), h.IsEOF())
	// Output:
	// MAGIC 5
	// true true
}

func ExampleOpen_bufferFull() {
	buf := make([]byte, 4)
	h, err := fileio.Open("slot", "w", fileio.WithBuffer(buf))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer func() { _ = h.Close() }()

	n, err := h.PutString("overflow")
	fmt.Println(n, ferrors.IsBufferFull(err), h.HasError())
	fmt.Printf("%q\n", buf)
	// Output:
	// 4 true true
	// "over"
}
