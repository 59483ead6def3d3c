package fileio

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/input-output-hk/catalyst-forge-libs/fileio/errors"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		mode     string
		access   Access
		update   bool
		binary   bool
		memory   bool
		readable bool
		writable bool
		flag     int
	}{
		{mode: "r", access: AccessRead, readable: true, flag: os.O_RDONLY},
		{mode: "rb", access: AccessRead, binary: true, readable: true, flag: os.O_RDONLY},
		{mode: "rt", access: AccessRead, readable: true, flag: os.O_RDONLY},
		{mode: "r+", access: AccessRead, update: true, readable: true, writable: true, flag: os.O_RDWR},
		{mode: "rb+", access: AccessRead, update: true, binary: true, readable: true, writable: true, flag: os.O_RDWR},
		{mode: "w", access: AccessWrite, writable: true, flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
		{mode: "w+", access: AccessWrite, update: true, readable: true, writable: true, flag: os.O_RDWR | os.O_CREATE | os.O_TRUNC},
		{mode: "a", access: AccessAppend, writable: true, flag: os.O_WRONLY | os.O_CREATE | os.O_APPEND},
		{mode: "a+b", access: AccessAppend, update: true, binary: true, readable: true, writable: true, flag: os.O_RDWR | os.O_CREATE | os.O_APPEND},
		{mode: "wmem", access: AccessWrite, memory: true, writable: true, flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
		{mode: "wbmem", access: AccessWrite, binary: true, memory: true, writable: true, flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
		{mode: "w+mem", access: AccessWrite, update: true, memory: true, readable: true, writable: true, flag: os.O_RDWR | os.O_CREATE | os.O_TRUNC},
		{mode: "rmem", access: AccessRead, memory: true, readable: true, flag: os.O_RDONLY},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			m, err := ParseMode(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.access, m.Access)
			assert.Equal(t, tt.update, m.Update)
			assert.Equal(t, tt.binary, m.Binary)
			assert.Equal(t, tt.memory, m.Memory)
			assert.Equal(t, tt.readable, m.Readable())
			assert.Equal(t, tt.writable, m.Writable())
			assert.Equal(t, tt.flag, m.Flag())
			assert.Equal(t, tt.mode, m.String())
		})
	}
}

func TestParseModeExclusive(t *testing.T) {
	m, err := ParseMode("wx")
	require.NoError(t, err)
	assert.True(t, m.Exclusive)
	assert.Equal(t, os.O_WRONLY|os.O_CREATE|os.O_TRUNC|os.O_EXCL, m.Flag())

	_, err = ParseMode("rx")
	assert.ErrorIs(t, err, ferrors.ErrInvalidMode)
}

func TestParseModeInvalid(t *testing.T) {
	for _, mode := range []string{"", "x", "+r", "rw", "r+q", "wme", "memw"} {
		t.Run(mode, func(t *testing.T) {
			_, err := ParseMode(mode)
			assert.ErrorIs(t, err, ferrors.ErrInvalidMode)
		})
	}
}

func TestAccessString(t *testing.T) {
	assert.Equal(t, "r", AccessRead.String())
	assert.Equal(t, "w", AccessWrite.String())
	assert.Equal(t, "a", AccessAppend.String())
	assert.Equal(t, "Access(9)", Access(9).String())
}

func TestItemBytes(t *testing.T) {
	n, ok := itemBytes(4, 3, 12)
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = itemBytes(4, 4, 12)
	assert.False(t, ok)

	_, ok = itemBytes(math.MaxInt, 2, 1<<20)
	assert.False(t, ok, "overflowing products must be rejected")
}
