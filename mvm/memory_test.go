package mvm

import (
	"errors"
	"os"
	"testing"

	"github.com/entropyio/go-malbolge/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jumps returns a valid program of n JUMP instructions.
func jumps(n int) []byte {
	src := make([]byte, n)
	for i := range src {
		c := ((4-i)%config.OpcodeModulus + config.OpcodeModulus) % config.OpcodeModulus
		if c < config.MinInstruction {
			c += config.OpcodeModulus
		}
		src[i] = byte(c)
	}
	return src
}

func readProgram(t *testing.T, name string) []byte {
	t.Helper()
	src, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return src
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		err  error
	}{
		{"empty", nil, ErrEmptyProgram},
		{"whitespace", []byte(" \t\r\n\f "), ErrEmptyProgram},
		{"control", []byte{0x01}, ErrMalformedProgram},
		{"vertical tab", []byte("\vQ"), ErrMalformedProgram},
		{"high byte", []byte{0xc3}, ErrMalformedProgram},
		{"bad selector", []byte("~"), ErrMalformedProgram},
		{"bad second", []byte("QQ"), ErrMalformedProgram},
		{"too long", jumps(config.MemorySize + 1), ErrProgramTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, err := Load(tt.src)
			assert.Nil(t, mem)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}

func TestLoadMalformedPosition(t *testing.T) {
	_, err := Load([]byte("(= <~"))
	require.Error(t, err)
	assert.Equal(t, `malformed program: '~' at position 3`, err.Error())
}

func TestLoadFullLength(t *testing.T) {
	mem, err := Load(jumps(config.MemorySize))
	require.NoError(t, err)
	assert.Equal(t, uint16(82), mem.Get(NewValue(config.MaxValue)).Uint16())
}

func TestLoadSingleInstruction(t *testing.T) {
	mem, err := Load([]byte("Q"))
	require.NoError(t, err)
	require.Equal(t, config.MemorySize, mem.Len())

	want := []uint16{81, 29443, 81, 29443}
	for i, w := range want {
		assert.Equal(t, w, mem.Get(NewValue(uint16(i))).Uint16(), "cell %d", i)
	}
	assert.Equal(t, NewValue('Q').Crazy(Zero()), mem.Get(NewValue(1)))
	assert.Equal(t, uint16(81), mem.Get(NewValue(config.MaxValue)).Uint16())
}

func TestLoadDenormalize(t *testing.T) {
	mem, err := Load([]byte("(=<"))
	require.NoError(t, err)

	want := []uint16{40, 61, 60, 29524, 60, 29554}
	for i, w := range want {
		assert.Equal(t, w, mem.Get(NewValue(uint16(i))).Uint16(), "cell %d", i)
	}
	for i := 3; i < config.MemorySize; i++ {
		a := mem.Get(NewValue(uint16(i - 1)))
		b := mem.Get(NewValue(uint16(i - 2)))
		require.Equal(t, a.Crazy(b), mem.Get(NewValue(uint16(i))), "cell %d", i)
	}
}

func TestLoadSkipsWhitespace(t *testing.T) {
	plain, err := Load([]byte("(=<"))
	require.NoError(t, err)
	spaced, err := Load([]byte(" (\n=\t<\r\n"))
	require.NoError(t, err)
	assert.Equal(t, plain.Hash(), spaced.Hash())
}

func TestLoadDeterministic(t *testing.T) {
	src := readProgram(t, "hello.mb")
	a, err := Load(src)
	require.NoError(t, err)
	b, err := Load(src)
	require.NoError(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.Equal(t, a.Hash(), b.Hash())

	other, err := Load([]byte("Q"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Hash(), other.Hash())
}

func TestMemoryBytes(t *testing.T) {
	mem, err := Load([]byte("Q"))
	require.NoError(t, err)

	b := mem.Bytes()
	require.Len(t, b, 2*config.MemorySize)
	assert.Equal(t, []byte{0x00, 0x51, 0x73, 0x03}, b[:4]) // 81, 29443
}

func TestMemorySet(t *testing.T) {
	mem, err := Load([]byte("Q"))
	require.NoError(t, err)
	before := mem.Hash()

	mem.Set(NewValue(7), NewValue(config.MaxValue))
	assert.Equal(t, NewValue(config.MaxValue), mem.Get(NewValue(7)))
	assert.NotEqual(t, before, mem.Hash())
}
