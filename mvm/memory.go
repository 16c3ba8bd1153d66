package mvm

import (
	"encoding/binary"
	"fmt"

	"github.com/entropyio/go-malbolge/common"
	"github.com/entropyio/go-malbolge/common/crypto"
	"github.com/entropyio/go-malbolge/config"
	"github.com/entropyio/go-malbolge/logger"
	"github.com/op/go-logging"
)

var log = logger.NewLogger("[mvm]")

// Memory is the full address space of a machine.
type Memory struct {
	cells [config.MemorySize]Value
}

// Load validates source and builds the initial memory image from it.
//
// Whitespace is skipped. Every other byte must be a printable instruction whose
// selector at its position is defined. The cells after the program are filled
// with the crazy operation of the two preceding cells.
func Load(source []byte) (*Memory, error) {
	mem := new(Memory)

	n := 0
	for _, c := range source {
		if isSpace(c) {
			continue
		}
		if n >= config.MemorySize {
			return nil, ErrProgramTooLong
		}
		cell := Value{val: uint16(c)}
		if !cell.IsPrintable() || !Decode(cell, Value{val: uint16(n)}).IsValid() {
			return nil, fmt.Errorf("%w: %q at position %d", ErrMalformedProgram, c, n)
		}
		mem.cells[n] = cell
		n++
	}

	switch n {
	case 0:
		return nil, ErrEmptyProgram
	case 1:
		// The cell before the first one does not exist; treat it as zero.
		mem.cells[1] = mem.cells[0].Crazy(Zero())
		n++
	}
	for i := n; i < config.MemorySize; i++ {
		mem.cells[i] = mem.cells[i-1].Crazy(mem.cells[i-2])
	}

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("loaded program length:%d, image:%s", n, mem.Hash())
	}
	return mem, nil
}

// isSpace matches ASCII whitespace: space, \t, \n, \f and \r.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// Get returns the cell at addr.
func (m *Memory) Get(addr Value) Value {
	return m.cells[addr.val]
}

// Set stores v at addr.
func (m *Memory) Set(addr, v Value) {
	m.cells[addr.val] = v
}

// Len returns the number of cells, always config.MemorySize.
func (m *Memory) Len() int {
	return len(m.cells)
}

// Bytes serializes the image as big-endian 16-bit cells.
func (m *Memory) Bytes() []byte {
	buf := make([]byte, 2*len(m.cells))
	for i, c := range m.cells {
		binary.BigEndian.PutUint16(buf[2*i:], c.val)
	}
	return buf
}

// Hash returns the Keccak256 digest of the serialized image.
func (m *Memory) Hash() common.Hash {
	return crypto.Keccak256Hash(m.Bytes())
}
