package mvm

import (
	"fmt"

	"github.com/entropyio/go-malbolge/config"
)

// OpCode is an instruction selector: (cell + address) mod 94.
type OpCode byte

const (
	JUMP OpCode = 4
	OUT  OpCode = 5
	IN   OpCode = 23
	ROT  OpCode = 39
	MOVD OpCode = 40
	CRZ  OpCode = 62
	NOP  OpCode = 68
	HALT OpCode = 81
)

var opCodeToString = map[OpCode]string{
	JUMP: "JUMP",
	OUT:  "OUT",
	IN:   "IN",
	ROT:  "ROT",
	MOVD: "MOVD",
	CRZ:  "CRZ",
	NOP:  "NOP",
	HALT: "HALT",
}

// validOps marks the selectors a program text may contain.
var validOps [config.OpcodeModulus]bool

func init() {
	for op := range opCodeToString {
		validOps[op] = true
	}
}

// Decode returns the selector of cell when fetched from addr.
func Decode(cell, addr Value) OpCode {
	return OpCode((uint32(cell.val) + uint32(addr.val)) % config.OpcodeModulus)
}

// IsValid reports whether op is one of the eight defined selectors.
func (op OpCode) IsValid() bool {
	return int(op) < len(validOps) && validOps[op]
}

func (op OpCode) String() string {
	if s, ok := opCodeToString[op]; ok {
		return s
	}
	return fmt.Sprintf("opcode %d not defined", int(op))
}
