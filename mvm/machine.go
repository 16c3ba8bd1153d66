package mvm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/entropyio/go-malbolge/config"
)

// Machine executes a memory image. It is not safe for concurrent use.
type Machine struct {
	cfg *config.MachineConfig
	mem *Memory

	in  *bufio.Reader
	out *bufio.Writer

	acc, cp, dp Value

	steps  uint64
	halted bool
}

// NewMachine returns a machine with all registers at zero. A nil in behaves as
// an exhausted stream and a nil out discards output.
func NewMachine(mem *Memory, in io.Reader, out io.Writer, cfg *config.MachineConfig) *Machine {
	if in == nil {
		in = bytes.NewReader(nil)
	}
	if out == nil {
		out = io.Discard
	}
	if cfg == nil {
		cfg = config.DefaultMachineConfig
	}
	return &Machine{
		cfg: cfg,
		mem: mem,
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

// Run steps until the program halts or fails. Pending output is flushed in
// both cases.
func (m *Machine) Run() (err error) {
	defer func() {
		if ferr := m.out.Flush(); err == nil {
			err = ferr
		}
	}()

	for !m.halted {
		if limit := m.cfg.StepLimit; limit > 0 && m.steps >= limit {
			log.Debugf("step limit %d reached at cp:%d", limit, m.cp.val)
			return ErrStepLimit
		}
		if err := m.Step(); err != nil {
			return err
		}
	}
	log.Debugf("halted after %d steps", m.steps)
	return nil
}

// Step executes a single instruction. It does nothing once halted.
func (m *Machine) Step() error {
	if m.halted {
		return nil
	}

	op := m.mem.Get(m.cp)
	if !op.IsPrintable() {
		return m.fault(m.cp, op)
	}

	target := m.cp
	switch Decode(op, m.cp) {
	case JUMP:
		m.cp = m.mem.Get(m.dp)
		if next := m.mem.Get(m.cp); !next.IsPrintable() {
			return m.fault(m.cp, next)
		}
		if m.cfg.EncryptJumpTarget {
			target = m.cp
		}
	case OUT:
		if err := m.out.WriteByte(byte(m.acc.val)); err != nil {
			return err
		}
	case IN:
		v, err := m.readInput()
		if err != nil {
			return err
		}
		m.acc = v
	case ROT:
		m.acc = m.mem.Get(m.dp).Rotr()
		m.mem.Set(m.dp, m.acc)
	case MOVD:
		m.dp = m.mem.Get(m.dp)
	case CRZ:
		m.acc = m.acc.Crazy(m.mem.Get(m.dp))
		m.mem.Set(m.dp, m.acc)
	case HALT:
		m.halted = true
		m.steps++
		return nil
	}

	cell := m.mem.Get(target)
	if !cell.IsPrintable() {
		return m.fault(target, cell)
	}
	m.mem.Set(target, cell.Encrypt())

	m.cp.Incr()
	m.dp.Incr()
	m.steps++
	return nil
}

// readInput flushes pending output first so prompts appear before blocking.
func (m *Machine) readInput() (Value, error) {
	if err := m.out.Flush(); err != nil {
		return Value{}, err
	}
	b, err := m.in.ReadByte()
	if err == io.EOF {
		return Value{val: config.EOFValue}, nil
	}
	if err != nil {
		return Value{}, fmt.Errorf("reading input: %w", err)
	}
	return Value{val: uint16(b)}, nil
}

func (m *Machine) fault(addr, cell Value) error {
	log.Debugf("runtime fault at cp:%d, cell:%d, steps:%d", addr.val, cell.val, m.steps)
	return &RuntimeError{CP: addr, Cell: cell}
}

// Flush writes buffered output to the underlying writer.
func (m *Machine) Flush() error {
	return m.out.Flush()
}

// Registers returns the accumulator, code pointer and data pointer.
func (m *Machine) Registers() (acc, cp, dp Value) {
	return m.acc, m.cp, m.dp
}

// Memory returns the image being executed.
func (m *Machine) Memory() *Memory {
	return m.mem
}

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Halted reports whether the halt instruction has run.
func (m *Machine) Halted() bool {
	return m.halted
}
