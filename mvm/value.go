package mvm

import (
	"fmt"

	"github.com/entropyio/go-malbolge/config"
)

// Value is a ten-trit ternary word. The zero Value is 0 and every method keeps
// the value inside [0, config.MaxValue].
type Value struct {
	val uint16
}

// pairWeights are the weights of the five two-trit groups of a Value.
var pairWeights = [5]uint16{1, 9, 81, 729, 6561}

// Zero returns the value 0.
func Zero() Value {
	return Value{}
}

// NewValue wraps n. It panics if n does not fit in ten trits.
func NewValue(n uint16) Value {
	if n > config.MaxValue {
		panic(fmt.Sprintf("mvm: value %d out of ternary range", n))
	}
	return Value{val: n}
}

// Uint16 returns the underlying integer.
func (v Value) Uint16() uint16 {
	return v.val
}

// Incr adds one, wrapping to 0 after config.MaxValue.
func (v *Value) Incr() {
	if v.val == config.MaxValue {
		v.val = 0
	} else {
		v.val++
	}
}

// Rotr rotates the trits one position right: the least significant trit
// becomes the most significant one.
func (v Value) Rotr() Value {
	return Value{val: config.HighTrit*(v.val%3) + v.val/3}
}

// Crazy applies the crazy operation with v as the first operand. The operation
// is neither commutative nor associative.
func (v Value) Crazy(other Value) Value {
	var res uint16
	for _, w := range pairWeights {
		res += w * crazyTable[other.val/w%9][v.val/w%9]
	}
	return Value{val: res}
}

// IsPrintable reports whether v encodes a printable instruction.
func (v Value) IsPrintable() bool {
	return config.IsPrintable(v.val)
}

// Encrypt returns the substitution of a printable value. The result is
// printable again. It panics on non-printable input.
func (v Value) Encrypt() Value {
	if !v.IsPrintable() {
		panic(fmt.Sprintf("mvm: cannot encrypt non-printable value %d", v.val))
	}
	return Value{val: uint16(encryptTable[v.val-config.MinInstruction])}
}

// Trits returns the base-3 digits, least significant first.
func (v Value) Trits() [config.TritCount]uint8 {
	var t [config.TritCount]uint8
	n := v.val
	for i := range t {
		t[i] = uint8(n % 3)
		n /= 3
	}
	return t
}

// String renders the value as ten trits, most significant first.
func (v Value) String() string {
	t := v.Trits()
	b := make([]byte, 0, len(t)+2)
	b = append(b, '0', 't')
	for i := len(t) - 1; i >= 0; i-- {
		b = append(b, '0'+t[i])
	}
	return string(b)
}
