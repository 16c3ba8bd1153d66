package config

// Machine geometry. A cell holds ten trits, so the address space and the value
// range coincide.
const (
	TritCount  = 10
	MemorySize = 59049 // 3^10
	MaxValue   = MemorySize - 1
	HighTrit   = 19683 // 3^9, weight of the most significant trit

	// EOFValue is loaded into the accumulator when input is exhausted.
	EOFValue = MaxValue
)

// Instructions are printable ASCII characters.
const (
	MinInstruction = '!'
	MaxInstruction = '~'
	OpcodeModulus  = MaxInstruction - MinInstruction + 1 // 94
)

// IsPrintable reports whether v may be fetched as an instruction.
func IsPrintable(v uint16) bool {
	return v >= MinInstruction && v <= MaxInstruction
}
