package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, 59048, MaxValue)
	assert.Equal(t, 94, int(OpcodeModulus))
	assert.Equal(t, MemorySize, HighTrit*3)
}

func TestIsPrintable(t *testing.T) {
	assert.False(t, IsPrintable(32))
	assert.True(t, IsPrintable(33))
	assert.True(t, IsPrintable(126))
	assert.False(t, IsPrintable(127))
	assert.False(t, IsPrintable(MaxValue))
}

func TestLookupMachineConfig(t *testing.T) {
	mc, err := LookupMachineConfig("reference")
	require.NoError(t, err)
	assert.True(t, mc.EncryptJumpTarget)

	mc.StepLimit = 10
	assert.Zero(t, ReferenceMachineConfig.StepLimit, "presets must not be shared")

	_, err = LookupMachineConfig("unshackled")
	assert.Error(t, err)
}

func TestMachineConfigString(t *testing.T) {
	s := DefaultMachineConfig.String()
	assert.Contains(t, s, "Machine:    default")
	assert.Contains(t, s, "Encryption: fetched instruction")
	assert.Contains(t, s, "Step limit: none")

	mc := &MachineConfig{EncryptJumpTarget: true, StepLimit: 42}
	s = mc.String()
	assert.Contains(t, s, "Machine:    custom")
	assert.Contains(t, s, "Encryption: jump target")
	assert.Contains(t, s, "Step limit: 42")
}
