package config

import (
	"fmt"
)

var (
	// DefaultMachineConfig re-encrypts the instruction that was just fetched,
	// including after a jump.
	DefaultMachineConfig = &MachineConfig{
		Name:              "default",
		EncryptJumpTarget: false,
	}

	// ReferenceMachineConfig re-encrypts the cell a jump lands on instead of
	// the jump itself, matching the classic interpreter.
	ReferenceMachineConfig = &MachineConfig{
		Name:              "reference",
		EncryptJumpTarget: true,
	}
)

// MachineNames are user friendly names to use in the machine banner.
var MachineNames = map[string]*MachineConfig{
	DefaultMachineConfig.Name:   DefaultMachineConfig,
	ReferenceMachineConfig.Name: ReferenceMachineConfig,
}

// MachineConfig determines how a machine executes a loaded image.
type MachineConfig struct {
	Name string `json:"name"`

	// EncryptJumpTarget selects which cell the post-step encryption hits after
	// a jump: false keeps the jump instruction's own cell, true the new cp.
	EncryptJumpTarget bool `json:"encryptJumpTarget,omitempty"`

	// StepLimit bounds the number of executed instructions (0 = unlimited).
	StepLimit uint64 `json:"stepLimit,omitempty"`
}

// Copy returns an independent copy, so callers may tweak presets.
func (mc *MachineConfig) Copy() *MachineConfig {
	cpy := *mc
	return &cpy
}

// String implements the fmt.Stringer interface.
func (mc *MachineConfig) String() string {
	var banner string

	name := mc.Name
	if name == "" {
		name = "custom"
	}
	banner += fmt.Sprintf("Machine:    %s\n", name)
	banner += fmt.Sprintf("Memory:     %d cells of %d trits\n", MemorySize, TritCount)
	if mc.EncryptJumpTarget {
		banner += "Encryption: jump target\n"
	} else {
		banner += "Encryption: fetched instruction\n"
	}
	if mc.StepLimit == 0 {
		banner += "Step limit: none"
	} else {
		banner += fmt.Sprintf("Step limit: %d", mc.StepLimit)
	}
	return banner
}

// LookupMachineConfig returns a copy of the named preset.
func LookupMachineConfig(name string) (*MachineConfig, error) {
	mc, ok := MachineNames[name]
	if !ok {
		return nil, fmt.Errorf("unknown machine %q", name)
	}
	return mc.Copy(), nil
}
