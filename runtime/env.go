package runtime

import (
	"github.com/entropyio/go-malbolge/mvm"
)

// NewEnv loads code into a fresh machine wired to cfg's streams.
func NewEnv(code []byte, cfg *Config) (*mvm.Machine, error) {
	mem, err := mvm.Load(code)
	if err != nil {
		return nil, err
	}
	return mvm.NewMachine(mem, cfg.Input, cfg.Output, cfg.Machine), nil
}
