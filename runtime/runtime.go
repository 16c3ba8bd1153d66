package runtime

import (
	"bytes"
	"io"

	"github.com/entropyio/go-malbolge/config"
	"github.com/entropyio/go-malbolge/logger"
)

var log = logger.NewLogger("[runtime]")

// Config is a basic type specifying certain configuration flags for running
// the MVM.
type Config struct {
	Machine *config.MachineConfig
	Input   io.Reader
	Output  io.Writer
}

// sets defaults on the config
func setDefaults(cfg *Config) {
	if cfg.Machine == nil {
		cfg.Machine = config.DefaultMachineConfig
	}
	if cfg.Input == nil {
		cfg.Input = bytes.NewReader(nil)
	}
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
}

// Execute loads code and runs it with input as standard input. It returns
// everything the program wrote, also when it failed.
//
// Execute ignores cfg.Input and cfg.Output; use Run to stream.
func Execute(code, input []byte, cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	out := new(bytes.Buffer)
	run := *cfg
	run.Input = bytes.NewReader(input)
	run.Output = out

	err := Run(code, &run)
	return out.Bytes(), err
}

// Run loads code and runs it against cfg.Input and cfg.Output until it halts.
func Run(code []byte, cfg *Config) error {
	if cfg == nil {
		cfg = new(Config)
	}
	setDefaults(cfg)

	machine, err := NewEnv(code, cfg)
	if err != nil {
		return err
	}
	log.Debugf("run machine:%s, code length:%d", cfg.Machine.Name, len(code))
	return machine.Run()
}
