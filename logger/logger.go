// Package logger wires the module-scoped loggers of every package to one
// shared go-logging backend on stderr.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module} %{shortfile} > %{message}`,
)

var backend logging.LeveledBackend

func init() {
	out := logging.NewLogBackend(os.Stderr, "", 0)
	backend = logging.SetBackend(logging.NewBackendFormatter(out, format))
	backend.SetLevel(logging.WARNING, "")
}

// NewLogger returns the logger for the given module, e.g. "[mvm]".
func NewLogger(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel changes the level of every module. Accepted names are the
// go-logging ones: CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG.
func SetLevel(name string) error {
	level, err := logging.LogLevel(name)
	if err != nil {
		return err
	}
	backend.SetLevel(level, "")
	return nil
}

// Level reports the current level shared by all modules.
func Level() logging.Level {
	return backend.GetLevel("")
}
