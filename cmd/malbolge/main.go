// Command malbolge runs a Malbolge program read from a file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/entropyio/go-malbolge/config"
	"github.com/entropyio/go-malbolge/logger"
	"github.com/entropyio/go-malbolge/mvm"
	"github.com/entropyio/go-malbolge/runtime"
)

var log = logger.NewLogger("[malbolge]")

func main() {
	prog := filepath.Base(os.Args[0])
	os.Exit(run(prog, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(stderr)
	reference := flags.Bool("reference", false, "Encrypt the cell a jump lands on instead of the jump itself")
	maxSteps := flags.Uint64("maxsteps", 0, "Stop after this many instructions (0 = unlimited)")
	logLevel := flags.String("loglevel", "WARNING", "Log level: CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG")
	hashOnly := flags.Bool("hash", false, "Print the Keccak256 digest of the loaded memory image and exit")
	printConfig := flags.Bool("v", false, "Print the machine configuration before running")

	usage := func() {
		fmt.Fprintf(stderr, "Usage: %s <file>\n", prog)
	}
	flags.Usage = func() {
		usage()
		fmt.Fprintf(stderr, "\nOptions:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flags.NArg() != 1 {
		usage()
		return 1
	}
	if err := logger.SetLevel(*logLevel); err != nil {
		fmt.Fprintf(stderr, "Invalid log level %q: %v\n", *logLevel, err)
		return 1
	}

	code, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *hashOnly {
		mem, err := mvm.Load(code)
		if err != nil {
			fmt.Fprintln(stderr, diagnostic(err))
			return 1
		}
		fmt.Fprintln(stdout, mem.Hash().Hex())
		return 0
	}

	name := config.DefaultMachineConfig.Name
	if *reference {
		name = config.ReferenceMachineConfig.Name
	}
	machine, err := config.LookupMachineConfig(name)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	machine.StepLimit = *maxSteps
	if *printConfig {
		fmt.Fprintln(stderr, machine)
	}

	cfg := &runtime.Config{
		Machine: machine,
		Input:   stdin,
		Output:  stdout,
	}
	if err := runtime.Run(code, cfg); err != nil {
		log.Debugf("%s: %v", flags.Arg(0), err)
		fmt.Fprintln(stderr, diagnostic(err))
		return 1
	}
	return 0
}

// diagnostic maps err to the message shown to the user.
func diagnostic(err error) string {
	switch {
	case errors.Is(err, mvm.ErrProgramTooLong):
		return "Program too long."
	case errors.Is(err, mvm.ErrMalformedProgram):
		return "Malformed program."
	case errors.Is(err, mvm.ErrEmptyProgram):
		return "Empty programs not allowed."
	case errors.Is(err, mvm.ErrRuntime):
		return "Runtime error."
	case errors.Is(err, mvm.ErrStepLimit):
		return "Step limit reached."
	}
	return err.Error()
}
