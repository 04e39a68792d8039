package maincmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ipp22/interpreter/internal/config"
	"github.com/ipp22/interpreter/lang/engine"
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/loader"
	"github.com/mna/mainer"
)

const binName = "ippcode22"

var longUsage = fmt.Sprintf(`usage: %s --source=PATH | --input=PATH [other flags]
       %[1]s -h|--help

Interpreter for IPPcode22, a three-address XML instruction set executed
against frame, stack and label-based runtime state.

Valid flag options are:
       -h --help                 Show this help and exit.
       --source=PATH             Read the XML program from PATH (else
                                 from standard input).
       --input=PATH              Read program input from PATH (else
                                 from standard input).

At least one of --source or --input is required.
`, binName)

// Cmd is the command-line surface of the interpreter, parsed and
// dispatched through github.com/mna/mainer the same way the teacher's own
// command parses and dispatches its phase subcommands.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help   bool   `flag:"h,help"`
	Source string `flag:"source"`
	Input  string `flag:"input"`

	flags map[string]bool
}

func (c *Cmd) SetArgs(args []string) {}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

// Validate enforces the CLI-misuse rules from the external-interfaces
// contract: --help combined with anything else, or neither --source nor
// --input given, are both exit code 10.
func (c *Cmd) Validate() error {
	if c.Help {
		if c.flags["source"] || c.flags["input"] {
			return fmt.Errorf("--help cannot be combined with other flags")
		}
		return nil
	}
	if !c.flags["source"] && !c.flags["input"] {
		return fmt.Errorf("at least one of --source or --input must be given")
	}
	return nil
}

// Main parses flags, opens the named files (or falls back to stdin),
// loads the XML program, runs it, and maps the outcome to a process exit
// code.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   true,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n", err)
		return mainer.ExitCode(10)
	}

	if c.Help {
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.ExitCode(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid configuration: %s\n", err)
		return mainer.ExitCode(10)
	}

	sourceR, closeSource, err := openOrStdin(c.Source, stdio.Stdin)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.ExitCode(11)
	}
	defer closeSource()

	inputR, closeInput, err := openOrStdin(c.Input, stdio.Stdin)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.ExitCode(11)
	}
	defer closeInput()

	prog, err := loader.Load(sourceR)
	if err != nil {
		return reportFailure(stdio.Stderr, err)
	}

	eng := &engine.Engine{
		Stdout:   stdio.Stdout,
		Stderr:   stdio.Stderr,
		Stdin:    inputR,
		MaxSteps: cfg.MaxSteps,
		Debug:    cfg.Debug,
	}
	outcome, err := eng.Run(prog)
	if err != nil {
		return reportFailure(stdio.Stderr, err)
	}
	return mainer.ExitCode(outcome.ExitCode)
}

// reportFailure writes the one-line description keyed by the failure's
// exit code to stderr, per §6's contract that error descriptions also go
// to stderr before the process exits, and returns the matching ExitCode.
func reportFailure(stderr io.Writer, err error) mainer.ExitCode {
	if ferr, ok := ipperr.AsError(err); ok {
		fmt.Fprintf(stderr, "%s\n", ferr.Error())
		return mainer.ExitCode(ferr.Code)
	}
	const fallbackCode = 57
	fmt.Fprintf(stderr, "%s: %s\n", ipperr.ShortMessage(fallbackCode), err)
	return mainer.ExitCode(fallbackCode)
}

// openOrStdin opens path if non-empty, otherwise returns stdin wrapped in
// a no-op closer. A missing or unreadable named file is a code-11 error.
func openOrStdin(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
