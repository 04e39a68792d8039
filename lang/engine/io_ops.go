package engine

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
	"gopkg.in/yaml.v3"
)

func (e *Engine) execRead(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	typeName := instr.Args[1].TypeName

	line, ok := e.in.ReadLine()
	if !ok {
		dst.Set(value.NilValue)
		return e.advance()
	}

	switch typeName {
	case "int":
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			dst.Set(value.NilValue)
		} else {
			dst.Set(value.Int(n))
		}
	case "bool":
		dst.Set(value.Bool(strings.EqualFold(line, "true")))
	case "string":
		dst.Set(value.Str(line))
	default:
		dst.Set(value.NilValue)
	}
	return e.advance()
}

func (e *Engine) execWrite(instr program.Instruction, w io.Writer) error {
	val, err := e.symbol(instr.Args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(w, val.String())
	return e.advance()
}

// breakSnapshot is the structure serialized by the BREAK diagnostic. YAML
// (via gopkg.in/yaml.v3, already an indirect teacher dependency) gives a
// readable, greppable multi-field dump without hand-rolling field-by-field
// Fprintf calls for every future addition to the snapshot.
type breakSnapshot struct {
	IP          int  `yaml:"ip"`
	Step        int  `yaml:"step"`
	DataStack   int  `yaml:"data_stack_depth"`
	CallStack   int  `yaml:"call_stack_depth"`
	LocalFrames int  `yaml:"local_frame_depth"`
	TempValid   bool `yaml:"temp_frame_valid"`
}

func (e *Engine) snapshot() breakSnapshot {
	return breakSnapshot{
		IP:          e.ip,
		Step:        e.step,
		DataStack:   e.data.Len(),
		CallStack:   e.calls.Len(),
		LocalFrames: e.mem.LocalDepth(),
		TempValid:   e.mem.TempValid(),
	}
}

func (e *Engine) execBreak() error {
	e.dumpSnapshot("--- break ---\n")
	return e.advance()
}

// dumpSnapshot writes the current engine snapshot to stderr under header,
// falling back to a one-line form if YAML marshaling ever fails.
func (e *Engine) dumpSnapshot(header string) {
	out, err := yaml.Marshal(e.snapshot())
	if err != nil {
		fmt.Fprintf(e.stderr, "break: ip=%d\n", e.ip)
		return
	}
	fmt.Fprintf(e.stderr, "%s%s", header, out)
}
