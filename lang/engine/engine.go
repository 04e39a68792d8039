// Package engine implements the dispatch loop over a validated instruction
// vector: the execution engine proper, per the teacher's own split between
// a program representation (lang/program, playing the role of the
// teacher's compiler package) and the machine that runs it (lang/machine).
// Engine plays the role of the teacher's Thread: an injectable-I/O,
// step-limited execution context, generalized from a bytecode stack
// machine to IPPcode22's three-address instruction set.
package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/ipp22/interpreter/lang/frame"
	"github.com/ipp22/interpreter/lang/ioadapter"
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
)

// ErrStepLimitExceeded is returned by Run when MaxSteps is positive and the
// program executes more instructions than that without completing. Unlike
// every other Run failure, this is not part of IPPcode22's own error
// taxonomy (it has no assigned exit code); it is an ambient safety valve
// analogous to the teacher's Thread.MaxSteps, for embedding the engine in a
// host that must bound untrusted program execution.
type ErrStepLimitExceeded struct {
	Steps int
}

func (e *ErrStepLimitExceeded) Error() string {
	return fmt.Sprintf("execution aborted after %d steps (MaxSteps exceeded)", e.Steps)
}

// Engine owns the full mutable runtime state for one program execution:
// the frames, the two stacks, the instruction pointer, and the injectable
// standard streams. It mirrors the teacher's Thread type in spirit (Stdout/
// Stderr/Stdin fields defaulting to the real os streams, a MaxSteps
// cancellation budget) but carries frame/stack state instead of a Starlark
// call stack, since IPPcode22 has no nested function values.
type Engine struct {
	// Stdout, Stderr and Stdin are the standard I/O abstractions used by
	// WRITE, DPRINT, BREAK and READ. If nil, os.Stdout, os.Stderr and
	// os.Stdin are used respectively.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// MaxSteps caps the number of instructions executed before the engine
	// aborts the program as a runaway. A value <= 0 means no limit.
	MaxSteps int

	// Debug, when true, dumps a final engine snapshot (the same shape as
	// BREAK's own diagnostic) to Stderr when Run completes normally, even
	// if the program never executed a BREAK instruction itself.
	Debug bool

	mem   *frame.Memory
	data  frame.DataStack
	calls frame.CallStack
	in    *ioadapter.LineReader

	stdout io.Writer
	stderr io.Writer

	prog *program.Program
	ip   int
	step int
}

// Outcome reports how a Run terminated.
type Outcome struct {
	// ExitCode is the process exit code: reaching the end of the program
	// normally counts as 0; an explicit EXIT S uses S's value.
	ExitCode int
}

func (e *Engine) init(p *program.Program) {
	e.mem = frame.NewMemory()
	e.prog = p
	e.ip = 0
	e.step = 0

	if e.Stdout != nil {
		e.stdout = e.Stdout
	} else {
		e.stdout = os.Stdout
	}
	if e.Stderr != nil {
		e.stderr = e.Stderr
	} else {
		e.stderr = os.Stderr
	}
	var stdin io.Reader = os.Stdin
	if e.Stdin != nil {
		stdin = e.Stdin
	}
	e.in = ioadapter.NewLineReader(stdin)
}

// Run executes p from instruction 0 until EXIT is hit or the instruction
// pointer runs past the end of the program, whichever comes first. A
// non-nil error is an *ipperr.Error carrying the exit code the caller must
// report (see lang/ipperr), except for *ErrStepLimitExceeded when MaxSteps
// is exceeded; a nil error with Outcome.ExitCode == 0 is normal completion
// by falling off the end of the program.
func (e *Engine) Run(p *program.Program) (Outcome, error) {
	e.init(p)

	for e.ip < len(p.Instructions) {
		if e.MaxSteps > 0 && e.step >= e.MaxSteps {
			return Outcome{}, &ErrStepLimitExceeded{Steps: e.step}
		}
		e.step++

		instr := p.Instructions[e.ip]
		code, err := e.exec(instr)
		if err != nil {
			return Outcome{}, err
		}
		if code != nil {
			if e.Debug {
				e.dumpSnapshot("--- final state (exit) ---\n")
			}
			return Outcome{ExitCode: *code}, nil
		}
	}
	if e.Debug {
		e.dumpSnapshot("--- final state (end of program) ---\n")
	}
	return Outcome{ExitCode: 0}, nil
}

// exec runs one instruction. It returns a non-nil *int when the
// instruction is an EXIT that should terminate the program. Every other
// instruction that succeeds advances e.ip itself (either by 1, or to a jump
// target); EXIT leaves e.ip unchanged.
func (e *Engine) exec(instr program.Instruction) (*int, error) {
	switch instr.Opcode {
	case program.MOVE:
		return nil, e.execMove(instr)
	case program.DEFVAR:
		return nil, e.execDefvar(instr)
	case program.CREATEFRAME:
		e.mem.CreateFrame()
		return nil, e.advance()
	case program.PUSHFRAME:
		if err := e.mem.PushFrame(); err != nil {
			return nil, err
		}
		return nil, e.advance()
	case program.POPFRAME:
		if err := e.mem.PopFrame(); err != nil {
			return nil, err
		}
		return nil, e.advance()

	case program.PUSHS:
		return nil, e.execPushs(instr)
	case program.POPS:
		return nil, e.execPops(instr)

	case program.ADD, program.SUB, program.MUL, program.IDIV:
		return nil, e.execArith(instr)

	case program.LT, program.GT:
		return nil, e.execRelational(instr)
	case program.EQ:
		return nil, e.execEq(instr)

	case program.AND, program.OR:
		return nil, e.execLogicalBinary(instr)
	case program.NOT:
		return nil, e.execNot(instr)

	case program.INT2CHAR:
		return nil, e.execInt2Char(instr)
	case program.STRI2INT:
		return nil, e.execStri2Int(instr)

	case program.CONCAT:
		return nil, e.execConcat(instr)
	case program.STRLEN:
		return nil, e.execStrlen(instr)
	case program.GETCHAR:
		return nil, e.execGetChar(instr)
	case program.SETCHAR:
		return nil, e.execSetChar(instr)

	case program.TYPE:
		return nil, e.execType(instr)

	case program.LABEL:
		return nil, e.advance()
	case program.JUMP:
		return nil, e.execJump(instr)
	case program.JUMPIFEQ, program.JUMPIFNEQ:
		return nil, e.execJumpIf(instr)

	case program.CALL:
		return nil, e.execCall(instr)
	case program.RETURN:
		return nil, e.execReturn()

	case program.READ:
		return nil, e.execRead(instr)
	case program.WRITE:
		return nil, e.execWrite(instr, e.stdout)
	case program.DPRINT:
		return nil, e.execWrite(instr, e.stderr)
	case program.BREAK:
		return nil, e.execBreak()

	case program.EXIT:
		return e.execExit(instr)

	default:
		return nil, ipperr.New(32, "unknown opcode %s", instr.Opcode)
	}
}

func (e *Engine) advance() error {
	e.ip++
	return nil
}

// symbol resolves argument arg (a var reference or a constant) to its
// current (kind, value). An uninitialized variable is a code-56 error,
// matching §4.3's definition of symbol resolution.
func (e *Engine) symbol(arg program.Argument) (value.Value, error) {
	if !arg.IsVar() {
		return arg.Literal, nil
	}
	v, err := e.mem.Lookup(arg)
	if err != nil {
		return nil, err
	}
	if !v.Initialized {
		return nil, ipperr.New(56, "variable %s@%s is used before being initialized", arg.Frame, arg.Name)
	}
	return v.Value, nil
}

// looseSymbol is like symbol but never fails on an uninitialized variable;
// it is used only by TYPE, which must distinguish "never assigned" (empty
// string) from every other kind.
func (e *Engine) looseSymbol(arg program.Argument) (value.Value, bool, error) {
	if !arg.IsVar() {
		return arg.Literal, true, nil
	}
	v, err := e.mem.Lookup(arg)
	if err != nil {
		return nil, false, err
	}
	return v.Value, v.Initialized, nil
}

func (e *Engine) variable(arg program.Argument) (*frame.Variable, error) {
	return e.mem.Lookup(arg)
}
