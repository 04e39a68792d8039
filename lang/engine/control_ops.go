package engine

import (
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
)

func (e *Engine) execJump(instr program.Instruction) error {
	target, err := e.labelTarget(instr.Args[0].Label)
	if err != nil {
		return err
	}
	e.ip = target
	return nil
}

func (e *Engine) execJumpIf(instr program.Instruction) error {
	target, err := e.labelTarget(instr.Args[0].Label)
	if err != nil {
		return err
	}
	x, err := e.symbol(instr.Args[1])
	if err != nil {
		return err
	}
	y, err := e.symbol(instr.Args[2])
	if err != nil {
		return err
	}
	if x.Kind() != y.Kind() && x.Kind() != value.KindNil && y.Kind() != value.KindNil {
		return ipperr.New(53, "JUMPIFEQ/JUMPIFNEQ operands must share a kind unless one is nil, got %s and %s", x.Kind(), y.Kind())
	}

	equal := value.Equal(x, y)
	takeJump := equal
	if instr.Opcode == program.JUMPIFNEQ {
		takeJump = !equal
	}
	if takeJump {
		e.ip = target
	} else {
		return e.advance()
	}
	return nil
}

func (e *Engine) labelTarget(label string) (int, error) {
	target, ok := e.prog.Labels[label]
	if !ok {
		return 0, ipperr.New(52, "jump to undefined label %q", label)
	}
	return target, nil
}
