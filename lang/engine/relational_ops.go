package engine

import (
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
)

func (e *Engine) execRelational(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
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
	if x.Kind() != y.Kind() || x.Kind() == value.KindNil {
		return ipperr.New(53, "LT/GT operands must share a non-nil kind, got %s and %s", x.Kind(), y.Kind())
	}

	cmp := value.Compare(x, y)
	var result bool
	if instr.Opcode == program.LT {
		result = cmp < 0
	} else {
		result = cmp > 0
	}
	dst.Set(value.Bool(result))
	return e.advance()
}

func (e *Engine) execEq(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
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
		return ipperr.New(53, "EQ operands must share a kind unless one is nil, got %s and %s", x.Kind(), y.Kind())
	}
	dst.Set(value.Bool(value.Equal(x, y)))
	return e.advance()
}
