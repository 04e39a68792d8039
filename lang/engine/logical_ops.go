package engine

import (
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
)

func (e *Engine) execLogicalBinary(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	x, y, err := e.twoBools(instr.Args[1], instr.Args[2])
	if err != nil {
		return err
	}

	var result value.Bool
	if instr.Opcode == program.AND {
		result = x && y
	} else {
		result = x || y
	}
	dst.Set(result)
	return e.advance()
}

func (e *Engine) execNot(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	val, err := e.symbol(instr.Args[1])
	if err != nil {
		return err
	}
	b, ok := val.(value.Bool)
	if !ok {
		return ipperr.New(53, "NOT operand must be bool, got %s", val.Kind())
	}
	dst.Set(!b)
	return e.advance()
}

func (e *Engine) twoBools(a1, a2 program.Argument) (value.Bool, value.Bool, error) {
	v1, err := e.symbol(a1)
	if err != nil {
		return false, false, err
	}
	v2, err := e.symbol(a2)
	if err != nil {
		return false, false, err
	}
	b1, ok1 := v1.(value.Bool)
	b2, ok2 := v2.(value.Bool)
	if !ok1 || !ok2 {
		return false, false, ipperr.New(53, "AND/OR operands must both be bool, got %s and %s", v1.Kind(), v2.Kind())
	}
	return b1, b2, nil
}
