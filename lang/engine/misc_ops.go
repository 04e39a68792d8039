package engine

import (
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
)

func (e *Engine) execType(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	val, initialized, err := e.looseSymbol(instr.Args[1])
	if err != nil {
		return err
	}
	if !initialized {
		dst.Set(value.Str(""))
		return e.advance()
	}
	dst.Set(value.Str(val.Kind().String()))
	return e.advance()
}

func (e *Engine) execExit(instr program.Instruction) (*int, error) {
	val, err := e.symbol(instr.Args[0])
	if err != nil {
		return nil, err
	}
	n, ok := val.(value.Int)
	if !ok {
		return nil, ipperr.New(53, "EXIT operand must be int, got %s", val.Kind())
	}
	if n < 0 || n > 49 {
		return nil, ipperr.New(57, "EXIT code %d out of range [0,49]", n)
	}
	code := int(n)
	return &code, nil
}
