package engine

import (
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
)

func (e *Engine) execArith(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	x, y, err := e.twoInts(instr.Args[1], instr.Args[2])
	if err != nil {
		return err
	}

	var result int64
	switch instr.Opcode {
	case program.ADD:
		result = int64(x) + int64(y)
	case program.SUB:
		result = int64(x) - int64(y)
	case program.MUL:
		result = int64(x) * int64(y)
	case program.IDIV:
		if y == 0 {
			return ipperr.New(57, "IDIV by zero")
		}
		result = int64(x) / int64(y)
	}
	dst.Set(value.Int(result))
	return e.advance()
}

func (e *Engine) twoInts(a1, a2 program.Argument) (value.Int, value.Int, error) {
	v1, err := e.symbol(a1)
	if err != nil {
		return 0, 0, err
	}
	v2, err := e.symbol(a2)
	if err != nil {
		return 0, 0, err
	}
	i1, ok1 := v1.(value.Int)
	i2, ok2 := v2.(value.Int)
	if !ok1 || !ok2 {
		return 0, 0, ipperr.New(53, "arithmetic operands must both be int, got %s and %s", v1.Kind(), v2.Kind())
	}
	return i1, i2, nil
}
