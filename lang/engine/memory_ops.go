package engine

import (
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
)

func (e *Engine) execMove(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	val, err := e.symbol(instr.Args[1])
	if err != nil {
		return err
	}
	dst.Set(val)
	return e.advance()
}

func (e *Engine) execDefvar(instr program.Instruction) error {
	if _, err := e.mem.Define(instr.Args[0]); err != nil {
		return err
	}
	return e.advance()
}

func (e *Engine) execPushs(instr program.Instruction) error {
	val, err := e.symbol(instr.Args[0])
	if err != nil {
		return err
	}
	e.data.Push(val)
	return e.advance()
}

func (e *Engine) execPops(instr program.Instruction) error {
	val, err := e.data.Pop()
	if err != nil {
		return err
	}
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	dst.Set(val)
	return e.advance()
}

func (e *Engine) execCall(instr program.Instruction) error {
	label := instr.Args[0].Label
	target, ok := e.prog.Labels[label]
	if !ok {
		return ipperr.New(52, "call to undefined label %q", label)
	}
	e.calls.Push(e.ip + 1)
	e.ip = target
	return nil
}

func (e *Engine) execReturn() error {
	target, err := e.calls.Pop()
	if err != nil {
		return err
	}
	e.ip = target
	return nil
}
