package engine

import (
	"unicode/utf8"

	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
)

func (e *Engine) execInt2Char(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	val, err := e.symbol(instr.Args[1])
	if err != nil {
		return err
	}
	i, ok := val.(value.Int)
	if !ok {
		return ipperr.New(53, "INT2CHAR operand must be int, got %s", val.Kind())
	}
	r := rune(i)
	if i < 0 || i > utf8.MaxRune || !utf8.ValidRune(r) {
		return ipperr.New(58, "%d is not a valid Unicode scalar value", i)
	}
	dst.Set(value.Str(string(r)))
	return e.advance()
}

func (e *Engine) execStri2Int(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	s, idx, err := e.stringAndIndex(instr.Args[1], instr.Args[2])
	if err != nil {
		return err
	}
	runes := s.Runes()
	if idx < 0 || idx >= len(runes) {
		return ipperr.New(58, "STRI2INT index %d out of range for string of length %d", idx, len(runes))
	}
	dst.Set(value.Int(runes[idx]))
	return e.advance()
}

func (e *Engine) execConcat(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	s1, s2, err := e.twoStrings(instr.Args[1], instr.Args[2])
	if err != nil {
		return err
	}
	dst.Set(value.Str(string(s1) + string(s2)))
	return e.advance()
}

func (e *Engine) execStrlen(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	val, err := e.symbol(instr.Args[1])
	if err != nil {
		return err
	}
	s, ok := val.(value.Str)
	if !ok {
		return ipperr.New(53, "STRLEN operand must be string, got %s", val.Kind())
	}
	dst.Set(value.Int(len(s.Runes())))
	return e.advance()
}

func (e *Engine) execGetChar(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	s, idx, err := e.stringAndIndex(instr.Args[1], instr.Args[2])
	if err != nil {
		return err
	}
	runes := s.Runes()
	if idx < 0 || idx >= len(runes) {
		return ipperr.New(58, "GETCHAR index %d out of range for string of length %d", idx, len(runes))
	}
	dst.Set(value.Str(string(runes[idx])))
	return e.advance()
}

func (e *Engine) execSetChar(instr program.Instruction) error {
	dst, err := e.variable(instr.Args[0])
	if err != nil {
		return err
	}
	dstVal, ok := dst.Value.(value.Str)
	if !dst.Initialized || !ok {
		return ipperr.New(53, "SETCHAR target must already hold a string")
	}

	idxVal, err := e.symbol(instr.Args[1])
	if err != nil {
		return err
	}
	idx, ok := idxVal.(value.Int)
	if !ok {
		return ipperr.New(53, "SETCHAR index operand must be int, got %s", idxVal.Kind())
	}

	srcVal, err := e.symbol(instr.Args[2])
	if err != nil {
		return err
	}
	src, ok := srcVal.(value.Str)
	if !ok {
		return ipperr.New(53, "SETCHAR source operand must be string, got %s", srcVal.Kind())
	}
	if len(src) == 0 {
		return ipperr.New(58, "SETCHAR source string is empty")
	}

	runes := dstVal.Runes()
	i := int(idx)
	if i < 0 || i >= len(runes) {
		return ipperr.New(58, "SETCHAR index %d out of range for string of length %d", i, len(runes))
	}
	runes[i] = src.Runes()[0]
	dst.Set(value.Str(string(runes)))
	return e.advance()
}

func (e *Engine) stringAndIndex(strArg, idxArg program.Argument) (value.Str, int, error) {
	sv, err := e.symbol(strArg)
	if err != nil {
		return "", 0, err
	}
	iv, err := e.symbol(idxArg)
	if err != nil {
		return "", 0, err
	}
	s, ok1 := sv.(value.Str)
	i, ok2 := iv.(value.Int)
	if !ok1 || !ok2 {
		return "", 0, ipperr.New(53, "expected string and int operands, got %s and %s", sv.Kind(), iv.Kind())
	}
	return s, int(i), nil
}

func (e *Engine) twoStrings(a1, a2 program.Argument) (value.Str, value.Str, error) {
	v1, err := e.symbol(a1)
	if err != nil {
		return "", "", err
	}
	v2, err := e.symbol(a2)
	if err != nil {
		return "", "", err
	}
	s1, ok1 := v1.(value.Str)
	s2, ok2 := v2.(value.Str)
	if !ok1 || !ok2 {
		return "", "", ipperr.New(53, "CONCAT operands must both be string, got %s and %s", v1.Kind(), v2.Kind())
	}
	return s1, s2, nil
}
