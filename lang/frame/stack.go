package frame

import (
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/value"
)

// DataStack is the LIFO of typed values manipulated by PUSHS/POPS.
type DataStack struct {
	vals []value.Value
}

// Push pushes v onto the stack.
func (s *DataStack) Push(v value.Value) { s.vals = append(s.vals, v) }

// Pop removes and returns the top value, or a code-56 error if the stack
// is empty.
func (s *DataStack) Pop() (value.Value, error) {
	if len(s.vals) == 0 {
		return nil, ipperr.New(56, "data stack is empty")
	}
	n := len(s.vals) - 1
	v := s.vals[n]
	s.vals = s.vals[:n]
	return v, nil
}

// Len reports the current stack depth, used by the BREAK diagnostic.
func (s *DataStack) Len() int { return len(s.vals) }

// CallStack is the LIFO of return instruction indices manipulated by
// CALL/RETURN.
type CallStack struct {
	rets []int
}

// Push pushes a return index onto the stack.
func (s *CallStack) Push(ip int) { s.rets = append(s.rets, ip) }

// Pop removes and returns the top return index, or a code-56 error if the
// stack is empty.
func (s *CallStack) Pop() (int, error) {
	if len(s.rets) == 0 {
		return 0, ipperr.New(56, "call stack is empty")
	}
	n := len(s.rets) - 1
	ip := s.rets[n]
	s.rets = s.rets[:n]
	return ip, nil
}

// Len reports the current stack depth, used by the BREAK diagnostic.
func (s *CallStack) Len() int { return len(s.rets) }
