package frame

import "github.com/dolthub/swiss"

// Frame is a named collection of variables. Lookup is keyed by bare name
// (the part of a var reference after the XF@ prefix) and backed by a swiss
// table instead of the linear scan the spec's reference implementation
// uses, per the design note that a systems-language implementation may
// switch to a hash table with an O(1) lookup contract. This is the same
// library (github.com/dolthub/swiss) the teacher uses for its own
// general-purpose Value-keyed Map, repurposed here for a frame's
// string-keyed variable table.
type Frame struct {
	vars *swiss.Map[string, *Variable]
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{vars: swiss.NewMap[string, *Variable](8)}
}

// Define creates a fresh, uninitialized variable named name in the frame.
// Redefinition of an existing name is accepted (the spec leaves this
// implementation-defined) and resolved as documented on Lookup: the first
// definition of a name shadows any later DEFVAR of the same name, matching
// the reference interpreter's linear-scan-from-the-front behavior.
func (f *Frame) Define(name string) *Variable {
	if existing, ok := f.vars.Get(name); ok {
		return existing
	}
	v := &Variable{Name: name}
	f.vars.Put(name, v)
	return v
}

// Lookup returns the variable named name, or false if it hasn't been
// defined in this frame.
func (f *Frame) Lookup(name string) (*Variable, bool) {
	return f.vars.Get(name)
}
