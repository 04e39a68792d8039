package frame

import (
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
)

// Memory is the frame manager: the global frame, the local-frame stack, and
// the temporary frame with its validity flag.
type Memory struct {
	global    *Frame
	locals    []*Frame // stack; top is the last element
	temp      *Frame
	tempValid bool
}

// NewMemory returns a fresh Memory with an empty global frame and no
// temporary or local frames.
func NewMemory() *Memory {
	return &Memory{global: NewFrame()}
}

// resolve returns the frame targeted by tag, or a code-55 error if TF/LF
// is not currently accessible.
func (m *Memory) resolve(tag program.FrameTag) (*Frame, error) {
	switch tag {
	case program.GF:
		return m.global, nil
	case program.TF:
		if !m.tempValid {
			return nil, ipperr.New(55, "temporary frame is not valid")
		}
		return m.temp, nil
	case program.LF:
		if len(m.locals) == 0 {
			return nil, ipperr.New(55, "local-frame stack is empty")
		}
		return m.locals[len(m.locals)-1], nil
	default:
		return nil, ipperr.New(55, "unknown frame tag %v", tag)
	}
}

// Define defines a fresh variable for a var argument in its resolved frame.
func (m *Memory) Define(arg program.Argument) (*Variable, error) {
	fr, err := m.resolve(arg.Frame)
	if err != nil {
		return nil, err
	}
	return fr.Define(arg.Name), nil
}

// Lookup resolves a var argument to its Variable, or a code-54 error if no
// such variable exists in its frame, or a code-55 error if the frame itself
// is not accessible.
func (m *Memory) Lookup(arg program.Argument) (*Variable, error) {
	fr, err := m.resolve(arg.Frame)
	if err != nil {
		return nil, err
	}
	v, ok := fr.Lookup(arg.Name)
	if !ok {
		return nil, ipperr.New(54, "variable %s@%s is not defined", arg.Frame, arg.Name)
	}
	return v, nil
}

// CreateFrame allocates a fresh, empty, valid temporary frame, discarding
// any existing TF contents.
func (m *Memory) CreateFrame() {
	m.temp = NewFrame()
	m.tempValid = true
}

// PushFrame moves the current TF onto the local-frame stack and invalidates
// TF. It fails with code 55 if TF is not valid.
func (m *Memory) PushFrame() error {
	if !m.tempValid {
		return ipperr.New(55, "cannot PUSHFRAME: temporary frame is not valid")
	}
	m.locals = append(m.locals, m.temp)
	m.temp = nil
	m.tempValid = false
	return nil
}

// PopFrame moves the top of the local-frame stack back into TF, making it
// valid. It fails with code 55 if the local-frame stack is empty.
func (m *Memory) PopFrame() error {
	if len(m.locals) == 0 {
		return ipperr.New(55, "cannot POPFRAME: local-frame stack is empty")
	}
	n := len(m.locals) - 1
	m.temp = m.locals[n]
	m.locals = m.locals[:n]
	m.tempValid = true
	return nil
}

// LocalDepth returns the number of frames on the local-frame stack, used by
// the BREAK diagnostic snapshot.
func (m *Memory) LocalDepth() int { return len(m.locals) }

// TempValid reports whether the temporary frame currently holds a valid
// frame, used by the BREAK diagnostic snapshot.
func (m *Memory) TempValid() bool { return m.tempValid }
