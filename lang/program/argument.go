package program

import "github.com/ipp22/interpreter/lang/value"

// ArgKind identifies the declared type of an argument record, per the
// "type" attribute of an <argN> element. label and type only ever occur as
// argument kinds; they are never runtime values.
type ArgKind int

const (
	ArgVar ArgKind = iota
	ArgInt
	ArgString
	ArgBool
	ArgNil
	ArgLabel
	ArgType
)

// FrameTag identifies which frame a var argument targets.
type FrameTag int

const (
	GF FrameTag = iota
	LF
	TF
)

func (f FrameTag) String() string {
	switch f {
	case GF:
		return "GF"
	case LF:
		return "LF"
	case TF:
		return "TF"
	default:
		return "?F"
	}
}

// Argument is a load-time record: either a variable reference (kind Var,
// carrying a frame tag and a bare name), a constant (kind Int/String/Bool/
// Nil, carrying a decoded value.Value), a label reference (kind Label), or
// a type name (kind Type, used only by READ).
type Argument struct {
	Kind ArgKind

	// Set when Kind == ArgVar.
	Frame FrameTag
	Name  string

	// Set when Kind is one of Int/String/Bool/Nil.
	Literal value.Value

	// Set when Kind == ArgLabel.
	Label string

	// Set when Kind == ArgType; one of "int", "string", "bool".
	TypeName string
}

// IsVar reports whether the argument is a variable reference.
func (a Argument) IsVar() bool { return a.Kind == ArgVar }
