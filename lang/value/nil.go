package value

// Nil is the singleton value of kind KindNil. It deliberately does not
// implement Ordered: LT/GT on nil operands is always an error.
type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) String() string { return "" }

// NilValue is the sole instance of Nil, analogous to the canonical Nil/True/
// False singletons the teacher keeps for its own value model.
var NilValue = Nil{}
