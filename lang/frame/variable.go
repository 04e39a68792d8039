package frame

import "github.com/ipp22/interpreter/lang/value"

// Variable is a named slot holding an optional value and an initialized
// flag. The flag is set the first time the variable is assigned and is
// never cleared again, even across reassignment, so that TYPE can tell
// apart "never assigned" from "assigned nil".
type Variable struct {
	Name        string
	Value       value.Value
	Initialized bool
}

// Set assigns v to the variable and marks it initialized.
func (v *Variable) Set(val value.Value) {
	v.Value = val
	v.Initialized = true
}
