package value

import "strings"

// Str is the type of a text string value. IPPcode22 strings are sequences
// of Unicode code points; we store them as Go strings (UTF-8) and index by
// rune, not by byte, since SETCHAR/GETCHAR/STRI2INT/STRLEN are all
// character-oriented.
type Str string

func (s Str) Kind() Kind     { return KindString }
func (s Str) String() string { return string(s) }
func (s Str) Cmp(y Value) int {
	return strings.Compare(string(s), string(y.(Str)))
}

// Runes returns the code points of s, decoded once for indexing operations.
func (s Str) Runes() []rune { return []rune(s) }
