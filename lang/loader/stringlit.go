package loader

import (
	"strconv"

	"github.com/ipp22/interpreter/lang/ipperr"
)

// decodeStringLiteral decodes \NNN escape sequences (three decimal digits,
// 0-999) into the corresponding Unicode code point; everything between
// escapes is copied through unchanged, preserving multi-byte UTF-8 runs.
func decodeStringLiteral(s string) (string, error) {
	var out []byte
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			out = append(out, s[i])
			i++
			continue
		}
		if i+4 > len(s) || !isThreeDigits(s[i+1:i+4]) {
			return "", ipperr.New(53, "malformed string escape at offset %d", i)
		}
		n, _ := strconv.Atoi(s[i+1 : i+4])
		if n < 0 || n > 999 {
			return "", ipperr.New(53, "string escape \\%03d out of range", n)
		}
		out = append(out, []byte(string(rune(n)))...)
		i += 4
	}
	return string(out), nil
}

func isThreeDigits(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
