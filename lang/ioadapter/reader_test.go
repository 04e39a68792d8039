package ioadapter_test

import (
	"strings"
	"testing"

	"github.com/ipp22/interpreter/lang/ioadapter"
	"github.com/stretchr/testify/assert"
)

func TestReadLineStripsOnlyTerminator(t *testing.T) {
	lr := ioadapter.NewLineReader(strings.NewReader(" 42 \nhello\n"))

	line, ok := lr.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, " 42 ", line)

	line, ok = lr.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "hello", line)

	_, ok = lr.ReadLine()
	assert.False(t, ok)
}

func TestReadLineEmptyInput(t *testing.T) {
	lr := ioadapter.NewLineReader(strings.NewReader(""))
	_, ok := lr.ReadLine()
	assert.False(t, ok)
}
