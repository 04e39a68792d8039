package loader_test

import (
	"strings"
	"testing"

	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/loader"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, xmlSrc string) *program.Program {
	t.Helper()
	p, err := loader.Load(strings.NewReader(xmlSrc))
	require.NoError(t, err)
	return p
}

func loadErr(t *testing.T, xmlSrc string) *ipperr.Error {
	t.Helper()
	_, err := loader.Load(strings.NewReader(xmlSrc))
	require.Error(t, err)
	ferr, ok := ipperr.AsError(err)
	require.True(t, ok, "expected *ipperr.Error, got %T: %v", err, err)
	return ferr
}

func TestLoadHelloWorld(t *testing.T) {
	p := mustLoad(t, `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode22">
	<instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
	<instruction order="2" opcode="MOVE">
		<arg1 type="var">GF@x</arg1>
		<arg2 type="string">hello</arg2>
	</instruction>
	<instruction order="3" opcode="WRITE"><arg1 type="var">GF@x</arg1></instruction>
	<instruction order="4" opcode="EXIT"><arg1 type="int">0</arg1></instruction>
</program>`)

	require.Len(t, p.Instructions, 4)
	assert.Equal(t, program.DEFVAR, p.Instructions[0].Opcode)
	assert.Equal(t, program.MOVE, p.Instructions[1].Opcode)
	assert.Equal(t, "hello", p.Instructions[1].Args[1].Literal.String())
}

func TestLoadSortsByOrder(t *testing.T) {
	p := mustLoad(t, `<program language="IPPcode22">
	<instruction order="3" opcode="BREAK"></instruction>
	<instruction order="1" opcode="LABEL"><arg1 type="label">start</arg1></instruction>
	<instruction order="2" opcode="JUMP"><arg1 type="label">start</arg1></instruction>
</program>`)

	require.Len(t, p.Instructions, 3)
	assert.Equal(t, program.LABEL, p.Instructions[0].Opcode)
	assert.Equal(t, program.JUMP, p.Instructions[1].Opcode)
	assert.Equal(t, program.BREAK, p.Instructions[2].Opcode)
	assert.Equal(t, 0, p.Labels["start"])
}

func TestLoadDuplicateOrderFails(t *testing.T) {
	ferr := loadErr(t, `<program language="IPPcode22">
	<instruction order="1" opcode="BREAK"></instruction>
	<instruction order="1" opcode="BREAK"></instruction>
</program>`)
	assert.Equal(t, 32, ferr.Code)
}

func TestLoadDuplicateLabelFails(t *testing.T) {
	ferr := loadErr(t, `<program language="IPPcode22">
	<instruction order="1" opcode="LABEL"><arg1 type="label">x</arg1></instruction>
	<instruction order="2" opcode="LABEL"><arg1 type="label">x</arg1></instruction>
</program>`)
	assert.Equal(t, 52, ferr.Code)
}

func TestLoadWrongRootFails(t *testing.T) {
	ferr := loadErr(t, `<nope language="IPPcode22"></nope>`)
	assert.Equal(t, 32, ferr.Code)
}

func TestLoadUnknownOpcodeFails(t *testing.T) {
	ferr := loadErr(t, `<program language="IPPcode22">
	<instruction order="1" opcode="FROBNICATE"></instruction>
</program>`)
	assert.Equal(t, 32, ferr.Code)
}

func TestLoadNonConsecutiveArgsFails(t *testing.T) {
	ferr := loadErr(t, `<program language="IPPcode22">
	<instruction order="1" opcode="MOVE">
		<arg1 type="var">GF@x</arg1>
		<arg3 type="int">1</arg3>
	</instruction>
</program>`)
	assert.Equal(t, 32, ferr.Code)
}

func TestLoadInvalidVarRefFails(t *testing.T) {
	ferr := loadErr(t, `<program language="IPPcode22">
	<instruction order="1" opcode="DEFVAR"><arg1 type="var">XX@x</arg1></instruction>
</program>`)
	assert.Equal(t, 31, ferr.Code)
}

func TestLoadStringEscapeDecoding(t *testing.T) {
	p := mustLoad(t, `<program language="IPPcode22">
	<instruction order="1" opcode="WRITE"><arg1 type="string">A\032B</arg1></instruction>
</program>`)
	assert.Equal(t, "A B", p.Instructions[0].Args[0].Literal.String())
}

func TestLoadStringEscapeOutOfRangeFails(t *testing.T) {
	ferr := loadErr(t, `<program language="IPPcode22">
	<instruction order="1" opcode="WRITE"><arg1 type="string">A\0AB</arg1></instruction>
</program>`)
	assert.Equal(t, 53, ferr.Code)
}

func TestLoadMalformedXMLFails(t *testing.T) {
	ferr := loadErr(t, `<program language="IPPcode22">`)
	assert.Equal(t, 31, ferr.Code)
}

func TestLoadArityMismatchFails(t *testing.T) {
	ferr := loadErr(t, `<program language="IPPcode22">
	<instruction order="1" opcode="ADD"><arg1 type="var">GF@x</arg1></instruction>
</program>`)
	assert.Equal(t, 32, ferr.Code)
}

func TestLoadArityMismatchTooManyArgsFails(t *testing.T) {
	ferr := loadErr(t, `<program language="IPPcode22">
	<instruction order="1" opcode="WRITE">
		<arg1 type="var">GF@x</arg1>
		<arg2 type="int">1</arg2>
	</instruction>
</program>`)
	assert.Equal(t, 32, ferr.Code)
}
