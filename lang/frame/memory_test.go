package frame_test

import (
	"testing"

	"github.com/ipp22/interpreter/lang/frame"
	"github.com/ipp22/interpreter/lang/ipperr"
	"github.com/ipp22/interpreter/lang/program"
	"github.com/ipp22/interpreter/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func varArg(tag program.FrameTag, name string) program.Argument {
	return program.Argument{Kind: program.ArgVar, Frame: tag, Name: name}
}

func TestGlobalFrameDefineLookup(t *testing.T) {
	m := frame.NewMemory()
	_, err := m.Define(varArg(program.GF, "x"))
	require.NoError(t, err)

	v, err := m.Lookup(varArg(program.GF, "x"))
	require.NoError(t, err)
	assert.False(t, v.Initialized)

	v.Set(value.Int(42))
	v2, err := m.Lookup(varArg(program.GF, "x"))
	require.NoError(t, err)
	assert.True(t, v2.Initialized)
	assert.Equal(t, value.Int(42), v2.Value)
}

func TestLookupUndefinedVariableFails(t *testing.T) {
	m := frame.NewMemory()
	_, err := m.Lookup(varArg(program.GF, "missing"))
	require.Error(t, err)
	ferr, ok := ipperr.AsError(err)
	require.True(t, ok)
	assert.Equal(t, 54, ferr.Code)
}

func TestTempFrameInvalidByDefault(t *testing.T) {
	m := frame.NewMemory()
	_, err := m.Define(varArg(program.TF, "x"))
	require.Error(t, err)
	ferr, _ := ipperr.AsError(err)
	assert.Equal(t, 55, ferr.Code)
}

func TestFrameLifecycle(t *testing.T) {
	m := frame.NewMemory()
	m.CreateFrame()

	_, err := m.Define(varArg(program.TF, "x"))
	require.NoError(t, err)
	v, err := m.Lookup(varArg(program.TF, "x"))
	require.NoError(t, err)
	v.Set(value.Int(1))

	require.NoError(t, m.PushFrame())
	assert.Equal(t, 1, m.LocalDepth())
	assert.False(t, m.TempValid())

	// x is now visible under LF@, since LF always targets the top frame.
	lv, err := m.Lookup(varArg(program.LF, "x"))
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), lv.Value)

	require.NoError(t, m.PopFrame())
	assert.True(t, m.TempValid())
	tv, err := m.Lookup(varArg(program.TF, "x"))
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), tv.Value)
}

func TestPushFrameWithoutCreateFrameFails(t *testing.T) {
	m := frame.NewMemory()
	err := m.PushFrame()
	require.Error(t, err)
	ferr, _ := ipperr.AsError(err)
	assert.Equal(t, 55, ferr.Code)
}

func TestPopFrameOnEmptyStackFails(t *testing.T) {
	m := frame.NewMemory()
	err := m.PopFrame()
	require.Error(t, err)
	ferr, _ := ipperr.AsError(err)
	assert.Equal(t, 55, ferr.Code)
}

func TestDefineRedefinitionShadowsFirst(t *testing.T) {
	m := frame.NewMemory()
	_, err := m.Define(varArg(program.GF, "x"))
	require.NoError(t, err)
	v1, _ := m.Lookup(varArg(program.GF, "x"))
	v1.Set(value.Int(1))

	_, err = m.Define(varArg(program.GF, "x"))
	require.NoError(t, err)

	v2, _ := m.Lookup(varArg(program.GF, "x"))
	assert.Same(t, v1, v2)
	assert.Equal(t, value.Int(1), v2.Value)
}

func TestDataStack(t *testing.T) {
	var s frame.DataStack
	_, err := s.Pop()
	require.Error(t, err)

	s.Push(value.Int(1))
	s.Push(value.Str("a"))
	assert.Equal(t, 2, s.Len())

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Str("a"), v)
}

func TestCallStack(t *testing.T) {
	var s frame.CallStack
	_, err := s.Pop()
	require.Error(t, err)

	s.Push(3)
	s.Push(7)
	ip, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 7, ip)
	assert.Equal(t, 1, s.Len())
}
