/*
File    : lox/scope/environment_test.go
Author  : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/akashmaji946/lox/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number(1))
	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestEnvironment_GetSearchesOutward(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number(1))
	inner := New(outer)
	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestEnvironment_GetUndefinedIsError(t *testing.T) {
	env := New(nil)
	_, err := env.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}

func TestEnvironment_AssignMutatesExistingOuterBinding(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number(1))
	inner := New(outer)

	require.NoError(t, inner.Assign("x", value.Number(2)))

	v, err := outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)
}

func TestEnvironment_AssignUndefinedIsError(t *testing.T) {
	env := New(nil)
	err := env.Assign("missing", value.Number(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}

// TestEnvironment_ClosuresShareTheSameFrame documents the invariant that
// makes the counter-closure example work: two closures capturing the same
// Environment pointer see each other's mutations, since neither copies the
// frame.
func TestEnvironment_ClosuresShareTheSameFrame(t *testing.T) {
	shared := New(nil)
	shared.Define("i", value.Number(0))

	closureA := shared
	closureB := shared

	require.NoError(t, closureA.Assign("i", value.Number(1)))

	v, err := closureB.Get("i")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}
