/*
File    : lox/file/runner_test.go
Author  : akashmaji(@iisc.ac.in)
*/
package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSource_CleanProgramReturnsNoError(t *testing.T) {
	err := RunSource(`var x = 1; if (x == 1) { x = x + 1; }`)
	require.NoError(t, err)
}

func TestRunSource_LexicalErrorAborts(t *testing.T) {
	err := RunSource(`"unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lexical error")
}

func TestRunSource_SyntaxErrorAborts(t *testing.T) {
	err := RunSource(`var ;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error")
}

func TestRunSource_RuntimeErrorAborts(t *testing.T) {
	err := RunSource(`print undefinedVariable;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestRun_MissingFileReturnsError(t *testing.T) {
	err := Run("/nonexistent/path/to/source.lox")
	require.Error(t, err)
}
