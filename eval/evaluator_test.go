/*
File    : lox/eval/evaluator_test.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"
	"testing"

	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, source string) (string, error) {
	t.Helper()
	lex := lexer.New(source)
	tokens := lex.ScanTokens()
	require.False(t, lex.HasErrors(), "unexpected lexical errors: %v", lex.Errors())

	p := parser.New(tokens)
	statements, err := p.Parse()
	require.NoError(t, err)

	var out strings.Builder
	evaluator := New()
	evaluator.SetOutput(&out)
	err = evaluator.Run(statements)
	return out.String(), err
}

func TestEvaluator_LexicalScoping(t *testing.T) {
	out, err := runProgram(t, `
		var x = 1;
		fun outer() { var x = 2; fun inner() { print x; } inner(); }
		outer();
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEvaluator_ClosuresCaptureByReference(t *testing.T) {
	out, err := runProgram(t, `
		fun makeCounter() {
		  var i = 0;
		  fun count() { i = i + 1; print i; }
		  return count;
		}
		var c = makeCounter(); c(); c(); c();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEvaluator_BreakExitsInnermostLoop(t *testing.T) {
	out, err := runProgram(t, `
		var i = 0;
		while (true) { if (i == 3) break; i = i + 1; } print i;
	`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestEvaluator_ContinueInForRunsIncrement(t *testing.T) {
	out, err := runProgram(t, `
		for (var i = 0; i < 5; i = i + 1) { if (i == 2) continue; print i; }
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n3\n4\n", out)
}

func TestEvaluator_StringNumberCoercion(t *testing.T) {
	out, err := runProgram(t, `print "x=" + 1;`)
	require.NoError(t, err)
	assert.Equal(t, "x=1\n", out)
}

func TestEvaluator_ArityMismatchIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `
		fun f(a) {}
		f(1, 2);
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 1 arguments but got 2.")
}

func TestEvaluator_ClockReturnsMonotonicNumber(t *testing.T) {
	out, err := runProgram(t, `
		var a = clock();
		var b = clock();
		print b - a >= 0;
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEvaluator_ZeroIsFalsey(t *testing.T) {
	out, err := runProgram(t, `if (0) { print "truthy"; } else { print "falsey"; }`)
	require.NoError(t, err)
	assert.Equal(t, "falsey\n", out)
}

func TestEvaluator_LogicalShortCircuit(t *testing.T) {
	out, err := runProgram(t, `
		fun boom() { print "called"; return true; }
		print true or boom();
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEvaluator_IntegralNumberPrintsWithoutTrailingZero(t *testing.T) {
	out, err := runProgram(t, `print 5.0;`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestEvaluator_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `print missing;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}
