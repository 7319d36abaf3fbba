/*
File    : lox/eval/evaluator.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package eval walks the AST produced by the parser. It implements the two
// mutually recursive procedures evalExpr and execStmt, threading runtime
// errors as Go errors and non-local control transfer (break/continue/
// return) as an Outcome value rather than panics.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/scope"
	"github.com/akashmaji946/lox/value"
)

// RuntimeError is a line-tagged runtime failure: type mismatches, calls on
// non-callables, arity mismatches, undefined variables, and non-local
// break/continue/return signals that escape their boundary.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

func runtimeErrorf(line int, format string, args ...interface{}) error {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// OutcomeKind tags the non-value result of executing a statement.
type OutcomeKind int

const (
	OutcomeNormal OutcomeKind = iota
	OutcomeBreak
	OutcomeContinue
	OutcomeReturn
)

// Outcome is what execStmt returns: normal completion, or one of the three
// non-local signals. Value is only meaningful for OutcomeReturn.
type Outcome struct {
	Kind  OutcomeKind
	Value value.Value
}

var normalOutcome = Outcome{Kind: OutcomeNormal}

// Evaluator holds the single-threaded, synchronous interpreter state: the
// global frame, the current innermost frame, and the output sink that
// `print` writes to.
type Evaluator struct {
	Globals *scope.Environment
	env     *scope.Environment
	out     io.Writer
}

// New creates an Evaluator with a fresh global frame pre-populated with the
// native bindings (clock).
func New() *Evaluator {
	globals := scope.New(nil)
	e := &Evaluator{Globals: globals, env: globals, out: os.Stdout}
	registerNatives(globals)
	return e
}

// SetOutput redirects where `print` statements write (defaults to
// os.Stdout); the REPL uses this to target its own writer.
func (e *Evaluator) SetOutput(w io.Writer) {
	e.out = w
}

// Run executes a parsed program's statements in sequence at the global
// scope. A Return outcome reaching this level is a runtime error (return
// outside a function); Break/Continue reaching this level are likewise
// runtime errors.
func (e *Evaluator) Run(statements []parser.Stmt) error {
	for _, stmt := range statements {
		outcome, err := e.execStmt(stmt)
		if err != nil {
			return err
		}
		if outcome.Kind != OutcomeNormal {
			return topLevelOutcomeError(outcome)
		}
	}
	return nil
}

func topLevelOutcomeError(o Outcome) error {
	switch o.Kind {
	case OutcomeBreak:
		return runtimeErrorf(0, "Unexpected 'break' outside a loop.")
	case OutcomeContinue:
		return runtimeErrorf(0, "Unexpected 'continue' outside a loop.")
	case OutcomeReturn:
		return runtimeErrorf(0, "Unexpected 'return' outside a function.")
	default:
		return nil
	}
}

