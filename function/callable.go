/*
File    : lox/function/callable.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package function implements the two kinds of Callable value: functions
// declared in source (closing over their defining scope by reference) and
// native functions bound by the host at startup.
package function

import (
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/scope"
	"github.com/akashmaji946/lox/value"
)

// UserFunction is a function declared in source. Closure is a reference to
// the environment frame that was innermost at the point the Function
// statement was executed; the evaluator does not copy it, so every
// closure defined in the same scope shares the same frame and its
// mutations.
type UserFunction struct {
	Decl    *parser.FunctionStmt
	Closure *scope.Environment
}

func NewUserFunction(decl *parser.FunctionStmt, closure *scope.Environment) *UserFunction {
	return &UserFunction{Decl: decl, Closure: closure}
}

func (f *UserFunction) Arity() int    { return len(f.Decl.Params) }
func (f *UserFunction) Name() string  { return f.Decl.Name.Lexeme }
func (f *UserFunction) Params() []lexer.Token { return f.Decl.Params }
func (f *UserFunction) Body() []parser.Stmt   { return f.Decl.Body }

// NativeFunction wraps a host-provided procedure, such as clock().
type NativeFunction struct {
	FnName string
	Arg    int
	Fn     func(args []value.Value) (value.Value, error)
}

func (f *NativeFunction) Arity() int   { return f.Arg }
func (f *NativeFunction) Name() string { return f.FnName }
func (f *NativeFunction) Call(args []value.Value) (value.Value, error) {
	return f.Fn(args)
}

var (
	_ value.Callable = (*UserFunction)(nil)
	_ value.Callable = (*NativeFunction)(nil)
)
