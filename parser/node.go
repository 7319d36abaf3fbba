/*
File    : lox/parser/node.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package parser turns a token stream into an AST via recursive-descent
// parsing, and defines the AST node types the evaluator walks.
package parser

import "github.com/akashmaji946/lox/lexer"

// Expr is any expression AST node.
type Expr interface{ expr() }

// Stmt is any statement AST node.
type Stmt interface{ stmt() }

// LiteralExpr wraps a scanned literal value (number, string, true, false,
// or nil).
type LiteralExpr struct {
	Value interface{} // float64, string, bool, or nil
}

// VariableExpr reads the current value bound to Name.
type VariableExpr struct {
	Name lexer.Token
}

// AssignExpr evaluates Value and stores it into Name, returning it.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

// UnaryExpr applies Op (! or -) to Operand.
type UnaryExpr struct {
	Op      lexer.Token
	Operand Expr
}

// BinaryExpr applies Op to Left and Right.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// LogicalExpr is `and`/`or` with mandatory short-circuit evaluation.
type LogicalExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// TernaryExpr is `condition ? then : else`, right-associative, with lazy
// (single-branch) evaluation.
type TernaryExpr struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Inner Expr
}

// CallExpr invokes Callee with Arguments. ClosingParen is retained for its
// line number, used in arity-mismatch diagnostics.
type CallExpr struct {
	Callee       Expr
	Arguments    []Expr
	ClosingParen lexer.Token
}

func (*LiteralExpr) expr()  {}
func (*VariableExpr) expr() {}
func (*AssignExpr) expr()   {}
func (*UnaryExpr) expr()    {}
func (*BinaryExpr) expr()   {}
func (*LogicalExpr) expr()  {}
func (*TernaryExpr) expr()  {}
func (*GroupingExpr) expr() {}
func (*CallExpr) expr()     {}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr and writes its display form plus a newline.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name in the current frame, bound to Initializer's value
// (or Nil if Initializer is nil).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// BlockStmt executes Statements in a fresh child frame.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes Then if Condition is truthy, else Else (which may be
// nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt loops Body while Condition is truthy. IsForLoop marks a loop
// produced by for-loop desugaring, which changes how `continue` is
// handled: the evaluator re-runs Body's trailing increment statement
// before the next iteration instead of looping immediately.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
	IsForLoop bool
}

// FunctionStmt declares a named function value capturing the current
// frame, bound to Name in the current frame.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// ReturnStmt yields a Return outcome carrying Value's result (or Nil if
// Value is nil).
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

// BreakStmt yields a Break outcome.
type BreakStmt struct{}

// ContinueStmt yields a Continue outcome.
type ContinueStmt struct{}

func (*ExpressionStmt) stmt() {}
func (*PrintStmt) stmt()      {}
func (*VarStmt) stmt()        {}
func (*BlockStmt) stmt()      {}
func (*IfStmt) stmt()         {}
func (*WhileStmt) stmt()      {}
func (*FunctionStmt) stmt()   {}
func (*ReturnStmt) stmt()     {}
func (*BreakStmt) stmt()      {}
func (*ContinueStmt) stmt()   {}
