/*
File    : lox/eval/eval_statements.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lox/function"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/scope"
	"github.com/akashmaji946/lox/value"
)

// execStmt is the statement half of the tree walker.
func (e *Evaluator) execStmt(stmt parser.Stmt) (Outcome, error) {
	switch st := stmt.(type) {
	case *parser.ExpressionStmt:
		if _, err := e.evalExpr(st.Expr); err != nil {
			return normalOutcome, err
		}
		return normalOutcome, nil

	case *parser.PrintStmt:
		v, err := e.evalExpr(st.Expr)
		if err != nil {
			return normalOutcome, err
		}
		fmt.Fprintln(e.out, v.ToString())
		return normalOutcome, nil

	case *parser.VarStmt:
		v := value.Nil
		if st.Initializer != nil {
			var err error
			v, err = e.evalExpr(st.Initializer)
			if err != nil {
				return normalOutcome, err
			}
		}
		e.env.Define(st.Name.Lexeme, v)
		return normalOutcome, nil

	case *parser.BlockStmt:
		return e.execBlock(st.Statements, scope.New(e.env))

	case *parser.IfStmt:
		cond, err := e.evalExpr(st.Condition)
		if err != nil {
			return normalOutcome, err
		}
		if cond.IsTruthy() {
			return e.execStmt(st.Then)
		}
		if st.Else != nil {
			return e.execStmt(st.Else)
		}
		return normalOutcome, nil

	case *parser.WhileStmt:
		return e.execWhile(st)

	case *parser.FunctionStmt:
		fn := function.NewUserFunction(st, e.env)
		e.env.Define(st.Name.Lexeme, value.FromCallable(fn))
		return normalOutcome, nil

	case *parser.ReturnStmt:
		v := value.Nil
		if st.Value != nil {
			var err error
			v, err = e.evalExpr(st.Value)
			if err != nil {
				return normalOutcome, err
			}
		}
		return Outcome{Kind: OutcomeReturn, Value: v}, nil

	case *parser.BreakStmt:
		return Outcome{Kind: OutcomeBreak}, nil

	case *parser.ContinueStmt:
		return Outcome{Kind: OutcomeContinue}, nil
	}
	return normalOutcome, runtimeErrorf(0, "Unknown statement node.")
}

// execBlock runs statements in child, restoring the caller's frame on
// every exit path: normal completion, early return, break, continue, or
// error.
func (e *Evaluator) execBlock(statements []parser.Stmt, child *scope.Environment) (Outcome, error) {
	previous := e.env
	e.env = child
	defer func() { e.env = previous }()

	for _, stmt := range statements {
		outcome, err := e.execStmt(stmt)
		if err != nil {
			return normalOutcome, err
		}
		if outcome.Kind != OutcomeNormal {
			return outcome, nil
		}
	}
	return normalOutcome, nil
}
