/*
File    : lox/eval/eval_expressions.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lox/function"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/scope"
	"github.com/akashmaji946/lox/value"
)

// evalExpr is the expression half of the tree walker.
func (e *Evaluator) evalExpr(expr parser.Expr) (value.Value, error) {
	switch ex := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(ex.Value), nil
	case *parser.VariableExpr:
		v, err := e.env.Get(ex.Name.Lexeme)
		if err != nil {
			return value.Nil, runtimeErrorf(ex.Name.Line, "%s", err.Error())
		}
		return v, nil
	case *parser.AssignExpr:
		v, err := e.evalExpr(ex.Value)
		if err != nil {
			return value.Nil, err
		}
		if err := e.env.Assign(ex.Name.Lexeme, v); err != nil {
			return value.Nil, runtimeErrorf(ex.Name.Line, "%s", err.Error())
		}
		return v, nil
	case *parser.GroupingExpr:
		return e.evalExpr(ex.Inner)
	case *parser.UnaryExpr:
		return e.evalUnary(ex)
	case *parser.BinaryExpr:
		return e.evalBinary(ex)
	case *parser.LogicalExpr:
		return e.evalLogical(ex)
	case *parser.TernaryExpr:
		return e.evalTernary(ex)
	case *parser.CallExpr:
		return e.evalCall(ex)
	}
	return value.Nil, runtimeErrorf(0, "Unknown expression node.")
}

func literalValue(v interface{}) value.Value {
	switch lit := v.(type) {
	case float64:
		return value.Number(lit)
	case string:
		return value.String(lit)
	case bool:
		return value.Boolean(lit)
	default:
		return value.Nil
	}
}

func (e *Evaluator) evalUnary(ex *parser.UnaryExpr) (value.Value, error) {
	operand, err := e.evalExpr(ex.Operand)
	if err != nil {
		return value.Nil, err
	}
	switch ex.Op.Type {
	case lexer.Bang:
		return value.Boolean(!operand.IsTruthy()), nil
	case lexer.Minus:
		if operand.Kind != value.KindNumber {
			return value.Nil, runtimeErrorf(ex.Op.Line, "Cannot negate NaNs.")
		}
		return value.Number(-operand.Num), nil
	}
	return value.Nil, runtimeErrorf(ex.Op.Line, "Unknown unary operator.")
}

func (e *Evaluator) evalBinary(ex *parser.BinaryExpr) (value.Value, error) {
	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return value.Nil, err
	}
	right, err := e.evalExpr(ex.Right)
	if err != nil {
		return value.Nil, err
	}

	switch ex.Op.Type {
	case lexer.Minus:
		return numericBinary(ex.Op.Line, left, right, func(a, b float64) float64 { return a - b })
	case lexer.Star:
		return numericBinary(ex.Op.Line, left, right, func(a, b float64) float64 { return a * b })
	case lexer.Slash:
		return numericBinary(ex.Op.Line, left, right, func(a, b float64) float64 { return a / b })
	case lexer.Plus:
		return evalPlus(ex.Op.Line, left, right)
	case lexer.Greater:
		return comparisonBinary(ex.Op.Line, left, right, func(a, b float64) bool { return a > b })
	case lexer.GreaterEqual:
		return comparisonBinary(ex.Op.Line, left, right, func(a, b float64) bool { return a >= b })
	case lexer.Less:
		return comparisonBinary(ex.Op.Line, left, right, func(a, b float64) bool { return a < b })
	case lexer.LessEqual:
		return comparisonBinary(ex.Op.Line, left, right, func(a, b float64) bool { return a <= b })
	case lexer.EqualEqual:
		return value.Boolean(value.Equal(left, right)), nil
	case lexer.BangEqual:
		return value.Boolean(!value.Equal(left, right)), nil
	}
	return value.Nil, runtimeErrorf(ex.Op.Line, "Unknown binary operator.")
}

func numericBinary(line int, left, right value.Value, op func(a, b float64) float64) (value.Value, error) {
	if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
		return value.Nil, runtimeErrorf(line, "Operands must be numbers.")
	}
	return value.Number(op(left.Num, right.Num)), nil
}

func comparisonBinary(line int, left, right value.Value, op func(a, b float64) bool) (value.Value, error) {
	if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
		return value.Nil, runtimeErrorf(line, "Operands must be numbers.")
	}
	return value.Boolean(op(left.Num, right.Num)), nil
}

// evalPlus implements +: Number+Number adds, String+String concatenates,
// and a String paired with a Number coerces the Number to its display
// string before concatenating. Any other pairing is an error.
func evalPlus(line int, left, right value.Value) (value.Value, error) {
	if left.Kind == value.KindNumber && right.Kind == value.KindNumber {
		return value.Number(left.Num + right.Num), nil
	}
	if left.Kind == value.KindString && right.Kind == value.KindString {
		return value.String(left.Str + right.Str), nil
	}
	if left.Kind == value.KindString && right.Kind == value.KindNumber {
		return value.String(left.Str + right.ToString()), nil
	}
	if left.Kind == value.KindNumber && right.Kind == value.KindString {
		return value.String(left.ToString() + right.Str), nil
	}
	return value.Nil, runtimeErrorf(line, "Incompatible addition types.")
}

func (e *Evaluator) evalLogical(ex *parser.LogicalExpr) (value.Value, error) {
	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return value.Nil, err
	}
	if ex.Op.Type == lexer.Or {
		if left.IsTruthy() {
			return left, nil
		}
	} else {
		if !left.IsTruthy() {
			return left, nil
		}
	}
	return e.evalExpr(ex.Right)
}

func (e *Evaluator) evalTernary(ex *parser.TernaryExpr) (value.Value, error) {
	cond, err := e.evalExpr(ex.Condition)
	if err != nil {
		return value.Nil, err
	}
	if cond.IsTruthy() {
		return e.evalExpr(ex.Then)
	}
	return e.evalExpr(ex.Else)
}

func (e *Evaluator) evalCall(ex *parser.CallExpr) (value.Value, error) {
	callee, err := e.evalExpr(ex.Callee)
	if err != nil {
		return value.Nil, err
	}
	if callee.Kind != value.KindCallable {
		return value.Nil, runtimeErrorf(ex.ClosingParen.Line, "Can only call functions.")
	}

	args := make([]value.Value, 0, len(ex.Arguments))
	for _, argExpr := range ex.Arguments {
		v, err := e.evalExpr(argExpr)
		if err != nil {
			return value.Nil, err
		}
		args = append(args, v)
	}

	if len(args) != callee.Callable.Arity() {
		return value.Nil, runtimeErrorf(ex.ClosingParen.Line,
			"Expected %d arguments but got %d.", callee.Callable.Arity(), len(args))
	}

	switch fn := callee.Callable.(type) {
	case *function.NativeFunction:
		v, err := fn.Call(args)
		if err != nil {
			return value.Nil, runtimeErrorf(ex.ClosingParen.Line, "%s", err.Error())
		}
		return v, nil
	case *function.UserFunction:
		return e.callUserFunction(fn, args, ex.ClosingParen.Line)
	}
	return value.Nil, runtimeErrorf(ex.ClosingParen.Line, "Can only call functions.")
}

// callUserFunction pushes a fresh frame on top of the function's captured
// closure, binds parameters positionally, and executes the body. A Return
// outcome yields its value (or Nil); a Break/Continue reaching the call
// boundary is a runtime error, since it means the body leaked a loop
// control signal past the function it belongs to.
func (e *Evaluator) callUserFunction(fn *function.UserFunction, args []value.Value, callLine int) (value.Value, error) {
	callEnv := scope.New(fn.Closure)
	for i, param := range fn.Params() {
		callEnv.Define(param.Lexeme, args[i])
	}

	previous := e.env
	e.env = callEnv
	defer func() { e.env = previous }()

	for _, stmt := range fn.Body() {
		outcome, err := e.execStmt(stmt)
		if err != nil {
			return value.Nil, err
		}
		switch outcome.Kind {
		case OutcomeReturn:
			return outcome.Value, nil
		case OutcomeBreak, OutcomeContinue:
			return value.Nil, runtimeErrorf(callLine, "Function terminated with an unexpected token.")
		}
	}
	return value.Nil, nil
}
