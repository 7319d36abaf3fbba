/*
File    : lox/parser/parser_expressions.go
Author  : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/lox/lexer"

// expression → assignment
func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment → IDENT "=" assignment | or   (right-associative)
func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if variable, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: variable.Name, Value: value}, nil
		}
		return nil, p.errorAt(equals, "Invalid assignment target.")
	}
	return expr, nil
}

// or → and ( "or" and )*
func (p *Parser) or() (Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// and → ternary ( "and" ternary )*
func (p *Parser) and() (Expr, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.And) {
		op := p.previous()
		right, err := p.ternary()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// ternary → equality ( "?" ternary ":" ternary )*   (right-associative)
func (p *Parser) ternary() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.match(lexer.Question) {
		then, err := p.ternary()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.Colon, "Expected ':' in ternary expression."); err != nil {
			return nil, err
		}
		elseExpr, err := p.ternary()
		if err != nil {
			return nil, err
		}
		expr = &TernaryExpr{Condition: expr, Then: then, Else: elseExpr}
	}
	return expr, nil
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() (Expr, error) {
	return p.binaryLevel(p.comparison, lexer.BangEqual, lexer.EqualEqual)
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (Expr, error) {
	return p.binaryLevel(p.term, lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual)
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() (Expr, error) {
	return p.binaryLevel(p.factor, lexer.Minus, lexer.Plus)
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() (Expr, error) {
	return p.binaryLevel(p.unary, lexer.Slash, lexer.Star)
}

// binaryLevel implements one left-associative binary precedence level:
// parse one operand via next, then while the current token is one of ops,
// consume the operator and another operand.
func (p *Parser) binaryLevel(next func() (Expr, error), ops ...lexer.TokenType) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// unary → ( "!" | "-" ) unary | call
func (p *Parser) unary() (Expr, error) {
	if p.match(lexer.Bang, lexer.Minus) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Operand: operand}, nil
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" )*
func (p *Parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		if p.match(lexer.LeftParen) {
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return expr, nil
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(lexer.RightParen) {
		for {
			if len(args) >= maxArgs {
				return nil, p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	closingParen, err := p.consume(lexer.RightParen, "Expected ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &CallExpr{Callee: callee, Arguments: args, ClosingParen: closingParen}, nil
}

// primary → NUMBER | STRING | "true" | "false" | "nil" | IDENT | "(" expression ")"
func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(lexer.False):
		return &LiteralExpr{Value: false}, nil
	case p.match(lexer.True):
		return &LiteralExpr{Value: true}, nil
	case p.match(lexer.Nil):
		return &LiteralExpr{Value: nil}, nil
	case p.match(lexer.Number, lexer.String):
		return &LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(lexer.Identifier):
		return &VariableExpr{Name: p.previous()}, nil
	case p.match(lexer.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RightParen, "Expected ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Inner: expr}, nil
	}
	return nil, p.errorAt(p.peek(), "Expected expression.")
}
