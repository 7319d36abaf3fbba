/*
File    : lox/parser/parser_statements.go
Author  : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/lox/lexer"

// declaration → funDecl | varDecl | statement
func (p *Parser) declaration() (Stmt, error) {
	if p.match(lexer.Fun) {
		return p.functionDeclaration()
	}
	if p.match(lexer.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

// funDecl → "fun" IDENT "(" params? ")" block
func (p *Parser) functionDeclaration() (Stmt, error) {
	name, err := p.consume(lexer.Identifier, "Expected function name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LeftParen, "Expected '(' after function name."); err != nil {
		return nil, err
	}
	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			if len(params) >= maxArgs {
				return nil, p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(lexer.Identifier, "Expected parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RightParen, "Expected ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LeftBrace, "Expected '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// varDecl → "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(lexer.Identifier, "Expected variable name.")
	if err != nil {
		return nil, err
	}
	var initializer Expr
	if p.match(lexer.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Semicolon, "Expected ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

// statement → printStmt | whileStmt | forStmt | ifStmt
//
//	| returnStmt | breakStmt | continueStmt | block | exprStmt
func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(lexer.Print):
		return p.printStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	case p.match(lexer.Break):
		if _, err := p.consume(lexer.Semicolon, "Expected ';' after 'break'."); err != nil {
			return nil, err
		}
		return &BreakStmt{}, nil
	case p.match(lexer.Continue):
		if _, err := p.consume(lexer.Semicolon, "Expected ';' after 'continue'."); err != nil {
			return nil, err
		}
		return &ContinueStmt{}, nil
	case p.match(lexer.LeftBrace):
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Statements: statements}, nil
	}
	return p.expressionStatement()
}

// printStmt → "print" expression ";"
func (p *Parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Semicolon, "Expected ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: value}, nil
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LeftParen, "Expected '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RightParen, "Expected ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: condition, Body: body}, nil
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//
//	expression? ";" expression? ")" statement
//
// Desugared to Block[init, While(cond or true, Block[body, incr], is_for_loop=true)].
func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LeftParen, "Expected '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer Stmt
	switch {
	case p.match(lexer.Semicolon):
		initializer = nil
	case p.match(lexer.Var):
		var err error
		initializer, err = p.varDeclaration()
		if err != nil {
			return nil, err
		}
	default:
		var err error
		initializer, err = p.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition Expr
	if !p.check(lexer.Semicolon) {
		var err error
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Semicolon, "Expected ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(lexer.RightParen) {
		var err error
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RightParen, "Expected ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expr: increment}}}
	} else {
		// No increment clause: still wrap in a block so IsForLoop's
		// "re-run the last statement on continue" rule has a no-op last
		// statement to re-run.
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expr: &LiteralExpr{Value: nil}}}}
	}

	if condition == nil {
		condition = &LiteralExpr{Value: true}
	}
	loop := &WhileStmt{Condition: condition, Body: body, IsForLoop: true}

	if initializer != nil {
		return &BlockStmt{Statements: []Stmt{initializer, loop}}, nil
	}
	return loop, nil
}

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LeftParen, "Expected '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RightParen, "Expected ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if p.match(lexer.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStatement() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.Semicolon) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Semicolon, "Expected ';' after return value."); err != nil {
		return nil, err
	}
	return &ReturnStmt{Keyword: keyword, Value: value}, nil
}

// block → "{" declaration* "}"   (opening brace already consumed)
func (p *Parser) block() ([]Stmt, error) {
	var statements []Stmt
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RightBrace, "Expected '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

// exprStmt → expression ( ";" | <eof> )
func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		if _, err := p.consume(lexer.Semicolon, "Expected ';' after expression."); err != nil {
			return nil, err
		}
	}
	return &ExpressionStmt{Expr: expr}, nil
}
