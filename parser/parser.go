/*
File    : lox/parser/parser.go
Author  : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/lox/lexer"
)

// maxArgs bounds both call-site argument counts and function-declaration
// parameter counts.
const maxArgs = 255

// Error is a syntax error tagged with the line it was found on.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Parser is a single mutable cursor over a token vector. On any syntax
// mismatch it reports a line-prefixed error and aborts the whole parse;
// there is no error-recovery/resynchronization pass.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New creates a Parser over the given token stream, which must end in
// exactly one Eof token (as produced by lexer.Lexer.ScanTokens).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the entire token stream and returns the program as a
// sequence of statements, or the first syntax error encountered.
func (p *Parser) Parse() ([]Stmt, error) {
	var statements []Stmt
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == lexer.Eof
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(typ lexer.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == typ
}

// match advances and returns true if the current token's type is one of
// types, otherwise leaves the cursor untouched.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected token type or reports message as a
// syntax error at the current line.
func (p *Parser) consume(typ lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok lexer.Token, message string) error {
	return &Error{Line: tok.Line, Message: message}
}
