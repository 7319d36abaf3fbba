/*
File    : lox/lexer/lexer_test.go
Author  : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typesOf(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens := New(`(){},.-+;*?:`).ScanTokens()
	assert.Equal(t, []TokenType{
		LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot,
		Minus, Plus, Semicolon, Star, Question, Colon, Eof,
	}, typesOf(tokens))
}

func TestScanTokens_OneOrTwoCharOperators(t *testing.T) {
	tokens := New(`! != = == < <= > >=`).ScanTokens()
	assert.Equal(t, []TokenType{
		Bang, BangEqual, Equal, EqualEqual, Less, LessEqual, Greater, GreaterEqual, Eof,
	}, typesOf(tokens))
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	lex := New(`var x = foo; while true fun break continue`)
	tokens := lex.ScanTokens()
	assert.False(t, lex.HasErrors())
	assert.Equal(t, []TokenType{
		Var, Identifier, Equal, Identifier, Semicolon,
		While, True, Fun, Break, Continue, Eof,
	}, typesOf(tokens))
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	tokens := New(`123 3.14`).ScanTokens()
	assert.Equal(t, Number, tokens[0].Type)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, Number, tokens[1].Type)
	assert.Equal(t, 3.14, tokens[1].Literal)
}

func TestScanTokens_NumberDotNotFollowedByDigitIsSeparate(t *testing.T) {
	// "1." with no trailing digit should not be folded into the number.
	tokens := New(`1.method`).ScanTokens()
	assert.Equal(t, []TokenType{Number, Dot, Identifier, Eof}, typesOf(tokens))
}

func TestScanTokens_StringLiteralNoEscapeProcessing(t *testing.T) {
	tokens := New(`"hello\nworld"`).ScanTokens()
	assert.Equal(t, String, tokens[0].Type)
	assert.Equal(t, `hello\nworld`, tokens[0].Literal)
}

func TestScanTokens_UnterminatedStringIsLexicalError(t *testing.T) {
	lex := New(`"never closed`)
	lex.ScanTokens()
	assert.True(t, lex.HasErrors())
	assert.Contains(t, lex.Errors()[0].Message, "Unterminated string")
}

func TestScanTokens_LineCommentIgnored(t *testing.T) {
	tokens := New("1 // a comment\n2").ScanTokens()
	assert.Equal(t, []TokenType{Number, Number, Eof}, typesOf(tokens))
}

func TestScanTokens_BlockCommentDoesNotNest(t *testing.T) {
	// The inner "/*" does not start a nested comment; the comment ends at
	// the first "*/", so the " 1" after it is scanned as ordinary source.
	lex := New("/* outer /* inner */ 1")
	tokens := lex.ScanTokens()
	assert.Equal(t, []TokenType{Number, Eof}, typesOf(tokens))
}

func TestScanTokens_UnexpectedCharacterIsLexicalErrorButScanningContinues(t *testing.T) {
	lex := New(`1 @ 2`)
	tokens := lex.ScanTokens()
	assert.True(t, lex.HasErrors())
	assert.Equal(t, []TokenType{Number, Number, Eof}, typesOf(tokens))
}

func TestScanTokens_AlwaysEndsInEof(t *testing.T) {
	tokens := New(``).ScanTokens()
	assert.Equal(t, []Token{NewToken(Eof, "", 1)}, tokens)
}

func TestScanTokens_TracksLineNumbers(t *testing.T) {
	tokens := New("1\n2\n\n3").ScanTokens()
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 4, tokens[2].Line)
}
