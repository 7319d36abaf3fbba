/*
File    : lox/file/runner.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package file runs a single source file once: read it whole, scan, parse,
// and evaluate it against a fresh interpreter instance.
package file

import (
	"fmt"
	"os"

	"github.com/akashmaji946/lox/eval"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
)

// Run reads the file at path and executes it to completion, writing
// `print` output to os.Stdout. It returns the first lexical, syntax, or
// runtime error encountered, or nil on clean completion.
func Run(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", path, err)
	}
	return RunSource(string(source))
}

// RunSource executes source text directly, bypassing the filesystem;
// used by Run and by tests that want to exercise the same pipeline.
func RunSource(source string) error {
	lex := lexer.New(source)
	tokens := lex.ScanTokens()
	if lex.HasErrors() {
		for _, lexErr := range lex.Errors() {
			fmt.Fprintln(os.Stderr, lexErr.String())
		}
		return fmt.Errorf("aborted after %d lexical error(s)", len(lex.Errors()))
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return err
	}

	evaluator := eval.New()
	if err := evaluator.Run(statements); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return err
	}
	return nil
}
