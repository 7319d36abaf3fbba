/*
File    : lox/replshell/repl.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package replshell implements the interactive Read-Eval-Print Loop: one
// logical line in, one evaluation out, until an empty line or EOF ends the
// session.
package replshell

import (
	"io"
	"strings"

	"github.com/akashmaji946/lox/eval"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var redColor = color.New(color.FgRed)

// Prompt is the exact prompt prefix printed before each line read.
const Prompt = "[lox] > "

// Repl is an interactive session: one evaluator instance persists across
// lines, so variables and functions defined in one line are visible to the
// next.
type Repl struct {
	evaluator *eval.Evaluator
}

// New creates a Repl with a fresh evaluator.
func New() *Repl {
	return &Repl{evaluator: eval.New()}
}

// Run drives the loop: read a line, stop on an empty line or EOF,
// otherwise evaluate it and print any error. Values of expressions are not
// echoed; only `print` statements write output.
func (r *Repl) Run(writer io.Writer) error {
	r.evaluator.SetOutput(writer)

	rl, err := readline.New(Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}

		line = strings.Trim(line, " \t\r\n")
		if line == "" {
			return nil
		}

		rl.SaveHistory(line)
		r.evalLineWithRecovery(writer, line)
	}
}

// evalLineWithRecovery scans, parses, and evaluates one line. It never
// exits the loop on error; unlike file-mode execution, the REPL reports
// the error and waits for the next line. The recover() here is a safety
// net against a genuinely unexpected internal panic, not a substitute for
// returning errors from eval_expr/exec_stmt.
func (r *Repl) evalLineWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "Error: %v\n", recovered)
		}
	}()

	lex := lexer.New(line)
	tokens := lex.ScanTokens()
	if lex.HasErrors() {
		for _, lexErr := range lex.Errors() {
			redColor.Fprintln(writer, lexErr.String())
		}
		return
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		redColor.Fprintln(writer, err.Error())
		return
	}

	if err := r.evaluator.Run(statements); err != nil {
		redColor.Fprintln(writer, err.Error())
	}
}
