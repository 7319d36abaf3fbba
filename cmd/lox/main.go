/*
File    : lox/cmd/lox/main.go
Author  : akashmaji(@iisc.ac.in)
*/

// Command lox is the interpreter's CLI entrypoint: no arguments starts an
// interactive prompt, one argument runs that file, anything else prints
// usage and exits 1.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/lox/file"
	"github.com/akashmaji946/lox/replshell"
)

func main() {
	switch len(os.Args) {
	case 1:
		runRepl()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Println("Usage: lox [file]")
		os.Exit(1)
	}
}

func runFile(path string) {
	defer recoverAsExit()
	if err := file.Run(path); err != nil {
		os.Exit(1)
	}
}

func runRepl() {
	defer recoverAsExit()
	if err := replshell.New().Run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// recoverAsExit catches any panic that escapes the interpreter pipeline;
// every expected failure (lexical/syntax/runtime error) is already a
// returned error by this point, so reaching here means something in the
// tree walker itself broke an invariant. Report it the same way a runtime
// error would be reported and exit non-zero rather than crashing with a
// Go stack trace.
func recoverAsExit() {
	if recovered := recover(); recovered != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", recovered)
		os.Exit(1)
	}
}
