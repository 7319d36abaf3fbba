/*
File    : lox/eval/native.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"time"

	"github.com/akashmaji946/lox/function"
	"github.com/akashmaji946/lox/scope"
	"github.com/akashmaji946/lox/value"
)

// registerNatives pre-populates the outermost frame with every native
// binding available to a running program. clock() is the only native
// binding provided: arity 0, returns the current wall-clock time in
// milliseconds since the Unix epoch.
func registerNatives(globals *scope.Environment) {
	clock := &function.NativeFunction{
		FnName: "clock",
		Arg:    0,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixMilli())), nil
		},
	}
	globals.Define(clock.Name(), value.FromCallable(clock))
}
