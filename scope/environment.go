/*
File    : lox/scope/environment.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package scope implements the linked environment-frame chain that gives
// the interpreter lexical scoping and reference-capturing closures.
package scope

import (
	"fmt"

	"github.com/akashmaji946/lox/value"
)

// Environment is a single lexical frame: a set of name→value bindings plus
// an optional parent frame. Frames are always referenced through a
// pointer, including from a closure's captured-scope field; this is what
// lets two closures defined in the same scope observe each other's
// mutations, unlike a snapshot-copy of the bindings.
type Environment struct {
	values map[string]value.Value
	parent *Environment
}

// New creates a frame whose parent is parent (nil for the outermost/global
// frame).
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), parent: parent}
}

// Define binds name to v in this frame unconditionally, overwriting any
// existing binding of the same name in this frame.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get searches from this frame outward and returns the first binding
// found.
func (e *Environment) Get(name string) (value.Value, error) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.values[name]; ok {
			return v, nil
		}
	}
	return value.Nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign searches from this frame outward and overwrites the first binding
// found in place.
func (e *Environment) Assign(name string, v value.Value) error {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.values[name]; ok {
			frame.values[name] = v
			return nil
		}
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
