// Package env implements Asteroid's symbol environment: a stack of
// lexical frames, generalizing the teacher's Substitution (a flat
// variable-id -> term map with copy-on-write Bind/Clone) to a scoped,
// name-keyed stack that also carries the saved-configuration mechanism
// handle_call needs to swap in a closure's captured scope and restore the
// caller's scope afterward.
package env

import "github.com/asteroid-lang/asteroid-go/pkg/term"

// Frame is one lexical scope: a flat name -> term.Node map. It implements
// term.Scope so that pkg/term.FunctionVal can snapshot a closure without
// pkg/term importing pkg/env.
type Frame struct {
	bindings map[string]term.Node
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{bindings: make(map[string]term.Node)}
}

// Clone deep-copies the frame, mirroring the teacher's
// Substitution.Clone - every binding's term is itself cloned so that
// later mutation of the source frame never leaks into the copy.
func (f *Frame) Clone() term.Scope {
	out := make(map[string]term.Node, len(f.bindings))
	for k, v := range f.bindings {
		out[k] = v.Clone()
	}
	return &Frame{bindings: out}
}

// Set installs or overwrites name in this frame.
func (f *Frame) Set(name string, value term.Node) {
	f.bindings[name] = value
}

// Get returns the value bound to name in this frame and whether it was
// present.
func (f *Frame) Get(name string) (term.Node, bool) {
	v, ok := f.bindings[name]
	return v, ok
}

// Has reports whether name is bound in this frame specifically.
func (f *Frame) Has(name string) bool {
	_, ok := f.bindings[name]
	return ok
}

// Names returns the frame's bound names, for Dump.
func (f *Frame) Names() []string {
	out := make([]string, 0, len(f.bindings))
	for k := range f.bindings {
		out = append(out, k)
	}
	return out
}
