package env

import (
	"fmt"
	"strings"

	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

// Environment is the live scope stack: frame 0 is the global frame, every
// later frame is a nested local scope. It generalizes the teacher's
// Substitution to name-keyed, stack-shaped lookup, and adds the
// saved-configuration mechanism handle_call uses to swap in a closure's
// captured scope for the duration of a call and restore the caller's
// scope afterward.
type Environment struct {
	stack        []*Frame
	savedConfigs [][]*Frame
}

// New returns an Environment with a single, empty global frame.
func New() *Environment {
	return &Environment{stack: []*Frame{NewFrame()}}
}

// EnterSym binds name to value in the innermost (topmost) frame.
func (e *Environment) EnterSym(name string, value term.Node) {
	e.top().Set(name, value)
}

// EnterGlobal binds name to value in the outermost (global) frame,
// regardless of current nesting depth - used by the global statement to
// promote a name out of a local scope.
func (e *Environment) EnterGlobal(name string, value term.Node) {
	e.stack[0].Set(name, value)
}

// LookupSym searches from the innermost frame outward and returns the
// first binding found.
func (e *Environment) LookupSym(name string) (term.Node, bool) {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if v, ok := e.stack[i].Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// IsSymbolLocal reports whether name is bound in the innermost frame
// specifically, without searching outward - the global statement uses
// this to reject "global x" when x is already a local.
func (e *Environment) IsSymbolLocal(name string) bool {
	return e.top().Has(name)
}

// PushScope pushes a fresh, empty frame, entering a new nested lexical
// scope.
func (e *Environment) PushScope() {
	e.stack = append(e.stack, NewFrame())
}

// PopScope discards the innermost frame. It is a no-op (rather than a
// panic) when only the global frame remains, since callers restore state
// defensively across every exit path of a call.
func (e *Environment) PopScope() {
	if len(e.stack) > 1 {
		e.stack = e.stack[:len(e.stack)-1]
	}
}

// GetClosure returns a deep-cloned snapshot of the entire current scope
// stack, suitable for embedding in a term.FunctionVal at function-creation
// time.
func (e *Environment) GetClosure() []term.Scope {
	out := make([]term.Scope, len(e.stack))
	for i, f := range e.stack {
		out[i] = f.Clone()
	}
	return out
}

// GetConfig returns a deep-cloned snapshot of the current scope stack as
// a Config, for handle_call to push onto SavedConfigs before swapping in
// a callee's closure.
func (e *Environment) GetConfig() []*Frame {
	out := make([]*Frame, len(e.stack))
	for i, f := range e.stack {
		out[i] = f.Clone().(*Frame)
	}
	return out
}

// SetConfig replaces the live scope stack with a deep clone of closure -
// handle_call calls this with the callee's captured closure before
// pushing a new local frame for the call's own parameters.
func (e *Environment) SetConfig(closure []term.Scope) {
	stack := make([]*Frame, len(closure))
	for i, s := range closure {
		stack[i] = s.Clone().(*Frame)
	}
	e.stack = stack
}

// PushSavedConfig saves cfg on the saved-configuration stack, to be
// restored later by PopSavedConfig. handle_call pushes the caller's
// configuration here before swapping in the callee's closure, so the
// caller's scope can be restored on every exit path.
func (e *Environment) PushSavedConfig(cfg []*Frame) {
	e.savedConfigs = append(e.savedConfigs, cfg)
}

// PopSavedConfig pops and restores the most recently saved configuration
// as the live scope stack. It panics if no configuration was saved, since
// that indicates a call-machinery bug (an unbalanced save/restore), not a
// recoverable user-level condition.
func (e *Environment) PopSavedConfig() {
	n := len(e.savedConfigs)
	if n == 0 {
		panic("env: PopSavedConfig called with no saved configuration")
	}
	cfg := e.savedConfigs[n-1]
	e.savedConfigs = e.savedConfigs[:n-1]
	e.stack = cfg
}

// SavedConfigDepth reports how many configurations are currently saved,
// for diagnostics and for balancing assertions in call-machinery tests.
func (e *Environment) SavedConfigDepth() int {
	return len(e.savedConfigs)
}

// Dump renders the full scope stack, innermost frame last, for debugger
// use.
func (e *Environment) Dump() string {
	var b strings.Builder
	for i, f := range e.stack {
		fmt.Fprintf(&b, "frame %d: %v\n", i, f.Names())
	}
	return b.String()
}

func (e *Environment) top() *Frame {
	return e.stack[len(e.stack)-1]
}
