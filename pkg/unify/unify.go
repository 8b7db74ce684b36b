// Package unify implements Asteroid's single unification procedure, run
// in two modes over the same tagged-tree term model: matching (ordinary
// evaluation) and subsuming (the redundancy checker's "would any term
// matched by pattern also be matched by term-viewed-as-pattern" test).
//
// This mirrors the shape of the teacher's pure recursive unify(term1,
// term2, sub) in pkg/minikanren/primitives.go - walk both sides, dispatch
// on tag, recurse, accumulate - generalized from three term kinds (atom,
// var, pair) to the full tagged-tree vocabulary in pkg/term, and from a
// Substitution accumulator to an ordered binding list plus an explicit
// linearity pass.
package unify

import (
	"fmt"

	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/env"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

// Mode selects which of the two unification semantics to run.
type Mode int

const (
	// Matching is ordinary evaluation: term is a runtime value, pattern is
	// what it must be matched against.
	Matching Mode = iota

	// Subsuming asks whether pattern (as a fixed target) would match
	// anything that term (read as a pattern itself) would also match -
	// the redundancy checker's core test.
	Subsuming
)

func (m Mode) String() string {
	if m == Subsuming {
		return "subsuming"
	}
	return "matching"
}

// Binding is one (lval, value) pair produced by a successful unification.
// LVal is almost always a *term.ID (the common case), but is a
// *term.Index for index-pattern bindings (interpreted later by
// store-style index write) and is also a *term.ID for the trailing
// binding a named-pattern produces.
type Binding struct {
	LVal  term.Node
	Value term.Node
}

// Evaluator is the capability unify needs from the tree-walking
// evaluator: evaluating an expression node to a value, and reaching the
// live symbol environment. Defining this interface here (rather than
// importing pkg/eval) avoids an import cycle, since pkg/eval calls
// Unify to implement assignment, call dispatch, and the is/for/try
// statements. pkg/eval's Ctx type implements this interface.
type Evaluator interface {
	Eval(node term.Node) (term.Node, error)
	Env() *env.Environment

	// ConstraintDepth, EnterConstraint and ExitConstraint track the
	// evaluator's constraint-nesting counter, consulted by the if-exp case
	// to decide whether bindings it produces may survive past the call
	// that unified them, and mutated by the constraint-pattern case.
	ConstraintDepth() int
	EnterConstraint()
	ExitConstraint()

	// CondWarningEmitted and SetCondWarningEmitted implement the
	// once-only latch for the "cannot prove redundancy across two
	// conditional patterns" diagnostic.
	CondWarningEmitted() bool
	SetCondWarningEmitted(bool)

	// Warn reports a non-fatal diagnostic through the evaluator's
	// attached logger/debugger without aborting unification.
	Warn(msg string)
}

// Unify attempts to unify term against pattern under mode, returning the
// ordered bindings a success produces. ev supplies the evaluator
// operations the if-exp, deref, and constraint cases, the struct-name
// typematch case, and the object-against-apply case need; it may be nil
// only when the caller already knows neither side reaches those cases
// (e.g. simple structural tests in isolated unit tests).
func Unify(t, p term.Node, mode Mode, ev Evaluator) ([]Binding, error) {
	bindings, err := unify(t, p, mode, ev)
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

// fail constructs a PatternMatchFailed describing why t could not be
// unified against p.
func fail(reason string, t, p term.Node) error {
	return except.NewPatternMatchFailed(fmt.Sprintf("%s: %s against %s", reason, describe(t), describe(p)))
}

func describe(n term.Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Tag() + " " + n.String()
}
