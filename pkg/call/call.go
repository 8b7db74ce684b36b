// Package call implements function-call machinery: trace-stack push,
// scope save/swap, ordered clause dispatch with first-match-wins,
// binding installation, an optional redundancy check, and
// guaranteed restore-on-every-exit-path via defer - grounded on the
// reference interpreter's handle_call and, in its committed-choice
// clause dispatch, on the teacher's own disjunctive Matcha combinator
// inverted into a first-success-wins walk instead of an exhaustive one.
package call

import (
	"errors"
	"fmt"

	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/internal/tracing"
	"github.com/asteroid-lang/asteroid-go/pkg/debugger"
	"github.com/asteroid-lang/asteroid-go/pkg/eval"
	"github.com/asteroid-lang/asteroid-go/pkg/redundancy"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
	"github.com/asteroid-lang/asteroid-go/pkg/unify"
)

// Machine is the installed call-machinery implementation; it satisfies
// eval.Caller so apply dispatch can invoke it without pkg/eval importing
// pkg/call.
type Machine struct {
	// CheckRedundancy enables the pairwise subsumption pass over a
	// function's clause list on every call, per internal/config's
	// check_redundancy setting.
	CheckRedundancy bool
}

// Install wires m into pkg/eval's apply dispatch. Call once at program
// startup.
func (m *Machine) Install() { eval.SetCaller(m) }

// Call runs fn's clause list against arg, with receiver (if non-nil)
// bound under the reserved name "this".
func (m *Machine) Call(c *eval.Ctx, fn *term.FunctionVal, receiver *term.Object, arg term.Node) (term.Node, error) {
	site := tracing.Line{Func: callName(fn)}
	if t := c.Tracer(); t != nil {
		t.Push(site)
		defer t.Pop()
	}

	env := c.Env()
	saved := env.GetConfig()
	env.PushSavedConfig(saved)
	env.SetConfig(fn.Closure)
	env.PushScope()

	prevGlobals := c.ResetGlobalDecls()

	defer func() {
		env.PopScope()
		env.PopSavedConfig()
		c.RestoreGlobalDecls(prevGlobals)
	}()

	clauseIdx, bindings, err := firstMatchingClause(c, fn.Bodies, arg)
	if err != nil {
		return nil, err
	}
	if clauseIdx < 0 {
		return nil, except.NewPatternMatchFailed(fmt.Sprintf("actual argument %s not recognized by %s", describeArg(arg), callName(fn)))
	}

	for _, b := range bindings {
		if id, ok := b.LVal.(*term.ID); ok {
			env.EnterSym(id.Name, b.Value)
		}
	}
	if receiver != nil {
		env.EnterSym("this", receiver)
	}

	if m.CheckRedundancy && len(fn.Bodies) > 1 {
		prevDbg := c.SetDebugger(debugger.NopDebugger{})
		redundantErr := redundancy.Check(fn.Name, fn.Bodies)
		c.SetDebugger(prevDbg)
		if redundantErr != nil {
			return nil, redundantErr
		}
	}

	c.SetLineInfo(callName(fn), fn.Bodies[clauseIdx].Line)
	result, err := c.ExecBody(fn.Bodies[clauseIdx].Body)
	if err != nil {
		var ret *eval.ReturnSignal
		if errors.As(err, &ret) {
			return ret.Value, nil
		}
		return nil, err
	}
	return result, nil
}

// firstMatchingClause tries each clause's pattern against arg in source
// order and returns the first success, implementing the committed-choice
// dispatch rule: the first clause whose pattern unifies wins, later
// clauses are never tried even if they would also match.
func firstMatchingClause(c *eval.Ctx, bodies []term.BodyClause, arg term.Node) (int, []unify.Binding, error) {
	for i, clause := range bodies {
		bindings, err := c.Unify(arg, clause.Pattern, unify.Matching)
		if err == nil {
			return i, bindings, nil
		}
	}
	return -1, nil, nil
}

func callName(fn *term.FunctionVal) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "<anonymous>"
}

func describeArg(n term.Node) string {
	if n == nil {
		return "<none>"
	}
	return n.Tag() + " " + n.String()
}
