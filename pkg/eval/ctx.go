// Package eval is the tree-walking evaluator: a tag-keyed dispatch table
// over term.Node, grounded on the reference interpreter's dispatch_dict
// mapping AST tags to handler functions, reimplemented here as a Go
// map[string]Handler populated once at package init rather than rebuilt
// per call.
package eval

import (
	"fmt"

	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/internal/tracing"
	"github.com/asteroid-lang/asteroid-go/pkg/debugger"
	"github.com/asteroid-lang/asteroid-go/pkg/env"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
	"github.com/asteroid-lang/asteroid-go/pkg/unify"
)

// Ctx is the evaluator's running state: the live symbol environment, the
// attached tracer and debugger, and the handful of counters the unifier's
// if-exp/constraint cases need to read and mutate through the
// unify.Evaluator interface.
type Ctx struct {
	env    *env.Environment
	tracer *tracing.Tracer
	dbg    debugger.Debugger

	constraintDepth    int
	condWarningEmitted bool
	ignorePatternDepth int
	globalDecls        map[string]bool

	curFile string
	curLine int

	// retval is the single return-value register an escape payload may
	// assign into, mirroring the reference interpreter's __retval__
	// global.
	retval term.Node
}

// New builds a Ctx over a fresh global environment.
func New(tracer *tracing.Tracer, dbg debugger.Debugger) *Ctx {
	if dbg == nil {
		dbg = debugger.NopDebugger{}
	}
	c := &Ctx{env: env.New(), tracer: tracer, dbg: dbg}
	InstallGlobals(c)
	return c
}

// Env exposes the live environment, satisfying unify.Evaluator and used
// directly by pkg/call.
func (c *Ctx) Env() *env.Environment { return c.env }

// Tracer exposes the attached call-trace stack, used by pkg/call.
func (c *Ctx) Tracer() *tracing.Tracer { return c.tracer }

// Debugger exposes the attached debugger, used by pkg/call to suppress
// notifications while the redundancy checker runs.
func (c *Ctx) Debugger() debugger.Debugger { return c.dbg }

// SetDebugger swaps the attached debugger, returning the previous one so
// the caller can restore it afterward.
func (c *Ctx) SetDebugger(d debugger.Debugger) debugger.Debugger {
	prev := c.dbg
	c.dbg = d
	return prev
}

func (c *Ctx) ConstraintDepth() int { return c.constraintDepth }
func (c *Ctx) EnterConstraint()     { c.constraintDepth++ }
func (c *Ctx) ExitConstraint() {
	if c.constraintDepth > 0 {
		c.constraintDepth--
	}
}

func (c *Ctx) CondWarningEmitted() bool     { return c.condWarningEmitted }
func (c *Ctx) SetCondWarningEmitted(v bool) { c.condWarningEmitted = v }

func (c *Ctx) Warn(msg string) {
	if c.tracer != nil {
		c.tracer.Logger().Warn(msg)
	}
}

// SetLineInfo records the source location of the node currently being
// walked and forwards it to the attached debugger.
func (c *Ctx) SetLineInfo(file string, line int) {
	c.curFile, c.curLine = file, line
	c.dbg.SetLineInfo(file, line)
}

// SetRetval assigns the return-value register an escape payload observes;
// called by a registered escape callback, never by the evaluator itself.
func (c *Ctx) SetRetval(v term.Node) { c.retval = v }

// IgnorePatternWrappers reports whether eval-exp's "walk this term as
// code" mode is currently active, in which pattern/named-pattern
// wrappers are transparent rather than pattern-context markers.
func (c *Ctx) IgnorePatternWrappers() bool { return c.ignorePatternDepth > 0 }

func (c *Ctx) enterEvalExp() { c.ignorePatternDepth++ }
func (c *Ctx) exitEvalExp() {
	if c.ignorePatternDepth > 0 {
		c.ignorePatternDepth--
	}
}

// ResetGlobalDecls clears the set of names declared `global` in the
// current function body, returning the previous set so pkg/call can
// restore it when the call returns. Declarations don't span call
// boundaries: each call starts with a clean set.
func (c *Ctx) ResetGlobalDecls() map[string]bool {
	prev := c.globalDecls
	c.globalDecls = nil
	return prev
}

// RestoreGlobalDecls reinstates a set previously returned by
// ResetGlobalDecls.
func (c *Ctx) RestoreGlobalDecls(prev map[string]bool) { c.globalDecls = prev }

func (c *Ctx) declareGlobal(name string) {
	if c.globalDecls == nil {
		c.globalDecls = map[string]bool{}
	}
	c.globalDecls[name] = true
}

func (c *Ctx) isDeclaredGlobal(name string) bool { return c.globalDecls[name] }

// Unify is the single entry point pkg/call and the statement handlers use
// to run the unifier against this Ctx as its Evaluator.
func (c *Ctx) Unify(t, p term.Node, mode unify.Mode) ([]unify.Binding, error) {
	return unify.Unify(t, p, mode, c)
}

// Eval dispatches node to its registered handler by tag. There is no
// fallback: an unregistered tag is an evaluator bug, not a user error.
// Every dispatch notifies the attached debugger first, mirroring the
// reference interpreter's notify_debugger() call at the top of each of
// its node-walking functions - a no-op unless a real debugger is
// attached (see pkg/debugger.NopDebugger).
func (c *Ctx) Eval(node term.Node) (term.Node, error) {
	if node == nil {
		return term.NewNone(), nil
	}
	h, ok := handlers[node.Tag()]
	if !ok {
		return nil, except.NewSystemError(fmt.Sprintf("no evaluator registered for tag %q", node.Tag()))
	}
	c.dbg.SetLineInfo(c.curFile, c.curLine)
	c.dbg.Notify(node.Tag(), node.String())
	return h(c, node)
}

// ExecBody runs a statement list in order, returning the value of the
// last executed statement as the list's implicit result.
func (c *Ctx) ExecBody(body []term.Node) (term.Node, error) {
	var result term.Node = term.NewNone()
	for _, stmt := range body {
		v, err := c.Eval(stmt)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// Handler is one dispatch-table entry: given the evaluator state and a
// node of the tag it is registered under, produce a value or mutate
// state and return a non-local-exit signal.
type Handler func(c *Ctx, n term.Node) (term.Node, error)

var handlers = map[string]Handler{}

func register(tag string, h Handler) { handlers[tag] = h }
