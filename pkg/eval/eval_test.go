// Package eval_test exercises pkg/eval end-to-end against the named
// fixtures in internal/fixtures, wired through pkg/call the same way cmd/asteroid is - as an
// external test package, since pkg/call itself imports pkg/eval and an
// internal eval test file pulling in pkg/call would be a cycle.
package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/internal/fixtures"
	"github.com/asteroid-lang/asteroid-go/pkg/call"
	"github.com/asteroid-lang/asteroid-go/pkg/debugger"
	"github.com/asteroid-lang/asteroid-go/pkg/eval"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

func newTestCtx() *eval.Ctx {
	c := eval.New(nil, nil)
	(&call.Machine{CheckRedundancy: false}).Install()
	return c
}

func TestHeadTailDecompositionBindsHeadAndTail(t *testing.T) {
	c := newTestCtx()
	prog, ok := fixtures.Get("head-tail")
	require.True(t, ok)

	_, err := c.ExecBody(prog)
	require.NoError(t, err)

	h, ok := c.Env().LookupSym("h")
	require.True(t, ok)
	assert.Equal(t, int64(10), h.(*term.Integer).Value)

	tail, ok := c.Env().LookupSym("t")
	require.True(t, ok)
	tl, ok := tail.(*term.List)
	require.True(t, ok)
	require.Len(t, tl.Elements, 2)
	assert.Equal(t, int64(20), tl.Elements[0].(*term.Integer).Value)
	assert.Equal(t, int64(30), tl.Elements[1].(*term.Integer).Value)
}

func TestObjectConstructionAssignsPositionalMembers(t *testing.T) {
	c := newTestCtx()
	prog, ok := fixtures.Get("object-construction")
	require.True(t, ok)

	result, err := c.ExecBody(prog)
	require.NoError(t, err)

	obj, ok := result.(*term.Object)
	require.True(t, ok)
	assert.Equal(t, "Point", obj.StructName)
	assert.Equal(t, int64(3), obj.Memory[obj.MemberIndex("x")].(*term.Integer).Value)
	assert.Equal(t, int64(4), obj.Memory[obj.MemberIndex("y")].(*term.Integer).Value)
}

func TestTryMappingCatchesDivisionByZero(t *testing.T) {
	c := newTestCtx()
	prog, ok := fixtures.Get("try-mapping")
	require.True(t, ok)

	result, err := c.ExecBody(prog)
	require.NoError(t, err)

	kind, ok := result.(*term.Str)
	require.True(t, ok)
	assert.Equal(t, "ArithmeticError", kind.Value)
}

func TestConditionalPatternDispatchesOnGuard(t *testing.T) {
	for _, tc := range []struct {
		input int64
		want  string
	}{
		{5, "pos"},
		{0, "zero"},
		{-3, "neg"},
	} {
		c := newTestCtx()
		prog := fixtures.ConditionalPattern(tc.input)

		result, err := c.ExecBody(prog)
		require.NoError(t, err)
		assert.Equal(t, tc.want, result.(*term.Str).Value)
	}
}

func TestForAsFilterOnlyRunsBodyOnMatchingElements(t *testing.T) {
	c := newTestCtx()
	prog, ok := fixtures.Get("for-as-filter")
	require.True(t, ok)

	_, err := c.ExecBody(prog)
	require.NoError(t, err)

	// Only (2,21) matches the (2,y) pattern, so y can only have been bound
	// to 21; loop bodies share the surrounding scope, so y stays visible.
	y, ok := c.Env().LookupSym("y")
	require.True(t, ok)
	assert.Equal(t, int64(21), y.(*term.Integer).Value)
}

func TestEvalUnboundIdentifierIsSystemError(t *testing.T) {
	c := newTestCtx()
	_, err := c.Eval(term.NewID("undefined"))
	require.Error(t, err)
	var sysErr *except.SystemError
	assert.ErrorAs(t, err, &sysErr)
}

func TestGlobalStatementRoutesAssignmentToGlobalFrame(t *testing.T) {
	c := newTestCtx()
	c.Env().EnterGlobal("counter", term.NewInteger(0))

	body := []term.Node{
		&term.Global{Name: "counter"},
		&term.UnifyStmt{Pattern: term.NewID("counter"), Exp: term.NewInteger(1)},
	}
	c.Env().PushScope()
	_, err := c.ExecBody(body)
	require.NoError(t, err)
	c.Env().PopScope()

	v, ok := c.Env().LookupSym("counter")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*term.Integer).Value)
}

func TestAssertFaultsWithSystemErrorOnFalsyExpression(t *testing.T) {
	c := newTestCtx()
	_, err := c.Eval(&term.Assert{Exp: term.NewBoolean(false)})
	require.Error(t, err)
	var sysErr *except.SystemError
	assert.ErrorAs(t, err, &sysErr)

	_, err = c.Eval(&term.Assert{Exp: term.NewBoolean(true)})
	assert.NoError(t, err)
}

func TestImportListWalksResolvedItemsWithDebuggerSuppressed(t *testing.T) {
	c := newTestCtx()
	rec := &recordingDebugger{}
	prev := c.SetDebugger(rec)

	result, err := c.Eval(&term.ImportList{Items: []term.Node{
		term.NewInteger(1),
		term.NewInteger(2),
	}})
	require.NoError(t, err)

	list, ok := result.(*term.List)
	require.True(t, ok)
	require.Len(t, list.Elements, 2)
	assert.Equal(t, int64(1), list.Elements[0].(*term.Integer).Value)
	assert.Equal(t, int64(2), list.Elements[1].(*term.Integer).Value)

	// Only the outer import-list dispatch notifies; the suppressed inner
	// walk of its two items must not.
	assert.Equal(t, 1, rec.notifyCount)
	c.SetDebugger(prev)
}

func TestEscapeInvokesRegisteredHostCallback(t *testing.T) {
	c := newTestCtx()
	eval.RegisterEscape("eval-test:double-n", func(c *eval.Ctx) {
		n, _ := c.Env().LookupSym("n")
		c.SetRetval(term.NewInteger(2 * n.(*term.Integer).Value))
	})
	c.Env().EnterSym("n", term.NewInteger(21))

	result, err := c.Eval(term.NewEscape("eval-test:double-n"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.(*term.Integer).Value)

	result, err = c.Eval(term.NewEscape("eval-test:unregistered"))
	require.NoError(t, err)
	assert.Equal(t, term.TagNone, result.Tag(), "an unregistered escape payload is a silent none-returning no-op")
}

func TestEvalNotifiesAttachedDebuggerOnEveryDispatch(t *testing.T) {
	c := newTestCtx()
	rec := &recordingDebugger{}
	c.SetDebugger(rec)

	_, err := c.Eval(term.NewInteger(7))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.notifyCount)
}

// recordingDebugger counts Notify calls on top of NopDebugger's no-op
// behavior, so tests can assert the evaluator actually talks to an
// attached debugger instead of only asserting it compiles against one.
type recordingDebugger struct {
	debugger.NopDebugger
	notifyCount int
}

func (r *recordingDebugger) Notify(event, detail string) { r.notifyCount++ }

func TestBreakStopsLoopStatement(t *testing.T) {
	c := newTestCtx()
	c.Env().EnterSym("n", term.NewInteger(0))

	loop := &term.Loop{
		Body: []term.Node{
			&term.IfStmt{Branches: []term.IfBranch{
				{
					Cond: term.NewApply(term.NewID("__ge__"), term.NewTuple(term.NewID("n"), term.NewInteger(3))),
					Body: []term.Node{&term.Break{}},
				},
			}},
			&term.UnifyStmt{
				Pattern: term.NewID("n"),
				Exp:     term.NewApply(term.NewID("__plus__"), term.NewTuple(term.NewID("n"), term.NewInteger(1))),
			},
		},
	}

	_, err := c.ExecBody([]term.Node{loop})
	require.NoError(t, err)

	v, ok := c.Env().LookupSym("n")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.(*term.Integer).Value)
}
