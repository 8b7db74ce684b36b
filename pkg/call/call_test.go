package call_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-lang/asteroid-go/internal/fixtures"
	"github.com/asteroid-lang/asteroid-go/pkg/call"
	"github.com/asteroid-lang/asteroid-go/pkg/eval"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

func TestFirstMatchingClauseWinsOverLaterOnes(t *testing.T) {
	c := eval.New(nil, nil)
	(&call.Machine{CheckRedundancy: false}).Install()

	prog, ok := fixtures.Get("three-clause-dispatch")
	require.True(t, ok)

	result, err := c.ExecBody(prog)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.(*term.Integer).Value)
}

func TestRedundancyCheckRejectsUnreachableClause(t *testing.T) {
	c := eval.New(nil, nil)
	(&call.Machine{CheckRedundancy: true}).Install()

	prog, ok := fixtures.Get("three-clause-dispatch")
	require.True(t, ok)

	_, err := c.ExecBody(prog)
	require.Error(t, err)
}

func TestCallRestoresCallerScopeAfterReturn(t *testing.T) {
	c := eval.New(nil, nil)
	(&call.Machine{CheckRedundancy: false}).Install()

	fn := term.NewFunctionExp([]term.BodyClause{
		{
			Pattern: term.NewID("x"),
			Body: []term.Node{
				&term.UnifyStmt{Pattern: term.NewID("local"), Exp: term.NewInteger(99)},
				&term.Return{Exp: term.NewID("x")},
			},
		},
	})

	prog := []term.Node{
		&term.UnifyStmt{Pattern: term.NewID("f"), Exp: fn},
		&term.ExprStmt{Exp: term.NewApply(term.NewID("f"), term.NewInteger(7))},
	}

	result, err := c.ExecBody(prog)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.(*term.Integer).Value)

	_, ok := c.Env().LookupSym("local")
	assert.False(t, ok, "a callee's local binding must not leak into the caller's scope")

	_, ok = c.Env().LookupSym("x")
	assert.False(t, ok, "a callee's parameter binding must not leak into the caller's scope")
}
