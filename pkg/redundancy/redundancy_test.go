package redundancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-lang/asteroid-go/pkg/redundancy"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

func TestCheckFlagsClauseSubsumedByAnEarlierOne(t *testing.T) {
	bodies := []term.BodyClause{
		{Pattern: term.NewTuple(term.NewID("x"), term.NewID("y")), Line: 1},
		{Pattern: term.NewTuple(term.NewID("x"), term.NewInteger(1)), Line: 2},
	}
	err := redundancy.Check("f", bodies)
	require.Error(t, err)
}

func TestCheckPassesDisjointClauses(t *testing.T) {
	bodies := []term.BodyClause{
		{Pattern: term.NewInteger(0), Line: 1},
		{Pattern: term.NewInteger(1), Line: 2},
	}
	err := redundancy.Check("f", bodies)
	assert.NoError(t, err)
}

func TestCheckNeverFlagsASingleClause(t *testing.T) {
	bodies := []term.BodyClause{
		{Pattern: term.NewID("x"), Line: 1},
	}
	err := redundancy.Check("f", bodies)
	assert.NoError(t, err, "a single clause can never be redundant with itself")
}
