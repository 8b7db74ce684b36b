// Package redundancy implements the pairwise clause-subsumption check:
// for every earlier/later clause pair, ask the unifier (in subsuming
// mode) whether the earlier clause's pattern would consume every term
// the later clause's pattern could also consume, which would make the
// later clause dead code under the call machinery's first-match-wins
// dispatch. Grounded on the reference interpreter's check_redundancy
// (the pairwise i<j loop) and, in its adversarial framing, on the
// teacher's Matche disjunctive combinator read backwards: where Matche
// accumulates every successful branch, this check instead looks for a
// branch that can never be reached.
package redundancy

import (
	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/env"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
	"github.com/asteroid-lang/asteroid-go/pkg/unify"
)

// scratchEvaluator satisfies unify.Evaluator using a throwaway
// environment, so the subsumption walk never touches the caller's live
// scope or constraint counters. In subsuming mode pkg/unify's if-exp case
// fails without evaluating its guard, so only a deref node on either side
// of a clause pair reaches Eval. Eval here always reports failure rather
// than truly evaluating, so a clause pair involving a deref is never
// reported as redundant.
type scratchEvaluator struct {
	env                *env.Environment
	constraintDepth    int
	condWarningEmitted bool
}

func (s *scratchEvaluator) Eval(node term.Node) (term.Node, error) {
	return nil, except.NewSystemError("redundancy check cannot evaluate live expressions")
}
func (s *scratchEvaluator) Env() *env.Environment { return s.env }
func (s *scratchEvaluator) ConstraintDepth() int  { return s.constraintDepth }
func (s *scratchEvaluator) EnterConstraint()      { s.constraintDepth++ }
func (s *scratchEvaluator) ExitConstraint() {
	if s.constraintDepth > 0 {
		s.constraintDepth--
	}
}
func (s *scratchEvaluator) CondWarningEmitted() bool     { return s.condWarningEmitted }
func (s *scratchEvaluator) SetCondWarningEmitted(v bool) { s.condWarningEmitted = v }
func (s *scratchEvaluator) Warn(string)                  {}

// Check runs the pairwise subsumption test over bodies and returns the
// first RedundantPatternFound it encounters, or nil if no clause is
// provably unreachable.
func Check(functionName string, bodies []term.BodyClause) error {
	ev := &scratchEvaluator{env: env.New()}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			_, err := unify.Unify(bodies[j].Pattern, bodies[i].Pattern, unify.Subsuming, ev)
			if err == nil {
				return except.NewRedundantPatternFound(functionName, bodies[i].Line, bodies[j].Line)
			}
		}
	}
	return nil
}
