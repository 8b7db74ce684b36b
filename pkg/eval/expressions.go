package eval

import (
	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
	"github.com/asteroid-lang/asteroid-go/pkg/unify"
)

func init() {
	register(term.TagID, evalID)
	register(term.TagApply, evalApply)
	register(term.TagIs, evalIs)
	register(term.TagIn, evalIn)
	register(term.TagIfExp, evalIfExpAsExpression)
	register(term.TagEvalExp, evalEvalExp)
}

func evalID(c *Ctx, n term.Node) (term.Node, error) {
	id := n.(*term.ID)
	v, ok := c.env.LookupSym(id.Name)
	if !ok {
		return nil, except.NewSystemError("unbound identifier " + id.Name)
	}
	return v, nil
}

// evalIfExpAsExpression handles if-exp met as an ordinary value
// expression (a conditional expression), as opposed to the pattern-side
// handling pkg/unify performs when if-exp appears as a clause pattern.
func evalIfExpAsExpression(c *Ctx, n term.Node) (term.Node, error) {
	ifx := n.(*term.IfExp)
	cond, err := c.Eval(ifx.Cond)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return c.Eval(ifx.Then)
	}
	if ifx.Else == nil {
		return nil, except.NewSystemError("if-expression without else used as a value")
	}
	return c.Eval(ifx.Else)
}

// evalIs implements "Exp is Pattern": unify Exp's value against Pattern
// and, on success, declare the resulting bindings into the current scope
// as a side effect before returning true.
func evalIs(c *Ctx, n term.Node) (term.Node, error) {
	isN := n.(*term.Is)
	v, err := c.Eval(isN.Exp)
	if err != nil {
		return nil, err
	}
	bindings, err := c.Unify(v, isN.Pattern, unify.Matching)
	if err != nil {
		return term.NewBoolean(false), nil
	}
	installBindings(c, bindings)
	return term.NewBoolean(true), nil
}

// evalIn implements "Exp in Collection" membership over a list, tuple, or
// string.
func evalIn(c *Ctx, n term.Node) (term.Node, error) {
	inN := n.(*term.In)
	v, err := c.Eval(inN.Exp)
	if err != nil {
		return nil, err
	}
	coll, err := c.Eval(inN.Collection)
	if err != nil {
		return nil, err
	}
	switch col := coll.(type) {
	case *term.List:
		for _, e := range col.Elements {
			if e.Equal(v) {
				return term.NewBoolean(true), nil
			}
		}
		return term.NewBoolean(false), nil
	case *term.Tuple:
		for _, e := range col.Elements {
			if e.Equal(v) {
				return term.NewBoolean(true), nil
			}
		}
		return term.NewBoolean(false), nil
	case *term.Str:
		sv, ok := v.(*term.Str)
		if !ok {
			return term.NewBoolean(false), nil
		}
		return term.NewBoolean(containsSubstr(col.Value, sv.Value)), nil
	default:
		return nil, except.NewSystemError("in requires a list, tuple, or string collection")
	}
}

func containsSubstr(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

// evalEvalExp evaluates Exp once to produce a term, then walks that term
// as code with pattern wrappers treated as transparent for the duration.
func evalEvalExp(c *Ctx, n term.Node) (term.Node, error) {
	ee := n.(*term.EvalExp)
	code, err := c.Eval(ee.Exp)
	if err != nil {
		return nil, err
	}
	c.enterEvalExp()
	defer c.exitEvalExp()
	return c.Eval(code)
}

func truthy(n term.Node) bool {
	b, ok := n.(*term.Boolean)
	return ok && b.Value
}
