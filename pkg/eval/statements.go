package eval

import (
	"errors"

	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/debugger"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
	"github.com/asteroid-lang/asteroid-go/pkg/unify"
)

func init() {
	register(term.TagExprStmt, evalExprStmt)
	register(term.TagUnify, evalUnifyStmt)
	register(term.TagReturn, evalReturn)
	register(term.TagBreak, evalBreak)
	register(term.TagThrow, evalThrow)
	register(term.TagTry, evalTry)
	register(term.TagFor, evalFor)
	register(term.TagWhile, evalWhile)
	register(term.TagRepeat, evalRepeat)
	register(term.TagLoop, evalLoop)
	register(term.TagIfStmt, evalIfStmt)
	register(term.TagStructDef, evalStructDef)
	register(term.TagGlobal, evalGlobal)
	register(term.TagAssert, evalAssert)
	register(term.TagImportList, evalImportList)
}

func evalExprStmt(c *Ctx, n term.Node) (term.Node, error) {
	return c.Eval(n.(*term.ExprStmt).Exp)
}

// evalUnifyStmt implements ordinary assignment: evaluate the RHS, unify
// it against the LHS pattern, install the resulting bindings.
func evalUnifyStmt(c *Ctx, n term.Node) (term.Node, error) {
	u := n.(*term.UnifyStmt)
	v, err := c.Eval(u.Exp)
	if err != nil {
		return nil, err
	}
	if fv, ok := v.(*term.FunctionVal); ok && fv.Name == "" {
		if id, ok := u.Pattern.(*term.ID); ok {
			fv.Name = id.Name
		}
	}
	bindings, err := c.Unify(v, u.Pattern, unify.Matching)
	if err != nil {
		return nil, err
	}
	installBindings(c, bindings)
	return v, nil
}

func installBindings(c *Ctx, bindings []unify.Binding) {
	for _, b := range bindings {
		switch lval := b.LVal.(type) {
		case *term.ID:
			if c.isDeclaredGlobal(lval.Name) {
				c.env.EnterGlobal(lval.Name, b.Value)
			} else {
				c.env.EnterSym(lval.Name, b.Value)
			}
		case *term.Index:
			base, err := c.Eval(lval.Base)
			if err != nil {
				continue
			}
			sub, err := c.Eval(lval.Subscript)
			if err != nil {
				continue
			}
			_ = StoreAtIndex(base, sub, b.Value)
		}
	}
}

func evalReturn(c *Ctx, n term.Node) (term.Node, error) {
	r := n.(*term.Return)
	var v term.Node = term.NewNone()
	if r.Exp != nil {
		val, err := c.Eval(r.Exp)
		if err != nil {
			return nil, err
		}
		v = val
	}
	return nil, &ReturnSignal{Value: v}
}

func evalBreak(c *Ctx, n term.Node) (term.Node, error) {
	return nil, &BreakSignal{}
}

func evalThrow(c *Ctx, n term.Node) (term.Node, error) {
	t := n.(*term.Throw)
	v, err := c.Eval(t.Exp)
	if err != nil {
		return nil, err
	}
	return nil, &ThrowSignal{Value: v}
}

// evalTry runs Body; a ThrowSignal, or any other internal error mapped
// through internal/except, is matched against Catches in order. An
// unmatched exception re-propagates, as do Return and Break signals,
// which a try never intercepts.
func evalTry(c *Ctx, n term.Node) (term.Node, error) {
	t := n.(*term.Try)
	result, err := c.ExecBody(t.Body)
	if err == nil {
		return result, nil
	}

	var ret *ReturnSignal
	var brk *BreakSignal
	if errors.As(err, &ret) || errors.As(err, &brk) {
		return nil, err
	}

	excVal := exceptionValue(err)

	for _, clause := range t.Catches {
		if clause.Pattern == nil {
			return c.ExecBody(clause.Body)
		}
		bindings, uerr := c.Unify(excVal, clause.Pattern, unify.Matching)
		if uerr != nil {
			continue
		}
		installBindings(c, bindings)
		return c.ExecBody(clause.Body)
	}
	return nil, err
}

// exceptionValue extracts the user-visible Exception object a throw or
// internal failure carries.
func exceptionValue(err error) term.Node {
	var thrown *ThrowSignal
	if errors.As(err, &thrown) {
		return thrown.Value
	}
	return except.ToExceptionTerm(err)
}

// evalFor evaluates Iterable once (a list or string, iterating
// character-by-character) and, for each element, attempts to unify it
// against Pattern; a failed unification silently skips the element. Like
// Python, a loop body never opens its own scope: bindings installed here
// are visible to, and can mutate, whatever the surrounding scope already
// holds.
func evalFor(c *Ctx, n term.Node) (term.Node, error) {
	f := n.(*term.For)
	iterable, err := c.Eval(f.Iterable)
	if err != nil {
		return nil, err
	}

	var elems []term.Node
	switch v := iterable.(type) {
	case *term.List:
		elems = v.Elements
	case *term.Str:
		for _, r := range v.Value {
			elems = append(elems, term.NewStr(string(r)))
		}
	default:
		return nil, except.NewSystemError("for requires a list or string iterable")
	}

	var result term.Node = term.NewNone()
	for _, e := range elems {
		bindings, uerr := c.Unify(e, f.Pattern, unify.Matching)
		if uerr != nil {
			continue
		}
		installBindings(c, bindings)
		v, err := c.ExecBody(f.Body)
		if err != nil {
			var brk *BreakSignal
			if errors.As(err, &brk) {
				return result, nil
			}
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalWhile, like evalFor, runs the body directly in the surrounding
// scope - no per-iteration scope, matching the reference interpreter's
// own "loop bodies do not create a new scope" rule.
func evalWhile(c *Ctx, n term.Node) (term.Node, error) {
	w := n.(*term.While)
	var result term.Node = term.NewNone()
	for {
		cond, err := c.Eval(w.Cond)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return result, nil
		}
		v, err := c.ExecBody(w.Body)
		if err != nil {
			var brk *BreakSignal
			if errors.As(err, &brk) {
				return result, nil
			}
			return nil, err
		}
		result = v
	}
}

func evalRepeat(c *Ctx, n term.Node) (term.Node, error) {
	r := n.(*term.Repeat)
	var result term.Node = term.NewNone()
	for {
		v, err := c.ExecBody(r.Body)
		if err != nil {
			var brk *BreakSignal
			if errors.As(err, &brk) {
				return result, nil
			}
			return nil, err
		}
		result = v
		cond, err := c.Eval(r.Until)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return result, nil
		}
	}
}

func evalLoop(c *Ctx, n term.Node) (term.Node, error) {
	l := n.(*term.Loop)
	var result term.Node = term.NewNone()
	for {
		v, err := c.ExecBody(l.Body)
		if err != nil {
			var brk *BreakSignal
			if errors.As(err, &brk) {
				return result, nil
			}
			return nil, err
		}
		result = v
	}
}

func evalIfStmt(c *Ctx, n term.Node) (term.Node, error) {
	ifs := n.(*term.IfStmt)
	for _, branch := range ifs.Branches {
		if branch.Cond == nil {
			return c.ExecBody(branch.Body)
		}
		cond, err := c.Eval(branch.Cond)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return c.ExecBody(branch.Body)
		}
	}
	return term.NewNone(), nil
}

// evalStructDef builds a *term.Struct template and binds it: data members
// default to none, function members are evaluated to function-val at
// definition time.
func evalStructDef(c *Ctx, n term.Node) (term.Node, error) {
	sd := n.(*term.StructDef)
	template := make([]term.Node, len(sd.MemberNames))
	for i, init := range sd.MemberInits {
		if init == nil {
			template[i] = term.NewNone()
			continue
		}
		v, err := c.Eval(init)
		if err != nil {
			return nil, err
		}
		template[i] = v
	}
	def := term.NewStruct(sd.Name, append([]string{}, sd.MemberNames...), template)
	c.env.EnterSym(sd.Name, def)
	return def, nil
}

// evalAssert evaluates Exp and faults with a SystemError if it is
// anything other than boolean true - the reference interpreter maps its
// own bare Python `assert` the same way, since an AssertionError falls
// through its try_stmt's catch-all Exception clause.
func evalAssert(c *Ctx, n term.Node) (term.Node, error) {
	a := n.(*term.Assert)
	v, err := c.Eval(a.Exp)
	if err != nil {
		return nil, err
	}
	b, ok := v.(*term.Boolean)
	if !ok || !b.Value {
		return nil, except.NewSystemError("assertion failed: " + a.Exp.String())
	}
	return term.NewNone(), nil
}

// evalImportList walks an already-resolved list of terms with the
// debugger silenced, since these terms belong to an imported module
// rather than the program currently being stepped through, and returns
// their values as a list.
func evalImportList(c *Ctx, n term.Node) (term.Node, error) {
	il := n.(*term.ImportList)
	prevDbg := c.SetDebugger(debugger.NopDebugger{})
	defer c.SetDebugger(prevDbg)

	out := make([]term.Node, len(il.Items))
	for i, item := range il.Items {
		v, err := c.Eval(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return term.NewList(out...), nil
}

func evalGlobal(c *Ctx, n term.Node) (term.Node, error) {
	g := n.(*term.Global)
	if c.env.IsSymbolLocal(g.Name) {
		return nil, except.NewSystemError("global " + g.Name + " conflicts with an existing local binding")
	}
	if _, ok := c.env.LookupSym(g.Name); !ok {
		c.env.EnterGlobal(g.Name, term.NewNone())
	}
	c.declareGlobal(g.Name)
	return term.NewNone(), nil
}
