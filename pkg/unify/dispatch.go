package unify

import (
	"regexp"

	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/env"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

// unify is the single recursive procedure every public entry point funnels
// through. Cases are tried in the fixed order below; the first matching
// case decides the outcome and later cases never run for that call.
func unify(t, p term.Node, mode Mode, ev Evaluator) ([]Binding, error) {
	// Case 1: both sides a raw string -> anchored regex; both sides the
	// same raw numeric/boolean kind -> value equality.
	if ts, ok := t.(*term.Str); ok {
		if ps, ok := p.(*term.Str); ok {
			return matchRegex(ts.Value, ps.Value, t, p)
		}
	}
	if ti, ok := t.(*term.Integer); ok {
		if pi, ok := p.(*term.Integer); ok {
			if ti.Value == pi.Value {
				return nil, nil
			}
			return nil, fail("integers differ", t, p)
		}
	}
	if tr, ok := t.(*term.Real); ok {
		if pr, ok := p.(*term.Real); ok {
			if tr.Value == pr.Value {
				return nil, nil
			}
			return nil, fail("reals differ", t, p)
		}
	}
	if tb, ok := t.(*term.Boolean); ok {
		if pb, ok := p.(*term.Boolean); ok {
			if tb.Value == pb.Value {
				return nil, nil
			}
			return nil, fail("booleans differ", t, p)
		}
	}

	// Case 2: list/tuple on either side.
	if isRawSequence(t) || isRawSequence(p) {
		if b, handled, err := unifyRawSequence(t, p, mode, ev); handled {
			return b, err
		}
	}

	// Case 3: subsuming-mode unwraps on the term side.
	if mode == Subsuming {
		if tn, ok := t.(*term.NamedPattern); ok {
			return unify(tn.Pattern, p, mode, ev)
		}
		if td, ok := t.(*term.Deref); ok {
			val, err := ev.Eval(td.Expr)
			if err != nil {
				return nil, err
			}
			return unify(val, p, mode, ev)
		}
	}

	// Case 4: object vs object.
	if to, ok := t.(*term.Object); ok {
		if po, ok := p.(*term.Object); ok {
			return unifyObjects(to, po, mode, ev)
		}
	}

	// Case 5: string pattern against a non-string term.
	if ps, ok := p.(*term.Str); ok {
		if _, isStr := t.(*term.Str); !isStr {
			return matchRegex(t.String(), ps.Value, t, p)
		}
	}

	// Case 6: conditional pattern.
	if pif, ok := p.(*term.IfExp); ok {
		return unifyIfExp(t, pif, mode, ev)
	}

	// Case 7: typematch pattern.
	if ptm, ok := p.(*term.TypeMatch); ok {
		return unifyTypeMatch(t, ptm, mode, ev)
	}

	// Case 8: named-pattern pattern.
	if pnp, ok := p.(*term.NamedPattern); ok {
		inner, err := unify(t, pnp.Pattern, mode, ev)
		if err != nil {
			return nil, err
		}
		bindings := append(append([]Binding{}, inner...), Binding{LVal: term.NewID(pnp.Name), Value: t})
		if err := checkLinear(bindings); err != nil {
			return nil, err
		}
		return bindings, nil
	}

	// Case 9: none pattern.
	if _, ok := p.(*term.None); ok {
		if _, ok := t.(*term.None); ok {
			return nil, nil
		}
		return nil, fail("expected none", t, p)
	}

	// Case 10: disallowed kinds, with the function-val/id exception.
	if disallowed(t, p) {
		return nil, fail("node kind not allowed in unification", t, p)
	}

	// Case 11: pattern wrapper.
	if pw, ok := p.(*term.Pattern); ok {
		return unify(t, pw.Inner, mode, ev)
	}
	if tw, ok := t.(*term.Pattern); ok {
		switch p.(type) {
		case *term.ID, *term.Index:
			// preserve the wrapper; fall through with t unchanged
		default:
			return unify(tw.Inner, p, mode, ev)
		}
	}

	// Case 12: object term vs apply pattern (struct construction).
	if to, ok := t.(*term.Object); ok {
		if pa, ok := p.(*term.Apply); ok {
			return unifyObjectVsApply(to, pa, mode, ev)
		}
	}

	// Case 13: index pattern.
	if pidx, ok := p.(*term.Index); ok {
		return []Binding{{LVal: pidx, Value: t}}, nil
	}

	// Case 14: id pattern.
	if pid, ok := p.(*term.ID); ok {
		if pid.Name == "this" {
			return nil, fail("the name 'this' is reserved", t, p)
		}
		if pid.IsWildcard() {
			return nil, nil
		}
		return []Binding{{LVal: pid, Value: t}}, nil
	}

	// Case 15: head-tail pattern.
	if pht, ok := p.(*term.HeadTail); ok {
		return unifyHeadTail(t, pht, mode, ev)
	}

	// Case 16: deref pattern.
	if pd, ok := p.(*term.Deref); ok {
		val, err := ev.Eval(pd.Expr)
		if err != nil {
			return nil, err
		}
		return unify(t, val, mode, ev)
	}

	// Case 17: apply pattern.
	if pa, ok := p.(*term.Apply); ok {
		ta, ok2 := t.(*term.Apply)
		if !ok2 {
			return nil, fail("expected an application", t, p)
		}
		pid, pIsID := pa.Func.(*term.ID)
		tid, tIsID := ta.Func.(*term.ID)
		if !pIsID || !tIsID || pid.Name != tid.Name {
			return nil, fail("application heads differ", t, p)
		}
		return unify(ta.Arg, pa.Arg, mode, ev)
	}

	// Case 18: constraint pattern.
	if pc, ok := p.(*term.Constraint); ok {
		ev.EnterConstraint()
		_, err := unify(t, pc.Pattern, mode, ev)
		ev.ExitConstraint()
		if err != nil {
			return nil, err
		}
		return nil, nil
	}

	// Case 19: structural catch-all.
	return unifyStructural(t, p, mode, ev)
}

func matchRegex(subject, pattern string, t, p term.Node) ([]Binding, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, except.NewPatternMatchFailed("invalid string pattern: " + err.Error())
	}
	if re.MatchString(subject) {
		return nil, nil
	}
	return nil, fail("string does not match pattern", t, p)
}

func isRawSequence(n term.Node) bool {
	switch n.(type) {
	case *term.List, *term.Tuple:
		return true
	default:
		return false
	}
}

// unifyRawSequence implements case 2. The bool return reports whether
// this case claimed the pair; when false, dispatch must keep trying later
// cases (e.g. a list term against a head-tail pattern is not this case's
// concern).
func unifyRawSequence(t, p term.Node, mode Mode, ev Evaluator) ([]Binding, bool, error) {
	tSeq, tOK := asSequence(t)
	pSeq, pOK := asSequence(p)
	if !tOK || !pOK {
		return nil, false, nil
	}
	if t.Tag() != p.Tag() {
		return nil, true, fail("list and tuple do not unify", t, p)
	}
	if len(tSeq) != len(pSeq) {
		return nil, true, fail("sequences differ in length", t, p)
	}
	var bindings []Binding
	for i := range tSeq {
		sub, err := unify(tSeq[i], pSeq[i], mode, ev)
		if err != nil {
			return nil, true, err
		}
		bindings = append(bindings, sub...)
	}
	if err := checkLinear(bindings); err != nil {
		return nil, true, err
	}
	return bindings, true, nil
}

func asSequence(n term.Node) ([]term.Node, bool) {
	switch v := n.(type) {
	case *term.List:
		return v.Elements, true
	case *term.Tuple:
		return v.Elements, true
	default:
		return nil, false
	}
}

func unifyObjects(t, p *term.Object, mode Mode, ev Evaluator) ([]Binding, error) {
	if t.StructName != p.StructName {
		return nil, fail("objects of different structs", t, p)
	}
	if len(t.Memory) != len(p.Memory) {
		return nil, fail("object memory length mismatch", t, p)
	}
	var bindings []Binding
	for i := range t.Memory {
		sub, err := unify(t.Memory[i], p.Memory[i], mode, ev)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, sub...)
	}
	if err := checkLinear(bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

func unifyIfExp(t term.Node, p *term.IfExp, mode Mode, ev Evaluator) ([]Binding, error) {
	if mode == Subsuming {
		if _, bothConditional := t.(*term.IfExp); bothConditional {
			if !ev.CondWarningEmitted() {
				ev.Warn("cannot prove redundancy across two conditional patterns")
				ev.SetCondWarningEmitted(true)
			}
			return nil, fail("conditional patterns cannot be proven to subsume one another", t, p)
		}
		return nil, fail("a conditional pattern cannot subsume a non-conditional term", t, p)
	}

	if p.Else != nil {
		return nil, fail("a conditional pattern may not carry an else branch", t, p)
	}

	bindings, err := unify(t, p.Then, mode, ev)
	if err != nil {
		return nil, err
	}

	ev.Env().PushScope()
	declare(ev.Env(), bindings)
	condVal, err := ev.Eval(p.Cond)
	ev.Env().PopScope()
	if err != nil {
		return nil, err
	}
	if !isTruthy(condVal) {
		return nil, fail("conditional pattern guard was false", t, p)
	}

	if ev.ConstraintDepth() > 0 {
		return nil, nil
	}
	return bindings, nil
}

func isTruthy(n term.Node) bool {
	b, ok := n.(*term.Boolean)
	return ok && b.Value
}

func declare(e *env.Environment, bindings []Binding) {
	for _, b := range bindings {
		if id, ok := b.LVal.(*term.ID); ok {
			e.EnterSym(id.Name, b.Value)
		}
	}
}

func unifyTypeMatch(t term.Node, p *term.TypeMatch, mode Mode, ev Evaluator) ([]Binding, error) {
	name := p.TypeName

	if mode == Subsuming {
		if otherTM, ok := t.(*term.TypeMatch); ok {
			if otherTM.TypeName == name {
				return nil, nil
			}
			return nil, fail("typematch names differ", t, p)
		}
	}

	if term.IsPrimitiveTypeName(name) {
		if t.Tag() == name {
			return nil, nil
		}
		if mode == Subsuming && name == term.TagList {
			if _, ok := t.(*term.HeadTail); ok {
				return nil, nil
			}
		}
		return nil, fail("type does not match "+name, t, p)
	}

	if name == "function" {
		switch t.(type) {
		case *term.FunctionVal, *term.MemberFunctionVal:
			return nil, nil
		default:
			return nil, fail("expected a function value", t, p)
		}
	}

	if name == "pattern" {
		tag := t.Tag()
		if tag == term.TagID && mode == Subsuming {
			return nil, fail("id is excluded from %pattern in subsuming mode", t, p)
		}
		if term.IsPatternTag(tag) {
			return nil, nil
		}
		return nil, fail("term is not a pattern-shaped value", t, p)
	}

	sym, found := ev.Env().LookupSym(name)
	structDef, isStruct := sym.(*term.Struct)
	if !found || !isStruct {
		return nil, except.NewSystemError("unknown type name in typematch: " + name)
	}
	obj, isObj := t.(*term.Object)
	if !isObj || obj.StructName != structDef.Name {
		return nil, fail("expected an object of struct "+structDef.Name, t, p)
	}
	return nil, nil
}

func disallowed(t, p term.Node) bool {
	if term.IsDisallowedInUnify(t.Tag()) {
		if t.Tag() == term.TagFunctionVal {
			if _, pIsID := p.(*term.ID); pIsID {
				return false
			}
		}
		return true
	}
	if term.IsDisallowedInUnify(p.Tag()) {
		return true
	}
	return false
}

func unifyObjectVsApply(obj *term.Object, apply *term.Apply, mode Mode, ev Evaluator) ([]Binding, error) {
	headID, isID := apply.Func.(*term.ID)
	if !isID {
		return nil, fail("struct-construction pattern must name a struct", obj, apply)
	}
	sym, found := ev.Env().LookupSym(headID.Name)
	structDef, isStruct := sym.(*term.Struct)
	if !found || !isStruct || structDef.Name != obj.StructName {
		return nil, fail("object is not an instance of "+headID.Name, obj, apply)
	}

	var args []term.Node
	if tup, ok := apply.Arg.(*term.Tuple); ok {
		args = tup.Elements
	} else {
		args = []term.Node{apply.Arg}
	}

	dataIdx := structDef.DataMemberIndices()
	if len(args) != len(dataIdx) {
		return nil, fail("struct-construction pattern arity mismatch", obj, apply)
	}

	var bindings []Binding
	for i, idx := range dataIdx {
		sub, err := unify(obj.Memory[idx], args[i], mode, ev)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, sub...)
	}
	if err := checkLinear(bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

func unifyHeadTail(t term.Node, p *term.HeadTail, mode Mode, ev Evaluator) ([]Binding, error) {
	if mode == Subsuming {
		if tht, ok := t.(*term.HeadTail); ok {
			pLen := headTailLength(p)
			tLen := headTailLength(tht)
			if pLen > tLen {
				return nil, fail("pattern head-tail prefix longer than term's", t, p)
			}
			var bindings []Binding
			pCur, tCur := term.Node(p), term.Node(tht)
			for i := 0; i < pLen; i++ {
				pNode := pCur.(*term.HeadTail)
				tNode := tCur.(*term.HeadTail)
				sub, err := unify(tNode.Head, pNode.Head, mode, ev)
				if err != nil {
					return nil, err
				}
				bindings = append(bindings, sub...)
				pCur, tCur = pNode.Tail, tNode.Tail
			}
			if err := checkLinear(bindings); err != nil {
				return nil, err
			}
			return bindings, nil
		}
	}

	list, ok := t.(*term.List)
	if !ok || len(list.Elements) == 0 {
		return nil, fail("expected a non-empty list", t, p)
	}
	head := list.Elements[0]
	tail := term.NewList(list.Elements[1:]...)

	bindings, err := unify(head, p.Head, mode, ev)
	if err != nil {
		return nil, err
	}
	sub, err := unify(tail, p.Tail, mode, ev)
	if err != nil {
		return nil, err
	}
	bindings = append(bindings, sub...)
	if err := checkLinear(bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

func headTailLength(n term.Node) int {
	count := 0
	for {
		ht, ok := n.(*term.HeadTail)
		if !ok {
			return count
		}
		count++
		n = ht.Tail
	}
}

func unifyStructural(t, p term.Node, mode Mode, ev Evaluator) ([]Binding, error) {
	if t.Tag() != p.Tag() {
		return nil, fail("tags differ", t, p)
	}
	tc, pc := structuralChildren(t), structuralChildren(p)
	if len(tc) != len(pc) {
		return nil, fail("arity mismatch", t, p)
	}
	if len(tc) == 0 {
		if t.Equal(p) {
			return nil, nil
		}
		return nil, fail("values differ", t, p)
	}
	var bindings []Binding
	for i := range tc {
		sub, err := unify(tc[i], pc[i], mode, ev)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, sub...)
	}
	if err := checkLinear(bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

func structuralChildren(n term.Node) []term.Node {
	switch v := n.(type) {
	case *term.RawHeadTail:
		return []term.Node{v.Head, v.Tail}
	case *term.RawToList:
		if v.Step != nil {
			return []term.Node{v.Start, v.Stop, v.Step}
		}
		return []term.Node{v.Start, v.Stop}
	case *term.ToList:
		if v.Step != nil {
			return []term.Node{v.Start, v.Stop, v.Step}
		}
		return []term.Node{v.Start, v.Stop}
	case *term.Is:
		return []term.Node{v.Exp, v.Pattern}
	case *term.In:
		return []term.Node{v.Exp, v.Collection}
	default:
		return nil
	}
}
