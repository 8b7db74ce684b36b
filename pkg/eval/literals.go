package eval

import (
	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

func rangeTypeError() error {
	return except.NewArithmeticError("to-list requires integer start/stop/step and a nonzero step")
}

// escapeHandlers is the evaluator's FFI boundary. The reference
// interpreter's escape node carries a raw host-language source string
// and runs it with exec(); Go cannot exec an arbitrary source string the
// same way, so a payload here is the name of a Go callback registered
// ahead of time with RegisterEscape rather than executable text. The
// callback observes and may assign to the same single return-value
// register the reference interpreter's __retval__ global models.
var escapeHandlers = map[string]func(c *Ctx){}

// RegisterEscape installs fn as the host payload named name: every
// escape node whose Code equals name invokes fn when evaluated.
func RegisterEscape(name string, fn func(c *Ctx)) {
	escapeHandlers[name] = fn
}

// evalEscape resets the return-value register to none, runs the
// registered payload (if any - an unregistered name is a silent no-op,
// matching an escape block that never assigns __retval__), and returns
// whatever the payload left in the register.
func evalEscape(c *Ctx, n term.Node) (term.Node, error) {
	e := n.(*term.Escape)
	c.retval = term.NewNone()
	if fn, ok := escapeHandlers[e.Code]; ok {
		fn(c)
	}
	return c.retval, nil
}

func init() {
	// Scalars and the two terminators evaluate to themselves.
	self := func(c *Ctx, n term.Node) (term.Node, error) { return n, nil }
	register(term.TagInteger, self)
	register(term.TagReal, self)
	register(term.TagBoolean, self)
	register(term.TagString, self)
	register(term.TagNone, self)
	register(term.TagNil, self)
	register(term.TagForeign, self)
	register(term.TagEscape, evalEscape)

	// A bare pattern wrapper met in ordinary (non-pattern) evaluation
	// context is a quoted pattern value and is returned as-is - except
	// while eval-exp is walking a term as code, where pattern/named-pattern
	// wrappers are transparent and evaluate through to their inner node.
	register(term.TagPattern, evalPattern)
	register(term.TagNamedPattern, evalNamedPattern)

	register(term.TagList, evalList)
	register(term.TagTuple, evalTuple)
	register(term.TagHeadTail, evalHeadTail)
	register(term.TagRawHeadTail, evalRawHeadTail)
	register(term.TagToList, evalToList)
	register(term.TagRawToList, evalRawToList)
}

func evalPattern(c *Ctx, n term.Node) (term.Node, error) {
	p := n.(*term.Pattern)
	if c.IgnorePatternWrappers() {
		return c.Eval(p.Inner)
	}
	return p, nil
}

func evalNamedPattern(c *Ctx, n term.Node) (term.Node, error) {
	np := n.(*term.NamedPattern)
	if c.IgnorePatternWrappers() {
		return c.Eval(np.Pattern)
	}
	return np, nil
}

func evalList(c *Ctx, n term.Node) (term.Node, error) {
	l := n.(*term.List)
	out := make([]term.Node, len(l.Elements))
	for i, e := range l.Elements {
		v, err := c.Eval(e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return term.NewList(out...), nil
}

func evalTuple(c *Ctx, n term.Node) (term.Node, error) {
	tp := n.(*term.Tuple)
	out := make([]term.Node, len(tp.Elements))
	for i, e := range tp.Elements {
		v, err := c.Eval(e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return term.NewTuple(out...), nil
}

func evalHeadTail(c *Ctx, n term.Node) (term.Node, error) {
	ht := n.(*term.HeadTail)
	head, err := c.Eval(ht.Head)
	if err != nil {
		return nil, err
	}
	tail, err := c.Eval(ht.Tail)
	if err != nil {
		return nil, err
	}
	return flattenHeadTail(head, tail)
}

func evalRawHeadTail(c *Ctx, n term.Node) (term.Node, error) {
	rht := n.(*term.RawHeadTail)
	head, err := c.Eval(rht.Head)
	if err != nil {
		return nil, err
	}
	tail, err := c.Eval(rht.Tail)
	if err != nil {
		return nil, err
	}
	return flattenHeadTail(head, tail)
}

// flattenHeadTail builds the concrete List a head-tail construction
// denotes once both sides are values: a list tail has the head prepended,
// a nil tail yields a one-element list, and any other tail becomes the
// second element of a two-element list.
func flattenHeadTail(head, tail term.Node) (term.Node, error) {
	switch t := tail.(type) {
	case *term.List:
		return term.NewList(append([]term.Node{head}, t.Elements...)...), nil
	case *term.Nil:
		return term.NewList(head), nil
	default:
		return term.NewList(head, tail), nil
	}
}

func evalToList(c *Ctx, n term.Node) (term.Node, error) {
	tl := n.(*term.ToList)
	return rangeToList(c, tl.Start, tl.Stop, tl.Step)
}

func evalRawToList(c *Ctx, n term.Node) (term.Node, error) {
	tl := n.(*term.RawToList)
	return rangeToList(c, tl.Start, tl.Stop, tl.Step)
}

func rangeToList(c *Ctx, startN, stopN, stepN term.Node) (term.Node, error) {
	start, err := c.Eval(startN)
	if err != nil {
		return nil, err
	}
	stop, err := c.Eval(stopN)
	if err != nil {
		return nil, err
	}
	step := int64(1)
	if stepN != nil {
		sv, err := c.Eval(stepN)
		if err != nil {
			return nil, err
		}
		si, ok := sv.(*term.Integer)
		if !ok {
			return nil, rangeTypeError()
		}
		step = si.Value
	}
	si, ok1 := start.(*term.Integer)
	ei, ok2 := stop.(*term.Integer)
	if !ok1 || !ok2 || step == 0 {
		return nil, rangeTypeError()
	}
	var out []term.Node
	if step > 0 {
		for v := si.Value; v <= ei.Value; v += step {
			out = append(out, term.NewInteger(v))
		}
	} else {
		for v := si.Value; v >= ei.Value; v += step {
			out = append(out, term.NewInteger(v))
		}
	}
	return term.NewList(out...), nil
}
