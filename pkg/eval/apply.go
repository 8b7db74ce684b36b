package eval

import (
	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/operators"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

// Caller is the capability pkg/call exposes back to pkg/eval so apply
// dispatch can invoke a FunctionVal without pkg/eval importing pkg/call
// (which itself must import pkg/eval to walk clause bodies). Set once at
// program startup by calling pkg/call's Machine.Install.
type Caller interface {
	Call(c *Ctx, fn *term.FunctionVal, receiver *term.Object, arg term.Node) (term.Node, error)
}

var activeCaller Caller

// SetCaller installs the call-machinery implementation. pkg/call's
// Machine.Install calls this so apply dispatch can reach it without an
// import cycle.
func SetCaller(c Caller) { activeCaller = c }

// evalApply implements apply_exp: evaluate both sides, then dispatch on
// the callee's runtime tag.
func evalApply(c *Ctx, n term.Node) (term.Node, error) {
	ap := n.(*term.Apply)

	if id, ok := ap.Func.(*term.ID); ok && operators.IsOperator(id.Name) {
		return evalOperatorApply(c, id.Name, ap.Arg)
	}

	fn, err := c.Eval(ap.Func)
	if err != nil {
		return nil, err
	}
	arg, err := c.Eval(ap.Arg)
	if err != nil {
		return nil, err
	}

	switch callee := fn.(type) {
	case *NativeMethod:
		args := unpackArgs(arg)
		return callee.Fn(callee.Receiver, args)
	case *NativeFunction:
		args := unpackArgs(arg)
		return callee.Fn(nil, args)
	case *term.MemberFunctionVal:
		if activeCaller == nil {
			return nil, except.NewSystemError("call machinery not installed")
		}
		return activeCaller.Call(c, callee.Fn, callee.Receiver, arg)
	case *term.FunctionVal:
		if activeCaller == nil {
			return nil, except.NewSystemError("call machinery not installed")
		}
		return activeCaller.Call(c, callee, nil, arg)
	case *term.Struct:
		return constructObject(c, callee, arg)
	default:
		return nil, except.NewNotAFunction(fn.String())
	}
}

func evalOperatorApply(c *Ctx, name string, argNode term.Node) (term.Node, error) {
	arg, err := c.Eval(argNode)
	if err != nil {
		return nil, err
	}
	if operators.IsUnary(name) {
		return operators.Apply(name, arg)
	}
	tup, ok := arg.(*term.Tuple)
	if !ok || len(tup.Elements) != 2 {
		return nil, except.NewArithmeticError(name + " requires two operands")
	}
	return operators.Apply(name, tup.Elements[0], tup.Elements[1])
}

func unpackArgs(arg term.Node) []term.Node {
	if tup, ok := arg.(*term.Tuple); ok {
		return tup.Elements
	}
	if _, isNone := arg.(*term.None); isNone {
		return nil
	}
	return []term.Node{arg}
}

// constructObject builds an Object instance of struct def. If the struct
// has an __init__ member function it is called with the new instance as
// receiver; otherwise positional arguments (if any) are assigned into the
// data-member slots in order, and an arity mismatch is rejected.
func constructObject(c *Ctx, def *term.Struct, arg term.Node) (term.Node, error) {
	memory := make([]term.Node, len(def.Template))
	for i, t := range def.Template {
		memory[i] = t.Clone()
	}
	obj := term.NewObject(def.Name, def.MemberNames, memory)

	if initIdx := def.MemberIndex("__init__"); initIdx >= 0 {
		if fv, ok := def.Template[initIdx].(*term.FunctionVal); ok {
			if activeCaller == nil {
				return nil, except.NewSystemError("call machinery not installed")
			}
			if _, err := activeCaller.Call(c, fv, obj, arg); err != nil {
				return nil, err
			}
			return obj, nil
		}
	}

	if _, isNone := arg.(*term.None); isNone {
		return obj, nil
	}

	args := unpackArgs(arg)
	slots := def.DataMemberIndices()
	if len(args) != len(slots) {
		return nil, except.NewExpectationError(
			term.NewInteger(int64(len(args))).String(),
			term.NewInteger(int64(len(slots))).String(),
		)
	}
	for i, slot := range slots {
		obj.Memory[slot] = args[i]
	}
	return obj, nil
}
