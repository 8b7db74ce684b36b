// Package operators implements Asteroid's fixed set of built-in
// arithmetic, comparison, and logical operators, grounded on the
// reference interpreter's handle_builtins dispatch: both operands are
// evaluated by the caller, their head tags are promoted to a common
// result tag, and the operation is applied.
//
// The reference implementation's own type-promotion table (the support
// module's promote/map2boolean/term2string helpers) was not available in
// the retrieved source; the promotion rules below are reconstructed from
// the specification's prose description of §4.5 and documented per-rule
// rather than transcribed from a table that could not be read.
package operators

import (
	"strconv"

	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

var binaryOperators = map[string]bool{
	"__plus__": true, "__minus__": true, "__times__": true, "__divide__": true,
	"__or__": true, "__and__": true,
	"__eq__": true, "__ne__": true,
	"__le__": true, "__lt__": true, "__ge__": true, "__gt__": true,
}

var unaryOperators = map[string]bool{
	"__uminus__": true, "__uplus__": true, "__not__": true,
}

// IsOperator reports whether name is one of the fixed built-in operator
// symbols the apply evaluator special-cases rather than dispatching
// through the ordinary function-call machinery.
func IsOperator(name string) bool {
	return binaryOperators[name] || unaryOperators[name]
}

// IsBinary and IsUnary report the operator's arity, since the apply
// evaluator unpacks its single argument term differently for each.
func IsBinary(name string) bool { return binaryOperators[name] }
func IsUnary(name string) bool  { return unaryOperators[name] }

// Apply evaluates a built-in operator over already-evaluated operands.
func Apply(name string, args ...term.Node) (term.Node, error) {
	switch name {
	case "__plus__":
		return plus(args[0], args[1])
	case "__minus__":
		return numericBinary(args[0], args[1], func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case "__times__":
		return numericBinary(args[0], args[1], func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case "__divide__":
		return divide(args[0], args[1])
	case "__or__":
		return term.NewBoolean(toBool(args[0]) || toBool(args[1])), nil
	case "__and__":
		return term.NewBoolean(toBool(args[0]) && toBool(args[1])), nil
	case "__eq__":
		return term.NewBoolean(equalValue(args[0], args[1])), nil
	case "__ne__":
		return term.NewBoolean(!equalValue(args[0], args[1])), nil
	case "__le__":
		return compare(args[0], args[1], func(c int) bool { return c <= 0 })
	case "__lt__":
		return compare(args[0], args[1], func(c int) bool { return c < 0 })
	case "__ge__":
		return compare(args[0], args[1], func(c int) bool { return c >= 0 })
	case "__gt__":
		return compare(args[0], args[1], func(c int) bool { return c > 0 })
	case "__uminus__":
		return uminus(args[0])
	case "__uplus__":
		return uplus(args[0])
	case "__not__":
		return term.NewBoolean(!toBool(args[0])), nil
	default:
		return nil, except.NewSystemError("unknown operator " + name)
	}
}

// plus additionally supports list concatenation and string concatenation
// (via term2string-style coercion), beyond ordinary numeric addition.
func plus(a, b term.Node) (term.Node, error) {
	if al, ok := a.(*term.List); ok {
		if bl, ok := b.(*term.List); ok {
			return term.NewList(append(append([]term.Node{}, al.Elements...), bl.Elements...)...), nil
		}
		return nil, except.NewArithmeticError("cannot add a list and a non-list")
	}
	if ab, ok := a.(*term.Boolean); ok {
		if bb, ok := b.(*term.Boolean); ok {
			return term.NewBoolean(ab.Value || bb.Value), nil
		}
	}
	if _, aIsStr := a.(*term.Str); aIsStr {
		return term.NewStr(stringOf(a) + stringOf(b)), nil
	}
	if _, bIsStr := b.(*term.Str); bIsStr {
		return term.NewStr(stringOf(a) + stringOf(b)), nil
	}
	return numericBinary(a, b, func(x, y int64) int64 { return x + y }, func(x, y float64) float64 { return x + y })
}

// divide is integer-truncating when both operands are integer, and true
// (floating) division as soon as either operand is real.
func divide(a, b term.Node) (term.Node, error) {
	ai, aIsInt := a.(*term.Integer)
	bi, bIsInt := b.(*term.Integer)
	if aIsInt && bIsInt {
		if bi.Value == 0 {
			return nil, except.NewArithmeticError("division by zero")
		}
		return term.NewInteger(ai.Value / bi.Value), nil
	}
	af, aerr := asFloat(a)
	bf, berr := asFloat(b)
	if aerr != nil || berr != nil {
		return nil, except.NewArithmeticError("/ requires numeric operands")
	}
	if bf == 0 {
		return nil, except.NewArithmeticError("division by zero")
	}
	return term.NewReal(af / bf), nil
}

func numericBinary(a, b term.Node, intOp func(int64, int64) int64, realOp func(float64, float64) float64) (term.Node, error) {
	ai, aIsInt := a.(*term.Integer)
	bi, bIsInt := b.(*term.Integer)
	if aIsInt && bIsInt {
		return term.NewInteger(intOp(ai.Value, bi.Value)), nil
	}
	af, aerr := asFloat(a)
	bf, berr := asFloat(b)
	if aerr != nil || berr != nil {
		return nil, except.NewArithmeticError("operator requires numeric operands")
	}
	return term.NewReal(realOp(af, bf)), nil
}

func uminus(a term.Node) (term.Node, error) {
	switch v := a.(type) {
	case *term.Integer:
		return term.NewInteger(-v.Value), nil
	case *term.Real:
		return term.NewReal(-v.Value), nil
	default:
		return nil, except.NewArithmeticError("unary - requires a numeric operand")
	}
}

func uplus(a term.Node) (term.Node, error) {
	switch a.(type) {
	case *term.Integer, *term.Real:
		return a, nil
	default:
		return nil, except.NewArithmeticError("unary + requires a numeric operand")
	}
}

func compare(a, b term.Node, accept func(int) bool) (term.Node, error) {
	af, aerr := asFloat(a)
	bf, berr := asFloat(b)
	if aerr != nil || berr != nil {
		return nil, except.NewArithmeticError("comparison requires numeric operands")
	}
	switch {
	case af < bf:
		return term.NewBoolean(accept(-1)), nil
	case af > bf:
		return term.NewBoolean(accept(1)), nil
	default:
		return term.NewBoolean(accept(0)), nil
	}
}

// equalValue implements __eq__/__ne__ across scalars, strings, lists,
// tuples, booleans, and none.
func equalValue(a, b term.Node) bool {
	if a.Tag() != b.Tag() {
		if isNumeric(a) && isNumeric(b) {
			af, _ := asFloat(a)
			bf, _ := asFloat(b)
			return af == bf
		}
		return false
	}
	return a.Equal(b)
}

func isNumeric(n term.Node) bool {
	switch n.(type) {
	case *term.Integer, *term.Real:
		return true
	default:
		return false
	}
}

func asFloat(n term.Node) (float64, error) {
	switch v := n.(type) {
	case *term.Integer:
		return float64(v.Value), nil
	case *term.Real:
		return v.Value, nil
	default:
		return 0, except.NewArithmeticError("not a number")
	}
}

// toBool coerces a value to boolean the way logical operators do:
// only an actual boolean term participates; anything else is false.
func toBool(n term.Node) bool {
	b, ok := n.(*term.Boolean)
	return ok && b.Value
}

// stringOf renders a value as its printable form for string
// concatenation, mirroring the unifier's own string-coercion rule so
// that "x is printed the same everywhere it is compared or concatenated.
func stringOf(n term.Node) string {
	if s, ok := n.(*term.Str); ok {
		return s.Value
	}
	switch v := n.(type) {
	case *term.Integer:
		return strconv.FormatInt(v.Value, 10)
	case *term.Real:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	default:
		return n.String()
	}
}
