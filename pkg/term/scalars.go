package term

import (
	"fmt"
	"strconv"
)

// Integer is an arbitrary-precision-free whole number.
type Integer struct{ Value int64 }

func NewInteger(v int64) *Integer { return &Integer{Value: v} }

func (n *Integer) Tag() string    { return TagInteger }
func (n *Integer) String() string { return strconv.FormatInt(n.Value, 10) }
func (n *Integer) Clone() Node    { return &Integer{Value: n.Value} }
func (n *Integer) Equal(other Node) bool {
	o, ok := other.(*Integer)
	return ok && o.Value == n.Value
}

// Real is a floating point number.
type Real struct{ Value float64 }

func NewReal(v float64) *Real { return &Real{Value: v} }

func (n *Real) Tag() string    { return TagReal }
func (n *Real) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *Real) Clone() Node    { return &Real{Value: n.Value} }
func (n *Real) Equal(other Node) bool {
	o, ok := other.(*Real)
	return ok && o.Value == n.Value
}

// Boolean is a truth value.
type Boolean struct{ Value bool }

func NewBoolean(v bool) *Boolean { return &Boolean{Value: v} }

func (n *Boolean) Tag() string    { return TagBoolean }
func (n *Boolean) String() string { return strconv.FormatBool(n.Value) }
func (n *Boolean) Clone() Node    { return &Boolean{Value: n.Value} }
func (n *Boolean) Equal(other Node) bool {
	o, ok := other.(*Boolean)
	return ok && o.Value == n.Value
}

// Str is a string literal. As both a term and a pattern: a string pattern
// unifies against any term by matching the term's rendered String() form
// as a regular expression anchored at both ends.
type Str struct{ Value string }

func NewStr(v string) *Str { return &Str{Value: v} }

func (n *Str) Tag() string    { return TagString }
func (n *Str) String() string { return n.Value }
func (n *Str) Clone() Node    { return &Str{Value: n.Value} }
func (n *Str) Equal(other Node) bool {
	o, ok := other.(*Str)
	return ok && o.Value == n.Value
}

// None is the unit value produced by statements and data members before
// initialization.
type None struct{}

func NewNone() *None { return &None{} }

func (n *None) Tag() string              { return TagNone }
func (n *None) String() string           { return "none" }
func (n *None) Clone() Node              { return &None{} }
func (n *None) Equal(other Node) bool    { _, ok := other.(*None); return ok }

// Nil is the empty-list/empty-tuple terminator used internally by
// head-tail construction; it is distinct from None.
type Nil struct{}

func NewNil() *Nil { return &Nil{} }

func (n *Nil) Tag() string           { return TagNil }
func (n *Nil) String() string        { return "nil" }
func (n *Nil) Clone() Node           { return &Nil{} }
func (n *Nil) Equal(other Node) bool { _, ok := other.(*Nil); return ok }

// ID is a bare identifier: as a pattern it is a binding occurrence (or the
// anonymous wildcard when Name is "_"); as a term it is a variable
// reference to be resolved through the environment.
type ID struct{ Name string }

func NewID(name string) *ID { return &ID{Name: name} }

func (n *ID) Tag() string    { return TagID }
func (n *ID) String() string { return n.Name }
func (n *ID) Clone() Node    { return &ID{Name: n.Name} }
func (n *ID) Equal(other Node) bool {
	o, ok := other.(*ID)
	return ok && o.Name == n.Name
}

// IsWildcard reports whether this id pattern is the anonymous "_" binder,
// which matches anything and binds nothing.
func (n *ID) IsWildcard() bool { return n.Name == "_" }

// Foreign wraps an opaque Go value bridged in from escape/foreign code; it
// prints via fmt.Sprint and is never a valid unification operand.
type Foreign struct{ Value interface{} }

func NewForeign(v interface{}) *Foreign { return &Foreign{Value: v} }

func (n *Foreign) Tag() string    { return TagForeign }
func (n *Foreign) String() string { return fmt.Sprint(n.Value) }
func (n *Foreign) Clone() Node    { return &Foreign{Value: n.Value} }
func (n *Foreign) Equal(other Node) bool {
	o, ok := other.(*Foreign)
	return ok && fmt.Sprint(o.Value) == fmt.Sprint(n.Value)
}
