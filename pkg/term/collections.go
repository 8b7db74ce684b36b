package term

import "strings"

// List is an ordered, mutable sequence. As a pattern, a list pattern
// unifies elementwise against a list term of equal length.
type List struct{ Elements []Node }

func NewList(elems...Node) *List { return &List{Elements: elems} }

func (n *List) Tag() string { return TagList }

func (n *List) String() string {
	return "[" + joinNodes(n.Elements) + "]"
}

func (n *List) Clone() Node {
	out := make([]Node, len(n.Elements))
	for i, e := range n.Elements {
		out[i] = e.Clone()
	}
	return &List{Elements: out}
}

func (n *List) Equal(other Node) bool {
	o, ok := other.(*List)
	if !ok || len(o.Elements) != len(n.Elements) {
		return false
	}
	for i := range n.Elements {
		if !n.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// Tuple is an ordered, fixed-arity sequence, unified elementwise like List
// but never mutated in place once constructed.
type Tuple struct{ Elements []Node }

func NewTuple(elems...Node) *Tuple { return &Tuple{Elements: elems} }

func (n *Tuple) Tag() string { return TagTuple }

func (n *Tuple) String() string {
	return "(" + joinNodes(n.Elements) + ")"
}

func (n *Tuple) Clone() Node {
	out := make([]Node, len(n.Elements))
	for i, e := range n.Elements {
		out[i] = e.Clone()
	}
	return &Tuple{Elements: out}
}

func (n *Tuple) Equal(other Node) bool {
	o, ok := other.(*Tuple)
	if !ok || len(o.Elements) != len(n.Elements) {
		return false
	}
	for i := range n.Elements {
		if !n.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// HeadTail is a cons-style pattern/value splitting a list into a single
// head element and a tail list.
type HeadTail struct {
	Head Node
	Tail Node
}

func NewHeadTail(head, tail Node) *HeadTail { return &HeadTail{Head: head, Tail: tail} }

func (n *HeadTail) Tag() string    { return TagHeadTail }
func (n *HeadTail) String() string { return n.Head.String() + "|" + n.Tail.String() }
func (n *HeadTail) Clone() Node    { return &HeadTail{Head: n.Head.Clone(), Tail: n.Tail.Clone()} }
func (n *HeadTail) Equal(other Node) bool {
	o, ok := other.(*HeadTail)
	return ok && n.Head.Equal(o.Head) && n.Tail.Equal(o.Tail)
}

// RawHeadTail is the unevaluated syntactic form of a head-tail expression,
// retained until the evaluator walks it into either a HeadTail pattern or
// a constructed List value, depending on context.
type RawHeadTail struct {
	Head Node
	Tail Node
}

func NewRawHeadTail(head, tail Node) *RawHeadTail { return &RawHeadTail{Head: head, Tail: tail} }

func (n *RawHeadTail) Tag() string { return TagRawHeadTail }
func (n *RawHeadTail) String() string {
	return n.Head.String() + "|" + n.Tail.String()
}
func (n *RawHeadTail) Clone() Node {
	return &RawHeadTail{Head: n.Head.Clone(), Tail: n.Tail.Clone()}
}
func (n *RawHeadTail) Equal(other Node) bool {
	o, ok := other.(*RawHeadTail)
	return ok && n.Head.Equal(o.Head) && n.Tail.Equal(o.Tail)
}

// ToList is a range-construction expression "start to stop [step by]"; it
// is computation, never a valid unification operand.
type ToList struct {
	Start, Stop, Step Node // Step may be nil for the default stride of 1
}

func NewToList(start, stop, step Node) *ToList {
	return &ToList{Start: start, Stop: stop, Step: step}
}

func (n *ToList) Tag() string { return TagToList }
func (n *ToList) String() string {
	if n.Step == nil {
		return n.Start.String() + " to " + n.Stop.String()
	}
	return n.Start.String() + " to " + n.Stop.String() + " step " + n.Step.String()
}
func (n *ToList) Clone() Node {
	var step Node
	if n.Step != nil {
		step = n.Step.Clone()
	}
	return &ToList{Start: n.Start.Clone(), Stop: n.Stop.Clone(), Step: step}
}
func (n *ToList) Equal(other Node) bool {
	o, ok := other.(*ToList)
	if !ok {
		return false
	}
	stepsEqual := (n.Step == nil && o.Step == nil) ||
		(n.Step != nil && o.Step != nil && n.Step.Equal(o.Step))
	return n.Start.Equal(o.Start) && n.Stop.Equal(o.Stop) && stepsEqual
}

// RawToList is the unevaluated syntactic form of a to-list expression,
// walked into a ToList (or directly expanded to a List value) depending
// on evaluation context, mirroring RawHeadTail/HeadTail.
type RawToList struct {
	Start, Stop, Step Node
}

func NewRawToList(start, stop, step Node) *RawToList {
	return &RawToList{Start: start, Stop: stop, Step: step}
}

func (n *RawToList) Tag() string { return TagRawToList }
func (n *RawToList) String() string {
	if n.Step == nil {
		return n.Start.String() + " to " + n.Stop.String()
	}
	return n.Start.String() + " to " + n.Stop.String() + " step " + n.Step.String()
}
func (n *RawToList) Clone() Node {
	var step Node
	if n.Step != nil {
		step = n.Step.Clone()
	}
	return &RawToList{Start: n.Start.Clone(), Stop: n.Stop.Clone(), Step: step}
}
func (n *RawToList) Equal(other Node) bool {
	o, ok := other.(*RawToList)
	if !ok {
		return false
	}
	stepsEqual := (n.Step == nil && o.Step == nil) ||
		(n.Step != nil && o.Step != nil && n.Step.Equal(o.Step))
	return n.Start.Equal(o.Start) && n.Stop.Equal(o.Stop) && stepsEqual
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
