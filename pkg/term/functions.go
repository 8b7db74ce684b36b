package term

// Scope is the minimal capability pkg/term needs from pkg/env.Frame in
// order to let FunctionVal snapshot a closure without pkg/term importing
// pkg/env (which would create an import cycle, since pkg/env stores
// term.Node bindings). pkg/env.Frame implements Scope.
type Scope interface {
	Clone() Scope
}

// Index is a subscript pattern/expression: base[subscript]. As a pattern
// it binds a single slot of an existing structure without recursing
// further into it.
type Index struct {
	Base      Node
	Subscript Node
}

func NewIndex(base, subscript Node) *Index { return &Index{Base: base, Subscript: subscript} }

func (n *Index) Tag() string    { return TagIndex }
func (n *Index) String() string { return n.Base.String() + "[" + n.Subscript.String() + "]" }
func (n *Index) Clone() Node {
	return &Index{Base: n.Base.Clone(), Subscript: n.Subscript.Clone()}
}
func (n *Index) Equal(other Node) bool {
	o, ok := other.(*Index)
	return ok && n.Base.Equal(o.Base) && n.Subscript.Equal(o.Subscript)
}

// Apply is a function/struct-constructor application: f(args). Built-in
// operators are represented as Apply nodes whose Func is an ID naming one
// of the dunder operator symbols.
type Apply struct {
	Func Node
	Arg  Node
}

func NewApply(fn, arg Node) *Apply { return &Apply{Func: fn, Arg: arg} }

func (n *Apply) Tag() string    { return TagApply }
func (n *Apply) String() string { return n.Func.String() + "(" + n.Arg.String() + ")" }
func (n *Apply) Clone() Node    { return &Apply{Func: n.Func.Clone(), Arg: n.Arg.Clone()} }
func (n *Apply) Equal(other Node) bool {
	o, ok := other.(*Apply)
	return ok && n.Func.Equal(o.Func) && n.Arg.Equal(o.Arg)
}

// BodyClause pairs one pattern with the statement list that runs when the
// pattern matches; FunctionVal.Bodies is tried in declared order.
type BodyClause struct {
	Pattern Node
	Body    []Node
	Line    int // 1-based source line of the clause's first statement
}

// FunctionExp is the literal function-expression syntax, evaluated into a
// FunctionVal that captures the defining scope as a closure.
type FunctionExp struct {
	Bodies []BodyClause
}

func NewFunctionExp(bodies []BodyClause) *FunctionExp { return &FunctionExp{Bodies: bodies} }

func (n *FunctionExp) Tag() string    { return TagFunctionExp }
func (n *FunctionExp) String() string { return "function-exp" }
func (n *FunctionExp) Clone() Node {
	out := make([]BodyClause, len(n.Bodies))
	for i, b := range n.Bodies {
		out[i] = BodyClause{Pattern: b.Pattern.Clone(), Body: cloneList(b.Body), Line: b.Line}
	}
	return &FunctionExp{Bodies: out}
}
func (n *FunctionExp) Equal(other Node) bool { return n == other }

// FunctionVal is a runtime function value: a FunctionExp's clause list
// plus a deep-copied snapshot of the scope stack active when it was
// created - the closure. Copy-on-capture means later mutation of the
// defining scope never leaks into an already-created closure, mirroring
// the teacher's Substitution.Clone convention.
type FunctionVal struct {
	Name    string // for diagnostics only; "" for anonymous functions
	Bodies  []BodyClause
	Closure []Scope
}

func NewFunctionVal(name string, bodies []BodyClause, closure []Scope) *FunctionVal {
	return &FunctionVal{Name: name, Bodies: bodies, Closure: closure}
}

func (n *FunctionVal) Tag() string { return TagFunctionVal }
func (n *FunctionVal) String() string {
	if n.Name != "" {
		return "function-val " + n.Name
	}
	return "function-val <anonymous>"
}
func (n *FunctionVal) Clone() Node {
	bodies := make([]BodyClause, len(n.Bodies))
	for i, b := range n.Bodies {
		bodies[i] = BodyClause{Pattern: b.Pattern.Clone(), Body: cloneList(b.Body), Line: b.Line}
	}
	closure := make([]Scope, len(n.Closure))
	for i, s := range n.Closure {
		closure[i] = s.Clone()
	}
	return &FunctionVal{Name: n.Name, Bodies: bodies, Closure: closure}
}

// Equal compares function values by identity: two closures are never
// structurally interchangeable even if their clause lists happen to
// match, since they may close over different live state.
func (n *FunctionVal) Equal(other Node) bool { return n == other }

// MemberFunctionVal is a FunctionVal bound to a receiver object - the
// result of looking up a struct member that turns out to be a function,
// so it can be invoked with an implicit "this".
type MemberFunctionVal struct {
	Receiver *Object
	Fn       *FunctionVal
}

func NewMemberFunctionVal(recv *Object, fn *FunctionVal) *MemberFunctionVal {
	return &MemberFunctionVal{Receiver: recv, Fn: fn}
}

func (n *MemberFunctionVal) Tag() string    { return TagMemberFunctionVal }
func (n *MemberFunctionVal) String() string { return "member-function-val " + n.Fn.Name }
func (n *MemberFunctionVal) Clone() Node {
	return &MemberFunctionVal{Receiver: n.Receiver.Clone().(*Object), Fn: n.Fn.Clone().(*FunctionVal)}
}
func (n *MemberFunctionVal) Equal(other Node) bool { return n == other }

func cloneList(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, x := range nodes {
		out[i] = x.Clone()
	}
	return out
}
