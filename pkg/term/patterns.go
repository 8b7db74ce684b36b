package term

// Pattern wraps an inner node to force pattern-context evaluation: when
// walked as a value with pattern-context disabled it renders as itself,
// but when the evaluator is inside pattern-matching context it recurses
// into Inner instead.
type Pattern struct{ Inner Node }

func NewPattern(inner Node) *Pattern { return &Pattern{Inner: inner} }

func (n *Pattern) Tag() string    { return TagPattern }
func (n *Pattern) String() string { return "pattern " + n.Inner.String() }
func (n *Pattern) Clone() Node    { return &Pattern{Inner: n.Inner.Clone()} }
func (n *Pattern) Equal(other Node) bool {
	o, ok := other.(*Pattern)
	return ok && n.Inner.Equal(o.Inner)
}

// NamedPattern binds Name to the entire term matched by Pattern, in
// addition to whatever bindings Pattern itself produces.
type NamedPattern struct {
	Name    string
	Pattern Node
}

func NewNamedPattern(name string, pattern Node) *NamedPattern {
	return &NamedPattern{Name: name, Pattern: pattern}
}

func (n *NamedPattern) Tag() string    { return TagNamedPattern }
func (n *NamedPattern) String() string { return n.Name + ":" + n.Pattern.String() }
func (n *NamedPattern) Clone() Node {
	return &NamedPattern{Name: n.Name, Pattern: n.Pattern.Clone()}
}
func (n *NamedPattern) Equal(other Node) bool {
	o, ok := other.(*NamedPattern)
	return ok && n.Name == o.Name && n.Pattern.Equal(o.Pattern)
}

// TypeMatch is a type-name pattern: %integer, %string, %function,
// %pattern, or %<struct-name>. TypeName is the bare
// name without the leading sigil.
type TypeMatch struct{ TypeName string }

func NewTypeMatch(typeName string) *TypeMatch { return &TypeMatch{TypeName: typeName} }

func (n *TypeMatch) Tag() string    { return TagTypeMatch }
func (n *TypeMatch) String() string { return "%" + n.TypeName }
func (n *TypeMatch) Clone() Node    { return &TypeMatch{TypeName: n.TypeName} }
func (n *TypeMatch) Equal(other Node) bool {
	o, ok := other.(*TypeMatch)
	return ok && n.TypeName == o.TypeName
}

// Deref forces Expr to be evaluated to a value first, then that value is
// walked again as if freshly parsed - used to splice a previously
// computed pattern into the current match.
type Deref struct{ Expr Node }

func NewDeref(expr Node) *Deref { return &Deref{Expr: expr} }

func (n *Deref) Tag() string    { return TagDeref }
func (n *Deref) String() string { return "*" + n.Expr.String() }
func (n *Deref) Clone() Node    { return &Deref{Expr: n.Expr.Clone()} }
func (n *Deref) Equal(other Node) bool {
	o, ok := other.(*Deref)
	return ok && n.Expr.Equal(o.Expr)
}

// Constraint wraps Pattern so that the inner match runs with the
// evaluator's constraint-check depth raised for its duration, and any
// bindings the inner pattern produces are discarded - it asserts shape
// without binding.
type Constraint struct{ Pattern Node }

func NewConstraint(pattern Node) *Constraint { return &Constraint{Pattern: pattern} }

func (n *Constraint) Tag() string    { return TagConstraint }
func (n *Constraint) String() string { return "constraint " + n.Pattern.String() }
func (n *Constraint) Clone() Node    { return &Constraint{Pattern: n.Pattern.Clone()} }
func (n *Constraint) Equal(other Node) bool {
	o, ok := other.(*Constraint)
	return ok && n.Pattern.Equal(o.Pattern)
}

// IfExp is "if Cond do Then else Else". As an expression Else must be
// non-nil; as a pattern it may appear with Else == nil to express a bare
// guarded pattern. The redundancy check never treats one conditional
// pattern as subsuming another: that subsumption test always fails.
type IfExp struct {
	Cond Node
	Then Node
	Else Node // nil only when used as a pattern
}

func NewIfExp(cond, then, els Node) *IfExp { return &IfExp{Cond: cond, Then: then, Else: els} }

func (n *IfExp) Tag() string    { return TagIfExp }
func (n *IfExp) String() string { return "if " + n.Cond.String() }
func (n *IfExp) Clone() Node {
	var els Node
	if n.Else != nil {
		els = n.Else.Clone()
	}
	return &IfExp{Cond: n.Cond.Clone(), Then: n.Then.Clone(), Else: els}
}
func (n *IfExp) Equal(other Node) bool { return n == other }

// Is is the "Exp is Pattern" boolean test expression: it attempts to
// unify Exp's value against Pattern and, on success, declares the
// resulting bindings into the current scope as a side effect.
type Is struct {
	Exp     Node
	Pattern Node
}

func NewIs(exp, pattern Node) *Is { return &Is{Exp: exp, Pattern: pattern} }

func (n *Is) Tag() string    { return TagIs }
func (n *Is) String() string { return n.Exp.String() + " is " + n.Pattern.String() }
func (n *Is) Clone() Node    { return &Is{Exp: n.Exp.Clone(), Pattern: n.Pattern.Clone()} }
func (n *Is) Equal(other Node) bool {
	o, ok := other.(*Is)
	return ok && n.Exp.Equal(o.Exp) && n.Pattern.Equal(o.Pattern)
}

// In is the "Exp in Collection" membership test expression.
type In struct {
	Exp        Node
	Collection Node
}

func NewIn(exp, collection Node) *In { return &In{Exp: exp, Collection: collection} }

func (n *In) Tag() string    { return TagIn }
func (n *In) String() string { return n.Exp.String() + " in " + n.Collection.String() }
func (n *In) Clone() Node    { return &In{Exp: n.Exp.Clone(), Collection: n.Collection.Clone()} }
func (n *In) Equal(other Node) bool {
	o, ok := other.(*In)
	return ok && n.Exp.Equal(o.Exp) && n.Collection.Equal(o.Collection)
}

// Escape is a host-language escape. Code is the name of a Go callback
// registered ahead of time with pkg/eval's RegisterEscape; an unregistered
// name does nothing.
type Escape struct{ Code string }

func NewEscape(code string) *Escape { return &Escape{Code: code} }

func (n *Escape) Tag() string    { return TagEscape }
func (n *Escape) String() string { return "escape" }
func (n *Escape) Clone() Node    { return &Escape{Code: n.Code} }
func (n *Escape) Equal(other Node) bool {
	o, ok := other.(*Escape)
	return ok && n.Code == o.Code
}
