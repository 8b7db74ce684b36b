package term

// Struct is a struct definition: the ordered member-name list plus a
// template memory where data members start as None and unify/function
// members are pre-evaluated FunctionVals.
// Constructing an Object copies this template, never the definition
// itself.
type Struct struct {
	Name        string
	MemberNames []string
	Template    []Node // parallel to MemberNames
}

func NewStruct(name string, memberNames []string, template []Node) *Struct {
	return &Struct{Name: name, MemberNames: memberNames, Template: template}
}

func (n *Struct) Tag() string    { return TagStruct }
func (n *Struct) String() string { return "struct " + n.Name }
func (n *Struct) Clone() Node {
	return &Struct{Name: n.Name, MemberNames: append([]string(nil), n.MemberNames...), Template: cloneList(n.Template)}
}
func (n *Struct) Equal(other Node) bool { return n == other }

// MemberIndex returns the slot index of name, or -1 if absent.
func (n *Struct) MemberIndex(name string) int {
	for i, m := range n.MemberNames {
		if m == name {
			return i
		}
	}
	return -1
}

// DataMemberIndices returns the indices whose template slot is a plain
// None placeholder (a data member) rather than a pre-evaluated function
// value.
func (n *Struct) DataMemberIndices() []int {
	var out []int
	for i, t := range n.Template {
		if _, isNone := t.(*None); isNone {
			out = append(out, i)
		}
	}
	return out
}

// Object is an instance of a Struct: the struct name plus a live, mutable
// memory slice parallel to the struct's member names.
type Object struct {
	StructName  string
	MemberNames []string
	Memory      []Node
}

func NewObject(structName string, memberNames []string, memory []Node) *Object {
	return &Object{StructName: structName, MemberNames: memberNames, Memory: memory}
}

func (n *Object) Tag() string    { return TagObject }
func (n *Object) String() string { return "object " + n.StructName }
func (n *Object) Clone() Node {
	return &Object{
		StructName:  n.StructName,
		MemberNames: append([]string(nil), n.MemberNames...),
		Memory:      cloneList(n.Memory),
	}
}
func (n *Object) Equal(other Node) bool { return n == other }

// MemberIndex returns the slot index of name, or -1 if absent.
func (n *Object) MemberIndex(name string) int {
	for i, m := range n.MemberNames {
		if m == name {
			return i
		}
	}
	return -1
}
