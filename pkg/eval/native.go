package eval

import (
	"github.com/asteroid-lang/asteroid-go/pkg/prelude"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

// NativeMethod is a prelude list/string member function bound to its
// receiver, produced by a method-style index read (e.g. `s@upper`) before
// it is applied. It implements term.Node directly rather than living in
// pkg/term, since only pkg/eval's apply dispatch needs to recognize its
// concrete type.
type NativeMethod struct {
	Name     string
	Receiver term.Node
	Fn       prelude.BuiltinFunc
}

func (n *NativeMethod) Tag() string    { return "native-method" }
func (n *NativeMethod) String() string { return "native-method " + n.Name }
func (n *NativeMethod) Clone() term.Node {
	return &NativeMethod{Name: n.Name, Receiver: n.Receiver.Clone(), Fn: n.Fn}
}
func (n *NativeMethod) Equal(other term.Node) bool { return n == other }

// NativeFunction is a receiver-less prelude global function (e.g.
// "print") bound into the global frame at startup.
type NativeFunction struct {
	Name string
	Fn   prelude.BuiltinFunc
}

func (n *NativeFunction) Tag() string              { return "native-function" }
func (n *NativeFunction) String() string           { return "native-function " + n.Name }
func (n *NativeFunction) Clone() term.Node         { return n }
func (n *NativeFunction) Equal(other term.Node) bool { return n == other }

// exceptionStructName mirrors internal/except's Exception wrapper term,
// registered here so a try statement's catch clauses can name it in an
// object-construction pattern (Exception(kind, message)).
const exceptionStructName = "Exception"

// InstallGlobals binds every registered prelude global function, plus the
// built-in Exception struct definition, into ctx's global frame. Called
// once after Ctx creation.
func InstallGlobals(c *Ctx) {
	for name, fn := range prelude.GlobalFunctions {
		c.env.EnterGlobal(name, &NativeFunction{Name: name, Fn: fn})
	}
	exceptionDef := term.NewStruct(exceptionStructName, []string{"kind", "message"},
		[]term.Node{term.NewNone(), term.NewNone()})
	c.env.EnterGlobal(exceptionStructName, exceptionDef)
}
