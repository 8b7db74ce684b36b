package eval

import "github.com/asteroid-lang/asteroid-go/pkg/term"

func init() {
	register(term.TagFunctionExp, evalFunctionExp)
}

// evalFunctionExp turns a function-expression literal into a FunctionVal,
// snapshotting the defining scope as its closure so later mutation of that
// scope never leaks into an already-created closure.
func evalFunctionExp(c *Ctx, n term.Node) (term.Node, error) {
	fe := n.(*term.FunctionExp)
	return term.NewFunctionVal("", fe.Bodies, c.env.GetClosure()), nil
}
