package eval

import "github.com/asteroid-lang/asteroid-go/pkg/term"

// ReturnSignal, BreakSignal, and ThrowSignal are non-local exits modeled
// as ordinary Go errors so they propagate through the normal error-return
// chain and are intercepted with errors.As at the appropriate boundary:
// ReturnSignal by pkg/call, BreakSignal by the nearest enclosing loop
// statement, ThrowSignal by the nearest enclosing try statement.

type ReturnSignal struct{ Value term.Node }

func (s *ReturnSignal) Error() string { return "return" }

type BreakSignal struct{}

func (s *BreakSignal) Error() string { return "break" }

type ThrowSignal struct{ Value term.Node }

func (s *ThrowSignal) Error() string { return "throw" }
