// Package prelude holds the two member-function registries the
// evaluator's index-read logic consults: method-style indexing on a list
// or string (e.g. `mylist@length()`) looks up the index's id in the
// relevant registry and, if present, returns a pkg/eval NativeMethod
// pairing the receiver with the registered Go implementation. The
// registries hold Go functions, not names of functions in the global
// environment, and the lookup does not produce a member-function-val.
package prelude

import (
	"fmt"
	"strings"

	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

// BuiltinFunc is a prelude function's Go implementation: given the
// receiver (list/string) plus any call arguments, it returns a value.
type BuiltinFunc func(receiver term.Node, args []term.Node) (term.Node, error)

// ListMembers maps list method names to their implementation.
var ListMembers = map[string]BuiltinFunc{
	"length": func(recv term.Node, _ []term.Node) (term.Node, error) {
		l, ok := recv.(*term.List)
		if !ok {
			return nil, except.NewSystemError("length: receiver is not a list")
		}
		return term.NewInteger(int64(len(l.Elements))), nil
	},
	"head": func(recv term.Node, _ []term.Node) (term.Node, error) {
		l, ok := recv.(*term.List)
		if !ok || len(l.Elements) == 0 {
			return nil, except.NewSystemError("head: receiver is not a non-empty list")
		}
		return l.Elements[0], nil
	},
	"tail": func(recv term.Node, _ []term.Node) (term.Node, error) {
		l, ok := recv.(*term.List)
		if !ok || len(l.Elements) == 0 {
			return nil, except.NewSystemError("tail: receiver is not a non-empty list")
		}
		return term.NewList(l.Elements[1:]...), nil
	},
	"append": func(recv term.Node, args []term.Node) (term.Node, error) {
		l, ok := recv.(*term.List)
		if !ok || len(args) != 1 {
			return nil, except.NewSystemError("append: expected a list receiver and one argument")
		}
		return term.NewList(append(append([]term.Node{}, l.Elements...), args[0])...), nil
	},
	"reverse": func(recv term.Node, _ []term.Node) (term.Node, error) {
		l, ok := recv.(*term.List)
		if !ok {
			return nil, except.NewSystemError("reverse: receiver is not a list")
		}
		out := make([]term.Node, len(l.Elements))
		for i, e := range l.Elements {
			out[len(l.Elements)-1-i] = e
		}
		return term.NewList(out...), nil
	},
}

// StringMembers maps string method names to their implementation.
var StringMembers = map[string]BuiltinFunc{
	"upper": func(recv term.Node, _ []term.Node) (term.Node, error) {
		s, ok := recv.(*term.Str)
		if !ok {
			return nil, except.NewSystemError("upper: receiver is not a string")
		}
		return term.NewStr(strings.ToUpper(s.Value)), nil
	},
	"lower": func(recv term.Node, _ []term.Node) (term.Node, error) {
		s, ok := recv.(*term.Str)
		if !ok {
			return nil, except.NewSystemError("lower: receiver is not a string")
		}
		return term.NewStr(strings.ToLower(s.Value)), nil
	},
	"trim": func(recv term.Node, _ []term.Node) (term.Node, error) {
		s, ok := recv.(*term.Str)
		if !ok {
			return nil, except.NewSystemError("trim: receiver is not a string")
		}
		return term.NewStr(strings.TrimSpace(s.Value)), nil
	},
	"split": func(recv term.Node, args []term.Node) (term.Node, error) {
		s, ok := recv.(*term.Str)
		if !ok || len(args) != 1 {
			return nil, except.NewSystemError("split: expected a string receiver and one separator argument")
		}
		sep, ok := args[0].(*term.Str)
		if !ok {
			return nil, except.NewSystemError("split: separator must be a string")
		}
		parts := strings.Split(s.Value, sep.Value)
		elems := make([]term.Node, len(parts))
		for i, p := range parts {
			elems[i] = term.NewStr(p)
		}
		return term.NewList(elems...), nil
	},
}

// GlobalFunctions maps free-function names to their implementation,
// installed into the global frame at startup as a demonstration of a
// minimal prelude surface alongside the member-function registries.
var GlobalFunctions = map[string]BuiltinFunc{
	"print": func(_ term.Node, args []term.Node) (term.Node, error) {
		rendered := make([]interface{}, len(args))
		for i, a := range args {
			if s, ok := a.(*term.Str); ok {
				rendered[i] = s.Value
			} else {
				rendered[i] = a.String()
			}
		}
		fmt.Println(rendered...)
		return term.NewNone(), nil
	},
}

// IsListMember and IsStringMember let the index-read implementation
// decide whether an id subscript names a registered method before
// falling back to ordinary element access.
func IsListMember(name string) bool   { _, ok := ListMembers[name]; return ok }
func IsStringMember(name string) bool { _, ok := StringMembers[name]; return ok }
