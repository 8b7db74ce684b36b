// Package fixtures builds small, named AST programs in Go directly,
// standing in for the lexer/parser this module deliberately omits. Each
// fixture demonstrates one evaluator capability end-to-end and doubles as
// the test corpus for pkg/eval, pkg/call, and pkg/redundancy.
package fixtures

import "github.com/asteroid-lang/asteroid-go/pkg/term"

// Names lists every fixture registered below, for `asteroid run`'s
// unknown-fixture error message.
var Names = []string{
	"three-clause-dispatch",
	"conditional-pattern",
	"for-as-filter",
	"head-tail",
	"object-construction",
	"try-mapping",
}

// Get returns the statement list for a named fixture, and whether it
// exists.
func Get(name string) ([]term.Node, bool) {
	switch name {
	case "three-clause-dispatch":
		return ThreeClauseDispatch(), true
	case "conditional-pattern":
		return ConditionalPattern(5), true
	case "for-as-filter":
		return ForAsFilter(), true
	case "head-tail":
		return HeadTailDecomposition(), true
	case "object-construction":
		return ObjectConstruction(), true
	case "try-mapping":
		return TryMapping(), true
	default:
		return nil, false
	}
}

// ThreeClauseDispatch builds:
//
//	f = function (x,y) -> 1 | (x,1) -> 2 end
//	f(0,1)
//
// The redundancy checker should flag the second clause, since the first
// clause's pattern (x,y) already consumes everything the second clause's
// (x,1) would match.
func ThreeClauseDispatch() []term.Node {
	fn := term.NewFunctionExp([]term.BodyClause{
		{
			Pattern: term.NewTuple(term.NewID("x"), term.NewID("y")),
			Body:    []term.Node{&term.ExprStmt{Exp: term.NewInteger(1)}},
			Line:    1,
		},
		{
			Pattern: term.NewTuple(term.NewID("x"), term.NewInteger(1)),
			Body:    []term.Node{&term.ExprStmt{Exp: term.NewInteger(2)}},
			Line:    2,
		},
	})
	return []term.Node{
		&term.UnifyStmt{Pattern: term.NewID("f"), Exp: fn},
		&term.ExprStmt{Exp: term.NewApply(term.NewID("f"), term.NewTuple(term.NewInteger(0), term.NewInteger(1)))},
	}
}

// ConditionalPattern builds:
//
//	f = function n if n>0 -> "pos" | 0 -> "zero" | n -> "neg" end
//	f(input)
func ConditionalPattern(input int64) []term.Node {
	fn := term.NewFunctionExp([]term.BodyClause{
		{
			Pattern: term.NewIfExp(
				term.NewApply(term.NewID("__gt__"), term.NewTuple(term.NewID("n"), term.NewInteger(0))),
				term.NewID("n"),
				nil,
			),
			Body: []term.Node{&term.ExprStmt{Exp: term.NewStr("pos")}},
			Line: 1,
		},
		{
			Pattern: term.NewInteger(0),
			Body:    []term.Node{&term.ExprStmt{Exp: term.NewStr("zero")}},
			Line:    2,
		},
		{
			Pattern: term.NewID("n"),
			Body:    []term.Node{&term.ExprStmt{Exp: term.NewStr("neg")}},
			Line:    3,
		},
	})
	return []term.Node{
		&term.UnifyStmt{Pattern: term.NewID("f"), Exp: fn},
		&term.ExprStmt{Exp: term.NewApply(term.NewID("f"), term.NewInteger(input))},
	}
}

// ForAsFilter builds:
//
//	for (2,y) in [(1,11),(1,12),(2,21)] do print(y) end
func ForAsFilter() []term.Node {
	pairs := term.NewList(
		term.NewTuple(term.NewInteger(1), term.NewInteger(11)),
		term.NewTuple(term.NewInteger(1), term.NewInteger(12)),
		term.NewTuple(term.NewInteger(2), term.NewInteger(21)),
	)
	loop := &term.For{
		Pattern:  term.NewTuple(term.NewInteger(2), term.NewID("y")),
		Iterable: pairs,
		Body:     []term.Node{&term.ExprStmt{Exp: term.NewApply(term.NewID("print"), term.NewID("y"))}},
	}
	return []term.Node{loop}
}

// HeadTailDecomposition builds:
//
//	h|t = [10,20,30]
func HeadTailDecomposition() []term.Node {
	return []term.Node{
		&term.UnifyStmt{
			Pattern: term.NewHeadTail(term.NewID("h"), term.NewID("t")),
			Exp:     term.NewList(term.NewInteger(10), term.NewInteger(20), term.NewInteger(30)),
		},
	}
}

// ObjectConstruction builds:
//
//	struct Point with x, y end
//	Point(3,4)
func ObjectConstruction() []term.Node {
	def := &term.StructDef{
		Name:        "Point",
		MemberNames: []string{"x", "y"},
		MemberInits: []term.Node{nil, nil},
	}
	return []term.Node{
		def,
		&term.ExprStmt{Exp: term.NewApply(term.NewID("Point"), term.NewTuple(term.NewInteger(3), term.NewInteger(4)))},
	}
}

// TryMapping builds:
//
//	try 1/0 catch Exception(kind,_) -> kind end
func TryMapping() []term.Node {
	tryStmt := &term.Try{
		Body: []term.Node{
			&term.ExprStmt{Exp: term.NewApply(term.NewID("__divide__"), term.NewTuple(term.NewInteger(1), term.NewInteger(0)))},
		},
		Catches: []term.CatchClause{
			{
				Pattern: term.NewApply(
					term.NewID("Exception"),
					term.NewTuple(term.NewID("kind"), term.NewID("_")),
				),
				Body: []term.Node{&term.ExprStmt{Exp: term.NewID("kind")}},
			},
		},
	}
	return []term.Node{tryStmt}
}
