// Package term implements Asteroid's term model: the single tagged-tree
// representation shared by both runtime values and patterns.
//
// Every term is an ordered sequence whose head is a type tag and whose tail
// is kind-specific payload. The unifier (pkg/unify) dispatches on the head
// tag; nothing else in the evaluator needs to know the concrete Go type of
// a term, only its Tag().
package term

// Node is any term or pattern in the Asteroid universe. It generalizes the
// teacher's Term interface (String/Equal/IsVar/Clone over atoms, variables,
// and pairs) to the full set of tagged-tree node kinds a tree-walking
// evaluator needs: scalars, collections, applications, functions, structs,
// objects, and the pattern-only node kinds (named-pattern, typematch,
// deref, constraint, if-exp).
type Node interface {
	// Tag returns the node's type tag, e.g. "integer", "list", "apply".
	Tag() string

	// String returns a stable, deterministic printable form. The unifier's
	// string-pattern-matches-anything rule depends on
	// this being stable: the same term always renders to the same string.
	String() string

	// Equal reports strict structural equality - not unification. Two
	// terms are Equal if they have the same tag and equal payloads,
	// recursively. This is distinct from Unify, which may bind variables.
	Equal(other Node) bool

	// Clone returns a deep copy. Closures snapshot the defining scope by
	// cloning every frame at function-creation time (see pkg/env), so that
	// later mutation of the defining scope is invisible through the
	// closure - mirroring the teacher's Substitution.Clone/Var.Clone
	// copy-on-capture convention.
	Clone() Node
}

// Tag constants, one per kind in spec §3's term table.
const (
	TagInteger           = "integer"
	TagReal              = "real"
	TagBoolean           = "boolean"
	TagString            = "string"
	TagNone              = "none"
	TagNil               = "nil"
	TagList              = "list"
	TagTuple             = "tuple"
	TagHeadTail          = "head-tail"
	TagRawHeadTail       = "raw-head-tail"
	TagToList            = "to-list"
	TagRawToList         = "raw-to-list"
	TagID                = "id"
	TagIndex             = "index"
	TagApply             = "apply"
	TagFunctionExp       = "function-exp"
	TagFunctionVal       = "function-val"
	TagMemberFunctionVal = "member-function-val"
	TagStruct            = "struct"
	TagObject            = "object"
	TagPattern           = "pattern"
	TagNamedPattern      = "named-pattern"
	TagTypeMatch         = "typematch"
	TagDeref             = "deref"
	TagConstraint        = "constraint"
	TagIfExp             = "if-exp"
	TagIs                = "is"
	TagIn                = "in"
	TagEscape            = "escape"
	TagForeign           = "foreign"

	TagUnify       = "unify"
	TagReturn      = "return"
	TagBreak       = "break"
	TagThrow       = "throw"
	TagTry         = "try"
	TagCatch       = "catch"
	TagFor         = "for"
	TagWhile       = "while"
	TagRepeat      = "repeat"
	TagLoop        = "loop"
	TagIfStmt      = "if-stmt"
	TagStructDef   = "struct-def"
	TagGlobal      = "global"
	TagEvalExp     = "eval-exp"
	TagExprStmt    = "expr-stmt"
	TagAssert      = "assert"
	TagImportList  = "import-list"
)

// primitiveTypeNames is the fixed set of tags a typematch pattern can name
// directly as a scalar/collection type.
var primitiveTypeNames = map[string]bool{
	TagString: true, TagReal: true, TagInteger: true,
	TagList: true, TagTuple: true, TagBoolean: true, TagNone: true,
}

// IsPrimitiveTypeName reports whether name is one of the closed primitive
// type names a typematch pattern may test against directly.
func IsPrimitiveTypeName(name string) bool {
	return primitiveTypeNames[name]
}

// patternTagSet is the fixed set of tags that the "pattern" typematch name
// accepts in matching mode.
var patternTagSet = map[string]bool{
	TagPattern: true, TagID: true, TagString: true, TagReal: true,
	TagInteger: true, TagList: true, TagTuple: true, TagBoolean: true,
	TagNone: true, TagObject: true, TagStruct: true, TagTypeMatch: true,
}

// IsPatternTag reports whether tag belongs to the fixed set of term kinds
// the "pattern" typematch recognizes. In subsuming mode the caller must
// additionally exclude "id" - see pkg/unify.
func IsPatternTag(tag string) bool {
	return patternTagSet[tag]
}

// unifyNotAllowed is the fixed blacklist of kinds that may never appear on
// either side of a unification - they represent computation, not data.
var unifyNotAllowed = map[string]bool{
	TagFunctionVal: true, TagToList: true, TagRawToList: true,
	TagForeign: true, TagEscape: true, TagIs: true, TagIn: true,
	"where-list": true, "raw-where-list": true,
}

// IsDisallowedInUnify reports whether tag is blacklisted from appearing in
// unification.
func IsDisallowedInUnify(tag string) bool {
	return unifyNotAllowed[tag]
}
