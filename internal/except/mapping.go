package except

import (
	"errors"

	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

// exceptionStructName is the fixed struct name every mapped exception
// object carries, matching the reference implementation's Exception
// wrapper term.
const exceptionStructName = "Exception"

// ToExceptionTerm maps a Go error produced anywhere in the evaluator to
// the two-field Exception object term a try statement's catch clauses
// pattern-match against: member 0 is the exception kind as a string,
// member 1 is the rendered message.
//
// Callers must filter out non-local exit signals (return/break, defined
// in pkg/eval) before calling this - those propagate through try_stmt
// untouched and are never offered to catch clauses. Every error that
// reaches this function is treated as catchable, falling back to
// SystemError when it does not match one of the specific kinds.
func ToExceptionTerm(err error) *term.Object {
	kind := classify(err)
	memory := []term.Node{term.NewStr(kind), term.NewStr(err.Error())}
	return term.NewObject(exceptionStructName, []string{"kind", "message"}, memory)
}

// classify returns the user-visible kind name for err, following the
// reference implementation's try_stmt dispatch order.
func classify(err error) string {
	var (
		patternMatchFailed    *PatternMatchFailed
		redundantPatternFound *RedundantPatternFound
		nonLinearPatternError *NonLinearPatternError
		arithmeticError       *ArithmeticError
		fileNotFoundError     *FileNotFoundError
	)
	switch {
	case errors.As(err, &patternMatchFailed):
		return "PatternMatchFailed"
	case errors.As(err, &redundantPatternFound):
		return "RedundantPatternFound"
	case errors.As(err, &nonLinearPatternError):
		return "NonLinearPatternError"
	case errors.As(err, &arithmeticError):
		return "ArithmeticError"
	case errors.As(err, &fileNotFoundError):
		return "FileNotFound"
	default:
		return "SystemError"
	}
}
