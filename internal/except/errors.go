// Package except defines Asteroid's internal failure types and the
// mapping from those Go errors to the two-field Exception object term a
// try statement's catch clauses pattern-match against.
//
// Each failure type mirrors one of the original reference
// implementation's control-flow exception classes (PatternMatchFailed,
// NonLinearPatternError, RedundantPatternFound, ExpectationError): a
// distinct Go type carrying exactly the fields needed to render the
// user-facing message. Wrap annotates them with github.com/pkg/errors so
// that cmd/asteroid can report the full cause chain without losing the
// original Go stack.
package except

import (
	"fmt"

	"github.com/pkg/errors"
)

// PatternMatchFailed reports that a term did not unify against a pattern
// in matching mode. handle_call relies on being able to distinguish this
// from every other failure via errors.As, since it means "try the next
// clause," not "the call failed".
type PatternMatchFailed struct {
	Detail string
}

func NewPatternMatchFailed(detail string) *PatternMatchFailed {
	return &PatternMatchFailed{Detail: detail}
}

func (e *PatternMatchFailed) Error() string {
	return "pattern match failed: " + e.Detail
}

// NonLinearPatternError reports that a single pattern binds the same
// variable name twice to different sub-terms.
type NonLinearPatternError struct {
	Detail string
}

func NewNonLinearPatternError(detail string) *NonLinearPatternError {
	return &NonLinearPatternError{Detail: detail}
}

func (e *NonLinearPatternError) Error() string {
	return "non-linear pattern error: " + e.Detail
}

// RedundantPatternFound reports that, in a function's ordered clause
// list, an earlier clause's pattern subsumes a later clause's pattern -
// the later clause can never run.
type RedundantPatternFound struct {
	FunctionName string
	HigherLine   int // the clause whose pattern subsumes
	LowerLine    int // the clause that can never be reached
}

func NewRedundantPatternFound(functionName string, higherLine, lowerLine int) *RedundantPatternFound {
	return &RedundantPatternFound{FunctionName: functionName, HigherLine: higherLine, LowerLine: lowerLine}
}

func (e *RedundantPatternFound) Error() string {
	return fmt.Sprintf(
		"redundant pattern detected in '%s': the pattern on line %d will consume all matches for pattern on line %d",
		e.FunctionName, e.HigherLine, e.LowerLine,
	)
}

// ExpectationError reports that a found value did not match what a
// structural check expected it to be.
type ExpectationError struct {
	Found    string
	Expected string
}

func NewExpectationError(found, expected string) *ExpectationError {
	return &ExpectationError{Found: found, Expected: expected}
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("expected %s found %s.", e.Expected, e.Found)
}

// ArithmeticError reports a runtime arithmetic fault - division by zero,
// an unsupported operand type combination, and the like.
type ArithmeticError struct {
	Detail string
}

func NewArithmeticError(detail string) *ArithmeticError {
	return &ArithmeticError{Detail: detail}
}

func (e *ArithmeticError) Error() string { return e.Detail }

// NotAFunction reports an apply expression whose head evaluated to
// something that cannot be called.
type NotAFunction struct {
	Name string
}

func NewNotAFunction(name string) *NotAFunction {
	return &NotAFunction{Name: name}
}

func (e *NotAFunction) Error() string {
	return fmt.Sprintf("%s is not a function", e.Name)
}

// FileNotFoundError reports that an import or load operation referenced
// a module that does not exist.
type FileNotFoundError struct {
	Path string
}

func NewFileNotFoundError(path string) *FileNotFoundError {
	return &FileNotFoundError{Path: path}
}

func (e *FileNotFoundError) Error() string {
	return "file not found: " + e.Path
}

// SystemError is the catch-all bucket for internal faults that do not
// belong to any of the more specific kinds above.
type SystemError struct {
	Detail string
}

func NewSystemError(detail string) *SystemError {
	return &SystemError{Detail: detail}
}

func (e *SystemError) Error() string { return e.Detail }

// Wrap annotates err with msg using github.com/pkg/errors, preserving the
// original error (and its stack, if it has one) for the caller to
// report, while leaving errors.As-based dispatch on the original type
// working untouched.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
