package except

import "testing"

func TestToExceptionTermClassifiesKnownKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"pattern match failed", NewPatternMatchFailed("[1, 2] against (3, 4)"), "PatternMatchFailed"},
		{"redundant pattern", NewRedundantPatternFound("f", 4, 2), "RedundantPatternFound"},
		{"non-linear pattern", NewNonLinearPatternError("x"), "NonLinearPatternError"},
		{"arithmetic error", NewArithmeticError("division by zero"), "ArithmeticError"},
		{"file not found", NewFileNotFoundError("foo.ast"), "FileNotFound"},
		{"unknown error falls back to system error", NewSystemError("boom"), "SystemError"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obj := ToExceptionTerm(tc.err)
			if obj.StructName != "Exception" {
				t.Fatalf("expected struct name Exception, got %s", obj.StructName)
			}
			kindIdx := obj.MemberIndex("kind")
			if kindIdx < 0 {
				t.Fatal("expected a kind member")
			}
			got := obj.Memory[kindIdx].String()
			if got != tc.want {
				t.Errorf("expected kind %q, got %q", tc.want, got)
			}
		})
	}
}

func TestToExceptionTermWrapsMessage(t *testing.T) {
	err := Wrap(NewPatternMatchFailed("x"), "call dispatch")
	obj := ToExceptionTerm(err)
	msgIdx := obj.MemberIndex("message")
	if msgIdx < 0 {
		t.Fatal("expected a message member")
	}
	if obj.Memory[msgIdx].String() == "" {
		t.Error("wrapped error message should not be empty")
	}
}
