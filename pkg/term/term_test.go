package term

import "testing"

func TestScalarEquality(t *testing.T) {
	t.Run("integers compare by value", func(t *testing.T) {
		a := NewInteger(3)
		b := NewInteger(3)
		c := NewInteger(4)

		if !a.Equal(b) {
			t.Error("equal integers should compare equal")
		}
		if a.Equal(c) {
			t.Error("different integers should not compare equal")
		}
	})

	t.Run("strings compare by value", func(t *testing.T) {
		a := NewStr("foo")
		b := NewStr("foo")
		c := NewStr("bar")

		if !a.Equal(b) {
			t.Error("equal strings should compare equal")
		}
		if a.Equal(c) {
			t.Error("different strings should not compare equal")
		}
	})

	t.Run("none and nil are distinct tags", func(t *testing.T) {
		if NewNone().Tag() == NewNil().Tag() {
			t.Error("none and nil must carry different tags")
		}
	})
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewList(NewInteger(1), NewInteger(2))
	clone := orig.Clone().(*List)

	clone.Elements[0] = NewInteger(99)

	if orig.Elements[0].(*Integer).Value == 99 {
		t.Error("mutating a clone must not affect the original")
	}
	if !orig.Equal(NewList(NewInteger(1), NewInteger(2))) {
		t.Error("original list should be unchanged after cloning")
	}
}

func TestListEquality(t *testing.T) {
	a := NewList(NewInteger(1), NewStr("x"))
	b := NewList(NewInteger(1), NewStr("x"))
	c := NewList(NewInteger(1), NewStr("y"))

	if !a.Equal(b) {
		t.Error("structurally identical lists should be equal")
	}
	if a.Equal(c) {
		t.Error("lists differing in an element should not be equal")
	}
	if a.Equal(NewList(NewInteger(1))) {
		t.Error("lists of different length should not be equal")
	}
}

func TestIDWildcard(t *testing.T) {
	if !NewID("_").IsWildcard() {
		t.Error("_ must be recognized as the anonymous wildcard")
	}
	if NewID("x").IsWildcard() {
		t.Error("a named id must not be treated as a wildcard")
	}
}

func TestStructMemberIndex(t *testing.T) {
	s := NewStruct("Point", []string{"x", "y"}, []Node{NewNone(), NewNone()})

	if s.MemberIndex("y") != 1 {
		t.Errorf("expected index 1 for member y, got %d", s.MemberIndex("y"))
	}
	if s.MemberIndex("z") != -1 {
		t.Error("missing member should report index -1")
	}

	data := s.DataMemberIndices()
	if len(data) != 2 {
		t.Errorf("expected 2 data members, got %d", len(data))
	}
}

func TestUnifyNotAllowed(t *testing.T) {
	for _, tag := range []string{TagFunctionVal, TagToList, TagForeign, TagEscape, TagIs, TagIn} {
		if !IsDisallowedInUnify(tag) {
			t.Errorf("tag %q should be disallowed in unification", tag)
		}
	}
	if IsDisallowedInUnify(TagInteger) {
		t.Error("integer should be allowed in unification")
	}
}
