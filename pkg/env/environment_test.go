package env

import (
	"testing"

	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

func TestLookupSearchesOutward(t *testing.T) {
	e := New()
	e.EnterSym("x", term.NewInteger(1))
	e.PushScope()
	e.EnterSym("y", term.NewInteger(2))

	t.Run("inner binding found first", func(t *testing.T) {
		v, ok := e.LookupSym("y")
		if !ok || v.(*term.Integer).Value != 2 {
			t.Fatalf("expected y=2, got %v ok=%v", v, ok)
		}
	})

	t.Run("outer binding still reachable", func(t *testing.T) {
		v, ok := e.LookupSym("x")
		if !ok || v.(*term.Integer).Value != 1 {
			t.Fatalf("expected x=1, got %v ok=%v", v, ok)
		}
	})

	t.Run("popping scope removes inner binding", func(t *testing.T) {
		e.PopScope()
		if _, ok := e.LookupSym("y"); ok {
			t.Error("y should be unreachable after its scope is popped")
		}
	})
}

func TestIsSymbolLocal(t *testing.T) {
	e := New()
	e.EnterSym("x", term.NewInteger(1))
	e.PushScope()

	if e.IsSymbolLocal("x") {
		t.Error("x is bound in the outer frame, not the local one")
	}

	e.EnterSym("x", term.NewInteger(2))
	if !e.IsSymbolLocal("x") {
		t.Error("x should now be local after binding it in the inner frame")
	}
}

func TestEnterGlobalBypassesNesting(t *testing.T) {
	e := New()
	e.PushScope()
	e.PushScope()
	e.EnterGlobal("g", term.NewInteger(42))

	e.PopScope()
	e.PopScope()

	v, ok := e.LookupSym("g")
	if !ok || v.(*term.Integer).Value != 42 {
		t.Fatalf("expected g=42 visible from the global frame, got %v ok=%v", v, ok)
	}
}

func TestClosureSnapshotIsIndependent(t *testing.T) {
	e := New()
	e.EnterSym("x", term.NewInteger(1))

	closure := e.GetClosure()

	e.EnterSym("x", term.NewInteger(2))

	e2 := New()
	e2.SetConfig(closure)
	v, ok := e2.LookupSym("x")
	if !ok || v.(*term.Integer).Value != 1 {
		t.Errorf("closure snapshot should keep x=1, got %v ok=%v", v, ok)
	}
}

func TestSavedConfigRoundTrip(t *testing.T) {
	e := New()
	e.EnterSym("caller", term.NewInteger(1))

	callerCfg := e.GetConfig()
	e.PushSavedConfig(callerCfg)

	e.SetConfig([]term.Scope{NewFrame()})
	e.EnterSym("callee", term.NewInteger(2))

	if e.SavedConfigDepth() != 1 {
		t.Fatalf("expected saved-config depth 1, got %d", e.SavedConfigDepth())
	}

	e.PopSavedConfig()

	if _, ok := e.LookupSym("callee"); ok {
		t.Error("callee binding should not survive restoring the caller's config")
	}
	if v, ok := e.LookupSym("caller"); !ok || v.(*term.Integer).Value != 1 {
		t.Error("caller binding should be restored after PopSavedConfig")
	}
	if e.SavedConfigDepth() != 0 {
		t.Errorf("expected saved-config depth 0 after pop, got %d", e.SavedConfigDepth())
	}
}
