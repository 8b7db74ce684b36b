package eval

import (
	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/prelude"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

func init() {
	register(term.TagIndex, evalIndexRead)
}

// evalIndexRead implements read_at_ix: base[subscript] in value
// position. An integer subscript selects a single element (or, on an
// object whose slot holds a function, a bound member-function-val); a
// list of integer subscripts selects multiple elements as a new list; an
// id subscript against a string or list base that names a registered
// prelude method returns a bound NativeMethod.
func evalIndexRead(c *Ctx, n term.Node) (term.Node, error) {
	ix := n.(*term.Index)

	if id, ok := ix.Subscript.(*term.ID); ok {
		base, err := c.Eval(ix.Base)
		if err != nil {
			return nil, err
		}
		if m, ok := bindNativeMethod(base, id.Name); ok {
			return m, nil
		}
		if obj, ok := base.(*term.Object); ok {
			return readObjectMember(obj, id.Name)
		}
	}

	base, err := c.Eval(ix.Base)
	if err != nil {
		return nil, err
	}
	sub, err := c.Eval(ix.Subscript)
	if err != nil {
		return nil, err
	}

	if lst, ok := sub.(*term.List); ok {
		out := make([]term.Node, len(lst.Elements))
		for i, e := range lst.Elements {
			idx, ok := e.(*term.Integer)
			if !ok {
				return nil, except.NewSystemError("index list must contain integers")
			}
			v, err := readAtInt(base, int(idx.Value))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return term.NewList(out...), nil
	}

	idx, ok := sub.(*term.Integer)
	if !ok {
		return nil, except.NewSystemError("index subscript must be an integer or list of integers")
	}
	return readAtInt(base, int(idx.Value))
}

func bindNativeMethod(base term.Node, name string) (term.Node, bool) {
	switch base.(type) {
	case *term.List:
		if fn, ok := prelude.ListMembers[name]; ok {
			return &NativeMethod{Name: name, Receiver: base, Fn: fn}, true
		}
	case *term.Str:
		if fn, ok := prelude.StringMembers[name]; ok {
			return &NativeMethod{Name: name, Receiver: base, Fn: fn}, true
		}
	}
	return nil, false
}

func readObjectMember(obj *term.Object, name string) (term.Node, error) {
	i := obj.MemberIndex(name)
	if i < 0 {
		return nil, except.NewSystemError("object " + obj.StructName + " has no member " + name)
	}
	slot := obj.Memory[i]
	if fv, ok := slot.(*term.FunctionVal); ok {
		return term.NewMemberFunctionVal(obj, fv), nil
	}
	return slot, nil
}

func readAtInt(base term.Node, idx int) (term.Node, error) {
	switch b := base.(type) {
	case *term.List:
		if idx < 0 || idx >= len(b.Elements) {
			return nil, except.NewSystemError("list index out of range")
		}
		v := b.Elements[idx]
		if fv, ok := v.(*term.FunctionVal); ok {
			return fv, nil
		}
		return v, nil
	case *term.Tuple:
		if idx < 0 || idx >= len(b.Elements) {
			return nil, except.NewSystemError("tuple index out of range")
		}
		return b.Elements[idx], nil
	case *term.Str:
		if idx < 0 || idx >= len(b.Value) {
			return nil, except.NewSystemError("string index out of range")
		}
		return term.NewStr(string(b.Value[idx])), nil
	case *term.Object:
		if idx < 0 || idx >= len(b.Memory) {
			return nil, except.NewSystemError("object index out of range")
		}
		slot := b.Memory[idx]
		if fv, ok := slot.(*term.FunctionVal); ok {
			return term.NewMemberFunctionVal(b, fv), nil
		}
		return slot, nil
	default:
		return nil, except.NewSystemError("value is not indexable")
	}
}

// StoreAtIndex implements store_at_ix: writing through an index
// expression used as an assignment target. An integer subscript writes a
// single slot; a list of integer subscripts requires the value to be a
// list of equal length and writes element-wise.
func StoreAtIndex(base term.Node, sub term.Node, value term.Node) error {
	if lst, ok := sub.(*term.List); ok {
		vl, ok := value.(*term.List)
		if !ok || len(vl.Elements) != len(lst.Elements) {
			return except.NewSystemError("index-list assignment requires a value list of equal length")
		}
		for i, e := range lst.Elements {
			idx, ok := e.(*term.Integer)
			if !ok {
				return except.NewSystemError("index list must contain integers")
			}
			if err := storeAtInt(base, int(idx.Value), vl.Elements[i]); err != nil {
				return err
			}
		}
		return nil
	}
	idx, ok := sub.(*term.Integer)
	if !ok {
		return except.NewSystemError("index subscript must be an integer or list of integers")
	}
	return storeAtInt(base, int(idx.Value), value)
}

func storeAtInt(base term.Node, idx int, value term.Node) error {
	switch b := base.(type) {
	case *term.List:
		if idx < 0 || idx >= len(b.Elements) {
			return except.NewSystemError("list index out of range")
		}
		b.Elements[idx] = value
		return nil
	case *term.Object:
		if idx < 0 || idx >= len(b.Memory) {
			return except.NewSystemError("object index out of range")
		}
		b.Memory[idx] = value
		return nil
	default:
		return except.NewSystemError("value is not assignable by index")
	}
}
