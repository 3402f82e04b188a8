package runtime

import (
	"testing"

	"github.com/cwbudde/jsrt/internal/jstring"
)

func TestSetThenGetReturnsSameValue(t *testing.T) {
	o := NewObject(nil)
	key := jstring.FromGoString("x")
	o.Set(key, NewNumber(7))

	got := o.Get(key)
	if !StrictEq(got, NewNumber(7)).Bool() {
		t.Errorf("Get(%q) = %v, want 7", "x", got)
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	o := NewObject(nil)
	key := jstring.FromGoString("x")
	o.Set(key, NewNumber(1))
	o.Set(key, NewNumber(2))

	if len(o.Properties) != 1 {
		t.Fatalf("expected 1 property after replace, got %d", len(o.Properties))
	}
	if o.Get(key).Number() != 2 {
		t.Errorf("Get(x) = %d, want 2", o.Get(key).Number())
	}
}

func TestFindWalksPrototypeChain(t *testing.T) {
	parent := NewObject(nil)
	parent.Set(jstring.FromGoString("inherited"), NewNumber(42))
	child := NewObject(parent)

	got := child.Get(jstring.FromGoString("inherited"))
	if got.Number() != 42 {
		t.Errorf("inherited lookup = %v, want 42", got)
	}
	if child.HasOwn(jstring.FromGoString("inherited")) {
		t.Error("inherited property reported as own")
	}
}

func TestFindReturnsUndefinedWhenMissing(t *testing.T) {
	o := NewObject(nil)
	got := o.Get(jstring.FromGoString("missing"))
	if got.Tag() != TagUndefined {
		t.Errorf("missing lookup = %v, want Undefined", got)
	}
}

func TestArraySetRaisesLength(t *testing.T) {
	arr := &Object{Class: ClassArray}
	arr.Set(jstring.FromGoString("0"), NewStringFromGo("a"))
	arr.Set(jstring.FromGoString("2"), NewStringFromGo("c"))

	length := arr.Get(lengthKey)
	if length.Number() != 3 {
		t.Errorf("length after setting index 2 = %d, want 3", length.Number())
	}
}

func TestArrayNeverAutoShrinks(t *testing.T) {
	arr := &Object{Class: ClassArray}
	arr.Set(jstring.FromGoString("5"), NewNumber(1))
	if arr.Get(lengthKey).Number() != 6 {
		t.Fatalf("setup: expected length 6")
	}
	arr.Set(jstring.FromGoString("0"), NewNumber(99))
	if arr.Get(lengthKey).Number() != 6 {
		t.Errorf("length shrank after setting a lower index: %d", arr.Get(lengthKey).Number())
	}
}

func TestIsFunctionRequiresObjectTagAndFunctionClass(t *testing.T) {
	fn := NewObjectValue(NewFunctionObject(nil, nil, nil))
	if !IsFunction(fn) {
		t.Error("function object not recognised as function")
	}

	plain := NewObjectValue(NewObject(nil))
	if IsFunction(plain) {
		t.Error("plain object recognised as function")
	}

	if IsFunction(NewNull()) {
		t.Error("null recognised as function")
	}
}
