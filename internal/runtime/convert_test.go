package runtime

import "testing"

func noCall(env Env, fn Value, this Value) Value { return NewUndefined() }

func TestToStringNumber(t *testing.T) {
	env := newFakeEnv()
	got := ToString(env, NewNumber(-42), noCall)
	if got.String().Go() != "-42" {
		t.Errorf("ToString(-42) = %q, want %q", got.String().Go(), "-42")
	}
}

func TestToStringBoolean(t *testing.T) {
	env := newFakeEnv()
	if ToString(env, NewBoolean(true), noCall).String().Go() != "true" {
		t.Error("ToString(true) != \"true\"")
	}
	if ToString(env, NewBoolean(false), noCall).String().Go() != "false" {
		t.Error("ToString(false) != \"false\"")
	}
}

func TestToStringUndefined(t *testing.T) {
	env := newFakeEnv()
	got := ToString(env, NewUndefined(), noCall)
	if got.String().Go() != "[undefined]" {
		t.Errorf("ToString(undefined) = %q", got.String().Go())
	}
}

func TestToStringObjectCallsToStringMethod(t *testing.T) {
	env := newFakeEnv()
	called := false
	method := NewObjectValue(NewFunctionObject(nil, func(env Env, this Value, argCount int, binding *Object) Value {
		called = true
		return NewStringFromGo("custom")
	}, nil))

	o := NewObject(nil)
	o.Set(toStringKey, method)

	call := func(env Env, fn Value, this Value) Value {
		return fn.Object().Native(env, this, 0, fn.Object().Binding)
	}

	got := ToString(env, NewObjectValue(o), call)
	if !called {
		t.Error("toString method was not invoked")
	}
	if got.String().Go() != "custom" {
		t.Errorf("ToString = %q, want %q", got.String().Go(), "custom")
	}
}

func TestToStringObjectFallback(t *testing.T) {
	env := newFakeEnv()
	o := NewObject(nil)
	got := ToString(env, NewObjectValue(o), noCall)
	if got.String().Go() != "[object]" {
		t.Errorf("ToString(plain object) = %q, want [object]", got.String().Go())
	}

	fn := NewObjectValue(NewFunctionObject(nil, nil, nil))
	got = ToString(env, fn, noCall)
	if got.String().Go() != "[function]" {
		t.Errorf("ToString(function) = %q, want [function]", got.String().Go())
	}
}

func TestToNumberIdentityAndCoercion(t *testing.T) {
	env := newFakeEnv()
	if ToNumber(env, NewNumber(5)).Number() != 5 {
		t.Error("ToNumber(5) != 5")
	}
	if ToNumber(env, NewBoolean(true)).Number() != 1 {
		t.Error("ToNumber(true) != 1")
	}
	if ToNumber(env, NewBoolean(false)).Number() != 0 {
		t.Error("ToNumber(false) != 0")
	}
}

func TestToNumberThrowsOnUnconvertible(t *testing.T) {
	env := newFakeEnv()
	thrown := expectThrow(t, func() {
		ToNumber(env, NewStringFromGo("not a number in this runtime"))
	})
	if thrown.Tag() != TagObject {
		t.Errorf("expected an Object-tagged exception, got %v", thrown.Tag())
	}
}

func TestToBoolean(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{NewNumber(0), false},
		{NewNumber(1), true},
		{NewStringFromGo(""), false},
		{NewStringFromGo("x"), true},
		{NewBoolean(false), false},
		{NewBoolean(true), true},
		{NewUndefined(), false},
		{NewNull(), false},
		{NewObjectValue(NewObject(nil)), true},
	}
	for _, c := range cases {
		if got := ToBoolean(c.v).Bool(); got != c.want {
			t.Errorf("ToBoolean(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
