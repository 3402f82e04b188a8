package runtime

import "testing"

func TestAddConcatenatesWhenEitherOperandIsString(t *testing.T) {
	env := newFakeEnv()
	got := Add(env, NewNumber(1), NewStringFromGo("2"), noCall)
	if got.Tag() != TagString || got.String().Go() != "12" {
		t.Errorf("1 + \"2\" = %v, want string \"12\"", got)
	}

	got = Add(env, NewStringFromGo("1"), NewNumber(2), noCall)
	if got.String().Go() != "12" {
		t.Errorf("\"1\" + 2 = %v, want string \"12\"", got)
	}
}

func TestAddIsNumericWhenNeitherOperandIsString(t *testing.T) {
	env := newFakeEnv()
	got := Add(env, NewNumber(1), NewNumber(2), noCall)
	if got.Tag() != TagNumber || got.Number() != 3 {
		t.Errorf("1 + 2 = %v, want number 3", got)
	}
}

func TestAddIsCommutativeAndAssociativeForNumbers(t *testing.T) {
	env := newFakeEnv()
	a, b, c := NewNumber(7), NewNumber(-3), NewNumber(100)

	ab := Add(env, a, b, noCall).Number()
	ba := Add(env, b, a, noCall).Number()
	if ab != ba {
		t.Errorf("add not commutative: %d != %d", ab, ba)
	}

	abc1 := Add(env, Add(env, a, b, noCall), c, noCall).Number()
	abc2 := Add(env, a, Add(env, b, c, noCall), noCall).Number()
	if abc1 != abc2 {
		t.Errorf("add not associative: %d != %d", abc1, abc2)
	}
}

func TestStrictEqRequiresMatchingTags(t *testing.T) {
	if StrictEq(NewNumber(1), NewStringFromGo("1")).Bool() {
		t.Error("1 === \"1\" should be false (no coercion)")
	}
	if !StrictEq(NewUndefined(), NewUndefined()).Bool() {
		t.Error("undefined === undefined should be true")
	}
	o := NewObject(nil)
	if !StrictEq(NewObjectValue(o), NewObjectValue(o)).Bool() {
		t.Error("same object reference should be ===")
	}
	if StrictEq(NewObjectValue(NewObject(nil)), NewObjectValue(NewObject(nil))).Bool() {
		t.Error("distinct objects should not be ===")
	}
}

func TestEqAliasesStrictEq(t *testing.T) {
	if Eq(NewNumber(1), NewStringFromGo("1")).Bool() != StrictEq(NewNumber(1), NewStringFromGo("1")).Bool() {
		t.Error("== diverged from === — spec.md documents these as identical in this runtime")
	}
}

func TestTypeOf(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NewNumber(1), "number"},
		{NewStringFromGo("x"), "string"},
		{NewBoolean(true), "boolean"},
		{NewUndefined(), "undefined"},
		{NewNull(), "object"},
		{NewObjectValue(NewObject(nil)), "object"},
		{NewObjectValue(NewFunctionObject(nil, nil, nil)), "function"},
	}
	for _, c := range cases {
		if got := TypeOf(c.v).String().Go(); got != c.want {
			t.Errorf("TypeOf(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestInstanceOfWalksPrototypeChain(t *testing.T) {
	env := newFakeEnv()
	aProto := NewObject(nil)
	aCtor := NewFunctionObject(nil, nil, nil)
	aCtor.Set(prototypeKey, NewObjectValue(aProto))

	instance := NewObject(aProto)

	got := InstanceOf(env, NewObjectValue(instance), NewObjectValue(aCtor))
	if !got.Bool() {
		t.Error("instance should be instanceof its direct constructor")
	}
}

func TestInstanceOfThrowsWhenRightIsNotFunction(t *testing.T) {
	env := newFakeEnv()
	thrown := expectThrow(t, func() {
		InstanceOf(env, NewObjectValue(NewObject(nil)), NewNumber(1))
	})
	if thrown.Tag() != TagObject {
		t.Errorf("expected thrown object, got %v", thrown)
	}
}

func TestLogicalAndOrReturnOriginalOperand(t *testing.T) {
	zero := NewNumber(0)
	five := NewNumber(5)

	if got := LogicalAnd(zero, five); got.Tag() != TagNumber || got.Number() != 0 {
		t.Errorf("falsey && x = %v, want the falsey operand unchanged", got)
	}
	if got := LogicalAnd(five, zero); got.Number() != 0 {
		t.Errorf("truthy && x = %v, want x", got)
	}
	if got := LogicalOr(zero, five); got.Number() != 5 {
		t.Errorf("falsey || x = %v, want x", got)
	}
	if got := LogicalOr(five, zero); got.Number() != 5 {
		t.Errorf("truthy || x = %v, want the truthy operand unchanged", got)
	}
}
