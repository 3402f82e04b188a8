package runtime

import "github.com/cwbudde/jsrt/internal/jstring"

// CallFunc and InvokeConstructorFunc are passed into the operations that
// need dispatch (Add through ToString; GetProperty/SetProperty through
// ToString and ToObject) to avoid importing the dispatch package here,
// which in turn imports this one.
type CallFunc = func(env Env, fn Value, this Value) Value
type InvokeConstructorFunc = func(env Env, ctor Value, argCount int) Value

// Add implements the binary + operator (spec.md §4.C): if either operand is
// a string, both are ToString-coerced and concatenated; otherwise both are
// ToNumber-coerced and summed with int32 wraparound.
func Add(env Env, a, b Value, call CallFunc) Value {
	if a.Tag() == TagString || b.Tag() == TagString {
		as := ToString(env, a, call)
		bs := ToString(env, b, call)
		return NewString(jstring.Concat(as.String(), bs.String()))
	}
	an := ToNumber(env, a)
	bn := ToNumber(env, b)
	return NewNumber(an.Number() + bn.Number())
}

// Sub implements the binary - operator.
func Sub(env Env, a, b Value) Value {
	an := ToNumber(env, a)
	bn := ToNumber(env, b)
	return NewNumber(an.Number() - bn.Number())
}

// Mult implements the binary * operator.
func Mult(env Env, a, b Value) Value {
	an := ToNumber(env, a)
	bn := ToNumber(env, b)
	return NewNumber(an.Number() * bn.Number())
}

// Lt implements the binary < operator.
func Lt(env Env, a, b Value) Value {
	return NewBoolean(ToNumber(env, a).Number() < ToNumber(env, b).Number())
}

// Gt implements the binary > operator.
func Gt(env Env, a, b Value) Value {
	return NewBoolean(ToNumber(env, a).Number() > ToNumber(env, b).Number())
}

// BinaryAnd, BinaryOr and BinaryXor implement &, | and ^: both operands are
// ToNumber-coerced and the bitwise operator applied to the resulting
// int32s.
func BinaryAnd(env Env, a, b Value) Value {
	return NewNumber(ToNumber(env, a).Number() & ToNumber(env, b).Number())
}

func BinaryOr(env Env, a, b Value) Value {
	return NewNumber(ToNumber(env, a).Number() | ToNumber(env, b).Number())
}

func BinaryXor(env Env, a, b Value) Value {
	return NewNumber(ToNumber(env, a).Number() ^ ToNumber(env, b).Number())
}

// StrictEq implements the runtime's equality: tags must match, and within a
// tag values compare structurally. spec.md §4.C documents that == in this
// runtime is implemented as strict equality — there is no loose coercion.
func StrictEq(a, b Value) Value {
	if a.Tag() != b.Tag() {
		return NewBoolean(false)
	}
	switch a.Tag() {
	case TagNumber:
		return NewBoolean(a.Number() == b.Number())
	case TagString:
		return NewBoolean(jstring.Equal(a.String(), b.String()))
	case TagBoolean:
		return NewBoolean(a.Bool() == b.Bool())
	case TagObject:
		return NewBoolean(a.Object() == b.Object())
	default:
		return NewBoolean(true) // both Undefined
	}
}

// StrictNeq is the negation of StrictEq.
func StrictNeq(a, b Value) Value {
	return NewBoolean(!StrictEq(a, b).Bool())
}

// Eq and Neq alias StrictEq/StrictNeq — the documented deviation from full
// ECMAScript loose equality (spec.md §4.C, §9 Open Questions).
func Eq(a, b Value) Value  { return StrictEq(a, b) }
func Neq(a, b Value) Value { return StrictNeq(a, b) }

// TypeOf implements the typeof operator (spec.md §4.C).
func TypeOf(v Value) Value {
	switch v.Tag() {
	case TagNumber:
		return NewStringFromGo("number")
	case TagString:
		return NewStringFromGo("string")
	case TagBoolean:
		return NewStringFromGo("boolean")
	case TagObject:
		if IsFunction(v) {
			return NewStringFromGo("function")
		}
		return NewStringFromGo("object")
	default:
		return NewStringFromGo("undefined")
	}
}

var prototypeKey = jstring.FromGoString("prototype")

// InstanceOf implements the instanceof operator (spec.md §4.C): the right
// operand must be a function value, whose own "prototype" property must
// resolve to an object; the left operand's prototype chain is then walked
// for that object.
func InstanceOf(env Env, left, right Value) Value {
	if !IsFunction(right) {
		env.ThrowNew("TypeError", jstring.FromGoString("Right-hand side of instanceof is not a function"))
		return NewBoolean(false) // unreachable
	}
	proto := right.Object().GetOwn(prototypeKey)
	if proto.Tag() != TagObject || proto.IsNull() {
		env.ThrowNew("TypeError", jstring.FromGoString("Function has no prototype object"))
		return NewBoolean(false) // unreachable
	}
	if left.Tag() != TagObject || left.IsNull() {
		return NewBoolean(false)
	}
	target := proto.Object()
	for o := left.Object().Prototype; o != nil; o = o.Prototype {
		if o == target {
			return NewBoolean(true)
		}
	}
	return NewBoolean(false)
}

// LogicalAnd and LogicalOr implement && and ||: both short-circuit on the
// ToBoolean of the left operand and return the *original* operand value,
// never a coerced boolean.
func LogicalAnd(a, b Value) Value {
	if IsTruthy(a) {
		return b
	}
	return a
}

func LogicalOr(a, b Value) Value {
	if IsTruthy(a) {
		return a
	}
	return b
}
