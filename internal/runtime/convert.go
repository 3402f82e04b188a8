package runtime

import (
	"strconv"

	"github.com/cwbudde/jsrt/internal/jstring"
)

var (
	toStringKey = jstring.FromGoString("toString")
	lengthStr   = jstring.FromGoString("length")
)

// ToString implements spec.md §4.C: numbers render as decimal ASCII,
// booleans as "true"/"false", objects defer to a resolved toString method
// (called with the object as receiver) or fall back to "[function]"/
// "[object]", and Undefined renders as "[undefined]".
//
// call is the dispatch hook used to invoke a resolved toString method; it
// is passed in rather than imported to avoid a cycle with the dispatch
// package (dispatch itself calls ToString for error messages).
func ToString(env Env, v Value, call func(env Env, fn Value, this Value) Value) Value {
	switch v.Tag() {
	case TagNumber:
		return NewStringFromGo(strconv.FormatInt(int64(v.Number()), 10))
	case TagString:
		return v
	case TagBoolean:
		if v.Bool() {
			return NewStringFromGo("true")
		}
		return NewStringFromGo("false")
	case TagObject:
		if v.IsNull() {
			return NewStringFromGo("[object]")
		}
		o := v.Object()
		toStr := o.Get(toStringKey)
		if IsFunction(toStr) {
			return call(env, toStr, v)
		}
		if o.Class == ClassFunction {
			return NewStringFromGo("[function]")
		}
		return NewStringFromGo("[object]")
	default:
		return NewStringFromGo("[undefined]")
	}
}

// ToNumber implements spec.md §4.C. Numbers are returned unchanged,
// booleans convert to 0/1. Any other tag cannot be given a meaningful
// numeric value in this runtime — the original C runtime aborts the
// process here; this implementation upgrades that abort to a throwable
// TypeError, the allowance spec.md §7 category 2 explicitly grants (see
// DESIGN.md's Open Question decision).
func ToNumber(env Env, v Value) Value {
	switch v.Tag() {
	case TagNumber:
		return v
	case TagBoolean:
		if v.Bool() {
			return NewNumber(1)
		}
		return NewNumber(0)
	default:
		env.ThrowNew("TypeError", jstring.FromGoString("Cannot convert to number"))
		return NewUndefined() // unreachable: ThrowNew never returns normally
	}
}

// ToBoolean implements spec.md §4.C.
func ToBoolean(v Value) Value {
	switch v.Tag() {
	case TagNumber:
		return NewBoolean(v.Number() != 0)
	case TagString:
		return NewBoolean(v.String().Len() > 0)
	case TagBoolean:
		return v
	case TagObject:
		return NewBoolean(!v.IsNull())
	default:
		return NewBoolean(false)
	}
}

// IsTruthy is a convenience wrapper around ToBoolean for short-circuit
// control flow.
func IsTruthy(v Value) bool {
	return ToBoolean(v).Bool()
}

// ToObject implements spec.md §4.C: objects (including null) pass through
// unchanged; numbers and strings are wrapped by pushing the primitive onto
// the call stack and invoking the corresponding global constructor, the
// same mechanism js_to_object uses. invokeConstructor is passed in to avoid
// a cycle with the dispatch package.
func ToObject(env Env, v Value, invokeConstructor func(env Env, ctor Value, argCount int) Value) Value {
	switch v.Tag() {
	case TagObject:
		return v
	case TagNumber:
		env.Push(v)
		return invokeConstructor(env, env.GetGlobal("Number"), 1)
	case TagString:
		env.Push(v)
		return invokeConstructor(env, env.GetGlobal("String"), 1)
	default:
		env.ThrowNew("TypeError", jstring.FromGoString("Cannot convert to object"))
		return NewUndefined() // unreachable
	}
}

// StringLength reports the length of a string value, resolving the
// "length" property the way property access on a string primitive does
// (spec.md §4.B).
func StringLength(v Value) int32 {
	return int32(v.String().Len())
}
