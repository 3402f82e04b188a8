package builtin

import (
	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

// bootstrapString installs the String constructor and
// String.prototype.{valueOf, toString, charAt, substring, indexOf, slice}
// (spec.md §6).
func bootstrapString(e *runtimeenv.Env) {
	ctor := e.NewFunctionValue(stringConstructor(e))
	e.SetGlobal("String", ctor)

	proto := ctor.Object().GetOwn(prototypeKey).Object()
	proto.Set(jstring.FromGoString("valueOf"), e.NewFunctionValue(stringValueOf(e)))
	proto.Set(jstring.FromGoString("toString"), e.NewFunctionValue(stringToString(e)))
	proto.Set(jstring.FromGoString("charAt"), e.NewFunctionValue(stringCharAt(e)))
	proto.Set(jstring.FromGoString("substring"), e.NewFunctionValue(stringSubstring(e)))
	proto.Set(jstring.FromGoString("indexOf"), e.NewFunctionValue(stringIndexOf(e)))
	proto.Set(jstring.FromGoString("slice"), e.NewFunctionValue(stringSlice(e)))
}

// stringConstructor implements js_string_constructor: the first positional
// argument is ToString-coerced into the wrapper's [[PrimitiveValue]], and
// "length" is set to its byte length.
func stringConstructor(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)

		var arg runtime.Value
		if len(args) > 0 {
			arg = args[0]
		} else {
			arg = runtime.NewStringFromGo("")
		}
		primitive := e.ToString(arg)
		this.Object().Primitive = &primitive
		this.Object().Set(lengthKey, runtime.NewNumber(int32(primitive.String().Len())))
		return this
	}
}

// stringValueOf implements js_string_value_of.
func stringValueOf(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		e.PopN(argCount)
		if p := this.Object().Primitive; p != nil {
			return *p
		}
		return runtime.NewUndefined()
	}
}

// stringToString implements js_string_to_string: delegates to valueOf,
// which already returns a String.
func stringToString(e *runtimeenv.Env) runtime.NativeFunc {
	valueOf := stringValueOf(e)
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		return valueOf(env, this, argCount, binding)
	}
}

// stringCharAt implements js_string_char_at: returns a zero-copy
// single-byte view, or Undefined for an out-of-range index (spec.md §8
// boundary scenario).
func stringCharAt(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)

		var indexArg runtime.Value
		if len(args) > 0 {
			indexArg = args[0]
		} else {
			indexArg = runtime.NewUndefined()
		}
		index := int(e.ToNumber(indexArg).Number())
		s := e.ToString(this).String()
		if index < 0 || index >= s.Len() {
			return runtime.NewUndefined()
		}
		return runtime.NewString(s.CharAt(index))
	}
}

// stringSubstring implements js_string_substring: `to` is clamped to the
// string's length when it overruns (spec.md §8 boundary scenario).
func stringSubstring(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)

		s := e.ToString(this).String()
		from := int(e.ToNumber(arg(args, 0)).Number())
		to := int(e.ToNumber(arg(args, 1)).Number())
		if to > s.Len() {
			to = s.Len()
		}
		if from < 0 {
			from = 0
		}
		if from > to {
			from = to
		}
		return runtime.NewString(jstring.FromBytes(s.Bytes()[from:to]))
	}
}

// stringIndexOf implements js_string_index_of: an omitted substring
// argument is ToString-coerced from Undefined the same way the original's
// JSValue-typed default does, and an omitted start position defaults to 0
// — "indexOf with an empty substring and no start argument returns 0"
// (spec.md §8).
func stringIndexOf(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)

		s := e.ToString(this).String()
		sub := e.ToString(arg(args, 0)).String()
		start := 0
		if len(args) > 1 {
			start = int(e.ToNumber(args[1]).Number())
		}

		sBytes, subBytes := s.Bytes(), sub.Bytes()
		for i := start; i <= len(sBytes)-len(subBytes); i++ {
			if bytesEqual(sBytes[i:i+len(subBytes)], subBytes) {
				return runtime.NewNumber(int32(i))
			}
		}
		return runtime.NewNumber(-1)
	}
}

// stringSlice implements js_string_slice: a view from start to the end of
// the string.
func stringSlice(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)

		start := int(e.ToNumber(arg(args, 0)).Number())
		s := e.ToString(this).String()
		if start < 0 {
			start = 0
		}
		if start > s.Len() {
			start = s.Len()
		}
		return runtime.NewString(jstring.FromBytes(s.Bytes()[start:]))
	}
}

// arg returns args[i], or Undefined when the caller omitted it — ToNumber
// on Undefined then throws a TypeError, while ToString renders it as
// "[undefined]".
func arg(args []runtime.Value, i int) runtime.Value {
	if i < len(args) {
		return args[i]
	}
	return runtime.NewUndefined()
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
