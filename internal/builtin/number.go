package builtin

import (
	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

// bootstrapNumber installs the Number constructor and
// Number.prototype.{valueOf, toString} (spec.md §6).
func bootstrapNumber(e *runtimeenv.Env) {
	ctor := e.NewFunctionValue(numberConstructor(e))
	e.SetGlobal("Number", ctor)

	proto := ctor.Object().GetOwn(prototypeKey).Object()
	proto.Set(jstring.FromGoString("valueOf"), e.NewFunctionValue(numberValueOf(e)))
	proto.Set(jstring.FromGoString("toString"), e.NewFunctionValue(numberToString(e)))
}

// numberConstructor implements js_number_constructor: the first positional
// argument becomes the wrapper's [[PrimitiveValue]]. A missing argument
// defaults to Number(0) rather than reading past the call-stack tail, the
// one place this port tightens the original's implicit one-argument
// assumption.
func numberConstructor(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)

		primitive := runtime.NewNumber(0)
		if len(args) > 0 {
			primitive = args[0]
		}
		this.Object().Primitive = &primitive
		return this
	}
}

// numberValueOf implements js_number_value_of: returns the wrapper's
// [[PrimitiveValue]] unchanged.
func numberValueOf(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		e.PopN(argCount)
		if p := this.Object().Primitive; p != nil {
			return *p
		}
		return runtime.NewUndefined()
	}
}

// numberToString implements js_number_to_string: ToString of the unwrapped
// primitive.
func numberToString(e *runtimeenv.Env) runtime.NativeFunc {
	valueOf := numberValueOf(e)
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		return e.ToString(valueOf(env, this, argCount, binding))
	}
}
