package builtin

import (
	"github.com/cwbudde/jsrt/internal/dispatch"
	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

// bootstrapObjectAndFunction wires Object.prototype/Object and
// Function.prototype/Function together, exactly as
// js_create_native_objects does: Object and Function are the two
// constructors whose Function object is built by hand rather than through
// Env.NewFunctionValue, because neither Object.prototype nor
// Function.prototype exists yet for the helper to chain onto.
func bootstrapObjectAndFunction(e *runtimeenv.Env) {
	objectProto := runtime.NewObject(nil)
	e.SaveObject(objectProto)
	objectCtor := runtime.NewFunctionObject(nil, objectConstructor, nil)
	e.SaveObject(objectCtor)
	objectCtor.Set(prototypeKey, runtime.NewObjectValue(objectProto))
	objectProto.Set(constructorKey, runtime.NewObjectValue(objectCtor))
	e.SetGlobal("Object", runtime.NewObjectValue(objectCtor))

	functionCtor := runtime.NewFunctionObject(objectProto, functionConstructor, nil)
	e.SaveObject(functionCtor)
	functionProto := e.NewPlainObject()
	functionCtor.Set(prototypeKey, runtime.NewObjectValue(functionProto))
	functionProto.Set(constructorKey, runtime.NewObjectValue(functionCtor))
	e.SetGlobal("Function", runtime.NewObjectValue(functionCtor))

	functionProto.Set(jstring.FromGoString("call"), e.NewFunctionValue(dispatch.FunctionPrototypeCall(toStringHook(e))))
	functionProto.Set(jstring.FromGoString("apply"), e.NewFunctionValue(dispatch.FunctionPrototypeApply(getPropertyHook(e), toStringHook(e))))

	objectProto.Set(jstring.FromGoString("isPrototypeOf"), e.NewFunctionValue(objectIsPrototypeOf(e)))
	objectProto.Set(jstring.FromGoString("hasOwnProperty"), e.NewFunctionValue(objectHasOwnProperty(e)))
}

// objectConstructor implements `new Object()`/`Object()`: js_object_constructor
// ignores both its receiver and any arguments and simply returns a fresh
// plain object, which invoke_constructor's "returns an object" rule then
// substitutes for the instance InvokeConstructor had already allocated.
func objectConstructor(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
	env.PopN(argCount)
	return runtime.NewObjectValue(env.NewPlainObject())
}

// functionConstructor implements the Function constructor: compiled code
// never legitimately calls it (function literals are lowered to
// js_construct_function_object_value by the code generator, out of this
// runtime's scope per §1), so it always throws, matching
// js_function_constructor.
func functionConstructor(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
	env.ThrowNew("TypeError", jstring.FromGoString("Cannot use Function constructor in compiled code."))
	return runtime.NewUndefined() // unreachable
}

// objectIsPrototypeOf implements Object.prototype.isPrototypeOf: true iff
// the receiver appears anywhere in the argument's prototype chain
// (js_object_is_prototype_of).
func objectIsPrototypeOf(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		if argCount == 0 {
			return runtime.NewBoolean(false)
		}
		target := e.Args(argCount)[0]
		e.PopN(argCount)

		if target.Tag() != runtime.TagObject || target.IsNull() {
			return runtime.NewBoolean(false)
		}
		receiver := e.ToObject(this)
		for o := target.Object(); o != nil; o = o.Prototype {
			if o.Prototype == receiver.Object() {
				return runtime.NewBoolean(true)
			}
		}
		return runtime.NewBoolean(false)
	}
}

// objectHasOwnProperty implements Object.prototype.hasOwnProperty
// (js_object_has_own_property).
func objectHasOwnProperty(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)
		var key runtime.Value
		if len(args) > 0 {
			key = args[0]
		} else {
			key = runtime.NewUndefined()
		}
		keyStr := e.ToString(key)
		receiver := e.ToObject(this)
		return runtime.NewBoolean(receiver.Object().HasOwn(keyStr.String()))
	}
}

// toStringHook and getPropertyHook adapt Env's bound ToString/GetProperty
// convenience methods to the generic function-pointer shapes
// internal/dispatch's Function.prototype.call/apply helpers expect,
// mirroring runtimeenv.Env's own toStringFn/toObjectFn adapters.
func toStringHook(e *runtimeenv.Env) dispatch.ToStringFunc {
	return func(env runtime.Env, v runtime.Value) runtime.Value { return e.ToString(v) }
}

func getPropertyHook(e *runtimeenv.Env) func(env runtime.Env, v, key runtime.Value) runtime.Value {
	return func(env runtime.Env, v, key runtime.Value) runtime.Value { return e.GetProperty(v, key) }
}
