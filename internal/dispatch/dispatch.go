// Package dispatch implements call/method/constructor dispatch (component
// E): the three ways compiled code invokes a function value, each grounded
// directly on js_call_function/js_call_method/js_invoke_constructor in the
// original runtime.
package dispatch

import (
	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
)

var (
	prototypeKey = jstring.FromGoString("prototype")
	lengthKey    = jstring.FromGoString("length")
)

// ToStringFunc and ToObjectFunc let CallMethod format diagnostic messages
// and coerce a receiver without importing the runtime package's own
// dispatch-shaped hooks directly — CallMethod calls them exactly the way
// ToString/ToObject expect to be called from outside the runtime package.
type ToStringFunc = func(env runtime.Env, v runtime.Value) runtime.Value
type ToObjectFunc = func(env runtime.Env, v runtime.Value) runtime.Value

// Call invokes fn with receiver this, consuming argCount arguments already
// pushed onto env's call stack. fn must be a Function-classed object value;
// otherwise Call throws a TypeError built from fn's typeof, matching
// js_call_function's "<typeof> is not a function." message.
func Call(env runtime.Env, fn runtime.Value, this runtime.Value, argCount int, toString ToStringFunc) runtime.Value {
	if !runtime.IsFunction(fn) {
		typeName := toString(env, runtime.TypeOf(fn))
		message := jstring.Concat(typeName.String(), jstring.FromGoString(" is not a function."))
		env.ThrowNew("TypeError", message)
		return runtime.NewUndefined() // unreachable
	}
	obj := fn.Object()
	return obj.Native(env, this, argCount, obj.Binding)
}

// CallMethod resolves key on object (after ToObject coercion), verifies the
// result is callable, and calls it with object as the receiver. It throws
// the two distinct TypeErrors js_call_method distinguishes: a missing
// method vs. a non-callable property of the same name.
func CallMethod(env runtime.Env, object runtime.Value, key runtime.Value, argCount int, toObject ToObjectFunc, toString ToStringFunc) runtime.Value {
	recv := toObject(env, object)
	keyStr := toString(env, key)
	fn := recv.Object().Get(keyStr.String())

	if fn.Tag() == runtime.TagUndefined {
		message := jstring.Concat(jstring.FromGoString("Object "),
			jstring.Concat(toString(env, recv).String(),
				jstring.Concat(jstring.FromGoString(" has no method '"),
					jstring.Concat(keyStr.String(), jstring.FromGoString("'")))))
		env.ThrowNew("TypeError", message)
		return runtime.NewUndefined() // unreachable
	}
	if !runtime.IsFunction(fn) {
		message := jstring.Concat(jstring.FromGoString("Property '"),
			jstring.Concat(keyStr.String(),
				jstring.Concat(jstring.FromGoString("' of object "),
					jstring.Concat(toString(env, recv).String(), jstring.FromGoString(" is not a function")))))
		env.ThrowNew("TypeError", message)
		return runtime.NewUndefined() // unreachable
	}
	return Call(env, fn, recv, argCount, toString)
}

// InvokeConstructor allocates a new plain object whose prototype is ctor's
// own "prototype" property (falling back to Object.prototype), calls ctor
// with that object as the receiver, and returns the constructor's result if
// it is Object-tagged (including null), or the newly allocated object
// otherwise — js_invoke_constructor's exact rule (`if (ret.type ==
// TypeObject) return ret;`, with no separate null check).
func InvokeConstructor(env runtime.Env, ctor runtime.Value, argCount int, toString ToStringFunc) runtime.Value {
	this := env.NewPlainObject()

	if !runtime.IsFunction(ctor) {
		typeName := toString(env, runtime.TypeOf(ctor))
		message := jstring.Concat(typeName.String(), jstring.FromGoString(" is not a function."))
		env.ThrowNew("TypeError", message)
		return runtime.NewUndefined() // unreachable
	}

	proto := ctor.Object().GetOwn(prototypeKey)
	if proto.Tag() == runtime.TagObject && !proto.IsNull() {
		this.Prototype = proto.Object()
	} else if objectCtor := env.GetGlobal("Object"); runtime.IsFunction(objectCtor) {
		objProto := objectCtor.Object().GetOwn(prototypeKey)
		if objProto.Tag() == runtime.TagObject {
			this.Prototype = objProto.Object()
		}
	}

	ret := Call(env, ctor, runtime.NewObjectValue(this), argCount, toString)
	if ret.Tag() == runtime.TagObject {
		return ret
	}
	return runtime.NewObjectValue(this)
}

// FunctionPrototypeCall implements Function.prototype.call: the first
// argument becomes the receiver (Undefined if omitted), and every remaining
// argument is forwarded as-is — js_function_prototype_call. Like the
// original, the receiver slot is not popped before the forwarded call: Call
// reads its window tail-relative, so the top argCount-1 items are already
// exactly the forwarded arguments. Only after the callee has consumed its
// own window is the leftover receiver slot dropped.
func FunctionPrototypeCall(toString ToStringFunc) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		if argCount == 0 {
			return Call(env, this, runtime.NewUndefined(), 0, toString)
		}
		newThis := env.StackItem(argCount, 0)
		ret := Call(env, this, newThis, argCount-1, toString)
		env.PopN(1) // drop the leftover receiver slot
		return ret
	}
}

// FunctionPrototypeApply implements Function.prototype.apply: the first
// argument is the receiver, the second (if present) is an array-like whose
// "length" and indexed elements are expanded onto the call stack as the
// forwarded argument list — js_function_prototype_apply, including its
// documented FIXME that a missing/non-numeric length degrades to zero args.
func FunctionPrototypeApply(getProperty func(env runtime.Env, v runtime.Value, key runtime.Value) runtime.Value, toString ToStringFunc) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		newThis := runtime.NewUndefined()
		if argCount > 0 {
			newThis = env.StackItem(argCount, 0)
		}

		length := 0
		if argCount > 1 {
			argsObj := env.StackItem(argCount, 1)
			env.PopN(argCount) // receiver, array-like and any further slots
			if argsObj.Tag() == runtime.TagObject && !argsObj.IsNull() {
				lengthVal := argsObj.Object().GetOwn(lengthKey)
				if lengthVal.Tag() == runtime.TagNumber {
					length = int(lengthVal.Number())
				}
				for i := 0; i < length; i++ {
					env.Push(getProperty(env, argsObj, runtime.NewNumber(int32(i))))
				}
			}
		} else {
			env.PopN(argCount) // the receiver slot, if one was passed
		}

		return Call(env, this, newThis, length, toString)
	}
}
