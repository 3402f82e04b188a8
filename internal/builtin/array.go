package builtin

import (
	"strconv"

	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

var lengthKey = jstring.FromGoString("length")

// bootstrapArray installs the Array constructor (spec.md §6: "variadic:
// receiver's numeric properties set to positional args, length property
// set, class becomes Array").
func bootstrapArray(e *runtimeenv.Env) {
	e.SetGlobal("Array", e.NewFunctionValue(arrayConstructor(e)))
}

// arrayConstructor implements js_array_constructor: every positional
// argument becomes an own numeric property (keyed by its ToString-rendered
// index, matching js_to_string(js_new_number(i))), "length" is set to the
// argument count, and the receiver's class becomes Array.
func arrayConstructor(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)

		obj := this.Object()
		for i, v := range args {
			obj.Set(jstring.FromGoString(strconv.Itoa(i)), v)
		}
		obj.Set(lengthKey, runtime.NewNumber(int32(len(args))))
		obj.Class = runtime.ClassArray
		return this
	}
}
