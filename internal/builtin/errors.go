package builtin

import (
	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

// bootstrapErrors installs the TypeError and ReferenceError constructors
// spec.md §7 requires every runtime-raised exception to be constructed
// from: "Each is constructed by invoking the respective global
// constructor with a message string." original_source/src/js.c calls
// js_get_global("TypeError")/("ReferenceError") throughout but never shows
// where they're defined — evidently a JS-level prelude outside the
// retrieved C sources — so this restores them in the same wrapper-object
// idiom bootstrapNumber/bootstrapString already establish.
func bootstrapErrors(e *runtimeenv.Env) {
	e.SetGlobal("TypeError", e.NewFunctionValue(errorConstructor(e, "TypeError")))
	e.SetGlobal("ReferenceError", e.NewFunctionValue(errorConstructor(e, "ReferenceError")))
}

var (
	nameKey    = jstring.FromGoString("name")
	messageKey = jstring.FromGoString("message")
)

// errorConstructor builds a constructor for errorName: the receiver gets a
// "name" property fixed to errorName and a "message" property
// ToString-coerced from the first argument (defaulting to the empty
// string).
func errorConstructor(e *runtimeenv.Env, errorName string) runtime.NativeFunc {
	name := jstring.FromGoString(errorName)
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)

		message := runtime.NewStringFromGo("")
		if len(args) > 0 {
			message = e.ToString(args[0])
		}
		obj := this.Object()
		obj.Set(nameKey, runtime.NewString(name))
		obj.Set(messageKey, message)
		return this
	}
}
