// Package builtin wires the initial global object: Object, Function,
// Array, Number, String, TypeError, ReferenceError, console, and the host
// bindings, in the exact dependency order spec.md §4.I mandates and
// js_create_native_objects follows in original_source/src/js.c (with
// TypeError/ReferenceError restored ahead of any code path that can throw,
// see errors.go). Every object allocated here is
// registered with the GC (via runtimeenv.Env's NewPlainObject/
// NewFunctionValue/SaveObject, which always register) before any further
// allocation that could trigger a collection, and Bootstrap never calls
// CollectIfDue/CollectNow itself, satisfying spec.md §4.H's bootstrap
// invariant.
package builtin

import (
	"github.com/cwbudde/jsrt/internal/host"
	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

var (
	prototypeKey   = jstring.FromGoString("prototype")
	constructorKey = jstring.FromGoString("constructor")
)

// Bootstrap installs every built-in named in spec.md §4.I / §6 onto e's
// global object. It must run, in this order, before any compiled-code call
// against e.
func Bootstrap(e *runtimeenv.Env) {
	e.SetGlobal("global", e.Global())

	bootstrapObjectAndFunction(e)
	bootstrapArray(e)
	bootstrapNumber(e)
	bootstrapString(e)
	bootstrapErrors(e)
	host.Bootstrap(e)
}

// BootstrapArgv restores the supplemented `argv` global
// (original_source/src/js.c's js_create_argv): a new Array holding one
// string per process argument, built by pushing each onto the call stack
// and invoking the already-bootstrapped Array constructor — exactly the
// mechanism compiled code itself would use, not a shortcut that bypasses
// dispatch. It must run after Bootstrap.
func BootstrapArgv(e *runtimeenv.Env, argv []string) {
	for _, a := range argv {
		e.Push(runtime.NewStringFromGo(a))
	}
	e.SetGlobal("argv", e.InvokeConstructor(e.GetGlobal("Array"), len(argv)))
}
