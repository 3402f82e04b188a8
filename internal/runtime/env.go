package runtime

import "github.com/cwbudde/jsrt/internal/jstring"

// Env is the slice of the runtime environment that value conversions,
// operators, and native functions need. It is declared here — rather than
// importing the concrete environment type — because the concrete type owns
// a *Object (the global object) and would otherwise import this package
// right back: the same mutual-recursion the original C runtime expresses
// with raw JSEnv*/JSObject* pointers, resolved here with an interface
// instead (see internal/runtime/doc.go).
type Env interface {
	// Push appends a value to the tail of the call stack.
	Push(Value)

	// PopN discards the last n values from the call stack.
	PopN(n int)

	// StackItem returns the i-th argument (0-based) of a call that was
	// entered with argCount arguments, reading from the tail of the call
	// stack — the Go equivalent of the JS_CALL_STACK_ITEM(i) macro.
	StackItem(argCount, i int) Value

	// CheckOverflow raises a fatal error if n more pushes would overflow
	// the call stack.
	CheckOverflow(n int)

	// Global returns the global object value.
	Global() Value

	// GetGlobal resolves an own property of the global object by name —
	// the lookup path every built-in constructor reference goes through
	// (js_get_global in the original runtime).
	GetGlobal(name string) Value

	// SetGlobal sets an own property on the global object.
	SetGlobal(name string, v Value)

	// NewPlainObject allocates and registers a new plain object whose
	// prototype is Object.prototype, mirroring js_construct_object.
	NewPlainObject() *Object

	// SaveObject registers o with the GC registry. Every object must be
	// registered before any further allocation that could trigger a GC
	// pass (spec.md §4.H).
	SaveObject(o *Object)

	// Throw raises v as a JavaScript exception via the non-local unwind
	// discipline (component F). It never returns.
	Throw(v Value)

	// ThrowNew constructs an instance of the named global constructor
	// (e.g. "TypeError", "ReferenceError") with a single string-message
	// argument and throws it. It never returns.
	ThrowNew(constructorName string, message jstring.String)
}
