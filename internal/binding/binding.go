// Package binding implements variable resolution (component G): compiled
// code reads and writes local/outer variables through a chain of binding
// objects rather than a name-to-slot table. Each function activation gets a
// plain Object whose Prototype field is reused as the static (lexical)
// parent link — exactly the trick spec.md §4.B/§4.G describe for avoiding a
// second chain field, and the same one the teacher's own scope objects use
// for its own static/dynamic resolution.
package binding

import (
	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
)

// NewScope allocates a fresh binding object whose static parent is parent
// (nil for the outermost function scope, whose fallback is the global
// object).
func NewScope(parent *runtime.Object) *runtime.Object {
	return runtime.NewObject(parent)
}

// Declare introduces name in scope itself, regardless of whether an outer
// scope already binds it — the Go equivalent of a local var declaration
// shadowing an outer one.
func Declare(scope *runtime.Object, name jstring.String, value runtime.Value) {
	scope.Add(name, value)
}

// Read resolves name by walking scope's static chain first (own properties
// at each level, innermost first), then falling back to the global object.
// An unresolved name throws a ReferenceError — compiled code never
// silently reads Undefined for a missing binding, unlike a property lookup
// on an ordinary object.
func Read(env runtime.Env, scope *runtime.Object, name jstring.String) runtime.Value {
	for cur := scope; cur != nil; cur = cur.Prototype {
		if p := cur.FindOwn(name); p != nil {
			return p.Value
		}
	}
	if g := env.Global().Object(); g != nil {
		if p := g.FindOwn(name); p != nil {
			return p.Value
		}
	}
	env.ThrowNew("ReferenceError", jstring.Concat(name, jstring.FromGoString(" is not defined.")))
	return runtime.NewUndefined() // unreachable
}

// Assign writes name to the nearest scope in the static chain (including
// the global object) that already binds it. If no scope binds it, Assign
// creates the binding on the global object — matching the original
// runtime's permissive assignment-to-undeclared-global behaviour, which
// spec.md documents as retained rather than upgraded to a strict-mode
// ReferenceError.
func Assign(env runtime.Env, scope *runtime.Object, name jstring.String, value runtime.Value) {
	for cur := scope; cur != nil; cur = cur.Prototype {
		if p := cur.FindOwn(name); p != nil {
			p.Value = value
			return
		}
	}
	if g := env.Global().Object(); g != nil {
		g.Set(name, value)
	}
}

// Has reports whether name resolves anywhere in scope's static chain or on
// the global object, without throwing — used by compiled code implementing
// a "typeof x" on a possibly-undeclared x, which must not throw.
func Has(env runtime.Env, scope *runtime.Object, name jstring.String) bool {
	for cur := scope; cur != nil; cur = cur.Prototype {
		if cur.HasOwn(name) {
			return true
		}
	}
	if g := env.Global().Object(); g != nil {
		return g.HasOwn(name)
	}
	return false
}
