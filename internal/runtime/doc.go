// Package runtime provides the tagged value model and the prototype-based
// object store that every other part of the runtime is built on: Value
// (component C, the value algebra) and Object (component B, the object
// store) live in one package because they are mutually recursive in the
// same way JSValue and JSObject are in the C runtime this package is
// modelled on — an Object's property table holds Values, and the Object
// tag of a Value holds a *Object.
//
// Env is the narrow interface native functions and the conversion/operator
// helpers need from the surrounding runtime environment (global lookups,
// the call stack, throwing). It exists so this package never has to import
// the concrete environment type, which in turn owns a *Object for its
// global object — importing it back would be a cycle.
package runtime
