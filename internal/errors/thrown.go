package errors

import (
	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
)

var (
	nameKey    = jstring.FromGoString("name")
	messageKey = jstring.FromGoString("message")
)

// FromThrown builds a RuntimeError from a value that escaped a try block
// uncaught. Every exception internal/builtin raises (TypeError,
// ReferenceError, ...) is an object carrying own "name"/"message" string
// properties, the shape this reads first; a thrown primitive falls back to
// "Error" with its ToString rendering as the message. toStringGo renders
// any Value as a Go string — callers pass their environment's ToString.
//
// The exception stack (internal/unwind) carries no function-name
// information to attach to frames, so the returned RuntimeError's Trace is
// always empty; Format still renders correctly with zero frames.
func FromThrown(v runtime.Value, toStringGo func(runtime.Value) string) *RuntimeError {
	if v.Tag() == runtime.TagObject && !v.IsNull() {
		name := v.Object().GetOwn(nameKey)
		message := v.Object().GetOwn(messageKey)
		if name.Tag() == runtime.TagString || message.Tag() == runtime.TagString {
			nameStr := "Error"
			if name.Tag() == runtime.TagString {
				nameStr = name.String().Go()
			}
			messageStr := ""
			if message.Tag() == runtime.TagString {
				messageStr = message.String().Go()
			}
			return NewRuntimeError(nameStr, messageStr, NewStackTrace())
		}
	}
	return NewRuntimeError("Error", toStringGo(v), NewStackTrace())
}
