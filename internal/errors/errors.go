// Package errors formats uncaught exceptions for display to a human — the
// top-level counterpart to the TypeError/ReferenceError objects component F
// throws internally. It keeps the
// teacher's bold/ANSI-toggle formatting idiom, adapted from source-position
// diagnostics (this runtime has no lexer/parser stage to attach a position
// to) to a JavaScript exception's name, message, and call trace.
package errors

import (
	"fmt"
	"strings"
)

// RuntimeError wraps an uncaught JavaScript exception for display.
type RuntimeError struct {
	Name    string
	Message string
	Trace   StackTrace
}

// NewRuntimeError constructs a RuntimeError from an exception's name and
// message properties (both already ToString-coerced) and the call trace
// active when it escaped.
func NewRuntimeError(name, message string, trace StackTrace) *RuntimeError {
	return &RuntimeError{Name: name, Message: message, Trace: trace}
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return e.Format(false)
}

// Format renders the exception as "Name: Message" followed by its call
// trace, one frame per line. If color is true, ANSI codes highlight the
// header the way the teacher's compiler diagnostics do.
func (e *RuntimeError) Format(color bool) string {
	var sb strings.Builder

	name := e.Name
	if name == "" {
		name = "Error"
	}

	if color {
		sb.WriteString("\033[1;31m") // Red bold
	}
	sb.WriteString(fmt.Sprintf("%s: %s", name, e.Message))
	if color {
		sb.WriteString("\033[0m") // Reset
	}

	if len(e.Trace) > 0 {
		sb.WriteString("\n")
		sb.WriteString(e.Trace.String())
	}

	return sb.String()
}

// FormatErrors formats multiple runtime errors — used when a batch of
// demo scenarios or test fixtures is run and several fail independently.
func FormatErrors(errs []*RuntimeError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
