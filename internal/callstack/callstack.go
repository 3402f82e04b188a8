// Package callstack implements the fixed-size argument stack compiled code
// uses to marshal variadic argument lists into runtime calls (component D).
// It is the Go re-expression of JS_CALL_STACK_* in the original runtime:
// the stack is a statically sized array, pushes happen before a call, and
// the callee consumes exactly the argument count it was told about.
package callstack

import (
	"fmt"

	"github.com/cwbudde/jsrt/internal/runtime"
)

// DefaultSize matches JS_CALL_STACK_SIZE in the original runtime.
const DefaultSize = 8192

// Stack is the fixed-capacity value array. CheckOverflow panics with an
// *OverflowError when the requested pushes would not fit — a fatal
// condition per spec.md §7 category 3, since raising it as a JavaScript
// exception would itself need call-stack space. Push does no check of its
// own; a Push past capacity panics with Go's index-out-of-range error.
type Stack struct {
	values []runtime.Value
	count  int
}

// New allocates a stack with the given capacity.
func New(size int) *Stack {
	return &Stack{values: make([]runtime.Value, size)}
}

// OverflowError is a fatal, non-catchable condition.
type OverflowError struct {
	Requested int
	Capacity  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("call stack overflow: %d exceeds capacity %d", e.Requested, e.Capacity)
}

// CheckOverflow panics with *OverflowError if n more pushes would not fit.
func (s *Stack) CheckOverflow(n int) {
	if s.count+n > len(s.values) {
		panic(&OverflowError{Requested: s.count + n, Capacity: len(s.values)})
	}
}

// Push appends a value to the tail of the stack.
func (s *Stack) Push(v runtime.Value) {
	s.values[s.count] = v
	s.count++
}

// PopN discards the last n values.
func (s *Stack) PopN(n int) {
	s.count -= n
}

// PopAndReturn discards the top slot and returns v — the idiom native
// functions use to consume their receiver-carrying argument and still
// produce a result in one expression.
func (s *Stack) PopAndReturn(v runtime.Value) runtime.Value {
	s.count--
	return v
}

// Item returns the i-th argument (0-based) of a call that was entered with
// argCount arguments, read from the tail of the stack — the Go equivalent
// of JS_CALL_STACK_ITEM(i).
func (s *Stack) Item(argCount, i int) runtime.Value {
	return s.values[s.count-argCount+i]
}

// Count returns the number of values currently on the stack.
func (s *Stack) Count() int {
	return s.count
}

// Live returns the live prefix of the stack — the slice of values the
// garbage collector roots from, per spec.md §4.H.
func (s *Stack) Live() []runtime.Value {
	return s.values[:s.count]
}
