package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
)

func TestRuntimeErrorFormatWithAndWithoutColor(t *testing.T) {
	err := NewRuntimeError("TypeError", "x is not a function", NewStackTrace())

	plain := err.Format(false)
	if plain != "TypeError: x is not a function" {
		t.Errorf("Format(false) = %q", plain)
	}

	colored := err.Format(true)
	if !strings.Contains(colored, "\033[1;31m") || !strings.Contains(colored, "\033[0m") {
		t.Errorf("Format(true) should contain ANSI color codes, got %q", colored)
	}
	if !strings.Contains(colored, "TypeError: x is not a function") {
		t.Errorf("Format(true) should still contain the plain message, got %q", colored)
	}
}

func TestRuntimeErrorFormatDefaultsMissingNameToError(t *testing.T) {
	err := NewRuntimeError("", "boom", NewStackTrace())
	if got := err.Format(false); got != "Error: boom" {
		t.Errorf("Format(false) = %q, want %q", got, "Error: boom")
	}
}

func TestRuntimeErrorFormatIncludesTrace(t *testing.T) {
	trace := StackTrace{NewStackFrame("outer"), NewStackFrame("inner")}
	err := NewRuntimeError("Error", "boom", trace)

	got := err.Format(false)
	if !strings.Contains(got, "at inner") || !strings.Contains(got, "at outer") {
		t.Errorf("Format(false) = %q, want both frames", got)
	}
}

func TestFormatErrorsSingleAndMultiple(t *testing.T) {
	if got := FormatErrors(nil, false); got != "" {
		t.Errorf("FormatErrors(nil) = %q, want empty", got)
	}

	one := []*RuntimeError{NewRuntimeError("Error", "boom", NewStackTrace())}
	if got := FormatErrors(one, false); got != "Error: boom" {
		t.Errorf("FormatErrors(one) = %q", got)
	}

	two := []*RuntimeError{
		NewRuntimeError("TypeError", "a", NewStackTrace()),
		NewRuntimeError("ReferenceError", "b", NewStackTrace()),
	}
	got := FormatErrors(two, false)
	if !strings.Contains(got, "2 error(s)") || !strings.Contains(got, "TypeError: a") || !strings.Contains(got, "ReferenceError: b") {
		t.Errorf("FormatErrors(two) = %q", got)
	}
}

func TestFromThrownReadsNameAndMessageFromAnExceptionObject(t *testing.T) {
	exc := runtime.NewObject(nil)
	exc.Set(jstring.FromGoString("name"), runtime.NewStringFromGo("ReferenceError"))
	exc.Set(jstring.FromGoString("message"), runtime.NewStringFromGo("x is not defined"))

	err := FromThrown(runtime.NewObjectValue(exc), func(runtime.Value) string {
		t.Fatal("toStringGo should not be called when name/message are present")
		return ""
	})
	if err.Name != "ReferenceError" || err.Message != "x is not defined" {
		t.Errorf("FromThrown = %+v", err)
	}
}

func TestFromThrownFallsBackToToStringForAPrimitive(t *testing.T) {
	err := FromThrown(runtime.NewStringFromGo("boom"), func(v runtime.Value) string {
		return v.String().Go()
	})
	if err.Name != "Error" || err.Message != "boom" {
		t.Errorf("FromThrown = %+v", err)
	}
}

func TestFromThrownFallsBackForAPlainObjectWithNoNameOrMessage(t *testing.T) {
	plain := runtime.NewObject(nil)
	err := FromThrown(runtime.NewObjectValue(plain), func(runtime.Value) string {
		return "[object Object]"
	})
	if err.Name != "Error" || err.Message != "[object Object]" {
		t.Errorf("FromThrown = %+v", err)
	}
}
