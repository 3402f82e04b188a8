// Package host installs the runtime's I/O surface: console.{log, error},
// readFileSync/writeFileSync, and system (original_source/src/js.c's
// js_create_native_objects tail section). These are the only built-ins
// that touch the outside world; everything else in internal/builtin is
// pure value/object manipulation.
package host

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

var (
	logKey   = jstring.FromGoString("log")
	errorKey = jstring.FromGoString("error")
)

// Bootstrap installs console, readFileSync, writeFileSync, and system onto
// e's global object. Must run after internal/builtin's Object/Function/
// String bootstrapping, since console is a constructed plain object and
// every installed function is a genuine Function instance.
func Bootstrap(e *runtimeenv.Env) {
	console := e.NewPlainObject()
	console.Set(logKey, e.NewFunctionValue(consoleLog(e)))
	console.Set(errorKey, e.NewFunctionValue(consoleError(e)))
	e.SetGlobal("console", runtime.NewObjectValue(console))

	e.SetGlobal("readFileSync", e.NewFunctionValue(readFileSync(e)))
	e.SetGlobal("writeFileSync", e.NewFunctionValue(writeFileSync(e)))
	e.SetGlobal("system", e.NewFunctionValue(system(e)))
}

// consoleLog implements js_console_log: prints the ToString of the first
// argument to stdout, followed by a newline.
func consoleLog(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)
		fmt.Fprintln(os.Stdout, e.ToString(firstArg(args)).String().Go())
		return runtime.NewUndefined()
	}
}

// consoleError implements js_console_error: same as consoleLog, but to
// stderr.
func consoleError(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)
		fmt.Fprintln(os.Stderr, e.ToString(firstArg(args)).String().Go())
		return runtime.NewUndefined()
	}
}

// readFileSync implements js_read_file: reads the named file whole and
// returns its contents as a String. A missing or unreadable file throws a
// catchable exception rather than aborting the process, since this is a
// call-time failure, not a bootstrap-time one.
func readFileSync(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)
		name := e.ToString(firstArg(args)).String().Go()

		contents, err := os.ReadFile(name)
		if err != nil {
			e.Throw(runtime.NewStringFromGo("Cannot open file"))
			return runtime.NewUndefined() // unreachable
		}
		return runtime.NewStringFromGo(string(contents))
	}
}

// writeFileSync implements js_write_file: writes the second argument's
// ToString rendering to the named file, truncating any existing contents.
func writeFileSync(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)
		name := e.ToString(firstArg(args)).String().Go()
		contents := e.ToString(nthArg(args, 1)).String().Go()

		if err := os.WriteFile(name, []byte(contents), 0o644); err != nil {
			e.Throw(runtime.NewStringFromGo("Cannot open file"))
			return runtime.NewUndefined() // unreachable
		}
		return runtime.NewUndefined()
	}
}

// system implements js_system: runs the given command through the
// platform shell and returns its exit code as a Number.
func system(e *runtimeenv.Env) runtime.NativeFunc {
	return func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		e.PopN(argCount)
		command := e.ToString(firstArg(args)).String().Go()

		cmd := exec.Command("sh", "-c", command)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		err := cmd.Run()

		code := 0
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		} else if err != nil {
			code = -1
		}
		return runtime.NewNumber(int32(code))
	}
}

func firstArg(args []runtime.Value) runtime.Value {
	return nthArg(args, 0)
}

func nthArg(args []runtime.Value, i int) runtime.Value {
	if i < len(args) {
		return args[i]
	}
	return runtime.NewUndefined()
}
