package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cwbudde/jsrt/internal/binding"
	"github.com/cwbudde/jsrt/internal/builtin"
	"github.com/cwbudde/jsrt/internal/errors"
	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

// demo is one named end-to-end scenario (spec.md §8). Each reproduces, via
// direct calls against a bootstrapped environment, the kind of call
// sequence a JS-to-native compiler's generated code would emit — this
// runtime never parses source itself.
type demo struct {
	name string
	desc string
	run  func(e *runtimeenv.Env) error
}

var demos = []demo{
	{"prototype-chain", "F.prototype.x = 7; new F() inherits x", demoPrototypeChain},
	{"coercion", "1 + \"2\", \"1\" + 2, 1 + 2", demoCoercion},
	{"instanceof", "B.prototype = new A(); b instanceof A and B", demoInstanceof},
	{"reference-error", "reading an undeclared global throws, catchably", demoReferenceError},
	{"apply", "f.apply(null, [1,2,3])", demoApply},
	{"gc", "100,000 short-lived objects collected, one survivor kept", demoGC},
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for _, d := range demos {
		names = append(names, d.name)
	}
	sort.Strings(names)
	return names
}

// demoList renders each demo's name and one-line description, for the run
// command's usage text.
func demoList() string {
	var b strings.Builder
	for _, d := range demos {
		fmt.Fprintf(&b, "  %-18s %s\n", d.name, d.desc)
	}
	return b.String()
}

func consoleLog(e *runtimeenv.Env, v runtime.Value) {
	e.Push(v)
	e.CallMethod(e.GetGlobal("console"), runtime.NewStringFromGo("log"), 1)
}

// demoPrototypeChain is scenario 1: `function F(){} F.prototype.x = 7; var
// o = new F(); console.log(o.x);` → stdout "7".
func demoPrototypeChain(e *runtimeenv.Env) error {
	f := e.NewFunctionValue(func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		env.PopN(argCount)
		return runtime.NewUndefined()
	})
	proto := e.GetProperty(f, runtime.NewStringFromGo("prototype"))
	e.SetProperty(proto, runtime.NewStringFromGo("x"), runtime.NewNumber(7))

	o := e.InvokeConstructor(f, 0)
	consoleLog(e, e.GetProperty(o, runtime.NewStringFromGo("x")))
	return nil
}

// demoCoercion is scenario 2.
func demoCoercion(e *runtimeenv.Env) error {
	call := func(env runtime.Env, fn, this runtime.Value) runtime.Value { return e.Call(fn, this, 0) }
	consoleLog(e, runtime.Add(e, runtime.NewNumber(1), runtime.NewStringFromGo("2"), call))
	consoleLog(e, runtime.Add(e, runtime.NewStringFromGo("1"), runtime.NewNumber(2), call))
	consoleLog(e, runtime.Add(e, runtime.NewNumber(1), runtime.NewNumber(2), call))
	return nil
}

// demoInstanceof is scenario 3.
func demoInstanceof(e *runtimeenv.Env) error {
	noop := func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		env.PopN(argCount)
		return runtime.NewUndefined()
	}
	a := e.NewFunctionValue(noop)
	b := e.NewFunctionValue(noop)

	bProto := e.InvokeConstructor(a, 0)
	e.SetProperty(b, runtime.NewStringFromGo("prototype"), bProto)

	instance := e.InvokeConstructor(b, 0)
	consoleLog(e, runtime.InstanceOf(e, instance, a))
	consoleLog(e, runtime.InstanceOf(e, instance, b))
	return nil
}

// demoReferenceError is scenario 4: reading an undeclared global throws a
// catchable ReferenceError-shaped object.
func demoReferenceError(e *runtimeenv.Env) error {
	_, caught, thrown := e.Try(func() runtime.Value {
		return binding.Read(e, nil, jstring.FromGoString("x"))
	})
	if !caught {
		return fmt.Errorf("expected a ReferenceError, got none")
	}
	consoleLog(e, runtime.TypeOf(thrown))
	message := e.GetProperty(thrown, runtime.NewStringFromGo("message"))
	if message.Tag() == runtime.TagUndefined {
		consoleLog(e, thrown)
	} else {
		consoleLog(e, message)
	}
	return nil
}

// demoApply is scenario 5: `function f(a,b,c){ return a+b+c; }
// f.apply(null, [1,2,3])` → 6.
func demoApply(e *runtimeenv.Env) error {
	f := e.NewFunctionValue(func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := e.Args(argCount)
		env.PopN(argCount)
		call := func(env runtime.Env, fn, this runtime.Value) runtime.Value { return e.Call(fn, this, 0) }
		sum := runtime.Add(e, args[0], args[1], call)
		sum = runtime.Add(e, sum, args[2], call)
		return sum
	})

	argsArray := e.InvokeConstructor(e.GetGlobal("Array"), 0)
	e.SetProperty(argsArray, runtime.NewStringFromGo("0"), runtime.NewNumber(1))
	e.SetProperty(argsArray, runtime.NewStringFromGo("1"), runtime.NewNumber(2))
	e.SetProperty(argsArray, runtime.NewStringFromGo("2"), runtime.NewNumber(3))

	e.Push(runtime.NewNull())
	e.Push(argsArray)
	result := e.CallMethod(f, runtime.NewStringFromGo("apply"), 2)
	consoleLog(e, result)
	return nil
}

// demoGC is scenario 6: allocate a large number of short-lived objects
// while holding one fixed object; after a collection, the fixed object is
// still readable and the registry has shrunk back down.
func demoGC(e *runtimeenv.Env) error {
	fixed := e.NewPlainObject()
	fixed.Set(runtime.NewStringFromGo("tag").String(), runtime.NewStringFromGo("keepme"))
	e.Push(runtime.NewObjectValue(fixed))

	for i := 0; i < 100000; i++ {
		e.NewPlainObject()
	}

	before := e.GCStats().Live
	e.CollectNow()
	after := e.GCStats()

	tag := fixed.Get(runtime.NewStringFromGo("tag").String())
	if tag.Tag() != runtime.TagString {
		return fmt.Errorf("fixed object did not survive collection")
	}
	fmt.Printf("live before sweep: %d, live after sweep: %d, freed: %d\n", before, after.Live, after.LastFreed)
	return nil
}

// runDemo bootstraps a fresh environment, runs the named demo, and reports
// failure the same way an uncaught compiled-code exception would: a Go
// error from the demo itself is turned into a thrown String so it flows
// through the same Try/catch machinery, then rendered via
// internal/errors.FromThrown the way cmd/dwscript's compile/run commands
// render a CompilerError to stderr.
func runDemo(name string, argv []string) error {
	d, ok := findDemo(name)
	if !ok {
		return fmt.Errorf("unknown demo %q (available: %v)", name, demoNames())
	}

	e := runtimeenv.New(
		runtimeenv.WithCallStackSize(callStackSize),
		runtimeenv.WithGCThreshold(gcThreshold),
		runtimeenv.WithGCStackDepth(gcStackDepth),
	)
	builtin.Bootstrap(e)
	builtin.BootstrapArgv(e, argv)

	_, caught, thrown := e.Try(func() runtime.Value {
		if err := d.run(e); err != nil {
			e.Throw(runtime.NewStringFromGo(err.Error()))
		}
		return runtime.NewUndefined()
	})
	if caught {
		toStringGo := func(v runtime.Value) string { return e.ToString(v).String().Go() }
		fmt.Fprint(os.Stderr, errors.FromThrown(thrown, toStringGo).Format(true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("uncaught exception in demo %q", name)
	}
	return nil
}
