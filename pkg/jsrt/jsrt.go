// Package jsrt is the embedder-facing surface over the runtime's internal
// packages, mirroring the teacher's pkg/dwscript embedding package: a
// functional-options constructor, a Runtime handle, and a small set of
// methods that never require the caller to reach into internal/.
package jsrt

import (
	"github.com/cwbudde/jsrt/internal/builtin"
	"github.com/cwbudde/jsrt/internal/errors"
	"github.com/cwbudde/jsrt/internal/gc"
	"github.com/cwbudde/jsrt/internal/inspect"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

// Runtime wraps one bootstrapped environment: a global object, a call
// stack, an exception frame stack, and a GC registry, all already wired
// with Object/Function/Array/Number/String/console/host bindings.
type Runtime struct {
	env *runtimeenv.Env
}

// build accumulates the two kinds of configuration an Option may contribute:
// sizing options that must reach runtimeenv.New before the environment
// exists, and post-bootstrap hooks (like WithArgv) that need a finished
// Runtime to act on.
type build struct {
	envOpts []runtimeenv.Option
	post    []func(*Runtime)
}

// Option configures a Runtime at construction time.
type Option func(*build)

// WithArgv populates the supplemented `argv` global from argv, mirroring
// the original runtime's js_create_argv being invoked separately from
// js_create_native_objects in main().
func WithArgv(argv []string) Option {
	return func(b *build) {
		b.post = append(b.post, func(r *Runtime) { builtin.BootstrapArgv(r.env, argv) })
	}
}

// WithCallStackSize overrides the call stack's capacity (spec.md §4.D).
func WithCallStackSize(n int) Option {
	return func(b *build) { b.envOpts = append(b.envOpts, runtimeenv.WithCallStackSize(n)) }
}

// WithExceptionStackDepth overrides the exception stack's capacity
// (spec.md §4.F).
func WithExceptionStackDepth(n int) Option {
	return func(b *build) { b.envOpts = append(b.envOpts, runtimeenv.WithExceptionStackDepth(n)) }
}

// WithGCThreshold overrides the collector's ShouldRun hysteresis floor
// (spec.md §4.H).
func WithGCThreshold(n int) Option {
	return func(b *build) { b.envOpts = append(b.envOpts, runtimeenv.WithGCThreshold(n)) }
}

// WithGCStackDepth overrides the collector's explicit mark-stack capacity
// (spec.md §4.H's JS_GC_STACK_DEPTH).
func WithGCStackDepth(n int) Option {
	return func(b *build) { b.envOpts = append(b.envOpts, runtimeenv.WithGCStackDepth(n)) }
}

// New returns a fully bootstrapped Runtime. Every built-in named in
// spec.md §6 is installed on the global object before New returns.
func New(opts ...Option) *Runtime {
	b := &build{}
	for _, opt := range opts {
		opt(b)
	}

	r := &Runtime{env: runtimeenv.New(b.envOpts...)}
	builtin.Bootstrap(r.env)
	for _, post := range b.post {
		post(r)
	}
	return r
}

// Global returns the global object as a Value.
func (r *Runtime) Global() runtime.Value {
	return r.env.Global()
}

// GetGlobal reads a named property directly off the global object, a
// convenience for embedders that don't want to build a String Value by
// hand just to look up "console" or "Array".
func (r *Runtime) GetGlobal(name string) runtime.Value {
	return r.env.GetGlobal(name)
}

// Invoke calls fn with the given receiver and arguments and returns its
// result. If the call throws, Invoke recovers the thrown value and
// reports it as an error via ThrownError rather than letting the panic
// escape to the embedder.
func (r *Runtime) Invoke(fn, this runtime.Value, args ...runtime.Value) (result runtime.Value, err error) {
	result, caught, thrown := r.env.Try(func() runtime.Value {
		for _, a := range args {
			r.env.Push(a)
		}
		return r.env.Call(fn, this, len(args))
	})
	if caught {
		return runtime.NewUndefined(), &ThrownError{Value: thrown, rt: r}
	}
	return result, nil
}

// InvokeConstructor runs ctor as a `new` expression: a fresh instance is
// allocated with ctor's "prototype" as its own prototype, ctor runs against
// it, and the constructor's return value is substituted if it returned an
// object (spec.md §4.E).
func (r *Runtime) InvokeConstructor(ctor runtime.Value, args ...runtime.Value) (result runtime.Value, err error) {
	result, caught, thrown := r.env.Try(func() runtime.Value {
		for _, a := range args {
			r.env.Push(a)
		}
		return r.env.InvokeConstructor(ctor, len(args))
	})
	if caught {
		return runtime.NewUndefined(), &ThrownError{Value: thrown, rt: r}
	}
	return result, nil
}

// GetProperty reads obj[key], coercing obj to an object wrapper and key to
// a string per spec.md §4.B/§6.
func (r *Runtime) GetProperty(obj, key runtime.Value) runtime.Value {
	return r.env.GetProperty(obj, key)
}

// SetProperty writes obj[key] = value, with the same coercions as
// GetProperty.
func (r *Runtime) SetProperty(obj, key, value runtime.Value) {
	r.env.SetProperty(obj, key, value)
}

// NewFunctionValue wraps fn as a Function object with its own fresh
// instance prototype, the allocation pattern
// js_construct_function_object_value uses for every native built-in.
func (r *Runtime) NewFunctionValue(fn runtime.NativeFunc) runtime.Value {
	return r.env.NewFunctionValue(fn)
}

// NewString builds a String value from a Go string.
func (r *Runtime) NewString(s string) runtime.Value {
	return runtime.NewStringFromGo(s)
}

// GCRun forces an immediate mark-sweep pass, rooted from the live call
// stack, the global object, and any extraRoots the embedder supplies (for
// values it is holding onto outside the call stack, e.g. a saved closure).
func (r *Runtime) GCRun(extraRoots ...*runtime.Object) {
	r.env.CollectWithRoots(extraRoots...)
}

// GCStats reports the registry's live object count and last-sweep
// instrumentation.
func (r *Runtime) GCStats() gc.Stats {
	return r.env.GCStats()
}

// Dump renders the live object graph to JSON (internal/inspect.DumpJSON).
func (r *Runtime) Dump() (string, error) {
	return inspect.DumpJSON(r.env)
}

// ThrownError wraps a value thrown from compiled or native code that
// escaped to the embedder uncaught. Error() renders it through
// internal/errors.FromThrown as "Name: Message" ("Error: <ToString>" for a
// thrown value without name/message properties).
type ThrownError struct {
	Value runtime.Value
	rt    *Runtime
}

func (e *ThrownError) Error() string {
	toStringGo := func(v runtime.Value) string { return e.rt.env.ToString(v).String().Go() }
	return errors.FromThrown(e.Value, toStringGo).Error()
}
