// Package gc implements the mark-sweep collector (component H). The object
// registry doubles as the GC arena (spec.md §9's "pointer graph → arena +
// indices" redesign): objects are never individually freed by Go, they are
// simply dropped from the registry slice once unreachable and left for the
// Go garbage collector to reclaim. Marking uses an explicit bounded stack
// rather than recursion, matching js_gc_run/gc_stack_push/gc_stack_pop in
// the original runtime exactly, including its fatal stack-overflow exit.
package gc

import "github.com/cwbudde/jsrt/internal/runtime"

// Threshold and StackDepth match JS_GC_THRESHOLD and JS_GC_STACK_DEPTH: the
// defaults every Registry uses unless overridden by an Option.
const (
	Threshold  = 65536
	StackDepth = 4096
)

// Registry owns every live Object and runs mark-sweep collection over them.
type Registry struct {
	objects        []*runtime.Object
	lastSweepCount int
	sweeps         int
	lastFreed      int

	threshold  int
	stackDepth int
}

// Option configures a Registry at construction time — the knobs spec.md
// §9's "global mutable state → explicit context" redesign calls for
// threading explicitly rather than reading process-wide constants, so an
// embedder can size the collector per environment (cmd/jsrt exposes these as
// flags; pkg/jsrt as functional options).
type Option func(*Registry)

// WithThreshold overrides the ShouldRun hysteresis floor (default Threshold).
func WithThreshold(n int) Option {
	return func(r *Registry) { r.threshold = n }
}

// WithStackDepth overrides the explicit mark-stack capacity (default
// StackDepth).
func WithStackDepth(n int) Option {
	return func(r *Registry) { r.stackDepth = n }
}

// New returns an empty registry, sized by opts or the package defaults.
func New(opts ...Option) *Registry {
	r := &Registry{threshold: Threshold, stackDepth: StackDepth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save registers o with the registry, making it a candidate for sweeping
// once unreachable (registration does not make it a root). Every object
// must be registered
// immediately after allocation and before any further allocation that
// could trigger a collection (spec.md §4.H).
func (r *Registry) Save(o *runtime.Object) {
	r.objects = append(r.objects, o)
}

// Count reports how many objects the registry currently holds.
func (r *Registry) Count() int { return len(r.objects) }

// Objects returns the registry's live objects in registration order. The
// returned slice is owned by the registry and must not be retained across a
// Run call, which reslices it in place during sweep.
func (r *Registry) Objects() []*runtime.Object { return r.objects }

// ShouldRun reports whether a collection is due, using the original
// runtime's hysteresis heuristic: only run once the registry has grown past
// a fixed floor and has at least doubled since the last sweep.
func (r *Registry) ShouldRun() bool {
	threshold := r.threshold
	if threshold == 0 {
		threshold = Threshold
	}
	return len(r.objects) > threshold && len(r.objects) > 2*r.lastSweepCount
}

// StackOverflowError is fatal: the mark phase ran out of explicit stack
// space, matching the original runtime's unconditional exit(0) in
// gc_stack_push.
type StackOverflowError struct{}

func (e *StackOverflowError) Error() string { return "GC failed: stack overflow" }

// markStack is the bounded explicit stack gc_run uses instead of recursion.
type markStack struct {
	items []*runtime.Object
	depth int
}

func newMarkStack(depth int) *markStack {
	if depth == 0 {
		depth = StackDepth
	}
	return &markStack{items: make([]*runtime.Object, 0, depth), depth: depth}
}

func (s *markStack) push(o *runtime.Object) {
	if o == nil || o.GCMark {
		return
	}
	if len(s.items) >= s.depth {
		panic(&StackOverflowError{})
	}
	o.GCMark = true
	s.items = append(s.items, o)
}

func (s *markStack) pop() *runtime.Object {
	last := len(s.items) - 1
	o := s.items[last]
	s.items = s.items[:last]
	return o
}

// Run performs one mark-sweep pass. extraRoots are additional roots beyond
// the call stack's live objects and the registry's contents reachable from
// the call stack — compiled code passes the current scope chain and any
// in-flight exception value here, mirroring the varargs root list
// js_gc_run accepts. liveCallStack is the slice of values currently on the
// call stack (spec.md §4.D's Live()).
func (r *Registry) Run(liveCallStack []runtime.Value, extraRoots ...*runtime.Object) {
	for _, o := range r.objects {
		o.GCMark = false
	}

	stack := newMarkStack(r.stackDepth)
	for _, root := range extraRoots {
		stack.push(root)
	}
	for _, v := range liveCallStack {
		if v.Tag() == runtime.TagObject {
			stack.push(v.Object())
		}
	}

	for len(stack.items) > 0 {
		o := stack.pop()
		for _, p := range o.Properties {
			if p.Value.Tag() == runtime.TagObject {
				stack.push(p.Value.Object())
			}
		}
		stack.push(o.Prototype)
		if o.Class == runtime.ClassFunction {
			stack.push(o.Binding)
		}
	}

	freed := 0
	kept := r.objects[:0]
	for _, o := range r.objects {
		if o.GCMark {
			kept = append(kept, o)
		} else {
			freed++
		}
	}
	r.objects = kept
	r.lastSweepCount = len(r.objects)
	r.lastFreed = freed
	r.sweeps++
}

// Stats reports instrumentation restored from the original runtime's
// JS_GC_VERBOSE build: live object count, objects freed in the most recent
// sweep, and how many sweeps have run in total.
type Stats struct {
	Live       int
	LastFreed  int
	SweepCount int
}

func (r *Registry) Stats() Stats {
	return Stats{Live: len(r.objects), LastFreed: r.lastFreed, SweepCount: r.sweeps}
}
