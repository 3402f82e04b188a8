package runtime

import "github.com/cwbudde/jsrt/internal/jstring"

// fakeEnv is a minimal Env implementation for unit tests in this package —
// it never needs to construct real built-ins, only to record throws and
// serve a couple of global bindings.
type fakeEnv struct {
	global   *Object
	globals  map[string]Value
	thrown   []Value
	stack    []Value
	thrownCb func(Value)
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{global: NewObject(nil), globals: map[string]Value{}}
}

func (e *fakeEnv) Push(v Value)            { e.stack = append(e.stack, v) }
func (e *fakeEnv) PopN(n int)              { e.stack = e.stack[:len(e.stack)-n] }
func (e *fakeEnv) CheckOverflow(int)       {}
func (e *fakeEnv) Global() Value           { return NewObjectValue(e.global) }
func (e *fakeEnv) GetGlobal(name string) Value {
	if v, ok := e.globals[name]; ok {
		return v
	}
	return NewUndefined()
}
func (e *fakeEnv) SetGlobal(name string, v Value) { e.globals[name] = v }
func (e *fakeEnv) NewPlainObject() *Object         { return NewObject(nil) }
func (e *fakeEnv) SaveObject(*Object)               {}

func (e *fakeEnv) StackItem(argCount, i int) Value {
	base := len(e.stack) - argCount
	return e.stack[base+i]
}

func (e *fakeEnv) Throw(v Value) {
	e.thrown = append(e.thrown, v)
	panic(thrownSignal{v})
}

func (e *fakeEnv) ThrowNew(constructorName string, message jstring.String) {
	o := NewObject(nil)
	o.Set(jstring.FromGoString("name"), NewStringFromGo(constructorName))
	o.Set(jstring.FromGoString("message"), NewString(message))
	e.Throw(NewObjectValue(o))
}

type thrownSignal struct{ value Value }

// expectThrow runs fn and reports the thrown value, failing the test if fn
// did not throw.
func expectThrow(t interface {
	Helper()
	Fatalf(string, ...any)
}, fn func()) (result Value) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a throw, got none")
			return
		}
		sig, ok := r.(thrownSignal)
		if !ok {
			panic(r)
		}
		result = sig.value
	}()
	fn()
	return
}
