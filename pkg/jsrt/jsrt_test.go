package jsrt

import (
	"testing"

	"github.com/cwbudde/jsrt/internal/runtime"
)

func TestInvokeCallsAFunctionValue(t *testing.T) {
	rt := New()
	fn := rt.NewFunctionValue(func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		a := env.StackItem(argCount, 0)
		b := env.StackItem(argCount, 1)
		env.PopN(argCount)
		return runtime.NewNumber(a.Number() + b.Number())
	})

	result, err := rt.Invoke(fn, runtime.NewUndefined(), runtime.NewNumber(2), runtime.NewNumber(3))
	if err != nil {
		t.Fatalf("Invoke returned an error: %v", err)
	}
	if result.Number() != 5 {
		t.Errorf("Invoke result = %d, want 5", result.Number())
	}
}

func TestInvokeUncaughtThrowReturnsThrownError(t *testing.T) {
	rt := New()
	fn := rt.NewFunctionValue(func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		env.PopN(argCount)
		env.Throw(runtime.NewStringFromGo("boom"))
		return runtime.NewUndefined()
	})

	_, err := rt.Invoke(fn, runtime.NewUndefined())
	if err == nil {
		t.Fatal("expected an error from an uncaught throw")
	}
	thrownErr, ok := err.(*ThrownError)
	if !ok {
		t.Fatalf("error type = %T, want *ThrownError", err)
	}
	if thrownErr.Error() != "Error: boom" {
		t.Errorf("ThrownError.Error() = %q, want %q", thrownErr.Error(), "Error: boom")
	}
}

func TestInvokeConstructorAllocatesWithPrototype(t *testing.T) {
	rt := New()
	ctor := rt.NewFunctionValue(func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		args := make([]runtime.Value, argCount)
		for i := range args {
			args[i] = env.StackItem(argCount, i)
		}
		env.PopN(argCount)
		rt.SetProperty(this, rt.NewString("x"), args[0])
		return runtime.NewUndefined()
	})

	instance, err := rt.InvokeConstructor(ctor, runtime.NewNumber(9))
	if err != nil {
		t.Fatalf("InvokeConstructor: %v", err)
	}
	if got := rt.GetProperty(instance, rt.NewString("x")); got.Number() != 9 {
		t.Errorf("instance.x = %d, want 9", got.Number())
	}

	objectCtor := rt.GetGlobal("Object")
	if !runtime.InstanceOf(rt.env, instance, objectCtor).Bool() {
		t.Error("a `new`-constructed instance should be instanceof Object")
	}
}

func TestGCRunReclaimsUnreachableObjects(t *testing.T) {
	rt := New()
	before := rt.GCStats().Live

	fn := rt.NewFunctionValue(func(env runtime.Env, this runtime.Value, argCount int, binding *runtime.Object) runtime.Value {
		env.PopN(argCount)
		return runtime.NewUndefined()
	})
	_, _ = rt.InvokeConstructor(fn) // allocates one unreachable instance

	rt.GCRun()
	after := rt.GCStats().Live
	if after > before+1 { // +1 allows for fn itself staying reachable via no roots assumption
		t.Errorf("GCRun did not shrink the registry back down: before=%d after=%d", before, after)
	}
}

func TestDumpProducesNonEmptyJSON(t *testing.T) {
	rt := New()
	dump, err := rt.Dump()
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if dump == "" || dump == "{}" {
		t.Error("Dump() should include the bootstrapped global object graph")
	}
}
