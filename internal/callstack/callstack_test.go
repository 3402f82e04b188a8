package callstack

import (
	"testing"

	"github.com/cwbudde/jsrt/internal/runtime"
)

func TestPushItemPop(t *testing.T) {
	s := New(4)
	s.Push(runtime.NewNumber(1))
	s.Push(runtime.NewNumber(2))
	s.Push(runtime.NewNumber(3))

	if got := s.Item(3, 0).Number(); got != 1 {
		t.Errorf("Item(3,0) = %d, want 1", got)
	}
	if got := s.Item(3, 2).Number(); got != 3 {
		t.Errorf("Item(3,2) = %d, want 3", got)
	}

	s.PopN(3)
	if s.Count() != 0 {
		t.Errorf("Count after PopN(3) = %d, want 0", s.Count())
	}
}

func TestOverflowWithinOneOfLimitSucceeds(t *testing.T) {
	s := New(4)
	s.CheckOverflow(3)
	s.Push(runtime.NewNumber(0))
	s.Push(runtime.NewNumber(0))
	s.Push(runtime.NewNumber(0))
	// within one of the limit: the push that fills the last slot succeeds.
	s.CheckOverflow(1)
	s.Push(runtime.NewNumber(0))
	// the stack is now full; one more push must panic.
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected overflow panic for a 5th push into a capacity-4 stack")
			}
		}()
		s.CheckOverflow(1)
	}()
}

func TestLiveReturnsExactlyPushedValues(t *testing.T) {
	s := New(8)
	s.Push(runtime.NewNumber(1))
	s.Push(runtime.NewNumber(2))

	live := s.Live()
	if len(live) != 2 {
		t.Fatalf("Live() length = %d, want 2", len(live))
	}
}
