package jstring

import "testing"

func TestCompareTieBreaksOnLength(t *testing.T) {
	short := FromGoString("ab")
	long := FromGoString("abc")

	if Compare(short, long) >= 0 {
		t.Errorf("Compare(%q, %q) = %d, want negative", short.Go(), long.Go(), Compare(short, long))
	}
	if Compare(long, short) <= 0 {
		t.Errorf("Compare(%q, %q) = %d, want positive", long.Go(), short.Go(), Compare(long, short))
	}
}

func TestEqual(t *testing.T) {
	if !Equal(FromGoString("hello"), FromGoString("hello")) {
		t.Error("identical strings compared unequal")
	}
	if Equal(FromGoString("hello"), FromGoString("world")) {
		t.Error("different strings compared equal")
	}
}

func TestConcat(t *testing.T) {
	got := Concat(FromGoString("foo"), FromGoString("bar"))
	if got.Go() != "foobar" {
		t.Errorf("Concat = %q, want %q", got.Go(), "foobar")
	}
}

func TestCharAtIsZeroCopyView(t *testing.T) {
	s := FromGoString("hello")
	c := s.CharAt(1)
	if c.Go() != "e" {
		t.Errorf("CharAt(1) = %q, want %q", c.Go(), "e")
	}
	if c.Len() != 1 {
		t.Errorf("CharAt length = %d, want 1", c.Len())
	}
}

func TestHashIsStableAndSensitiveToContent(t *testing.T) {
	h1 := Hash(FromGoString("prototype"))
	h2 := Hash(FromGoString("prototype"))
	h3 := Hash(FromGoString("constructor"))

	if h1 != h2 {
		t.Error("Hash is not stable for identical content")
	}
	if h1 == h3 {
		t.Error("Hash collided for distinct strings (not impossible, but suspicious for this fixture)")
	}
}
