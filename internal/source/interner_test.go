package source

import "testing"

func TestInternDedup(t *testing.T) {
	in := NewInterner()

	a := in.Intern("x")
	b := in.Intern("x")
	c := in.Intern("y")

	if a != b {
		t.Fatalf("same string interned to %d and %d", a, b)
	}
	if a == c {
		t.Fatalf("distinct strings share id %d", a)
	}
}

func TestInternEmptyIsNoStringID(t *testing.T) {
	in := NewInterner()
	if got := in.Intern(""); got != NoStringID {
		t.Fatalf("Intern(\"\") = %d, want %d", got, NoStringID)
	}
}

func TestLookupRoundtrip(t *testing.T) {
	in := NewInterner()
	id := in.InternBytes([]byte("count"))

	s, ok := in.Lookup(id)
	if !ok || s != "count" {
		t.Fatalf("Lookup = %q, %v", s, ok)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatalf("Lookup of invalid id succeeded")
	}
}

func TestContainsDoesNotIntern(t *testing.T) {
	in := NewInterner()
	before := in.Len()

	if _, ok := in.Contains("ghost"); ok {
		t.Fatalf("Contains reported an absent string")
	}
	if in.Len() != before {
		t.Fatalf("Contains grew the interner")
	}
}
