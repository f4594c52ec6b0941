package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Invalid, "invalid"},
		{Item, "item"},
		{Comment, "comment"},
		{Pipe, "pipe"},
		{Semicolon, "semicolon"},
		{Eol, "eol"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestIsSeparator(t *testing.T) {
	for _, k := range []Kind{Pipe, Semicolon, Eol} {
		if !k.IsSeparator() {
			t.Errorf("%v should separate", k)
		}
	}
	for _, k := range []Kind{Invalid, Item, Comment} {
		if k.IsSeparator() {
			t.Errorf("%v should not separate", k)
		}
	}
}
