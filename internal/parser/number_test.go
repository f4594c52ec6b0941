package parser

import (
	"testing"

	"reef/internal/ast"
	"reef/internal/diag"
	"reef/internal/source"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		tok     string
		want    int64
		wantErr bool
	}{
		{tok: "0x1F", want: 31},
		{tok: "0b101", want: 5},
		{tok: "0o17", want: 15},
		{tok: "42", want: 42},
		{tok: "0", want: 0},
		{tok: "-7", want: -7},
		{tok: "0xZZ", wantErr: true},
		{tok: "0b2", wantErr: true},
		{tok: "0o9", wantErr: true},
		{tok: "abc", wantErr: true},
		{tok: "", wantErr: true},
		{tok: "0x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			p := &parser{ws: NewWorkingSet()}
			span := source.Span{File: 0, Start: 5, End: 5 + uint32(len(tt.tok))}

			expr, err := p.parseInt(tt.tok, span)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseInt(%q) succeeded, want mismatch", tt.tok)
				}
				if err.Code != diag.ParMismatch || err.Expected != "int" {
					t.Fatalf("error = %+v, want Mismatch(int)", err)
				}
				if err.Span != span {
					t.Fatalf("error span = %v, want the token span %v", err.Span, span)
				}
				if expr.Kind != ast.ExprGarbage {
					t.Fatalf("expr kind = %s, want garbage", expr.Kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInt(%q) error: %v", tt.tok, err)
			}
			if expr.Kind != ast.ExprInt || expr.Int != tt.want {
				t.Fatalf("expr = %+v, want int %d", expr, tt.want)
			}
			if expr.Ty.String() != "int" {
				t.Fatalf("type = %s, want int", expr.Ty)
			}
			if expr.Span != span {
				t.Fatalf("span = %v, want %v", expr.Span, span)
			}
		})
	}
}

func TestParseNumberWrapsIntMismatch(t *testing.T) {
	p := &parser{ws: NewWorkingSet()}
	span := source.Span{File: 0, Start: 0, End: 3}

	expr, err := p.parseNumber("abc", span)
	if err == nil {
		t.Fatalf("expected mismatch")
	}
	if err.Expected != "number" {
		t.Fatalf("expected = %q, want %q", err.Expected, "number")
	}
	if err.Span != span {
		t.Fatalf("error span = %v, want %v", err.Span, span)
	}
	if expr.Kind != ast.ExprGarbage {
		t.Fatalf("expr kind = %s, want garbage", expr.Kind)
	}
}
