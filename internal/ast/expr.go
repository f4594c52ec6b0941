package ast

import (
	"reef/internal/source"
	"reef/internal/types"
)

// ExprKind tags the closed expression variant set. No open-ended
// extensibility is needed, so nodes are matched exhaustively on the tag.
type ExprKind uint8

const (
	// ExprGarbage is the placeholder substituted when a production fails
	// to match, keeping the AST well-formed under error recovery.
	ExprGarbage ExprKind = iota
	// ExprInt is an integer literal.
	ExprInt
	// ExprVar is a variable reference by id.
	ExprVar
)

func (k ExprKind) String() string {
	switch k {
	case ExprInt:
		return "int"
	case ExprVar:
		return "var"
	default:
		return "garbage"
	}
}

// Expression is a typed, span-annotated expression node. Exactly one of
// Int/Var is meaningful, selected by Kind.
type Expression struct {
	Kind ExprKind
	Int  int64
	Var  VarID
	Ty   types.Type
	Span source.Span
}

// Garbage returns the placeholder expression for a failed production.
// Garbage carries the unknown type.
func Garbage(span source.Span) Expression {
	return Expression{Kind: ExprGarbage, Ty: types.Unknown, Span: span}
}

// IntLit builds an integer literal expression.
func IntLit(v int64, span source.Span) Expression {
	return Expression{Kind: ExprInt, Int: v, Ty: types.Int, Span: span}
}

// VarRef builds a variable reference with the variable's declared type.
func VarRef(id VarID, ty types.Type, span source.Span) Expression {
	return Expression{Kind: ExprVar, Var: id, Ty: ty, Span: span}
}
