package ast

// StmtKind tags the closed statement variant set.
type StmtKind uint8

const (
	// StmtNone is an empty no-op statement.
	StmtNone StmtKind = iota
	// StmtPipeline is a chain of commands joined by pipes.
	StmtPipeline
	// StmtVarDecl is a `let` variable declaration.
	StmtVarDecl
	// StmtImport is an import. Nothing produces one yet; the variant is
	// part of the statement set for the module system to grow into.
	StmtImport
	// StmtExpr is a bare expression statement.
	StmtExpr
)

func (k StmtKind) String() string {
	switch k {
	case StmtPipeline:
		return "pipeline"
	case StmtVarDecl:
		return "vardecl"
	case StmtImport:
		return "import"
	case StmtExpr:
		return "expr"
	default:
		return "none"
	}
}

// VarDecl binds a variable id to the expression that initializes it.
type VarDecl struct {
	Var  VarID
	Expr Expression
}

// Pipeline holds one parsed expression per command in the pipeline, in
// source order.
type Pipeline struct {
	Elements []Expression
}

// Statement is one top-level unit inside a block. The payload matching
// Kind is meaningful; the others are zero.
type Statement struct {
	Kind     StmtKind
	Pipeline Pipeline
	Decl     VarDecl
	Expr     Expression
}

// Block is the parsed form of one file or REPL submission.
type Block struct {
	Statements []Statement
}
