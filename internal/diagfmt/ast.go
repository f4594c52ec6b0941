package diagfmt

import (
	"fmt"
	"io"

	"reef/internal/ast"
	"reef/internal/source"
)

// FormatBlockPretty writes a one-node-per-line rendering of a parsed block.
func FormatBlockPretty(w io.Writer, block ast.Block, fs *source.FileSet) error {
	fmt.Fprintf(w, "block (%d statements)\n", len(block.Statements))
	for i, stmt := range block.Statements {
		fmt.Fprintf(w, "%3d: %s\n", i+1, stmt.Kind)
		switch stmt.Kind {
		case ast.StmtVarDecl:
			fmt.Fprintf(w, "     var #%d = %s\n", stmt.Decl.Var, exprLine(stmt.Decl.Expr, fs))
		case ast.StmtExpr:
			fmt.Fprintf(w, "     %s\n", exprLine(stmt.Expr, fs))
		case ast.StmtPipeline:
			for j, el := range stmt.Pipeline.Elements {
				fmt.Fprintf(w, "     [%d] %s\n", j+1, exprLine(el, fs))
			}
		case ast.StmtImport, ast.StmtNone:
		}
	}
	return nil
}

func exprLine(e ast.Expression, fs *source.FileSet) string {
	text := "<unknown>"
	if !e.Span.IsUnknown() {
		text = string(fs.Contents(e.Span))
	}
	switch e.Kind {
	case ast.ExprInt:
		return fmt.Sprintf("int %d : %s (%q)", e.Int, e.Ty, text)
	case ast.ExprVar:
		return fmt.Sprintf("var #%d : %s (%q)", e.Var, e.Ty, text)
	default:
		return fmt.Sprintf("garbage : %s (%q)", e.Ty, text)
	}
}
