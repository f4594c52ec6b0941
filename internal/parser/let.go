package parser

import (
	"bytes"

	"reef/internal/ast"
	"reef/internal/source"
)

// isIdentifierByte rejects the bytes that would make a word a path or
// block rather than a plain name.
func isIdentifierByte(b byte) bool {
	return b != '.' && b != '[' && b != '(' && b != '{'
}

func isIdentifier(bs []byte) bool {
	for _, b := range bs {
		if !isIdentifierByte(b) {
			return false
		}
	}
	return true
}

func isVariable(bs []byte) bool {
	if len(bs) > 1 && bs[0] == '$' {
		return isIdentifier(bs[1:])
	}
	return isIdentifier(bs)
}

// trimSigil strips a leading '$'. Bindings are keyed by the bare name, so
// `let x = 1` and the reference `$x` meet at the same scope entry.
func trimSigil(bs []byte) []byte {
	if len(bs) > 1 && bs[0] == '$' {
		return bs[1:]
	}
	return bs
}

// parseKeyword succeeds iff the source bytes at the span are byte-for-byte
// equal to the keyword. Case-sensitive, no trimming. Failure is non-fatal:
// callers use it to try alternative productions.
func (p *parser) parseKeyword(span source.Span, keyword string) *Error {
	if bytes.Equal(p.ws.Contents(span), []byte(keyword)) {
		return nil
	}
	return Mismatch(keyword, span)
}

// parseVariable checks that the span holds a variable-shaped name and
// resolves it if already bound. An unbound but well-formed name is not an
// error here; `let` introduces such names.
func (p *parser) parseVariable(span source.Span) (ast.VarID, *Error) {
	bs := p.ws.Contents(span)
	if !isVariable(bs) {
		return ast.NoVarID, Mismatch("variable", span)
	}
	if id, ok := p.ws.FindVariable(string(trimSigil(bs))); ok {
		return id, nil
	}
	return ast.NoVarID, nil
}

// parseLet parses `let <name> = <expression>`. Once the keyword matches,
// the production is committed: the variable is registered in the current
// scope with the inferred expression type even when sub-parses failed, so
// later references still resolve against a typed placeholder. The first
// sub-parse error is threaded back.
func (p *parser) parseLet(spans []source.Span) (ast.Statement, *Error) {
	if len(spans) >= 4 && p.parseKeyword(spans[0], "let") == nil {
		var err *Error

		_, varErr := p.parseVariable(spans[1])
		err = firstErr(err, varErr)

		err = firstErr(err, p.parseKeyword(spans[2], "="))

		expr, exprErr := p.parseExpression(spans[3:])
		err = firstErr(err, exprErr)

		name := trimSigil(p.ws.Contents(spans[1]))
		varID := p.ws.AddVariable(string(name), expr.Ty)

		return ast.Statement{
			Kind: ast.StmtVarDecl,
			Decl: ast.VarDecl{Var: varID, Expr: expr},
		}, err
	}

	sp := source.Merge(spans)
	return ast.Statement{Kind: ast.StmtExpr, Expr: ast.Garbage(sp)},
		Mismatch("let", sp)
}
