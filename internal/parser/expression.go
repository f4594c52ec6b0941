package parser

import (
	"strconv"
	"strings"

	"reef/internal/ast"
	"reef/internal/source"
	"reef/internal/types"
)

// parseExpression parses a general expression from the remaining spans.
func (p *parser) parseExpression(spans []source.Span) (ast.Expression, *Error) {
	return p.parseMathExpression(spans)
}

// parseMathExpression parses an arithmetic expression. Only single
// numeric-literal or variable operands exist today; operator-precedence
// parsing over the remaining spans is the extension point here.
func (p *parser) parseMathExpression(spans []source.Span) (ast.Expression, *Error) {
	return p.parseArg(spans[0], types.ShapeNumber)
}

// parseArg parses one argument token against the expected shape. Tokens
// beginning with the variable sigil resolve through the scope stack
// regardless of shape. Of the shapes, only Number dispatches today; every
// other shape is an extension point and yields garbage + mismatch.
func (p *parser) parseArg(span source.Span, shape types.SyntaxShape) (ast.Expression, *Error) {
	bs := p.ws.Contents(span)
	if len(bs) > 0 && bs[0] == '$' {
		id, ok := p.ws.FindVariable(string(trimSigil(bs)))
		if !ok {
			return ast.Garbage(span), VariableNotFound(span)
		}
		return ast.VarRef(id, p.ws.GetVariable(id), span), nil
	}

	switch shape {
	case types.ShapeNumber:
		return p.parseNumber(string(bs), span)
	default:
		return ast.Garbage(span), Mismatch("number", span)
	}
}

// parseNumber parses a numeric literal. Only integers exist today.
func (p *parser) parseNumber(tok string, span source.Span) (ast.Expression, *Error) {
	if expr, err := p.parseInt(tok, span); err == nil {
		return expr, nil
	}
	return ast.Garbage(span), Mismatch("number", span)
}

// parseInt parses an integer literal with 0x/0b/0o base prefixes, decimal
// otherwise. Malformed digits for the recognized base yield garbage + a
// mismatch on the token's exact span.
func (p *parser) parseInt(tok string, span source.Span) (ast.Expression, *Error) {
	var (
		digits = tok
		base   = 10
	)
	switch {
	case strings.HasPrefix(tok, "0x"):
		digits, base = tok[2:], 16
	case strings.HasPrefix(tok, "0b"):
		digits, base = tok[2:], 2
	case strings.HasPrefix(tok, "0o"):
		digits, base = tok[2:], 8
	}

	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return ast.Garbage(span), Mismatch("int", span)
	}
	return ast.IntLit(v, span), nil
}
