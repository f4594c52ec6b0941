package parser

import (
	"reef/internal/ast"
	"reef/internal/source"
)

// parseCall parses a command invocation. A declaration hit binds each
// mandatory positional shape to exactly one following argument span via
// parseArg; a miss is an external-process invocation. Both cases produce a
// typed garbage placeholder for the call itself: dedicated call nodes are
// the extension point once argument binding grows past positionals.
func (p *parser) parseCall(spans []source.Span) (ast.Expression, *Error) {
	if len(spans) == 0 {
		return ast.Garbage(source.Unknown()), Mismatch("command", source.Unknown())
	}

	name := p.ws.Contents(spans[0])
	declID, ok := p.ws.FindDecl(string(name))
	if !ok {
		return p.parseExternalCall(spans)
	}

	var err *Error
	sig := p.ws.GetDecl(declID)

	argIdx := 1
	for _, shape := range sig.MandatoryPositional {
		if argIdx >= len(spans) {
			err = firstErr(err, Mismatch(shape.String(), source.Merge(spans)))
			break
		}
		_, argErr := p.parseArg(spans[argIdx], shape)
		err = firstErr(err, argErr)
		argIdx++
	}

	return ast.Garbage(source.Merge(spans)), err
}

// parseExternalCall handles command names with no declaration: the whole
// span sequence is an external-process invocation. External parsing is an
// extension point; the placeholder keeps the AST well-formed.
func (p *parser) parseExternalCall(spans []source.Span) (ast.Expression, *Error) {
	return ast.Garbage(spans[0]), nil
}
