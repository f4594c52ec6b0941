// Package parser turns lite-parsed token groups into a typed, span-annotated
// AST, resolving variables and command declarations through the working
// set's scope stack. No production aborts on error: failing productions
// return garbage placeholder nodes so the Block is always structurally
// complete, and diagnostics are collected through the reporter.
package parser

import (
	"reef/internal/ast"
	"reef/internal/diag"
	"reef/internal/lexer"
	"reef/internal/lite"
	"reef/internal/source"
)

// Options configures one parse call.
type Options struct {
	// Reporter collects every diagnostic the pipeline hits, in position
	// order. May be nil; the first error is still returned either way.
	Reporter diag.Reporter
}

// parser threads the reporter through one parse call against a working set.
type parser struct {
	ws   *ParserWorkingSet
	opts Options
}

func (p *parser) report(err *Error) {
	if err != nil && p.opts.Reporter != nil {
		d := err.Diagnostic()
		p.opts.Reporter.Report(d.Code, d.Severity, d.Primary, d.Message)
	}
}

// ParseSource parses one anonymous submission (REPL line, stdin). The
// bytes are registered in the file registry under the name "source".
func (ws *ParserWorkingSet) ParseSource(src []byte, opts Options) (ast.Block, *Error) {
	return ws.ParseFile("source", src, opts)
}

// ParseFile registers the source as a file, then runs lexer, lite parser
// and block parser in sequence. The returned error is the first one any
// stage hit; the Block is always fully formed, with garbage placeholders
// where productions failed.
func (ws *ParserWorkingSet) ParseFile(fname string, contents []byte, opts Options) (ast.Block, *Error) {
	var err *Error

	fileID := ws.AddFile(fname, contents)

	tokens, lexDiag := lexer.Lex(contents, fileID, 0, lexer.Options{Reporter: opts.Reporter})
	err = firstErr(err, FromDiagnostic(lexDiag))

	lb, liteDiag := lite.Parse(tokens)
	err = firstErr(err, FromDiagnostic(liteDiag))

	p := &parser{ws: ws, opts: opts}
	block, blockErr := p.parseBlock(lb)
	err = firstErr(err, blockErr)

	return block, err
}

// parseBlock parses every lite statement inside a fresh scope. The scope
// is popped on every exit path, errors included.
func (p *parser) parseBlock(lb lite.Block) (ast.Block, *Error) {
	var err *Error

	p.ws.EnterScope()
	defer p.ws.ExitScope()

	block := ast.Block{Statements: make([]ast.Statement, 0, len(lb.Statements))}
	for _, ls := range lb.Statements {
		stmt, stmtErr := p.parseStatement(ls)
		p.report(stmtErr)
		err = firstErr(err, stmtErr)

		block.Statements = append(block.Statements, stmt)
	}

	return block, err
}

// parseStatement parses one pipeline. Single-command statements run the
// ordered alternatives let -> expression -> garbage; only the first
// success is kept. Multi-command statements parse every command of the
// pipeline through the call path.
func (p *parser) parseStatement(ls lite.Statement) (ast.Statement, *Error) {
	if len(ls.Commands) == 0 {
		return ast.Statement{Kind: ast.StmtNone}, nil
	}
	if len(ls.Commands) > 1 {
		return p.parsePipeline(ls)
	}

	spans := ls.Commands[0].Parts

	if stmt, err := p.parseLet(spans); err == nil {
		return stmt, nil
	}
	if expr, err := p.parseExpression(spans); err == nil {
		return ast.Statement{Kind: ast.StmtExpr, Expr: expr}, nil
	}

	sp := source.Merge(spans)
	return ast.Statement{Kind: ast.StmtExpr, Expr: ast.Garbage(sp)},
		Mismatch("statement", sp)
}

// parsePipeline parses each command of a multi-command pipeline and chains
// the results. Failed commands contribute garbage elements; the first
// error is threaded back.
func (p *parser) parsePipeline(ls lite.Statement) (ast.Statement, *Error) {
	var err *Error

	pipeline := ast.Pipeline{Elements: make([]ast.Expression, 0, len(ls.Commands))}
	for _, cmd := range ls.Commands {
		expr, cmdErr := p.parseCall(cmd.Parts)
		err = firstErr(err, cmdErr)

		pipeline.Elements = append(pipeline.Elements, expr)
	}

	return ast.Statement{Kind: ast.StmtPipeline, Pipeline: pipeline}, err
}
