// Package lite groups tokens into commands, pipelines and blocks without
// any symbol knowledge. It sits between the lexer and the parser.
package lite

import (
	"reef/internal/diag"
	"reef/internal/source"
	"reef/internal/token"
)

// Command is one command invocation: the spans of its name-or-argument
// tokens, in order.
type Command struct {
	Parts []source.Span
}

func (c *Command) Empty() bool {
	return len(c.Parts) == 0
}

// Statement is one pipeline: commands joined by '|'.
type Statement struct {
	Commands []Command
}

// Block is one parsed unit, a file or a REPL submission.
type Block struct {
	Statements []Statement
}

// Parse groups a token sequence. Comments are dropped; a pipe closes the
// current command, a semicolon or end-of-line closes the current
// statement. Runs of separators with nothing between them produce no
// statements, so blank lines never show up as empty statements.
//
// Grouping itself cannot fail today; the error slot keeps the stage
// contract uniform with the lexer and parser.
func Parse(tokens []token.Token) (Block, *diag.Diagnostic) {
	var block Block
	var stmt Statement
	var cmd Command

	flushCommand := func() {
		if !cmd.Empty() {
			stmt.Commands = append(stmt.Commands, cmd)
			cmd = Command{}
		}
	}
	flushStatement := func() {
		flushCommand()
		if len(stmt.Commands) > 0 {
			block.Statements = append(block.Statements, stmt)
			stmt = Statement{}
		}
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case token.Item:
			cmd.Parts = append(cmd.Parts, tok.Span)
		case token.Pipe:
			flushCommand()
		case token.Semicolon, token.Eol:
			flushStatement()
		case token.Comment, token.Invalid:
			// dropped before grouping
		}
	}
	flushStatement()

	return block, nil
}
