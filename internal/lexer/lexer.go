package lexer

import (
	"reef/internal/diag"
	"reef/internal/source"
	"reef/internal/token"
)

// Mode parametrizes the scanning context. Only ModeNormal exists today;
// additional modes are the extension point for string interpolation.
type Mode uint8

const (
	ModeNormal Mode = iota
)

// Options configures a lex run. Reporter may be nil; errors are then
// observable only through the returned first diagnostic.
type Options struct {
	Mode     Mode
	Reporter diag.Reporter
}

type lexer struct {
	cursor Cursor
	opts   Options
	first  *diag.Diagnostic
}

// Lex scans content into tokens. The content may be a sub-range of a
// larger registered buffer: offset shifts every produced span so they
// bound the exact file bytes. Malformed quoting or bracket nesting is
// reported, but the best-effort token sequence up to and including the
// malformed region still comes back.
func Lex(content []byte, file source.FileID, offset uint32, opts Options) ([]token.Token, *diag.Diagnostic) {
	lx := &lexer{
		cursor: NewCursor(content, file, offset),
		opts:   opts,
	}

	var tokens []token.Token
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case '|':
			tokens = append(tokens, lx.single(token.Pipe))
		case ';':
			tokens = append(tokens, lx.single(token.Semicolon))
		case '\n', '\r':
			tokens = append(tokens, lx.single(token.Eol))
		case '#':
			tokens = append(tokens, lx.scanComment())
		case ' ', '\t':
			lx.cursor.Bump()
		default:
			tokens = append(tokens, lx.scanItem())
		}
	}
	return tokens, lx.first
}

// single emits a one-byte token of the given kind.
func (lx *lexer) single(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}
}

// scanComment consumes '#' up to, not including, the end of the line.
func (lx *lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.Comment, Span: lx.cursor.SpanFrom(start)}
}

func (lx *lexer) report(code diag.Code, sp source.Span, msg string) {
	d := diag.NewError(code, sp, msg)
	if lx.first == nil {
		lx.first = &d
	}
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
