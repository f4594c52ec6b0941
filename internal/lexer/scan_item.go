package lexer

import (
	"fmt"

	"reef/internal/diag"
	"reef/internal/token"
)

func closingFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

func isQuote(b byte) bool {
	return b == '\'' || b == '"' || b == '`'
}

func isOpenDelim(b byte) bool {
	return b == '(' || b == '[' || b == '{'
}

func isCloseDelim(b byte) bool {
	return b == ')' || b == ']' || b == '}'
}

// scanItem consumes one word token. Separators inside quotes or brackets do
// not terminate it; an unterminated quote or bracket at EOF is an error but
// the partial item is still emitted.
func (lx *lexer) scanItem() token.Token {
	start := lx.cursor.Mark()

	var quote byte    // active quote char, 0 when outside quotes
	var blocks []byte // stack of open delimiters

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		switch {
		case quote != 0:
			if b == quote {
				quote = 0
			}

		case isQuote(b):
			quote = b

		case isOpenDelim(b):
			blocks = append(blocks, b)

		case isCloseDelim(b):
			if len(blocks) > 0 && closingFor(blocks[len(blocks)-1]) == b {
				blocks = blocks[:len(blocks)-1]
			}

		case len(blocks) == 0 && isItemTerminator(b):
			return token.Token{Kind: token.Item, Span: lx.cursor.SpanFrom(start)}
		}

		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	switch {
	case quote != 0:
		lx.report(diag.LexUnclosedQuote, sp, fmt.Sprintf("unclosed %q quote", string(quote)))
	case len(blocks) > 0:
		lx.report(diag.LexUnclosedDelimiter, sp,
			fmt.Sprintf("unclosed %q delimiter", string(blocks[len(blocks)-1])))
	}
	return token.Token{Kind: token.Item, Span: sp}
}

func isItemTerminator(b byte) bool {
	switch b {
	case ' ', '\t', '|', ';', '\n', '\r':
		return true
	default:
		return false
	}
}
