package token

import (
	"reef/internal/source"
)

// Token is a single lexical unit. It carries no text payload: the span
// bounds the exact source bytes, which stay recoverable through the file
// registry.
type Token struct {
	Kind Kind
	Span source.Span
}
