package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnclosedQuote     Code = 1001
	LexUnclosedDelimiter Code = 1002

	// Parse
	ParMismatch         Code = 2001
	ParVariableNotFound Code = 2002
)

// ID returns the stable textual identifier, e.g. "RF2001".
func (c Code) ID() string {
	return fmt.Sprintf("RF%04d", uint16(c))
}

func (c Code) String() string {
	switch c {
	case LexUnclosedQuote:
		return "unclosed quote"
	case LexUnclosedDelimiter:
		return "unclosed delimiter"
	case ParMismatch:
		return "mismatch"
	case ParVariableNotFound:
		return "variable not found"
	default:
		return "unknown"
	}
}
