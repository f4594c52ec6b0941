package token

// Kind is the closed classification of a lexical unit. Reef's surface
// syntax is word-shaped: everything that is not a separator or a comment
// is a single Item whose text is recovered from its span.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Item is a word: a command name, argument, keyword, or literal.
	Item
	// Comment is a '#' comment running to the end of the line.
	Comment
	// Pipe is the '|' pipeline separator.
	Pipe
	// Semicolon is the ';' statement separator.
	Semicolon
	// Eol is a '\n' or '\r' statement separator.
	Eol
)

func (k Kind) String() string {
	switch k {
	case Item:
		return "item"
	case Comment:
		return "comment"
	case Pipe:
		return "pipe"
	case Semicolon:
		return "semicolon"
	case Eol:
		return "eol"
	default:
		return "invalid"
	}
}

// IsSeparator reports whether the token ends a command or statement.
func (k Kind) IsSeparator() bool {
	switch k {
	case Pipe, Semicolon, Eol:
		return true
	default:
		return false
	}
}
