// Package types holds the value types and argument shapes shared between
// the parser and the external command registry.
package types

// Type is the resolved type of an expression. Literal typing only; full
// inference is out of scope for the front end.
type Type uint8

const (
	// Unknown is carried by garbage placeholder expressions.
	Unknown Type = iota
	Int
	Float
	Bool
	String
	BlockType
	ListType
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case BlockType:
		return "block"
	case ListType:
		return "list"
	default:
		return "unknown"
	}
}
