package types

// SyntaxShape is the expected syntactic category of one argument position,
// the "type check" applied when binding arguments to a declared command.
type SyntaxShape uint8

const (
	// ShapeAny allows any syntactic form.
	ShapeAny SyntaxShape = iota
	// ShapeString allows strings and string-like bare words.
	ShapeString
	// ShapeNumber allows integer or decimal values.
	ShapeNumber
	// ShapeInt allows only integer values.
	ShapeInt
	// ShapeRange allows ranges, e.g. 1..3.
	ShapeRange
	// ShapeFilePath allows file paths.
	ShapeFilePath
	// ShapeGlobPattern allows glob patterns, e.g. foo*.
	ShapeGlobPattern
	// ShapeBlock allows blocks, e.g. { start this thing }.
	ShapeBlock
	// ShapeTable allows tables, e.g. [first second].
	ShapeTable
	// ShapeFilesize allows file sizes, e.g. 10kb.
	ShapeFilesize
	// ShapeDuration allows durations, e.g. 19day.
	ShapeDuration
	// ShapeOperator allows operators.
	ShapeOperator
	// ShapeMathExpression allows general math expressions, e.g. 1 + 2.
	ShapeMathExpression
)

func (s SyntaxShape) String() string {
	switch s {
	case ShapeString:
		return "string"
	case ShapeNumber:
		return "number"
	case ShapeInt:
		return "int"
	case ShapeRange:
		return "range"
	case ShapeFilePath:
		return "filepath"
	case ShapeGlobPattern:
		return "glob"
	case ShapeBlock:
		return "block"
	case ShapeTable:
		return "table"
	case ShapeFilesize:
		return "filesize"
	case ShapeDuration:
		return "duration"
	case ShapeOperator:
		return "operator"
	case ShapeMathExpression:
		return "math"
	default:
		return "any"
	}
}

// Signature describes a declared command: its name and the shapes of its
// required positional arguments, in order. Signatures are built by the
// external command registry; the parser only reads them.
type Signature struct {
	Name                string
	MandatoryPositional []SyntaxShape
}
