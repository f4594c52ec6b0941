package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (REPL, test, stdin).
	FileVirtual FileFlags = 1 << iota
)

// UnknownFile is the reserved FileID carried by the unknown span sentinel.
// A FileSet never issues it.
const UnknownFile FileID = ^FileID(0)

// File captures metadata and content for a single registered source.
type File struct {
	ID      FileID
	Name    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
