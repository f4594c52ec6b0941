package ast

// VarID and DeclID are opaque handles into arenas owned by the parser's
// working set. AST nodes hold them by value, never by pointer, so a
// partially garbage AST stays well-formed and trivially copyable.
type (
	VarID  uint32
	DeclID uint32
)

const (
	NoVarID  VarID  = 0
	NoDeclID DeclID = 0
)

func (id VarID) IsValid() bool  { return id != NoVarID }
func (id DeclID) IsValid() bool { return id != NoDeclID }
