package parser

import (
	"fmt"

	"reef/internal/ast"
	"reef/internal/source"
	"reef/internal/types"
)

type varBinding struct {
	id ast.VarID
	ty types.Type
}

// scopeFrame is one lexical scope: an unordered name -> binding mapping,
// keyed through the interner.
type scopeFrame struct {
	vars map[source.StringID]varBinding
}

// ParserWorkingSet owns all state of one parse session: the append-only
// file registry, the vars and decls arenas, and the scope stack. AST nodes
// reference its arenas by VarID/DeclID, never by pointer. A working set is
// single-threaded; concurrent parses need one instance each.
type ParserWorkingSet struct {
	files   *source.FileSet
	names   *source.Interner
	vars    *ast.Arena[types.Type]
	decls   *ast.Arena[types.Signature]
	declIdx map[source.StringID]ast.DeclID
	scopes  []scopeFrame
}

func NewWorkingSet() *ParserWorkingSet {
	return &ParserWorkingSet{
		files:   source.NewFileSet(),
		names:   source.NewInterner(),
		vars:    ast.NewArena[types.Type](16),
		decls:   ast.NewArena[types.Signature](16),
		declIdx: make(map[source.StringID]ast.DeclID),
	}
}

// Files exposes the file registry, e.g. for diagnostic rendering.
func (ws *ParserWorkingSet) Files() *source.FileSet {
	return ws.files
}

// AddFile registers source bytes under a virtual name and returns the
// stable FileID. Files are never removed.
func (ws *ParserWorkingSet) AddFile(name string, contents []byte) source.FileID {
	return ws.files.AddVirtual(name, contents)
}

// Contents returns the exact bytes the span covers.
func (ws *ParserWorkingSet) Contents(span source.Span) []byte {
	return ws.files.Contents(span)
}

// EnterScope pushes a fresh scope frame.
func (ws *ParserWorkingSet) EnterScope() {
	ws.scopes = append(ws.scopes, scopeFrame{vars: make(map[source.StringID]varBinding)})
}

// ExitScope pops the innermost frame. Its bindings become unreachable by
// name; the VarID slots stay allocated and valid. Unmatched exits are a
// bookkeeping defect and panic.
func (ws *ParserWorkingSet) ExitScope() {
	if len(ws.scopes) == 0 {
		panic(fmt.Errorf("internal error: ExitScope without matching EnterScope"))
	}
	ws.scopes = ws.scopes[:len(ws.scopes)-1]
}

// ScopeDepth returns the current scope stack depth.
func (ws *ParserWorkingSet) ScopeDepth() int {
	return len(ws.scopes)
}

// AddVariable allocates a fresh VarID and binds name to it in the
// innermost scope. Rebinding a name in the same scope shadows the old
// binding; the old VarID stays valid but unreachable by name.
func (ws *ParserWorkingSet) AddVariable(name string, ty types.Type) ast.VarID {
	if len(ws.scopes) == 0 {
		panic(fmt.Errorf("internal error: AddVariable outside any scope"))
	}
	id := ast.VarID(ws.vars.Allocate(ty))
	nameID := ws.names.Intern(name)
	ws.scopes[len(ws.scopes)-1].vars[nameID] = varBinding{id: id, ty: ty}
	return id
}

// FindVariable searches the scope stack innermost to outermost and returns
// the first binding for name.
func (ws *ParserWorkingSet) FindVariable(name string) (ast.VarID, bool) {
	nameID, ok := ws.names.Contains(name)
	if !ok {
		return ast.NoVarID, false
	}
	for i := len(ws.scopes) - 1; i >= 0; i-- {
		if b, ok := ws.scopes[i].vars[nameID]; ok {
			return b.id, true
		}
	}
	return ast.NoVarID, false
}

// GetVariable returns the declared type of a VarID. An unknown id is a
// bookkeeping defect and panics.
func (ws *ParserWorkingSet) GetVariable(id ast.VarID) types.Type {
	return *ws.vars.Get(uint32(id))
}

// AddDecl registers a command signature in the global declaration table.
// Declarations are not lexically scoped and outlive scope push/pop. The
// external command registry calls this before parsing begins; the parser
// itself only reads.
func (ws *ParserWorkingSet) AddDecl(sig types.Signature) ast.DeclID {
	id := ast.DeclID(ws.decls.Allocate(sig))
	ws.declIdx[ws.names.Intern(sig.Name)] = id
	return id
}

// FindDecl looks a command name up in the global declaration table.
func (ws *ParserWorkingSet) FindDecl(name string) (ast.DeclID, bool) {
	nameID, ok := ws.names.Contains(name)
	if !ok {
		return ast.NoDeclID, false
	}
	id, ok := ws.declIdx[nameID]
	return id, ok
}

// GetDecl returns the signature for a DeclID. An unknown id is a
// bookkeeping defect and panics.
func (ws *ParserWorkingSet) GetDecl(id ast.DeclID) types.Signature {
	return *ws.decls.Get(uint32(id))
}
