package driver

import (
	"os"

	"reef/internal/ast"
	"reef/internal/diag"
	"reef/internal/parser"
	"reef/internal/types"
)

type ParseResult struct {
	Path  string
	Set   *parser.ParserWorkingSet
	Block ast.Block
	Bag   *diag.Bag
}

// ParseOptions configures driver-level parses.
type ParseOptions struct {
	MaxDiagnostics int
	// Decls are the command signatures the external registry supplies to
	// the working set before parsing begins.
	Decls []types.Signature
}

func (o ParseOptions) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// ParseFile parses one file from disk with a fresh working set.
func ParseFile(path string, opts ParseOptions) (*ParseResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res := ParseBytes(path, content, opts)
	return res, nil
}

// ParseBytes parses in-memory source with a fresh working set.
func ParseBytes(name string, content []byte, opts ParseOptions) *ParseResult {
	set := parser.NewWorkingSet()
	for _, sig := range opts.Decls {
		set.AddDecl(sig)
	}

	bag := diag.NewBag(opts.maxDiagnostics())
	block, _ := set.ParseFile(name, content, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		Path:  name,
		Set:   set,
		Block: block,
		Bag:   bag,
	}
}
