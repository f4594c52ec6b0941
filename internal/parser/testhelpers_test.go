package parser

import (
	"fmt"
	"strings"
	"testing"

	"reef/internal/ast"
	"reef/internal/diag"
	"reef/internal/types"
)

func parseWith(t *testing.T, src string, decls ...types.Signature) (ast.Block, *Error, *diag.Bag, *ParserWorkingSet) {
	t.Helper()
	ws := NewWorkingSet()
	for _, sig := range decls {
		ws.AddDecl(sig)
	}
	bag := diag.NewBag(100)
	block, err := ws.ParseSource([]byte(src), Options{Reporter: diag.BagReporter{Bag: bag}})
	return block, err, bag, ws
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
