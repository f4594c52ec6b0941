package parser

import (
	"testing"

	"reef/internal/types"
)

func TestScopeResolutionAndExit(t *testing.T) {
	ws := NewWorkingSet()

	ws.EnterScope()
	id := ws.AddVariable("x", types.Int)

	got, ok := ws.FindVariable("x")
	if !ok || got != id {
		t.Fatalf("FindVariable = %d, %v; want %d, true", got, ok, id)
	}
	if ty := ws.GetVariable(id); ty != types.Int {
		t.Fatalf("GetVariable = %s, want int", ty)
	}

	ws.ExitScope()
	if _, ok := ws.FindVariable("x"); ok {
		t.Fatalf("x still resolvable after ExitScope")
	}
}

func TestInnerScopeWinsAndOuterSurvives(t *testing.T) {
	ws := NewWorkingSet()

	ws.EnterScope()
	outer := ws.AddVariable("x", types.Int)

	ws.EnterScope()
	inner := ws.AddVariable("x", types.String)

	if got, _ := ws.FindVariable("x"); got != inner {
		t.Fatalf("inner lookup = %d, want %d", got, inner)
	}

	ws.ExitScope()
	if got, _ := ws.FindVariable("x"); got != outer {
		t.Fatalf("outer lookup after exit = %d, want %d", got, outer)
	}
	ws.ExitScope()
}

func TestShadowingInSameScopeAllocatesFreshIDs(t *testing.T) {
	ws := NewWorkingSet()
	ws.EnterScope()

	first := ws.AddVariable("x", types.Int)
	second := ws.AddVariable("x", types.String)

	if first == second {
		t.Fatalf("shadowing reused VarID %d", first)
	}
	if got, _ := ws.FindVariable("x"); got != second {
		t.Fatalf("lookup = %d, want the shadowing binding %d", got, second)
	}
	// the shadowed id stays valid in the arena
	if ty := ws.GetVariable(first); ty != types.Int {
		t.Fatalf("old binding type = %s, want int", ty)
	}
	ws.ExitScope()
}

func TestDeclsIgnoreScopes(t *testing.T) {
	ws := NewWorkingSet()

	declID := ws.AddDecl(types.Signature{
		Name:                "inc",
		MandatoryPositional: []types.SyntaxShape{types.ShapeNumber},
	})

	ws.EnterScope()
	ws.ExitScope()

	got, ok := ws.FindDecl("inc")
	if !ok || got != declID {
		t.Fatalf("FindDecl = %d, %v; want %d, true", got, ok, declID)
	}
	sig := ws.GetDecl(declID)
	if sig.Name != "inc" || len(sig.MandatoryPositional) != 1 {
		t.Fatalf("signature = %+v", sig)
	}
}

func TestUnbalancedExitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unmatched ExitScope")
		}
	}()
	NewWorkingSet().ExitScope()
}

func TestBadVarIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unknown VarID")
		}
	}()
	NewWorkingSet().GetVariable(42)
}
