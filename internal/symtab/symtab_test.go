package symtab_test

import (
	"testing"

	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/symtab"
)

func TestSetAndLookup(t *testing.T) {
	t.Parallel()

	table := symtab.New()
	pos := source.Pos{File: "a.asm", Line: 1}

	table.Set("count", 10, pos)

	sym, ok := table.Lookup("COUNT", pos)
	if !ok || sym.Value != 10 {
		t.Fatalf("got %v, %v, want value 10", sym, ok)
	}
}

func TestSetTracksChanges(t *testing.T) {
	t.Parallel()

	table := symtab.New()
	pos := source.Pos{File: "a.asm", Line: 1}

	table.Set("LOOP", 0x10, pos)
	if table.Changes != 1 {
		t.Fatalf("first Set should register a change, got %d", table.Changes)
	}

	table.Set("LOOP", 0x10, pos)
	if table.Changes != 1 {
		t.Errorf("setting the same value again should not register a change, got %d", table.Changes)
	}

	table.Set("LOOP", 0x20, pos)
	if table.Changes != 2 {
		t.Errorf("setting a different value should register a change, got %d", table.Changes)
	}
}

func TestUnresolved(t *testing.T) {
	t.Parallel()

	table := symtab.New()
	pos := source.Pos{File: "a.asm", Line: 1}

	table.Lookup("MISSING", pos)

	unresolved := table.Unresolved()
	if len(unresolved) != 1 || unresolved[0].Name != "MISSING" {
		t.Fatalf("got %v, want a single unresolved MISSING entry", unresolved)
	}

	table.Set("MISSING", 1, pos)

	if len(table.Unresolved()) != 0 {
		t.Error("symbol should no longer be unresolved once Set")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	table := symtab.New()
	pos := source.Pos{File: "a.asm", Line: 1}

	table.Set("LOCAL", 1, pos)
	table.Clear()

	if table.IsDefined("LOCAL") {
		t.Error("Clear should drop all symbols")
	}
}

func TestAnonLabelsForwardBackward(t *testing.T) {
	t.Parallel()

	anon := symtab.NewAnonLabels()

	anon.Define(source.Pos{File: "a.asm", Line: 5}, true, 0x100)
	anon.Define(source.Pos{File: "a.asm", Line: 10}, true, 0x110)
	anon.Define(source.Pos{File: "a.asm", Line: 2}, false, 0x050)

	if v, ok := anon.Find(source.Pos{File: "a.asm", Line: 1}, true, 1); !ok || v != 0x100 {
		t.Errorf("first forward label: got %#x, %v, want 0x100, true", v, ok)
	}

	if v, ok := anon.Find(source.Pos{File: "a.asm", Line: 1}, true, 2); !ok || v != 0x110 {
		t.Errorf("second forward label: got %#x, %v, want 0x110, true", v, ok)
	}

	if v, ok := anon.Find(source.Pos{File: "a.asm", Line: 20}, false, 1); !ok || v != 0x050 {
		t.Errorf("first backward label: got %#x, %v, want 0x050, true", v, ok)
	}

	if _, ok := anon.Find(source.Pos{File: "a.asm", Line: 1}, true, 3); ok {
		t.Error("third forward label should not exist")
	}
}

func TestAnonLabelsChanged(t *testing.T) {
	t.Parallel()

	anon := symtab.NewAnonLabels()
	pos := source.Pos{File: "a.asm", Line: 1}

	anon.Define(pos, true, 0x100)
	if !anon.Changed() {
		t.Error("first Define should mark changed")
	}

	anon.Reset()
	if anon.Changed() {
		t.Error("Reset should clear the changed flag")
	}

	anon.Define(pos, true, 0x100)
	if anon.Changed() {
		t.Error("re-defining the same value should not mark changed")
	}

	anon.Define(pos, true, 0x200)
	if !anon.Changed() {
		t.Error("re-defining with a different value should mark changed")
	}
}
