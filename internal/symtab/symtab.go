// Package symtab implements the assembler's symbol tables: a case-insensitive map from symbol
// name to value, tracking each symbol's lifecycle across passes so the driver can detect
// fixpoint convergence and duplicate definitions. Grounded on the original assembler's SymTable/
// Sym pair (symboltable.h/sym.h).
package symtab

import (
	"strings"

	"github.com/pbaxter/sixasm/internal/source"
)

// Symbol holds one entry's metadata: its resolved value, whether it has ever been assigned, and
// whether its value changed on the most recent pass.
type Symbol struct {
	Name        string
	Value       int
	Initialized bool
	Changed     bool
	IsEquate    bool
	IsMacro     bool
	IsVar       bool
	IsPC        bool // the special "*" program-counter pseudo-symbol
	DefinedPass int
	Created     source.Pos
	Accessed    map[source.Pos]bool
}

// Table is a symbol table keyed by upper-cased name. The assembler keeps three: one for globals,
// one for the current local scope (cleared whenever a new global label is defined) and one for
// .var-declared mutable variables.
type Table struct {
	syms    map[string]*Symbol
	Changes int // incremented whenever Set first assigns a symbol or changes its value; drives pass fixpoint detection

	listeners []func(*Symbol)
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{syms: make(map[string]*Symbol)}
}

func normalize(name string) string { return strings.ToUpper(name) }

// OnChange registers a callback invoked on every Set call, whether or not the value changed.
func (t *Table) OnChange(fn func(*Symbol)) {
	t.listeners = append(t.listeners, fn)
}

func (t *Table) notify(s *Symbol) {
	for _, fn := range t.listeners {
		fn(s)
	}
}

// Lookup returns the symbol named name and whether it has been assigned a value, recording pos as
// an access site regardless of whether the symbol is defined yet (so unresolved-symbol diagnostics
// can point at every use). An unknown name gets an uninitialized placeholder entry.
func (t *Table) Lookup(name string, pos source.Pos) (*Symbol, bool) {
	key := normalize(name)

	s, ok := t.syms[key]
	if !ok {
		s = &Symbol{Name: key, Accessed: make(map[source.Pos]bool)}
		t.syms[key] = s
	}

	s.Accessed[pos] = true

	return s, s.Initialized
}

// Set assigns value to name, creating the symbol if necessary. It records pos as the symbol's
// definition position on first assignment, bumps t.Changes when the symbol is newly assigned or
// its value differs from the stored one, and marks Changed so a second pass can decide whether to keep
// hunting for a fixpoint.
func (t *Table) Set(name string, value int, pos source.Pos) *Symbol {
	key := normalize(name)

	s, ok := t.syms[key]
	if !ok {
		s = &Symbol{Name: key, Accessed: make(map[source.Pos]bool)}
		t.syms[key] = s
		s.Created = pos
	}

	if !s.Initialized || s.Value != value {
		t.Changes++
		s.Changed = true
	} else {
		s.Changed = false
	}

	s.Value = value
	s.Initialized = true

	t.notify(s)

	return s
}

// IsDefined reports whether name has ever been assigned a value.
func (t *Table) IsDefined(name string) bool {
	s, ok := t.syms[normalize(name)]
	return ok && s.Initialized
}

// Get returns the symbol named name without recording an access, or nil if it has never been
// referenced or defined.
func (t *Table) Get(name string) *Symbol {
	return t.syms[normalize(name)]
}

// Clear empties the table. Used to discard local-scope symbols whenever a new global label
// begins a fresh scope.
func (t *Table) Clear() {
	t.syms = make(map[string]*Symbol)
}

// Unresolved returns every symbol that has been referenced but never defined, in an unspecified
// order; callers needing deterministic output should sort by Name.
func (t *Table) Unresolved() []*Symbol {
	var out []*Symbol

	for _, s := range t.syms {
		if !s.Initialized {
			out = append(out, s)
		}
	}

	return out
}

// Len reports how many distinct symbols (defined or merely referenced) the table holds.
func (t *Table) Len() int { return len(t.syms) }
