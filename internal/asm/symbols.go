package asm

import (
	"strings"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/symtab"
	"github.com/pbaxter/sixasm/internal/token"
)

// isAnonLabel reports whether a SYM token's text is a run of all '+' or all '-', the lexer's
// spelling for an anonymous forward/backward label reference.
func isAnonLabel(s string) (forward bool, count int, ok bool) {
	if s == "" {
		return false, 0, false
	}

	switch s[0] {
	case '+':
		forward = true
	case '-':
		forward = false
	default:
		return false, 0, false
	}

	for i := 0; i < len(s); i++ {
		if s[i] != s[0] {
			return false, 0, false
		}
	}

	return forward, len(s), true
}

// parseSymbolRef parses a symbol reference inside an expression: a local symbol (@name), a global
// symbol, or an anonymous label run. defining indicates a label-definition context rather than a
// value reference -- callers defining a label use handleLabelDef instead of this function, so
// defining is currently always false here; the parameter documents the distinction made by
// handle_symbol in the grounding source, where the same dispatch serves both.
func (p *Parser) parseSymbolRef(defining bool) (*ast.Node, error) {
	tok := p.next()
	pos := p.pposOf(tok)

	if tok.Type == token.SYM {
		if forward, count, ok := isAnonLabel(tok.Value); ok {
			value, found := p.anon.Find(pos, forward, count)

			n := ast.New(ast.RuleSymbol, pos, ast.TokenArg(tok))
			n.Num = value

			if !found {
				p.errs.Add(&UnresolvedSymbolError{SourceInfo: p.excerpt(pos), Symbol: tok.Value})
			}

			return n, nil
		}
	}

	name := tok.Value
	isLocal := tok.Type == token.LOCALSYM

	table := p.globals
	if isLocal {
		table = p.locals
		name = strings.TrimPrefix(name, "@")
	}

	sym, defined := table.Lookup(name, pos)

	n := ast.New(ast.RuleSymbol, pos, ast.TokenArg(tok))
	n.Value = name
	n.Num = sym.Value

	if !defined && p.confirming {
		if isLocal {
			p.errs.Add(&UnresolvedLocalError{SourceInfo: p.excerpt(pos), Symbol: name, Scope: p.scope})
		} else {
			p.errs.Add(&UnresolvedSymbolError{SourceInfo: p.excerpt(pos), Symbol: name})
		}
	}

	return n, nil
}

// handleLabelDef assigns value to a label definition token (global or local), following
// handle_symbol's definition branch: a disagreeing redefinition is an error once the resolver has
// converged, a new global label clears the local scope first, and the symbol's Changed flag
// (surfaced via the table's Changes counter) drives another resolution pass.
func (p *Parser) handleLabelDef(tok token.Token, value int) *symtab.Symbol {
	pos := p.pposOf(tok)

	if tok.Type == token.LOCALSYM {
		name := strings.TrimPrefix(tok.Value, "@")
		return p.locals.Set(name, value, pos)
	}

	name := tok.Value

	if existing := p.globals.Get(name); existing != nil && existing.Initialized {
		if existing.Value != value && p.confirming {
			p.errs.Add(&DuplicateDefinitionError{
				SourceInfo: p.excerpt(pos), Symbol: name,
				First: existing.Created, OldValue: existing.Value, NewValue: value,
			})
		}
	}

	// A fresh global label starts a new local scope; any local left unresolved from the prior
	// scope is reported once the resolver has converged.
	if p.scope != name {
		if p.confirming {
			for _, s := range p.locals.Unresolved() {
				p.errs.Add(&UnresolvedLocalError{SourceInfo: p.excerpt(pos), Symbol: s.Name, Scope: p.scope})
			}
		}

		p.locals.Clear()
		p.scope = name
	}

	return p.globals.Set(name, value, pos)
}
