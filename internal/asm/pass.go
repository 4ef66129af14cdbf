package asm

import (
	"context"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/lexer"
)

// Load reads filename into the parser's source cache and tokenizes it as the initial token
// stream. Call this once before Run.
func (p *Parser) Load(filename string) error {
	if _, err := p.cache.ReadFile(filename); err != nil {
		return err
	}

	toks, err := lexer.New(p.cache, filename).Tokenize()
	if err != nil {
		return err
	}

	p.toks = toks

	return nil
}

// Run drives the multi-pass resolution loop: repeatedly parse the token stream until neither
// table's symbols have changed and no anonymous label moved, then run one final "confirming"
// pass that reports every diagnostic a still-unresolved or out-of-range reference would raise --
// this is the hysteresis scheme grounded on the original parser's multi-pass driver, which kept
// reparsing while any symbol's `changed` flag was set and only surfaced range/unresolved errors
// once the symbol table had stopped moving.
func (p *Parser) Run(ctx context.Context) (*ast.Node, error) {
	var prog *ast.Node

	for p.pass = 0; p.pass < p.opts.MaxPasses; p.pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		before := p.globals.Changes + p.locals.Changes
		p.anon.Reset()

		p.errs = ErrorList{}

		result, err := p.Parse()
		if err != nil {
			return nil, err
		}

		prog = result

		after := p.globals.Changes + p.locals.Changes

		p.log.Debug("assembly pass complete", "pass", p.pass, "symbolChanges", after-before)

		if after == before && !p.anon.Changed() {
			break
		}
	}

	p.confirming = true
	p.errs = ErrorList{}

	prog, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return prog, p.errs.Err()
}
