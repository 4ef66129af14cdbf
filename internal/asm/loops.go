package asm

import (
	"strconv"
	"strings"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/token"
)

// parseDoWhile implements the ".do ... .while expr" extension: the body is captured as a raw
// token span (not a parsed AST, mirroring dowhile.cpp's source-text capture) and re-evaluated
// iteration by iteration, substituting each .var variable reference with its current value as a
// literal, until the condition evaluates false or the iteration cap is hit. The accumulated
// per-iteration token copies then replace the .do/.while span in place, so the enclosing Parse
// loop continues directly into the unrolled statements -- including any nested .do/.while, which
// is simply re-expanded the next time this function reaches it, deferring nested expansion
// without a separate pending-expansion bookkeeping structure.
func (p *Parser) parseDoWhile() (*ast.Node, error) {
	doStart := p.pos

	doTok := p.next()
	pos := p.pposOf(doTok)

	bodyStart := p.pos
	depth := 1
	whileIdx := -1

	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].Type {
		case token.DO_DIR:
			depth++
		case token.WHILE_DIR:
			depth--
			if depth == 0 {
				whileIdx = i
			}
		}

		if whileIdx >= 0 {
			break
		}
	}

	if whileIdx < 0 {
		return nil, &SyntaxError{SourceInfo: p.excerpt(pos), Expected: ".while", Got: "end of file"}
	}

	bodyEnd := whileIdx
	condStart := whileIdx + 1
	condEnd := condStart

	for condEnd < len(p.toks) && p.toks[condEnd].Type != token.EOL {
		condEnd++
	}

	body := append([]token.Token(nil), p.toks[bodyStart:bodyEnd]...)
	cond := append([]token.Token(nil), p.toks[condStart:condEnd]...)

	var expansion []token.Token

	iterations := 0

	for {
		iterations++
		if iterations > p.opts.MaxIterations {
			return nil, &IterationLimitError{SourceInfo: p.excerpt(pos), Limit: p.opts.MaxIterations}
		}

		substituted := p.substituteVars(body)
		expansion = append(expansion, substituted...)

		// The frozen copy in expansion is only re-parsed (and so only re-assigns .vars) once the
		// unrolled tokens are spliced back in after this loop exits. Apply any .var assignment in
		// this iteration's body immediately too, or a .while condition referencing that variable
		// would never see it change and the loop would spin until the iteration cap.
		p.applyVarAssignments(substituted)

		condVal, err := p.evalCondition(p.substituteVars(cond))
		if err != nil {
			return nil, err
		}

		if condVal == 0 {
			break
		}
	}

	rest := make([]token.Token, len(p.toks)-condEnd)
	copy(rest, p.toks[condEnd:])

	// Splice from doStart, not bodyStart, so the .do token itself is replaced along with its body
	// and condition -- otherwise it survives for the next pass to re-enter parseDoWhile looking for
	// a .while that is no longer there.
	p.toks = append(p.toks[:doStart], append(expansion, rest...)...)
	p.pos = doStart

	return nil, nil
}

// substituteVars returns a copy of toks with every .var-symbol reference (not immediately
// followed by '=', which would make it an assignment target) replaced by its current value as a
// decimal-literal token, freezing the value for this iteration.
func (p *Parser) substituteVars(toks []token.Token) []token.Token {
	out := make([]token.Token, len(toks))
	copy(out, toks)

	for i := range out {
		if out[i].Type != token.SYM && out[i].Type != token.LOCALSYM {
			continue
		}

		name := strings.TrimPrefix(out[i].Value, "@")

		sym := p.vars.Get(name)
		if sym == nil {
			continue
		}

		if i+1 < len(out) && out[i+1].Type == token.EQUAL {
			continue
		}

		out[i] = token.Token{Type: token.DECNUM, Value: strconv.Itoa(sym.Value), File: out[i].File, Line: out[i].Line}
	}

	return out
}

// applyVarAssignments scans a var-substituted copy of a loop body for ".var NAME = expr"
// statements and applies them to the parser's variable table immediately, keeping the iteration
// count in parseDoWhile consistent with the values the unrolled statements will later assign for
// real.
func (p *Parser) applyVarAssignments(toks []token.Token) {
	for i := 0; i < len(toks); i++ {
		if toks[i].Type != token.VAR_DIR {
			continue
		}

		j := i + 1
		if j >= len(toks) || toks[j].Type != token.SYM {
			continue
		}

		name := toks[j].Value
		j++

		if j >= len(toks) || toks[j].Type != token.EQUAL {
			continue
		}

		j++
		start := j

		for j < len(toks) && toks[j].Type != token.EOL {
			j++
		}

		val, err := p.evalTokens(toks[start:j])
		if err != nil {
			continue
		}

		p.vars.Set(name, val, p.pposOf(toks[i]))
		i = j
	}
}

// evalTokens evaluates toks (terminated with a synthetic EOL) as a single expression, temporarily
// swapping them in as the parser's token stream.
func (p *Parser) evalTokens(toks []token.Token) (int, error) {
	savedToks, savedPos := p.toks, p.pos

	p.toks = append(append([]token.Token(nil), toks...), token.Token{Type: token.EOL})
	p.pos = 0

	val, err := p.parseExpr()

	p.toks, p.pos = savedToks, savedPos

	if err != nil {
		return 0, err
	}

	if val == nil {
		return 0, nil
	}

	return val.Num, nil
}

// evalCondition evaluates toks as a .while condition, temporarily swapping them in as the
// parser's token stream. Unlike evalTokens, the grammar here additionally allows one relational
// operator between two arithmetic expressions -- a form specific to .while and not part of the
// general expression grammar used by .org, .byte/.word, equates, or operands.
func (p *Parser) evalCondition(toks []token.Token) (int, error) {
	savedToks, savedPos := p.toks, p.pos

	p.toks = append(append([]token.Token(nil), toks...), token.Token{Type: token.EOL})
	p.pos = 0

	val, err := p.parseCondition()

	p.toks, p.pos = savedToks, savedPos

	return val, err
}

// parseCondition parses a bare arithmetic expression, optionally followed by one relational
// operator and a second arithmetic expression, returning 1 for true and 0 for false. A bare
// expression is true when nonzero, matching .if's condition convention.
func (p *Parser) parseCondition() (int, error) {
	lhs, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	if lhs == nil {
		return 0, nil
	}

	switch p.peekType() {
	case token.LT, token.GT, token.LE, token.GE, token.EQEQ, token.NEQ:
		opType := p.next().Type

		rhs, err := p.parseExpr()
		if err != nil {
			return 0, err
		}

		if rhs == nil {
			return 0, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "expression", Got: "end of line"}
		}

		switch opType {
		case token.LT:
			return boolInt(lhs.Num < rhs.Num), nil
		case token.GT:
			return boolInt(lhs.Num > rhs.Num), nil
		case token.LE:
			return boolInt(lhs.Num <= rhs.Num), nil
		case token.GE:
			return boolInt(lhs.Num >= rhs.Num), nil
		case token.EQEQ:
			return boolInt(lhs.Num == rhs.Num), nil
		default:
			return boolInt(lhs.Num != rhs.Num), nil
		}
	}

	return lhs.Num, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
