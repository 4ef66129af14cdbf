package asm

import (
	"strconv"
	"strings"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/token"
)

// Macro is a stored macro body: the tokens between .macro and .endm, following MacroDefinition in
// the grounding source. Unlike the original's line-oriented bodyText, the body is kept as already
// lexed tokens, since this parser operates on one flat token stream rather than re-reading source
// lines per expansion; a MACRO_PARAM token (\1, \2, ...) within the body marks a substitution
// point, replaced at call time by the matching argument token.
type Macro struct {
	Name      string
	Params    int
	Body      []token.Token
	DefinedAt source.Pos
}

// parseMacroDef consumes a ".macro NAME n" line through its matching ".endm", storing the body
// tokens for later expansion. tok is the already-consumed MACRO_DIR token.
func (p *Parser) parseMacroDef(tok token.Token) (*ast.Node, error) {
	pos := p.pposOf(tok)

	nameTok := p.next()
	if nameTok.Type != token.SYM {
		return nil, &SyntaxError{SourceInfo: p.excerpt(pos), Expected: "macro name", Got: nameTok.Value}
	}

	name := strings.ToUpper(nameTok.Value)

	params := 0
	if p.peekType() == token.DECNUM {
		n, err := parseNumber(p.next())
		if err != nil {
			return nil, &SyntaxError{SourceInfo: p.excerpt(pos), Expected: "parameter count", Got: nameTok.Value}
		}

		params = n
	}

	p.skipEOLs()

	var body []token.Token
	depth := 1

	for {
		if p.peekType() == token.EOL && p.pos >= len(p.toks)-1 {
			return nil, &SyntaxError{SourceInfo: p.excerpt(pos), Expected: ".endm", Got: "end of file"}
		}

		switch p.peekType() {
		case token.MACRO_DIR:
			depth++
		case token.ENDMACRO_DIR:
			depth--
			if depth == 0 {
				p.next()

				p.macros[name] = &Macro{Name: name, Params: params, Body: body, DefinedAt: pos}

				return ast.New(ast.RuleMacroDef, pos, ast.TokenArg(nameTok)), nil
			}
		}

		body = append(body, p.next())
	}
}

// parseMacroCall expands a call to the macro named by tok (already looked up by the caller),
// splicing the substituted body tokens into the token stream in place of the call so that
// statement parsing continues directly into the expansion -- nested macro calls, labels, and
// directives inside a macro body are handled by the same recursive descent that parses ordinary
// source. MacroRecursionError guards against a macro invoking itself, directly or transitively.
func (p *Parser) parseMacroCall(tok token.Token, m *Macro) (*ast.Node, error) {
	pos := p.pposOf(tok)

	// The caller already consumed the macro-name token; nameStart is its position, so the splice
	// below can replace the whole call (name and arguments both) rather than leaving the trigger
	// tokens in place to be re-expanded on the next pass.
	nameStart := p.pos - 1

	for _, active := range p.macroStack {
		if active == m.Name {
			return nil, &MacroRecursionError{SourceInfo: p.excerpt(pos), Macro: m.Name}
		}
	}

	var args []token.Token

	if p.peekType() != token.EOL {
		for {
			args = append(args, p.next())

			if p.peekType() != token.COMMA {
				break
			}

			p.next()
		}
	}

	if len(args) != m.Params {
		return nil, &SyntaxError{
			SourceInfo: p.excerpt(pos),
			Expected:   strconv.Itoa(m.Params) + " macro argument(s)",
			Got:        strconv.Itoa(len(args)),
		}
	}

	expanded := make([]token.Token, 0, len(m.Body))

	for _, bt := range m.Body {
		if bt.Type == token.MACRO_PARAM {
			n, err := strconv.Atoi(strings.TrimPrefix(bt.Value, "\\"))
			if err != nil || n < 1 || n > len(args) {
				return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(bt)), Expected: "valid macro parameter", Got: bt.Value}
			}

			expanded = append(expanded, args[n-1])
			continue
		}

		expanded = append(expanded, bt)
	}

	rest := make([]token.Token, len(p.toks)-p.pos)
	copy(rest, p.toks[p.pos:])

	p.toks = append(p.toks[:nameStart], append(expanded, rest...)...)
	end := nameStart + len(expanded)
	p.pos = nameStart

	p.macroStack = append(p.macroStack, m.Name)
	defer func() { p.macroStack = p.macroStack[:len(p.macroStack)-1] }()

	call := ast.New(ast.RuleMacroCall, pos, ast.TokenArg(tok))

	for p.pos < end {
		p.skipEOLs()
		if p.pos >= end {
			break
		}

		stmt, err := p.parseLine()
		if err != nil {
			return nil, err
		}

		if stmt != nil {
			call.Children = append(call.Children, ast.NodeArg(stmt))
		}
	}

	return call, nil
}
