package asm

import (
	"fmt"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/lexer"
	"github.com/pbaxter/sixasm/internal/token"
)

// parseDirective dispatches a leading directive token to its handler.
func (p *Parser) parseDirective() (*ast.Node, error) {
	switch p.peekType() {
	case token.ORG:
		return p.parseOrg()
	case token.BYTE:
		return p.parseDataList("BYTE", 1)
	case token.WORD:
		return p.parseDataList("WORD", 2)
	case token.INCLUDE_DIR:
		return p.parseInclude()
	case token.VAR_DIR:
		return p.parseVar()
	case token.IF_DIR:
		return p.parseIf()
	case token.ELSE_DIR:
		// Reached only by falling through a taken .if branch: skip the untaken .else branch.
		tok := p.next()
		p.skipToEndif()

		return ast.New(ast.RuleDirective, p.pposOf(tok), ast.TokenArg(tok)), nil
	case token.ENDIF_DIR:
		tok := p.next()
		return ast.New(ast.RuleDirective, p.pposOf(tok), ast.TokenArg(tok)), nil
	case token.DO_DIR:
		return p.parseDoWhile()
	case token.END_DIR:
		tok := p.next()
		return ast.New(ast.RuleDirective, p.pposOf(tok), ast.TokenArg(tok)), nil
	default:
		tok := p.next()
		return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(tok)), Expected: "directive", Got: tok.Value}
	}
}

func (p *Parser) parseOrg() (*ast.Node, error) {
	tok := p.next()

	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if val == nil {
		return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(tok)), Expected: "expression", Got: "end of line"}
	}

	p.pc = val.Num

	n := ast.New(ast.RuleDirective, p.pposOf(tok), ast.TokenArg(tok), ast.NodeArg(val))
	n.Value = "ORG"
	n.Num = val.Num

	return n, nil
}

// parseDataList parses a comma-separated expression list for .byte/.word, advancing the program
// counter by width bytes per entry.
func (p *Parser) parseDataList(name string, width int) (*ast.Node, error) {
	tok := p.next()

	n := ast.New(ast.RuleDirective, p.pposOf(tok), ast.TokenArg(tok))
	n.Value = name
	n.PC = p.pc

	count := 0

	for {
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if val == nil {
			return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(tok)), Expected: "expression", Got: "end of line"}
		}

		n.Children = append(n.Children, ast.NodeArg(val))
		count++

		if width == 1 {
			n.Bytes = append(n.Bytes, byte(val.Num))
		} else {
			n.Bytes = append(n.Bytes, byte(val.Num), byte(val.Num>>8))
		}

		if p.peekType() != token.COMMA {
			break
		}

		p.next()
	}

	n.Num = width
	p.pc += width * count

	return n, nil
}

// parseInclude reads the named file into the source cache, lexes it, and splices its tokens into
// the stream in place of the directive (".include" and its path argument both removed) so the
// enclosing Parse loop continues directly into the included file's statements and a later pass
// never re-encounters the directive to re-expand it.
func (p *Parser) parseInclude() (*ast.Node, error) {
	triggerStart := p.pos

	tok := p.next()
	pos := p.pposOf(tok)

	pathTok := p.next()
	if pathTok.Type != token.TEXT {
		return nil, &SyntaxError{SourceInfo: p.excerpt(pos), Expected: "quoted path", Got: pathTok.Value}
	}

	if p.includeCycle(tok.File, pathTok.Value) {
		return nil, &IncludeError{SourceInfo: p.excerpt(pos), Path: pathTok.Value, Err: fmt.Errorf("include cycle")}
	}

	if _, err := p.cache.ReadFile(pathTok.Value); err != nil {
		return nil, &IncludeError{SourceInfo: p.excerpt(pos), Path: pathTok.Value, Err: err}
	}

	included, err := lexer.New(p.cache, pathTok.Value).Tokenize()
	if err != nil {
		return nil, &IncludeError{SourceInfo: p.excerpt(pos), Path: pathTok.Value, Err: err}
	}

	p.includedFrom[pathTok.Value] = tok.File

	rest := make([]token.Token, len(p.toks)-p.pos)
	copy(rest, p.toks[p.pos:])

	p.toks = append(p.toks[:triggerStart], append(included, rest...)...)
	p.pos = triggerStart

	return nil, nil
}

// includeCycle reports whether including target from within file would close a cycle: target is
// already an ancestor of file in the include chain recorded by includedFrom, or file and target
// are the same (direct self-include).
func (p *Parser) includeCycle(file, target string) bool {
	cur := file

	for i := 0; i <= len(p.includedFrom); i++ {
		if cur == target {
			return true
		}

		parent, ok := p.includedFrom[cur]
		if !ok {
			return false
		}

		cur = parent
	}

	return true
}

// parseVar parses ".var NAME = expr", a variable symbol that (unlike an equate) may be redefined
// freely across .do/.while iterations without raising DuplicateDefinitionError.
func (p *Parser) parseVar() (*ast.Node, error) {
	tok := p.next()
	pos := p.pposOf(tok)

	nameTok := p.next()
	if nameTok.Type != token.SYM {
		return nil, &SyntaxError{SourceInfo: p.excerpt(pos), Expected: "variable name", Got: nameTok.Value}
	}

	if p.peekType() != token.EQUAL {
		return nil, &SyntaxError{SourceInfo: p.excerpt(pos), Expected: "'='", Got: p.peek().Value}
	}

	p.next()

	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if val == nil {
		return nil, &SyntaxError{SourceInfo: p.excerpt(pos), Expected: "expression", Got: "end of line"}
	}

	p.vars.Set(nameTok.Value, val.Num, pos)

	n := ast.New(ast.RuleDirective, pos, ast.TokenArg(tok), ast.TokenArg(nameTok), ast.NodeArg(val))
	n.Value = "VAR"
	n.Num = val.Num

	return n, nil
}

// parseIf parses ".if expr": if true, statement parsing simply continues into the taken branch,
// falling through to the .else handler above (which skips the untaken alternative) or straight to
// .endif; if false, the untaken branch's tokens -- including any nested .if/.endif pairs -- are
// skipped immediately, landing either on a taken .else branch or past a bare .endif.
func (p *Parser) parseIf() (*ast.Node, error) {
	tok := p.next()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if cond == nil {
		return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(tok)), Expected: "expression", Got: "end of line"}
	}

	if cond.Num == 0 {
		p.skipToElseOrEndif()
	}

	return ast.New(ast.RuleDirective, p.pposOf(tok), ast.TokenArg(tok), ast.NodeArg(cond)), nil
}

// skipToElseOrEndif advances past tokens up to and including a same-depth .else (so the normal
// statement loop parses the else-branch next) or .endif (since nothing follows it).
func (p *Parser) skipToElseOrEndif() {
	depth := 1

	for p.pos < len(p.toks) {
		switch p.peekType() {
		case token.IF_DIR:
			depth++
		case token.ENDIF_DIR:
			depth--
			if depth == 0 {
				p.next()
				return
			}
		case token.ELSE_DIR:
			if depth == 1 {
				p.next()
				return
			}
		}

		p.next()
	}
}

// skipToEndif advances past tokens, tracking nested .if/.endif depth, up to and including a
// matching .endif.
func (p *Parser) skipToEndif() {
	depth := 1

	for p.pos < len(p.toks) {
		switch p.peekType() {
		case token.IF_DIR:
			depth++
		case token.ENDIF_DIR:
			depth--
			if depth == 0 {
				p.next()
				return
			}
		}

		p.next()
	}
}
