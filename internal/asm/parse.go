package asm

import (
	"strings"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/opcode"
	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/token"
)

// Parse runs a single pass over the parser's token stream, building a RuleProg node, one RuleLine
// child per source line. A line may expand to zero nodes (a comment, a macro or .include
// directive that spliced more tokens into the stream) or more than one (a macro call's body).
// Successive calls reuse p.toks as left by the previous pass, so expansions performed once (macro
// calls, .include, .do/.while unrolling) are not redone.
func (p *Parser) Parse() (*ast.Node, error) {
	p.pos = 0
	p.pc = 0
	p.scope = ""

	prog := ast.New(ast.RuleProg, source.Pos{})

	for {
		p.skipEOLs()

		if p.pos >= len(p.toks) {
			break
		}

		line, err := p.parseLine()
		if err != nil {
			return prog, err
		}

		if line != nil {
			prog.Children = append(prog.Children, ast.NodeArg(line))
		}
	}

	return prog, nil
}

// parseLine parses one logical line: an optional label definition, then a directive, macro call,
// instruction, or equate, then an optional trailing comment.
func (p *Parser) parseLine() (*ast.Node, error) {
	pos := p.pposOf(p.peek())
	startPC := p.pc

	var label *ast.Node

	if p.peekType() == token.COLON {
		tok := p.next()
		p.anon.Define(pos, true, p.pc)
		p.anon.Define(pos, false, p.pc)

		label = ast.New(ast.RuleLabelDef, pos, ast.TokenArg(tok))
		label.Num = p.pc
	} else if p.peekType() == token.SYM || p.peekType() == token.LOCALSYM {
		if sym, ok := p.tryLabelDef(); ok {
			label = sym
		}
	}

	if p.peekType() == token.COMMENT {
		p.next()
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if p.peekType() == token.COMMENT {
		p.next()
	}

	if label == nil && stmt == nil {
		return nil, nil
	}

	line := ast.New(ast.RuleLine, pos)
	line.PC = startPC

	if label != nil {
		line.Children = append(line.Children, ast.NodeArg(label))
	}

	if stmt != nil {
		line.Children = append(line.Children, ast.NodeArg(stmt))
	}

	return line, nil
}

// tryLabelDef looks ahead for "SYM COLON", or for a SYM/LOCALSYM that starts its source line and
// is followed by end of line, a comment, a mnemonic or a directive (not '=', which makes it an
// equate, handled separately), and, if found, defines the label at the current program counter
// and consumes it.
func (p *Parser) tryLabelDef() (*ast.Node, bool) {
	tok := p.peek()
	next := p.pos + 1

	isColonForm := next < len(p.toks) && p.toks[next].Type == token.COLON
	isEquateForm := next < len(p.toks) && p.toks[next].Type == token.EQUAL
	isBareForm := tok.Start && !isEquateForm && next < len(p.toks) &&
		(p.toks[next].Type == token.EOL || p.toks[next].Type == token.COMMENT ||
			token.IsMnemonic(p.toks[next].Type) ||
			(p.toks[next].Type >= token.ORG && p.toks[next].Type <= token.END_DIR))

	if !isColonForm && !isBareForm {
		return nil, false
	}

	p.next()
	if isColonForm {
		p.next()
	}

	sym := p.handleLabelDef(tok, p.pc)

	n := ast.New(ast.RuleLabelDef, p.pposOf(tok), ast.TokenArg(tok))
	n.Value = sym.Name
	n.Num = sym.Value

	return n, true
}

// parseStatement dispatches on the next token to a directive, macro call, equate, or instruction.
// Returns nil, nil for a blank or comment-only remainder of the line.
func (p *Parser) parseStatement() (*ast.Node, error) {
	switch p.peekType() {
	case token.EOL, token.COMMENT:
		return nil, nil

	case token.ORG, token.BYTE, token.WORD, token.INCLUDE_DIR,
		token.IF_DIR, token.ELSE_DIR, token.ENDIF_DIR,
		token.VAR_DIR, token.DO_DIR, token.WHILE_DIR, token.END_DIR:
		return p.parseDirective()

	case token.MACRO_DIR:
		tok := p.next()
		return p.parseMacroDef(tok)

	case token.SYM:
		if m, ok := p.macros[strings.ToUpper(p.peek().Value)]; ok {
			tok := p.next()
			return p.parseMacroCall(tok, m)
		}

		if p.pos+1 < len(p.toks) && p.toks[p.pos+1].Type == token.EQUAL {
			return p.parseEquate()
		}

		return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "directive, macro call, or instruction", Got: p.peek().Value}

	default:
		if token.IsMnemonic(p.peekType()) {
			return p.parseInstruction()
		}

		return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "instruction or directive", Got: p.peek().Value}
	}
}

// parseEquate parses "SYM = expr", assigning the symbol without advancing the program counter.
func (p *Parser) parseEquate() (*ast.Node, error) {
	tok := p.next()
	eq := p.next()

	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if val == nil {
		return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(eq)), Expected: "expression", Got: "end of line"}
	}

	sym := p.handleLabelDef(tok, val.Num)

	n := ast.New(ast.RuleEquate, p.pposOf(tok), ast.TokenArg(tok), ast.TokenArg(eq), ast.NodeArg(val))
	n.Value = sym.Name
	n.Num = sym.Value

	return n, nil
}

// parseInstruction parses a mnemonic and its operand, selects an addressing mode, and stores the
// resulting bytes in the node's Bytes (the opcode byte also in Num) for the emitter to pick up.
func (p *Parser) parseInstruction() (*ast.Node, error) {
	mtok := p.next()
	pos := p.pposOf(mtok)

	instr, known := opcode.Lookup(mtok.Type)
	if !known {
		return nil, &UnknownOpcodeError{SourceInfo: p.excerpt(pos), Mnemonic: mtok.Value}
	}

	if err := checkLegality(mtok.Type, p.opts, mtok.Value, p.excerpt(pos)); err != nil {
		p.errs.Add(err)
	}

	op, operandNodes, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	_, enc, operandBytes, err := selectMode(instr, mtok.Value, op, p.pc, p.confirming, p.excerpt(pos))
	if err != nil {
		p.errs.Add(err)
	}

	n := ast.New(ast.RuleOpInstruction, pos, append([]ast.Arg{ast.TokenArg(mtok)}, operandNodes...)...)
	n.Value = mtok.Value
	n.PC = p.pc
	n.Num = int(enc.Opcode)
	n.Bytes = append([]byte{enc.Opcode}, operandBytes...)

	p.pc += len(n.Bytes)

	return n, nil
}

// parseOperand parses the syntax after a mnemonic and classifies it into an operand form:
// nothing, "A", "#expr", "(expr,X)", "(expr),Y", "(expr)", "expr,X", "expr,Y", "expr,expr"
// (zero-page,relative), or a bare "expr".
func (p *Parser) parseOperand() (operand, []ast.Arg, error) {
	switch p.peekType() {
	case token.EOL, token.COMMENT:
		return operand{form: formNone}, nil, nil

	case token.A:
		tok := p.next()
		return operand{form: formAccumulator}, []ast.Arg{ast.TokenArg(tok)}, nil

	case token.POUND:
		p.next()

		val, err := p.parseExpr()
		if err != nil {
			return operand{}, nil, err
		}

		if val == nil {
			return operand{}, nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "expression", Got: "end of line"}
		}

		return operand{form: formImmediate, value: val.Num}, []ast.Arg{ast.NodeArg(val)}, nil

	case token.LPAREN:
		p.next()

		val, err := p.parseExpr()
		if err != nil {
			return operand{}, nil, err
		}

		if val == nil {
			return operand{}, nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "expression", Got: "end of line"}
		}

		if p.peekType() == token.COMMA {
			p.next()

			if p.peekType() != token.X {
				return operand{}, nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "'X'", Got: p.peek().Value}
			}

			p.next()

			if p.peekType() != token.RPAREN {
				return operand{}, nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "')'", Got: p.peek().Value}
			}

			p.next()

			return operand{form: formIndirectX, value: val.Num}, []ast.Arg{ast.NodeArg(val)}, nil
		}

		if p.peekType() != token.RPAREN {
			return operand{}, nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "')'", Got: p.peek().Value}
		}

		p.next()

		if p.peekType() == token.COMMA {
			p.next()

			if p.peekType() != token.Y {
				return operand{}, nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "'Y'", Got: p.peek().Value}
			}

			p.next()

			return operand{form: formIndirectY, value: val.Num}, []ast.Arg{ast.NodeArg(val)}, nil
		}

		return operand{form: formIndirect, value: val.Num}, []ast.Arg{ast.NodeArg(val)}, nil

	default:
		val, err := p.parseExpr()
		if err != nil {
			return operand{}, nil, err
		}

		if val == nil {
			return operand{form: formNone}, nil, nil
		}

		if p.peekType() != token.COMMA {
			return operand{form: formDirect, value: val.Num}, []ast.Arg{ast.NodeArg(val)}, nil
		}

		p.next()

		switch p.peekType() {
		case token.X:
			p.next()
			return operand{form: formIndexedX, value: val.Num}, []ast.Arg{ast.NodeArg(val)}, nil

		case token.Y:
			p.next()
			return operand{form: formIndexedY, value: val.Num}, []ast.Arg{ast.NodeArg(val)}, nil

		default:
			val2, err := p.parseExpr()
			if err != nil {
				return operand{}, nil, err
			}

			if val2 == nil {
				return operand{}, nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "'X', 'Y', or expression", Got: p.peek().Value}
			}

			return operand{form: formZPRelative, value: val.Num, value2: val2.Num},
				[]ast.Arg{ast.NodeArg(val), ast.NodeArg(val2)}, nil
		}
	}
}
