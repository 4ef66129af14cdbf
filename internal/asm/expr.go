package asm

import (
	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/grammar"
	"github.com/pbaxter/sixasm/internal/token"
)

// Expression precedence levels, lowest to highest, each built from the one below it via
// grammar.FoldBinary -- the same shape expr_rules.cpp uses for OrExpr/XOrExpr/AndExpr/AddExpr/
// MulExpr, all calling the shared handle_binary_operation helper with a different operator set.
var (
	prodOr    = grammar.NewProduction(ast.RuleOrExpr, func(_ token.Type, l, r int) int { return l | r }, token.BIT_OR)
	prodXor   = grammar.NewProduction(ast.RuleXOrExpr, func(_ token.Type, l, r int) int { return l ^ r }, token.BIT_XOR)
	prodAnd   = grammar.NewProduction(ast.RuleAndExpr, func(_ token.Type, l, r int) int { return l & r }, token.BIT_AND)
	prodShift = grammar.NewProduction(ast.RuleShiftExpr, func(op token.Type, l, r int) int {
		if op == token.SLEFT {
			return l << uint(r)
		}

		return l >> uint(r)
	}, token.SLEFT, token.SRIGHT)
	prodAdd = grammar.NewProduction(ast.RuleAddExpr, func(op token.Type, l, r int) int {
		if op == token.PLUS {
			return l + r
		}

		return l - r
	}, token.PLUS, token.MINUS)
	prodMul = grammar.NewProduction(ast.RuleMulExpr, func(op token.Type, l, r int) int {
		switch op {
		case token.MUL:
			return l * r
		case token.DIV:
			return l / r
		default: // token.MOD
			return l % r
		}
	}, token.MUL, token.DIV, token.MOD)
)

// parseExpr parses the lowest-precedence level (bitwise OR) down through every tighter-binding
// level to Factor, evaluating as it goes.
func (p *Parser) parseExpr() (*ast.Node, error) {
	return p.foldLevel(prodOr, p.parseXor, "expression")
}

func (p *Parser) parseXor() (*ast.Node, error) {
	return p.foldLevel(prodXor, p.parseAnd, "expression")
}

func (p *Parser) parseAnd() (*ast.Node, error) {
	return p.foldLevel(prodAnd, p.parseShift, "expression")
}

func (p *Parser) parseShift() (*ast.Node, error) {
	return p.foldLevel(prodShift, p.parseAdd, "expression")
}

func (p *Parser) parseAdd() (*ast.Node, error) {
	return p.foldLevel(prodAdd, p.parseMul, "expression")
}

// parseMul folds Factor through '*', '/' and '%'. It doesn't use foldLevel because, unlike every
// other precedence level, division and modulo can fail (divide by zero) -- a case
// grammar.FoldBinary's generic Apply signature has no room to report.
func (p *Parser) parseMul() (*ast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	if left == nil {
		return nil, nil
	}

	for prodMul.Ops[p.peekType()] {
		op := p.next()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		if right == nil {
			return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(op)), Expected: "expression", Got: "end of line"}
		}

		if (op.Type == token.DIV || op.Type == token.MOD) && right.Num == 0 {
			return nil, &DivisionByZeroError{SourceInfo: p.excerpt(left.Pos)}
		}

		node := ast.New(prodMul.Rule, left.Pos, ast.NodeArg(left), ast.TokenArg(op), ast.NodeArg(right))
		node.Num = prodMul.Apply(op.Type, left.Num, right.Num)

		left = node
	}

	return left, nil
}

// foldLevel parses one operand at this precedence level via next, then folds in any following
// same-level operators using grammar.FoldBinary.
func (p *Parser) foldLevel(prod grammar.Production, next func() (*ast.Node, error), expected string) (*ast.Node, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	if left == nil {
		return nil, nil
	}

	return grammar.FoldBinary(left, prod,
		func() token.Type { return p.peekType() },
		func() token.Token { return p.next() },
		next, expected)
}

// parseFactor parses a unary-signed literal, symbol, the current-PC '*' pseudo-value, or a
// parenthesized sub-expression.
func (p *Parser) parseFactor() (*ast.Node, error) {
	switch p.peekType() {
	case token.MINUS:
		op := p.next()

		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		if operand == nil {
			return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(op)), Expected: "expression", Got: "end of line"}
		}

		n := ast.New(ast.RuleFactor, operand.Pos, ast.TokenArg(op), ast.NodeArg(operand))
		n.Num = -operand.Num

		return n, nil

	case token.ONESCOMP:
		op := p.next()

		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		if operand == nil {
			return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(op)), Expected: "expression", Got: "end of line"}
		}

		n := ast.New(ast.RuleFactor, operand.Pos, ast.TokenArg(op), ast.NodeArg(operand))
		n.Num = ^operand.Num

		return n, nil

	case token.MUL:
		tok := p.next()
		n := ast.New(ast.RuleFactor, p.pposOf(tok), ast.TokenArg(tok))
		n.Num = p.pc

		return n, nil

	case token.DECNUM, token.HEXNUM, token.BINNUM, token.CHAR:
		tok := p.next()
		return numberNode(tok)

	case token.LPAREN:
		p.next()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if p.peekType() != token.RPAREN {
			return nil, &SyntaxError{SourceInfo: p.excerpt(p.pposOf(p.peek())), Expected: "')'", Got: p.peek().Value}
		}

		p.next()

		return inner, nil

	case token.SYM, token.LOCALSYM:
		return p.parseSymbolRef(false)

	default:
		return nil, nil
	}
}
