package grammar_test

import (
	"errors"
	"testing"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/grammar"
	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/token"
)

// tokenStream feeds FoldBinary a fixed sequence of operator tokens through its peek and next
// callbacks; each test supplies its own parseRight to produce the right-hand operands.
type tokenStream struct {
	toks    []token.Token
	pos     int
	operand int // not read by the tests below
}

func (s *tokenStream) peek() token.Type {
	if s.pos >= len(s.toks) {
		return token.EOL
	}

	return s.toks[s.pos].Type
}

func (s *tokenStream) next() token.Token {
	tok := s.toks[s.pos]
	s.pos++

	return tok
}

func sumApply(op token.Type, left, right int) int {
	if op == token.MINUS {
		return left - right
	}

	return left + right
}

func TestFoldBinaryLeftAssociative(t *testing.T) {
	t.Parallel()

	// 1 + 2 - 3
	stream := &tokenStream{toks: []token.Token{
		{Type: token.PLUS, Value: "+"},
		{Type: token.MINUS, Value: "-"},
	}}

	operands := []int{2, 3}
	call := 0

	parseRight := func() (*ast.Node, error) {
		n := &ast.Node{Rule: ast.RuleNumber, Num: operands[call]}
		call++

		return n, nil
	}

	prod := grammar.NewProduction(ast.RuleAddExpr, sumApply, token.PLUS, token.MINUS)

	left := &ast.Node{Rule: ast.RuleNumber, Pos: source.Pos{File: "a.asm", Line: 1}, Num: 1}

	result, err := grammar.FoldBinary(left, prod, stream.peek, stream.next, parseRight, "number")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if result.Num != 0 {
		t.Errorf("1 + 2 - 3 = %d, want 0", result.Num)
	}

	if len(result.Children) != 3 {
		t.Fatalf("folded node should have 3 children, got %d", len(result.Children))
	}
}

func TestFoldBinaryNoOperators(t *testing.T) {
	t.Parallel()

	stream := &tokenStream{toks: []token.Token{{Type: token.EOL}}}
	prod := grammar.NewProduction(ast.RuleAddExpr, sumApply, token.PLUS, token.MINUS)

	left := &ast.Node{Rule: ast.RuleNumber, Num: 42}

	result, err := grammar.FoldBinary(left, prod, stream.peek, stream.next, func() (*ast.Node, error) {
		t.Fatal("parseRight should not be called when no operator is present")
		return nil, nil
	}, "number")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if result != left {
		t.Error("with no matching operator, FoldBinary should return left unchanged")
	}
}

func TestFoldBinaryMissingOperand(t *testing.T) {
	t.Parallel()

	stream := &tokenStream{toks: []token.Token{{Type: token.PLUS, Value: "+"}}}
	prod := grammar.NewProduction(ast.RuleAddExpr, sumApply, token.PLUS)

	left := &ast.Node{Rule: ast.RuleNumber, Pos: source.Pos{File: "a.asm", Line: 3}, Num: 1}

	_, err := grammar.FoldBinary(left, prod, stream.peek, stream.next, func() (*ast.Node, error) {
		return nil, nil
	}, "number")

	var gerr *grammar.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected a *grammar.Error, got %T: %v", err, err)
	}

	if gerr.Expected != "number" {
		t.Errorf("Expected = %q, want %q", gerr.Expected, "number")
	}
}

func TestFoldBinaryPropagatesParseError(t *testing.T) {
	t.Parallel()

	stream := &tokenStream{toks: []token.Token{{Type: token.PLUS, Value: "+"}}}
	prod := grammar.NewProduction(ast.RuleAddExpr, sumApply, token.PLUS)

	left := &ast.Node{Rule: ast.RuleNumber}
	wantErr := errors.New("boom")

	_, err := grammar.FoldBinary(left, prod, stream.peek, stream.next, func() (*ast.Node, error) {
		return nil, wantErr
	}, "number")

	if !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}
