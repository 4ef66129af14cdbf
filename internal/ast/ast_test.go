package ast_test

import (
	"testing"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/token"
)

func TestNodeChildAndChildToken(t *testing.T) {
	t.Parallel()

	leaf := ast.New(ast.RuleNumber, source.Pos{})
	tok := token.Token{Type: token.PLUS, Value: "+"}

	n := ast.New(ast.RuleAddExpr, leaf.Pos, ast.NodeArg(leaf), ast.TokenArg(tok))

	if n.Child(0) != leaf {
		t.Error("Child(0) should return the wrapped subtree")
	}

	if n.Child(1) != nil {
		t.Error("Child(1) is a token, should return nil")
	}

	if n.ChildToken(1) != tok {
		t.Errorf("ChildToken(1) = %v, want %v", n.ChildToken(1), tok)
	}

	if (n.ChildToken(0) != token.Token{}) {
		t.Error("ChildToken(0) is a subtree, should return the zero Token")
	}
}

func TestNodeChildOutOfRange(t *testing.T) {
	t.Parallel()

	n := ast.New(ast.RuleProg, source.Pos{})

	if n.Child(0) != nil {
		t.Error("Child on empty node should return nil")
	}

	if (n.ChildToken(0) != token.Token{}) {
		t.Error("ChildToken on empty node should return the zero Token")
	}
}

func TestWalkVisitsDescendants(t *testing.T) {
	t.Parallel()

	leaf1 := ast.New(ast.RuleNumber, source.Pos{})
	leaf2 := ast.New(ast.RuleNumber, source.Pos{})
	root := ast.New(ast.RuleAddExpr, source.Pos{}, ast.NodeArg(leaf1), ast.NodeArg(leaf2))

	var visited []*ast.Node

	ast.Walk(root, func(n *ast.Node) bool {
		visited = append(visited, n)
		return true
	})

	if len(visited) != 3 {
		t.Fatalf("got %d visited nodes, want 3", len(visited))
	}
}

func TestWalkStopsDescent(t *testing.T) {
	t.Parallel()

	leaf := ast.New(ast.RuleNumber, source.Pos{})
	root := ast.New(ast.RuleAddExpr, source.Pos{}, ast.NodeArg(leaf))

	var visited int

	ast.Walk(root, func(n *ast.Node) bool {
		visited++
		return false
	})

	if visited != 1 {
		t.Errorf("got %d visited nodes, want 1 (descent should have stopped)", visited)
	}
}

func TestRuleString(t *testing.T) {
	t.Parallel()

	if got := ast.RuleProg.String(); got != "Prog" {
		t.Errorf("RuleProg.String() = %q, want Prog", got)
	}

	if got := ast.Rule(9999).String(); got != "Rule(?)" {
		t.Errorf("unknown rule String() = %q, want Rule(?)", got)
	}
}
