// Package grammar holds the small amount of shared machinery the recursive-descent expression
// parser in internal/asm is built from: production tables expressed as data (which operator
// tokens belong to which precedence level) and a single FoldBinary helper that turns a
// left-recursive grammar rule ("Expr -> Expr op Term | Term") into an iterative left-associative
// loop, the same transformation the original parser's handle_binary_operation template performed.
package grammar

import (
	"fmt"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/token"
)

// Production lists the operator tokens recognized at one precedence level, along with the AST
// rule used to tag the binary node those operators build and the function that computes the
// folded numeric value.
type Production struct {
	Rule  ast.Rule
	Ops   map[token.Type]bool
	Apply func(op token.Type, left, right int) int
}

// NewProduction builds a Production from an explicit operator list, matching the style of the
// original grammar's per-rule allowed_ops sets.
func NewProduction(rule ast.Rule, apply func(op token.Type, left, right int) int, ops ...token.Type) Production {
	set := make(map[token.Type]bool, len(ops))
	for _, t := range ops {
		set[t] = true
	}

	return Production{Rule: rule, Ops: set, Apply: apply}
}

// Error reports a missing right-hand operand, mirroring the "expected <name> after operator"
// diagnostic the original parser raised from inside handle_binary_operation.
type Error struct {
	Pos      source.Pos
	Expected string
	Op       token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: expected %s after operator %q", e.Pos, e.Expected, e.Op.Value)
}

// Peek reports the type of the next token without consuming it, or token.EOL past the end.
type Peek func() token.Type

// Next consumes and returns the next token.
type Next func() token.Token

// FoldBinary implements one precedence level of a left-recursive grammar rule iteratively: it
// repeatedly checks whether the next token belongs to prod.Ops, and if so consumes the operator,
// parses the right operand via parseRight, and folds it into a new left node via prod.Apply --
// exactly the loop handle_binary_operation ran, generalized over any single precedence level.
func FoldBinary(left *ast.Node, prod Production, peek Peek, next Next, parseRight func() (*ast.Node, error), expected string) (*ast.Node, error) {
	for prod.Ops[peek()] {
		op := next()

		right, err := parseRight()
		if err != nil {
			return nil, err
		}

		if right == nil {
			return nil, &Error{Pos: left.Pos, Expected: expected, Op: op}
		}

		node := &ast.Node{
			Rule: prod.Rule,
			Pos:  left.Pos,
			Num:  prod.Apply(op.Type, left.Num, right.Num),
		}
		node.Children = append(node.Children, ast.NodeArg(left), ast.TokenArg(op), ast.NodeArg(right))

		left = node
	}

	return left, nil
}
