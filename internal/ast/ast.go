// Package ast defines the parse tree produced by the grammar engine: a Node whose children are a
// mix of subtrees and raw tokens, mirroring the original parser's RuleArg sum type
// (std::variant<shared_ptr<ASTNode>, Token>).
package ast

import (
	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/token"
)

// Rule identifies which grammar production built a Node.
type Rule int

const (
	RuleUnknown Rule = iota
	RuleNumber
	RuleSymbol
	RuleFactor
	RuleMulExpr
	RuleAddExpr
	RuleShiftExpr
	RuleAndExpr
	RuleOrExpr
	RuleXOrExpr
	RuleAddrExpr
	RuleExpr
	RuleEquate
	RuleLabelDef
	RuleOpImplied
	RuleOpAccumulator
	RuleOpImmediate
	RuleOpAbsolute
	RuleOpAbsoluteX
	RuleOpAbsoluteY
	RuleOpZeroPage
	RuleOpZeroPageX
	RuleOpZeroPageY
	RuleOpIndirect
	RuleOpIndirectX
	RuleOpIndirectY
	RuleOpRelative
	RuleOpZeroPageRelative
	RuleOpInstruction
	RuleDirective
	RuleMacroDef
	RuleMacroCall
	RuleLoop
	RuleComment
	RuleStatement
	RuleLine
	RuleProg
)

//go:generate go run golang.org/x/tools/cmd/stringer -type Rule -output rule_string.go

// Arg is one child of a Node: either a subtree or a leaf token, never both. It mirrors the
// original parser's RuleArg variant.
type Arg struct {
	Node  *Node
	Token token.Token
	isTok bool
}

// TokenArg wraps a leaf token as an Arg.
func TokenArg(t token.Token) Arg { return Arg{Token: t, isTok: true} }

// NodeArg wraps a subtree as an Arg.
func NodeArg(n *Node) Arg { return Arg{Node: n} }

// IsToken reports whether the Arg holds a token rather than a subtree.
func (a Arg) IsToken() bool { return a.isTok }

// Node is one node of the parse tree: the rule that produced it, an optional literal value, its
// source position, and its children.
type Node struct {
	Rule     Rule
	Value    string // textual payload: mnemonic spelling, symbol name, directive name
	Num      int    // resolved numeric payload: expression value, opcode byte, operand value
	Pos      source.Pos
	ListPos  int // index into the flattened program; not set or read by the assembler
	PC       int // program counter at the start of this node, set during a resolution pass
	Bytes    []byte // final encoded bytes, set during parsing for instruction/data-directive nodes
	Children []Arg
}

// New creates a Node for rule at pos with the given children.
func New(rule Rule, pos source.Pos, children ...Arg) *Node {
	return &Node{Rule: rule, Pos: pos, Children: children}
}

// Child returns the i'th child's subtree, or nil if it does not exist or is a token.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}

	if n.Children[i].isTok {
		return nil
	}

	return n.Children[i].Node
}

// ChildToken returns the i'th child's token, or the zero Token if it does not exist or is a
// subtree.
func (n *Node) ChildToken(i int) token.Token {
	if n == nil || i < 0 || i >= len(n.Children) {
		return token.Token{}
	}

	return n.Children[i].Token
}

// Walk calls visit for n and, depth-first, for every descendant. visit returning false stops
// descent into that node's children but not into its siblings.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}

	if !visit(n) {
		return
	}

	for _, c := range n.Children {
		if !c.isTok {
			Walk(c.Node, visit)
		}
	}
}
