package asm

import (
	"strconv"
	"strings"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/log"
	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/symtab"
	"github.com/pbaxter/sixasm/internal/token"
)

// Options configures a Parser's dialect and resource limits.
type Options struct {
	Enable65C02   bool // accept 65C02-only mnemonics; 65C02 addressing modes of core mnemonics are always accepted
	EnableIllegal bool // accept undocumented/illegal opcodes
	MaxPasses     int  // resolution passes before giving up; 0 means DefaultMaxPasses
	MaxIterations int  // .do/.while iteration cap; 0 means DefaultMaxIterations
}

const (
	DefaultMaxPasses     = 64
	DefaultMaxIterations = 100000
)

// Parser turns a token stream into an AST and, across repeated passes, a fully resolved program:
// every label has a value, every instruction has a chosen addressing mode, and the byte image can
// be emitted. See Run for the pass driver.
type Parser struct {
	cache *source.Cache
	toks  []token.Token
	pos   int

	globals *symtab.Table
	locals  *symtab.Table
	vars    *symtab.Table
	anon    *symtab.AnonLabels
	macros  map[string]*Macro
	macroStack []string // names of macros currently expanding, for recursion detection

	includedFrom map[string]string // included file path -> the file whose .include pulled it in, for cycle detection

	opts  Options
	errs  ErrorList
	fatal error

	pc         int
	pass       int
	confirming bool
	scope      string // name of the enclosing global label, for local-symbol scoping

	log *log.Logger
}

// NewParser creates a Parser over cache using opts. Load and .include read each source file into
// cache before tokenizing it; diagnostics render their excerpts from it.
func NewParser(cache *source.Cache, opts Options, logger *log.Logger) *Parser {
	if opts.MaxPasses == 0 {
		opts.MaxPasses = DefaultMaxPasses
	}

	if opts.MaxIterations == 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	if logger == nil {
		logger = log.DefaultLogger()
	}

	return &Parser{
		cache:        cache,
		globals:      symtab.New(),
		locals:       symtab.New(),
		vars:         symtab.New(),
		anon:         symtab.NewAnonLabels(),
		macros:       make(map[string]*Macro),
		includedFrom: make(map[string]string),
		opts:         opts,
		log:          logger,
	}
}

// Err returns the accumulated errors from the most recent pass.
func (p *Parser) Err() error {
	if p.fatal != nil {
		return p.fatal
	}

	return p.errs.Err()
}

// Symbols returns the parser's global symbol table.
func (p *Parser) Symbols() *symtab.Table { return p.globals }

func (p *Parser) excerpt(pos source.Pos) SourceInfo {
	return SourceInfo{Pos: pos, Excerpt: p.cache.Excerpt(pos, 3)}
}

// --- token cursor -----------------------------------------------------------------------------

func (p *Parser) peekType() token.Type {
	if p.pos >= len(p.toks) {
		return token.EOL
	}

	return p.toks[p.pos].Type
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Type: token.EOL}
	}

	return p.toks[p.pos]
}

func (p *Parser) next() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}

	return t
}

func (p *Parser) pposOf(t token.Token) source.Pos { return source.Pos{File: t.File, Line: t.Line} }

// skipEOLs advances past any run of EOL tokens, so statement parsing never has to special-case
// blank lines.
func (p *Parser) skipEOLs() {
	for p.pos < len(p.toks) && p.toks[p.pos].Type == token.EOL {
		p.pos++
	}
}

// parseNumber converts a numeric-literal token's text into its integer value.
func parseNumber(tok token.Token) (int, error) {
	switch tok.Type {
	case token.HEXNUM:
		v, err := strconv.ParseInt(strings.TrimPrefix(tok.Value, "$"), 16, 64)
		return int(v), err
	case token.BINNUM:
		v, err := strconv.ParseInt(strings.TrimPrefix(tok.Value, "%"), 2, 64)
		return int(v), err
	case token.DECNUM:
		v, err := strconv.ParseInt(tok.Value, 10, 64)
		return int(v), err
	case token.CHAR:
		s := strings.Trim(tok.Value, "'")
		if strings.HasPrefix(s, "\\") && len(s) == 2 {
			return int(s[1]), nil
		}

		if len(s) >= 1 {
			return int(s[0]), nil
		}

		return 0, nil
	default:
		return 0, nil
	}
}

// numberNode builds a Number AST leaf from a literal token.
func numberNode(tok token.Token) (*ast.Node, error) {
	v, err := parseNumber(tok)
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.RuleNumber, source.Pos{File: tok.File, Line: tok.Line}, ast.TokenArg(tok))
	n.Num = v

	return n, nil
}
