// Package lexer turns source text into a stream of tokens using an ordered table of patterns,
// the same structure the original assembler's tokenizer used: patterns are tried in order at each
// input position and the first (not longest) match wins, so directives are checked ahead of the
// generic identifier pattern that would otherwise match them, and two-character operators ahead of
// their one-character prefixes. Mnemonics and register names are recognized by looking up the
// text the generic identifier pattern matched.
package lexer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/token"
)

// pattern is one row of the tokenizer's pattern table.
type pattern struct {
	re  *regexp.Regexp
	typ token.Type // zero means "derive the type from the matched text", used for mnemonics/symbols
}

var (
	wsRe      = regexp.MustCompile(`^[ \t]+`)
	commentRe = regexp.MustCompile(`^;.*`)
	hexRe     = regexp.MustCompile(`^\$[0-9A-Fa-f]+`)
	binRe     = regexp.MustCompile(`^%[01]+`)
	decRe     = regexp.MustCompile(`^[0-9]+`)
	charRe    = regexp.MustCompile(`^'(\\.|[^'\\])'`)
	stringRe  = regexp.MustCompile(`^"[^"]*"`)
	localRe   = regexp.MustCompile(`^@[A-Za-z_.][A-Za-z0-9_.]*`)
	symRe     = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*`)
	anonFwdRe = regexp.MustCompile(`^\++`)
	anonBckRe = regexp.MustCompile(`^-+`)
	macroParamRe = regexp.MustCompile(`^\\[0-9]+`)
)

// directives maps a leading-dot directive spelling to its token type.
var directives = map[string]token.Type{
	".ORG": token.ORG, ".BYTE": token.BYTE, ".DB": token.BYTE,
	".WORD": token.WORD, ".DW": token.WORD,
	".INCLUDE": token.INCLUDE_DIR,
	".IF":      token.IF_DIR, ".ELSE": token.ELSE_DIR, ".ENDIF": token.ENDIF_DIR,
	".VAR": token.VAR_DIR, ".DO": token.DO_DIR, ".WHILE": token.WHILE_DIR,
	".MACRO": token.MACRO_DIR, ".ENDM": token.ENDMACRO_DIR, ".END": token.END_DIR,
}

// punctuation is tried last, after the generic symbol pattern, in table order; two-character
// operators are listed ahead of their one-character prefixes so that, e.g., "<<" is not split into
// two "<" tokens.
var punctuation = []struct {
	lit string
	typ token.Type
}{
	{"<<", token.SLEFT}, {">>", token.SRIGHT},
	{"<=", token.LE}, {">=", token.GE}, {"==", token.EQEQ}, {"!=", token.NEQ},
	{"<", token.LT}, {">", token.GT},
	{"(", token.LPAREN}, {")", token.RPAREN},
	{"[", token.LBRACKET}, {"]", token.RBRACKET},
	{",", token.COMMA}, {":", token.COLON},
	{"#", token.POUND}, {"@", token.AT}, {"=", token.EQUAL},
	{"+", token.PLUS}, {"-", token.MINUS}, {"*", token.MUL}, {"/", token.DIV}, {"%", token.MOD},
	{"&", token.BIT_AND}, {"|", token.BIT_OR}, {"^", token.BIT_XOR}, {"~", token.ONESCOMP},
}

// Error reports a lexical failure: no pattern in the table matched at pos.
type Error struct {
	Pos  source.Pos
	Text string // the offending remainder of the line
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: unrecognized input: %q", e.Pos, e.Text)
}

// Lexer splits the cached lines of a single source file into tokens, one line at a time.
type Lexer struct {
	cache *source.Cache
	file  string
}

// New creates a Lexer over the lines already read into cache for file.
func New(cache *source.Cache, file string) *Lexer {
	return &Lexer{cache: cache, file: file}
}

// Tokenize lexes every cached line of the lexer's file and returns the resulting tokens, each
// terminated by an EOL token, or the first lexical error encountered.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var out []token.Token

	for _, line := range l.cache.Lines(l.file) {
		toks, err := l.tokenizeLine(line)
		if err != nil {
			return nil, err
		}

		out = append(out, toks...)
		out = append(out, token.Token{Type: token.EOL, File: l.file, Line: line.Pos.Line})
	}

	return out, nil
}

func (l *Lexer) tokenizeLine(line source.Line) ([]token.Token, error) {
	var toks []token.Token

	rest := line.Text
	col := 0
	start := true

	for len(rest) > 0 {
		if m := wsRe.FindString(rest); m != "" {
			rest = rest[len(m):]
			col += len(m)
			continue
		}

		if m := commentRe.FindString(rest); m != "" {
			toks = append(toks, token.Token{
				Type: token.COMMENT, Value: strings.TrimPrefix(m, ";"),
				File: l.file, Line: line.Pos.Line, Column: col, Start: start,
			})
			break
		}

		tok, n, ok := l.matchOne(rest, line.Pos.Line, col, start)
		if !ok {
			return nil, &Error{Pos: line.Pos, Text: rest}
		}

		toks = append(toks, tok)
		rest = rest[n:]
		col += n
		start = false
	}

	return toks, nil
}

func (l *Lexer) matchOne(rest string, lineNo, col int, start bool) (token.Token, int, bool) {
	upper := strings.ToUpper(rest)

	for spelling, typ := range directives {
		if strings.HasPrefix(upper, spelling) && !identContinues(rest, len(spelling)) {
			return token.Token{Type: typ, Value: spelling, File: l.file, Line: lineNo, Column: col, Start: start}, len(spelling), true
		}
	}

	if m := hexRe.FindString(rest); m != "" {
		return token.Token{Type: token.HEXNUM, Value: m, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	if m := binRe.FindString(rest); m != "" {
		return token.Token{Type: token.BINNUM, Value: m, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	if m := decRe.FindString(rest); m != "" {
		return token.Token{Type: token.DECNUM, Value: m, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	if m := charRe.FindString(rest); m != "" {
		return token.Token{Type: token.CHAR, Value: m, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	if m := stringRe.FindString(rest); m != "" {
		return token.Token{Type: token.TEXT, Value: strings.Trim(m, `"`), File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	if m := localRe.FindString(rest); m != "" {
		return token.Token{Type: token.LOCALSYM, Value: m, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	// Macro parameter reference, e.g. "\1": only meaningful inside a macro body, resolved at
	// expansion time, but recognized everywhere so the lexer doesn't need macro-definition state.
	if m := macroParamRe.FindString(rest); m != "" {
		return token.Token{Type: token.MACRO_PARAM, Value: m, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	// Anonymous labels: a run of "+" or "-" standing alone is a forward/backward label reference
	// rather than an arithmetic operator; a single "+"/"-" still falls through to punctuation.
	if m := anonFwdRe.FindString(rest); len(m) > 1 {
		return token.Token{Type: token.SYM, Value: m, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	if m := anonBckRe.FindString(rest); len(m) > 1 {
		return token.Token{Type: token.SYM, Value: m, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	if m := symRe.FindString(rest); m != "" {
		up := strings.ToUpper(m)

		switch up {
		case "X":
			return token.Token{Type: token.X, Value: up, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
		case "Y":
			return token.Token{Type: token.Y, Value: up, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
		case "A":
			return token.Token{Type: token.A, Value: up, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
		}

		if typ, ok := token.MnemonicTypes[up]; ok {
			return token.Token{Type: typ, Value: up, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
		}

		return token.Token{Type: token.SYM, Value: m, File: l.file, Line: lineNo, Column: col, Start: start}, len(m), true
	}

	for _, p := range punctuation {
		if strings.HasPrefix(rest, p.lit) {
			return token.Token{Type: p.typ, Value: p.lit, File: l.file, Line: lineNo, Column: col, Start: start}, len(p.lit), true
		}
	}

	return token.Token{}, 0, false
}

// identContinues reports whether rest[n] begins an identifier character, which would mean the
// directive-length prefix of rest is actually a longer identifier (e.g. ".DOUBLE" must not match
// the ".DO" directive).
func identContinues(rest string, n int) bool {
	if n >= len(rest) {
		return false
	}

	c := rest[n]

	return c == '_' || c == '.' || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
